package controller

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	branchModel "edufranchise_backend/internals/features/company/branches/model"
	"edufranchise_backend/internals/features/people/students/model"
	authhelper "edufranchise_backend/internals/helpers/auth"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN is required for integration tests")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&branchModel.BranchModel{},
		&model.StudentModel{},
	))
	return db
}

// testApp mounts the handlers behind a middleware that injects the
// given tenant context, standing in for the auth middleware.
func testApp(db *gorm.DB, tc authhelper.TenantContext) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(authhelper.LocalsTenantContext, tc)
		return c.Next()
	})
	ctl := NewStudentController(db)
	app.Get("/students", ctl.ListStudents)
	app.Get("/students/:id", ctl.GetStudentByID)
	return app
}

func seedBranch(t *testing.T, db *gorm.DB, companyID uuid.UUID) *branchModel.BranchModel {
	t.Helper()
	b := &branchModel.BranchModel{
		BranchCompanyID: companyID,
		BranchName:      "Branch " + uuid.NewString()[:8],
		BranchIsActive:  true,
	}
	require.NoError(t, db.Create(b).Error)
	return b
}

func seedStudent(t *testing.T, db *gorm.DB, companyID, branchID uuid.UUID, name string) *model.StudentModel {
	t.Helper()
	s := &model.StudentModel{
		StudentCompanyID: companyID,
		StudentBranchID:  branchID,
		StudentName:      name,
		StudentIsActive:  true,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func managerContext(companyID, branchID uuid.UUID) authhelper.TenantContext {
	return authhelper.TenantContext{
		UserID:    uuid.New(),
		Email:     "manager@test.local",
		Role:      "branch_manager",
		CompanyID: companyID,
		BranchID:  &branchID,
	}
}

// A student of another company must come back as a plain 404 — the
// response may not reveal that the row exists at all.
func TestGetStudentOtherCompanyIs404(t *testing.T) {
	db := testDB(t)

	companyA := uuid.New()
	companyB := uuid.New()
	branchA := seedBranch(t, db, companyA)
	branchB := seedBranch(t, db, companyB)
	foreign := seedStudent(t, db, companyB, branchB.BranchID, "Foreign Student")

	app := testApp(db, managerContext(companyA, branchA.BranchID))

	req := httptest.NewRequest("GET", "/students/"+foreign.StudentID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Student not found", body["message"])
}

// Same company, sibling branch: the row exists and the caller may know
// that, but access is denied.
func TestGetStudentSiblingBranchIs403(t *testing.T) {
	db := testDB(t)

	companyID := uuid.New()
	mine := seedBranch(t, db, companyID)
	sibling := seedBranch(t, db, companyID)
	other := seedStudent(t, db, companyID, sibling.BranchID, "Sibling Student")

	app := testApp(db, managerContext(companyID, mine.BranchID))

	req := httptest.NewRequest("GET", "/students/"+other.StudentID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestListStudentsIsNarrowedToOwnBranch(t *testing.T) {
	db := testDB(t)

	companyID := uuid.New()
	mine := seedBranch(t, db, companyID)
	sibling := seedBranch(t, db, companyID)
	visible := seedStudent(t, db, companyID, mine.BranchID, "Visible Student")
	seedStudent(t, db, companyID, sibling.BranchID, "Hidden Student")

	app := testApp(db, managerContext(companyID, mine.BranchID))

	req := httptest.NewRequest("GET", "/students", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			StudentID uuid.UUID `json:"student_id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, visible.StudentID, body.Data[0].StudentID)
}

// An explicit mismatched branch_id from a non-admin is rejected, not
// silently narrowed.
func TestListStudentsExplicitForeignBranchIs403(t *testing.T) {
	db := testDB(t)

	companyID := uuid.New()
	mine := seedBranch(t, db, companyID)
	sibling := seedBranch(t, db, companyID)

	app := testApp(db, managerContext(companyID, mine.BranchID))

	req := httptest.NewRequest("GET", "/students?branch_id="+sibling.BranchID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
