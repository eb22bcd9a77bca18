package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edufranchise_backend/internals/configs"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func useTestSecret(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	configs.ResetSecretsForTest()
	t.Cleanup(configs.ResetSecretsForTest)
}

// resolveVia runs ResolveTenantContext inside a real fiber request.
func resolveVia(t *testing.T, authHeader string) (TenantContext, error) {
	t.Helper()
	app := fiber.New()
	var gotTC TenantContext
	var gotErr error
	app.Get("/probe", func(c *fiber.Ctx) error {
		gotTC, gotErr = ResolveTenantContext(c)
		return c.SendString("ok")
	})
	req := httptest.NewRequest("GET", "/probe", nil)
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	_, err := app.Test(req)
	require.NoError(t, err)
	return gotTC, gotErr
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc123", "abc123", true},
		{"bearer abc123", "abc123", true},
		{"Bearer  abc123", "abc123", true},
		{"Token abc123", "", false}, // wrong scheme
		{"Bearer", "", false},
		{"", "", false},
		{"Bearer \"abc\"", "abc", true},
	}
	for _, tc := range cases {
		got, ok := ExtractBearerToken(tc.header)
		assert.Equal(t, tc.ok, ok, "header %q", tc.header)
		assert.Equal(t, tc.want, got, "header %q", tc.header)
	}
}

func TestResolveRejectsWrongScheme(t *testing.T) {
	useTestSecret(t)

	_, err := resolveVia(t, "Token abc123")
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
	assert.Equal(t, MsgNoToken, fe.Message)
}

func TestResolveRejectsMissingHeader(t *testing.T) {
	useTestSecret(t)

	_, err := resolveVia(t, "")
	require.Error(t, err)
	fe := err.(*fiber.Error)
	assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
	assert.Equal(t, MsgNoToken, fe.Message)
}

func TestResolveRejectsBadSignature(t *testing.T) {
	useTestSecret(t)

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":         uuid.NewString(),
		"company_id": uuid.NewString(),
		"exp":        time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, rerr := resolveVia(t, "Bearer "+tok)
	require.Error(t, rerr)
	fe := rerr.(*fiber.Error)
	assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
	assert.Equal(t, MsgInvalidToken, fe.Message)
}

func TestResolveRejectsExpiredToken(t *testing.T) {
	useTestSecret(t)

	tok := signToken(t, jwt.MapClaims{
		"id":         uuid.NewString(),
		"company_id": uuid.NewString(),
		"exp":        time.Now().Add(-time.Hour).Unix(),
	})

	_, err := resolveVia(t, "Bearer "+tok)
	require.Error(t, err)
	fe := err.(*fiber.Error)
	assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
	assert.Equal(t, MsgInvalidToken, fe.Message)
}

// A valid, unexpired token without a company claim must fail as
// unauthenticated no matter how well-formed the rest is.
func TestResolveRejectsMissingCompanyClaim(t *testing.T) {
	useTestSecret(t)

	for _, claims := range []jwt.MapClaims{
		{"id": uuid.NewString(), "email": "a@b.co", "role": "admin"},
		{"id": uuid.NewString(), "company_id": ""},
		{"id": uuid.NewString(), "company_id": "not-a-uuid"},
	} {
		tok := signToken(t, claims)
		_, err := resolveVia(t, "Bearer "+tok)
		require.Error(t, err)
		fe := err.(*fiber.Error)
		assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
		assert.Equal(t, MsgMissingCompany, fe.Message)
	}
}

func TestResolveBuildsContextFromClaims(t *testing.T) {
	useTestSecret(t)

	userID := uuid.New()
	companyID := uuid.New()
	branchID := uuid.New()

	tok := signToken(t, jwt.MapClaims{
		"id":         userID.String(),
		"email":      "manager@franchise.test",
		"role":       "branch_manager",
		"company_id": companyID.String(),
		"branch_id":  branchID.String(),
	})

	tc, err := resolveVia(t, "Bearer "+tok)
	require.NoError(t, err)
	assert.Equal(t, userID, tc.UserID)
	assert.Equal(t, "manager@franchise.test", tc.Email)
	assert.Equal(t, "branch_manager", tc.Role)
	assert.Equal(t, companyID, tc.CompanyID)
	require.NotNil(t, tc.BranchID)
	assert.Equal(t, branchID, *tc.BranchID)
}

func TestResolveAdminWithoutBranch(t *testing.T) {
	useTestSecret(t)

	tok := signToken(t, jwt.MapClaims{
		"id":         uuid.NewString(),
		"email":      "owner@franchise.test",
		"role":       "admin",
		"company_id": uuid.NewString(),
	})

	tc, err := resolveVia(t, "Bearer "+tok)
	require.NoError(t, err)
	assert.Nil(t, tc.BranchID)
}

func TestVerifyFailsWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	configs.ResetSecretsForTest()
	t.Cleanup(configs.ResetSecretsForTest)

	_, err := VerifyToken("whatever")
	require.Error(t, err)
	fe := err.(*fiber.Error)
	assert.Equal(t, fiber.StatusInternalServerError, fe.Code)
}
