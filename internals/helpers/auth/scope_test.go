package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeTenantConditionComesFirst(t *testing.T) {
	tc := managerCtx(uuid.New(), uuid.New())

	id := uuid.New()
	where, args, err := ForTenant("student_company_id", tc).
		WithID("student_id", id).
		Conditions()
	require.NoError(t, err)

	assert.Equal(t, "student_company_id = ? AND student_id = ?", where)
	require.Len(t, args, 2)
	assert.Equal(t, tc.CompanyID, args[0])
	assert.Equal(t, id, args[1])
}

func TestScopeBranchVariants(t *testing.T) {
	tc := adminCtx(uuid.New())
	branch := uuid.New()

	where, args, err := ForTenant("product_company_id", tc).
		WithBranchOrGlobal("product_branch_id", "product_is_global", &branch).
		Conditions()
	require.NoError(t, err)
	assert.Equal(t,
		"product_company_id = ? AND (product_branch_id = ? OR product_is_global = TRUE)",
		where)
	assert.Equal(t, []any{tc.CompanyID, branch}, args)

	where, args, err = ForTenant("expense_company_id", tc).
		WithBranchOrShared("expense_branch_id", &branch).
		Conditions()
	require.NoError(t, err)
	assert.Equal(t,
		"expense_company_id = ? AND (expense_branch_id = ? OR expense_branch_id IS NULL)",
		where)
	assert.Equal(t, []any{tc.CompanyID, branch}, args)

	// nil branch filter adds no condition at all
	where, _, err = ForTenant("expense_company_id", tc).
		WithBranch("expense_branch_id", nil).
		Conditions()
	require.NoError(t, err)
	assert.Equal(t, "expense_company_id = ?", where)
}

func TestScopeExtraFiltersAreBound(t *testing.T) {
	tc := adminCtx(uuid.New())

	where, args, err := ForTenant("revenue_company_id", tc).
		Alive("revenue_deleted_at").
		And("revenue_date >= ? AND revenue_date < ?", "2026-01-01", "2026-02-01").
		And("revenue_source = ?", "tuition").
		Conditions()
	require.NoError(t, err)
	assert.Equal(t,
		"revenue_company_id = ? AND revenue_deleted_at IS NULL AND revenue_date >= ? AND revenue_date < ? AND revenue_source = ?",
		where)
	assert.Equal(t, []any{tc.CompanyID, "2026-01-01", "2026-02-01", "tuition"}, args)
}

// Building the same predicate twice yields identical output, and
// branching off a partial scope does not mutate it.
func TestScopeIsDeterministicAndImmutable(t *testing.T) {
	tc := managerCtx(uuid.New(), uuid.New())
	id := uuid.New()

	build := func() (string, []any) {
		where, args, err := ForTenant("class_company_id", tc).
			WithBranch("class_branch_id", tc.BranchID).
			WithID("class_id", id).
			Conditions()
		require.NoError(t, err)
		return where, args
	}

	w1, a1 := build()
	w2, a2 := build()
	assert.Equal(t, w1, w2)
	assert.Equal(t, a1, a2)

	base := ForTenant("class_company_id", tc)
	_ = base.WithID("class_id", id)
	whereBase, argsBase, err := base.Conditions()
	require.NoError(t, err)
	assert.Equal(t, "class_company_id = ?", whereBase)
	assert.Len(t, argsBase, 1)
}

// A context without a company id must never produce a runnable
// predicate.
func TestScopeFailsClosedWithoutTenant(t *testing.T) {
	var empty TenantContext

	s := ForTenant("student_company_id", empty).
		WithID("student_id", uuid.New())

	_, _, err := s.Conditions()
	assert.ErrorIs(t, err, ErrMissingTenant)
}
