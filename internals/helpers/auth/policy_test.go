package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edufranchise_backend/internals/constants"
)

func adminCtx(companyID uuid.UUID) TenantContext {
	return TenantContext{
		UserID:    uuid.New(),
		Role:      constants.RoleAdmin,
		CompanyID: companyID,
	}
}

func managerCtx(companyID, branchID uuid.UUID) TenantContext {
	return TenantContext{
		UserID:    uuid.New(),
		Role:      constants.RoleBranchManager,
		CompanyID: companyID,
		BranchID:  &branchID,
	}
}

func TestHasAnyRole(t *testing.T) {
	tc := managerCtx(uuid.New(), uuid.New())

	assert.True(t, HasAnyRole(tc, constants.ManagerAndAbove...))
	assert.False(t, HasAnyRole(tc, constants.AdminOnly...))
	assert.False(t, HasAnyRole(tc))
}

// Admins reach any branch of their company, including branches they
// were never assigned to and the nil "no branch" case.
func TestAdminCanAccessAnyBranch(t *testing.T) {
	tc := adminCtx(uuid.New())

	someBranch := uuid.New()
	assert.True(t, CanAccessBranch(tc, &someBranch))
	assert.True(t, CanAccessBranch(tc, nil))
}

// Non-admins are locked to exactly their own branch.
func TestNonAdminBranchLock(t *testing.T) {
	own := uuid.New()
	tc := managerCtx(uuid.New(), own)

	assert.True(t, CanAccessBranch(tc, &own))

	other := uuid.New()
	assert.False(t, CanAccessBranch(tc, &other))
	assert.False(t, CanAccessBranch(tc, nil))
}

func TestNonAdminWithoutBranch(t *testing.T) {
	tc := TenantContext{
		UserID:    uuid.New(),
		Role:      constants.RoleAccountant,
		CompanyID: uuid.New(),
	}
	other := uuid.New()
	assert.False(t, CanAccessBranch(tc, &other))
	// degenerate case: both absent compares equal
	assert.True(t, CanAccessBranch(tc, nil))
}

func TestEffectiveBranchFilterAdmin(t *testing.T) {
	tc := adminCtx(uuid.New())

	// explicit choice is honored
	requested := uuid.New()
	got, err := EffectiveBranchFilter(tc, &requested)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, requested, *got)

	// no choice means no branch restriction
	got, err = EffectiveBranchFilter(tc, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEffectiveBranchFilterNarrowsToOwnBranch(t *testing.T) {
	own := uuid.New()
	tc := managerCtx(uuid.New(), own)

	// nothing requested: scoped to own branch
	got, err := EffectiveBranchFilter(tc, nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, own, *got)

	// own branch requested explicitly: same result
	got, err = EffectiveBranchFilter(tc, &own)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, own, *got)
}

// A differing explicit request is rejected, not silently replaced.
func TestEffectiveBranchFilterRejectsMismatch(t *testing.T) {
	tc := managerCtx(uuid.New(), uuid.New())

	other := uuid.New()
	_, err := EffectiveBranchFilter(tc, &other)
	assert.ErrorIs(t, err, ErrBranchMismatch)
}
