package auth

import (
	"errors"

	"github.com/google/uuid"

	"edufranchise_backend/internals/constants"
)

// ErrBranchMismatch is returned when a non-admin explicitly asks for a
// branch other than their own. Handlers map it to 403; the caller's
// request is rejected, never silently narrowed to their own branch.
var ErrBranchMismatch = errors.New("requested branch is outside your scope")

// HasAnyRole reports whether the context's role is in the allowed set.
func HasAnyRole(tc TenantContext, allowed ...string) bool {
	for _, r := range allowed {
		if tc.Role == r {
			return true
		}
	}
	return false
}

func IsAdmin(tc TenantContext) bool {
	return tc.Role == constants.RoleAdmin
}

// CanAccessBranch decides branch-level access. Admins span the whole
// company; everyone else is locked to exactly their own branch.
func CanAccessBranch(tc TenantContext, target *uuid.UUID) bool {
	if IsAdmin(tc) {
		return true
	}
	if tc.BranchID == nil || target == nil {
		return tc.BranchID == nil && target == nil
	}
	return *tc.BranchID == *target
}

// EffectiveBranchFilter computes the branch predicate for list queries.
//   - admin: the caller's explicit choice, or nil (all branches).
//   - non-admin: always their own branch; an explicit differing request
//     fails with ErrBranchMismatch instead of being substituted.
func EffectiveBranchFilter(tc TenantContext, requested *uuid.UUID) (*uuid.UUID, error) {
	if IsAdmin(tc) {
		return requested, nil
	}
	if requested != nil && (tc.BranchID == nil || *requested != *tc.BranchID) {
		return nil, ErrBranchMismatch
	}
	return tc.BranchID, nil
}
