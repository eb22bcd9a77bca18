package auth

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrMissingTenant signals that a scoped query was attempted without a
// resolved tenant. Reaching it means a handler bypassed the resolver;
// the query fails closed instead of running unscoped.
var ErrMissingTenant = errors.New("scoped query attempted without tenant context")

// Scope accumulates the row-scoping predicate for one storage call:
// a WHERE fragment plus its positional arguments. The tenant condition
// is always present and always bound first. Column names passed to the
// builder come from model-package constants only — never from request
// input.
//
// Scope is a value; every method returns a copy, so building the same
// predicate twice yields identical SQL and args.
type Scope struct {
	conds []string
	args  []any
	err   error
}

// ForTenant starts a scope for the context's company. A nil company id
// cannot happen behind ResolveTenantContext; if it does, every use of
// the scope errors out.
func ForTenant(companyCol string, tc TenantContext) Scope {
	if tc.CompanyID == uuid.Nil {
		return Scope{err: ErrMissingTenant}
	}
	return Scope{
		conds: []string{companyCol + " = ?"},
		args:  []any{tc.CompanyID},
	}
}

func (s Scope) extend(cond string, args ...any) Scope {
	if s.err != nil {
		return s
	}
	out := Scope{
		conds: append(append([]string(nil), s.conds...), cond),
		args:  append(append([]any(nil), s.args...), args...),
	}
	return out
}

// WithID narrows to a single row. Combined with the tenant condition
// this forms the compound key lookup: a row owned by another tenant is
// simply not found, in one round trip.
func (s Scope) WithID(idCol string, id uuid.UUID) Scope {
	return s.extend(idCol+" = ?", id)
}

// WithBranch applies a branch condition; nil means no branch
// restriction (company-wide view).
func (s Scope) WithBranch(branchCol string, branchID *uuid.UUID) Scope {
	if branchID == nil {
		return s
	}
	return s.extend(branchCol+" = ?", *branchID)
}

// WithBranchOrGlobal is WithBranch for resources carrying an explicit
// global flag (e.g. company-wide products).
func (s Scope) WithBranchOrGlobal(branchCol, globalCol string, branchID *uuid.UUID) Scope {
	if branchID == nil {
		return s
	}
	return s.extend("("+branchCol+" = ? OR "+globalCol+" = TRUE)", *branchID)
}

// WithBranchOrShared is WithBranch for resources where a NULL branch
// means "shared across the company" (e.g. head-office expenses).
func (s Scope) WithBranchOrShared(branchCol string, branchID *uuid.UUID) Scope {
	if branchID == nil {
		return s
	}
	return s.extend("("+branchCol+" = ? OR "+branchCol+" IS NULL)", *branchID)
}

// Alive excludes soft-deleted rows.
func (s Scope) Alive(deletedAtCol string) Scope {
	return s.extend(deletedAtCol + " IS NULL")
}

// And appends an extra caller-supplied filter with bound parameters.
func (s Scope) And(cond string, args ...any) Scope {
	return s.extend(cond, args...)
}

// Conditions returns the assembled WHERE fragment and its args.
func (s Scope) Conditions() (string, []any, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return strings.Join(s.conds, " AND "), append([]any(nil), s.args...), nil
}

// Apply attaches the predicate to a gorm query. On a missing tenant it
// poisons the statement so the query fails instead of running unscoped.
func (s Scope) Apply(db *gorm.DB) *gorm.DB {
	where, args, err := s.Conditions()
	if err != nil {
		_ = db.AddError(err)
		return db
	}
	return db.Where(where, args...)
}
