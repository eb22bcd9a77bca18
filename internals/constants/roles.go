package constants

// Closed role vocabulary. "admin" is the only company-wide role; every
// other role is scoped to at most one branch.
const (
	RoleAdmin         = "admin"
	RoleBranchManager = "branch_manager"
	RoleAccountant    = "accountant"
	RoleTeacher       = "teacher"
	RoleCashier       = "cashier"
)

var (
	AllRoles = []string{
		RoleAdmin,
		RoleBranchManager,
		RoleAccountant,
		RoleTeacher,
		RoleCashier,
	}

	// ManagerAndAbove may manage branch-level master data.
	ManagerAndAbove = []string{
		RoleBranchManager,
		RoleAdmin,
	}

	// FinanceRoles may write financial records.
	FinanceRoles = []string{
		RoleAccountant,
		RoleAdmin,
	}

	// SellingRoles may record product sales.
	SellingRoles = []string{
		RoleCashier,
		RoleBranchManager,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsKnownRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
