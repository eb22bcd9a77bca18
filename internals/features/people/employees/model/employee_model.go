package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ColEmployeeID        = "employee_id"
	ColEmployeeCompanyID = "employee_company_id"
	ColEmployeeBranchID  = "employee_branch_id"
	ColEmployeeDeletedAt = "employee_deleted_at"
)

// EmployeeModel represents the `employees` table. A NULL branch means the
// employee sits at head office and is visible company-wide.
type EmployeeModel struct {
	EmployeeID        uuid.UUID  `json:"employee_id" gorm:"column:employee_id;type:uuid;default:gen_random_uuid();primaryKey"`
	EmployeeCompanyID uuid.UUID  `json:"employee_company_id" gorm:"column:employee_company_id;type:uuid;not null;index"`
	EmployeeBranchID  *uuid.UUID `json:"employee_branch_id,omitempty" gorm:"column:employee_branch_id;type:uuid;index"`
	EmployeeUserID    *uuid.UUID `json:"employee_user_id,omitempty" gorm:"column:employee_user_id;type:uuid;index"`

	EmployeeName     string  `json:"employee_name" gorm:"column:employee_name;type:varchar(120);not null"`
	EmployeeEmail    *string `json:"employee_email,omitempty" gorm:"column:employee_email;type:varchar(160)"`
	EmployeePhone    *string `json:"employee_phone,omitempty" gorm:"column:employee_phone;type:varchar(30)"`
	EmployeePosition string  `json:"employee_position" gorm:"column:employee_position;type:varchar(80);not null"`

	EmployeeMonthlySalaryCents int64      `json:"employee_monthly_salary_cents" gorm:"column:employee_monthly_salary_cents;not null;default:0"`
	EmployeeHireDate           *time.Time `json:"employee_hire_date,omitempty" gorm:"column:employee_hire_date;type:date"`

	EmployeeIsActive bool `json:"employee_is_active" gorm:"column:employee_is_active;not null;default:true"`

	EmployeeCreatedAt time.Time  `json:"employee_created_at" gorm:"column:employee_created_at;not null;autoCreateTime"`
	EmployeeUpdatedAt *time.Time `json:"employee_updated_at,omitempty" gorm:"column:employee_updated_at"`
	EmployeeDeletedAt *time.Time `json:"employee_deleted_at,omitempty" gorm:"column:employee_deleted_at"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}
