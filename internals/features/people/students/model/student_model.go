package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ColStudentID        = "student_id"
	ColStudentCompanyID = "student_company_id"
	ColStudentBranchID  = "student_branch_id"
	ColStudentDeletedAt = "student_deleted_at"
)

// StudentModel represents the `students` table. A student is enrolled
// at exactly one branch of the company.
type StudentModel struct {
	StudentID        uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey"`
	StudentCompanyID uuid.UUID `json:"student_company_id" gorm:"column:student_company_id;type:uuid;not null;index"`
	StudentBranchID  uuid.UUID `json:"student_branch_id" gorm:"column:student_branch_id;type:uuid;not null;index"`

	StudentName      string     `json:"student_name" gorm:"column:student_name;type:varchar(120);not null"`
	StudentEmail     *string    `json:"student_email,omitempty" gorm:"column:student_email;type:varchar(160)"`
	StudentPhone     *string    `json:"student_phone,omitempty" gorm:"column:student_phone;type:varchar(30)"`
	StudentBirthDate *time.Time `json:"student_birth_date,omitempty" gorm:"column:student_birth_date;type:date"`

	StudentGuardianName  *string `json:"student_guardian_name,omitempty" gorm:"column:student_guardian_name;type:varchar(120)"`
	StudentGuardianPhone *string `json:"student_guardian_phone,omitempty" gorm:"column:student_guardian_phone;type:varchar(30)"`

	StudentIsActive bool `json:"student_is_active" gorm:"column:student_is_active;not null;default:true"`

	StudentCreatedAt time.Time  `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
	StudentUpdatedAt *time.Time `json:"student_updated_at,omitempty" gorm:"column:student_updated_at"`
	StudentDeletedAt *time.Time `json:"student_deleted_at,omitempty" gorm:"column:student_deleted_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
