package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ColEnrollmentID        = "enrollment_id"
	ColEnrollmentCompanyID = "enrollment_company_id"
	ColEnrollmentBranchID  = "enrollment_branch_id"
)

const (
	EnrollmentStatusActive    = "active"
	EnrollmentStatusCompleted = "completed"
	EnrollmentStatusCancelled = "cancelled"
)

// EnrollmentModel links a student to a class. The branch is copied from
// the class at creation so scoping never needs a join. A cancelled
// enrollment stays on record; there is no delete.
type EnrollmentModel struct {
	EnrollmentID        uuid.UUID `json:"enrollment_id" gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	EnrollmentCompanyID uuid.UUID `json:"enrollment_company_id" gorm:"column:enrollment_company_id;type:uuid;not null;index"`
	EnrollmentBranchID  uuid.UUID `json:"enrollment_branch_id" gorm:"column:enrollment_branch_id;type:uuid;not null;index"`

	EnrollmentStudentID uuid.UUID `json:"enrollment_student_id" gorm:"column:enrollment_student_id;type:uuid;not null;index"`
	EnrollmentClassID   uuid.UUID `json:"enrollment_class_id" gorm:"column:enrollment_class_id;type:uuid;not null;index"`

	EnrollmentStatus string `json:"enrollment_status" gorm:"column:enrollment_status;type:varchar(20);not null;default:'active'"`

	// NULL means the course's catalog fee applies.
	EnrollmentMonthlyFeeCentsOverride *int64 `json:"enrollment_monthly_fee_cents_override,omitempty" gorm:"column:enrollment_monthly_fee_cents_override"`

	EnrollmentStartDate *time.Time `json:"enrollment_start_date,omitempty" gorm:"column:enrollment_start_date;type:date"`

	EnrollmentCreatedAt time.Time  `json:"enrollment_created_at" gorm:"column:enrollment_created_at;not null;autoCreateTime"`
	EnrollmentUpdatedAt *time.Time `json:"enrollment_updated_at,omitempty" gorm:"column:enrollment_updated_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}

func IsValidEnrollmentStatus(s string) bool {
	switch s {
	case EnrollmentStatusActive, EnrollmentStatusCompleted, EnrollmentStatusCancelled:
		return true
	}
	return false
}
