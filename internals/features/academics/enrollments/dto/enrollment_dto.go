package dto

import (
	"time"

	"github.com/google/uuid"

	"edufranchise_backend/internals/features/academics/enrollments/model"
)

type CreateEnrollmentRequest struct {
	EnrollmentStudentID               uuid.UUID  `json:"enrollment_student_id" validate:"required"`
	EnrollmentClassID                 uuid.UUID  `json:"enrollment_class_id" validate:"required"`
	EnrollmentMonthlyFeeCentsOverride *int64     `json:"enrollment_monthly_fee_cents_override" validate:"omitempty,gte=0"`
	EnrollmentStartDate               *time.Time `json:"enrollment_start_date"`
}

type UpdateEnrollmentRequest struct {
	EnrollmentStatus                  *string `json:"enrollment_status" validate:"omitempty,oneof=active completed cancelled"`
	EnrollmentMonthlyFeeCentsOverride *int64  `json:"enrollment_monthly_fee_cents_override" validate:"omitempty,gte=0"`
}

type ListEnrollmentQuery struct {
	BranchID  *uuid.UUID `query:"branch_id"`
	StudentID *uuid.UUID `query:"student_id"`
	ClassID   *uuid.UUID `query:"class_id"`
	Status    *string    `query:"status"`
}

type EnrollmentResponse struct {
	EnrollmentID                      uuid.UUID  `json:"enrollment_id"`
	EnrollmentCompanyID               uuid.UUID  `json:"enrollment_company_id"`
	EnrollmentBranchID                uuid.UUID  `json:"enrollment_branch_id"`
	EnrollmentStudentID               uuid.UUID  `json:"enrollment_student_id"`
	EnrollmentClassID                 uuid.UUID  `json:"enrollment_class_id"`
	EnrollmentStatus                  string     `json:"enrollment_status"`
	EnrollmentMonthlyFeeCentsOverride *int64     `json:"enrollment_monthly_fee_cents_override,omitempty"`
	EnrollmentStartDate               *time.Time `json:"enrollment_start_date,omitempty"`
	EnrollmentCreatedAt               time.Time  `json:"enrollment_created_at"`
	EnrollmentUpdatedAt               *time.Time `json:"enrollment_updated_at,omitempty"`
}

func NewEnrollmentResponse(m *model.EnrollmentModel) *EnrollmentResponse {
	if m == nil {
		return nil
	}
	return &EnrollmentResponse{
		EnrollmentID:                      m.EnrollmentID,
		EnrollmentCompanyID:               m.EnrollmentCompanyID,
		EnrollmentBranchID:                m.EnrollmentBranchID,
		EnrollmentStudentID:               m.EnrollmentStudentID,
		EnrollmentClassID:                 m.EnrollmentClassID,
		EnrollmentStatus:                  m.EnrollmentStatus,
		EnrollmentMonthlyFeeCentsOverride: m.EnrollmentMonthlyFeeCentsOverride,
		EnrollmentStartDate:               m.EnrollmentStartDate,
		EnrollmentCreatedAt:               m.EnrollmentCreatedAt,
		EnrollmentUpdatedAt:               m.EnrollmentUpdatedAt,
	}
}
