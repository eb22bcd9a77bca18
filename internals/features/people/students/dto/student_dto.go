package dto

import (
	"time"

	"github.com/google/uuid"

	"edufranchise_backend/internals/features/people/students/model"
)

/* ========== REQUEST DTOs ========== */

type CreateStudentRequest struct {
	StudentBranchID      *uuid.UUID `json:"student_branch_id"` // admins choose; branch staff are locked to their own
	StudentName          string     `json:"student_name" validate:"required,min=2,max=120"`
	StudentEmail         *string    `json:"student_email" validate:"omitempty,email"`
	StudentPhone         *string    `json:"student_phone" validate:"omitempty,max=30"`
	StudentBirthDate     *time.Time `json:"student_birth_date"`
	StudentGuardianName  *string    `json:"student_guardian_name" validate:"omitempty,max=120"`
	StudentGuardianPhone *string    `json:"student_guardian_phone" validate:"omitempty,max=30"`
}

type UpdateStudentRequest struct {
	StudentName          *string    `json:"student_name" validate:"omitempty,min=2,max=120"`
	StudentEmail         *string    `json:"student_email" validate:"omitempty,email"`
	StudentPhone         *string    `json:"student_phone" validate:"omitempty,max=30"`
	StudentBirthDate     *time.Time `json:"student_birth_date"`
	StudentGuardianName  *string    `json:"student_guardian_name" validate:"omitempty,max=120"`
	StudentGuardianPhone *string    `json:"student_guardian_phone" validate:"omitempty,max=30"`
	StudentIsActive      *bool      `json:"student_is_active"`
}

type ListStudentQuery struct {
	BranchID   *uuid.UUID `query:"branch_id"`
	ActiveOnly *bool      `query:"active"`
	Search     *string    `query:"search"`
}

/* ========== RESPONSE DTO ========== */

type StudentResponse struct {
	StudentID            uuid.UUID  `json:"student_id"`
	StudentCompanyID     uuid.UUID  `json:"student_company_id"`
	StudentBranchID      uuid.UUID  `json:"student_branch_id"`
	StudentName          string     `json:"student_name"`
	StudentEmail         *string    `json:"student_email,omitempty"`
	StudentPhone         *string    `json:"student_phone,omitempty"`
	StudentBirthDate     *time.Time `json:"student_birth_date,omitempty"`
	StudentGuardianName  *string    `json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string    `json:"student_guardian_phone,omitempty"`
	StudentIsActive      bool       `json:"student_is_active"`
	StudentCreatedAt     time.Time  `json:"student_created_at"`
	StudentUpdatedAt     *time.Time `json:"student_updated_at,omitempty"`
}

func NewStudentResponse(m *model.StudentModel) *StudentResponse {
	if m == nil {
		return nil
	}
	return &StudentResponse{
		StudentID:            m.StudentID,
		StudentCompanyID:     m.StudentCompanyID,
		StudentBranchID:      m.StudentBranchID,
		StudentName:          m.StudentName,
		StudentEmail:         m.StudentEmail,
		StudentPhone:         m.StudentPhone,
		StudentBirthDate:     m.StudentBirthDate,
		StudentGuardianName:  m.StudentGuardianName,
		StudentGuardianPhone: m.StudentGuardianPhone,
		StudentIsActive:      m.StudentIsActive,
		StudentCreatedAt:     m.StudentCreatedAt,
		StudentUpdatedAt:     m.StudentUpdatedAt,
	}
}

func (r *CreateStudentRequest) ToModel(companyID, branchID uuid.UUID) *model.StudentModel {
	return &model.StudentModel{
		StudentCompanyID:     companyID,
		StudentBranchID:      branchID,
		StudentName:          r.StudentName,
		StudentEmail:         r.StudentEmail,
		StudentPhone:         r.StudentPhone,
		StudentBirthDate:     r.StudentBirthDate,
		StudentGuardianName:  r.StudentGuardianName,
		StudentGuardianPhone: r.StudentGuardianPhone,
		StudentIsActive:      true,
	}
}

func (r *UpdateStudentRequest) ApplyToModel(m *model.StudentModel) {
	if r.StudentName != nil {
		m.StudentName = *r.StudentName
	}
	if r.StudentEmail != nil {
		m.StudentEmail = r.StudentEmail
	}
	if r.StudentPhone != nil {
		m.StudentPhone = r.StudentPhone
	}
	if r.StudentBirthDate != nil {
		m.StudentBirthDate = r.StudentBirthDate
	}
	if r.StudentGuardianName != nil {
		m.StudentGuardianName = r.StudentGuardianName
	}
	if r.StudentGuardianPhone != nil {
		m.StudentGuardianPhone = r.StudentGuardianPhone
	}
	if r.StudentIsActive != nil {
		m.StudentIsActive = *r.StudentIsActive
	}
	now := time.Now()
	m.StudentUpdatedAt = &now
}
