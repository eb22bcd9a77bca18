package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"edufranchise_backend/internals/features/academics/classes/model"
)

type CreateClassRequest struct {
	ClassBranchID  *uuid.UUID     `json:"class_branch_id"` // admins choose; branch managers are locked to their own
	ClassCourseID  uuid.UUID      `json:"class_course_id" validate:"required"`
	ClassTeacherID *uuid.UUID     `json:"class_teacher_id"`
	ClassName      string         `json:"class_name" validate:"required,min=2,max=160"`
	ClassRoom      *string        `json:"class_room" validate:"omitempty,max=80"`
	ClassCapacity  int            `json:"class_capacity" validate:"gte=0"`
	ClassSchedule  datatypes.JSON `json:"class_schedule"`
}

type UpdateClassRequest struct {
	ClassTeacherID *uuid.UUID     `json:"class_teacher_id"`
	ClassName      *string        `json:"class_name" validate:"omitempty,min=2,max=160"`
	ClassRoom      *string        `json:"class_room" validate:"omitempty,max=80"`
	ClassCapacity  *int           `json:"class_capacity" validate:"omitempty,gte=0"`
	ClassSchedule  datatypes.JSON `json:"class_schedule"`
	ClassIsActive  *bool          `json:"class_is_active"`
}

type ListClassQuery struct {
	BranchID   *uuid.UUID `query:"branch_id"`
	CourseID   *uuid.UUID `query:"course_id"`
	ActiveOnly *bool      `query:"active"`
}

type ClassResponse struct {
	ClassID        uuid.UUID      `json:"class_id"`
	ClassCompanyID uuid.UUID      `json:"class_company_id"`
	ClassBranchID  uuid.UUID      `json:"class_branch_id"`
	ClassCourseID  uuid.UUID      `json:"class_course_id"`
	ClassTeacherID *uuid.UUID     `json:"class_teacher_id,omitempty"`
	ClassName      string         `json:"class_name"`
	ClassRoom      *string        `json:"class_room,omitempty"`
	ClassCapacity  int            `json:"class_capacity"`
	ClassSchedule  datatypes.JSON `json:"class_schedule"`
	ClassIsActive  bool           `json:"class_is_active"`
	ClassCreatedAt time.Time      `json:"class_created_at"`
	ClassUpdatedAt *time.Time     `json:"class_updated_at,omitempty"`
}

func NewClassResponse(m *model.ClassModel) *ClassResponse {
	if m == nil {
		return nil
	}
	return &ClassResponse{
		ClassID:        m.ClassID,
		ClassCompanyID: m.ClassCompanyID,
		ClassBranchID:  m.ClassBranchID,
		ClassCourseID:  m.ClassCourseID,
		ClassTeacherID: m.ClassTeacherID,
		ClassName:      m.ClassName,
		ClassRoom:      m.ClassRoom,
		ClassCapacity:  m.ClassCapacity,
		ClassSchedule:  m.ClassSchedule,
		ClassIsActive:  m.ClassIsActive,
		ClassCreatedAt: m.ClassCreatedAt,
		ClassUpdatedAt: m.ClassUpdatedAt,
	}
}

func (r *CreateClassRequest) ToModel(companyID, branchID uuid.UUID) *model.ClassModel {
	return &model.ClassModel{
		ClassCompanyID: companyID,
		ClassBranchID:  branchID,
		ClassCourseID:  r.ClassCourseID,
		ClassTeacherID: r.ClassTeacherID,
		ClassName:      r.ClassName,
		ClassRoom:      r.ClassRoom,
		ClassCapacity:  r.ClassCapacity,
		ClassSchedule:  r.ClassSchedule,
		ClassIsActive:  true,
	}
}

func (r *UpdateClassRequest) ApplyToModel(m *model.ClassModel) {
	if r.ClassTeacherID != nil {
		m.ClassTeacherID = r.ClassTeacherID
	}
	if r.ClassName != nil {
		m.ClassName = *r.ClassName
	}
	if r.ClassRoom != nil {
		m.ClassRoom = r.ClassRoom
	}
	if r.ClassCapacity != nil {
		m.ClassCapacity = *r.ClassCapacity
	}
	if r.ClassSchedule != nil {
		m.ClassSchedule = r.ClassSchedule
	}
	if r.ClassIsActive != nil {
		m.ClassIsActive = *r.ClassIsActive
	}
	now := time.Now()
	m.ClassUpdatedAt = &now
}
