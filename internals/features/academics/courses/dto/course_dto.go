package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"edufranchise_backend/internals/features/academics/courses/model"
)

type CreateCourseRequest struct {
	CourseName            string   `json:"course_name" validate:"required,min=2,max=160"`
	CourseDescription     *string  `json:"course_description"`
	CourseTags            []string `json:"course_tags" validate:"omitempty,dive,min=1,max=40"`
	CourseMonthlyFeeCents int64    `json:"course_monthly_fee_cents" validate:"gte=0"`
}

type UpdateCourseRequest struct {
	CourseName            *string  `json:"course_name" validate:"omitempty,min=2,max=160"`
	CourseDescription     *string  `json:"course_description"`
	CourseTags            []string `json:"course_tags" validate:"omitempty,dive,min=1,max=40"`
	CourseMonthlyFeeCents *int64   `json:"course_monthly_fee_cents" validate:"omitempty,gte=0"`
	CourseIsActive        *bool    `json:"course_is_active"`
}

type ListCourseQuery struct {
	ActiveOnly *bool   `query:"active"`
	Tag        *string `query:"tag"`
	Search     *string `query:"search"`
}

type CourseResponse struct {
	CourseID              uuid.UUID  `json:"course_id"`
	CourseCompanyID       uuid.UUID  `json:"course_company_id"`
	CourseName            string     `json:"course_name"`
	CourseDescription     *string    `json:"course_description,omitempty"`
	CourseTags            []string   `json:"course_tags"`
	CourseMonthlyFeeCents int64      `json:"course_monthly_fee_cents"`
	CourseIsActive        bool       `json:"course_is_active"`
	CourseCreatedAt       time.Time  `json:"course_created_at"`
	CourseUpdatedAt       *time.Time `json:"course_updated_at,omitempty"`
}

func NewCourseResponse(m *model.CourseModel) *CourseResponse {
	if m == nil {
		return nil
	}
	tags := []string(m.CourseTags)
	if tags == nil {
		tags = []string{}
	}
	return &CourseResponse{
		CourseID:              m.CourseID,
		CourseCompanyID:       m.CourseCompanyID,
		CourseName:            m.CourseName,
		CourseDescription:     m.CourseDescription,
		CourseTags:            tags,
		CourseMonthlyFeeCents: m.CourseMonthlyFeeCents,
		CourseIsActive:        m.CourseIsActive,
		CourseCreatedAt:       m.CourseCreatedAt,
		CourseUpdatedAt:       m.CourseUpdatedAt,
	}
}

func (r *CreateCourseRequest) ToModel(companyID uuid.UUID) *model.CourseModel {
	return &model.CourseModel{
		CourseCompanyID:       companyID,
		CourseName:            r.CourseName,
		CourseDescription:     r.CourseDescription,
		CourseTags:            pq.StringArray(r.CourseTags),
		CourseMonthlyFeeCents: r.CourseMonthlyFeeCents,
		CourseIsActive:        true,
	}
}

func (r *UpdateCourseRequest) ApplyToModel(m *model.CourseModel) {
	if r.CourseName != nil {
		m.CourseName = *r.CourseName
	}
	if r.CourseDescription != nil {
		m.CourseDescription = r.CourseDescription
	}
	if r.CourseTags != nil {
		m.CourseTags = pq.StringArray(r.CourseTags)
	}
	if r.CourseMonthlyFeeCents != nil {
		m.CourseMonthlyFeeCents = *r.CourseMonthlyFeeCents
	}
	if r.CourseIsActive != nil {
		m.CourseIsActive = *r.CourseIsActive
	}
	now := time.Now()
	m.CourseUpdatedAt = &now
}
