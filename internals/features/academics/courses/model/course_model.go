package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	ColCourseID        = "course_id"
	ColCourseCompanyID = "course_company_id"
	ColCourseDeletedAt = "course_deleted_at"
)

// CourseModel represents the `courses` table: the company-wide catalog.
// Courses carry no branch column; classes instantiate them per branch.
type CourseModel struct {
	CourseID        uuid.UUID `json:"course_id" gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CourseCompanyID uuid.UUID `json:"course_company_id" gorm:"column:course_company_id;type:uuid;not null;index"`

	CourseName        string         `json:"course_name" gorm:"column:course_name;type:varchar(160);not null"`
	CourseDescription *string        `json:"course_description,omitempty" gorm:"column:course_description;type:text"`
	CourseTags        pq.StringArray `json:"course_tags" gorm:"column:course_tags;type:text[]"`

	CourseMonthlyFeeCents int64 `json:"course_monthly_fee_cents" gorm:"column:course_monthly_fee_cents;not null;default:0"`

	CourseIsActive bool `json:"course_is_active" gorm:"column:course_is_active;not null;default:true"`

	CourseCreatedAt time.Time  `json:"course_created_at" gorm:"column:course_created_at;not null;autoCreateTime"`
	CourseUpdatedAt *time.Time `json:"course_updated_at,omitempty" gorm:"column:course_updated_at"`
	CourseDeletedAt *time.Time `json:"course_deleted_at,omitempty" gorm:"column:course_deleted_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}
