package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ColClassID        = "class_id"
	ColClassCompanyID = "class_company_id"
	ColClassBranchID  = "class_branch_id"
	ColClassDeletedAt = "class_deleted_at"
)

// ClassModel represents the `classes` table: a branch-level instance of
// a catalog course. The schedule is free-form JSON, e.g.
// [{"day":"monday","start":"16:00","end":"17:30"}].
type ClassModel struct {
	ClassID        uuid.UUID `json:"class_id" gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassCompanyID uuid.UUID `json:"class_company_id" gorm:"column:class_company_id;type:uuid;not null;index"`
	ClassBranchID  uuid.UUID `json:"class_branch_id" gorm:"column:class_branch_id;type:uuid;not null;index"`

	ClassCourseID  uuid.UUID  `json:"class_course_id" gorm:"column:class_course_id;type:uuid;not null;index"`
	ClassTeacherID *uuid.UUID `json:"class_teacher_id,omitempty" gorm:"column:class_teacher_id;type:uuid;index"`

	ClassName     string         `json:"class_name" gorm:"column:class_name;type:varchar(160);not null"`
	ClassRoom     *string        `json:"class_room,omitempty" gorm:"column:class_room;type:varchar(80)"`
	ClassCapacity int            `json:"class_capacity" gorm:"column:class_capacity;not null;default:0"`
	ClassSchedule datatypes.JSON `json:"class_schedule" gorm:"column:class_schedule;type:jsonb"`

	ClassIsActive bool `json:"class_is_active" gorm:"column:class_is_active;not null;default:true"`

	ClassCreatedAt time.Time  `json:"class_created_at" gorm:"column:class_created_at;not null;autoCreateTime"`
	ClassUpdatedAt *time.Time `json:"class_updated_at,omitempty" gorm:"column:class_updated_at"`
	ClassDeletedAt *time.Time `json:"class_deleted_at,omitempty" gorm:"column:class_deleted_at"`
}

func (ClassModel) TableName() string {
	return "classes"
}
