package model

import (
	"time"

	"github.com/google/uuid"
)

// Scoping columns for this table. Handlers pass these to the scope
// builder; they are the only identifiers ever spliced into SQL text.
const (
	ColBranchID        = "branch_id"
	ColBranchCompanyID = "branch_company_id"
	ColBranchDeletedAt = "branch_deleted_at"
)

// BranchModel represents the `branches` table — a physical location of
// a franchise company.
type BranchModel struct {
	BranchID        uuid.UUID `json:"branch_id" gorm:"column:branch_id;type:uuid;default:gen_random_uuid();primaryKey"`
	BranchCompanyID uuid.UUID `json:"branch_company_id" gorm:"column:branch_company_id;type:uuid;not null;index"`

	BranchName     string  `json:"branch_name" gorm:"column:branch_name;type:varchar(120);not null"`
	BranchAddress  *string `json:"branch_address,omitempty" gorm:"column:branch_address;type:text"`
	BranchPhone    *string `json:"branch_phone,omitempty" gorm:"column:branch_phone;type:varchar(30)"`
	BranchImageURL *string `json:"branch_image_url,omitempty" gorm:"column:branch_image_url;type:text"`

	BranchIsActive bool `json:"branch_is_active" gorm:"column:branch_is_active;not null;default:true"`

	BranchCreatedAt time.Time  `json:"branch_created_at" gorm:"column:branch_created_at;not null;autoCreateTime"`
	BranchUpdatedAt *time.Time `json:"branch_updated_at,omitempty" gorm:"column:branch_updated_at"`
	BranchDeletedAt *time.Time `json:"branch_deleted_at,omitempty" gorm:"column:branch_deleted_at"`
}

func (BranchModel) TableName() string {
	return "branches"
}
