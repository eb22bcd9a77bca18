package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyModel represents the `companies` table — one row per tenant.
type CompanyModel struct {
	CompanyID uuid.UUID `json:"company_id" gorm:"column:company_id;type:uuid;default:gen_random_uuid();primaryKey"`

	CompanyName  string  `json:"company_name" gorm:"column:company_name;type:varchar(160);unique;not null"`
	CompanyEmail string  `json:"company_email" gorm:"column:company_email;type:varchar(160);not null"`
	CompanyPhone *string `json:"company_phone,omitempty" gorm:"column:company_phone;type:varchar(30)"`

	CompanyIsActive bool `json:"company_is_active" gorm:"column:company_is_active;not null;default:true"`

	CompanyCreatedAt time.Time  `json:"company_created_at" gorm:"column:company_created_at;not null;autoCreateTime"`
	CompanyUpdatedAt *time.Time `json:"company_updated_at,omitempty" gorm:"column:company_updated_at"`
}

func (CompanyModel) TableName() string {
	return "companies"
}
