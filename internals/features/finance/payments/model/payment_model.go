package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ColPaymentID        = "payment_id"
	ColPaymentCompanyID = "payment_company_id"
	ColPaymentBranchID  = "payment_branch_id"
	ColPaymentOrderID   = "payment_order_id"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// PaymentModel represents the `payments` table: one monthly tuition
// charge for an enrollment, settled through the payment gateway. The
// order id is what the gateway echoes back in its notification.
type PaymentModel struct {
	PaymentID        uuid.UUID `json:"payment_id" gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	PaymentCompanyID uuid.UUID `json:"payment_company_id" gorm:"column:payment_company_id;type:uuid;not null;index"`
	PaymentBranchID  uuid.UUID `json:"payment_branch_id" gorm:"column:payment_branch_id;type:uuid;not null;index"`

	PaymentEnrollmentID uuid.UUID `json:"payment_enrollment_id" gorm:"column:payment_enrollment_id;type:uuid;not null;index"`

	PaymentOrderID string `json:"payment_order_id" gorm:"column:payment_order_id;type:varchar(64);unique;not null"`
	// "2026-08" — the month this charge covers.
	PaymentPeriod string `json:"payment_period" gorm:"column:payment_period;type:varchar(7);not null"`

	PaymentAmountCents int64  `json:"payment_amount_cents" gorm:"column:payment_amount_cents;not null"`
	PaymentStatus      string `json:"payment_status" gorm:"column:payment_status;type:varchar(20);not null;default:'pending'"`

	PaymentSnapToken *string `json:"payment_snap_token,omitempty" gorm:"column:payment_snap_token;type:text"`

	PaymentPaidAt    *time.Time `json:"payment_paid_at,omitempty" gorm:"column:payment_paid_at"`
	PaymentCreatedAt time.Time  `json:"payment_created_at" gorm:"column:payment_created_at;not null;autoCreateTime"`
	PaymentUpdatedAt *time.Time `json:"payment_updated_at,omitempty" gorm:"column:payment_updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
