package dto

import (
	"time"

	"github.com/google/uuid"

	"edufranchise_backend/internals/features/finance/payments/model"
)

type CreatePaymentRequest struct {
	PaymentEnrollmentID uuid.UUID `json:"payment_enrollment_id" validate:"required"`
	// "2026-08"
	PaymentPeriod string  `json:"payment_period" validate:"required,len=7"`
	PayerName     string  `json:"payer_name" validate:"required,min=2,max=120"`
	PayerEmail    *string `json:"payer_email" validate:"omitempty,email"`
}

type ListPaymentQuery struct {
	BranchID     *uuid.UUID `query:"branch_id"`
	EnrollmentID *uuid.UUID `query:"enrollment_id"`
	Status       *string    `query:"status"`
	Period       *string    `query:"period"`
}

type PaymentResponse struct {
	PaymentID           uuid.UUID  `json:"payment_id"`
	PaymentCompanyID    uuid.UUID  `json:"payment_company_id"`
	PaymentBranchID     uuid.UUID  `json:"payment_branch_id"`
	PaymentEnrollmentID uuid.UUID  `json:"payment_enrollment_id"`
	PaymentOrderID      string     `json:"payment_order_id"`
	PaymentPeriod       string     `json:"payment_period"`
	PaymentAmountCents  int64      `json:"payment_amount_cents"`
	PaymentStatus       string     `json:"payment_status"`
	PaymentSnapToken    *string    `json:"payment_snap_token,omitempty"`
	PaymentPaidAt       *time.Time `json:"payment_paid_at,omitempty"`
	PaymentCreatedAt    time.Time  `json:"payment_created_at"`
}

func NewPaymentResponse(m *model.PaymentModel) *PaymentResponse {
	if m == nil {
		return nil
	}
	return &PaymentResponse{
		PaymentID:           m.PaymentID,
		PaymentCompanyID:    m.PaymentCompanyID,
		PaymentBranchID:     m.PaymentBranchID,
		PaymentEnrollmentID: m.PaymentEnrollmentID,
		PaymentOrderID:      m.PaymentOrderID,
		PaymentPeriod:       m.PaymentPeriod,
		PaymentAmountCents:  m.PaymentAmountCents,
		PaymentStatus:       m.PaymentStatus,
		PaymentSnapToken:    m.PaymentSnapToken,
		PaymentPaidAt:       m.PaymentPaidAt,
		PaymentCreatedAt:    m.PaymentCreatedAt,
	}
}
