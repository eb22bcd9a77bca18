package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "edufranchise_backend/internals/features/academics/classes/model"
	courseModel "edufranchise_backend/internals/features/academics/courses/model"
	enrollmentModel "edufranchise_backend/internals/features/academics/enrollments/model"
	cashModel "edufranchise_backend/internals/features/finance/cash/model"
	"edufranchise_backend/internals/features/finance/payments/dto"
	"edufranchise_backend/internals/features/finance/payments/model"
	"edufranchise_backend/internals/features/finance/payments/service"
	revenueModel "edufranchise_backend/internals/features/finance/revenues/model"
	helper "edufranchise_backend/internals/helpers"
	authhelper "edufranchise_backend/internals/helpers/auth"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

var validate = validator.New()

// POST /api/a/payments
//
// Creates a pending tuition charge for an enrollment and returns the
// Snap token the client pays with. The amount is the enrollment's fee
// override when set, otherwise the course's catalog fee.
func (ctl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if _, perr := time.Parse("2006-01", req.PaymentPeriod); perr != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment_period must look like 2026-08")
	}

	var enrollment enrollmentModel.EnrollmentModel
	if err := authhelper.ForTenant(enrollmentModel.ColEnrollmentCompanyID, tc).
		WithID(enrollmentModel.ColEnrollmentID, req.PaymentEnrollmentID).
		Apply(ctl.DB).
		First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollment")
	}
	if !authhelper.CanAccessBranch(tc, &enrollment.EnrollmentBranchID) {
		return helper.JsonError(c, fiber.StatusForbidden, "This enrollment is outside your branch")
	}
	if enrollment.EnrollmentStatus != enrollmentModel.EnrollmentStatusActive {
		return helper.JsonError(c, fiber.StatusConflict, "Enrollment is not active")
	}

	amount, err := ctl.resolveTuition(&enrollment)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve tuition fee")
	}
	if amount <= 0 {
		return helper.JsonError(c, fiber.StatusConflict, "No tuition fee is configured for this enrollment")
	}

	var existing int64
	if err := ctl.DB.Model(&model.PaymentModel{}).
		Where("payment_enrollment_id = ? AND payment_period = ? AND payment_status IN ?",
			enrollment.EnrollmentID, req.PaymentPeriod, []string{model.PaymentStatusPending, model.PaymentStatusPaid}).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing payments")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "A payment for this period already exists")
	}

	m := &model.PaymentModel{
		PaymentCompanyID:    tc.CompanyID,
		PaymentBranchID:     enrollment.EnrollmentBranchID,
		PaymentEnrollmentID: enrollment.EnrollmentID,
		PaymentOrderID:      fmt.Sprintf("TUITION-%d", time.Now().UnixNano()),
		PaymentPeriod:       req.PaymentPeriod,
		PaymentAmountCents:  amount,
		PaymentStatus:       model.PaymentStatusPending,
	}
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create payment")
	}

	payerEmail := tc.Email
	if req.PayerEmail != nil {
		payerEmail = *req.PayerEmail
	}
	token, err := service.GenerateSnapToken(m, req.PayerName, payerEmail)
	if err != nil {
		log.Printf("[ERROR] snap token for order %s: %v", m.PaymentOrderID, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to create payment transaction")
	}
	m.PaymentSnapToken = &token
	now := time.Now()
	m.PaymentUpdatedAt = &now
	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store payment token")
	}

	return helper.JsonCreated(c, "Payment created, proceed with the Snap token", dto.NewPaymentResponse(m))
}

// GET /api/a/payments
func (ctl *PaymentController) ListPayments(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var q dto.ListPaymentQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	branchFilter, err := authhelper.EffectiveBranchFilter(tc, q.BranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	sc := authhelper.ForTenant(model.ColPaymentCompanyID, tc).
		WithBranch(model.ColPaymentBranchID, branchFilter)
	if q.EnrollmentID != nil {
		sc = sc.And("payment_enrollment_id = ?", *q.EnrollmentID)
	}
	if q.Status != nil {
		sc = sc.And("payment_status = ?", *q.Status)
	}
	if q.Period != nil {
		sc = sc.And("payment_period = ?", *q.Period)
	}

	var total int64
	if err := sc.Apply(ctl.DB.Model(&model.PaymentModel{})).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count payments")
	}

	var rows []model.PaymentModel
	if err := sc.Apply(ctl.DB.Model(&model.PaymentModel{})).
		Order("payment_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	items := make([]*dto.PaymentResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewPaymentResponse(&rows[i]))
	}
	return helper.JsonList(c, "", items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/payments/:id
func (ctl *PaymentController) GetPaymentByID(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	paymentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment id")
	}

	var m model.PaymentModel
	if err := authhelper.ForTenant(model.ColPaymentCompanyID, tc).
		WithID(model.ColPaymentID, paymentID).
		Apply(ctl.DB).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payment")
	}

	if !authhelper.CanAccessBranch(tc, &m.PaymentBranchID) {
		return helper.JsonError(c, fiber.StatusForbidden, "This payment is outside your branch")
	}

	return helper.JsonOK(c, "", dto.NewPaymentResponse(&m))
}

// POST /api/payments/notification — gateway webhook, no bearer token.
//
// Settlement marks the payment paid and, in the same transaction,
// writes the tuition revenue row and credits the branch ledger.
// Notifications are retried by the gateway, so a payment that is
// already settled is acknowledged without being booked twice.
func (ctl *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	if orderID == "" || transactionStatus == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	var m model.PaymentModel
	if err := ctl.DB.Where(model.ColPaymentOrderID+" = ?", orderID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WARNING] notification for unknown order %s", orderID)
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	now := time.Now()
	switch transactionStatus {
	case "settlement", "capture":
		if m.PaymentStatus == model.PaymentStatusPaid {
			return c.SendStatus(fiber.StatusOK)
		}
		txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&model.PaymentModel{}).
				Where(model.ColPaymentID+" = ?", m.PaymentID).
				Updates(map[string]any{
					"payment_status":     model.PaymentStatusPaid,
					"payment_paid_at":    now,
					"payment_updated_at": now,
				}).Error; err != nil {
				return err
			}

			desc := fmt.Sprintf("Tuition %s (order %s)", m.PaymentPeriod, m.PaymentOrderID)
			if err := tx.Create(&revenueModel.RevenueModel{
				RevenueCompanyID:   m.PaymentCompanyID,
				RevenueBranchID:    m.PaymentBranchID,
				RevenueSource:      revenueModel.RevenueSourceTuition,
				RevenueDescription: &desc,
				RevenueReferenceID: &m.PaymentID,
				RevenueAmountCents: m.PaymentAmountCents,
				RevenueDate:        now,
			}).Error; err != nil {
				return err
			}

			return tx.Model(&cashModel.CashLedgerModel{}).
				Where(cashModel.ColCashLedgerBranchID+" = ? AND "+cashModel.ColCashLedgerCompanyID+" = ?", m.PaymentBranchID, m.PaymentCompanyID).
				Updates(map[string]any{
					"cash_ledger_balance_cents": gorm.Expr("cash_ledger_balance_cents + ?", m.PaymentAmountCents),
					"cash_ledger_updated_at":    now,
				}).Error
		})
		if txErr != nil {
			log.Printf("[ERROR] settling order %s: %v", orderID, txErr)
			return c.SendStatus(fiber.StatusInternalServerError)
		}
	case "deny", "cancel", "expire", "failure":
		if err := ctl.DB.Model(&model.PaymentModel{}).
			Where(model.ColPaymentID+" = ? AND payment_status = ?", m.PaymentID, model.PaymentStatusPending).
			Updates(map[string]any{
				"payment_status":     model.PaymentStatusFailed,
				"payment_updated_at": now,
			}).Error; err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
	default:
		// pending and friends: nothing to do yet
	}

	return c.SendStatus(fiber.StatusOK)
}

func (ctl *PaymentController) resolveTuition(enrollment *enrollmentModel.EnrollmentModel) (int64, error) {
	if enrollment.EnrollmentMonthlyFeeCentsOverride != nil {
		return *enrollment.EnrollmentMonthlyFeeCentsOverride, nil
	}

	var class classModel.ClassModel
	if err := ctl.DB.
		Where(classModel.ColClassID+" = ?", enrollment.EnrollmentClassID).
		First(&class).Error; err != nil {
		return 0, err
	}
	var course courseModel.CourseModel
	if err := ctl.DB.
		Where(courseModel.ColCourseID+" = ?", class.ClassCourseID).
		First(&course).Error; err != nil {
		return 0, err
	}
	return course.CourseMonthlyFeeCents, nil
}
