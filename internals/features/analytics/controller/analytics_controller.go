package controller

import (
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	classModel "edufranchise_backend/internals/features/academics/classes/model"
	enrollmentModel "edufranchise_backend/internals/features/academics/enrollments/model"
	"edufranchise_backend/internals/features/analytics/dto"
	expenseModel "edufranchise_backend/internals/features/finance/expenses/model"
	revenueModel "edufranchise_backend/internals/features/finance/revenues/model"
	withdrawalModel "edufranchise_backend/internals/features/finance/withdrawals/model"
	saleModel "edufranchise_backend/internals/features/inventory/product_sales/model"
	studentModel "edufranchise_backend/internals/features/people/students/model"
	helper "edufranchise_backend/internals/helpers"
	authhelper "edufranchise_backend/internals/helpers/auth"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// GET /api/a/analytics/financial-summary
//
// The five aggregates are independent, so they run concurrently; each
// carries the full tenant predicate of its own table.
func (ctl *AnalyticsController) GetFinancialSummary(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var q dto.FinancialSummaryQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	branchFilter, err := authhelper.EffectiveBranchFilter(tc, q.BranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	var out dto.FinancialSummaryResponse
	g, gctx := errgroup.WithContext(c.UserContext())

	g.Go(func() error {
		sc := authhelper.ForTenant(revenueModel.ColRevenueCompanyID, tc).
			WithBranch(revenueModel.ColRevenueBranchID, branchFilter)
		if q.DateFrom != nil {
			sc = sc.And("revenue_date >= ?", *q.DateFrom)
		}
		if q.DateTo != nil {
			sc = sc.And("revenue_date <= ?", *q.DateTo)
		}
		return sc.Apply(ctl.DB.WithContext(gctx).Model(&revenueModel.RevenueModel{})).
			Select("COALESCE(SUM(revenue_amount_cents), 0)").
			Scan(&out.RevenueTotalCents).Error
	})

	g.Go(func() error {
		sc := authhelper.ForTenant(expenseModel.ColExpenseCompanyID, tc).
			Alive(expenseModel.ColExpenseDeletedAt).
			WithBranchOrShared(expenseModel.ColExpenseBranchID, branchFilter)
		if q.DateFrom != nil {
			sc = sc.And("expense_date >= ?", *q.DateFrom)
		}
		if q.DateTo != nil {
			sc = sc.And("expense_date <= ?", *q.DateTo)
		}
		return sc.Apply(ctl.DB.WithContext(gctx).Model(&expenseModel.ExpenseModel{})).
			Select("COALESCE(SUM(expense_amount_cents), 0)").
			Scan(&out.ExpenseTotalCents).Error
	})

	g.Go(func() error {
		sc := authhelper.ForTenant(saleModel.ColProductSaleCompanyID, tc).
			WithBranch(saleModel.ColProductSaleBranchID, branchFilter).
			And("product_sale_is_voided = FALSE")
		if q.DateFrom != nil {
			sc = sc.And("product_sale_created_at >= ?", *q.DateFrom)
		}
		if q.DateTo != nil {
			sc = sc.And("product_sale_created_at <= ?", *q.DateTo)
		}
		return sc.Apply(ctl.DB.WithContext(gctx).Model(&saleModel.ProductSaleModel{})).
			Select("COALESCE(SUM(product_sale_total_cents), 0)").
			Scan(&out.SalesTotalCents).Error
	})

	g.Go(func() error {
		sc := authhelper.ForTenant(withdrawalModel.ColWithdrawalCompanyID, tc).
			WithBranch(withdrawalModel.ColWithdrawalBranchID, branchFilter)
		if q.DateFrom != nil {
			sc = sc.And("withdrawal_created_at >= ?", *q.DateFrom)
		}
		if q.DateTo != nil {
			sc = sc.And("withdrawal_created_at <= ?", *q.DateTo)
		}
		return sc.Apply(ctl.DB.WithContext(gctx).Model(&withdrawalModel.WithdrawalModel{})).
			Select("COALESCE(SUM(withdrawal_amount_cents), 0)").
			Scan(&out.WithdrawalTotalCents).Error
	})

	g.Go(func() error {
		sc := authhelper.ForTenant(studentModel.ColStudentCompanyID, tc).
			Alive(studentModel.ColStudentDeletedAt).
			WithBranch(studentModel.ColStudentBranchID, branchFilter).
			And("student_is_active = TRUE")
		return sc.Apply(ctl.DB.WithContext(gctx).Model(&studentModel.StudentModel{})).
			Count(&out.ActiveStudents).Error
	})

	if err := g.Wait(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute summary")
	}

	out.NetCents = out.RevenueTotalCents - out.ExpenseTotalCents
	return helper.JsonOK(c, "", out)
}

// GET /api/a/analytics/enrollment-stats — active enrollments per class.
func (ctl *AnalyticsController) GetEnrollmentStats(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var q dto.EnrollmentStatsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	branchFilter, err := authhelper.EffectiveBranchFilter(tc, q.BranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	sc := authhelper.ForTenant(classModel.ColClassCompanyID, tc).
		Alive(classModel.ColClassDeletedAt).
		WithBranch(classModel.ColClassBranchID, branchFilter)

	var rows []dto.ClassEnrollmentStat
	if err := sc.Apply(ctl.DB.Model(&classModel.ClassModel{})).
		Select("classes.class_id AS class_id, classes.class_name AS class_name, classes.class_branch_id AS branch_id, classes.class_capacity AS capacity, COUNT(e.enrollment_id) AS active_count").
		Joins("LEFT JOIN enrollments e ON e.enrollment_class_id = classes.class_id AND e.enrollment_status = ?", enrollmentModel.EnrollmentStatusActive).
		Group("classes.class_id, classes.class_name, classes.class_branch_id, classes.class_capacity").
		Order("classes.class_name ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute enrollment stats")
	}

	return helper.JsonOK(c, "", rows)
}

// GET /api/a/reports/monthly-finance
//
// Per-month, per-branch revenue and expense totals. Shared expenses
// (NULL branch) are reported under the zero branch id.
func (ctl *AnalyticsController) GetMonthlyFinanceReport(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var q dto.MonthlyFinanceQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	branchFilter, err := authhelper.EffectiveBranchFilter(tc, q.BranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	type bucketKey struct {
		Month    string
		BranchID uuid.UUID
	}
	type aggRow struct {
		Month    string
		BranchID uuid.UUID
		Total    int64
	}

	buckets := make(map[bucketKey]*dto.MonthlyFinanceRow)
	bucket := func(month string, branchID uuid.UUID) *dto.MonthlyFinanceRow {
		k := bucketKey{Month: month, BranchID: branchID}
		if r, ok := buckets[k]; ok {
			return r
		}
		r := &dto.MonthlyFinanceRow{Month: month, BranchID: branchID}
		buckets[k] = r
		return r
	}

	revSc := authhelper.ForTenant(revenueModel.ColRevenueCompanyID, tc).
		WithBranch(revenueModel.ColRevenueBranchID, branchFilter)
	if q.Year != nil {
		revSc = revSc.And("EXTRACT(YEAR FROM revenue_date) = ?", *q.Year)
	}
	var revRows []aggRow
	if err := revSc.Apply(ctl.DB.Model(&revenueModel.RevenueModel{})).
		Select("to_char(revenue_date, 'YYYY-MM') AS month, revenue_branch_id AS branch_id, COALESCE(SUM(revenue_amount_cents), 0) AS total").
		Group("month, revenue_branch_id").
		Scan(&revRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute report")
	}
	for _, r := range revRows {
		bucket(r.Month, r.BranchID).RevenueTotalCents = r.Total
	}

	expSc := authhelper.ForTenant(expenseModel.ColExpenseCompanyID, tc).
		Alive(expenseModel.ColExpenseDeletedAt).
		WithBranchOrShared(expenseModel.ColExpenseBranchID, branchFilter)
	if q.Year != nil {
		expSc = expSc.And("EXTRACT(YEAR FROM expense_date) = ?", *q.Year)
	}
	var expRows []aggRow
	if err := expSc.Apply(ctl.DB.Model(&expenseModel.ExpenseModel{})).
		Select("to_char(expense_date, 'YYYY-MM') AS month, COALESCE(expense_branch_id, '00000000-0000-0000-0000-000000000000'::uuid) AS branch_id, COALESCE(SUM(expense_amount_cents), 0) AS total").
		Group("month, branch_id").
		Scan(&expRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute report")
	}
	for _, r := range expRows {
		bucket(r.Month, r.BranchID).ExpenseTotalCents = r.Total
	}

	report := make([]*dto.MonthlyFinanceRow, 0, len(buckets))
	for _, r := range buckets {
		r.NetCents = r.RevenueTotalCents - r.ExpenseTotalCents
		report = append(report, r)
	}
	sort.Slice(report, func(i, j int) bool {
		if report[i].Month != report[j].Month {
			return report[i].Month < report[j].Month
		}
		return report[i].BranchID.String() < report[j].BranchID.String()
	})

	return helper.JsonOK(c, "", report)
}
