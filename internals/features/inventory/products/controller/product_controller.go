package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edufranchise_backend/internals/features/inventory/products/dto"
	"edufranchise_backend/internals/features/inventory/products/model"
	helper "edufranchise_backend/internals/helpers"
	authhelper "edufranchise_backend/internals/helpers/auth"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

var validate = validator.New()

// POST /api/a/products
// A global product is company property: only admins may create one, and
// it carries no branch. Everything else lands in a concrete branch.
func (ctl *ProductController) CreateProduct(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.ProductName = strings.TrimSpace(req.ProductName)
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var branchID *uuid.UUID
	if req.ProductIsGlobal {
		if !authhelper.IsAdmin(tc) {
			return helper.JsonError(c, fiber.StatusForbidden, "Only admins may create global products")
		}
	} else {
		target, err := authhelper.EffectiveBranchFilter(tc, req.ProductBranchID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "You may only manage products of your own branch")
		}
		if target == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "product_branch_id is required for non-global products")
		}
		branchID = target
	}

	m := req.ToModel(tc.CompanyID, branchID)

	if fh, ferr := c.FormFile("product_image"); ferr == nil && fh != nil {
		url, upErr := helper.SaveImageAsWebP("products", fh)
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Image upload failed")
		}
		m.ProductImageURL = &url
	}

	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create product")
	}

	return helper.JsonCreated(c, "Product created", dto.NewProductResponse(m))
}

// GET /api/a/products — branch staff see their branch's products plus
// the global catalog.
func (ctl *ProductController) ListProducts(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}

	var q dto.ListProductQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	branchFilter, err := authhelper.EffectiveBranchFilter(tc, q.BranchID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 200)

	sc := authhelper.ForTenant(model.ColProductCompanyID, tc).
		Alive(model.ColProductDeletedAt).
		WithBranchOrGlobal(model.ColProductBranchID, model.ColProductIsGlobal, branchFilter)
	if q.ActiveOnly != nil {
		sc = sc.And("product_is_active = ?", *q.ActiveOnly)
	}
	if q.Category != nil && strings.TrimSpace(*q.Category) != "" {
		sc = sc.And("? = ANY(product_categories)", strings.TrimSpace(*q.Category))
	}
	if q.Search != nil && strings.TrimSpace(*q.Search) != "" {
		s := "%" + strings.ToLower(strings.TrimSpace(*q.Search)) + "%"
		sc = sc.And("LOWER(product_name) LIKE ?", s)
	}

	var total int64
	if err := sc.Apply(ctl.DB.Model(&model.ProductModel{})).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count products")
	}

	var rows []model.ProductModel
	if err := sc.Apply(ctl.DB.Model(&model.ProductModel{})).
		Order("product_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch products")
	}

	items := make([]*dto.ProductResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.NewProductResponse(&rows[i]))
	}
	return helper.JsonList(c, "", items, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /api/a/products/:id
func (ctl *ProductController) GetProductByID(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	productID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid product id")
	}

	m, ferr := ctl.findScoped(c, tc, productID)
	if ferr != nil {
		return ferr
	}

	return helper.JsonOK(c, "", dto.NewProductResponse(m))
}

// PATCH /api/a/products/:id
func (ctl *ProductController) UpdateProduct(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	productID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid product id")
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m, ferr := ctl.findScoped(c, tc, productID)
	if ferr != nil {
		return ferr
	}
	if m.ProductIsGlobal && !authhelper.IsAdmin(tc) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only admins may modify global products")
	}

	if fh, ferr := c.FormFile("product_image"); ferr == nil && fh != nil {
		url, upErr := helper.SaveImageAsWebP("products", fh)
		if upErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Image upload failed")
		}
		if m.ProductImageURL != nil {
			helper.DeleteUpload(*m.ProductImageURL)
		}
		m.ProductImageURL = &url
	}

	req.ApplyToModel(m)
	if err := ctl.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update product")
	}

	return helper.JsonUpdated(c, "Product updated", dto.NewProductResponse(m))
}

// DELETE /api/a/products/:id  (soft delete)
func (ctl *ProductController) DeleteProduct(c *fiber.Ctx) error {
	tc, err := authhelper.ResolveTenantContext(c)
	if err != nil {
		return err
	}
	productID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid product id")
	}

	m, ferr := ctl.findScoped(c, tc, productID)
	if ferr != nil {
		return ferr
	}
	if m.ProductIsGlobal && !authhelper.IsAdmin(tc) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only admins may modify global products")
	}

	now := time.Now()
	if err := ctl.DB.Model(&model.ProductModel{}).
		Where(model.ColProductID+" = ?", m.ProductID).
		Updates(map[string]any{
			"product_deleted_at": now,
			"product_is_active":  false,
			"product_updated_at": now,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete product")
	}

	return helper.JsonDeleted(c, "Product deactivated", fiber.Map{"product_id": productID})
}

// findScoped fetches one product under the caller's scope. Global
// products are readable by any branch of the company.
func (ctl *ProductController) findScoped(c *fiber.Ctx, tc authhelper.TenantContext, productID uuid.UUID) (*model.ProductModel, error) {
	var m model.ProductModel
	if err := authhelper.ForTenant(model.ColProductCompanyID, tc).
		WithID(model.ColProductID, productID).
		Alive(model.ColProductDeletedAt).
		Apply(ctl.DB).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Product not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch product")
	}

	if !m.ProductIsGlobal && !authhelper.CanAccessBranch(tc, m.ProductBranchID) {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "This product is outside your branch")
	}
	return &m, nil
}
