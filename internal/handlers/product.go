// internal/handlers/product.go
package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/inventra/inventory-backend/internal/i18n"
	"github.com/inventra/inventory-backend/internal/metrics"
	"github.com/inventra/inventory-backend/internal/middleware"
	"github.com/inventra/inventory-backend/internal/models"
	"github.com/inventra/inventory-backend/internal/services"
	"github.com/inventra/inventory-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	stockService   *services.StockService
	metrics        *metrics.Metrics
}

func NewProductHandler(productService *services.ProductService, stockService *services.StockService, m *metrics.Metrics) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		stockService:   stockService,
		metrics:        m,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	filter, validationErrors := parseProductFilter(c, lang)
	if len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	products, err := h.productService.ListProducts(middleware.CurrentPrincipal(c), filter)
	h.metrics.RecordProductOperation("list", err)
	if err != nil {
		respondError(c, err, i18n.KeyProductErrorList)
		return
	}

	utils.SuccessResponse(c, "", products)
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, i18n.KeyFieldProduct)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(middleware.CurrentPrincipal(c), id)
	h.metrics.RecordProductOperation("get", err)
	if err != nil {
		respondError(c, err, i18n.KeyProductErrorGet)
		return
	}

	utils.SuccessResponse(c, "", product)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}

	product, err := h.productService.CreateProduct(middleware.CurrentPrincipal(c), &req)
	h.metrics.RecordProductOperation("create", err)
	if err != nil {
		respondError(c, err, i18n.KeyProductErrorCreate)
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyProductCreated), product)
}

// PUT|PATCH /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseID(c, i18n.KeyFieldProduct)
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}

	product, err := h.productService.UpdateProduct(middleware.CurrentPrincipal(c), id, &req)
	h.metrics.RecordProductOperation("update", err)
	if err != nil {
		respondError(c, err, i18n.KeyProductErrorUpdate)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyProductUpdated), product)
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseID(c, i18n.KeyFieldProduct)
	if !ok {
		return
	}

	err := h.productService.DeleteProduct(middleware.CurrentPrincipal(c), id)
	h.metrics.RecordProductOperation("delete", err)
	if err != nil {
		respondError(c, err, i18n.KeyProductErrorDelete)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyProductDeleted), nil)
}

// PUT /products/:id/stock
func (h *ProductHandler) UpdateStock(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseID(c, i18n.KeyFieldProduct)
	if !ok {
		return
	}

	var req services.StockRequest
	if !bindAndValidate(c, &req) {
		return
	}

	product, err := h.stockService.SetStock(middleware.CurrentPrincipal(c), id, &req)
	h.metrics.RecordProductOperation("stock", err)
	if err != nil {
		respondError(c, err, i18n.KeyProductErrorStock)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyProductStockUpdated), product)
}

// GET /products/:id/updates
func (h *ProductHandler) GetProductUpdates(c *gin.Context) {
	id, ok := parseID(c, i18n.KeyFieldProduct)
	if !ok {
		return
	}

	updates, err := h.productService.ListUpdates(middleware.CurrentPrincipal(c), id)
	h.metrics.RecordProductOperation("history", err)
	if err != nil {
		respondError(c, err, i18n.KeyProductErrorHistory)
		return
	}

	utils.SuccessResponse(c, "", updates)
}

func parseProductFilter(c *gin.Context, lang string) (services.ProductFilter, []utils.ValidationError) {
	var (
		filter services.ProductFilter
		errs   []utils.ValidationError
	)

	if ref := c.Query("ref"); ref != "" {
		filter.Ref = &ref
	}

	if raw := c.Query("sellingPrice"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			errs = append(errs, utils.NewValidationError(lang, "sellingPrice", i18n.KeyValidationNumber))
		} else {
			filter.SellingPrice = &price
		}
	}

	if raw := c.Query("createdAt"); raw != "" {
		day, err := time.Parse(models.DateLayout, raw)
		if err != nil {
			errs = append(errs, utils.NewValidationError(lang, "createdAt", i18n.KeyValidationDate))
		} else {
			filter.CreatedAt = &day
		}
	}

	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		switch {
		case err != nil:
			errs = append(errs, utils.NewValidationError(lang, "categoryId", i18n.KeyValidationNumber))
		case id == 0:
			errs = append(errs, utils.NewValidationError(lang, "categoryId", i18n.KeyValidationPositive))
		default:
			categoryID := uint(id)
			filter.CategoryID = &categoryID
		}
	}

	return filter, errs
}
