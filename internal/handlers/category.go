// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/inventra/inventory-backend/internal/i18n"
	"github.com/inventra/inventory-backend/internal/metrics"
	"github.com/inventra/inventory-backend/internal/middleware"
	"github.com/inventra/inventory-backend/internal/services"
	"github.com/inventra/inventory-backend/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	metrics         *metrics.Metrics
}

func NewCategoryHandler(categoryService *services.CategoryService, m *metrics.Metrics) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		metrics:         m,
	}
}

// GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(middleware.CurrentPrincipal(c))
	h.metrics.RecordCategoryOperation("list", err)
	if err != nil {
		respondError(c, err, i18n.KeyCategoryErrorList)
		return
	}

	utils.SuccessResponse(c, "", categories)
}

// GET /categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c, i18n.KeyFieldCategory)
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(middleware.CurrentPrincipal(c), id)
	h.metrics.RecordCategoryOperation("get", err)
	if err != nil {
		respondError(c, err, i18n.KeyCategoryErrorGet)
		return
	}

	utils.SuccessResponse(c, "", category)
}

// POST /categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(middleware.CurrentPrincipal(c), &req)
	h.metrics.RecordCategoryOperation("create", err)
	if err != nil {
		respondError(c, err, i18n.KeyCategoryErrorCreate)
		return
	}

	utils.CreatedResponse(c, i18n.T(lang, i18n.KeyCategoryCreated), category)
}

// PUT|PATCH /categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseID(c, i18n.KeyFieldCategory)
	if !ok {
		return
	}

	var req services.CategoryRequest
	if !bindAndValidate(c, &req) {
		return
	}

	category, err := h.categoryService.UpdateCategory(middleware.CurrentPrincipal(c), id, &req)
	h.metrics.RecordCategoryOperation("update", err)
	if err != nil {
		respondError(c, err, i18n.KeyCategoryErrorUpdate)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyCategoryUpdated), category)
}

// DELETE /categories/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseID(c, i18n.KeyFieldCategory)
	if !ok {
		return
	}

	err := h.categoryService.DeleteCategory(middleware.CurrentPrincipal(c), id)
	h.metrics.RecordCategoryOperation("delete", err)
	if err != nil {
		respondError(c, err, i18n.KeyCategoryErrorDelete)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyCategoryDeleted), nil)
}
