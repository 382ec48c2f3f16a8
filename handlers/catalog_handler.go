package handlers

import (
	"github.com/gin-gonic/gin"

	"tonehunt-catalog/helper"
	"tonehunt-catalog/services"
)

// CatalogHandler serves the small lookup tables the listing pages render
// alongside models.
type CatalogHandler struct {
	countsService   services.CountsService
	categoryService services.CategoryService
	Helper          *helper.HTTPHelper
}

func NewCatalogHandler(countsService services.CountsService, categoryService services.CategoryService, h *helper.HTTPHelper) *CatalogHandler {
	return &CatalogHandler{
		countsService:   countsService,
		categoryService: categoryService,
		Helper:          h,
	}
}

func (h *CatalogHandler) GetCounts(c *gin.Context) {
	counts, err := h.countsService.GetCounts(c.Request.Context())
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", counts)
}

func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories(c.Request.Context())
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", categories)
}
