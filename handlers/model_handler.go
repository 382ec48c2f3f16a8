package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"

	"tonehunt-catalog/helper"
	"tonehunt-catalog/middleware"
	"tonehunt-catalog/models"
	"tonehunt-catalog/services"
)

type ModelHandler struct {
	modelService    services.ModelService
	categoryService services.CategoryService
	Helper          *helper.HTTPHelper
}

func NewModelHandler(modelService services.ModelService, categoryService services.CategoryService, h *helper.HTTPHelper) *ModelHandler {
	return &ModelHandler{
		modelService:    modelService,
		categoryService: categoryService,
		Helper:          h,
	}
}

func (h *ModelHandler) GetModels(c *gin.Context) {
	var req models.ModelListRequest
	if !h.bindQuery(c, &req) {
		return
	}

	categoryID, err := h.resolveCategory(c, req.Category)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	limit := pageSize(req.Limit)
	params := models.ListParams{
		Offset:        req.Page * limit,
		Limit:         limit,
		CategoryID:    categoryID,
		SortBy:        req.SortBy,
		SortDirection: req.SortDirection,
		Search:        req.Search,
		Username:      req.Username,
		ProfileID:     req.ProfileID,
		Tags:          helper.SplitList(req.Tags),
		Following:     req.Following,
		LastNDays:     req.LastNDays,
		All:           req.All,
		Viewer:        middleware.ViewerFrom(c),
	}

	page, err := h.modelService.ListModels(c.Request.Context(), params)
	if err != nil {
		c.Error(err)
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"total":      page.Total,
		"models":     page.Data,
		"pagination": h.Helper.GeneratePaging(c, limit, req.Page, page.Total),
	})
}

func (h *ModelHandler) GetTrendingModels(c *gin.Context) {
	var req models.TrendingRequest
	if !h.bindQuery(c, &req) {
		return
	}

	categoryID, err := h.resolveCategory(c, req.Category)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	limit := pageSize(req.Limit)
	params := models.TrendingParams{
		Offset:     req.Page * limit,
		Limit:      limit,
		CategoryID: categoryID,
		Tags:       helper.SplitList(req.Tags),
		Viewer:     middleware.ViewerFrom(c),
	}

	page, err := h.modelService.ListTrending(c.Request.Context(), params)
	if err != nil {
		c.Error(err)
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"total":      page.Total,
		"models":     page.Data,
		"pagination": h.Helper.GeneratePaging(c, limit, req.Page, page.Total),
	})
}

// bindQuery binds and validates the query string, writing the error response
// itself when it returns false.
func (h *ModelHandler) bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query", err.Error())
		return false
	}
	if err := h.Helper.Validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			h.Helper.SendValidationError(c, validationErrors)
			return false
		}
		h.Helper.SendBadRequest(c, "Invalid query", err.Error())
		return false
	}
	return true
}

func (h *ModelHandler) resolveCategory(c *gin.Context, slug string) (uint, error) {
	category, err := h.categoryService.ResolveSlug(c.Request.Context(), slug)
	if err != nil || category == nil {
		return 0, err
	}
	return category.ID, nil
}

func pageSize(limit int) int {
	if limit == 0 {
		return models.DefaultLimit
	}
	return limit
}
