package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"catalog/internal/middleware"
	"catalog/internal/model"
	"catalog/internal/service"
	"catalog/pkg/pagination"
	"catalog/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler sets up the routing dependencies for Category endpoints
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories")
	{
		categories.GET("", middleware.RequireAuth(), h.List)
		categories.GET("/:categoryId", middleware.RequireAuth(), h.GetByID)
		categories.POST("/category", middleware.RequireRole(model.RoleSuperAdmin), h.Create)
		categories.PUT("/:categoryId", middleware.RequireRole(model.RoleSuperAdmin), h.Update)
		categories.PATCH("/:categoryId", middleware.RequireRole(model.RoleSuperAdmin), h.Patch)
		categories.DELETE("/:categoryId", middleware.RequireRole(model.RoleSuperAdmin), h.Delete)
	}
}

// parseID reads a numeric path parameter. A non-numeric value yields 400.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(
			"Invalid "+name+" path parameter",
			response.MetaFromRequest(c, http.StatusBadRequest)))
		return 0, false
	}
	return uint(id), true
}

// List handles GET /categories with pagination controls
// @Summary      List categories
// @Description  Retrieves a paginated list of categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (default 1)"
// @Param        size  query     int  false  "Number of items per page (default 10)"
// @Success      200   {object}  response.Envelope{data=[]model.Category}
// @Failure      500   {object}  response.Envelope
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	params := pagination.Parse(c)

	categories, total, err := h.categoryService.List(c.Request.Context(), params.Offset, params.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(
			"Failed to fetch categories: "+err.Error(),
			response.MetaFromRequest(c, http.StatusInternalServerError)))
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}

	meta := response.MetaFromRequest(c, http.StatusOK).
		WithPage(pagination.TotalPages(total, params.Size), total, params.Page, params.Size)
	c.JSON(http.StatusOK, response.Success("Categories retrieved successfully", categories, meta))
}

// GetByID handles GET /categories/:categoryId
// @Summary      Get category by ID
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        categoryId  path      int  true  "Category ID"
// @Success      200         {object}  response.Envelope{data=model.Category}
// @Failure      404         {object}  response.Envelope
// @Router       /categories/{categoryId} [get]
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "categoryId")
	if !ok {
		return
	}

	category, err := h.categoryService.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Category retrieved successfully",
		category, response.MetaFromRequest(c, http.StatusOK)))
}

// Create handles POST /categories/category
// @Summary      Create category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CategoryRequest  true  "Category payload"
// @Success      201      {object}  response.Envelope{data=model.Category}
// @Failure      400      {object}  response.Envelope
// @Router       /categories/category [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req service.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(
			"Invalid request payload: "+err.Error(),
			response.MetaFromRequest(c, http.StatusBadRequest)))
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(
			"Failed to create category: "+err.Error(),
			response.MetaFromRequest(c, http.StatusInternalServerError)))
		return
	}

	c.JSON(http.StatusCreated, response.Success("Category created successfully",
		category, response.MetaFromRequest(c, http.StatusCreated)))
}

// Update handles PUT /categories/:categoryId, replacing every field while
// keeping the stored id
// @Summary      Update category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        categoryId  path      int                      true  "Category ID"
// @Param        payload     body      service.CategoryRequest  true  "Category payload"
// @Success      200         {object}  response.Envelope{data=model.Category}
// @Failure      404         {object}  response.Envelope
// @Router       /categories/{categoryId} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "categoryId")
	if !ok {
		return
	}

	var req service.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(
			"Invalid request payload: "+err.Error(),
			response.MetaFromRequest(c, http.StatusBadRequest)))
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.renderError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Category updated successfully",
		category, response.MetaFromRequest(c, http.StatusOK)))
}

// Patch handles PATCH /categories/:categoryId, overwriting only the supplied fields
// @Summary      Patch category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        categoryId  path      int                           true  "Category ID"
// @Param        payload     body      service.PatchCategoryRequest  true  "Partial category payload"
// @Success      200         {object}  response.Envelope{data=model.Category}
// @Failure      404         {object}  response.Envelope
// @Router       /categories/{categoryId} [patch]
func (h *CategoryHandler) Patch(c *gin.Context) {
	id, ok := parseID(c, "categoryId")
	if !ok {
		return
	}

	var req service.PatchCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(
			"Invalid request payload: "+err.Error(),
			response.MetaFromRequest(c, http.StatusBadRequest)))
		return
	}

	category, err := h.categoryService.Patch(c.Request.Context(), id, req)
	if err != nil {
		h.renderError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Category updated successfully",
		category, response.MetaFromRequest(c, http.StatusOK)))
}

// Delete handles DELETE /categories/:categoryId, returning the deleted row
// @Summary      Delete category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        categoryId  path      int  true  "Category ID"
// @Success      200         {object}  response.Envelope{data=model.Category}
// @Failure      404         {object}  response.Envelope
// @Router       /categories/{categoryId} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "categoryId")
	if !ok {
		return
	}

	category, err := h.categoryService.Delete(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Category deleted successfully",
		category, response.MetaFromRequest(c, http.StatusOK)))
}

func (h *CategoryHandler) renderError(c *gin.Context, id uint, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, response.Error(
			fmt.Sprintf("Category id %d not found", id),
			response.MetaFromRequest(c, http.StatusNotFound)))
		return
	}
	c.JSON(http.StatusInternalServerError, response.Error(
		err.Error(), response.MetaFromRequest(c, http.StatusInternalServerError)))
}
