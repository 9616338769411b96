package handler

import (
	"errors"
	"fmt"
	"net/http"

	"catalog/internal/middleware"
	"catalog/internal/model"
	"catalog/internal/service"
	"catalog/pkg/pagination"
	"catalog/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler sets up the routing dependencies for Product endpoints
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", middleware.RequireAuth(), h.List)
		products.GET("/product/:productId", middleware.RequireAuth(), h.GetByID)
		products.POST("/product/:categoryId", middleware.RequireRole(model.RoleSuperAdmin), h.Create)
		products.PUT("/:productId", middleware.RequireRole(model.RoleSuperAdmin), h.Update)
		products.PATCH("/:productId", middleware.RequireRole(model.RoleSuperAdmin), h.Patch)
		products.DELETE("/:productId", middleware.RequireRole(model.RoleSuperAdmin), h.Delete)
	}
}

// List handles GET /products with pagination controls
// @Summary      List products
// @Description  Retrieves a paginated list of products with their category
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (default 1)"
// @Param        size  query     int  false  "Number of items per page (default 10)"
// @Success      200   {object}  response.Envelope{data=[]model.Product}
// @Failure      500   {object}  response.Envelope
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	params := pagination.Parse(c)

	products, total, err := h.productService.List(c.Request.Context(), params.Offset, params.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(
			"Failed to fetch products: "+err.Error(),
			response.MetaFromRequest(c, http.StatusInternalServerError)))
		return
	}
	if products == nil {
		products = []model.Product{}
	}

	meta := response.MetaFromRequest(c, http.StatusOK).
		WithPage(pagination.TotalPages(total, params.Size), total, params.Page, params.Size)
	c.JSON(http.StatusOK, response.Success("Products retrieved successfully", products, meta))
}

// GetByID handles GET /products/product/:productId
// @Summary      Get product by ID
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      int  true  "Product ID"
// @Success      200        {object}  response.Envelope{data=model.Product}
// @Failure      404        {object}  response.Envelope
// @Router       /products/product/{productId} [get]
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "productId")
	if !ok {
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Product retrieved successfully",
		product, response.MetaFromRequest(c, http.StatusOK)))
}

// Create handles POST /products/product/:categoryId, adding a product under
// an existing category
// @Summary      Create product under a category
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        categoryId  path      int                     true  "Category ID"
// @Param        payload     body      service.ProductRequest  true  "Product payload"
// @Success      201         {object}  response.Envelope{data=model.Product}
// @Failure      404         {object}  response.Envelope
// @Router       /products/product/{categoryId} [post]
func (h *ProductHandler) Create(c *gin.Context) {
	categoryID, ok := parseID(c, "categoryId")
	if !ok {
		return
	}

	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(
			"Invalid request payload: "+err.Error(),
			response.MetaFromRequest(c, http.StatusBadRequest)))
		return
	}

	product, err := h.productService.Create(c.Request.Context(), categoryID, req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, response.Error(
				fmt.Sprintf("Category id %d not found", categoryID),
				response.MetaFromRequest(c, http.StatusNotFound)))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Error(
			"Failed to create product: "+err.Error(),
			response.MetaFromRequest(c, http.StatusInternalServerError)))
		return
	}

	c.JSON(http.StatusCreated, response.Success("Product created successfully",
		product, response.MetaFromRequest(c, http.StatusCreated)))
}

// Update handles PUT /products/:productId. Every field of the body replaces
// the stored row except id and category, which are never reassigned.
// @Summary      Update product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      int                     true  "Product ID"
// @Param        payload    body      service.ProductRequest  true  "Product payload"
// @Success      200        {object}  response.Envelope{data=model.Product}
// @Failure      404        {object}  response.Envelope
// @Router       /products/{productId} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "productId")
	if !ok {
		return
	}

	var req service.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(
			"Invalid request payload: "+err.Error(),
			response.MetaFromRequest(c, http.StatusBadRequest)))
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.renderError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Product updated successfully",
		product, response.MetaFromRequest(c, http.StatusOK)))
}

// Patch handles PATCH /products/:productId, overwriting only the supplied fields
// @Summary      Patch product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      int                          true  "Product ID"
// @Param        payload    body      service.PatchProductRequest  true  "Partial product payload"
// @Success      200        {object}  response.Envelope{data=model.Product}
// @Failure      404        {object}  response.Envelope
// @Router       /products/{productId} [patch]
func (h *ProductHandler) Patch(c *gin.Context) {
	id, ok := parseID(c, "productId")
	if !ok {
		return
	}

	var req service.PatchProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(
			"Invalid request payload: "+err.Error(),
			response.MetaFromRequest(c, http.StatusBadRequest)))
		return
	}

	product, err := h.productService.Patch(c.Request.Context(), id, req)
	if err != nil {
		h.renderError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Product updated successfully",
		product, response.MetaFromRequest(c, http.StatusOK)))
}

// Delete handles DELETE /products/:productId, returning the deleted row
// @Summary      Delete product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      int  true  "Product ID"
// @Success      200        {object}  response.Envelope{data=model.Product}
// @Failure      404        {object}  response.Envelope
// @Router       /products/{productId} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "productId")
	if !ok {
		return
	}

	product, err := h.productService.Delete(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, response.Success("Product deleted successfully",
		product, response.MetaFromRequest(c, http.StatusOK)))
}

func (h *ProductHandler) renderError(c *gin.Context, id uint, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, response.Error(
			fmt.Sprintf("Product id %d not found", id),
			response.MetaFromRequest(c, http.StatusNotFound)))
		return
	}
	c.JSON(http.StatusInternalServerError, response.Error(
		err.Error(), response.MetaFromRequest(c, http.StatusInternalServerError)))
}
