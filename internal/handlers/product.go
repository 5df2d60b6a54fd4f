// internal/handlers/product.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/electronet/electronet-backend/internal/config"
	"github.com/electronet/electronet-backend/internal/services"
	"github.com/electronet/electronet-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	pagination     config.PaginationConfig
}

func NewProductHandler(productService *services.ProductService, pagination config.PaginationConfig) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		pagination:     pagination,
	}
}

// POST /product/create/
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		respondProductError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GET /product/view/
func (h *ProductHandler) ListProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c, h.pagination.DefaultLimit, h.pagination.MaxLimit)

	products, total, err := h.productService.ListProducts(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, utils.NewPageResponse(c, products, total, params))
}

// GET /product/view/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		respondProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// PUT /product/update/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(id, &req)
	if err != nil {
		respondProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// DELETE /product/delete/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		respondProductError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondProductError(c *gin.Context, err error) {
	if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}
	if services.IsValidation(err) {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}
	if errors.Is(err, services.ErrProductNotFound) {
		utils.NotFoundResponse(c, err.Error())
		return
	}
	utils.InternalErrorResponse(c, err.Error())
}
