// internal/handlers/network_node.go
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

type NetworkNodeHandler struct {
	networkService *services.NetworkService
	pagination     config.PaginationConfig
}

func NewNetworkNodeHandler(networkService *services.NetworkService, pagination config.PaginationConfig) *NetworkNodeHandler {
	return &NetworkNodeHandler{
		networkService: networkService,
		pagination:     pagination,
	}
}

// POST /networknode/create/
func (h *NetworkNodeHandler) CreateNode(c *gin.Context) {
	var req services.NodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	node, err := h.networkService.CreateNode(&req)
	if err != nil {
		respondNodeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, node)
}

// GET /networknode/view/
func (h *NetworkNodeHandler) ListNodes(c *gin.Context) {
	params := services.NodeListParams{
		PaginationParams: utils.GetPaginationParams(c, h.pagination.DefaultLimit, h.pagination.MaxLimit),
		Country:          c.Query("country"),
	}

	nodes, total, err := h.networkService.ListNodes(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, utils.NewPageResponse(c, nodes, total, params.PaginationParams))
}

// GET /networknode/view/:id
func (h *NetworkNodeHandler) GetNode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid node ID", nil)
		return
	}

	node, err := h.networkService.GetNode(id)
	if err != nil {
		respondNodeError(c, err)
		return
	}

	c.JSON(http.StatusOK, node)
}

// PUT /networknode/update/:id
func (h *NetworkNodeHandler) UpdateNode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid node ID", nil)
		return
	}

	var req services.NodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	node, err := h.networkService.UpdateNode(id, &req)
	if err != nil {
		respondNodeError(c, err)
		return
	}

	c.JSON(http.StatusOK, node)
}

// DELETE /networknode/delete/:id
func (h *NetworkNodeHandler) DeleteNode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid node ID", nil)
		return
	}

	if err := h.networkService.DeleteNode(id); err != nil {
		respondNodeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondNodeError(c *gin.Context, err error) {
	if validationErrors := utils.GetValidationErrors(err); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}
	if services.IsValidation(err) {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}
	if errors.Is(err, services.ErrNodeNotFound) {
		utils.NotFoundResponse(c, err.Error())
		return
	}
	utils.InternalErrorResponse(c, err.Error())
}
