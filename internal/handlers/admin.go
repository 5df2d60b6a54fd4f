// internal/handlers/admin.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/electronet/electronet-backend/internal/services"
	"github.com/electronet/electronet-backend/internal/utils"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

type nullifyDebtRequest struct {
	NodeIDs []uuid.UUID `json:"node_ids"`
}

// POST /admin/networknode/nullify-debt/
func (h *AdminHandler) NullifyDebt(c *gin.Context) {
	var req nullifyDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	updated, err := h.adminService.NullifyDebt(req.NodeIDs)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"updated": updated,
		"message": services.NullifyDebtMessage(updated),
	})
}
