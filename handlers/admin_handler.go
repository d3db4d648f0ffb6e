package handlers

import (
	"foodgram/helper"
	"foodgram/models"
	"foodgram/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService services.AdminService
	Helper       *helper.HTTPHelper
}

func NewAdminHandler(adminService services.AdminService, h *helper.HTTPHelper) *AdminHandler {
	return &AdminHandler{adminService: adminService, Helper: h}
}

// GetRecipeStats lists recipes with author email and favorites count,
// filtered by ?search= and ?tags=.
func (h *AdminHandler) GetRecipeStats(c *gin.Context) {
	var params models.AdminRecipeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	stats, total, err := h.adminService.GetRecipeStats(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendPage(c, "Success", stats, params.PageParams, total)
}
