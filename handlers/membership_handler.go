package handlers

import (
	"foodgram/helper"
	"foodgram/middleware"
	"foodgram/services"

	"github.com/gin-gonic/gin"
)

// MembershipHandler serves the POST/DELETE toggle of a recipe in a
// per-user collection (favorites or shopping cart).
type MembershipHandler struct {
	membershipService services.MembershipService
	Helper            *helper.HTTPHelper
}

func NewMembershipHandler(membershipService services.MembershipService, h *helper.HTTPHelper) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService, Helper: h}
}

func (h *MembershipHandler) Add(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id", "recipe")
	if !ok {
		return
	}

	recipe, err := h.membershipService.Add(c.Request.Context(), id, middleware.CurrentUserID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Recipe added", recipe)
}

func (h *MembershipHandler) Remove(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id", "recipe")
	if !ok {
		return
	}

	if err := h.membershipService.Remove(c.Request.Context(), id, middleware.CurrentUserID(c)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}
