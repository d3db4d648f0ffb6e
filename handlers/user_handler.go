package handlers

import (
	"foodgram/helper"
	"foodgram/middleware"
	"foodgram/models"
	"foodgram/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService         services.UserService
	subscriptionService services.SubscriptionService
	Helper              *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, subscriptionService services.SubscriptionService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, subscriptionService: subscriptionService, Helper: h}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	var page models.PageParams
	if err := c.ShouldBindQuery(&page); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	users, total, err := h.userService.GetUsers(page, middleware.CurrentUserID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendPage(c, "Success", users, page, total)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	user, err := h.userService.GetUser(userID, userID)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", user)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(id, middleware.CurrentUserID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", user)
}

func (h *UserHandler) GetSubscriptions(c *gin.Context) {
	var page models.PageParams
	if err := c.ShouldBindQuery(&page); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	subs, total, err := h.subscriptionService.GetSubscriptions(c.Request.Context(), middleware.CurrentUserID(c), page)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendPage(c, "Success", subs, page, total)
}

func (h *UserHandler) Subscribe(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id", "user")
	if !ok {
		return
	}

	sub, err := h.subscriptionService.Subscribe(c.Request.Context(), id, middleware.CurrentUserID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Subscribed", sub)
}

func (h *UserHandler) Unsubscribe(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id", "user")
	if !ok {
		return
	}

	if err := h.subscriptionService.Unsubscribe(c.Request.Context(), id, middleware.CurrentUserID(c)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}
