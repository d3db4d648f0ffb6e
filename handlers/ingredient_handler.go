package handlers

import (
	"foodgram/helper"
	"foodgram/models"
	"foodgram/services"

	"github.com/gin-gonic/gin"
)

type IngredientHandler struct {
	ingredientService services.IngredientService
	Helper            *helper.HTTPHelper
}

func NewIngredientHandler(ingredientService services.IngredientService, h *helper.HTTPHelper) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService, Helper: h}
}

func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	var req models.CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	ingredient, err := h.ingredientService.CreateIngredient(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Ingredient created successfully", ingredient)
}

// GetIngredients lists ingredients, optionally by name prefix (?search=).
func (h *IngredientHandler) GetIngredients(c *gin.Context) {
	var params models.IngredientSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	ingredients, err := h.ingredientService.SearchIngredients(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}
	if ingredients == nil {
		ingredients = []models.Ingredient{}
	}

	h.Helper.SendSuccess(c, "Success", ingredients)
}

func (h *IngredientHandler) GetIngredient(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id", "ingredient")
	if !ok {
		return
	}

	ingredient, err := h.ingredientService.GetIngredient(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", ingredient)
}
