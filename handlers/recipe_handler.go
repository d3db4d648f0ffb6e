package handlers

import (
	"net/http"

	"foodgram/helper"
	"foodgram/middleware"
	"foodgram/models"
	"foodgram/services"

	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	recipeService       services.RecipeService
	shoppingListService services.ShoppingListService
	Helper              *helper.HTTPHelper
}

func NewRecipeHandler(recipeService services.RecipeService, shoppingListService services.ShoppingListService, h *helper.HTTPHelper) *RecipeHandler {
	return &RecipeHandler{
		recipeService:       recipeService,
		shoppingListService: shoppingListService,
		Helper:              h,
	}
}

func requester(c *gin.Context) services.Requester {
	return services.Requester{ID: middleware.CurrentUserID(c), Role: middleware.CurrentRole(c)}
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req models.RecipeWriteRequest
	img, err := bindRecipeBody(c, &req, func() string { return req.Image })
	if err != nil {
		h.sendBodyError(c, err)
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), req, img, middleware.CurrentUserID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Recipe created successfully", recipe)
}

func (h *RecipeHandler) GetRecipes(c *gin.Context) {
	var params models.RecipeListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindError(c, err)
		return
	}

	recipes, total, err := h.recipeService.GetRecipes(c.Request.Context(), params, middleware.CurrentUserID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendPage(c, "Success", recipes, params.PageParams, total)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id", "recipe")
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), id, middleware.CurrentUserID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", recipe)
}

// UpdateRecipe serves both PUT and PATCH.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id", "recipe")
	if !ok {
		return
	}

	var req models.RecipeUpdateRequest
	img, err := bindRecipeBody(c, &req, func() string {
		if req.Image == nil {
			return ""
		}
		return *req.Image
	})
	if err != nil {
		h.sendBodyError(c, err)
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), id, req, img, requester(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Recipe updated successfully", recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := parseID(c, h.Helper, "id", "recipe")
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), id, requester(c)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendNoContent(c)
}

// DownloadShoppingCart sends the aggregated shopping list as a text file.
func (h *RecipeHandler) DownloadShoppingCart(c *gin.Context) {
	content, err := h.shoppingListService.Render(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+services.ShoppingListFilename)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", content)
}

func (h *RecipeHandler) sendBodyError(c *gin.Context, err error) {
	if h.Helper.GetStatusCode(err) != http.StatusInternalServerError {
		h.Helper.SendServiceError(c, err)
		return
	}
	h.Helper.SendBindError(c, err)
}
