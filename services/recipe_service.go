package services

import (
	"context"
	"fmt"

	"foodgram/authz"
	"foodgram/logging"
	"foodgram/metrics"
	"foodgram/models"
	"foodgram/repositories"
	"foodgram/storage"
)

// Requester is the authenticated caller of a mutation.
type Requester struct {
	ID   uint
	Role models.UserRole
}

// Authorizer decides whether a role may act on an object.
type Authorizer interface {
	Allowed(role, obj, act string) bool
}

type RecipeService interface {
	CreateRecipe(ctx context.Context, req models.RecipeWriteRequest, img *Image, userID uint) (*models.RecipeResponse, error)
	UpdateRecipe(ctx context.Context, id uint, req models.RecipeUpdateRequest, img *Image, requester Requester) (*models.RecipeResponse, error)
	GetRecipe(ctx context.Context, id uint, requesterID uint) (*models.RecipeResponse, error)
	GetRecipes(ctx context.Context, params models.RecipeListParams, requesterID uint) ([]models.RecipeResponse, int64, error)
	DeleteRecipe(ctx context.Context, id uint, requester Requester) error
}

type recipeService struct {
	recipeRepo repositories.RecipeRepository
	tags       TagService
	store      storage.ImageStore
	projector  *Projector
	authorizer Authorizer
}

func NewRecipeService(
	recipeRepo repositories.RecipeRepository,
	tags TagService,
	store storage.ImageStore,
	projector *Projector,
	authorizer Authorizer,
) RecipeService {
	return &recipeService{
		recipeRepo: recipeRepo,
		tags:       tags,
		store:      store,
		projector:  projector,
		authorizer: authorizer,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req models.RecipeWriteRequest, img *Image, userID uint) (*models.RecipeResponse, error) {
	if img == nil {
		return nil, models.ErrorValidation{Field: "image", Message: "image is required"}
	}
	tags, err := s.tags.GetTagsByIDs(req.Tags)
	if err != nil {
		return nil, err
	}
	ingredients, err := ingredientAmounts(req.Ingredients)
	if err != nil {
		return nil, err
	}

	key, err := s.saveImage(ctx, img)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		AuthorID:    userID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       key,
	}
	if err := s.recipeRepo.Create(recipe, tags, ingredients); err != nil {
		s.dropImage(ctx, key)
		return nil, err
	}

	metrics.RecipesCreated.Inc()
	logging.Ctx(ctx).Info().Uint("recipe_id", recipe.ID).Uint("author_id", userID).Msg("recipe created")

	return s.GetRecipe(ctx, recipe.ID, userID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req models.RecipeUpdateRequest, img *Image, requester Requester) (*models.RecipeResponse, error) {
	recipe, err := s.recipeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkModify(recipe, requester); err != nil {
		return nil, err
	}

	tags, err := s.tags.GetTagsByIDs(req.Tags)
	if err != nil {
		return nil, err
	}
	ingredients, err := ingredientAmounts(req.Ingredients)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		recipe.Name = *req.Name
	}
	if req.Text != nil {
		recipe.Text = *req.Text
	}
	if req.CookingTime != nil {
		recipe.CookingTime = *req.CookingTime
	}

	oldImage := recipe.Image
	if img != nil {
		key, err := s.saveImage(ctx, img)
		if err != nil {
			return nil, err
		}
		recipe.Image = key
	}

	// Save must not write the preloaded relations back.
	recipe.Tags = nil
	recipe.Ingredients = nil
	recipe.Author = models.User{}

	if err := s.recipeRepo.Update(recipe, tags, ingredients); err != nil {
		if recipe.Image != oldImage {
			s.dropImage(ctx, recipe.Image)
		}
		return nil, err
	}
	if recipe.Image != oldImage {
		s.dropImage(ctx, oldImage)
	}

	logging.Ctx(ctx).Info().Uint("recipe_id", recipe.ID).Uint("user_id", requester.ID).Msg("recipe updated")

	return s.GetRecipe(ctx, recipe.ID, requester.ID)
}

func (s *recipeService) GetRecipe(ctx context.Context, id uint, requesterID uint) (*models.RecipeResponse, error) {
	recipe, err := s.recipeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.projector.Recipe(*recipe, requesterID)
}

func (s *recipeService) GetRecipes(ctx context.Context, params models.RecipeListParams, requesterID uint) ([]models.RecipeResponse, int64, error) {
	filter := repositories.NewRecipeFilter(params, requesterID)
	if len(filter.TagSlugs) > 0 {
		if err := s.tags.CheckSlugs(filter.TagSlugs); err != nil {
			return nil, 0, err
		}
	}
	recipes, total, err := s.recipeRepo.GetList(filter, params.PageParams)
	if err != nil {
		return nil, 0, err
	}

	out, err := s.projector.Recipes(recipes, requesterID)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint, requester Requester) error {
	recipe, err := s.recipeRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.checkModify(recipe, requester); err != nil {
		return err
	}

	if err := s.recipeRepo.Delete(id); err != nil {
		return err
	}
	s.dropImage(ctx, recipe.Image)

	metrics.RecipesDeleted.Inc()
	logging.Ctx(ctx).Info().Uint("recipe_id", id).Uint("user_id", requester.ID).Msg("recipe deleted")
	return nil
}

// checkModify allows the author, or a role granted modify_any on recipes.
func (s *recipeService) checkModify(recipe *models.Recipe, requester Requester) error {
	if recipe.AuthorID == requester.ID {
		return nil
	}
	if s.authorizer != nil && s.authorizer.Allowed(string(requester.Role), authz.ObjRecipes, authz.ActModifyAny) {
		return nil
	}
	return models.ErrorForbidden{Message: "only the author can modify this recipe"}
}

// resolveTags loads every requested tag; an unknown id is a validation error.
func ingredientAmounts(items []models.IngredientAmountRequest) ([]models.IngredientAmount, error) {
	if len(items) == 0 {
		return nil, models.ErrorValidation{Field: "ingredients", Message: "at least one ingredient is required"}
	}

	out := make([]models.IngredientAmount, 0, len(items))
	seen := make(map[uint]bool, len(items))
	for _, item := range items {
		if item.Amount <= 0 {
			return nil, models.ErrorValidation{Field: "ingredients.amount", Message: "amount must be greater than 0"}
		}
		if seen[item.ID] {
			return nil, models.ErrorValidation{Field: "ingredients", Message: fmt.Sprintf("ingredient %d is listed twice", item.ID)}
		}
		seen[item.ID] = true
		out = append(out, models.IngredientAmount{IngredientID: item.ID, Amount: item.Amount})
	}
	return out, nil
}

func (s *recipeService) saveImage(ctx context.Context, img *Image) (string, error) {
	key := imageKey(img)
	if err := s.store.Save(ctx, key, img.Data, img.ContentType); err != nil {
		return "", models.ErrorInternalServer{Err: fmt.Errorf("store image: %w", err)}
	}
	return key, nil
}

func (s *recipeService) dropImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("failed to delete image")
	}
}
