package services

import (
	"context"

	"foodgram/logging"
	"foodgram/metrics"
	"foodgram/models"
	"foodgram/repositories"
)

// MembershipService toggles a recipe in one of the requester's collections
// (favorites or shopping cart).
type MembershipService interface {
	Add(ctx context.Context, recipeID, userID uint) (*models.RecipeMiniResponse, error)
	Remove(ctx context.Context, recipeID, userID uint) error
}

type membershipService struct {
	repo       repositories.MembershipRepository
	recipeRepo repositories.RecipeRepository
	projector  *Projector
	label      string
}

func NewFavoriteService(repo repositories.MembershipRepository, recipeRepo repositories.RecipeRepository, projector *Projector) MembershipService {
	return &membershipService{repo: repo, recipeRepo: recipeRepo, projector: projector, label: "favorites"}
}

func NewShoppingCartService(repo repositories.MembershipRepository, recipeRepo repositories.RecipeRepository, projector *Projector) MembershipService {
	return &membershipService{repo: repo, recipeRepo: recipeRepo, projector: projector, label: "the shopping cart"}
}

func (s *membershipService) Add(ctx context.Context, recipeID, userID uint) (*models.RecipeMiniResponse, error) {
	recipe, err := s.recipeRepo.GetByID(recipeID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrorConflict{Message: "recipe is already in " + s.label}
	}

	if err := s.repo.Add(userID, recipeID); err != nil {
		if isConflict(err) {
			return nil, models.ErrorConflict{Message: "recipe is already in " + s.label}
		}
		return nil, err
	}

	metrics.MembershipToggles.WithLabelValues(string(s.repo.Kind()), "add").Inc()
	logging.Ctx(ctx).Debug().Str("kind", string(s.repo.Kind())).Uint("recipe_id", recipeID).Uint("user_id", userID).Msg("membership added")

	mini := s.projector.RecipeMini(*recipe)
	return &mini, nil
}

func (s *membershipService) Remove(ctx context.Context, recipeID, userID uint) error {
	if _, err := s.recipeRepo.GetByID(recipeID); err != nil {
		return err
	}

	exists, err := s.repo.Exists(userID, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return models.ErrorValidation{Message: "recipe is not in " + s.label}
	}

	if err := s.repo.Remove(userID, recipeID); err != nil {
		if isNotFound(err) {
			return models.ErrorValidation{Message: "recipe is not in " + s.label}
		}
		return err
	}

	metrics.MembershipToggles.WithLabelValues(string(s.repo.Kind()), "remove").Inc()
	logging.Ctx(ctx).Debug().Str("kind", string(s.repo.Kind())).Uint("recipe_id", recipeID).Uint("user_id", userID).Msg("membership removed")
	return nil
}
