package services

import (
	"context"

	"foodgram/logging"
	"foodgram/metrics"
	"foodgram/models"
	"foodgram/repositories"
)

type SubscriptionService interface {
	Subscribe(ctx context.Context, authorID, userID uint) (*models.SubscriptionResponse, error)
	Unsubscribe(ctx context.Context, authorID, userID uint) error
	GetSubscriptions(ctx context.Context, userID uint, page models.PageParams) ([]models.SubscriptionResponse, int64, error)
}

type subscriptionService struct {
	subRepo    repositories.SubscriptionRepository
	userRepo   repositories.UserRepository
	recipeRepo repositories.RecipeRepository
	projector  *Projector
}

func NewSubscriptionService(
	subRepo repositories.SubscriptionRepository,
	userRepo repositories.UserRepository,
	recipeRepo repositories.RecipeRepository,
	projector *Projector,
) SubscriptionService {
	return &subscriptionService{
		subRepo:    subRepo,
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
		projector:  projector,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, authorID, userID uint) (*models.SubscriptionResponse, error) {
	author, err := s.userRepo.GetByID(authorID)
	if err != nil {
		return nil, err
	}
	if author.ID == userID {
		return nil, models.ErrorValidation{Message: "you cannot subscribe to yourself"}
	}

	exists, err := s.subRepo.Exists(userID, authorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrorConflict{Message: "already subscribed to this user"}
	}
	if err := s.subRepo.Add(userID, authorID); err != nil {
		if isConflict(err) {
			return nil, models.ErrorConflict{Message: "already subscribed to this user"}
		}
		return nil, err
	}

	metrics.MembershipToggles.WithLabelValues("subscriptions", "add").Inc()
	logging.Ctx(ctx).Debug().Uint("author_id", authorID).Uint("user_id", userID).Msg("subscribed")

	out, err := s.project(ctx, []models.User{*author}, userID)
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, authorID, userID uint) error {
	if _, err := s.userRepo.GetByID(authorID); err != nil {
		return err
	}

	exists, err := s.subRepo.Exists(userID, authorID)
	if err != nil {
		return err
	}
	if !exists {
		return models.ErrorValidation{Message: "not subscribed to this user"}
	}
	if err := s.subRepo.Remove(userID, authorID); err != nil {
		if isNotFound(err) {
			return models.ErrorValidation{Message: "not subscribed to this user"}
		}
		return err
	}

	metrics.MembershipToggles.WithLabelValues("subscriptions", "remove").Inc()
	logging.Ctx(ctx).Debug().Uint("author_id", authorID).Uint("user_id", userID).Msg("unsubscribed")
	return nil
}

func (s *subscriptionService) GetSubscriptions(ctx context.Context, userID uint, page models.PageParams) ([]models.SubscriptionResponse, int64, error) {
	authors, total, err := s.subRepo.GetAuthors(userID, page)
	if err != nil {
		return nil, 0, err
	}
	out, err := s.project(ctx, authors, userID)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// project loads every author's recipes in one query and groups them.
func (s *subscriptionService) project(ctx context.Context, authors []models.User, requesterID uint) ([]models.SubscriptionResponse, error) {
	users, err := s.projector.Users(authors, requesterID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(authors))
	for i, a := range authors {
		ids[i] = a.ID
	}
	recipes, err := s.recipeRepo.GetByAuthors(ids)
	if err != nil {
		return nil, err
	}

	byAuthor := make(map[uint][]models.RecipeMiniResponse, len(authors))
	for _, r := range recipes {
		byAuthor[r.AuthorID] = append(byAuthor[r.AuthorID], s.projector.RecipeMini(r))
	}

	out := make([]models.SubscriptionResponse, len(authors))
	for i, u := range users {
		minis := byAuthor[u.ID]
		if minis == nil {
			minis = []models.RecipeMiniResponse{}
		}
		out[i] = models.SubscriptionResponse{
			UserResponse: u,
			Recipes:      minis,
			RecipesCount: int64(len(minis)),
		}
	}
	return out, nil
}
