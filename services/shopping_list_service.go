package services

import (
	"context"
	"fmt"
	"strings"

	"foodgram/logging"
	"foodgram/metrics"
	"foodgram/models"
	"foodgram/repositories"
)

const ShoppingListFilename = "shopping_list.txt"

type ShoppingListService interface {
	GetItems(userID uint) ([]models.ShoppingListItem, error)
	Render(ctx context.Context, userID uint) ([]byte, error)
}

type shoppingListService struct {
	recipeRepo repositories.RecipeRepository
}

func NewShoppingListService(recipeRepo repositories.RecipeRepository) ShoppingListService {
	return &shoppingListService{recipeRepo: recipeRepo}
}

func (s *shoppingListService) GetItems(userID uint) ([]models.ShoppingListItem, error) {
	return s.recipeRepo.ShoppingList(userID)
}

// Render builds the plain text list, one "name (unit): total" line per
// ingredient.
func (s *shoppingListService) Render(ctx context.Context, userID uint) ([]byte, error) {
	items, err := s.GetItems(userID)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("Shopping list:\n\n")
	for _, item := range items {
		fmt.Fprintln(&b, FormatShoppingLine(item))
	}

	metrics.ShoppingListDownloads.Inc()
	logging.Ctx(ctx).Debug().Uint("user_id", userID).Int("items", len(items)).Msg("shopping list rendered")

	return []byte(b.String()), nil
}

func FormatShoppingLine(item models.ShoppingListItem) string {
	return fmt.Sprintf("%s (%s): %d", item.Name, item.MeasurementUnit, item.TotalAmount)
}
