package services

import (
	"foodgram/models"
	"foodgram/repositories"
	"foodgram/storage"
)

// Projector builds wire shapes from stored entities. Per-requester flags are
// loaded in one query per batch.
type Projector struct {
	favorites     repositories.MembershipRepository
	carts         repositories.MembershipRepository
	subscriptions repositories.SubscriptionRepository
	store         storage.ImageStore
}

func NewProjector(
	favorites repositories.MembershipRepository,
	carts repositories.MembershipRepository,
	subscriptions repositories.SubscriptionRepository,
	store storage.ImageStore,
) *Projector {
	return &Projector{
		favorites:     favorites,
		carts:         carts,
		subscriptions: subscriptions,
		store:         store,
	}
}

func userResponse(u models.User, subscribed bool) models.UserResponse {
	return models.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: subscribed,
	}
}

func (p *Projector) imageURL(key string) string {
	if key == "" {
		return ""
	}
	return p.store.URL(key)
}

func (p *Projector) RecipeMini(r models.Recipe) models.RecipeMiniResponse {
	return models.RecipeMiniResponse{
		ID:          r.ID,
		Name:        r.Name,
		Image:       p.imageURL(r.Image),
		CookingTime: r.CookingTime,
	}
}

// Users projects users as seen by requesterID (0 when anonymous).
func (p *Projector) Users(users []models.User, requesterID uint) ([]models.UserResponse, error) {
	ids := make([]uint, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	followed, err := p.subscriptions.AuthorIDs(requesterID, ids)
	if err != nil {
		return nil, err
	}

	out := make([]models.UserResponse, len(users))
	for i, u := range users {
		out[i] = userResponse(u, followed[u.ID])
	}
	return out, nil
}

func (p *Projector) User(user models.User, requesterID uint) (models.UserResponse, error) {
	out, err := p.Users([]models.User{user}, requesterID)
	if err != nil {
		return models.UserResponse{}, err
	}
	return out[0], nil
}

// Recipes projects fully loaded recipes as seen by requesterID.
func (p *Projector) Recipes(recipes []models.Recipe, requesterID uint) ([]models.RecipeResponse, error) {
	recipeIDs := make([]uint, len(recipes))
	authorIDs := make([]uint, len(recipes))
	for i, r := range recipes {
		recipeIDs[i] = r.ID
		authorIDs[i] = r.AuthorID
	}

	favorited, err := p.favorites.RecipeIDs(requesterID, recipeIDs)
	if err != nil {
		return nil, err
	}
	inCart, err := p.carts.RecipeIDs(requesterID, recipeIDs)
	if err != nil {
		return nil, err
	}
	followed, err := p.subscriptions.AuthorIDs(requesterID, authorIDs)
	if err != nil {
		return nil, err
	}

	out := make([]models.RecipeResponse, len(recipes))
	for i, r := range recipes {
		tags := r.Tags
		if tags == nil {
			tags = []models.Tag{}
		}
		ingredients := make([]models.IngredientAmountResponse, len(r.Ingredients))
		for j, link := range r.Ingredients {
			ingredients[j] = models.IngredientAmountResponse{
				ID:              link.IngredientID,
				Name:            link.Ingredient.Name,
				MeasurementUnit: link.Ingredient.MeasurementUnit,
				Amount:          link.Amount,
			}
		}

		out[i] = models.RecipeResponse{
			ID:               r.ID,
			Tags:             tags,
			Author:           userResponse(r.Author, followed[r.AuthorID]),
			Ingredients:      ingredients,
			IsInFavorite:     favorited[r.ID],
			IsInShoppingCart: inCart[r.ID],
			Name:             r.Name,
			Image:            p.imageURL(r.Image),
			Text:             r.Text,
			CookingTime:      r.CookingTime,
		}
	}
	return out, nil
}

func (p *Projector) Recipe(recipe models.Recipe, requesterID uint) (*models.RecipeResponse, error) {
	out, err := p.Recipes([]models.Recipe{recipe}, requesterID)
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}
