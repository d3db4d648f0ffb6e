package models

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=150"`
	Email     string `json:"email" binding:"required,email,max=254"`
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name" binding:"required,max=150"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SetPasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
	Slug string `json:"slug" binding:"required,min=1,max=200,slug"`
}

type CreateIngredientRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=200"`
	MeasurementUnit string `json:"measurement_unit" binding:"required,min=1,max=200"`
}

type IngredientAmountRequest struct {
	ID     uint `json:"id" binding:"required"`
	Amount int  `json:"amount" binding:"gt=0"`
}

// RecipeWriteRequest is the body of a recipe create.
type RecipeWriteRequest struct {
	Ingredients []IngredientAmountRequest `json:"ingredients" binding:"required,min=1,dive"`
	Tags        []uint                    `json:"tags" binding:"required,min=1,dive,gt=0"`
	Image       string                    `json:"image"`
	Name        string                    `json:"name" binding:"required,max=200"`
	Text        string                    `json:"text" binding:"required"`
	CookingTime int                       `json:"cooking_time" binding:"gt=0"`
}

// RecipeUpdateRequest is the body of a recipe update. Scalar fields are
// optional; tags and ingredients are always replaced wholesale.
type RecipeUpdateRequest struct {
	Ingredients []IngredientAmountRequest `json:"ingredients" binding:"required,min=1,dive"`
	Tags        []uint                    `json:"tags" binding:"required,min=1,dive,gt=0"`
	Image       *string                   `json:"image"`
	Name        *string                   `json:"name" binding:"omitempty,min=1,max=200"`
	Text        *string                   `json:"text" binding:"omitempty,min=1"`
	CookingTime *int                      `json:"cooking_time" binding:"omitempty,gt=0"`
}

type PageParams struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=6" binding:"min=1,max=100"`
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type RecipeListParams struct {
	PageParams
	Author           uint     `form:"author"`
	Tags             []string `form:"tags"`
	IsInFavorite     *int     `form:"is_in_favorite"`
	IsInShoppingCart *int     `form:"is_in_shopping_cart"`
}

type IngredientSearchParams struct {
	Search string `form:"search"`
}

type AdminRecipeParams struct {
	PageParams
	Search string   `form:"search"`
	Tags   []string `form:"tags"`
}

// ShoppingListItem is one aggregated line of the shopping list.
type ShoppingListItem struct {
	Name            string
	MeasurementUnit string
	TotalAmount     int
}

// RecipeStat is one row of the admin recipe listing.
type RecipeStat struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	AuthorEmail    string `json:"author_email"`
	FavoritesCount int64  `json:"favorites_count"`
}
