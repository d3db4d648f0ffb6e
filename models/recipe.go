package models

import "time"

type Recipe struct {
	ID          uint               `json:"id" gorm:"primarykey"`
	AuthorID    uint               `json:"author_id" gorm:"not null;index"`
	Author      User               `json:"author" gorm:"foreignKey:AuthorID"`
	Name        string             `json:"name" gorm:"not null;size:200"`
	Text        string             `json:"text" gorm:"type:text;not null"`
	Image       string             `json:"image"`
	CookingTime int                `json:"cooking_time" gorm:"not null;check:cooking_time > 0"`
	Tags        []Tag              `json:"tags" gorm:"many2many:recipe_tags;"`
	Ingredients []IngredientRecipe `json:"ingredients" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time          `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// IngredientAmount is a resolved ingredient line of a recipe write.
type IngredientAmount struct {
	IngredientID uint
	Amount       int
}
