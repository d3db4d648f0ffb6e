package models

type Ingredient struct {
	ID              uint   `json:"id" gorm:"primarykey"`
	Name            string `json:"name" gorm:"not null;size:200;uniqueIndex:idx_ingredient_name_unit"`
	MeasurementUnit string `json:"measurement_unit" gorm:"not null;size:200;uniqueIndex:idx_ingredient_name_unit"`
}

// IngredientRecipe is the quantified link between a recipe and an ingredient.
type IngredientRecipe struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	RecipeID     uint       `json:"recipe_id" gorm:"not null;index"`
	IngredientID uint       `json:"ingredient_id" gorm:"not null;index"`
	Ingredient   Ingredient `json:"ingredient" gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT"`
	Amount       int        `json:"amount" gorm:"not null;check:amount > 0"`
}
