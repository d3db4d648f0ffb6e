package repositories

import (
	"strings"

	"foodgram/models"

	"gorm.io/gorm"
)

type IngredientRepository interface {
	Create(ingredient *models.Ingredient) error
	GetByID(id uint) (*models.Ingredient, error)
	GetByNameAndUnit(name, unit string) (*models.Ingredient, error)
	Search(prefix string) ([]models.Ingredient, error)
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ingredient *models.Ingredient) error {
	return translate(r.db.Create(ingredient).Error, "ingredient", 0)
}

func (r *ingredientRepository) GetByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.First(&ingredient, id).Error; err != nil {
		return nil, translate(err, "ingredient", id)
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetByNameAndUnit(name, unit string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.Where("name = ? AND measurement_unit = ?", name, unit).First(&ingredient).Error
	if err != nil {
		return nil, translate(err, "ingredient", 0)
	}
	return &ingredient, nil
}

// Search returns ingredients whose name starts with prefix, ignoring case.
// An empty prefix returns every ingredient.
func (r *ingredientRepository) Search(prefix string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	query := r.db.Order("name asc")
	if prefix != "" {
		query = query.Where("LOWER(name) LIKE ? ESCAPE '\\'", escapeLike(strings.ToLower(prefix))+"%")
	}
	err := query.Find(&ingredients).Error
	return ingredients, err
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
