package repositories

import (
	"strings"

	"foodgram/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RecipeRepository interface {
	Create(recipe *models.Recipe, tags []models.Tag, ingredients []models.IngredientAmount) error
	Update(recipe *models.Recipe, tags []models.Tag, ingredients []models.IngredientAmount) error
	GetByID(id uint) (*models.Recipe, error)
	GetList(filter RecipeFilter, page models.PageParams) ([]models.Recipe, int64, error)
	GetByAuthors(authorIDs []uint) ([]models.Recipe, error)
	Delete(id uint) error
	ShoppingList(userID uint) ([]models.ShoppingListItem, error)
	Stats(params models.AdminRecipeParams) ([]models.RecipeStat, int64, error)
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create stores the recipe, its tags and ingredient links in one
// transaction. A missing ingredient rolls everything back.
func (r *recipeRepository) Create(recipe *models.Recipe, tags []models.Tag, ingredients []models.IngredientAmount) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return translate(err, "recipe", 0)
		}
		return replaceRelations(tx, recipe, tags, ingredients)
	})
}

// Update saves scalar fields, then clears and rebuilds tags and ingredient
// links in the same transaction.
func (r *recipeRepository) Update(recipe *models.Recipe, tags []models.Tag, ingredients []models.IngredientAmount) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(recipe).Error; err != nil {
			return translate(err, "recipe", recipe.ID)
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.IngredientRecipe{}).Error; err != nil {
			return err
		}
		return replaceRelations(tx, recipe, tags, ingredients)
	})
}

func replaceRelations(tx *gorm.DB, recipe *models.Recipe, tags []models.Tag, ingredients []models.IngredientAmount) error {
	if err := tx.Model(recipe).Association("Tags").Replace(tags); err != nil {
		return err
	}

	links := make([]models.IngredientRecipe, 0, len(ingredients))
	for _, item := range ingredients {
		var ingredient models.Ingredient
		if err := tx.Select("id").First(&ingredient, item.IngredientID).Error; err != nil {
			return translate(err, "ingredient", item.IngredientID)
		}
		links = append(links, models.IngredientRecipe{
			RecipeID:     recipe.ID,
			IngredientID: ingredient.ID,
			Amount:       item.Amount,
		})
	}
	if len(links) == 0 {
		return nil
	}
	return tx.Omit(clause.Associations).Create(&links).Error
}

func (r *recipeRepository) preloaded() *gorm.DB {
	return r.db.Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.id asc") }).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("ingredient_recipes.id asc") }).
		Preload("Ingredients.Ingredient")
}

func (r *recipeRepository) GetByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.preloaded().First(&recipe, id).Error; err != nil {
		return nil, translate(err, "recipe", id)
	}
	return &recipe, nil
}

func (r *recipeRepository) GetList(filter RecipeFilter, page models.PageParams) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var total int64

	if err := filter.Apply(r.db.Model(&models.Recipe{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := filter.Apply(r.preloaded()).
		Order("recipes.created_at desc").
		Order("recipes.id desc").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&recipes).Error

	return recipes, total, err
}

func (r *recipeRepository) GetByAuthors(authorIDs []uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if len(authorIDs) == 0 {
		return recipes, nil
	}
	err := r.db.Where("author_id IN ?", authorIDs).
		Order("created_at desc").
		Order("id desc").
		Find(&recipes).Error
	return recipes, err
}

// Delete removes the recipe together with its links, tags and memberships.
func (r *recipeRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		recipe := models.Recipe{ID: id}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.IngredientRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.ShoppingCart{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&recipe)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrorNotFound{Entity: "recipe", ID: id}
		}
		return nil
	})
}

// ShoppingList sums the amounts of every ingredient across the recipes in
// the user's cart, one row per ingredient.
func (r *recipeRepository) ShoppingList(userID uint) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem
	err := r.db.Table("ingredient_recipes").
		Select(`ingredients.name AS name,
			ingredients.measurement_unit AS measurement_unit,
			SUM(ingredient_recipes.amount) AS total_amount`).
		Joins("JOIN ingredients ON ingredients.id = ingredient_recipes.ingredient_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = ingredient_recipes.recipe_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.id, ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name asc, ingredients.measurement_unit asc").
		Scan(&items).Error
	return items, err
}

// Stats lists recipes with their author and favorite count.
func (r *recipeRepository) Stats(params models.AdminRecipeParams) ([]models.RecipeStat, int64, error) {
	var stats []models.RecipeStat
	var total int64

	filtered := func() *gorm.DB {
		q := r.db.Table("recipes").Joins("JOIN users ON users.id = recipes.author_id")
		if s := strings.ToLower(strings.TrimSpace(params.Search)); s != "" {
			like := "%" + escapeLike(s) + "%"
			q = q.Where(`(LOWER(recipes.name) LIKE ? ESCAPE '\' OR LOWER(users.email) LIKE ? ESCAPE '\'
				OR LOWER(users.username) LIKE ? ESCAPE '\' OR LOWER(users.first_name) LIKE ? ESCAPE '\')`,
				like, like, like, like)
		}
		return RecipeFilter{TagSlugs: SplitSlugs(params.Tags)}.Apply(q)
	}

	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := filtered().
		Select(`recipes.id AS id, recipes.name AS name, users.email AS author_email,
			COUNT(favorites.id) AS favorites_count`).
		Joins("LEFT JOIN favorites ON favorites.recipe_id = recipes.id").
		Group("recipes.id, recipes.name, users.email").
		Order("recipes.id desc").
		Offset(params.Offset()).
		Limit(params.Limit).
		Scan(&stats).Error

	return stats, total, err
}
