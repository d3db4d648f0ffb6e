package repositories

import (
	"time"

	"foodgram/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipRepository stores (user, recipe) pairs for favorites or the
// shopping cart, depending on its kind.
type MembershipRepository interface {
	Kind() models.MembershipKind
	Exists(userID, recipeID uint) (bool, error)
	Add(userID, recipeID uint) error
	Remove(userID, recipeID uint) error
	RecipeIDs(userID uint, recipeIDs []uint) (map[uint]bool, error)
}

type membershipRepository struct {
	db   *gorm.DB
	kind models.MembershipKind
}

func NewFavoriteRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db, kind: models.KindFavorite}
}

func NewShoppingCartRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db, kind: models.KindShoppingCart}
}

func (r *membershipRepository) Kind() models.MembershipKind {
	return r.kind
}

func (r *membershipRepository) record(userID, recipeID uint) interface{} {
	now := time.Now()
	if r.kind == models.KindShoppingCart {
		return &models.ShoppingCart{UserID: userID, RecipeID: recipeID, CreatedAt: now}
	}
	return &models.Favorite{UserID: userID, RecipeID: recipeID, CreatedAt: now}
}

func (r *membershipRepository) Exists(userID, recipeID uint) (bool, error) {
	var count int64
	err := r.db.Table(string(r.kind)).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

// Add returns models.ErrorConflict when the pair is already stored.
func (r *membershipRepository) Add(userID, recipeID uint) error {
	err := r.db.Omit(clause.Associations).Create(r.record(userID, recipeID)).Error
	return translate(err, string(r.kind)+" entry", 0)
}

// Remove returns models.ErrorNotFound when the pair is absent.
func (r *membershipRepository) Remove(userID, recipeID uint) error {
	result := r.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(r.record(0, 0))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrorNotFound{Entity: string(r.kind) + " entry"}
	}
	return nil
}

// RecipeIDs reports which of recipeIDs the user holds.
func (r *membershipRepository) RecipeIDs(userID uint, recipeIDs []uint) (map[uint]bool, error) {
	held := make(map[uint]bool)
	if userID == 0 || len(recipeIDs) == 0 {
		return held, nil
	}

	var ids []uint
	err := r.db.Table(string(r.kind)).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		held[id] = true
	}
	return held, nil
}
