package repositories

import (
	"time"

	"foodgram/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository interface {
	Exists(userID, authorID uint) (bool, error)
	Add(userID, authorID uint) error
	Remove(userID, authorID uint) error
	AuthorIDs(userID uint, authorIDs []uint) (map[uint]bool, error)
	GetAuthors(userID uint, page models.PageParams) ([]models.User, int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Exists(userID, authorID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	return count > 0, err
}

func (r *subscriptionRepository) Add(userID, authorID uint) error {
	sub := &models.Subscription{UserID: userID, AuthorID: authorID, CreatedAt: time.Now()}
	return translate(r.db.Omit(clause.Associations).Create(sub).Error, "subscription", 0)
}

func (r *subscriptionRepository) Remove(userID, authorID uint) error {
	result := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).Delete(&models.Subscription{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrorNotFound{Entity: "subscription"}
	}
	return nil
}

func (r *subscriptionRepository) AuthorIDs(userID uint, authorIDs []uint) (map[uint]bool, error) {
	followed := make(map[uint]bool)
	if userID == 0 || len(authorIDs) == 0 {
		return followed, nil
	}

	var ids []uint
	err := r.db.Model(&models.Subscription{}).
		Where("user_id = ? AND author_id IN ?", userID, authorIDs).
		Pluck("author_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		followed[id] = true
	}
	return followed, nil
}

// GetAuthors pages through the users that userID follows.
func (r *subscriptionRepository) GetAuthors(userID uint, page models.PageParams) ([]models.User, int64, error) {
	var authors []models.User
	var total int64

	followed := func() *gorm.DB {
		return r.db.Model(&models.User{}).
			Where("id IN (SELECT author_id FROM subscriptions WHERE user_id = ?)", userID)
	}

	if err := followed().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := followed().Order("id asc").Offset(page.Offset()).Limit(page.Limit).Find(&authors).Error
	return authors, total, err
}
