package repositories

import (
	"foodgram/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(tag *models.Tag) error
	GetByName(name string) (*models.Tag, error)
	GetBySlug(slug string) (*models.Tag, error)
	GetByID(id uint) (*models.Tag, error)
	GetByIDs(ids []uint) ([]models.Tag, error)
	GetBySlugs(slugs []string) ([]models.Tag, error)
	GetAll() ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	return translate(r.db.Create(tag).Error, "tag", 0)
}

func (r *tagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, translate(err, "tag", 0)
	}
	return &tag, nil
}

func (r *tagRepository) GetBySlug(slug string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Where("slug = ?", slug).First(&tag).Error; err != nil {
		return nil, translate(err, "tag", 0)
	}
	return &tag, nil
}

func (r *tagRepository) GetByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, translate(err, "tag", id)
	}
	return &tag, nil
}

func (r *tagRepository) GetByIDs(ids []uint) ([]models.Tag, error) {
	var tags []models.Tag
	if len(ids) == 0 {
		return tags, nil
	}
	err := r.db.Where("id IN ?", ids).Order("id asc").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) GetBySlugs(slugs []string) ([]models.Tag, error) {
	var tags []models.Tag
	if len(slugs) == 0 {
		return tags, nil
	}
	err := r.db.Where("slug IN ?", slugs).Order("id asc").Find(&tags).Error
	return tags, err
}

func (r *tagRepository) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("name asc").Find(&tags).Error
	return tags, err
}
