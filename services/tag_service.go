package services

import (
	"fmt"

	"foodgram/models"
	"foodgram/repositories"

	lru "github.com/hashicorp/golang-lru"
)

const referenceCacheSize = 512

type TagService interface {
	CreateTag(req models.CreateTagRequest) (*models.Tag, error)
	GetTags() ([]models.Tag, error)
	GetTag(id uint) (*models.Tag, error)
	GetTagsByIDs(ids []uint) ([]models.Tag, error)
	CheckSlugs(slugs []string) error
}

type tagService struct {
	tagRepo repositories.TagRepository
	cache   *lru.Cache
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	// lru.New only fails on a non-positive size.
	cache, _ := lru.New(referenceCacheSize)
	return &tagService{
		tagRepo: tagRepo,
		cache:   cache,
	}
}

func (s *tagService) CreateTag(req models.CreateTagRequest) (*models.Tag, error) {
	// Check if tag already exists
	if _, err := s.tagRepo.GetByName(req.Name); err == nil {
		return nil, models.ErrorConflict{Message: "tag with this name already exists"}
	} else if !isNotFound(err) {
		return nil, err
	}
	if _, err := s.tagRepo.GetBySlug(req.Slug); err == nil {
		return nil, models.ErrorConflict{Message: "tag with this slug already exists"}
	} else if !isNotFound(err) {
		return nil, err
	}

	tag := &models.Tag{
		Name: req.Name,
		Slug: req.Slug,
	}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	s.cache.Purge()
	return tag, nil
}

func (s *tagService) GetTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

func (s *tagService) GetTag(id uint) (*models.Tag, error) {
	if cached, ok := s.cache.Get(id); ok {
		tag := cached.(models.Tag)
		return &tag, nil
	}

	tag, err := s.tagRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.cache.Add(id, *tag)
	return tag, nil
}

// GetTagsByIDs loads the distinct tags in one query, in request order. An
// id with no tag is a validation error on the tags field.
func (s *tagService) GetTagsByIDs(ids []uint) ([]models.Tag, error) {
	unique := make([]uint, 0, len(ids))
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	found, err := s.tagRepo.GetByIDs(unique)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Tag, len(found))
	for _, tag := range found {
		byID[tag.ID] = tag
	}

	tags := make([]models.Tag, 0, len(unique))
	for _, id := range unique {
		tag, ok := byID[id]
		if !ok {
			return nil, models.ErrorValidation{Field: "tags", Message: fmt.Sprintf("unknown tag id %d", id)}
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// CheckSlugs rejects slugs that name no tag.
func (s *tagService) CheckSlugs(slugs []string) error {
	found, err := s.tagRepo.GetBySlugs(slugs)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(found))
	for _, tag := range found {
		known[tag.Slug] = true
	}
	for _, slug := range slugs {
		if !known[slug] {
			return models.ErrorValidation{Field: "tags", Message: fmt.Sprintf("unknown tag slug %q", slug)}
		}
	}
	return nil
}
