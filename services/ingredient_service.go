package services

import (
	"foodgram/models"
	"foodgram/repositories"

	lru "github.com/hashicorp/golang-lru"
)

type IngredientService interface {
	CreateIngredient(req models.CreateIngredientRequest) (*models.Ingredient, error)
	SearchIngredients(params models.IngredientSearchParams) ([]models.Ingredient, error)
	GetIngredient(id uint) (*models.Ingredient, error)
}

type ingredientService struct {
	ingredientRepo repositories.IngredientRepository
	cache          *lru.Cache
}

func NewIngredientService(ingredientRepo repositories.IngredientRepository) IngredientService {
	cache, _ := lru.New(referenceCacheSize)
	return &ingredientService{
		ingredientRepo: ingredientRepo,
		cache:          cache,
	}
}

func (s *ingredientService) CreateIngredient(req models.CreateIngredientRequest) (*models.Ingredient, error) {
	if _, err := s.ingredientRepo.GetByNameAndUnit(req.Name, req.MeasurementUnit); err == nil {
		return nil, models.ErrorConflict{Message: "ingredient with this name and unit already exists"}
	} else if !isNotFound(err) {
		return nil, err
	}

	ingredient := &models.Ingredient{
		Name:            req.Name,
		MeasurementUnit: req.MeasurementUnit,
	}
	if err := s.ingredientRepo.Create(ingredient); err != nil {
		return nil, err
	}

	s.cache.Purge()
	return ingredient, nil
}

func (s *ingredientService) SearchIngredients(params models.IngredientSearchParams) ([]models.Ingredient, error) {
	return s.ingredientRepo.Search(params.Search)
}

func (s *ingredientService) GetIngredient(id uint) (*models.Ingredient, error) {
	if cached, ok := s.cache.Get(id); ok {
		ingredient := cached.(models.Ingredient)
		return &ingredient, nil
	}

	ingredient, err := s.ingredientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.cache.Add(id, *ingredient)
	return ingredient, nil
}
