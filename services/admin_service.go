package services

import (
	"foodgram/models"
	"foodgram/repositories"
)

// AdminService backs the read-only recipe overview for administrators.
type AdminService interface {
	GetRecipeStats(params models.AdminRecipeParams) ([]models.RecipeStat, int64, error)
}

type adminService struct {
	recipeRepo repositories.RecipeRepository
}

func NewAdminService(recipeRepo repositories.RecipeRepository) AdminService {
	return &adminService{recipeRepo: recipeRepo}
}

func (s *adminService) GetRecipeStats(params models.AdminRecipeParams) ([]models.RecipeStat, int64, error) {
	return s.recipeRepo.Stats(params)
}
