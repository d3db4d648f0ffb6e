package services

import (
	"foodgram/models"
	"foodgram/repositories"
)

type UserService interface {
	GetUsers(page models.PageParams, requesterID uint) ([]models.UserResponse, int64, error)
	GetUser(id uint, requesterID uint) (*models.UserResponse, error)
}

type userService struct {
	userRepo  repositories.UserRepository
	projector *Projector
}

func NewUserService(userRepo repositories.UserRepository, projector *Projector) UserService {
	return &userService{userRepo: userRepo, projector: projector}
}

func (s *userService) GetUsers(page models.PageParams, requesterID uint) ([]models.UserResponse, int64, error) {
	users, total, err := s.userRepo.GetList(page)
	if err != nil {
		return nil, 0, err
	}
	out, err := s.projector.Users(users, requesterID)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (s *userService) GetUser(id uint, requesterID uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	out, err := s.projector.User(*user, requesterID)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
