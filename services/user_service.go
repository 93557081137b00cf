package services

import (
	"fmt"

	"admin-backoffice/models"
	"admin-backoffice/repositories"
)

type UserService interface {
	GetUser(id uint) (*models.User, error)
	GetUsers(params models.ListQuery) ([]models.User, int64, error)
	DeleteUser(id uint, actorID uint) error
	UpdateStatus(id uint, status models.UserStatus) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "user not found")
	}
	return user, nil
}

func (s *userService) GetUsers(params models.ListQuery) ([]models.User, int64, error) {
	return s.userRepo.GetList(params)
}

func (s *userService) DeleteUser(id uint, actorID uint) error {
	if id == actorID {
		return models.ErrorConflict{Message: "cannot delete the signed-in user"}
	}
	if err := s.userRepo.Delete(id); err != nil {
		return notFound(err, "user not found")
	}
	return nil
}

func (s *userService) UpdateStatus(id uint, status models.UserStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid user status %q", status)
	}
	if err := s.userRepo.UpdateStatus(id, status); err != nil {
		return notFound(err, "user not found")
	}
	return nil
}
