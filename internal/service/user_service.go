package service

import (
	"github.com/daypanel/daypanel-backend/internal/models"
	"github.com/daypanel/daypanel-backend/internal/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

// UpdateProfile replaces the email and the full location quadruple.
// Tokens issued before the update keep the old location until refresh.
func (s *UserService) UpdateProfile(userID uint, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.Email = req.Email
	user.City = &req.City
	user.Region = &req.Region
	user.Country = &req.Country
	user.Latitude = req.Latitude
	user.Longitude = req.Longitude

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}
