package service

import (
	"context"
	"errors"

	"ripple/internal/models"
	"ripple/internal/repository"

	"gorm.io/gorm"
)

// UserService exposes profile reads and name search. Account creation and
// credential checks live in the auth handlers, which talk to the user
// repository directly.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{userRepo: userRepo, followRepo: followRepo}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("User")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Profile combines the account record with its live follower counts.
func (s *UserService) Profile(ctx context.Context, id uint) (*models.Profile, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	counts, err := s.followRepo.Counts(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.Profile{
		User:           *user,
		FollowersCount: counts.Followers,
		FollowingCount: counts.Following,
	}, nil
}

func (s *UserService) SearchUsers(ctx context.Context, name string, limit, offset int) ([]models.User, error) {
	if name == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.userRepo.SearchByName(ctx, name, limit, offset)
}
