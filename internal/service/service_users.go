package service

import (
	"context"

	"github.com/mdpad/go-note-keeper/internal/store"
	"github.com/mdpad/go-note-keeper/models"
)

type userService struct {
	users store.UserRepository
}

// NewUserService returns a UserService backed by the given repository.
func NewUserService(users store.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return s.users.FindUserByID(ctx, id)
}
