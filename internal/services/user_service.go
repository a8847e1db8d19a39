// internal/services/user_service.go
package services

import (
	"github.com/techvault/techvault-backend/internal/models"
	"github.com/techvault/techvault-backend/internal/storage"
)

type UserService struct {
	store storage.Store
}

func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// AllUsers returns every account with passwords stripped.
func (s *UserService) AllUsers() ([]models.User, error) {
	users, err := s.store.AllUsers()
	if err != nil {
		return nil, err
	}

	sanitized := make([]models.User, 0, len(users))
	for _, user := range users {
		sanitized = append(sanitized, user.Sanitized())
	}
	return sanitized, nil
}

// Delete removes the account only. Cart items, favorites, and orders owned
// by the user are left in place; there is no cascading delete.
func (s *UserService) Delete(id string) error {
	return s.store.DeleteUser(id)
}
