package repository

import (
	"sync"

	"quiznight_backend/internal/model"
	"quiznight_backend/internal/store"
	"quiznight_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

const usersDocument = "users"

type UserRepository struct {
	store *store.Store

	mu    sync.Mutex
	users model.Users
}

func NewUserRepository(s *store.Store) (*UserRepository, error) {
	users := make(model.Users)
	err := s.Load(usersDocument, &users, func() (interface{}, error) {
		return SeedUsers(bcrypt.DefaultCost)
	})
	if err != nil {
		return nil, err
	}

	return &UserRepository{store: s, users: users}, nil
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	return &user, nil
}
