package service

import (
	"quiznight_backend/internal/config"
	"quiznight_backend/internal/repository"
	"quiznight_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	UserRepo  *repository.UserRepository
	ScoreRepo *repository.ScoreRepository
	Cfg       *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, scoreRepo *repository.ScoreRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:  userRepo,
		ScoreRepo: scoreRepo,
		Cfg:       cfg,
	}
}

// Login 校验凭证，成功后保证分数条目存在并签发会话令牌
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := s.ScoreRepo.EnsureUser(username); err != nil {
		return "", err
	}

	return util.GenerateSessionToken(username, s.Cfg.Session.Secret, s.Cfg.Session.ExpireTime)
}
