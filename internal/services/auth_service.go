package services

import (
	"errors"

	"candleworks/internal/domain"
	"candleworks/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Users *repos.UserRepo
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
	FullName string
	Phone    string
}

// Register creates an account; duplicate email or username is a Conflict.
func (s *AuthService) Register(in RegisterInput) (*domain.User, error) {
	if _, err := s.Users.ByEmail(in.Email); err == nil {
		return nil, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if _, err := s.Users.ByUsername(in.Username); err == nil {
		return nil, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	h, err := bcrypt.GenerateFromPassword([]byte(in.Password), 12)
	if err != nil {
		return nil, err
	}
	u := domain.User{
		ID:       uuid.NewString(),
		Email:    in.Email,
		Username: in.Username,
		Hash:     string(h),
		FullName: in.FullName,
		Phone:    in.Phone,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}
	return s.Users.ByID(u.ID)
}

// Login checks credentials and issues an opaque bearer token.
func (s *AuthService) Login(username, password string) (string, *domain.User, error) {
	u, err := s.Users.ByUsername(username)
	if err != nil {
		return "", nil, domain.ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return "", nil, domain.ErrBadCreds
	}
	token := uuid.NewString()
	if err := s.Users.BindToken(token, u.ID); err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *AuthService) CurrentUser(token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrBadCreds
	}
	return s.Users.TokenUser(token)
}

func (s *AuthService) Logout(token string) error {
	return s.Users.DeleteToken(token)
}
