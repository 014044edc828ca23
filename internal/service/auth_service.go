package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kashif-sureify/product-catalog/internal/auth"
	apperrors "github.com/kashif-sureify/product-catalog/internal/errors"
	"github.com/kashif-sureify/product-catalog/internal/model"
	"github.com/kashif-sureify/product-catalog/internal/repository"
)

const bcryptCost = 10

// AuthService handles signup and login.
type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (token string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
	}
}

// Signup hashes the password, inserts the user row and reads it back by the
// insert email. A missing row on re-read signals an inconsistent write and
// surfaces as ErrSignupFailed rather than a store error.
func (s *authService) Signup(ctx context.Context, name, email, password string) (string, *model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", nil, fmt.Errorf("signup: %w", err)
	}

	stored, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrSignupFailed
		}
		return "", nil, fmt.Errorf("signup: %w", err)
	}

	token, err := s.jwtService.GenerateToken(stored.ID, stored.Email)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, stored, nil
}

// Login authenticates a user and mints a session token. Unknown email and
// wrong password both return ErrInvalidCredentials so the two cases are
// indistinguishable to callers.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}
