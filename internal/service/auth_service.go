package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhidesai17/gigflow/internal/auth"
	"github.com/abhidesai17/gigflow/internal/model"
	"github.com/abhidesai17/gigflow/internal/store"
)

type AuthService struct {
	users   store.UserStore
	manager *auth.Manager
	now     func() time.Time
}

func NewAuthService(users store.UserStore, manager *auth.Manager) *AuthService {
	return &AuthService{users: users, manager: manager, now: time.Now}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type AuthResult struct {
	User  *model.User
	Token string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidRequest)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already in use", ErrConflict)
		}
		return nil, fmt.Errorf("%w: create user: %v", ErrStoreUnavailable, err)
	}

	token, err := s.manager.IssueToken(user, s.now())
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidRequest)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("%w: load user: %v", ErrStoreUnavailable, err)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrUnauthorized
	}

	token, err := s.manager.IssueToken(user, s.now())
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}
