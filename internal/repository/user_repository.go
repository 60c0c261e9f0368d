package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/abhidesai17/gigflow/internal/model"
	"github.com/abhidesai17/gigflow/internal/store"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	var saved model.User
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO users (name, email, password_hash)
		VALUES (?, ?, ?)
		RETURNING id, name, email, password_hash, created_at
	`, user.Name, strings.ToLower(user.Email), user.PasswordHash).Scan(&saved).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return store.ErrDuplicate
		}
		return err
	}
	*user = saved
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == uuid.Nil {
		return nil, store.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE email = ?
		LIMIT 1
	`, strings.ToLower(email)).Scan(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == uuid.Nil {
		return nil, store.ErrNotFound
	}
	return &user, nil
}
