package repository

import (
	"context"
	"errors"

	"pulse-chat/internal/domain/user"
	pulse_errors "pulse-chat/pkg/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	res := r.db.WithContext(ctx).Create(u)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return pulse_errors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, pulse_errors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// DeleteByUsername removes the row and returns it, using RETURNING so the
// find-and-delete is a single statement.
func (r *PostgresUserRepository) DeleteByUsername(ctx context.Context, username string) (user.User, error) {
	var deleted []user.User
	res := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("username = ?", username).
		Delete(&deleted)
	if res.Error != nil {
		return user.User{}, res.Error
	}
	if res.RowsAffected == 0 || len(deleted) == 0 {
		return user.User{}, pulse_errors.ErrNotFound
	}
	return deleted[0], nil
}

// UpdateByUsername applies a partial update and returns the post-update row.
func (r *PostgresUserRepository) UpdateByUsername(ctx context.Context, username string, updates map[string]any) (user.User, error) {
	res := r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("username = ?", username).
		Updates(updates)
	if res.Error != nil {
		return user.User{}, res.Error
	}
	if res.RowsAffected == 0 {
		return user.User{}, pulse_errors.ErrNotFound
	}
	return r.GetByUsername(ctx, username)
}
