package repository

import (
	"context"

	"pulse-chat/internal/domain/message"
	"pulse-chat/internal/domain/user"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByUsername(ctx context.Context, username string) (user.User, error)
	DeleteByUsername(ctx context.Context, username string) (user.User, error)
	UpdateByUsername(ctx context.Context, username string, updates map[string]any) (user.User, error)
}

type MessageRepository interface {
	Create(ctx context.Context, m *message.Message) error
	ListAscending(ctx context.Context) ([]message.Message, error)
}
