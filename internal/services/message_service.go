package services

import (
	"context"

	"pulse-chat/internal/domain/message"
	"pulse-chat/internal/repository"
	pulse_errors "pulse-chat/pkg/errors"
	"pulse-chat/pkg/logger"
)

type MessageService struct {
	repo   repository.MessageRepository
	logger *logger.Logger
}

func NewMessageService(repo repository.MessageRepository, l *logger.Logger) *MessageService {
	return &MessageService{repo: repo, logger: l}
}

// Save inserts the message as given; validation is the handler's job.
func (s *MessageService) Save(ctx context.Context, m message.Message) (message.Message, error) {
	if err := s.repo.Create(ctx, &m); err != nil {
		s.logger.Errorf("saving message from %q: %v", m.MsgFrom, err)
		return message.Message{}, pulse_errors.ErrSaveMessage
	}
	return m, nil
}

// List returns all messages ascending by msgDateTime. Read failures degrade
// to an empty list rather than an error; callers cannot tell a failed read
// from an empty store.
func (s *MessageService) List(ctx context.Context) []message.Message {
	msgs, err := s.repo.ListAscending(ctx)
	if err != nil {
		s.logger.Errorf("listing messages: %v", err)
		return []message.Message{}
	}
	if msgs == nil {
		msgs = []message.Message{}
	}
	return msgs
}
