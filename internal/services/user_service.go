package services

import (
	"context"
	"time"

	"pulse-chat/internal/domain/user"
	"pulse-chat/internal/repository"
	pulse_errors "pulse-chat/pkg/errors"
	"pulse-chat/pkg/logger"
)

// UserService implements the user operations. Every operation returns the
// password-less projection, and every failure collapses to one fixed error
// per operation so clients see a stable taxonomy.
type UserService struct {
	repo   repository.UserRepository
	hasher PasswordHasher
	logger *logger.Logger
}

func NewUserService(repo repository.UserRepository, hasher PasswordHasher, l *logger.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: l}
}

// Save inserts a new user and re-reads the stored row projected without
// its password. Duplicate usernames and store failures collapse to
// ErrSaveUser.
func (s *UserService) Save(ctx context.Context, input user.User) (user.SafeUser, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.Errorf("hashing password for %q: %v", input.Username, err)
		return user.SafeUser{}, pulse_errors.ErrSaveUser
	}
	input.Password = hash
	if input.DateJoined.IsZero() {
		input.DateJoined = time.Now().UTC()
	}

	if err := s.repo.Create(ctx, &input); err != nil {
		s.logger.Errorf("saving user %q: %v", input.Username, err)
		return user.SafeUser{}, pulse_errors.ErrSaveUser
	}

	stored, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		s.logger.Errorf("re-reading saved user %q: %v", input.Username, err)
		return user.SafeUser{}, pulse_errors.ErrSaveUser
	}
	return stored.Safe(), nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (user.SafeUser, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Errorf("getting user %q: %v", username, err)
		return user.SafeUser{}, pulse_errors.ErrGetUser
	}
	return u.Safe(), nil
}

// Login verifies credentials through the hasher. A missing user and a bad
// password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, creds user.Credentials) (user.SafeUser, error) {
	u, err := s.repo.GetByUsername(ctx, creds.Username)
	if err != nil {
		s.logger.Errorf("login lookup for %q: %v", creds.Username, err)
		return user.SafeUser{}, pulse_errors.ErrLoginUser
	}
	if err := s.hasher.Compare(u.Password, creds.Password); err != nil {
		return user.SafeUser{}, pulse_errors.ErrLoginUser
	}
	return u.Safe(), nil
}

func (s *UserService) DeleteByUsername(ctx context.Context, username string) (user.SafeUser, error) {
	u, err := s.repo.DeleteByUsername(ctx, username)
	if err != nil {
		s.logger.Errorf("deleting user %q: %v", username, err)
		return user.SafeUser{}, pulse_errors.ErrDeleteUser
	}
	return u.Safe(), nil
}

// Update applies a partial update, hashing a replacement password before it
// is stored, and returns the post-update projection.
func (s *UserService) Update(ctx context.Context, username string, updates user.Update) (user.SafeUser, error) {
	fields := map[string]any{}
	if updates.Password != nil {
		hash, err := s.hasher.Hash(*updates.Password)
		if err != nil {
			s.logger.Errorf("hashing new password for %q: %v", username, err)
			return user.SafeUser{}, pulse_errors.ErrUpdateUser
		}
		fields["password"] = hash
	}
	if len(fields) == 0 {
		return user.SafeUser{}, pulse_errors.ErrUpdateUser
	}

	u, err := s.repo.UpdateByUsername(ctx, username, fields)
	if err != nil {
		s.logger.Errorf("updating user %q: %v", username, err)
		return user.SafeUser{}, pulse_errors.ErrUpdateUser
	}
	return u.Safe(), nil
}
