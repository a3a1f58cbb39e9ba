package services

import (
	"context"
	"errors"
	"testing"

	"pulse-chat/internal/domain/user"
	pulse_errors "pulse-chat/pkg/errors"
	"pulse-chat/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]user.User

	createErr error
	getErr    error
	deleteErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]user.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[u.Username]; ok {
		return pulse_errors.ErrAlreadyExists
	}
	_ = u.BeforeCreate(nil)
	f.users[u.Username] = *u
	return nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	if f.getErr != nil {
		return user.User{}, f.getErr
	}
	u, ok := f.users[username]
	if !ok {
		return user.User{}, pulse_errors.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) DeleteByUsername(ctx context.Context, username string) (user.User, error) {
	if f.deleteErr != nil {
		return user.User{}, f.deleteErr
	}
	u, ok := f.users[username]
	if !ok {
		return user.User{}, pulse_errors.ErrNotFound
	}
	delete(f.users, username)
	return u, nil
}

func (f *fakeUserRepo) UpdateByUsername(ctx context.Context, username string, updates map[string]any) (user.User, error) {
	if f.updateErr != nil {
		return user.User{}, f.updateErr
	}
	u, ok := f.users[username]
	if !ok {
		return user.User{}, pulse_errors.ErrNotFound
	}
	if p, ok := updates["password"].(string); ok {
		u.Password = p
	}
	f.users[username] = u
	return u, nil
}

func newUserService(repo *fakeUserRepo) *UserService {
	return NewUserService(repo, plainHasher{}, logger.New(logger.DevelopmentMode))
}

// --- tests ---

func TestUserServiceSave(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	saved, err := svc.Save(context.Background(), user.User{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", saved.Username)
	assert.False(t, saved.DateJoined.IsZero())
	assert.NotEqual(t, uuid.Nil, saved.ID)

	stored := repo.users["alice"]
	assert.Equal(t, "hashed:secret", stored.Password)
}

func TestUserServiceSaveDuplicate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	_, err := svc.Save(context.Background(), user.User{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), user.User{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, pulse_errors.ErrSaveUser)
}

func TestUserServiceSaveStoreDown(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = errors.New("connection refused")
	svc := newUserService(repo)

	_, err := svc.Save(context.Background(), user.User{Username: "alice", Password: "secret"})
	assert.ErrorIs(t, err, pulse_errors.ErrSaveUser)
}

func TestUserServiceGetByUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	_, err := svc.Save(context.Background(), user.User{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	got, err := svc.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = svc.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, pulse_errors.ErrGetUser)
}

func TestUserServiceLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	_, err := svc.Save(context.Background(), user.User{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	got, err := svc.Login(context.Background(), user.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = svc.Login(context.Background(), user.Credentials{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, pulse_errors.ErrLoginUser)

	_, err = svc.Login(context.Background(), user.Credentials{Username: "nobody", Password: "secret"})
	assert.ErrorIs(t, err, pulse_errors.ErrLoginUser)
}

func TestUserServiceDeleteByUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	_, err := svc.Save(context.Background(), user.User{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	deleted, err := svc.DeleteByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", deleted.Username)

	_, err = svc.GetByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, pulse_errors.ErrGetUser)

	_, err = svc.DeleteByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, pulse_errors.ErrDeleteUser)
}

func TestUserServiceUpdate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	_, err := svc.Save(context.Background(), user.User{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	newPassword := "rotated"
	updated, err := svc.Update(context.Background(), "alice", user.Update{Password: &newPassword})
	require.NoError(t, err)
	assert.Equal(t, "alice", updated.Username)

	_, err = svc.Login(context.Background(), user.Credentials{Username: "alice", Password: "rotated"})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), user.Credentials{Username: "alice", Password: "secret"})
	assert.ErrorIs(t, err, pulse_errors.ErrLoginUser)
}

func TestUserServiceUpdateMissingUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	newPassword := "rotated"
	_, err := svc.Update(context.Background(), "nobody", user.Update{Password: &newPassword})
	assert.ErrorIs(t, err, pulse_errors.ErrUpdateUser)
}

func TestUserServiceUpdateNoFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	_, err := svc.Update(context.Background(), "alice", user.Update{})
	assert.ErrorIs(t, err, pulse_errors.ErrUpdateUser)
}
