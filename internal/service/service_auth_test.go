package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"phishguard/internal/logger"
	"phishguard/internal/mock"
	"phishguard/internal/store"
	"phishguard/models"
)

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockCredentialStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialStore(ctrl)
	return NewAuthService(credentials, logger.Nop()), credentials
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, credentials := newTestAuthSvc(t)
	ctx := context.Background()
	user := models.User{Login: "alice", Password: "1234"}

	credentials.EXPECT().CreateUser(ctx, user).Return(nil)

	require.NoError(t, svc.RegisterUser(ctx, user))
}

func TestAuthService_RegisterUser_EmptyFields(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	err := svc.RegisterUser(ctx, models.User{Login: "", Password: "1234"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	err = svc.RegisterUser(ctx, models.User{Login: "alice", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterUser_Duplicate(t *testing.T) {
	svc, credentials := newTestAuthSvc(t)
	ctx := context.Background()
	user := models.User{Login: "alice", Password: "1234"}

	credentials.EXPECT().CreateUser(ctx, user).Return(store.ErrLoginAlreadyExists)

	err := svc.RegisterUser(ctx, user)
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, credentials := newTestAuthSvc(t)
	ctx := context.Background()

	credentials.EXPECT().FindUserByLogin(ctx, "alice").
		Return(models.User{Login: "alice", Password: "1234"}, nil)

	found, err := svc.Login(ctx, models.User{Login: "alice", Password: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Login)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, credentials := newTestAuthSvc(t)
	ctx := context.Background()

	credentials.EXPECT().FindUserByLogin(ctx, "alice").
		Return(models.User{Login: "alice", Password: "1234"}, nil)

	_, err := svc.Login(ctx, models.User{Login: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, credentials := newTestAuthSvc(t)
	ctx := context.Background()

	credentials.EXPECT().FindUserByLogin(ctx, "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(ctx, models.User{Login: "ghost", Password: "pw"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.Login(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	svc, credentials := newTestAuthSvc(t)
	ctx := context.Background()
	boom := errors.New("db down")

	credentials.EXPECT().FindUserByLogin(ctx, "alice").Return(models.User{}, boom)

	_, err := svc.Login(ctx, models.User{Login: "alice", Password: "1234"})
	assert.ErrorIs(t, err, boom)
}
