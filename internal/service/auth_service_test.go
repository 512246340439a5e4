package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"titlehub/internal/config"
	"titlehub/internal/models"
	"titlehub/internal/repository"
)

func newTestAuthService(userRepo repository.UserRepository, store CodeStore, sender CodeSender) AuthService {
	cfg := &config.Config{
		JWTSecret:           "test-secret-at-least-32-characters-long",
		AccessTokenTTL:      time.Hour,
		ConfirmationCodeTTL: time.Hour,
	}
	return NewAuthService(userRepo, store, sender, cfg)
}

func TestSignup_ReservedUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	store := new(MockCodeStore)
	sender := new(MockCodeSender)
	svc := newTestAuthService(userRepo, store, sender)

	_, err := svc.Signup(context.Background(), "me", "me@example.com")

	assert.ErrorIs(t, err, ErrUsernameReserved)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignup_DuplicateUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	store := new(MockCodeStore)
	sender := new(MockCodeSender)
	svc := newTestAuthService(userRepo, store, sender)

	userRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	_, err := svc.Signup(context.Background(), "alice", "alice@example.com")

	assert.ErrorIs(t, err, ErrUserExists)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSignup_StoresCodeAndSendsEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	store := new(MockCodeStore)
	sender := new(MockCodeSender)
	svc := newTestAuthService(userRepo, store, sender)

	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	store.On("Save", mock.Anything, "alice", mock.AnythingOfType("string"), time.Hour).Return(nil)
	sender.On("Send", mock.Anything, "alice@example.com", mock.AnythingOfType("string")).Return(nil)

	user, err := svc.Signup(context.Background(), "alice", "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, models.RoleUser, user.Role)
	store.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestSignup_DeliveryFailure(t *testing.T) {
	userRepo := new(MockUserRepository)
	store := new(MockCodeStore)
	sender := new(MockCodeSender)
	svc := newTestAuthService(userRepo, store, sender)

	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	store.On("Save", mock.Anything, "alice", mock.Anything, mock.Anything).Return(nil)
	sender.On("Send", mock.Anything, "alice@example.com", mock.Anything).Return(errors.New("relay down"))

	_, err := svc.Signup(context.Background(), "alice", "alice@example.com")

	assert.ErrorIs(t, err, ErrCodeDelivery)
}

func TestIssueToken_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	store := new(MockCodeStore)
	sender := new(MockCodeSender)
	svc := newTestAuthService(userRepo, store, sender)

	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.IssueToken(context.Background(), "ghost", "some-code")

	assert.ErrorIs(t, err, ErrUserNotFound)
	store.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything, mock.Anything)
}

func TestIssueToken_BadCode(t *testing.T) {
	userRepo := new(MockUserRepository)
	store := new(MockCodeStore)
	sender := new(MockCodeSender)
	svc := newTestAuthService(userRepo, store, sender)

	user := &models.User{ID: "uid-1", Username: "alice", Role: models.RoleUser}
	userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
	store.On("Verify", mock.Anything, "alice", "wrong").Return(ErrInvalidCode)

	_, err := svc.IssueToken(context.Background(), "alice", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCode)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestIssueToken_BurnsCodeAndSignsClaims(t *testing.T) {
	userRepo := new(MockUserRepository)
	store := new(MockCodeStore)
	sender := new(MockCodeSender)
	svc := newTestAuthService(userRepo, store, sender)

	user := &models.User{ID: "uid-1", Username: "alice", Role: models.RoleModerator}
	userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
	store.On("Verify", mock.Anything, "alice", "good-code").Return(nil)
	store.On("Delete", mock.Anything, "alice").Return(nil)

	access, err := svc.IssueToken(context.Background(), "alice", "good-code")
	require.NoError(t, err)
	require.NotEmpty(t, access)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, models.RoleModerator, claims.Role)
	store.AssertCalled(t, "Delete", mock.Anything, "alice")
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestAuthService(new(MockUserRepository), new(MockCodeStore), new(MockCodeSender))

	_, err := svc.ValidateToken("not-a-jwt")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	userRepo := new(MockUserRepository)
	store := new(MockCodeStore)
	sender := new(MockCodeSender)

	otherCfg := &config.Config{
		JWTSecret:           "a-completely-different-32-char-secret!!",
		AccessTokenTTL:      time.Hour,
		ConfirmationCodeTTL: time.Hour,
	}
	otherSvc := NewAuthService(userRepo, store, sender, otherCfg)

	user := &models.User{ID: "uid-1", Username: "alice", Role: models.RoleUser}
	userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
	store.On("Verify", mock.Anything, "alice", "code").Return(nil)
	store.On("Delete", mock.Anything, "alice").Return(nil)

	foreign, err := otherSvc.IssueToken(context.Background(), "alice", "code")
	require.NoError(t, err)

	svc := newTestAuthService(userRepo, store, sender)
	_, err = svc.ValidateToken(foreign)

	assert.ErrorIs(t, err, ErrInvalidToken)
}
