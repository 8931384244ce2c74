package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"roulette-table-service/internal/core/domain"
	"roulette-table-service/internal/core/ports"
	"roulette-table-service/internal/core/ports/mocks"
	"roulette-table-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testStartingBalance = int64(10000)

func setupAuthService(t *testing.T) (
	*AuthServiceImpl,
	*mocks.MockPlayerRepository,
	*mocks.MockHashService,
	*mocks.MockTokenService,
	*gomock.Controller,
) {
	ctrl := gomock.NewController(t)
	playerRepo := mocks.NewMockPlayerRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	svc := NewAuthService(playerRepo, hashSvc, tokenSvc, testStartingBalance)
	return svc, playerRepo, hashSvc, tokenSvc, ctrl
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, playerRepo, hashSvc, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	req := ports.RegisterRequest{
		Username: "new_player",
		Password: "StrongP@ss123",
	}

	// Expect: check username uniqueness
	playerRepo.EXPECT().GetByUsername(ctx, req.Username).Return(nil, nil)
	// Expect: hash password
	hashSvc.EXPECT().Hash(req.Password).Return("$argon2id$hashed", nil)
	// Expect: create player with the starting bankroll
	playerRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Player) error {
			assert.Equal(t, testStartingBalance, p.Balance)
			assert.Equal(t, "$argon2id$hashed", p.PasswordHash)
			return nil
		})

	player, err := svc.Register(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, player)
	assert.Equal(t, "new_player", player.Username)
	assert.Equal(t, testStartingBalance, player.Balance)
	assert.NotEqual(t, uuid.Nil, player.ID)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc, playerRepo, _, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	req := ports.RegisterRequest{
		Username: "existing_user",
		Password: "password",
	}

	existing := &domain.Player{Username: "existing_user"}
	playerRepo.EXPECT().GetByUsername(ctx, req.Username).Return(existing, nil)

	player, err := svc.Register(ctx, req)
	assert.Nil(t, player)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AUTH_002", appErr.Code)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, playerRepo, hashSvc, tokenSvc, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	playerID := uuid.New()
	player := &domain.Player{
		ID:           playerID,
		Username:     "player1",
		PasswordHash: "$argon2id$hashed",
	}
	expiry := time.Now().Add(24 * time.Hour)

	playerRepo.EXPECT().GetByUsername(ctx, "player1").Return(player, nil)
	hashSvc.EXPECT().Verify("correct-password", player.PasswordHash).Return(true, nil)
	tokenSvc.EXPECT().Generate(playerID, "player1").Return("jwt-token", expiry, nil)

	token, expiresAt, err := svc.Login(ctx, "player1", "correct-password")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiry, expiresAt)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	svc, playerRepo, _, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	playerRepo.EXPECT().GetByUsername(ctx, "ghost").Return(nil, nil)

	_, _, err := svc.Login(ctx, "ghost", "whatever")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, playerRepo, hashSvc, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	player := &domain.Player{
		ID:           uuid.New(),
		Username:     "player1",
		PasswordHash: "$argon2id$hashed",
	}

	playerRepo.EXPECT().GetByUsername(ctx, "player1").Return(player, nil)
	hashSvc.EXPECT().Verify("wrong-password", player.PasswordHash).Return(false, nil)

	_, _, err := svc.Login(ctx, "player1", "wrong-password")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_Login_RepoError(t *testing.T) {
	svc, playerRepo, _, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	playerRepo.EXPECT().GetByUsername(ctx, "player1").Return(nil, errors.New("connection refused"))

	_, _, err := svc.Login(ctx, "player1", "password")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "SYS_002", appErr.Code)
}
