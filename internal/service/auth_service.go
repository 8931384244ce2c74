package service

import (
	"context"
	"fmt"
	"time"

	"roulette-table-service/internal/core/domain"
	"roulette-table-service/internal/core/ports"
	"roulette-table-service/pkg/apperror"

	"github.com/google/uuid"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	playerRepo      ports.PlayerRepository
	hashSvc         ports.HashService
	tokenSvc        ports.TokenService
	startingBalance int64
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	playerRepo ports.PlayerRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	startingBalance int64,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		playerRepo:      playerRepo,
		hashSvc:         hashSvc,
		tokenSvc:        tokenSvc,
		startingBalance: startingBalance,
	}
}

// Register creates a new player account seeded with the table's starting
// bankroll.
func (s *AuthServiceImpl) Register(ctx context.Context, req ports.RegisterRequest) (*domain.Player, error) {
	// Check username uniqueness
	existing, err := s.playerRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check username: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrUsernameExists()
	}

	// Hash password with Argon2id
	passwordHash, err := s.hashSvc.Hash(req.Password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	now := time.Now().UTC()
	player := &domain.Player{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		Balance:      s.startingBalance,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create player: %w", err))
	}

	return player, nil
}

// Login validates credentials and returns a JWT token.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	player, err := s.playerRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find player: %w", err))
	}
	if player == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	// Verify password
	valid, err := s.hashSvc.Verify(password, player.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	// Generate JWT
	token, expiry, err := s.tokenSvc.Generate(player.ID, player.Username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	return token, expiry, nil
}
