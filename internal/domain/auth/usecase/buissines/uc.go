package buissines

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog"

	"github.com/pr-poehali-dev/wild-politics-portal/config"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/deps"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/dto"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/entities"
	domainerrors "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/auth/errors"
)

// UseCase implements authentication and elevation business logic
type UseCase struct {
	userRepo   deps.UserRepository
	codeRepo   deps.AdminCodeRepository
	codeSender deps.CodeSender
	authCfg    *config.AuthConfig
	botToken   string
	logger     zerolog.Logger
}

// NewUseCase creates a new auth use case
func NewUseCase(
	userRepo deps.UserRepository,
	codeRepo deps.AdminCodeRepository,
	codeSender deps.CodeSender,
	authCfg *config.AuthConfig,
	tgCfg *config.TelegramConfig,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		userRepo:   userRepo,
		codeRepo:   codeRepo,
		codeSender: codeSender,
		authCfg:    authCfg,
		botToken:   tgCfg.BotToken,
		logger:     logger,
	}
}

// LoginWithTelegram exchanges a Telegram Login Widget payload for a user record.
// Without a configured bot token (dev mode) the hash check is skipped.
func (u *UseCase) LoginWithTelegram(ctx context.Context, req *dto.TelegramLoginRequest) (*dto.LoginResponse, error) {
	if req.ID == 0 {
		return nil, domainerrors.ErrMissingTelegramID
	}

	if u.botToken != "" && !checkWidgetHash(req, u.botToken) {
		u.logger.Warn().
			Int64("telegram_id", req.ID).
			Msg("Telegram widget hash check failed")
		return nil, domainerrors.ErrInvalidTelegramData
	}

	user, err := u.userRepo.UpsertFromTelegram(ctx, &entities.User{
		TelegramID: req.ID,
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		PhotoURL:   req.PhotoURL,
	})
	if err != nil {
		u.logger.Error().Err(err).
			Int64("telegram_id", req.ID).
			Msg("Failed to upsert user")
		return nil, err
	}

	u.logger.Info().
		Uint("user_id", user.ID).
		Int64("telegram_id", user.TelegramID).
		Bool("is_admin", user.IsAdmin).
		Msg("User logged in via Telegram")

	return &dto.LoginResponse{
		UserID:     user.ID,
		TelegramID: user.TelegramID,
		Username:   user.Username,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		PhotoURL:   user.PhotoURL,
		IsAdmin:    user.IsAdmin,
	}, nil
}

// RequestAdminCode issues a one-time elevation code for an allow-listed identity
func (u *UseCase) RequestAdminCode(ctx context.Context, req *dto.RequestAdminCodeRequest) (*dto.RequestAdminCodeResponse, error) {
	if req.TelegramID == 0 {
		return nil, domainerrors.ErrMissingTelegramID
	}

	if !u.authCfg.IsAllowedAdmin(req.TelegramID) {
		u.logger.Warn().
			Int64("telegram_id", req.TelegramID).
			Msg("Elevation requested by identity outside the allow-list")
		return nil, domainerrors.ErrElevationNotAllowed
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	adminCode := &entities.AdminCode{
		TelegramID: req.TelegramID,
		Code:       code,
		ExpiresAt:  time.Now().Add(u.authCfg.AdminCodeTTL),
	}

	if err := u.codeRepo.Create(ctx, adminCode); err != nil {
		u.logger.Error().Err(err).
			Int64("telegram_id", req.TelegramID).
			Msg("Failed to store admin code")
		return nil, err
	}

	if err := u.codeSender.SendAdminCode(ctx, req.TelegramID, code, u.authCfg.AdminCodeTTL); err != nil {
		u.logger.Error().Err(err).
			Int64("telegram_id", req.TelegramID).
			Msg("Failed to deliver admin code")
		return nil, fmt.Errorf("failed to deliver admin code: %w", err)
	}

	u.logger.Info().
		Int64("telegram_id", req.TelegramID).
		Msg("Admin code issued")

	return &dto.RequestAdminCodeResponse{Sent: true}, nil
}

// VerifyAdminCode exchanges a valid code for elevation. Codes are single-use;
// a wrong or expired code leaves all state untouched.
func (u *UseCase) VerifyAdminCode(ctx context.Context, req *dto.VerifyAdminCodeRequest) (*dto.VerifyAdminCodeResponse, error) {
	if req.TelegramID == 0 || req.Code == "" {
		return nil, domainerrors.ErrMissingCodeFields
	}

	if err := u.codeRepo.ConsumeValid(ctx, req.TelegramID, req.Code, time.Now()); err != nil {
		u.logger.Warn().
			Int64("telegram_id", req.TelegramID).
			Msg("Admin code verification failed")
		return nil, err
	}

	if req.UserID != 0 {
		if err := u.userRepo.SetAdmin(ctx, req.UserID); err != nil {
			u.logger.Error().Err(err).
				Uint("user_id", req.UserID).
				Msg("Failed to set admin flag")
			return nil, err
		}
	}

	u.logger.Info().
		Int64("telegram_id", req.TelegramID).
		Uint("user_id", req.UserID).
		Msg("User elevated to administrator")

	return &dto.VerifyAdminCodeResponse{IsAdmin: true}, nil
}

// generateCode returns a 6-digit numeric code
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
