package buissines

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/consts"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/deps"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/dto"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/entities"
	domainerrors "github.com/pr-poehali-dev/wild-politics-portal/internal/domain/channel/errors"
	"github.com/pr-poehali-dev/wild-politics-portal/pkg/mapfn"
)

// UseCase implements channel business logic
type UseCase struct {
	channelRepo deps.ChannelRepository
	admins      deps.AdminChecker
	logger      zerolog.Logger
}

// NewUseCase creates a new channel use case
func NewUseCase(
	channelRepo deps.ChannelRepository,
	admins deps.AdminChecker,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		channelRepo: channelRepo,
		admins:      admins,
		logger:      logger,
	}
}

// List returns all channels with verification labels attached
func (u *UseCase) List(ctx context.Context) ([]dto.ChannelItem, error) {
	items, err := u.channelRepo.List(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("Failed to list channels")
		return nil, err
	}

	return mapfn.ConvertSlice(items, func(item dto.ChannelItem) dto.ChannelItem {
		item.VerificationLabel = consts.LabelFor(item.VerificationType)
		return item
	}), nil
}

// Create creates a channel on behalf of an authenticated user
func (u *UseCase) Create(ctx context.Context, authorID uint, req *dto.CreateChannelRequest) (*dto.CreateChannelResponse, error) {
	if authorID == 0 {
		return nil, domainerrors.ErrUnauthorized
	}
	if req.Name == "" {
		return nil, domainerrors.ErrNameRequired
	}

	channel := &entities.Channel{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		CreatedBy:   authorID,
	}
	if channel.Icon == "" {
		channel.Icon = "Newspaper"
	}
	if channel.Color == "" {
		channel.Color = "bg-blue-700"
	}

	if err := u.channelRepo.Create(ctx, channel); err != nil {
		u.logger.Error().Err(err).
			Str("name", req.Name).
			Msg("Failed to create channel")
		return nil, err
	}

	u.logger.Info().
		Uint("channel_id", channel.ID).
		Str("name", channel.Name).
		Uint("created_by", authorID).
		Msg("Channel created")

	return &dto.CreateChannelResponse{ID: channel.ID, Name: channel.Name}, nil
}

// Verify grants or revokes a verification badge. The operation is
// unconditional and idempotent: each call overwrites prior state, and a
// revoke clears both flag and type atomically.
func (u *UseCase) Verify(ctx context.Context, actorID uint, req *dto.VerifyChannelRequest) (*dto.VerifyChannelResponse, error) {
	isAdmin, err := u.admins.IsAdmin(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, domainerrors.ErrVerifyForbidden
	}

	if req.ChannelID == 0 {
		return nil, domainerrors.ErrChannelIDRequired
	}

	verified := true
	if req.IsVerified != nil {
		verified = *req.IsVerified
	}

	if verified {
		if req.VerificationType == nil || !consts.IsValidVerificationType(*req.VerificationType) {
			return nil, domainerrors.ErrInvalidVerificationType
		}
		err = u.channelRepo.SetVerification(ctx, req.ChannelID, req.VerificationType, true)
	} else {
		err = u.channelRepo.SetVerification(ctx, req.ChannelID, nil, false)
	}

	if err != nil {
		u.logger.Error().Err(err).
			Uint("channel_id", req.ChannelID).
			Msg("Failed to update channel verification")
		return nil, err
	}

	u.logger.Info().
		Uint("channel_id", req.ChannelID).
		Bool("verified", verified).
		Msg("Channel verification updated")

	return &dto.VerifyChannelResponse{OK: true}, nil
}
