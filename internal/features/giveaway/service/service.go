package service

import (
	"context"
	stderrors "errors"
	"time"

	"giveaway-backend/internal/common/errors"
	"giveaway-backend/internal/common/logger"
	channelservice "giveaway-backend/internal/features/channel/service"
	"giveaway-backend/internal/features/giveaway/models"
	"giveaway-backend/internal/features/giveaway/models/dto"
	"giveaway-backend/internal/features/giveaway/repository"
)

const announceTimeout = 5 * time.Second

type giveawayService struct {
	repo     repository.GiveawayRepository
	channels channelservice.ChannelService
	notifier Notifier
}

func NewGiveawayService(repo repository.GiveawayRepository, channels channelservice.ChannelService, notifier Notifier) GiveawayService {
	return &giveawayService{
		repo:     repo,
		channels: channels,
		notifier: notifier,
	}
}

func (s *giveawayService) Create(ctx context.Context, input dto.GiveawayCreateRequest) (*models.Giveaway, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	// Check the channel reference before writing so an invalid one never
	// leaves a row behind; the foreign key remains the backstop for a
	// concurrent change.
	if _, err := s.channels.GetChannelByID(ctx, input.ChannelID); err != nil {
		return nil, err
	}

	giveaway := &models.Giveaway{
		Name:              input.Name,
		PrizeAmount:       input.PrizeAmount,
		ParticipantsCount: input.ParticipantsCount,
		EndDate:           input.EndDate,
		ChannelID:         input.ChannelID,
		CreatorID:         input.CreatorID,
	}

	if err := s.repo.Create(ctx, giveaway); err != nil {
		if stderrors.Is(err, repository.ErrChannelMissing) {
			return nil, errors.NewChannelNotFoundError(input.ChannelID)
		}
		return nil, errors.NewDatabaseError("create giveaway", err)
	}

	// Re-read the channel to build the announcement target.
	channel, err := s.channels.GetChannelByID(ctx, giveaway.ChannelID)
	if err != nil {
		return nil, err
	}

	if err := s.announce(ctx, channel.Username, giveaway); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("giveaway_id", giveaway.ID).
		Int64("channel_id", giveaway.ChannelID).
		Str("name", giveaway.Name).
		Msg("Giveaway created")

	return giveaway, nil
}

// announce delivers the channel announcement with a bounded timeout. A
// missing credential is the only announcement fault surfaced to the
// caller; the giveaway row is committed either way.
func (s *giveawayService) announce(ctx context.Context, channelUsername string, giveaway *models.Giveaway) error {
	ctx, cancel := context.WithTimeout(ctx, announceTimeout)
	defer cancel()

	err := s.notifier.Announce(ctx, channelUsername, giveaway)
	if err == nil {
		return nil
	}

	if appErr, ok := errors.AsAppError(err); ok && appErr.Code == errors.ErrCodeConfiguration {
		return appErr
	}

	logger.Warn().
		Err(err).
		Int64("giveaway_id", giveaway.ID).
		Str("channel_username", channelUsername).
		Msg("Giveaway announcement failed")

	return nil
}

func (s *giveawayService) GetByID(ctx context.Context, id int64) (*models.Giveaway, error) {
	giveaway, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.New(errors.ErrCodeNotFound, "Giveaway not found")
		}
		return nil, errors.NewDatabaseError("get giveaway by id", err)
	}
	return giveaway, nil
}

// validateCreate rejects absent fields. Zero-valued numbers and dates are
// treated as missing, matching the public contract (a legitimately zero
// prize or participant count is rejected too).
func validateCreate(input dto.GiveawayCreateRequest) error {
	if input.Name == "" ||
		input.PrizeAmount == 0 ||
		input.ParticipantsCount == 0 ||
		input.EndDate.IsZero() ||
		input.ChannelID == 0 ||
		input.CreatorID == "" {
		return errors.NewValidationError("All fields are required.")
	}

	if input.PrizeAmount < 0 {
		return errors.NewValidationError("prize_amount must not be negative")
	}
	if input.ParticipantsCount < 0 {
		return errors.NewValidationError("participants_count must not be negative")
	}

	return nil
}
