package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"giveaway-backend/internal/common/cache"
	"giveaway-backend/internal/common/errors"
	"giveaway-backend/internal/common/logger"
	"giveaway-backend/internal/features/channel/models"
	"giveaway-backend/internal/features/channel/repository"
)

const channelCacheTTL = 30 * time.Minute

type channelService struct {
	repo  repository.ChannelRepository
	cache *cache.Service
}

// NewChannelService builds the channel registry. The cache may be nil,
// in which case every lookup goes to the store.
func NewChannelService(repo repository.ChannelRepository, cacheService *cache.Service) ChannelService {
	return &channelService{
		repo:  repo,
		cache: cacheService,
	}
}

func (s *channelService) AddChannel(ctx context.Context, username, creatorID string) (*models.Channel, error) {
	if username == "" || creatorID == "" {
		return nil, errors.NewValidationError("Missing username or creator_id")
	}

	// Proactive duplicate check; the unique constraint below is the
	// backstop for concurrent inserts.
	existing, err := s.repo.GetByUsername(ctx, username)
	if err != nil && !stderrors.Is(err, repository.ErrNotFound) {
		return nil, errors.NewDatabaseError("get channel by username", err)
	}
	if existing != nil {
		return nil, errors.NewChannelExistsError(username)
	}

	channel := &models.Channel{
		Username:  username,
		CreatorID: creatorID,
	}

	if err := s.repo.Create(ctx, channel); err != nil {
		if stderrors.Is(err, repository.ErrChannelExists) {
			return nil, errors.NewChannelExistsError(username)
		}
		return nil, errors.NewDatabaseError("create channel", err)
	}

	logger.Info().
		Int64("channel_id", channel.ID).
		Str("username", channel.Username).
		Str("creator_id", channel.CreatorID).
		Msg("Channel registered")

	return channel, nil
}

func (s *channelService) GetChannels(ctx context.Context, creatorID string) ([]models.ChannelSummary, error) {
	if creatorID == "" {
		return nil, errors.NewValidationError("Missing creator_id parameter")
	}

	channels, err := s.repo.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, errors.NewDatabaseError("list channels by creator", err)
	}

	if len(channels) == 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "No channels found")
	}

	summaries := make([]models.ChannelSummary, 0, len(channels))
	for _, channel := range channels {
		summaries = append(summaries, models.ChannelSummary{
			ID:       channel.ID,
			Username: channel.Username,
		})
	}

	return summaries, nil
}

func (s *channelService) GetChannelByID(ctx context.Context, id int64) (*models.Channel, error) {
	if id <= 0 {
		return nil, errors.NewChannelNotFoundError(id)
	}

	cacheKey := fmt.Sprintf("channel:%d", id)

	var cached models.Channel
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	channel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.NewChannelNotFoundError(id)
		}
		return nil, errors.NewDatabaseError("get channel by id", err)
	}

	// Cache write failures degrade to the store on the next read.
	if err := s.cache.Set(ctx, cacheKey, channel, channelCacheTTL); err != nil {
		logger.Warn().Err(err).Int64("channel_id", id).Msg("Failed to cache channel")
	}

	return channel, nil
}
