package service

import (
	"context"

	"giveaway-backend/internal/features/channel/models"
)

type ChannelService interface {
	// AddChannel registers a channel, rejecting duplicates by username.
	AddChannel(ctx context.Context, username, creatorID string) (*models.Channel, error)
	// GetChannels lists the channels owned by a creator, in insertion
	// order. Zero channels is a not-found condition, not an empty list.
	GetChannels(ctx context.Context, creatorID string) ([]models.ChannelSummary, error)
	// GetChannelByID resolves a channel, consulted by the giveaway flow
	// to validate references and address announcements.
	GetChannelByID(ctx context.Context, id int64) (*models.Channel, error)
}
