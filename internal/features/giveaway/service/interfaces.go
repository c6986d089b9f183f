package service

import (
	"context"

	"giveaway-backend/internal/features/giveaway/models"
	"giveaway-backend/internal/features/giveaway/models/dto"
)

type GiveawayService interface {
	// Create validates the input, persists the giveaway and announces it
	// to the owning channel. The announcement is best effort: its
	// failure never fails a committed create, except for a missing bot
	// credential which is surfaced as a configuration fault.
	Create(ctx context.Context, input dto.GiveawayCreateRequest) (*models.Giveaway, error)
	// GetByID re-reads a persisted giveaway.
	GetByID(ctx context.Context, id int64) (*models.Giveaway, error)
}

// Notifier announces a giveaway to a channel, addressed by username.
type Notifier interface {
	Announce(ctx context.Context, channelUsername string, giveaway *models.Giveaway) error
}
