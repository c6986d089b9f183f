package repository

import (
	"context"
	"errors"

	"giveaway-backend/internal/features/channel/models"
)

var (
	// ErrChannelExists signals a violated username uniqueness constraint.
	ErrChannelExists = errors.New("channel already exists")
	// ErrNotFound signals that no matching channel row exists.
	ErrNotFound = errors.New("channel not found")
)

type ChannelRepository interface {
	Create(ctx context.Context, channel *models.Channel) error
	GetByID(ctx context.Context, id int64) (*models.Channel, error)
	GetByUsername(ctx context.Context, username string) (*models.Channel, error)
	ListByCreator(ctx context.Context, creatorID string) ([]models.Channel, error)
}
