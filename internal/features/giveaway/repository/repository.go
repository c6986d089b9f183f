package repository

import (
	"context"
	"errors"

	"giveaway-backend/internal/features/giveaway/models"
)

var (
	// ErrChannelMissing signals a violated foreign key: the referenced
	// channel row does not exist.
	ErrChannelMissing = errors.New("referenced channel does not exist")
	// ErrNotFound signals that no matching giveaway row exists.
	ErrNotFound = errors.New("giveaway not found")
)

type GiveawayRepository interface {
	Create(ctx context.Context, giveaway *models.Giveaway) error
	GetByID(ctx context.Context, id int64) (*models.Giveaway, error)
}
