package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"giveaway-backend/internal/features/channel/models"
	"giveaway-backend/internal/features/channel/repository"
)

type channelRepository struct {
	db *gorm.DB
}

func NewChannelRepository(db *gorm.DB) repository.ChannelRepository {
	return &channelRepository{db: db}
}

func (r *channelRepository) Create(ctx context.Context, channel *models.Channel) error {
	result := r.db.WithContext(ctx).Create(channel)
	if result.Error != nil {
		if isUsernameConflict(result.Error) {
			return repository.ErrChannelExists
		}
		return result.Error
	}
	return nil
}

func (r *channelRepository) GetByID(ctx context.Context, id int64) (*models.Channel, error) {
	var channel models.Channel
	result := r.db.WithContext(ctx).First(&channel, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, result.Error
	}
	return &channel, nil
}

func (r *channelRepository) GetByUsername(ctx context.Context, username string) (*models.Channel, error) {
	var channel models.Channel
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&channel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, result.Error
	}
	return &channel, nil
}

func (r *channelRepository) ListByCreator(ctx context.Context, creatorID string) ([]models.Channel, error) {
	var channels []models.Channel
	result := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("id").
		Find(&channels)
	if result.Error != nil {
		return nil, result.Error
	}
	return channels, nil
}

// isUsernameConflict reports whether err is the postgres unique violation
// on the channel username constraint.
func isUsernameConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		strings.Contains(pgErr.ConstraintName, "uni_channels_username")
}
