package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"giveaway-backend/internal/features/giveaway/models"
	"giveaway-backend/internal/features/giveaway/repository"
)

type giveawayRepository struct {
	db *gorm.DB
}

func NewGiveawayRepository(db *gorm.DB) repository.GiveawayRepository {
	return &giveawayRepository{db: db}
}

func (r *giveawayRepository) Create(ctx context.Context, giveaway *models.Giveaway) error {
	// Omit the association so gorm inserts only the giveaway row and the
	// channel reference is checked by the foreign key alone.
	result := r.db.WithContext(ctx).Omit("Channel").Create(giveaway)
	if result.Error != nil {
		if isChannelFKViolation(result.Error) {
			return repository.ErrChannelMissing
		}
		return result.Error
	}
	return nil
}

func (r *giveawayRepository) GetByID(ctx context.Context, id int64) (*models.Giveaway, error) {
	var giveaway models.Giveaway
	result := r.db.WithContext(ctx).First(&giveaway, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, result.Error
	}
	return &giveaway, nil
}

// isChannelFKViolation reports whether err is the postgres foreign key
// violation on the giveaway→channel reference.
func isChannelFKViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
