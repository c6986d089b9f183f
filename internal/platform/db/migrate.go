package db

import (
	"gorm.io/gorm"

	channelmodels "giveaway-backend/internal/features/channel/models"
	giveawaymodels "giveaway-backend/internal/features/giveaway/models"
)

// Migrate creates or updates the channel and giveaway tables, including
// the username uniqueness and channel foreign key constraints the
// services rely on.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&channelmodels.Channel{},
		&giveawaymodels.Giveaway{},
	)
}
