package models

import (
	"time"

	channelmodels "giveaway-backend/internal/features/channel/models"
)

// Giveaway is a prize drawing announced to a channel's subscribers. Rows
// are immutable after creation.
type Giveaway struct {
	ID                int64     `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name" gorm:"size:100;not null"`
	PrizeAmount       float64   `json:"prize_amount" gorm:"not null"`
	ParticipantsCount int       `json:"participants_count" gorm:"not null"`
	EndDate           time.Time `json:"end_date" gorm:"not null"`
	ChannelID         int64     `json:"channel_id" gorm:"not null;index"`
	CreatorID         string    `json:"creator_id" gorm:"size:100;not null"`

	Channel channelmodels.Channel `json:"-" gorm:"foreignKey:ChannelID"`
}
