package dto

import "time"

// GiveawayCreateRequest carries the fields of a new giveaway. Absent
// fields bind to their zero values and are rejected by the service as
// missing.
type GiveawayCreateRequest struct {
	Name              string    `json:"name"`
	PrizeAmount       float64   `json:"prize_amount"`
	ParticipantsCount int       `json:"participants_count"`
	EndDate           time.Time `json:"end_date"`
	ChannelID         int64     `json:"channel_id"`
	CreatorID         string    `json:"creator_id"`
}
