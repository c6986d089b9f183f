package models

// Channel is a registered messaging channel owned by a creator. Channels
// are never updated or deleted; the giveaway flow reads them to resolve
// announcement targets.
type Channel struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	Username  string `json:"username" gorm:"size:100;not null;unique"`
	CreatorID string `json:"creator_id" gorm:"size:100;not null"`
}

// ChannelSummary is the public listing shape for a channel.
type ChannelSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
