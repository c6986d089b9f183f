package notifier

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"giveaway-backend/internal/features/giveaway/models"
	"giveaway-backend/internal/features/giveaway/service"
	"giveaway-backend/internal/platform/telegram"
)

// TelegramNotifier announces giveaways to a Telegram channel via the Bot
// API, addressed by the channel's @username.
type TelegramNotifier struct {
	client *telegram.Client
}

func NewTelegramNotifier(client *telegram.Client) service.Notifier {
	return &TelegramNotifier{client: client}
}

func (n *TelegramNotifier) Announce(ctx context.Context, channelUsername string, giveaway *models.Giveaway) error {
	chatID := "@" + strings.TrimPrefix(channelUsername, "@")

	_, err := n.client.SendMessage(ctx, chatID, formatAnnouncement(giveaway))
	return err
}

func formatAnnouncement(giveaway *models.Giveaway) string {
	return fmt.Sprintf(
		"🎉 New Giveaway! 🎉\n\n"+
			"Name: %s\n"+
			"Prize: $%s\n"+
			"Participants: %d\n"+
			"Ends on: %s\n\n"+
			"Join now to win!",
		giveaway.Name,
		strconv.FormatFloat(giveaway.PrizeAmount, 'f', -1, 64),
		giveaway.ParticipantsCount,
		giveaway.EndDate.Format(time.RFC3339),
	)
}
