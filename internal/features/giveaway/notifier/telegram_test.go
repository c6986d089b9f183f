package notifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"giveaway-backend/internal/features/giveaway/models"
	"giveaway-backend/internal/platform/telegram"
)

func testGiveaway() *models.Giveaway {
	return &models.Giveaway{
		ID:                1,
		Name:              "Launch",
		PrizeAmount:       100.0,
		ParticipantsCount: 500,
		EndDate:           time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ChannelID:         1,
		CreatorID:         "creator1",
	}
}

func TestAnnounce(t *testing.T) {
	var gotChatID, gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotChatID = r.PostForm.Get("chat_id")
		gotText = r.PostForm.Get("text")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	n := NewTelegramNotifier(telegram.NewClient("test-token", telegram.WithAPIBase(srv.URL)))

	err := n.Announce(context.Background(), "newsdesk", testGiveaway())
	require.NoError(t, err)
	require.Equal(t, "@newsdesk", gotChatID)
	require.Contains(t, gotText, "🎉 New Giveaway! 🎉")
	require.Contains(t, gotText, "Name: Launch")
	require.Contains(t, gotText, "Prize: $100")
	require.Contains(t, gotText, "Participants: 500")
	require.Contains(t, gotText, "Ends on: 2025-01-01T00:00:00Z")
	require.Contains(t, gotText, "Join now to win!")
}

func TestAnnounce_UsernameAlreadyPrefixed(t *testing.T) {
	var gotChatID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotChatID = r.PostForm.Get("chat_id")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	n := NewTelegramNotifier(telegram.NewClient("test-token", telegram.WithAPIBase(srv.URL)))

	err := n.Announce(context.Background(), "@newsdesk", testGiveaway())
	require.NoError(t, err)
	require.Equal(t, "@newsdesk", gotChatID)
}

func TestAnnounce_FractionalPrize(t *testing.T) {
	var gotText string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotText = r.PostForm.Get("text")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	n := NewTelegramNotifier(telegram.NewClient("test-token", telegram.WithAPIBase(srv.URL)))

	giveaway := testGiveaway()
	giveaway.PrizeAmount = 99.95

	err := n.Announce(context.Background(), "newsdesk", giveaway)
	require.NoError(t, err)
	require.Contains(t, gotText, "Prize: $99.95")
}
