package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"giveaway-backend/internal/common/errors"
	"giveaway-backend/internal/features/channel/models"
	"giveaway-backend/internal/features/channel/repository"
)

type fakeChannelRepo struct {
	channels  []*models.Channel
	nextID    int64
	createErr error
}

func newFakeChannelRepo() *fakeChannelRepo {
	return &fakeChannelRepo{nextID: 1}
}

func (r *fakeChannelRepo) Create(ctx context.Context, channel *models.Channel) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.channels {
		if existing.Username == channel.Username {
			return repository.ErrChannelExists
		}
	}
	channel.ID = r.nextID
	r.nextID++
	stored := *channel
	r.channels = append(r.channels, &stored)
	return nil
}

func (r *fakeChannelRepo) GetByID(ctx context.Context, id int64) (*models.Channel, error) {
	for _, channel := range r.channels {
		if channel.ID == id {
			found := *channel
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeChannelRepo) GetByUsername(ctx context.Context, username string) (*models.Channel, error) {
	for _, channel := range r.channels {
		if channel.Username == username {
			found := *channel
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeChannelRepo) ListByCreator(ctx context.Context, creatorID string) ([]models.Channel, error) {
	var result []models.Channel
	for _, channel := range r.channels {
		if channel.CreatorID == creatorID {
			result = append(result, *channel)
		}
	}
	return result, nil
}

func requireCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	appErr, ok := errors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
}

func TestAddChannel_MissingFields(t *testing.T) {
	svc := NewChannelService(newFakeChannelRepo(), nil)

	_, err := svc.AddChannel(context.Background(), "", "creator1")
	requireCode(t, err, errors.ErrCodeValidation)

	_, err = svc.AddChannel(context.Background(), "newsdesk", "")
	requireCode(t, err, errors.ErrCodeValidation)
}

func TestAddChannel_AssignsID(t *testing.T) {
	repo := newFakeChannelRepo()
	svc := NewChannelService(repo, nil)

	channel, err := svc.AddChannel(context.Background(), "newsdesk", "creator1")
	require.NoError(t, err)
	require.NotZero(t, channel.ID)
	require.Equal(t, "newsdesk", channel.Username)
	require.Equal(t, "creator1", channel.CreatorID)
	require.Len(t, repo.channels, 1)
}

func TestAddChannel_DuplicateUsername(t *testing.T) {
	repo := newFakeChannelRepo()
	svc := NewChannelService(repo, nil)

	_, err := svc.AddChannel(context.Background(), "newsdesk", "creator1")
	require.NoError(t, err)

	// Same username, even from another creator, is rejected.
	_, err = svc.AddChannel(context.Background(), "newsdesk", "creator2")
	requireCode(t, err, errors.ErrCodeChannelExists)
	require.Len(t, repo.channels, 1)
}

func TestAddChannel_ConcurrentDuplicateFromStore(t *testing.T) {
	// The proactive check misses, the store's unique constraint fires.
	repo := newFakeChannelRepo()
	repo.createErr = repository.ErrChannelExists
	svc := NewChannelService(repo, nil)

	_, err := svc.AddChannel(context.Background(), "newsdesk", "creator1")
	requireCode(t, err, errors.ErrCodeChannelExists)
}

func TestGetChannels_MissingCreator(t *testing.T) {
	svc := NewChannelService(newFakeChannelRepo(), nil)

	_, err := svc.GetChannels(context.Background(), "")
	requireCode(t, err, errors.ErrCodeValidation)
}

func TestGetChannels_NoneFound(t *testing.T) {
	svc := NewChannelService(newFakeChannelRepo(), nil)

	_, err := svc.GetChannels(context.Background(), "creator1")
	requireCode(t, err, errors.ErrCodeNotFound)
}

func TestGetChannels_ReturnsOwnChannels(t *testing.T) {
	repo := newFakeChannelRepo()
	svc := NewChannelService(repo, nil)

	first, err := svc.AddChannel(context.Background(), "newsdesk", "creator1")
	require.NoError(t, err)
	_, err = svc.AddChannel(context.Background(), "sportsdesk", "creator1")
	require.NoError(t, err)
	_, err = svc.AddChannel(context.Background(), "other", "creator2")
	require.NoError(t, err)

	channels, err := svc.GetChannels(context.Background(), "creator1")
	require.NoError(t, err)
	require.Len(t, channels, 2)
	require.Equal(t, first.ID, channels[0].ID)
	require.Equal(t, "newsdesk", channels[0].Username)
	require.Equal(t, "sportsdesk", channels[1].Username)
}

func TestGetChannelByID(t *testing.T) {
	repo := newFakeChannelRepo()
	svc := NewChannelService(repo, nil)

	created, err := svc.AddChannel(context.Background(), "newsdesk", "creator1")
	require.NoError(t, err)

	channel, err := svc.GetChannelByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "newsdesk", channel.Username)

	_, err = svc.GetChannelByID(context.Background(), 404)
	requireCode(t, err, errors.ErrCodeChannelNotFound)

	_, err = svc.GetChannelByID(context.Background(), 0)
	requireCode(t, err, errors.ErrCodeChannelNotFound)
}
