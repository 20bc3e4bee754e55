package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sumitmcc/webexteamssdk/pkg/cache"
	"github.com/sumitmcc/webexteamssdk/pkg/cache/inmemory"
	"github.com/sumitmcc/webexteamssdk/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	c, err := cache.New(&cache.Config{
		Driver:   cache.DriverMemory,
		InMemory: &inmemory.Config{},
	})
	assert.Nil(t, err)

	return New(c, cache.NoExpiration)
}

func TestStoreTeamRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	team, err := models.NewTeam(`{"id": "t1", "name": "Data Platform", "creatorId": "p1"}`)
	assert.Nil(t, err)

	assert.Nil(t, s.SaveTeam(ctx, team))

	loaded, err := s.Team(ctx, "t1")
	assert.Nil(t, err)
	assert.Equal(t, "t1", loaded.GetID())
	assert.Equal(t, "Data Platform", loaded.GetName())
	assert.Equal(t, "p1", loaded.GetCreatorID())
	assert.Equal(t, team.ToDict(), loaded.ToDict())
}

func TestStoreWebhookRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	webhook, err := models.NewWebhook(`{"id": "w1", "targetUrl": "https://example.com/hook", "status": "active"}`)
	assert.Nil(t, err)

	assert.Nil(t, s.SaveWebhook(ctx, webhook))

	loaded, err := s.Webhook(ctx, "w1")
	assert.Nil(t, err)
	assert.Equal(t, "https://example.com/hook", loaded.GetTargetURL())
	assert.Equal(t, models.StatusActive, loaded.GetStatus())
}

func TestStoreLicenseRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	license, err := models.NewLicense(`{"id": "l1", "totalUnits": 100, "consumedUnits": 42}`)
	assert.Nil(t, err)

	assert.Nil(t, s.SaveLicense(ctx, license))

	loaded, err := s.License(ctx, "l1")
	assert.Nil(t, err)
	assert.Equal(t, 100, loaded.GetTotalUnits())
	assert.Equal(t, 42, loaded.GetConsumedUnits())
}

func TestStoreMissingSnapshot(t *testing.T) {
	s := newTestStore(t)

	team, err := s.Team(context.Background(), "absent")
	assert.Nil(t, team)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreAllListsOnlyRequestedKind(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	teamA, err := models.NewTeam(`{"id": "t1", "name": "Data Platform"}`)
	assert.Nil(t, err)
	teamB, err := models.NewTeam(`{"id": "t2", "name": "Infrastructure"}`)
	assert.Nil(t, err)
	webhook, err := models.NewWebhook(`{"id": "w1", "targetUrl": "https://example.com/hook"}`)
	assert.Nil(t, err)

	assert.Nil(t, s.SaveTeam(ctx, teamA))
	assert.Nil(t, s.SaveTeam(ctx, teamB))
	assert.Nil(t, s.SaveWebhook(ctx, webhook))

	teams, err := s.All(ctx, KindTeam)
	assert.Nil(t, err)
	assert.Len(t, teams, 2)
	assert.Equal(t, "Data Platform", teams["t1"].StringField("name"))
	assert.Equal(t, "Infrastructure", teams["t2"].StringField("name"))

	webhooks, err := s.All(ctx, KindWebhook)
	assert.Nil(t, err)
	assert.Len(t, webhooks, 1)
	assert.Equal(t, "https://example.com/hook", webhooks["w1"].StringField("targetUrl"))
}

func TestStoreAllEmpty(t *testing.T) {
	s := newTestStore(t)

	licenses, err := s.All(context.Background(), KindLicense)
	assert.Nil(t, err)
	assert.Empty(t, licenses)
}

func TestStoreRejectsResourceWithoutID(t *testing.T) {
	s := newTestStore(t)

	team, err := models.NewTeam(`{"name": "No ID"}`)
	assert.Nil(t, err)

	assert.ErrorIs(t, s.SaveTeam(context.Background(), team), ErrMissingID)
}

func TestStoreDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	team, err := models.NewTeam(`{"id": "t1"}`)
	assert.Nil(t, err)
	assert.Nil(t, s.SaveTeam(ctx, team))

	assert.Nil(t, s.Delete(ctx, KindTeam, "t1"))

	_, err = s.Team(ctx, "t1")
	assert.ErrorIs(t, err, ErrNotFound)
}
