// Package store persists parsed resource snapshots through a cache.Cache so
// a consuming layer can look payloads up again without refetching them. Keys
// are "<kind>:<id>", values are the resource's compact JSON text.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sumitmcc/webexteamssdk/pkg/cache"
	"github.com/sumitmcc/webexteamssdk/pkg/jsondata"
	"github.com/sumitmcc/webexteamssdk/pkg/logger"
	"github.com/sumitmcc/webexteamssdk/pkg/models"
)

var (
	// ErrNotFound is returned when no snapshot exists for the requested id
	ErrNotFound = errors.New("snapshot not found")

	// ErrMissingID is returned when a resource without an id is saved
	ErrMissingID = errors.New("resource has no id")
)

const (
	KindTeam    = "team"
	KindWebhook = "webhook"
	KindLicense = "license"
)

// Store saves and loads resource snapshots. It does not handle locking,
// callers are responsible for synchronization.
type Store struct {
	cache cache.Cache
	ttl   time.Duration
}

// New creates a Store over the given cache. ttl applies to every saved
// snapshot, cache.NoExpiration keeps them until evicted.
func New(c cache.Cache, ttl time.Duration) *Store {
	return &Store{cache: c, ttl: ttl}
}

// SaveTeam stores a team snapshot under its id.
func (s *Store) SaveTeam(ctx context.Context, team *models.Team) error {
	return s.save(ctx, KindTeam, team.GetID(), team.Object)
}

// Team loads a team snapshot by id.
func (s *Store) Team(ctx context.Context, id string) (*models.Team, error) {
	payload, err := s.load(ctx, KindTeam, id)
	if err != nil {
		return nil, err
	}
	return models.NewTeam(payload)
}

// SaveWebhook stores a webhook snapshot under its id.
func (s *Store) SaveWebhook(ctx context.Context, webhook *models.Webhook) error {
	return s.save(ctx, KindWebhook, webhook.GetID(), webhook.Object)
}

// Webhook loads a webhook snapshot by id.
func (s *Store) Webhook(ctx context.Context, id string) (*models.Webhook, error) {
	payload, err := s.load(ctx, KindWebhook, id)
	if err != nil {
		return nil, err
	}
	return models.NewWebhook(payload)
}

// SaveLicense stores a license snapshot under its id.
func (s *Store) SaveLicense(ctx context.Context, license *models.License) error {
	return s.save(ctx, KindLicense, license.GetID(), license.Object)
}

// License loads a license snapshot by id.
func (s *Store) License(ctx context.Context, id string) (*models.License, error) {
	payload, err := s.load(ctx, KindLicense, id)
	if err != nil {
		return nil, err
	}
	return models.NewLicense(payload)
}

// All loads every snapshot stored for kind, keyed by id.
func (s *Store) All(ctx context.Context, kind string) (map[string]*jsondata.Object, error) {
	vals, err := s.cache.GetByPattern(ctx, kind+":*")
	if err != nil {
		return nil, fmt.Errorf("listing %s snapshots: %w", kind, err)
	}

	snapshots := make(map[string]*jsondata.Object, len(vals))
	for k, val := range vals {
		payload, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected cached value of type %T for %q", val, k)
		}
		obj, err := jsondata.New(payload)
		if err != nil {
			return nil, fmt.Errorf("decoding snapshot %q: %w", k, err)
		}
		snapshots[strings.TrimPrefix(k, kind+":")] = obj
	}
	return snapshots, nil
}

// Delete removes the snapshot stored for kind and id.
func (s *Store) Delete(ctx context.Context, kind, id string) error {
	return s.cache.Delete(ctx, key(kind, id))
}

type serializable interface {
	ToJSON(opts ...jsondata.EncodeOption) (string, error)
}

func (s *Store) save(ctx context.Context, kind, id string, obj serializable) error {
	log := logger.Logger(ctx).WithFields(logrus.Fields{
		"kind": kind,
		"id":   id,
	})

	if id == "" {
		return ErrMissingID
	}

	payload, err := obj.ToJSON()
	if err != nil {
		return fmt.Errorf("serializing %s snapshot: %w", kind, err)
	}

	if err := s.cache.Set(ctx, key(kind, id), payload, s.ttl); err != nil {
		log.WithError(err).Error("error saving snapshot")
		return err
	}

	log.Debug("snapshot saved")
	return nil
}

func (s *Store) load(ctx context.Context, kind, id string) (string, error) {
	val, err := s.cache.Get(ctx, key(kind, id))
	if err != nil {
		return "", fmt.Errorf("%w: %s %q", ErrNotFound, kind, id)
	}

	payload, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("unexpected cached value of type %T for %s %q", val, kind, id)
	}
	return payload, nil
}

func key(kind, id string) string {
	return kind + ":" + id
}
