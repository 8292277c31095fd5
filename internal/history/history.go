// Package history keeps the recently requested fact topics of each owner: at
// most MaxEntries, newest first, with no two equal under case folding.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"studymate-backend/internal/logging"
)

const (
	// Key is the storage key the list is persisted under.
	Key        = "factHistory"
	MaxEntries = 10
)

// Add returns a new list with topic at the front, any case-insensitive
// duplicate removed and the tail beyond MaxEntries dropped. list is not modified.
func Add(list []string, topic string) []string {
	out := make([]string, 0, MaxEntries)
	out = append(out, topic)
	for _, h := range list {
		if len(out) == MaxEntries {
			break
		}
		if strings.EqualFold(h, topic) {
			continue
		}
		out = append(out, h)
	}
	return out
}

// Store is an opaque string key/value store scoped by owner.
type Store interface {
	Load(ctx context.Context, owner string) (value string, ok bool, err error)
	Save(ctx context.Context, owner, value string) error
	Delete(ctx context.Context, owner string) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns the owner's topics. Absent or malformed stored data reads as
// an empty list.
func (s *Service) List(ctx context.Context, owner string) ([]string, error) {
	raw, ok, err := s.store.Load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	if !ok {
		return []string{}, nil
	}

	list, err := decode(raw)
	if err != nil {
		logging.WithContext(ctx).WithError(err).Warn("Discarding malformed stored history")
		return []string{}, nil
	}
	return list, nil
}

// Record moves topic to the front of the owner's list and persists it. The
// read-modify-write is not atomic across concurrent callers.
func (s *Service) Record(ctx context.Context, owner, topic string) ([]string, error) {
	if strings.TrimSpace(topic) == "" {
		return s.List(ctx, owner)
	}

	list, err := s.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	updated := Add(list, topic)
	data, err := json.Marshal(updated)
	if err != nil {
		return nil, fmt.Errorf("failed to encode history: %w", err)
	}
	if err := s.store.Save(ctx, owner, string(data)); err != nil {
		return nil, fmt.Errorf("failed to save history: %w", err)
	}
	return updated, nil
}

func (s *Service) Clear(ctx context.Context, owner string) error {
	if err := s.store.Delete(ctx, owner); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// decode parses a stored list and re-applies the list invariants, so data
// written by another client cannot break them.
func decode(raw string) ([]string, error) {
	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, err
	}

	list := []string{}
	for i := len(stored) - 1; i >= 0; i-- {
		if strings.TrimSpace(stored[i]) == "" {
			continue
		}
		list = Add(list, stored[i])
	}
	return list, nil
}
