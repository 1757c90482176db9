// Package settings holds the field visibility configuration, loaded from
// and written through the persistent store on every change.
package settings

import (
	"context"
	"sync"

	"github.com/partdeck/partdeck/internal/field"
	"github.com/partdeck/partdeck/internal/kv"
	"github.com/partdeck/partdeck/internal/model"
)

// Settings owns the single FieldVisibility shared by every view.
type Settings struct {
	store *kv.Store

	mu  sync.Mutex
	vis model.FieldVisibility
}

// New loads the stored configuration. Unmarshaling happens on top of
// the defaults, so switches missing from an old blob keep their default.
func New(store *kv.Store) *Settings {
	s := &Settings{store: store, vis: model.DefaultFieldVisibility()}
	store.Read(kv.KeyVisibility, &s.vis)
	return s
}

// Visibility returns the current configuration snapshot.
func (s *Settings) Visibility() model.FieldVisibility {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vis
}

// Toggle flips one switch and persists the whole configuration. It
// reports whether id names a toggleable field.
func (s *Settings) Toggle(ctx context.Context, id field.ID, visible bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !field.SetVisible(&s.vis, id, visible) {
		return false
	}
	s.store.Write(ctx, kv.KeyVisibility, s.vis)
	return true
}

// Replace swaps in a whole new configuration and persists it.
func (s *Settings) Replace(ctx context.Context, vis model.FieldVisibility) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vis = vis
	s.store.Write(ctx, kv.KeyVisibility, s.vis)
}
