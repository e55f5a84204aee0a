// Package session persists the last-used skin document in the platform
// app-data store, so a new invocation picks up where the previous one left
// off.
package session

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"skin-forge/internal/skindoc"
)

const (
	sessionObject = "session"
	lastProp      = "last"
)

// Store wraps the app-data manager. A nil manager puts the store in degraded
// mode: loads return the default document and saves are dropped silently.
type Store struct {
	m *gdata.Manager
}

// Open creates the store backed by the platform app-data directory.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("session: open store: %w", err)
	}
	return &Store{m: m}, nil
}

// New wraps an existing manager. Pass nil for degraded mode.
func New(m *gdata.Manager) *Store {
	return &Store{m: m}
}

// HasLast reports whether a previous document was saved.
func (s *Store) HasLast() bool {
	return s != nil && s.m != nil && s.m.ObjectPropExists(sessionObject, lastProp)
}

// LoadLast returns the last saved document, or the default when none exists.
func (s *Store) LoadLast() (skindoc.Document, error) {
	if !s.HasLast() {
		return skindoc.Default(), nil
	}
	data, err := s.m.LoadObjectProp(sessionObject, lastProp)
	if err != nil {
		return skindoc.Default(), fmt.Errorf("session: load: %w", err)
	}
	doc, err := skindoc.Parse(data)
	if err != nil {
		// A stale or corrupted session never blocks a new one.
		return skindoc.Default(), fmt.Errorf("session: stale document: %w", err)
	}
	return doc, nil
}

// SaveLast stores the document as the session to resume next time.
func (s *Store) SaveLast(doc skindoc.Document) error {
	if s == nil || s.m == nil {
		return nil
	}
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	if err := s.m.SaveObjectProp(sessionObject, lastProp, data); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	return nil
}
