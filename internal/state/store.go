// Package state owns the lifecycle of the persistent application state:
// load, version detection, migration, defaults reconciliation, in-memory
// ownership, and write-back. All mutation funnels through the store so the
// persistence and merge invariants live in one place.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/kmorrow/evq/internal/defaults"
	"github.com/kmorrow/evq/internal/domain"
	"github.com/kmorrow/evq/internal/merge"
	"github.com/kmorrow/evq/internal/migrate"
	"github.com/kmorrow/evq/internal/storage"
)

// Store holds the live application state and persists it on every change.
type Store struct {
	mu     sync.RWMutex
	blob   storage.Blob
	state  domain.AppState
	logf   func(format string, args ...any)
	subs   map[int]func(domain.AppState)
	nextID int
}

// Option configures a Store.
type Option func(*Store)

// WithLogf overrides the diagnostic log function (default: stderr).
func WithLogf(logf func(format string, args ...any)) Option {
	return func(s *Store) {
		s.logf = logf
	}
}

// Open loads the state from the blob, migrating and reconciling as needed,
// and persists the result stamped with the current data version.
//
// A corrupt payload (unparseable, non-object, or one that fails migration or
// merge) is logged, deleted, and replaced with the defaults. Storage I/O
// failures are returned as errors instead; they do not indicate corruption.
func Open(blob storage.Blob, opts ...Option) (*Store, error) {
	s := &Store{
		blob: blob,
		subs: map[int]func(domain.AppState){},
		logf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load runs the cold-start pipeline and leaves the store Ready.
func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.blob.Read()
	if err != nil {
		return fmt.Errorf("failed to read stored state: %w", err)
	}

	if !ok {
		s.state = defaults.DefaultState()
		return s.persistLocked()
	}

	loaded, err := buildState(raw)
	if err != nil {
		s.logf("evq: stored state is corrupt, resetting to defaults: %v", err)
		if derr := s.blob.Delete(); derr != nil {
			return fmt.Errorf("failed to clear corrupt state: %w", derr)
		}
		s.state = defaults.DefaultState()
		return s.persistLocked()
	}

	s.state = loaded
	return s.persistLocked()
}

// buildState parses raw bytes, detects the stored version, migrates to the
// current version, and reconciles against the shipped defaults.
func buildState(raw []byte) (domain.AppState, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return domain.AppState{}, fmt.Errorf("parse stored state: %w", err)
	}

	data, version, err := detectEnvelope(parsed)
	if err != nil {
		return domain.AppState{}, err
	}

	if version < defaults.DataVersion {
		data = migrate.Run(data, version)
	}

	defaultsMap, err := toMap(defaults.DefaultState())
	if err != nil {
		return domain.AppState{}, err
	}

	merged, err := merge.Reconcile(data, defaultsMap)
	if err != nil {
		return domain.AppState{}, err
	}

	return toState(merged)
}

// Get returns the current state. The returned value shares no memory with
// the store's copy.
func (s *Store) Get() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Update applies fn to a copy of the current state, then swaps it in,
// persists, and notifies subscribers. If fn returns an error the state is
// left untouched.
func (s *Store) Update(fn func(*domain.AppState) error) error {
	s.mu.Lock()
	next := cloneState(s.state)
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	if err := s.persistLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	snapshot := cloneState(s.state)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
	return nil
}

// Replace swaps in a full replacement state.
func (s *Store) Replace(next domain.AppState) error {
	return s.Update(func(state *domain.AppState) error {
		*state = cloneState(next)
		return nil
	})
}

// Refresh discards the in-memory state and re-runs the load pipeline against
// the same blob, picking up writes made by another process.
func (s *Store) Refresh() error {
	if err := s.load(); err != nil {
		return err
	}

	s.mu.RLock()
	snapshot := cloneState(s.state)
	subs := s.subscribersLocked()
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(snapshot)
	}
	return nil
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(domain.AppState)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	subID := s.nextID
	s.subs[subID] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, subID)
	}
}

// persistLocked serializes the state stamped with the current data version
// and writes it back to the blob. Callers must hold the write lock.
func (s *Store) persistLocked() error {
	envelope, err := toMap(s.state)
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}
	envelope["version"] = defaults.DataVersion

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}
	if err := s.blob.Write(data); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}

func (s *Store) subscribersLocked() []func(domain.AppState) {
	subs := make([]func(domain.AppState), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

// toMap converts a typed state into its untyped JSON form.
func toMap(state domain.AppState) (map[string]any, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return out, nil
}

// toState decodes an untyped merged state into the typed aggregate.
func toState(data map[string]any) (domain.AppState, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return domain.AppState{}, fmt.Errorf("encode merged state: %w", err)
	}
	var out domain.AppState
	if err := json.Unmarshal(raw, &out); err != nil {
		return domain.AppState{}, fmt.Errorf("decode merged state: %w", err)
	}
	return out, nil
}

func cloneState(state domain.AppState) domain.AppState {
	raw, err := json.Marshal(state)
	if err != nil {
		// AppState contains only JSON-serializable fields.
		panic(fmt.Sprintf("state: clone: %v", err))
	}
	var out domain.AppState
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("state: clone: %v", err))
	}
	return out
}
