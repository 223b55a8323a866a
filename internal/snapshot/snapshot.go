// Package snapshot provides canonical JSON snapshots of the application
// state for git-friendly backups and cross-machine transfer.
//
// Snapshots are deterministic: keys sorted lexicographically, no
// insignificant whitespace, no HTML escaping, and a sha256 revision computed
// over the canonical bytes.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kmorrow/evq/internal/defaults"
	"github.com/kmorrow/evq/internal/domain"
)

// Meta contains snapshot metadata.
type Meta struct {
	SchemaVersion int    `json:"schema_version"`
	SnapshotRev   string `json:"snapshot_rev,omitempty"`
	GeneratedAt   string `json:"generated_at,omitempty"`
}

// Snapshot wraps one full application state with its metadata.
type Snapshot struct {
	Meta  Meta           `json:"meta"`
	State map[string]any `json:"state"`
}

// Build creates a snapshot of the given state at the current schema version.
func Build(state domain.AppState) (*Snapshot, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	var stateMap map[string]any
	if err := json.Unmarshal(raw, &stateMap); err != nil {
		return nil, fmt.Errorf("failed to decode state: %w", err)
	}

	return &Snapshot{
		Meta: Meta{
			SchemaVersion: defaults.DataVersion,
			GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		},
		State: stateMap,
	}, nil
}

// ExportResult describes a written snapshot.
type ExportResult struct {
	OutputPath  string
	SnapshotRev string
	Bytes       int
}

// Export writes a snapshot of state to path. Canonical output is compact
// and deterministic; otherwise the JSON is indented for reading.
func Export(state domain.AppState, path string, canonical bool) (*ExportResult, error) {
	snap, err := Build(state)
	if err != nil {
		return nil, err
	}

	// Compute the revision over canonical bytes without the rev itself,
	// then encode again with the rev embedded.
	base, err := CanonicalJSON(snap)
	if err != nil {
		return nil, err
	}
	snap.Meta.SnapshotRev = ComputeSnapshotRev(base)

	var data []byte
	if canonical {
		data, err = CanonicalJSON(snap)
	} else {
		data, err = PrettyJSON(snap)
	}
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write snapshot: %w", err)
	}

	return &ExportResult{
		OutputPath:  path,
		SnapshotRev: snap.Meta.SnapshotRev,
		Bytes:       len(data),
	}, nil
}

// Read loads and validates a snapshot file.
func Read(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if err := Validate(&snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	return &snap, nil
}

// Validate checks the structural invariants of a snapshot.
func Validate(snap *Snapshot) error {
	if snap.Meta.SchemaVersion < 0 {
		return fmt.Errorf("schema_version must not be negative")
	}
	if snap.Meta.SchemaVersion > defaults.DataVersion {
		return fmt.Errorf("schema_version %d is newer than this build supports (%d)", snap.Meta.SchemaVersion, defaults.DataVersion)
	}
	if snap.State == nil {
		return fmt.Errorf("missing state object")
	}
	return nil
}

// Envelope returns the snapshot state as a versioned persistence envelope,
// ready to be written to a storage blob. Loading it re-runs migration and
// defaults reconciliation for snapshots taken at older schema versions.
func (s *Snapshot) Envelope() ([]byte, error) {
	envelope := make(map[string]any, len(s.State)+1)
	for key, value := range s.State {
		envelope[key] = value
	}
	envelope["version"] = s.Meta.SchemaVersion

	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to encode envelope: %w", err)
	}
	return data, nil
}
