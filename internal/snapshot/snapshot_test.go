package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kmorrow/evq/internal/defaults"
)

func TestBuildStampsCurrentVersion(t *testing.T) {
	snap, err := Build(defaults.DefaultState())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if snap.Meta.SchemaVersion != defaults.DataVersion {
		t.Errorf("SchemaVersion = %d, want %d", snap.Meta.SchemaVersion, defaults.DataVersion)
	}
	if _, ok := snap.State["services"]; !ok {
		t.Error("state payload missing services")
	}
}

func TestCanonicalJSONIsDeterministic(t *testing.T) {
	snap, err := Build(defaults.DefaultState())
	if err != nil {
		t.Fatal(err)
	}

	first, err := CanonicalJSON(snap)
	if err != nil {
		t.Fatal(err)
	}
	second, err := CanonicalJSON(snap)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("canonical encoding differs between runs")
	}
	if strings.HasSuffix(string(first), "\n") {
		t.Error("canonical encoding carries a trailing newline")
	}
}

func TestCanonicalJSONDoesNotEscapeHTML(t *testing.T) {
	out, err := CanonicalJSON(map[string]any{"body": "<b>Gala & Dinner</b>"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), `\u003c`) || strings.Contains(string(out), `\u0026`) {
		t.Errorf("HTML characters escaped: %s", out)
	}
	if !strings.Contains(string(out), "<b>Gala & Dinner</b>") {
		t.Errorf("literal HTML not preserved: %s", out)
	}
}

func TestComputeSnapshotRev(t *testing.T) {
	rev := ComputeSnapshotRev([]byte("payload"))
	if !strings.HasPrefix(rev, "sha256:") || len(rev) != len("sha256:")+64 {
		t.Errorf("rev = %q", rev)
	}
	if rev != ComputeSnapshotRev([]byte("payload")) {
		t.Error("rev not deterministic")
	}
	if rev == ComputeSnapshotRev([]byte("other")) {
		t.Error("distinct payloads share a rev")
	}
}

func TestExportAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup", "snap.json")

	result, err := Export(defaults.DefaultState(), path, false)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if result.OutputPath != path || result.Bytes == 0 {
		t.Errorf("result = %+v", result)
	}
	if !strings.HasPrefix(result.SnapshotRev, "sha256:") {
		t.Errorf("rev = %q", result.SnapshotRev)
	}

	snap, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if snap.Meta.SchemaVersion != defaults.DataVersion {
		t.Errorf("SchemaVersion = %d", snap.Meta.SchemaVersion)
	}
	if snap.Meta.SnapshotRev != result.SnapshotRev {
		t.Errorf("rev mismatch: %q vs %q", snap.Meta.SnapshotRev, result.SnapshotRev)
	}
}

func TestExportCanonicalIsCompact(t *testing.T) {
	dir := t.TempDir()
	canonicalPath := filepath.Join(dir, "canonical.json")
	prettyPath := filepath.Join(dir, "pretty.json")

	state := defaults.DefaultState()
	if _, err := Export(state, canonicalPath, true); err != nil {
		t.Fatal(err)
	}
	if _, err := Export(state, prettyPath, false); err != nil {
		t.Fatal(err)
	}

	canonical, _ := os.ReadFile(canonicalPath)
	pretty, _ := os.ReadFile(prettyPath)
	if len(canonical) >= len(pretty) {
		t.Errorf("canonical (%d bytes) not smaller than pretty (%d bytes)", len(canonical), len(pretty))
	}
	if strings.Contains(string(canonical), "\n  ") {
		t.Error("canonical output is indented")
	}
}

func TestReadRejectsInvalidSnapshots(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name    string
		payload string
	}{
		{"garbage", "{{{"},
		{"missing state", `{"meta": {"schema_version": 12}}`},
		{"future version", `{"meta": {"schema_version": 999}, "state": {}}`},
		{"negative version", `{"meta": {"schema_version": -1}, "state": {}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "-")+".json")
			if err := os.WriteFile(path, []byte(tc.payload), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Read(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestEnvelopeCarriesVersion(t *testing.T) {
	snap := &Snapshot{
		Meta:  Meta{SchemaVersion: 9},
		State: map[string]any{"events": []any{}},
	}

	raw, err := snap.Envelope()
	if err != nil {
		t.Fatalf("Envelope: %v", err)
	}

	var envelope map[string]any
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatal(err)
	}
	if envelope["version"] != float64(9) {
		t.Errorf("version = %v", envelope["version"])
	}
	if _, ok := envelope["events"]; !ok {
		t.Errorf("state fields missing: %v", envelope)
	}
}
