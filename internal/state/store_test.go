package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kmorrow/evq/internal/defaults"
	"github.com/kmorrow/evq/internal/domain"
	"github.com/kmorrow/evq/internal/storage"
)

func tempBlob(t *testing.T) (*storage.FileBlob, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	return storage.NewFile(path), path
}

func quietOpen(t *testing.T, blob storage.Blob) *Store {
	t.Helper()
	store, err := Open(blob, WithLogf(func(format string, args ...any) {
		t.Logf(format, args...)
	}))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return store
}

func storedEnvelope(t *testing.T, path string) map[string]any {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read state file: %v", err)
	}
	var envelope map[string]any
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("parse state file: %v", err)
	}
	return envelope
}

func TestOpenColdStartSeedsDefaultsAndPersists(t *testing.T) {
	blob, path := tempBlob(t)

	store := quietOpen(t, blob)

	st := store.Get()
	if len(st.Services) == 0 || len(st.Roles) == 0 {
		t.Fatalf("defaults not seeded: %d services, %d roles", len(st.Services), len(st.Roles))
	}

	envelope := storedEnvelope(t, path)
	if envelope["version"] != float64(defaults.DataVersion) {
		t.Errorf("stored version = %v, want %d", envelope["version"], defaults.DataVersion)
	}
}

func TestOpenMigratesOldFlatEnvelope(t *testing.T) {
	blob, path := tempBlob(t)
	old := map[string]any{
		"version":  9,
		"services": []any{},
		"events": []any{
			map[string]any{"id": "EV-00001", "name": "Gala", "status": "confirmed"},
		},
	}
	raw, _ := json.Marshal(old)
	if err := blob.Write(raw); err != nil {
		t.Fatal(err)
	}

	store := quietOpen(t, blob)

	st := store.Get()
	found := false
	for _, svc := range st.Services {
		if svc.ID == "s-ven-001" {
			found = true
		}
	}
	if !found {
		t.Error("v10 catalog entry missing after load")
	}
	if len(st.Events) != 1 || st.Events[0].Name != "Gala" {
		t.Errorf("user events lost: %v", st.Events)
	}

	envelope := storedEnvelope(t, path)
	if envelope["version"] != float64(defaults.DataVersion) {
		t.Errorf("upgraded state not persisted: version = %v", envelope["version"])
	}
}

func TestOpenAcceptsLegacyNestedEnvelope(t *testing.T) {
	blob, _ := tempBlob(t)
	nested := map[string]any{
		"version": 3,
		"data": map[string]any{
			"clients": []any{map[string]any{"id": "CL-00001", "name": "Acme"}},
		},
	}
	raw, _ := json.Marshal(nested)
	if err := blob.Write(raw); err != nil {
		t.Fatal(err)
	}

	store := quietOpen(t, blob)

	st := store.Get()
	if len(st.Clients) != 1 || st.Clients[0].Name != "Acme" {
		t.Errorf("nested payload not unwrapped: %v", st.Clients)
	}
}

func TestOpenTreatsBarePayloadAsVersionZero(t *testing.T) {
	blob, _ := tempBlob(t)
	bare := map[string]any{
		"events": []any{map[string]any{"id": "EV-00001", "name": "Launch"}},
	}
	raw, _ := json.Marshal(bare)
	if err := blob.Write(raw); err != nil {
		t.Fatal(err)
	}

	store := quietOpen(t, blob)

	st := store.Get()
	if len(st.Events) != 1 {
		t.Fatalf("bare payload lost: %v", st.Events)
	}
	if st.Events[0].Status != domain.EventStatusDraft {
		t.Errorf("v2 status backfill did not run: %q", st.Events[0].Status)
	}
}

func TestOpenResetsCorruptPayload(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"unparseable", `{"events": [`},
		{"non-object", `[1, 2, 3]`},
		{"wrong collection shape", `{"version": 12, "services": "oops"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			blob, path := tempBlob(t)
			if err := blob.Write([]byte(tc.payload)); err != nil {
				t.Fatal(err)
			}

			var logged []string
			store, err := Open(blob, WithLogf(func(format string, args ...any) {
				logged = append(logged, fmt.Sprintf(format, args...))
			}))
			if err != nil {
				t.Fatalf("Open: %v", err)
			}

			st := store.Get()
			if len(st.Services) == 0 {
				t.Error("defaults not restored after corruption")
			}
			if len(logged) == 0 || !strings.Contains(logged[0], "corrupt") {
				t.Errorf("corruption not logged: %v", logged)
			}

			envelope := storedEnvelope(t, path)
			if envelope["version"] != float64(defaults.DataVersion) {
				t.Errorf("fresh defaults not persisted: %v", envelope["version"])
			}
		})
	}
}

func TestUpdatePersistsAndStampsVersion(t *testing.T) {
	blob, path := tempBlob(t)
	store := quietOpen(t, blob)

	err := store.Update(func(st *domain.AppState) error {
		st.Clients = append(st.Clients, domain.Client{ID: "CL-00001", Name: "Acme"})
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	envelope := storedEnvelope(t, path)
	if envelope["version"] != float64(defaults.DataVersion) {
		t.Errorf("version = %v", envelope["version"])
	}
	clients := envelope["clients"].([]any)
	if len(clients) != 1 {
		t.Errorf("client not persisted: %v", clients)
	}
}

func TestUpdateErrorLeavesStateUntouched(t *testing.T) {
	blob, _ := tempBlob(t)
	store := quietOpen(t, blob)
	before := store.Get()

	wantErr := fmt.Errorf("nope")
	err := store.Update(func(st *domain.AppState) error {
		st.Clients = append(st.Clients, domain.Client{ID: "CL-00001"})
		return wantErr
	})
	if err != wantErr {
		t.Fatalf("Update error = %v, want %v", err, wantErr)
	}

	after := store.Get()
	if len(after.Clients) != len(before.Clients) {
		t.Error("failed update mutated state")
	}
}

func TestGetReturnsIsolatedCopy(t *testing.T) {
	blob, _ := tempBlob(t)
	store := quietOpen(t, blob)

	st := store.Get()
	if len(st.Services) == 0 {
		t.Fatal("no services")
	}
	st.Services[0].Name = "mutated"

	if store.Get().Services[0].Name == "mutated" {
		t.Error("Get returned shared memory")
	}
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	blob, _ := tempBlob(t)
	store := quietOpen(t, blob)

	calls := 0
	unsubscribe := store.Subscribe(func(st domain.AppState) {
		calls++
	})

	if err := store.Update(func(st *domain.AppState) error { return nil }); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("subscriber called %d times, want 1", calls)
	}

	unsubscribe()
	if err := store.Update(func(st *domain.AppState) error { return nil }); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("unsubscribed subscriber still called (%d)", calls)
	}
}

func TestRefreshPicksUpExternalWrite(t *testing.T) {
	blob, _ := tempBlob(t)
	store := quietOpen(t, blob)

	external := map[string]any{
		"version": defaults.DataVersion,
		"clients": []any{map[string]any{"id": "CL-00042", "name": "External"}},
	}
	raw, _ := json.Marshal(external)
	if err := blob.Write(raw); err != nil {
		t.Fatal(err)
	}

	if err := store.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	st := store.Get()
	if len(st.Clients) != 1 || st.Clients[0].ID != "CL-00042" {
		t.Errorf("external write not picked up: %v", st.Clients)
	}
}

func TestReplaceSwapsFullState(t *testing.T) {
	blob, _ := tempBlob(t)
	store := quietOpen(t, blob)

	next := store.Get()
	next.IsLoggedIn = true
	next.CurrentUserID = "US-00001"

	if err := store.Replace(next); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	st := store.Get()
	if !st.IsLoggedIn || st.CurrentUserID != "US-00001" {
		t.Errorf("replacement not applied: %+v", st)
	}
}
