package state

import (
	"encoding/json"
	"testing"
)

func parse(t *testing.T, raw string) any {
	t.Helper()
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return parsed
}

func TestDetectEnvelope(t *testing.T) {
	cases := []struct {
		name        string
		raw         string
		wantVersion int
		wantKeys    []string
		wantErr     bool
	}{
		{
			name:        "flat with version",
			raw:         `{"version": 7, "events": [], "clients": []}`,
			wantVersion: 7,
			wantKeys:    []string{"events", "clients"},
		},
		{
			name:        "legacy nested",
			raw:         `{"version": 3, "data": {"events": []}}`,
			wantVersion: 3,
			wantKeys:    []string{"events"},
		},
		{
			name:        "bare object is version zero",
			raw:         `{"events": []}`,
			wantVersion: 0,
			wantKeys:    []string{"events"},
		},
		{
			name:    "array payload rejected",
			raw:     `[]`,
			wantErr: true,
		},
		{
			name:    "scalar payload rejected",
			raw:     `42`,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, version, err := detectEnvelope(parse(t, tc.raw))
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("detectEnvelope: %v", err)
			}
			if version != tc.wantVersion {
				t.Errorf("version = %d, want %d", version, tc.wantVersion)
			}
			for _, key := range tc.wantKeys {
				if _, ok := data[key]; !ok {
					t.Errorf("data missing key %q: %v", key, data)
				}
			}
			if _, ok := data["version"]; ok {
				t.Error("version key leaked into data payload")
			}
		})
	}
}

func TestDetectEnvelopeNonNumericVersionIsBare(t *testing.T) {
	data, version, err := detectEnvelope(parse(t, `{"version": "twelve", "events": []}`))
	if err != nil {
		t.Fatalf("detectEnvelope: %v", err)
	}
	if version != 0 {
		t.Errorf("version = %d, want 0 for non-numeric version field", version)
	}
	if _, ok := data["events"]; !ok {
		t.Errorf("payload lost: %v", data)
	}
}

func TestInspect(t *testing.T) {
	cases := []struct {
		name        string
		raw         string
		wantShape   string
		wantVersion int
		wantErr     bool
	}{
		{"flat", `{"version": 12, "events": []}`, "flat", 12, false},
		{"nested", `{"version": 5, "data": {}}`, "nested", 5, false},
		{"bare", `{"events": []}`, "bare", 0, false},
		{"garbage", `{{{`, "", 0, true},
		{"array", `[]`, "", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			info, err := Inspect([]byte(tc.raw))
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Inspect: %v", err)
			}
			if info.Shape != tc.wantShape || info.Version != tc.wantVersion {
				t.Errorf("got shape=%q version=%d, want shape=%q version=%d",
					info.Shape, info.Version, tc.wantShape, tc.wantVersion)
			}
		})
	}
}
