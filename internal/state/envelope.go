package state

import (
	"encoding/json"
	"fmt"
)

// detectEnvelope extracts the data payload and stored schema version from a
// parsed payload. Three shapes are accepted for backward compatibility:
//
//   - flat: the data object itself carrying a numeric "version" field
//   - legacy nested: {"version": N, "data": {...}}
//   - bare: an object with no version field, treated as version 0
//
// Anything that is not a JSON object is rejected.
func detectEnvelope(parsed any) (map[string]any, int, error) {
	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, 0, fmt.Errorf("stored payload is not an object (got %T)", parsed)
	}

	version, hasVersion := numberField(obj, "version")
	if !hasVersion {
		return obj, 0, nil
	}

	if data, ok := obj["data"].(map[string]any); ok {
		return data, version, nil
	}

	data := make(map[string]any, len(obj))
	for key, value := range obj {
		if key == "version" {
			continue
		}
		data[key] = value
	}
	return data, version, nil
}

// BlobInfo describes a stored payload without loading it into a Store.
type BlobInfo struct {
	Version int
	Shape   string
	Bytes   int
}

// Inspect parses a raw stored payload and reports its envelope shape and
// schema version. Used by admin tooling to examine blobs before migration.
func Inspect(raw []byte) (*BlobInfo, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse stored state: %w", err)
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("stored payload is not an object (got %T)", parsed)
	}

	info := &BlobInfo{Bytes: len(raw)}
	version, hasVersion := numberField(obj, "version")
	switch {
	case !hasVersion:
		info.Shape = "bare"
	default:
		info.Version = version
		if _, nested := obj["data"].(map[string]any); nested {
			info.Shape = "nested"
		} else {
			info.Shape = "flat"
		}
	}
	return info, nil
}

func numberField(obj map[string]any, key string) (int, bool) {
	switch v := obj[key].(type) {
	case float64:
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
