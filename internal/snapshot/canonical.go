package snapshot

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// CanonicalJSON produces a deterministic JSON encoding following JCS-like
// rules: keys sorted lexicographically, no insignificant whitespace, UTF-8,
// no HTML escaping. Go's encoder already emits map keys in sorted order,
// which covers the whole state tree.
func CanonicalJSON(v any) ([]byte, error) {
	return encode(v, "")
}

// PrettyJSON produces an indented encoding for human inspection.
func PrettyJSON(v any) ([]byte, error) {
	return encode(v, "  ")
}

func encode(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if indent != "" {
		encoder.SetIndent("", indent)
	}
	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	// Encode appends a trailing newline
	result := buf.Bytes()
	if len(result) > 0 && result[len(result)-1] == '\n' {
		result = result[:len(result)-1]
	}
	return result, nil
}

// ComputeSnapshotRev computes the sha256 hash of canonical JSON bytes.
// Returns "sha256:<hex>" format.
func ComputeSnapshotRev(data []byte) string {
	hash := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(hash[:])
}
