package merge

import (
	"reflect"
	"testing"
)

func TestDeepMergeFillsMissingLeaves(t *testing.T) {
	target := map[string]any{
		"appearance": map[string]any{
			"theme": "dark",
		},
	}
	source := map[string]any{
		"appearance": map[string]any{
			"theme":   "light",
			"density": "comfortable",
		},
		"finance": map[string]any{
			"currency": "USD",
		},
	}

	out := DeepMerge(target, source)

	appearance := out["appearance"].(map[string]any)
	if appearance["theme"] != "dark" {
		t.Errorf("theme = %v, want user value dark preserved", appearance["theme"])
	}
	if appearance["density"] != "comfortable" {
		t.Errorf("density = %v, want filled from source", appearance["density"])
	}
	finance := out["finance"].(map[string]any)
	if finance["currency"] != "USD" {
		t.Errorf("currency = %v, want filled from source", finance["currency"])
	}
}

func TestDeepMergeNeverOverridesTarget(t *testing.T) {
	target := map[string]any{"a": float64(1), "b": "user"}
	source := map[string]any{"a": float64(9), "b": "default", "c": true}

	out := DeepMerge(target, source)

	if out["a"] != float64(1) || out["b"] != "user" {
		t.Errorf("target values overridden: %v", out)
	}
	if out["c"] != true {
		t.Errorf("missing key not filled: %v", out)
	}
}

func TestDeepMergeArraysAreAtomic(t *testing.T) {
	target := map[string]any{"tags": []any{"a"}}
	source := map[string]any{"tags": []any{"a", "b", "c"}}

	out := DeepMerge(target, source)

	if got := out["tags"].([]any); len(got) != 1 || got[0] != "a" {
		t.Errorf("tags = %v, want user array kept verbatim", got)
	}
}

func TestDeepMergeObjectReplacesPrimitive(t *testing.T) {
	target := map[string]any{"motion": "on"}
	source := map[string]any{"motion": map[string]any{"enabled": true, "durationMs": float64(200)}}

	out := DeepMerge(target, source)

	motion, ok := out["motion"].(map[string]any)
	if !ok {
		t.Fatalf("motion = %T, want object to replace primitive", out["motion"])
	}
	if motion["enabled"] != true {
		t.Errorf("motion = %v", motion)
	}
}

func TestDeepMergeDoesNotMutateInputs(t *testing.T) {
	target := map[string]any{"nested": map[string]any{"kept": true}}
	source := map[string]any{"nested": map[string]any{"added": "x"}}

	out := DeepMerge(target, source)
	out["nested"].(map[string]any)["added"] = "mutated"

	if _, ok := target["nested"].(map[string]any)["added"]; ok {
		t.Error("target was mutated through the result")
	}
	if source["nested"].(map[string]any)["added"] != "x" {
		t.Error("source was mutated")
	}
}

func TestClone(t *testing.T) {
	original := map[string]any{
		"list": []any{map[string]any{"id": "a"}},
	}
	copied := Clone(original).(map[string]any)
	copied["list"].([]any)[0].(map[string]any)["id"] = "b"

	if original["list"].([]any)[0].(map[string]any)["id"] != "a" {
		t.Error("clone shares memory with original")
	}
}

func TestDeepMergeEmptyInputs(t *testing.T) {
	if out := DeepMerge(map[string]any{}, map[string]any{"k": "v"}); out["k"] != "v" {
		t.Errorf("empty target: %v", out)
	}
	out := DeepMerge(map[string]any{"k": "v"}, map[string]any{})
	if !reflect.DeepEqual(out, map[string]any{"k": "v"}) {
		t.Errorf("empty source: %v", out)
	}
}
