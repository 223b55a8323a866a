// Package merge reconciles user-owned state against the shipped defaults.
// It provides a structural deep merge for nested settings and a declarative
// per-collection strategy table for the top-level state merge.
package merge

// DeepMerge returns a new object containing every field from source while
// never overriding a field already present in target. Nested objects are
// merged recursively; arrays are atomic leaf values and are never merged
// element-wise. Neither input is mutated.
//
// When target holds a non-object value at a key where source holds an
// object, the entire source subtree replaces the target value. New fields
// nested inside a default array entry are therefore never backfilled here;
// only the identity-based collection strategies handle that case.
func DeepMerge(target, source map[string]any) map[string]any {
	out := make(map[string]any, len(target)+len(source))
	for key, value := range target {
		out[key] = Clone(value)
	}

	for key, sourceValue := range source {
		sourceObj, sourceIsObj := sourceValue.(map[string]any)
		if sourceIsObj {
			if targetObj, ok := out[key].(map[string]any); ok {
				out[key] = DeepMerge(targetObj, sourceObj)
			} else {
				out[key] = Clone(sourceObj)
			}
			continue
		}
		if _, exists := out[key]; !exists {
			out[key] = Clone(sourceValue)
		}
	}
	return out
}

// Clone returns a deep copy of a JSON-compatible value. Scalars are returned
// as-is; maps and slices are copied recursively.
func Clone(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, entry := range v {
			out[key] = Clone(entry)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, entry := range v {
			out[i] = Clone(entry)
		}
		return out
	default:
		return value
	}
}
