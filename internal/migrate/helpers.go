package migrate

// sliceAt returns the slice stored under key, or an empty slice when the key
// is missing or holds a non-slice value.
func sliceAt(state map[string]any, key string) []any {
	if list, ok := state[key].([]any); ok {
		return list
	}
	return []any{}
}

// mapAt returns the object stored under key, or an empty map when the key is
// missing or holds a non-object value.
func mapAt(state map[string]any, key string) map[string]any {
	if m, ok := state[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// stringField returns the string value of an entity field, or "" when the
// field is missing or not a string.
func stringField(entry any, field string) string {
	m, ok := entry.(map[string]any)
	if !ok {
		return ""
	}
	s, _ := m[field].(string)
	return s
}

// containsID reports whether any entry in list carries the given ID value in
// the given identity field.
func containsID(list []any, field, id string) bool {
	for _, entry := range list {
		if stringField(entry, field) == id {
			return true
		}
	}
	return false
}

// appendMissing appends each entry whose identity is absent from list,
// leaving entries with matching IDs untouched.
func appendMissing(list []any, field string, entries []map[string]any) []any {
	for _, entry := range entries {
		id, _ := entry[field].(string)
		if id == "" || containsID(list, field, id) {
			continue
		}
		list = append(list, map[string]any(entry))
	}
	return list
}

// removeByID drops every entry whose identity field matches one of ids.
func removeByID(list []any, field string, ids ...string) []any {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := make([]any, 0, len(list))
	for _, entry := range list {
		if drop[stringField(entry, field)] {
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}

// eachObject invokes fn for every entry in list that is an object, skipping
// malformed entries.
func eachObject(list []any, fn func(m map[string]any)) {
	for _, entry := range list {
		if m, ok := entry.(map[string]any); ok {
			fn(m)
		}
	}
}
