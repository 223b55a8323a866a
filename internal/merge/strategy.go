package merge

import "fmt"

// Kind tags the reconciliation strategy applied to one top-level collection.
type Kind string

const (
	// KindUnionByID keeps every user entity verbatim and appends default
	// entities whose identity is absent from the user's collection.
	KindUnionByID Kind = "union-by-id"
	// KindDeepMerge recurses through a nested object, filling in missing
	// leaves from the defaults.
	KindDeepMerge Kind = "deep-merge"
	// KindRoleTable merges permission sets per role name, seeding roles the
	// user lacks and filling in newly introduced permission keys.
	KindRoleTable Kind = "role-table"
)

// Strategy describes how one named collection is reconciled. Top-level
// fields without an entry fall back to the baseline: the user's value wins
// wholesale when present, otherwise the default is used.
type Strategy struct {
	Kind Kind

	// IDField names the identity field for union-by-id collections.
	IDField string

	// RequireFlag, when set, restricts injection to default entries whose
	// named boolean field is true. User entries are never filtered.
	RequireFlag string
}

// Collections is the strategy table for the top-level state merge. Adding a
// new mergeable collection means adding a row here, not editing the merge
// routine.
var Collections = map[string]Strategy{
	"services":          {Kind: KindUnionByID, IDField: "id"},
	"proposalTemplates": {Kind: KindUnionByID, IDField: "templateId", RequireFlag: "isSystemDefault"},
	"roles":             {Kind: KindRoleTable},
	"settings":          {Kind: KindDeepMerge},
}

// Reconcile combines a migrated user state with the shipped defaults into the
// final runtime state. The baseline is {...defaults, ...user}; collections
// named in the strategy table are then reconciled per strategy. Returns a new
// object without mutating either input.
//
// A user collection whose shape contradicts its strategy (a string where an
// array is expected) is a merge error; the persistent store treats that as
// corruption.
func Reconcile(user, defaults map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(defaults)+len(user))
	for key, value := range defaults {
		out[key] = Clone(value)
	}
	for key, value := range user {
		out[key] = Clone(value)
	}

	for key, strategy := range Collections {
		merged, err := applyStrategy(strategy, user[key], defaults[key])
		if err != nil {
			return nil, fmt.Errorf("merge %q: %w", key, err)
		}
		out[key] = merged
	}
	return out, nil
}

func applyStrategy(strategy Strategy, userValue, defaultValue any) (any, error) {
	switch strategy.Kind {
	case KindUnionByID:
		return unionByID(strategy, userValue, defaultValue)
	case KindDeepMerge:
		return deepMergeValue(userValue, defaultValue), nil
	case KindRoleTable:
		return mergeRoleTable(userValue, defaultValue)
	default:
		return nil, fmt.Errorf("unknown strategy kind %q", strategy.Kind)
	}
}

// unionByID keeps every user entity untouched and appends each default
// entity whose ID is not already present. A default sharing an ID with a
// user entity is never copied in, so user edits survive.
func unionByID(strategy Strategy, userValue, defaultValue any) (any, error) {
	userList, err := asList(userValue)
	if err != nil {
		return nil, err
	}
	defaultList, err := asList(defaultValue)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(userList))
	out := make([]any, 0, len(userList)+len(defaultList))
	for _, entry := range userList {
		out = append(out, Clone(entry))
		if m, ok := entry.(map[string]any); ok {
			if id, ok := m[strategy.IDField].(string); ok {
				seen[id] = true
			}
		}
	}

	for _, entry := range defaultList {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if strategy.RequireFlag != "" {
			if flagged, _ := m[strategy.RequireFlag].(bool); !flagged {
				continue
			}
		}
		id, _ := m[strategy.IDField].(string)
		if id == "" || seen[id] {
			continue
		}
		out = append(out, Clone(m))
	}
	return out, nil
}

// mergeRoleTable reconciles the role/permission table. Every default role is
// present in the result: merged permission-by-permission when the user also
// defines it, seeded wholesale otherwise. Roles the user defines beyond the
// current defaults are preserved untouched rather than dropped, so renaming
// a role in the defaults cannot silently destroy user customization.
func mergeRoleTable(userValue, defaultValue any) (any, error) {
	userRoles, err := asObject(userValue)
	if err != nil {
		return nil, err
	}
	defaultRoles, err := asObject(defaultValue)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(defaultRoles)+len(userRoles))
	for name, defaultPerms := range defaultRoles {
		defaultSet, _ := defaultPerms.(map[string]any)
		userSet, hasUser := userRoles[name].(map[string]any)
		if !hasUser {
			out[name] = Clone(defaultSet)
			continue
		}
		merged := make(map[string]any, len(defaultSet)+len(userSet))
		for perm, value := range defaultSet {
			merged[perm] = value
		}
		for perm, value := range userSet {
			merged[perm] = value
		}
		out[name] = merged
	}

	for name, perms := range userRoles {
		if _, ok := out[name]; !ok {
			out[name] = Clone(perms)
		}
	}
	return out, nil
}

// deepMergeValue applies DeepMerge with the user value as target. A missing
// or non-object user value yields the defaults wholesale.
func deepMergeValue(userValue, defaultValue any) any {
	defaultObj, _ := defaultValue.(map[string]any)
	userObj, ok := userValue.(map[string]any)
	if !ok {
		return Clone(defaultObj)
	}
	return DeepMerge(userObj, defaultObj)
}

func asList(value any) ([]any, error) {
	switch v := value.(type) {
	case nil:
		return []any{}, nil
	case []any:
		return v, nil
	default:
		return nil, fmt.Errorf("expected array, got %T", value)
	}
}

func asObject(value any) (map[string]any, error) {
	switch v := value.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	default:
		return nil, fmt.Errorf("expected object, got %T", value)
	}
}
