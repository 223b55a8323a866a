// Package migrate upgrades persisted application state across schema
// versions. Steps are keyed by the version they produce and run strictly in
// ascending order; a version number with no registered step is a no-op, which
// lets versions be reserved without a transform.
//
// Steps operate on the untyped JSON form of the state. Each step must be
// total: it defaults any collection it touches instead of assuming earlier
// versions wrote it, and it must tolerate states produced by hand-written
// legacy saves that predate versioning.
package migrate

import "github.com/kmorrow/evq/internal/defaults"

// Step transforms a state object authored under the previous schema version
// into one valid at the version the step is keyed by.
type Step func(state map[string]any) map[string]any

// Apply runs every registered step from fromVersion+1 through toVersion in
// ascending order. Versions without a step are skipped.
func Apply(steps map[int]Step, state map[string]any, fromVersion, toVersion int) map[string]any {
	for v := fromVersion + 1; v <= toVersion; v++ {
		step, ok := steps[v]
		if !ok {
			continue
		}
		state = step(state)
	}
	return state
}

// Run upgrades state from fromVersion to the current data version using the
// registered step table.
func Run(state map[string]any, fromVersion int) map[string]any {
	return Apply(Steps, state, fromVersion, defaults.DataVersion)
}
