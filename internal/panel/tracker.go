package panel

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// ActionKind names the per-item asynchronous actions the dashboard offers.
type ActionKind string

const (
	ActionDelete ActionKind = "delete"
	ActionToggle ActionKind = "toggle"
)

// ActionTracker records which item ids have an action of a given kind in
// flight, so controls can be disabled per item without blocking the rest of
// the list. The sets are safe for concurrent item actions.
type ActionTracker struct {
	inFlight map[ActionKind]mapset.Set[string]
}

func NewActionTracker() *ActionTracker {
	return &ActionTracker{
		inFlight: map[ActionKind]mapset.Set[string]{
			ActionDelete: mapset.NewSet[string](),
			ActionToggle: mapset.NewSet[string](),
		},
	}
}

// Begin marks id as in flight for kind. It returns false when the id is
// already in flight, in which case the caller must treat the action as a
// no-op.
func (t *ActionTracker) Begin(kind ActionKind, id string) bool {
	return t.set(kind).Add(id)
}

// End removes id from the in-flight set. Callers run it deferred so a failed
// request never leaves a control permanently disabled.
func (t *ActionTracker) End(kind ActionKind, id string) {
	t.set(kind).Remove(id)
}

func (t *ActionTracker) InFlight(kind ActionKind, id string) bool {
	return t.set(kind).Contains(id)
}

func (t *ActionTracker) set(kind ActionKind) mapset.Set[string] {
	s, ok := t.inFlight[kind]
	if !ok {
		s = mapset.NewSet[string]()
		t.inFlight[kind] = s
	}
	return s
}
