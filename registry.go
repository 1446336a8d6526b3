package grasp

// targetState is the registry entry for one target: the origin pose captured
// the first time the target took part in a gesture or was reset, and the
// current pose mutated by active ticks.
type targetState struct {
	origin  Pose
	current Pose
}

// registry is the engine's side-table of attached controls and target poses.
// Elements and targets are used only as lookup keys; nothing is stored on
// them.
type registry struct {
	controls map[Element]*attachment
	targets  map[Target]*targetState
}

func newRegistry() registry {
	return registry{
		controls: make(map[Element]*attachment),
		targets:  make(map[Target]*targetState),
	}
}

// nearest walks from el up the containment hierarchy and returns the first
// attached control, or nil.
func (r *registry) nearest(el Element) *attachment {
	for el != nil {
		if a, ok := r.controls[el]; ok {
			return a
		}
		el = el.ParentElement()
	}
	return nil
}

// state returns the target's pose state, capturing the origin on first use.
func (r *registry) state(t Target) (ts *targetState, created bool) {
	if ts, ok := r.targets[t]; ok {
		return ts, false
	}
	origin := IdentityPose
	if src, ok := t.(PoseSource); ok {
		origin = src.InitialPose()
	}
	ts = &targetState{origin: origin, current: origin}
	r.targets[t] = ts
	return ts, true
}

// shared reports whether another attached control still uses target t.
func (r *registry) shared(t Target, except Element) bool {
	for el, a := range r.controls {
		if el != except && a.target == t {
			return true
		}
	}
	return false
}
