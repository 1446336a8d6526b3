package grasp

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PoseTween animates a target from its current pose back to its origin.
// Create one with Engine.AnimateReset and call Update(dt) each frame. The
// final frame writes the origin pose exactly. The tween stops early, leaving
// the pose where it is, as soon as a gesture becomes active on the target or
// the control is detached.
type PoseTween struct {
	engine  *Engine
	control Element
	target  Target
	from    Pose
	to      Pose
	tweens  [4]*gween.Tween
	Done    bool
}

// AnimateReset starts a tween from the control's current pose to its origin
// over duration seconds using fn (ease.Linear when nil). An active gesture on
// the control ends first.
func (e *Engine) AnimateReset(control Element, duration float32, fn ease.TweenFunc) (*PoseTween, error) {
	if control == nil {
		return nil, ErrNilControl
	}
	a, ok := e.reg.controls[control]
	if !ok {
		return nil, fmt.Errorf("animate reset: %w", ErrNotAttached)
	}
	if fn == nil {
		fn = ease.Linear
	}
	if e.active != nil && e.active.att.target == a.target {
		e.end("animate reset")
	}
	ts, _ := e.reg.state(a.target)
	from, to := ts.current, ts.origin
	g := &PoseTween{engine: e, control: control, target: a.target, from: from, to: to}
	g.tweens[0] = gween.New(float32(from.Translation.X), float32(to.Translation.X), duration, fn)
	g.tweens[1] = gween.New(float32(from.Translation.Y), float32(to.Translation.Y), duration, fn)
	g.tweens[2] = gween.New(float32(from.Rotation), float32(to.Rotation), duration, fn)
	g.tweens[3] = gween.New(float32(from.Scale), float32(to.Scale), duration, fn)
	return g, nil
}

// Update advances the tween by dt seconds and applies the interpolated pose.
func (g *PoseTween) Update(dt float32) {
	if g.Done {
		return
	}
	e := g.engine
	if _, ok := e.reg.controls[g.control]; !ok {
		g.Done = true
		return
	}
	if e.active != nil && e.active.att.target == g.target {
		g.Done = true
		return
	}
	ts, ok := e.reg.targets[g.target]
	if !ok {
		g.Done = true
		return
	}

	var vals [4]float32
	allDone := true
	for i, tw := range g.tweens {
		v, finished := tw.Update(dt)
		vals[i] = v
		if !finished {
			allDone = false
		}
	}

	p := Pose{
		Translation: Vec2{float64(vals[0]), float64(vals[1])},
		Rotation:    float64(vals[2]),
		Scale:       float64(vals[3]),
	}
	if allDone {
		p = g.to
		g.Done = true
	}
	ts.current = p
	g.target.ApplyTransform(p.Transform(), p)
}
