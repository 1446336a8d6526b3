package grasp

import "go.uber.org/zap"

// mouseMeasurement advances the wheel zoom animation by one step and returns
// the mouse measurement: the current sample, the wheel rotation counter and
// the wheel scale accumulator.
func (e *Engine) mouseMeasurement() measurement {
	e.wheel.step()
	return measurement{
		position: e.contacts.mouseCur,
		rotation: e.wheel.rotation,
		distance: e.wheel.scale,
	}
}

// measure produces this tick's measurement for the active modality. ok is
// false when touch input lost continuity (no contacts, or the rotation
// reference contact is gone).
func (e *Engine) measure() (measurement, bool) {
	if e.active.modality == ModalityMouse {
		return e.mouseMeasurement(), true
	}
	if len(e.contacts.live) == 0 {
		return measurement{}, false
	}
	return touchMeasurement(e.contacts.live, e.contacts.prevTick)
}

// Tick runs the transform accumulator once. Call it once per display
// refresh, after all input events of the frame. It is a no-op while idle.
//
// The pose changes by the difference between this tick's measurement and
// the previous one, so a gesture continues smoothly from wherever the target
// was left.
func (e *Engine) Tick() {
	g := e.active
	if g == nil {
		return
	}
	cur, ok := e.measure()
	if !ok {
		e.logger.Warn("touch continuity lost", zap.Stringer("gesture", g.id))
		e.end("continuity lost")
		return
	}

	a := g.att
	ts, _ := e.reg.state(a.target)
	prev := e.last

	p := ts.current
	p.Translation = p.Translation.Add(cur.position.Sub(prev.position))
	p.Rotation += cur.rotation - prev.rotation
	ratio := 1.0
	if cur.distance > 0 && prev.distance > 0 {
		ratio = cur.distance / prev.distance
	}
	p.Scale = a.clampScale(p.Scale * ratio)

	ts.current = p
	e.last = cur
	e.contacts.markTick()

	text := p.Transform()
	a.target.ApplyTransform(text, p)

	contacts := e.contacts.snapshot()
	if a.onUpdate != nil {
		a.onUpdate(text, p, contacts)
	}
	if e.sink != nil {
		e.sink.EmitUpdate(Update{
			GestureID: g.id,
			Control:   a.control,
			Target:    a.target,
			Modality:  g.modality,
			Transform: text,
			Pose:      p,
			Contacts:  contacts,
		})
	}
}
