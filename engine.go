package grasp

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Element is a node in the host's containment hierarchy. ParentElement
// returns nil at the root. Implementations must be comparable (pointer
// types are).
type Element interface {
	ParentElement() Element
}

// Locator resolves a point to the topmost element under it, or nil.
type Locator interface {
	ElementAt(x, y float64) Element
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(x, y float64) Element

// ElementAt calls f.
func (f LocatorFunc) ElementAt(x, y float64) Element {
	return f(x, y)
}

// Gesture describes the active gesture.
type Gesture struct {
	ID       uuid.UUID
	Control  Element
	Modality Modality
}

// Update is forwarded to the engine's UpdateSink once per active tick.
type Update struct {
	GestureID uuid.UUID
	Control   Element
	Target    Target
	Modality  Modality
	Transform string
	Pose      Pose
	Contacts  []Contact
}

// UpdateSink receives every pose update of an engine, regardless of which
// control produced it. See the ecs package for a donburi-backed sink.
type UpdateSink interface {
	EmitUpdate(u Update)
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(l *zap.Logger) EngineOption {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithConfig sets the defaults applied to Options at Attach time.
func WithConfig(cfg Config) EngineOption {
	return func(e *Engine) {
		e.cfg = cfg.withDefaults()
	}
}

// WithSink forwards every pose update to sink.
func WithSink(sink UpdateSink) EngineOption {
	return func(e *Engine) {
		e.sink = sink
	}
}

// gesture is the Active state of the state machine. A nil *gesture is Idle.
type gesture struct {
	id       uuid.UUID
	att      *attachment
	modality Modality
}

// Engine turns input events into pose updates. It owns the contact set, the
// gesture state machine, the wheel controller and the pose registry.
//
// Engine is not safe for concurrent use. Feed all input events for a frame,
// then call Tick once.
type Engine struct {
	locator Locator
	logger  *zap.Logger
	cfg     Config
	sink    UpdateSink

	reg      registry
	contacts contactTracker
	wheel    wheelController

	active *gesture
	last   measurement
}

// NewEngine creates an engine resolving gesture start points with locator.
func NewEngine(locator Locator, opts ...EngineOption) *Engine {
	e := &Engine{
		locator: locator,
		logger:  zap.NewNop(),
		cfg:     DefaultConfig(),
		reg:     newRegistry(),
		wheel:   newWheelController(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// --- Registration ---

// Attach registers control as a gesture source. Options are validated once
// and are immutable afterwards.
func (e *Engine) Attach(control Element, opts Options) error {
	if control == nil {
		return ErrNilControl
	}
	if !reflect.TypeOf(control).Comparable() {
		return fmt.Errorf("attach: control %T: %w", control, ErrTargetNotComparable)
	}
	if _, ok := e.reg.controls[control]; ok {
		return ErrAlreadyAttached
	}
	a, err := resolveOptions(control, opts, e.cfg)
	if err != nil {
		return err
	}
	e.reg.controls[control] = a
	return nil
}

// Detach unregisters control. An active gesture on it ends. The target's
// pose state is dropped once no other control refers to the target.
func (e *Engine) Detach(control Element) {
	a, ok := e.reg.controls[control]
	if !ok {
		return
	}
	if e.active != nil && e.active.att == a {
		e.end("detach")
	}
	if !e.reg.shared(a.target, control) {
		delete(e.reg.targets, a.target)
	}
	delete(e.reg.controls, control)
}

// Reset restores the control's target to the origin pose captured when the
// target first took part in a gesture (its pre-existing pose, or identity)
// and reapplies it.
func (e *Engine) Reset(control Element) error {
	if control == nil {
		return ErrNilControl
	}
	a, ok := e.reg.controls[control]
	if !ok {
		return fmt.Errorf("reset: %w", ErrNotAttached)
	}
	ts, _ := e.reg.state(a.target)
	ts.current = ts.origin
	a.target.ApplyTransform(ts.current.Transform(), ts.current)
	e.logger.Debug("reset", poseFields(ts.current)...)
	return nil
}

// Pose returns the current pose of the control's target. ok is false when
// the control is not attached or its target has never been touched.
func (e *Engine) Pose(control Element) (p Pose, ok bool) {
	a, ok := e.reg.controls[control]
	if !ok {
		return Pose{}, false
	}
	ts, ok := e.reg.targets[a.target]
	if !ok {
		return Pose{}, false
	}
	return ts.current, true
}

// Active returns the control of the active gesture.
func (e *Engine) Active() (Element, bool) {
	if e.active == nil {
		return nil, false
	}
	return e.active.att.control, true
}

// Gesture describes the active gesture.
func (e *Engine) Gesture() (Gesture, bool) {
	if e.active == nil {
		return Gesture{}, false
	}
	return Gesture{ID: e.active.id, Control: e.active.att.control, Modality: e.active.modality}, true
}

// ControlAt returns the attached control that a gesture starting at (x, y)
// would drive.
func (e *Engine) ControlAt(x, y float64) (Element, bool) {
	a := e.resolve(Vec2{x, y})
	if a == nil {
		return nil, false
	}
	return a.control, true
}

// WheelMode returns the current wheel mode.
func (e *Engine) WheelMode() WheelMode {
	return e.wheel.mode
}

// Contacts returns a copy of the live touch contacts.
func (e *Engine) Contacts() []Contact {
	return e.contacts.snapshot()
}

// --- Touch input ---

// TouchStart handles a touch start carrying every contact currently on the
// surface. Any gesture in progress ends and the live set is replaced. A touch
// gesture starts when the centroid resolves to an attached control and
// enough contacts are down. It returns true when a gesture started.
func (e *Engine) TouchStart(contacts []Contact) bool {
	e.end("touch start")
	e.contacts.begin(contacts)
	if len(e.contacts.live) == 0 {
		return false
	}
	mid := Centroid(e.contacts.live)
	a := e.resolve(mid)
	if a == nil {
		return false
	}
	e.contacts.markTick()
	if !a.singleTouch && len(e.contacts.live) < 2 {
		return false
	}
	m, ok := touchMeasurement(e.contacts.live, e.contacts.prevTick)
	if !ok {
		return false
	}
	e.begin(a, ModalityTouch, m)
	return true
}

// TouchMove updates the live contacts that changed. It returns true while a
// gesture is active so the host can suppress default handling.
func (e *Engine) TouchMove(changed []Contact) bool {
	e.contacts.change(changed)
	return e.active != nil
}

// TouchEnd removes ended contacts. A touch gesture ends when fewer than two
// contacts remain, or none remain with single touch allowed. A gesture that
// survives the lift continues from the remaining contacts: the next tick
// measures against them, so the target does not jump.
func (e *Engine) TouchEnd(changed []Contact) {
	before := len(e.contacts.live)
	e.contacts.end(changed)
	if e.active == nil || e.active.modality != ModalityTouch {
		return
	}
	live := e.contacts.live
	need := 2
	if e.active.att.singleTouch {
		need = 1
	}
	if len(live) < need {
		e.end("touch end")
		return
	}
	if len(live) == before {
		return
	}
	prev := e.contacts.prevTick
	if len(live) >= 2 && len(prev) > 0 && indexOfContact(live, prev[0].ID) < 0 {
		e.logger.Warn("touch continuity lost", zap.Stringer("gesture", e.active.id))
		e.end("continuity lost")
		return
	}
	e.contacts.markTick()
	if m, ok := touchMeasurement(live, e.contacts.prevTick); ok {
		e.last = m
	}
}

// TouchCancel behaves like TouchEnd.
func (e *Engine) TouchCancel(changed []Contact) {
	e.TouchEnd(changed)
}

// --- Mouse input ---

// MouseDown handles a button press at (x, y). A primary press ends any
// gesture in progress and starts a mouse gesture when the point resolves to
// an attached control. It returns true when a gesture started.
func (e *Engine) MouseDown(button MouseButton, x, y float64) bool {
	p := Vec2{x, y}
	e.contacts.pressMouse(p)
	if button != MouseButtonLeft {
		return false
	}
	e.end("mouse down")
	a := e.resolve(p)
	if a == nil {
		return false
	}
	e.wheel.adoptDefault(a)
	e.begin(a, ModalityMouse, e.mouseMeasurement())
	return true
}

// MouseMove records a new mouse sample.
func (e *Engine) MouseMove(x, y float64) {
	e.contacts.moveMouse(Vec2{x, y})
}

// MouseUp ends a mouse gesture.
func (e *Engine) MouseUp() {
	if e.active != nil && e.active.modality == ModalityMouse {
		e.end("mouse up")
	}
}

// --- Keys and wheel ---

// KeyDown selects the wheel mode for the active control. Ignored while idle.
func (e *Engine) KeyDown(k Key) {
	if e.active == nil {
		return
	}
	e.wheel.keyDown(e.active.att, k)
}

// KeyUp releases a mode key. Ignored while idle.
func (e *Engine) KeyUp(k Key) {
	if e.active == nil {
		return
	}
	e.wheel.keyUp(e.active.att, k)
}

// Wheel applies a vertical wheel delta (positive scrolls down). It returns
// false while idle: the event is not consumed and the host should let it
// scroll. While a gesture is active every wheel event is consumed.
func (e *Engine) Wheel(deltaY float64) bool {
	if e.active == nil {
		return false
	}
	e.wheel.wheel(deltaY)
	return true
}

// --- State machine ---

// resolve finds the nearest attached control at p.
func (e *Engine) resolve(p Vec2) *attachment {
	if e.locator == nil {
		return nil
	}
	el := e.locator.ElementAt(p.X, p.Y)
	if el == nil {
		return nil
	}
	return e.reg.nearest(el)
}

// begin transitions Idle -> Active. m is the initial measurement.
func (e *Engine) begin(a *attachment, modality Modality, m measurement) {
	if ts, created := e.reg.state(a.target); created {
		a.target.ApplyTransform(ts.current.Transform(), ts.current)
	}
	e.active = &gesture{id: uuid.New(), att: a, modality: modality}
	e.last = m
	e.logger.Debug("gesture start",
		zap.Stringer("gesture", e.active.id),
		zap.Stringer("modality", modality),
		zap.Int("contacts", len(e.contacts.live)))
}

// end transitions to Idle. No-op while idle.
func (e *Engine) end(reason string) {
	if e.active == nil {
		return
	}
	e.logger.Debug("gesture end",
		zap.Stringer("gesture", e.active.id),
		zap.String("reason", reason))
	e.active = nil
	e.contacts.clearTick()
}
