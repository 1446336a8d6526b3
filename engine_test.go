package grasp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testControl is an element with rectangular bounds that records every pose
// applied to it.
type testControl struct {
	name    string
	parent  *testControl
	bounds  Rect
	applied []Pose
	text    string
}

func (c *testControl) ParentElement() Element {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

func (c *testControl) ApplyTransform(text string, p Pose) {
	c.text = text
	c.applied = append(c.applied, p)
}

// plainElement is an element that is not a Target.
type plainElement struct{ bounds Rect }

func (*plainElement) ParentElement() Element { return nil }

// sliceTarget is a Target that cannot key a map.
type sliceTarget []int

func (sliceTarget) ApplyTransform(string, Pose) {}

// sliceElement is an Element that cannot key a map.
type sliceElement []int

func (sliceElement) ParentElement() Element { return nil }

// stackLocator returns the last element whose bounds contain the point.
type stackLocator struct {
	elements []Element
}

func (l *stackLocator) ElementAt(x, y float64) Element {
	for i := len(l.elements) - 1; i >= 0; i-- {
		switch el := l.elements[i].(type) {
		case *testControl:
			if el.bounds.Contains(x, y) {
				return el
			}
		case *plainElement:
			if el.bounds.Contains(x, y) {
				return el
			}
		}
	}
	return nil
}

func newTestEngine(elements ...Element) *Engine {
	return NewEngine(&stackLocator{elements: elements})
}

func wide(name string) *testControl {
	return &testControl{name: name, bounds: Rect{X: -1000, Y: -1000, Width: 2000, Height: 2000}}
}

func pair(x1, y1, x2, y2 float64) []Contact {
	return []Contact{{ID: 1, X: x1, Y: y1}, {ID: 2, X: x2, Y: y2}}
}

// --- Attach / Detach ---

func TestAttachErrors(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)

	assert.ErrorIs(t, e.Attach(nil, Options{}), ErrNilControl)

	require.NoError(t, e.Attach(c, Options{}))
	assert.ErrorIs(t, e.Attach(c, Options{}), ErrAlreadyAttached)

	assert.ErrorIs(t, e.Attach(&plainElement{}, Options{}), ErrNoTarget)
	assert.ErrorIs(t, e.Attach(sliceElement{1}, Options{}), ErrTargetNotComparable)
	assert.ErrorIs(t, e.Attach(wide("t"), Options{Target: sliceTarget{1}}), ErrTargetNotComparable)
	assert.ErrorIs(t, e.Attach(wide("s"), Options{MinScale: 2, MaxScale: 1}), ErrInvalidScaleRange)
	assert.ErrorIs(t, e.Attach(wide("n"), Options{MinScale: -1}), ErrInvalidScaleRange)
	assert.ErrorIs(t, e.Attach(wide("k"), Options{RotateKey: KeyDisabled, ScaleKey: KeyDisabled}), ErrKeysDisabled)
}

func TestAttachDefaultsFromConfig(t *testing.T) {
	c := wide("c")
	e := NewEngine(&stackLocator{elements: []Element{c}}, WithConfig(Config{
		ScaleKey:    "Control",
		SingleTouch: true,
		MinScale:    0.5,
		MaxScale:    3,
	}))
	require.NoError(t, e.Attach(c, Options{}))

	a := e.reg.controls[c]
	assert.Equal(t, KeyShift, a.rotateKey)
	assert.Equal(t, KeyControl, a.scaleKey)
	assert.True(t, a.singleTouch)
	assert.Equal(t, 0.5, a.minScale)
	assert.Equal(t, 3.0, a.maxScale)
}

func TestDetachEndsActiveGesture(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))

	require.True(t, e.MouseDown(MouseButtonLeft, 0, 0))
	e.Detach(c)

	_, active := e.Active()
	assert.False(t, active)
	_, ok := e.Pose(c)
	assert.False(t, ok)

	// Detaching twice is harmless.
	e.Detach(c)
}

func TestDetachKeepsSharedTarget(t *testing.T) {
	st := &StyleTarget{}
	left := &testControl{name: "left", bounds: Rect{X: 0, Y: 0, Width: 10, Height: 10}}
	right := &testControl{name: "right", bounds: Rect{X: 20, Y: 0, Width: 10, Height: 10}}
	e := newTestEngine(left, right)
	require.NoError(t, e.Attach(left, Options{Target: st}))
	require.NoError(t, e.Attach(right, Options{Target: st}))

	e.MouseDown(MouseButtonLeft, 5, 5)
	e.MouseMove(8, 9)
	e.Tick()
	e.MouseUp()

	p, ok := e.Pose(right)
	require.True(t, ok)
	assert.Equal(t, Vec2{3, 4}, p.Translation)

	e.Detach(left)
	_, ok = e.Pose(right)
	assert.True(t, ok, "state dropped while still shared")

	e.Detach(right)
	_, ok = e.reg.targets[st]
	assert.False(t, ok, "state kept after last control detached")
}

// --- Mouse gestures ---

func TestMouseDragTranslates(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))

	require.True(t, e.MouseDown(MouseButtonLeft, 10, 10))
	g, ok := e.Gesture()
	require.True(t, ok)
	assert.Equal(t, ModalityMouse, g.Modality)
	assert.Equal(t, Element(c), g.Control)

	// The origin pose is applied once when the target is first used.
	require.Len(t, c.applied, 1)
	assert.Equal(t, IdentityPose, c.applied[0])

	e.MouseMove(15, 12)
	e.Tick()
	e.MouseMove(20, 20)
	e.Tick()

	p, ok := e.Pose(c)
	require.True(t, ok)
	assert.Equal(t, Pose{Translation: Vec2{10, 10}, Scale: 1}, p)
	assert.Equal(t, "translate(10px,10px) rotate(0deg) scale(1)", c.text)

	e.MouseUp()
	e.MouseMove(100, 100)
	e.Tick()
	p, _ = e.Pose(c)
	assert.Equal(t, Vec2{10, 10}, p.Translation, "idle tick moved the target")
}

func TestMouseSecondaryButtonIgnored(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))

	assert.False(t, e.MouseDown(MouseButtonRight, 0, 0))
	_, active := e.Active()
	assert.False(t, active)
}

func TestMouseDownMissesControls(t *testing.T) {
	c := &testControl{bounds: Rect{X: 0, Y: 0, Width: 10, Height: 10}}
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))

	assert.False(t, e.MouseDown(MouseButtonLeft, 50, 50))
	assert.Empty(t, c.applied)
}

func TestGestureContinuesFromPreviousPose(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))

	e.MouseDown(MouseButtonLeft, 0, 0)
	e.MouseMove(10, 0)
	e.Tick()
	e.MouseUp()

	e.MouseDown(MouseButtonLeft, 500, 500)
	e.MouseMove(500, 7)
	e.Tick()
	e.MouseUp()

	p, _ := e.Pose(c)
	assert.Equal(t, Vec2{10, -493}, p.Translation)
	assert.Len(t, c.applied, 3, "origin applied again on a later gesture")
}

func TestNearestAttachedAncestor(t *testing.T) {
	parent := &testControl{name: "parent"}
	child := &testControl{name: "child", parent: parent, bounds: Rect{Width: 10, Height: 10}}
	e := newTestEngine(child)
	require.NoError(t, e.Attach(parent, Options{}))

	require.True(t, e.MouseDown(MouseButtonLeft, 5, 5))
	active, _ := e.Active()
	assert.Equal(t, Element(parent), active)

	got, ok := e.ControlAt(5, 5)
	assert.True(t, ok)
	assert.Equal(t, Element(parent), got)
}

// --- Wheel and keys ---

func TestWheelIgnoredWhileIdle(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))

	assert.False(t, e.Wheel(1))
	e.KeyDown(KeyShift)
	assert.Equal(t, WheelNone, e.WheelMode())
}

func TestWheelScalesByDefault(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))

	require.True(t, e.MouseDown(MouseButtonLeft, 0, 0))
	assert.Equal(t, WheelScale, e.WheelMode())

	assert.True(t, e.Wheel(1))
	e.Tick()
	p, _ := e.Pose(c)
	assertNear(t, "scale tick 1", p.Scale, 1.005)

	e.Tick()
	p, _ = e.Pose(c)
	assertNear(t, "scale tick 2", p.Scale, 1.005*1.0025)
}

func TestWheelRotatesWithKey(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))

	e.MouseDown(MouseButtonLeft, 0, 0)
	e.KeyDown(KeyShift)
	assert.Equal(t, WheelRotate, e.WheelMode())
	e.Wheel(3)
	e.Wheel(-1)
	e.Wheel(5)
	e.Tick()

	p, _ := e.Pose(c)
	assert.Equal(t, 1.0, p.Rotation)
	assert.Equal(t, 1.0, p.Scale)

	e.KeyUp(KeyShift)
	assert.Equal(t, WheelScale, e.WheelMode())
}

func TestWheelZoomClamped(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{MinScale: 0.9, MaxScale: 1.01}))

	e.MouseDown(MouseButtonLeft, 0, 0)
	for range 20 {
		e.Wheel(1)
	}
	for range 10 {
		e.Tick()
	}
	p, _ := e.Pose(c)
	assert.Equal(t, 1.01, p.Scale)
}

// --- Touch gestures ---

func TestTouchNeedsTwoContacts(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))

	assert.False(t, e.TouchStart([]Contact{{ID: 1, X: 5, Y: 5}}))
	_, active := e.Active()
	assert.False(t, active)
	assert.False(t, e.TouchMove([]Contact{{ID: 1, X: 6, Y: 6}}))

	assert.True(t, e.TouchStart(pair(0, 0, 2, 0)))
	assert.True(t, e.TouchMove([]Contact{{ID: 1, X: 1, Y: 1}}))
	g, _ := e.Gesture()
	assert.Equal(t, ModalityTouch, g.Modality)
}

func TestPinchScaleClamped(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{MinScale: 1, MaxScale: 2}))

	require.True(t, e.TouchStart(pair(0, 0, 2, 0)))
	// Spread grows 10x around the same centroid.
	e.TouchMove(pair(-9, 0, 11, 0))
	e.Tick()

	p, _ := e.Pose(c)
	assert.Equal(t, 2.0, p.Scale)
	assertNear(t, "x", p.Translation.X, 0)
	assertNear(t, "rotation", p.Rotation, 0)

	// Pinching back in drops to the lower bound, not below.
	e.TouchMove(pair(0.9, 0, 1.1, 0))
	e.Tick()
	p, _ = e.Pose(c)
	assert.Equal(t, 1.0, p.Scale)
}

func TestPinchScaleRatio(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))

	e.TouchStart(pair(0, 0, 2, 0))
	e.TouchMove(pair(-1, 0, 3, 0))
	e.Tick()

	p, _ := e.Pose(c)
	assertNear(t, "scale", p.Scale, 2)
}

func TestTwoFingerPan(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)

	var got []Contact
	require.NoError(t, e.Attach(c, Options{
		OnUpdate: func(_ string, _ Pose, cs []Contact) { got = cs },
	}))

	// Moving along the line through both contacts keeps the reference
	// direction, so only translation changes.
	e.TouchStart(pair(0, 0, 10, 0))
	e.TouchMove(pair(5, 0, 15, 0))
	e.Tick()
	e.TouchMove(pair(2, 0, 12, 0))
	e.Tick()

	p, _ := e.Pose(c)
	assertNear(t, "x", p.Translation.X, 2)
	assertNear(t, "y", p.Translation.Y, 0)
	assertNear(t, "rotation", p.Rotation, 0)
	assertNear(t, "scale", p.Scale, 1)
	if diff := cmp.Diff(pair(2, 0, 12, 0), got); diff != "" {
		t.Errorf("contacts mismatch (-want +got):\n%s", diff)
	}
}

func TestTouchRotationFollowsReferenceContact(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))

	e.TouchStart(pair(10, 0, -10, 0))
	e.TouchMove(pair(0, 10, 0, -10))
	e.Tick()
	p, _ := e.Pose(c)
	// The reference is contact 1 where it was at the previous tick.
	assertNear(t, "rotation tick 1", p.Rotation, 0)

	e.Tick()
	p, _ = e.Pose(c)
	assertNear(t, "rotation tick 2", p.Rotation, 90)
	assertNear(t, "scale", p.Scale, 1)
}

func TestSingleTouchTranslatesOnly(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{SingleTouch: true}))

	require.True(t, e.TouchStart([]Contact{{ID: 7, X: 5, Y: 5}}))
	e.TouchMove([]Contact{{ID: 7, X: 8, Y: 9}})
	e.Tick()

	p, _ := e.Pose(c)
	assert.Equal(t, Pose{Translation: Vec2{3, 4}, Scale: 1}, p)
}

func TestTouchEndThreshold(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))

	e.TouchStart(pair(0, 0, 2, 0))
	e.TouchEnd([]Contact{{ID: 2}})
	_, active := e.Active()
	assert.False(t, active, "gesture survived with one contact")
	assert.Len(t, e.Contacts(), 1)
}

func TestTouchEndThresholdSingleTouch(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{SingleTouch: true}))

	e.TouchStart(pair(0, 0, 2, 0))
	e.TouchEnd([]Contact{{ID: 2}})
	_, active := e.Active()
	assert.True(t, active)

	e.TouchCancel([]Contact{{ID: 1}})
	_, active = e.Active()
	assert.False(t, active)
	assert.Empty(t, e.Contacts())
}

func TestTouchLiftKeepsPoseSingleTouch(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{SingleTouch: true}))

	e.TouchStart(pair(0, 10, 0, -10))
	e.Tick()
	before, _ := e.Pose(c)

	e.TouchEnd([]Contact{{ID: 2}})
	e.Tick()
	after, _ := e.Pose(c)
	assert.Equal(t, before, after, "lifting a finger moved the target")

	// The remaining finger still drags.
	e.TouchMove([]Contact{{ID: 1, X: 5, Y: 13}})
	e.Tick()
	p, _ := e.Pose(c)
	assert.Equal(t, Pose{Translation: Vec2{5, 3}, Scale: 1}, p)
}

func TestTouchLiftKeepsPoseRemainingPair(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))

	e.TouchStart([]Contact{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 10, Y: 0}, {ID: 3, X: 5, Y: 5}})
	e.Tick()
	e.TouchEnd([]Contact{{ID: 3}})
	_, active := e.Active()
	require.True(t, active)
	e.Tick()

	p, _ := e.Pose(c)
	assert.Equal(t, IdentityPose, p)
}

func TestTouchContinuityLost(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))

	e.TouchStart([]Contact{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 10, Y: 0}, {ID: 3, X: 5, Y: 5}})
	before := len(c.applied)
	e.TouchEnd([]Contact{{ID: 1}})
	_, active := e.Active()
	assert.False(t, active, "gesture survived losing its reference contact")
	assert.Len(t, e.Contacts(), 2)

	e.Tick()
	assert.Len(t, c.applied, before, "pose applied after continuity loss")
}

func TestTickEndsOnMissingReference(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))

	e.TouchStart([]Contact{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 10, Y: 0}, {ID: 3, X: 5, Y: 5}})
	// Drop the reference without going through TouchEnd.
	e.contacts.end([]Contact{{ID: 1}})

	before := len(c.applied)
	e.Tick()
	_, active := e.Active()
	assert.False(t, active)
	assert.Len(t, c.applied, before)
}

func TestTouchMoveIgnoresUnknownContacts(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))

	e.TouchStart(pair(0, 0, 2, 0))
	e.TouchMove([]Contact{{ID: 99, X: 500, Y: 500}})
	e.Tick()

	p, _ := e.Pose(c)
	assert.Equal(t, IdentityPose, p)
}

// --- Exclusivity ---

func TestMouseDownSwitchesControl(t *testing.T) {
	a := &testControl{name: "a", bounds: Rect{X: 0, Y: 0, Width: 10, Height: 10}}
	b := &testControl{name: "b", bounds: Rect{X: 20, Y: 0, Width: 10, Height: 10}}
	e := newTestEngine(a, b)

	var updates []string
	require.NoError(t, e.Attach(a, Options{OnUpdate: func(string, Pose, []Contact) { updates = append(updates, "a") }}))
	require.NoError(t, e.Attach(b, Options{OnUpdate: func(string, Pose, []Contact) { updates = append(updates, "b") }}))

	e.MouseDown(MouseButtonLeft, 5, 5)
	e.MouseMove(6, 5)
	e.Tick()
	aPose, _ := e.Pose(a)

	e.MouseDown(MouseButtonLeft, 25, 5)
	e.MouseMove(28, 5)
	e.Tick()
	e.Tick()

	active, _ := e.Active()
	assert.Equal(t, Element(b), active)
	assert.Equal(t, []string{"a", "b", "b"}, updates)

	got, _ := e.Pose(a)
	assert.Equal(t, aPose, got)
}

func TestTouchStartEndsMouseGesture(t *testing.T) {
	a := &testControl{name: "a", bounds: Rect{X: 0, Y: 0, Width: 10, Height: 10}}
	b := &testControl{name: "b", bounds: Rect{X: 20, Y: 0, Width: 10, Height: 10}}
	e := newTestEngine(a, b)
	require.NoError(t, e.Attach(a, Options{}))
	require.NoError(t, e.Attach(b, Options{}))

	e.MouseDown(MouseButtonLeft, 5, 5)
	require.True(t, e.TouchStart(pair(21, 5, 29, 5)))

	active, _ := e.Active()
	assert.Equal(t, Element(b), active)

	// Releasing the mouse leaves the touch gesture alone.
	e.MouseUp()
	_, ok := e.Active()
	assert.True(t, ok)
}

// --- Reset ---

func TestResetRestoresOrigin(t *testing.T) {
	st := &StyleTarget{Style: "translate(5px,-7px) rotate(12.5deg) scale(1.5)"}
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{Target: st}))
	origin := st.InitialPose()

	e.TouchStart(pair(0, 0, 4, 0))
	e.TouchMove(pair(3, 1, 13, 7))
	e.Tick()
	e.Tick()
	e.TouchEnd(pair(0, 0, 0, 0))

	moved, _ := e.Pose(c)
	require.NotEqual(t, origin, moved)

	require.NoError(t, e.Reset(c))
	got, ok := e.Pose(c)
	require.True(t, ok)
	if diff := cmp.Diff(origin, got); diff != "" {
		t.Errorf("pose after reset (-want +got):\n%s", diff)
	}
	assert.Equal(t, origin.Transform(), st.Style)
}

func TestResetUntouchedAppliesOrigin(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))

	require.NoError(t, e.Reset(c))
	require.Len(t, c.applied, 1)
	assert.Equal(t, IdentityPose, c.applied[0])
}

func TestResetErrors(t *testing.T) {
	e := newTestEngine()
	assert.ErrorIs(t, e.Reset(nil), ErrNilControl)
	assert.ErrorIs(t, e.Reset(wide("x")), ErrNotAttached)
}

// --- Outputs ---

func TestHeadlessControl(t *testing.T) {
	el := &plainElement{bounds: Rect{Width: 10, Height: 10}}
	e := newTestEngine(el)

	var texts []string
	require.NoError(t, e.Attach(el, Options{
		Headless: true,
		OnUpdate: func(text string, _ Pose, _ []Contact) { texts = append(texts, text) },
	}))

	e.MouseDown(MouseButtonLeft, 1, 1)
	e.MouseMove(2, 3)
	e.Tick()
	e.MouseMove(4, 5)
	e.Tick()

	assert.Equal(t, []string{
		"translate(1px,2px) rotate(0deg) scale(1)",
		"translate(3px,4px) rotate(0deg) scale(1)",
	}, texts)
}

func TestHeadlessControlsKeepSeparatePoses(t *testing.T) {
	a := &plainElement{bounds: Rect{Width: 10, Height: 10}}
	b := &plainElement{bounds: Rect{X: 20, Width: 10, Height: 10}}
	e := newTestEngine(a, b)
	require.NoError(t, e.Attach(a, Options{Headless: true}))
	require.NoError(t, e.Attach(b, Options{Headless: true}))

	e.MouseDown(MouseButtonLeft, 5, 5)
	e.MouseMove(8, 5)
	e.Tick()
	e.MouseUp()

	e.MouseDown(MouseButtonLeft, 25, 5)
	e.MouseMove(25, 12)
	e.Tick()
	e.MouseUp()

	pa, ok := e.Pose(a)
	require.True(t, ok)
	pb, ok := e.Pose(b)
	require.True(t, ok)
	assert.Equal(t, Pose{Translation: Vec2{3, 0}, Scale: 1}, pa)
	assert.Equal(t, Pose{Translation: Vec2{0, 7}, Scale: 1}, pb)
}

type recordingSink struct {
	updates []Update
}

func (s *recordingSink) EmitUpdate(u Update) {
	s.updates = append(s.updates, u)
}

func TestSinkReceivesUpdates(t *testing.T) {
	c := wide("c")
	sink := &recordingSink{}
	e := NewEngine(&stackLocator{elements: []Element{c}}, WithSink(sink), WithLogger(nil))
	require.NoError(t, e.Attach(c, Options{}))

	e.TouchStart(pair(0, 0, 2, 0))
	e.TouchMove(pair(1, 0, 3, 0))
	e.Tick()

	g, _ := e.Gesture()
	require.Len(t, sink.updates, 1)
	u := sink.updates[0]
	assert.Equal(t, g.ID, u.GestureID)
	assert.Equal(t, Element(c), u.Control)
	assert.Equal(t, Target(c), u.Target)
	assert.Equal(t, ModalityTouch, u.Modality)
	assert.Equal(t, "translate(1px,0px) rotate(0deg) scale(1)", u.Transform)
	assert.Equal(t, pair(1, 0, 3, 0), u.Contacts)
}

func TestTickIdleNoop(t *testing.T) {
	c := wide("c")
	e := newTestEngine(c)
	require.NoError(t, e.Attach(c, Options{}))
	e.Tick()
	assert.Empty(t, c.applied)
	_, ok := e.Pose(c)
	assert.False(t, ok)
}

func TestNilLocator(t *testing.T) {
	e := NewEngine(nil)
	assert.False(t, e.MouseDown(MouseButtonLeft, 0, 0))
	_, ok := e.ControlAt(0, 0)
	assert.False(t, ok)
}
