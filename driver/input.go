package driver

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/grasp"
)

// frameInput is the input observed during one ebiten tick.
type frameInput struct {
	cursor       grasp.Vec2
	pressed      []grasp.MouseButton
	released     []grasp.MouseButton
	touches      []grasp.Contact // every contact currently down
	touchStarted bool            // at least one contact went down this tick
	touchesEnded []grasp.Contact // contacts lifted this tick, at their last position
	wheelY       float64         // ebiten convention: positive scrolls up
	keysDown     []grasp.Key
	keysUp       []grasp.Key
}

func (f *frameInput) reset() {
	f.pressed = f.pressed[:0]
	f.released = f.released[:0]
	f.touches = f.touches[:0]
	f.touchStarted = false
	f.touchesEnded = f.touchesEnded[:0]
	f.wheelY = 0
	f.keysDown = f.keysDown[:0]
	f.keysUp = f.keysUp[:0]
}

var mouseButtons = [...]struct {
	eb ebiten.MouseButton
	g  grasp.MouseButton
}{
	{ebiten.MouseButtonLeft, grasp.MouseButtonLeft},
	{ebiten.MouseButtonRight, grasp.MouseButtonRight},
	{ebiten.MouseButtonMiddle, grasp.MouseButtonMiddle},
}

// Driver translates polled ebiten input into engine events.
type Driver struct {
	frame     frameInput
	touchIDs  []ebiten.TouchID
	keyBuf    []ebiten.Key
	lastTouch map[grasp.ContactID]grasp.Vec2
	cursor    grasp.Vec2
	hasCursor bool
}

// New returns a driver with no input history.
func New() *Driver {
	return &Driver{lastTouch: make(map[grasp.ContactID]grasp.Vec2)}
}

// Poll reads this tick's ebiten input and feeds it to e.
func (d *Driver) Poll(e *grasp.Engine) {
	d.poll()
	d.apply(e, &d.frame)
}

// poll fills d.frame from ebiten.
func (d *Driver) poll() {
	f := &d.frame
	f.reset()

	mx, my := ebiten.CursorPosition()
	f.cursor = grasp.Vec2{X: float64(mx), Y: float64(my)}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			f.pressed = append(f.pressed, b.g)
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			f.released = append(f.released, b.g)
		}
	}

	d.touchIDs = ebiten.AppendTouchIDs(d.touchIDs[:0])
	for _, id := range d.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		f.touches = append(f.touches, grasp.Contact{ID: grasp.ContactID(id), X: float64(tx), Y: float64(ty)})
	}
	d.touchIDs = inpututil.AppendJustPressedTouchIDs(d.touchIDs[:0])
	f.touchStarted = len(d.touchIDs) > 0
	d.touchIDs = inpututil.AppendJustReleasedTouchIDs(d.touchIDs[:0])
	for _, id := range d.touchIDs {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		f.touchesEnded = append(f.touchesEnded, grasp.Contact{ID: grasp.ContactID(id), X: float64(tx), Y: float64(ty)})
	}

	_, f.wheelY = ebiten.Wheel()

	d.keyBuf = inpututil.AppendJustPressedKeys(d.keyBuf[:0])
	for _, k := range d.keyBuf {
		f.keysDown = append(f.keysDown, keyName(k))
	}
	d.keyBuf = inpututil.AppendJustReleasedKeys(d.keyBuf[:0])
	for _, k := range d.keyBuf {
		f.keysUp = append(f.keysUp, keyName(k))
	}
}

// apply feeds one frame of input to e. Keys go first so a modifier pressed
// together with the wheel already selects the mode; lifted contacts are
// processed before new ones so a finger swap restarts the gesture with the
// right contact set.
func (d *Driver) apply(e *grasp.Engine, f *frameInput) {
	for _, k := range f.keysDown {
		e.KeyDown(k)
	}
	for _, k := range f.keysUp {
		e.KeyUp(k)
	}

	if !d.hasCursor || f.cursor != d.cursor {
		e.MouseMove(f.cursor.X, f.cursor.Y)
		d.cursor = f.cursor
		d.hasCursor = true
	}
	for _, b := range f.pressed {
		e.MouseDown(b, f.cursor.X, f.cursor.Y)
	}

	if len(f.touchesEnded) > 0 {
		e.TouchEnd(f.touchesEnded)
		for _, c := range f.touchesEnded {
			delete(d.lastTouch, c.ID)
		}
	}
	if f.touchStarted && len(f.touches) > 0 {
		e.TouchStart(f.touches)
	} else {
		var moved []grasp.Contact
		for _, c := range f.touches {
			if p, ok := d.lastTouch[c.ID]; ok && p != c.Pos() {
				moved = append(moved, c)
			}
		}
		if len(moved) > 0 {
			e.TouchMove(moved)
		}
	}
	for _, c := range f.touches {
		d.lastTouch[c.ID] = c.Pos()
	}

	// ebiten reports positive Y for scrolling up; the engine expects
	// positive for scrolling down.
	if f.wheelY != 0 {
		e.Wheel(-f.wheelY)
	}

	for _, b := range f.released {
		if b == grasp.MouseButtonLeft {
			e.MouseUp()
		}
	}
}

// keyName normalizes an ebiten key to the names used by grasp options:
// side-specific modifiers collapse to "Shift", "Control", "Alt" and "Meta".
func keyName(k ebiten.Key) grasp.Key {
	switch k {
	case ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight:
		return grasp.KeyShift
	case ebiten.KeyControl, ebiten.KeyControlLeft, ebiten.KeyControlRight:
		return grasp.KeyControl
	case ebiten.KeyAlt, ebiten.KeyAltLeft, ebiten.KeyAltRight:
		return grasp.KeyAlt
	case ebiten.KeyMeta, ebiten.KeyMetaLeft, ebiten.KeyMetaRight:
		return grasp.KeyMeta
	}
	return grasp.Key(k.String())
}
