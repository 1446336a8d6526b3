package grasp

// wheelScaleImpulse is the base impulse added to the zoom factor per notch.
const wheelScaleImpulse = 0.005

// WheelMode selects what wheel input drives.
type WheelMode uint8

const (
	WheelNone   WheelMode = iota // wheel input has no effect
	WheelRotate                  // wheel notches rotate by one degree each
	WheelScale                   // wheel notches add a decaying zoom impulse
)

// String returns the mode name.
func (m WheelMode) String() string {
	switch m {
	case WheelRotate:
		return "rotate"
	case WheelScale:
		return "scale"
	default:
		return "none"
	}
}

// wheelController maps modifier keys and wheel deltas onto the mouse
// rotation counter and the decaying scale accumulator. Both accumulators live
// for the engine's lifetime; they are never reset between gestures because
// the transform accumulator only ever looks at their change between ticks.
type wheelController struct {
	mode     WheelMode
	rotation float64 // one step per notch
	scale    float64 // multiplicative accumulator, starts at 1
	factor   float64 // pending zoom impulse, halves every measurement
}

func newWheelController() wheelController {
	return wheelController{scale: 1}
}

// defaultWheelMode resolves the mode used when no mode key is held. A
// disabled scale key makes scaling the default; otherwise a disabled rotate
// key makes rotation the default; with both keys enabled there is no default.
func defaultWheelMode(a *attachment) WheelMode {
	if a == nil {
		return WheelNone
	}
	if a.scaleKey == KeyDisabled {
		return WheelScale
	}
	if a.rotateKey == KeyDisabled {
		return WheelRotate
	}
	return WheelNone
}

// keyDown selects a mode from a pressed key.
func (w *wheelController) keyDown(a *attachment, k Key) {
	switch {
	case a.rotateKey.Enabled() && k == a.rotateKey:
		w.mode = WheelRotate
	case a.scaleKey.Enabled() && k == a.scaleKey:
		w.mode = WheelScale
	default:
		w.mode = defaultWheelMode(a)
	}
}

// keyUp clears the mode when a mode key is released, then falls back to the
// default.
func (w *wheelController) keyUp(a *attachment, k Key) {
	if a.rotateKey.Enabled() && k == a.rotateKey {
		w.mode = WheelNone
	}
	if a.scaleKey.Enabled() && k == a.scaleKey {
		w.mode = WheelNone
	}
	if w.mode == WheelNone {
		w.mode = defaultWheelMode(a)
	}
}

// adoptDefault sets the default mode if none is selected.
func (w *wheelController) adoptDefault(a *attachment) {
	if w.mode == WheelNone {
		w.mode = defaultWheelMode(a)
	}
}

// wheel applies one wheel event.
func (w *wheelController) wheel(deltaY float64) {
	s := sign(deltaY)
	switch w.mode {
	case WheelRotate:
		w.rotation += s
	case WheelScale:
		w.factor += s * (w.factor*w.factor + wheelScaleImpulse)
	}
}

// step advances the zoom animation by one measurement: the accumulator
// grows by the pending factor, then the factor halves.
func (w *wheelController) step() {
	if w.factor != 0 {
		w.scale += w.scale * w.factor
		w.factor *= 0.5
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
