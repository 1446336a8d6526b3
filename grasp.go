package grasp

// Vec2 is a 2D vector used for positions, offsets and directions throughout
// the API. Screen coordinates: origin top-left, Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Used by the scene graph and the driver when drawing nodes.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node color.
var ColorWhite = Color{1, 1, 1, 1}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Modality identifies the input device driving the active gesture.
type Modality uint8

const (
	ModalityMouse Modality = iota // single pointer, wheel and modifier keys
	ModalityTouch                 // one or more touch contacts
)

// String returns "mouse" or "touch".
func (m Modality) String() string {
	if m == ModalityTouch {
		return "touch"
	}
	return "mouse"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Key names a keyboard key the way the host reports it ("Shift", "Control",
// "Alt", "Meta", "a", ...). Side-specific modifiers are expected to be
// normalized by the host; the ebiten driver does this.
type Key string

const (
	// KeyDefault selects the engine's configured default for a key option.
	KeyDefault Key = ""
	// KeyDisabled turns a key option off. A disabled scale key makes scaling
	// the default wheel mode (and likewise for rotation).
	KeyDisabled Key = "none"

	KeyShift   Key = "Shift"
	KeyControl Key = "Control"
	KeyAlt     Key = "Alt"
	KeyMeta    Key = "Meta"
)

// Enabled reports whether k names a real key.
func (k Key) Enabled() bool {
	return k != KeyDisabled && k != KeyDefault
}
