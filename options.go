package grasp

import (
	"fmt"
	"reflect"
)

// Default scale bounds.
const (
	DefaultMinScale float64 = 0.1
	DefaultMaxScale float64 = 100
)

// UpdateFunc receives the transform text, the new pose and a copy of the live
// touch contacts once per active tick.
type UpdateFunc func(transform string, p Pose, contacts []Contact)

// Options configures an attached control. Zero values select defaults.
type Options struct {
	// Target is transformed by gestures on the control. Nil means the control
	// itself, which must then implement Target.
	Target Target

	// Headless attaches without a visual target: OnUpdate still fires every
	// active tick, nothing else is written. Target is ignored.
	Headless bool

	// OnUpdate is called once per active tick. Optional.
	OnUpdate UpdateFunc

	// RotateKey selects wheel rotation while held. Default: Shift.
	RotateKey Key

	// ScaleKey selects wheel zoom while held. Default: disabled, which makes
	// zoom the default wheel mode.
	ScaleKey Key

	// SingleTouch lets one touch contact drive a gesture (translation only).
	SingleTouch bool

	// MinScale and MaxScale bound the pose scale. Defaults 0.1 and 100.
	MinScale float64
	MaxScale float64
}

// attachment is the validated, immutable form of Options held in the
// registry for one control.
type attachment struct {
	control     Element
	target      Target
	onUpdate    UpdateFunc
	rotateKey   Key
	scaleKey    Key
	singleTouch bool
	minScale    float64
	maxScale    float64
}

// resolveOptions fills defaults from cfg and validates the result.
func resolveOptions(control Element, opts Options, cfg Config) (*attachment, error) {
	a := &attachment{
		control:     control,
		onUpdate:    opts.OnUpdate,
		rotateKey:   opts.RotateKey,
		scaleKey:    opts.ScaleKey,
		singleTouch: opts.SingleTouch || cfg.SingleTouch,
		minScale:    opts.MinScale,
		maxScale:    opts.MaxScale,
	}

	switch {
	case opts.Headless:
		a.target = &headlessTarget{}
	case opts.Target != nil:
		a.target = opts.Target
	default:
		t, ok := control.(Target)
		if !ok {
			return nil, fmt.Errorf("attach: control %T does not implement Target: %w", control, ErrNoTarget)
		}
		a.target = t
	}
	if !reflect.TypeOf(a.target).Comparable() {
		return nil, fmt.Errorf("attach: target %T: %w", a.target, ErrTargetNotComparable)
	}

	if a.rotateKey == KeyDefault {
		a.rotateKey = cfg.rotateKey()
	}
	if a.scaleKey == KeyDefault {
		a.scaleKey = cfg.scaleKey()
	}
	if a.rotateKey == KeyDisabled && a.scaleKey == KeyDisabled {
		return nil, fmt.Errorf("attach: %w", ErrKeysDisabled)
	}
	if a.minScale == 0 {
		a.minScale = cfg.MinScale
	}
	if a.maxScale == 0 {
		a.maxScale = cfg.MaxScale
	}
	if a.minScale <= 0 || a.maxScale < a.minScale {
		return nil, fmt.Errorf("attach: scale range [%v, %v]: %w", a.minScale, a.maxScale, ErrInvalidScaleRange)
	}
	return a, nil
}

// clampScale bounds s to the attachment's scale range.
func (a *attachment) clampScale(s float64) float64 {
	return max(a.minScale, min(a.maxScale, s))
}
