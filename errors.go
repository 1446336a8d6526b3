package grasp

import "errors"

var (
	// ErrNilControl is returned when a nil control is attached or reset.
	ErrNilControl = errors.New("grasp: nil control")
	// ErrAlreadyAttached is returned when a control is attached twice.
	ErrAlreadyAttached = errors.New("grasp: control already attached")
	// ErrNotAttached is returned for operations on a control that was never attached.
	ErrNotAttached = errors.New("grasp: control not attached")
	// ErrNoTarget is returned when neither Options.Target nor the control itself is a Target.
	ErrNoTarget = errors.New("grasp: no target")
	// ErrTargetNotComparable is returned for targets that cannot key the pose registry.
	ErrTargetNotComparable = errors.New("grasp: target type is not comparable")
	// ErrInvalidScaleRange is returned when MinScale is not positive or exceeds MaxScale.
	ErrInvalidScaleRange = errors.New("grasp: invalid scale range")
	// ErrKeysDisabled is returned when both the rotate and the scale key are disabled.
	ErrKeysDisabled = errors.New("grasp: rotate and scale keys both disabled")
	// ErrTickFault wraps a panic recovered from a tick.
	ErrTickFault = errors.New("grasp: tick fault")
)
