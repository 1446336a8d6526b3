package grasp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pose is the accumulated transform applied to a target.
type Pose struct {
	Translation Vec2
	Rotation    float64 // degrees
	Scale       float64
}

// IdentityPose is the pose of a target that has never been transformed.
var IdentityPose = Pose{Scale: 1}

// Transform returns the pose as transform text:
//
//	translate(<x>px,<y>px) rotate(<deg>deg) scale(<factor>)
//
// The order is fixed: translate, then rotate, then scale.
func (p Pose) Transform() string {
	var b strings.Builder
	b.Grow(64)
	b.WriteString("translate(")
	b.WriteString(formatNumber(p.Translation.X))
	b.WriteString("px,")
	b.WriteString(formatNumber(p.Translation.Y))
	b.WriteString("px) rotate(")
	b.WriteString(formatNumber(p.Rotation))
	b.WriteString("deg) scale(")
	b.WriteString(formatNumber(p.Scale))
	b.WriteString(")")
	return b.String()
}

// String implements fmt.Stringer.
func (p Pose) String() string {
	return p.Transform()
}

// formatNumber prints the shortest decimal that round-trips, without an
// exponent. Negative zero prints as "0".
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var transformOpRe = regexp.MustCompile(`(?i)(translate|rotate|scale)\(([^)]+)\)`)

// ParseTransform parses transform text into a pose. Only translate (px),
// rotate (deg) and scale functions are recognized; anything else is ignored.
// Components absent from the text keep their identity values, so the empty
// string parses to IdentityPose.
func ParseTransform(text string) (Pose, error) {
	p := IdentityPose
	for _, m := range transformOpRe.FindAllStringSubmatch(text, -1) {
		op, arg := strings.ToLower(m[1]), m[2]
		switch op {
		case "translate":
			xs, ys, ok := strings.Cut(arg, ",")
			if !ok {
				return IdentityPose, fmt.Errorf("parse transform: translate(%s): want two components", arg)
			}
			x, err := parseLeadingFloat(xs)
			if err != nil {
				return IdentityPose, fmt.Errorf("parse transform: translate x: %w", err)
			}
			y, err := parseLeadingFloat(ys)
			if err != nil {
				return IdentityPose, fmt.Errorf("parse transform: translate y: %w", err)
			}
			p.Translation = Vec2{x, y}
		case "rotate":
			v, err := parseLeadingFloat(arg)
			if err != nil {
				return IdentityPose, fmt.Errorf("parse transform: rotate: %w", err)
			}
			p.Rotation = v
		case "scale":
			v, err := parseLeadingFloat(arg)
			if err != nil {
				return IdentityPose, fmt.Errorf("parse transform: scale: %w", err)
			}
			p.Scale = v
		}
	}
	return p, nil
}

// parseLeadingFloat parses the numeric prefix of s, ignoring surrounding
// whitespace and a trailing unit ("12.5px" -> 12.5).
func parseLeadingFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' ||
			((c == 'e' || c == 'E') && end > 0 && end+1 < len(s) && isExponentTail(s[end+1:])) {
			end++
			continue
		}
		break
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// isExponentTail reports whether s starts like the digits of an exponent.
func isExponentTail(s string) bool {
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

// Target is the visual element a gesture transforms. ApplyTransform is called
// once per active tick, and on Reset, with the new pose and its transform
// text.
type Target interface {
	ApplyTransform(transform string, p Pose)
}

// PoseSource is implemented by targets that carry a pre-existing transform.
// The first time a target takes part in a gesture (or is reset), its
// InitialPose is captured as the origin pose. Targets that do not implement
// PoseSource start from IdentityPose.
type PoseSource interface {
	InitialPose() Pose
}

// StyleTarget is a Target that keeps its transform as text, the way a styled
// document element does. Its initial Style is parsed once to seed the origin
// pose; unparseable text falls back to IdentityPose.
type StyleTarget struct {
	Style string
}

// ApplyTransform stores the transform text.
func (t *StyleTarget) ApplyTransform(transform string, _ Pose) {
	t.Style = transform
}

// InitialPose parses the current style text.
func (t *StyleTarget) InitialPose() Pose {
	p, err := ParseTransform(t.Style)
	if err != nil {
		return IdentityPose
	}
	return p
}

// headlessTarget is used when a control is attached without a visual target:
// updates still reach OnUpdate, nothing is drawn. The field keeps every
// instance at a distinct address so each one keys its own registry entry.
type headlessTarget struct {
	_ byte
}

func (*headlessTarget) ApplyTransform(string, Pose) {}
