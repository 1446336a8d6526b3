package grasp

import "math"

// Centroid returns the arithmetic mean position of contacts.
// The result is undefined (NaN) for an empty set; callers guarantee at least
// one contact.
func Centroid(contacts []Contact) Vec2 {
	var x, y float64
	for _, c := range contacts {
		x += c.X
		y += c.Y
	}
	n := float64(len(contacts))
	return Vec2{x / n, y / n}
}

// RadialDistance returns the mean Euclidean distance of contacts from their
// centroid. With fewer than two contacts there is no spread to measure and
// the result is 0.
func RadialDistance(contacts []Contact) float64 {
	if len(contacts) < 2 {
		return 0
	}
	mid := Centroid(contacts)
	var sum float64
	for _, c := range contacts {
		sum += math.Hypot(c.X-mid.X, c.Y-mid.Y)
	}
	return sum / float64(len(contacts))
}

// findAngle returns the signed angle in degrees between the reference axis
// (one unit to the right of center) and the direction from center to ref.
// Both directions use atan2(dx, dy), axes swapped from the usual convention.
func findAngle(ref, center Vec2) float64 {
	axis := Vec2{center.X + 1, center.Y}
	atanRef := math.Atan2(ref.X-center.X, ref.Y-center.Y)
	atanAxis := math.Atan2(axis.X-center.X, axis.Y-center.Y)
	return (atanAxis - atanRef) * 180 / math.Pi
}

// touchRotation computes the touch rotation measure. The reference is the
// first contact of the previous tick's snapshot, taken at its previous-tick
// position, measured around the current centroid. ok is false when the
// reference contact is no longer live.
func touchRotation(live, prevTick []Contact) (deg float64, ok bool) {
	if len(live) < 2 {
		return 0, true
	}
	if len(prevTick) == 0 {
		return 0, false
	}
	ref := prevTick[0]
	if indexOfContact(live, ref.ID) < 0 {
		return 0, false
	}
	return findAngle(ref.Pos(), Centroid(live)), true
}

// measurement is the per-tick input snapshot for the active modality.
type measurement struct {
	position Vec2
	rotation float64
	distance float64
}

// touchMeasurement builds the touch measurement from the live set and the
// previous tick's snapshot.
func touchMeasurement(live, prevTick []Contact) (measurement, bool) {
	rot, ok := touchRotation(live, prevTick)
	if !ok {
		return measurement{}, false
	}
	return measurement{
		position: Centroid(live),
		rotation: rot,
		distance: RadialDistance(live),
	}, true
}
