package grasp

// ContactID identifies a touch contact for its whole lifetime.
type ContactID int

// Contact is one tracked touch point. It is always held by value so the
// engine never aliases the host's event objects.
type Contact struct {
	ID   ContactID
	X, Y float64
}

// Pos returns the contact position.
func (c Contact) Pos() Vec2 {
	return Vec2{c.X, c.Y}
}

// contactTracker maintains the live touch set, the snapshot of the live set
// taken at the previous tick, and the two most recent mouse samples.
type contactTracker struct {
	live     []Contact
	prevTick []Contact

	mousePrev Vec2
	mouseCur  Vec2
}

// begin replaces the live set wholesale with a copy of contacts.
func (t *contactTracker) begin(contacts []Contact) {
	t.live = append(t.live[:0], contacts...)
}

// change replaces matching live entries in place. Identifiers that never
// started are ignored.
func (t *contactTracker) change(contacts []Contact) {
	for _, c := range contacts {
		if i := indexOfContact(t.live, c.ID); i >= 0 {
			t.live[i] = c
		}
	}
}

// end removes matching identifiers from the live set.
func (t *contactTracker) end(contacts []Contact) {
	for _, c := range contacts {
		if i := indexOfContact(t.live, c.ID); i >= 0 {
			copy(t.live[i:], t.live[i+1:])
			t.live = t.live[:len(t.live)-1]
		}
	}
}

// snapshot returns an independent copy of the live set.
func (t *contactTracker) snapshot() []Contact {
	if len(t.live) == 0 {
		return nil
	}
	out := make([]Contact, len(t.live))
	copy(out, t.live)
	return out
}

// markTick records the live set as the reference for the next tick.
func (t *contactTracker) markTick() {
	t.prevTick = append(t.prevTick[:0], t.live...)
}

// clearTick drops the previous-tick reference.
func (t *contactTracker) clearTick() {
	t.prevTick = t.prevTick[:0]
}

// pressMouse seeds both mouse slots at p.
func (t *contactTracker) pressMouse(p Vec2) {
	t.mousePrev = p
	t.mouseCur = p
}

// moveMouse shifts the current sample into the previous slot.
func (t *contactTracker) moveMouse(p Vec2) {
	t.mousePrev = t.mouseCur
	t.mouseCur = p
}

func indexOfContact(cs []Contact, id ContactID) int {
	for i := range cs {
		if cs[i].ID == id {
			return i
		}
	}
	return -1
}
