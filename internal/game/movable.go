package game

// Movable is a transient animation task: it carries a drawable toward a
// destination at a fixed speed (units per second) and reports completion
// only when the position equals the destination exactly. Completed movables
// are promoted into the table's static object list; there is no
// cancellation.
type Movable struct {
	Obj   Drawable
	Dest  Point
	Speed float64

	// then runs once, when the object lands (hand/burn-pile handoff).
	then func()
}

// NewMovable creates a movable carrying obj to dest at speed units/sec.
// then may be nil.
func NewMovable(obj Drawable, dest Point, speed float64, then func()) *Movable {
	return &Movable{Obj: obj, Dest: dest, Speed: speed, then: then}
}

// Move advances the object by speed*dt along the line to the destination.
// The step is clamped: when the remaining distance is no more than the
// step, the object lands exactly on the destination, never past it.
func (m *Movable) Move(dt float64) {
	remaining := m.Dest.Sub(m.Obj.Position())
	step := m.Speed * dt
	if remaining.Len() <= step {
		m.Obj.SetPosition(m.Dest)
		return
	}
	m.Obj.SetPosition(m.Obj.Position().Add(remaining.Unit().Scale(step)))
}

// Done reports whether the object has arrived. The comparison is exact:
// Move snaps to the destination, so float drift cannot strand a movable.
func (m *Movable) Done() bool {
	return m.Obj.Position() == m.Dest
}
