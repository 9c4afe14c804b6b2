package sim

import "github.com/Arroyave03/CampoElectrico/internal/physics"

// DragState is the test charge's interaction state.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (d DragState) String() string {
	if d == Dragging {
		return "dragging"
	}
	return "idle"
}

// State reports whether the test charge is being dragged.
func (s *Session) State() DragState {
	if s.test.Dragging {
		return Dragging
	}
	return Idle
}

// PointerDown starts a drag when p lands on the test charge.
func (s *Session) PointerDown(p physics.Vec2) {
	if s.test.Hit(p) {
		s.SetDragging(true)
	}
}

// PointerUp ends any drag and refreshes the seeds for the new layout.
func (s *Session) PointerUp() {
	s.SetDragging(false)
	s.GenerateSeeds()
}

// follow moves a dragged test charge onto the pointer.
func (s *Session) follow(p physics.Vec2) {
	if s.test.Dragging {
		s.MoveTestCharge(p)
	}
}
