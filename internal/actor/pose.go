package actor

// Facing is the last direction the actor moved in.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
	FacingClimb
)

// Motion is the animation family.
type Motion int

const (
	Walk Motion = iota
	Idle
	Airborne
)

// Pose selects the sprite frame.
type Pose struct {
	Facing Facing
	Motion Motion
}

// Frame returns the frame index: three facings per motion.
func (p Pose) Frame() int {
	return int(p.Facing) + 3*int(p.Motion)
}

func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingClimb:
		return "climb"
	default:
		return "right"
	}
}

func (m Motion) String() string {
	switch m {
	case Idle:
		return "idle"
	case Airborne:
		return "airborne"
	default:
		return "walk"
	}
}
