package world

// Inhabitant is the creature or fixture occupying a room, if any.
type Inhabitant int

const (
	NoInhabitant Inhabitant = iota
	Minotaur
	MinotaurDead
	Mirror
	MirrorCracked
)

// String returns a human-readable inhabitant name.
func (i Inhabitant) String() string {
	switch i {
	case Minotaur:
		return "minotaur"
	case MinotaurDead:
		return "dead minotaur"
	case Mirror:
		return "mirror"
	case MirrorCracked:
		return "cracked mirror"
	default:
		return "none"
	}
}

// Item is the object lying in a room, if any.
type Item int

const (
	NoItem Item = iota
	Bullet
	Treasure
)

// String returns a human-readable item name.
func (i Item) String() string {
	switch i {
	case Bullet:
		return "bullet"
	case Treasure:
		return "treasure"
	default:
		return "none"
	}
}
