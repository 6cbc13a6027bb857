package intrusive

// State is where a handle sits in the block lifecycle:
//
//	Unowned -> Owned(C) <-> Owned(F) -> Released
//
// The two borrowed states are transient branches off Owned. StateMoved marks
// a handle whose block now belongs to another handle.
type State uint8

const (
	StateUnowned State = iota
	StateOwned
	StateSharedBorrowed
	StateExclusiveBorrowed
	StateMoved
	StateReleased
)

func (s State) String() string {
	switch s {
	case StateUnowned:
		return "unowned"
	case StateOwned:
		return "owned"
	case StateSharedBorrowed:
		return "shared-borrowed"
	case StateExclusiveBorrowed:
		return "exclusive-borrowed"
	case StateMoved:
		return "moved"
	case StateReleased:
		return "released"
	default:
		return "?"
	}
}

// block is the bookkeeping shared by every view of one memory block. It moves
// with the address when a handle changes view.
type block struct {
	shared    int
	exclusive bool
	released  bool
	aliased   bool
}

func (b *block) borrowed() bool { return b.shared > 0 || b.exclusive }
