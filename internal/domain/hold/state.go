package hold

type State string

const (
	StateActive   State = "active"
	StateConsumed State = "consumed"
	StateReleased State = "released"
	StateExpired  State = "expired"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateActive, StateConsumed, StateReleased, StateExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed.
func (s State) IsTerminal() bool {
	switch s {
	case StateConsumed, StateReleased, StateExpired:
		return true
	default:
		return false
	}
}
