package engine

type Mode string

const (
	ModePaint Mode = "PVP_PAINT"
	ModeDraw  Mode = "PVP_DRAW"
)

// ParseMode maps the wire mode string to a Mode. An absent mode means the
// classic paint mode, which is what existing clients send.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", string(ModePaint):
		return ModePaint, true
	case string(ModeDraw):
		return ModeDraw, true
	default:
		return "", false
	}
}

type Role string

const (
	RoleDrawer  Role = "drawer"
	RoleGuesser Role = "guesser"
)

// State is the guessing-variant round state for one room. It's a value:
// every transition returns a new State and the hub swaps it in.
type State struct {
	Round     int
	Word      string
	HostScore int
	JoinScore int
}

// NewState starts at round 0; the first round begins when the second
// player joins, via NextRound.
func NewState() State {
	return State{}
}

// Started reports whether the first round has begun.
func (s State) Started() bool {
	return s.Round > 0
}

// DrawerIsHost derives drawer assignment from round parity: the host draws
// on odd rounds. Derived, never stored, so it can't drift from the round
// counter.
func DrawerIsHost(round int) bool {
	return round%2 == 1
}

// RoleOf returns the role of the host or joiner side for the given round.
func RoleOf(round int, isHost bool) Role {
	if isHost == DrawerIsHost(round) {
		return RoleDrawer
	}
	return RoleGuesser
}

// NextRound advances to the next round and draws a fresh secret word from
// pick. The same word may repeat across rounds.
func NextRound(s State, pick func() string) State {
	s.Round++
	s.Word = pick()
	return s
}

// RecordGuess credits the sender's side when the client reports a correct
// guess. The server never compares the guess against the word: guess
// correctness is trusted from the client UI, which is the only party that
// sees both strings.
func RecordGuess(s State, senderIsHost, correct bool) State {
	if !correct {
		return s
	}
	if senderIsHost {
		s.HostScore++
	} else {
		s.JoinScore++
	}
	return s
}
