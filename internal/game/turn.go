package game

import "fmt"

// turnPhase is the coordinator's sub-phase within one actor's turn.
type turnPhase int

const (
	// phaseMoveChip: the turn indicator chip is travelling to the current
	// actor; nothing resolves until it lands.
	phaseMoveChip turnPhase = iota

	// phaseTurnStart: resolve the action for (seat, hand) this tick.
	phaseTurnStart

	// phaseAwaitHuman: the input layer owns the turn; ApplyHumanAction
	// resumes it.
	phaseAwaitHuman
)

func (p turnPhase) String() string {
	switch p {
	case phaseMoveChip:
		return "move_chip"
	case phaseTurnStart:
		return "turn_start"
	case phaseAwaitHuman:
		return "await_human"
	default:
		return fmt.Sprintf("turn_phase(%d)", int(p))
	}
}

// turnState tracks whose turn it is. It is built once per round at the
// start of the play phase, pointing at the rightmost bot's first hand, and
// discarded at round end.
type turnState struct {
	seat  int
	hand  int
	phase turnPhase
}

func newTurnState(startSeat int) *turnState {
	return &turnState{seat: startSeat, hand: 0, phase: phaseMoveChip}
}

// advance moves to the next hand or seat. Within a seat the hand index
// climbs 0→3 without moving the chip; after the last slot the rotation
// steps to the next lower seat id (toward the human, who acts last) and the
// chip moves again. Returns false once the rotation is exhausted.
func (t *turnState) advance() bool {
	if t.hand == MaxHands-1 {
		t.seat--
		t.hand = 0
		t.phase = phaseMoveChip
		return t.seat >= 0
	}
	t.hand++
	t.phase = phaseTurnStart
	return true
}
