package game

import "fmt"

// Role is the closed set of seat variants. Filtering by role replaces any
// runtime type inspection: a seat is a dealer, the human, or a bot carrying
// a policy.
type Role int

const (
	RoleDealer Role = iota
	RoleHuman
	RoleBot
)

// String returns the role name
func (r Role) String() string {
	switch r {
	case RoleDealer:
		return "dealer"
	case RoleHuman:
		return "human"
	case RoleBot:
		return "bot"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

const (
	// NumSeats is the number of non-dealer positions: the human seat plus
	// three bots.
	NumSeats = 4

	// HumanSeat is the human's seat id; bots occupy 1..NumSeats-1 left to
	// right.
	HumanSeat = 0

	// DealerID is the dealer's distinguished id, outside the 0..NumSeats-1
	// seat range.
	DealerID = -1
)

// Seat is one table position: an identity, a balance, four hand slots and
// the parallel per-hand bets. len(hands) == len(bets) by construction; a
// fresh round zeroes every bet.
type Seat struct {
	ID      int
	Role    Role
	Balance int

	// Policy is non-nil only for RoleBot.
	Policy *BotPolicy

	hands [MaxHands]*Hand
	bets  [MaxHands]int
}

// NewSeat creates a seat with empty hand slots
func NewSeat(id int, role Role, balance int) *Seat {
	s := &Seat{ID: id, Role: role, Balance: balance}
	for i := range s.hands {
		s.hands[i] = &Hand{}
	}
	return s
}

// Hand returns the hand at slot i. The slot count is fixed; an index
// outside 0..MaxHands-1 is a programming error and panics.
func (s *Seat) Hand(i int) *Hand {
	if i < 0 || i >= MaxHands {
		panic(fmt.Sprintf("game: seat %d hand index %d out of range", s.ID, i))
	}
	return s.hands[i]
}

// Bet returns the bet on slot i
func (s *Seat) Bet(i int) int {
	if i < 0 || i >= MaxHands {
		panic(fmt.Sprintf("game: seat %d bet index %d out of range", s.ID, i))
	}
	return s.bets[i]
}

// setBet records the bet on slot i
func (s *Seat) setBet(i, amount int) {
	if i < 0 || i >= MaxHands {
		panic(fmt.Sprintf("game: seat %d bet index %d out of range", s.ID, i))
	}
	s.bets[i] = amount
}

// TotalBet returns the sum of all outstanding bets on the seat
func (s *Seat) TotalBet() int {
	total := 0
	for _, b := range s.bets {
		total += b
	}
	return total
}

// freeSlot finds an unoccupied hand slot for a future split, if any.
func (s *Seat) freeSlot() (int, bool) {
	for i, h := range s.hands {
		if h.Empty() {
			return i, true
		}
	}
	return 0, false
}

// ResetRound clears every hand and zeroes every bet in preparation for the
// next betting phase.
func (s *Seat) ResetRound() {
	for i := range s.hands {
		s.hands[i].Reset()
		s.bets[i] = 0
	}
}
