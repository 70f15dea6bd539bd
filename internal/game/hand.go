package game

import (
	"strconv"
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// MaxHands is the number of hand slots per seat (splits can occupy up to
// four).
const MaxHands = 4

// Hand is one playable card grouping belonging to a seat. A hand with no
// cards is a placeholder slot, not a played hand: it values 0 and is never
// done by value alone.
type Hand struct {
	Cards   []*deck.Card
	Doubled bool
	Done    bool
}

// Add appends a card to the hand. Insertion order is kept for display
// stagger only; valuation ignores it.
func (h *Hand) Add(c *deck.Card) {
	h.Cards = append(h.Cards, c)
}

// Empty reports whether the slot holds no cards
func (h *Hand) Empty() bool {
	return len(h.Cards) == 0
}

// Value computes the blackjack total in one pass: non-ace points are
// summed, all aces but one count 1, and the last ace counts 11 unless that
// would bust. The formula never caps at 21; callers check for bust.
func (h *Hand) Value() int {
	sum := 0
	aces := 0
	for _, c := range h.Cards {
		if c.IsAce() {
			aces++
			continue
		}
		sum += c.PointValue()
	}
	if aces == 0 {
		return sum
	}
	sum += aces - 1
	if sum+11 > 21 {
		return sum + 1
	}
	return sum + 11
}

// IsBlackjack reports a natural: exactly two cards totalling 21.
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.Value() == 21
}

// IsBust reports whether the hand's value exceeds 21.
func (h *Hand) IsBust() bool {
	return h.Value() > 21
}

// CanSplit reports split eligibility: exactly two cards of equal point
// value. Ten, jack, queen and king all map to ten, so any two of them
// compare equal here; that matches the table rule in force, see DESIGN.md.
func (h *Hand) CanSplit() bool {
	if len(h.Cards) != 2 {
		return false
	}
	return h.Cards[0].PointValue() == h.Cards[1].PointValue()
}

// hasAce reports whether any card in the hand is an ace
func (h *Hand) hasAce() bool {
	for _, c := range h.Cards {
		if c.IsAce() {
			return true
		}
	}
	return false
}

// Reset returns the hand to an empty placeholder slot
func (h *Hand) Reset() {
	h.Cards = h.Cards[:0]
	h.Doubled = false
	h.Done = false
}

// String renders the hand for logs, e.g. "A♠ K♦ (21)"
func (h *Hand) String() string {
	if h.Empty() {
		return "empty"
	}
	var b strings.Builder
	for i, c := range h.Cards {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteString(" (")
	b.WriteString(strconv.Itoa(h.Value()))
	b.WriteByte(')')
	return b.String()
}
