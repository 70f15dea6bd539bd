package game

import (
	"fmt"

	"github.com/lox/blackjack/internal/deck"
)

// Drawable is anything the rendering collaborator can place on the table.
// The engine owns positions; the renderer resolves VisualKey to an actual
// visual and never inspects game state through it.
type Drawable interface {
	Position() Point
	SetPosition(Point)
	VisualKey() string
}

// CardBackKey is the visual key reported by any face-down card.
const CardBackKey = "card_back"

// CardObject is the drawable for a single card on the table surface.
type CardObject struct {
	Card *deck.Card
	Pos  Point
}

// Position returns the object's current position
func (o *CardObject) Position() Point { return o.Pos }

// SetPosition moves the object
func (o *CardObject) SetPosition(p Point) { o.Pos = p }

// VisualKey returns the card's identity key, or the card back while the
// card is face down.
func (o *CardObject) VisualKey() string {
	if o.Card.FaceDown {
		return CardBackKey
	}
	return o.Card.Key()
}

// TurnChipKey is the visual key of the turn indicator chip.
const TurnChipKey = "chip_turn"

// BetChipKey returns the visual key of a seat's bet chip stack.
func BetChipKey(seat int) string {
	return fmt.Sprintf("chip_bet_%d", seat)
}

// ChipObject is the drawable for a chip (turn indicator or bet stack).
type ChipObject struct {
	Key string
	Pos Point
}

// Position returns the chip's current position
func (o *ChipObject) Position() Point { return o.Pos }

// SetPosition moves the chip
func (o *ChipObject) SetPosition(p Point) { o.Pos = p }

// VisualKey returns the chip's visual key
func (o *ChipObject) VisualKey() string { return o.Key }
