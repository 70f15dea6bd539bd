// Package deck implements the blackjack shoe: a shuffled multiset of
// N physical 52-card decks that issues one card at a time and is never
// reshuffled mid-round.
package deck

import (
	"errors"

	rand "math/rand/v2"
)

// DeckSize is the number of cards in one physical deck
const DeckSize = 52

// ErrExhausted is returned by Draw when no cards remain in the shoe
var ErrExhausted = errors.New("deck: shoe exhausted")

// Deck is a shoe of nDecks physical decks. Cards are drawn front to back;
// nothing is ever reinserted.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// New builds a shuffled shoe of nDecks physical decks using the provided
// RNG for the shuffle.
func New(nDecks int, rng *rand.Rand) *Deck {
	if nDecks < 1 {
		nDecks = 1
	}
	d := &Deck{
		cards: make([]Card, 0, nDecks*DeckSize),
		rng:   rng,
	}
	for range nDecks {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
			}
		}
	}
	d.shuffle()
	return d
}

// NewStacked builds an unshuffled shoe that draws the given cards in
// order. Used by tests and tooling to script exact deals.
func NewStacked(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// shuffle performs a Fisher-Yates shuffle over the whole shoe and resets
// the draw position.
func (d *Deck) shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card of the shoe. The returned pointer
// stays valid for the lifetime of the shoe; the caller owns the card's
// FaceDown flag from here on.
func (d *Deck) Draw() (*Card, error) {
	if d.next >= len(d.cards) {
		return nil, ErrExhausted
	}
	card := &d.cards[d.next]
	d.next++
	return card, nil
}

// Remaining returns the number of cards left in the shoe
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Size returns the total number of cards the shoe was built with
func (d *Deck) Size() int {
	return len(d.cards)
}

// IsExhausted returns true iff no cards remain
func (d *Deck) IsExhausted() bool {
	return d.next >= len(d.cards)
}
