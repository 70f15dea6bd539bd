package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the lowercase suit name used in card identity keys
func (s Suit) String() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return "?"
	}
}

// Symbol returns the single-rune suit glyph for display
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Suits lists all four suits in identity order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists all thirteen ranks in identity order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// String returns the lowercase rank name used in card identity keys
func (r Rank) String() string {
	switch r {
	case Jack:
		return "jack"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Ace:
		return "ace"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Short returns the compact rank label for table display
func (r Rank) Short() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// AcePoint is the sentinel point value for aces. An ace is worth 1 or 11
// depending on the rest of the hand, so the card carries a marker and hand
// valuation decides.
const AcePoint = -1

// Card is a single playing card. FaceDown is the only mutable field; it is
// cleared when a hole card is revealed.
type Card struct {
	Rank     Rank
	Suit     Suit
	FaceDown bool
}

// PointValue returns the blackjack point value of the card: face cards count
// ten, aces return AcePoint, everything else its numeric rank.
func (c *Card) PointValue() int {
	switch {
	case c.Rank == Ace:
		return AcePoint
	case c.Rank >= Jack:
		return 10
	default:
		return int(c.Rank)
	}
}

// IsAce returns true if the card is an ace
func (c *Card) IsAce() bool {
	return c.Rank == Ace
}

// Key returns the card's identity key, e.g. "ace_of_spades". The renderer
// resolves keys to visuals; game logic never inspects them.
func (c *Card) Key() string {
	return fmt.Sprintf("%s_of_%s", c.Rank, c.Suit)
}

// String returns the compact form used in logs, e.g. "A♠"
func (c *Card) String() string {
	return c.Rank.Short() + c.Suit.Symbol()
}
