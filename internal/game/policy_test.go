package game

import (
	"testing"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
)

func TestPolicyDecide(t *testing.T) {
	t.Parallel()
	policy := NewBotPolicy(randutil.New(1))
	dealer := NewSeat(DealerID, RoleDealer, 0)

	tests := []struct {
		name string
		hand *Hand
		want Action
	}{
		{"empty slot passes through", &Hand{}, Stand},
		{"eleven doubles", handOf(deck.Five, deck.Six), Double},
		{"ten doubles", handOf(deck.Five, deck.Five), Double},
		{"soft eleven does not double", handOf(deck.Ace, deck.Ten), Stand}, // value 21
		{"ace and low card hits", handOf(deck.Ace, deck.Four), Hit},       // soft 15
		{"fifteen hits", handOf(deck.Seven, deck.Eight), Hit},
		{"sixteen stands", handOf(deck.Ten, deck.Six), Stand},
		{"twenty stands", handOf(deck.Ten, deck.King), Stand},
		{"three card ten hits", handOf(deck.Two, deck.Three, deck.Five), Hit},
		{"bust stands", handOf(deck.Ten, deck.Ten, deck.Five), Stand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.Decide(tt.hand, dealer); got != tt.want {
				t.Errorf("decide(%s) = %s, want %s", tt.hand, got, tt.want)
			}
		})
	}
}

func TestPolicyDoneHandStands(t *testing.T) {
	t.Parallel()
	policy := NewBotPolicy(randutil.New(1))
	dealer := NewSeat(DealerID, RoleDealer, 0)

	h := handOf(deck.Two, deck.Three) // would otherwise hit
	h.Done = true
	if got := policy.Decide(h, dealer); got != Stand {
		t.Errorf("done hand should stand, got %s", got)
	}
}

func TestPolicyDecideBetRange(t *testing.T) {
	t.Parallel()
	policy := NewBotPolicy(randutil.New(99))
	seenLowHalf, seenHighHalf := false, false
	for i := 0; i < 1000; i++ {
		bet := policy.DecideBet(100, 5000)
		if bet < 100 || bet > 5000 {
			t.Fatalf("bet %d outside [100, 5000]", bet)
		}
		if bet < 2550 {
			seenLowHalf = true
		} else {
			seenHighHalf = true
		}
	}
	if !seenLowHalf || !seenHighHalf {
		t.Error("bets do not look uniform over the range")
	}
}

func TestSplitIsRecognized(t *testing.T) {
	t.Parallel()
	// Split stays in the closed action set even though no policy path
	// chooses it yet.
	found := false
	for _, a := range Actions {
		if a == Split {
			found = true
		}
	}
	if !found {
		t.Fatal("Split missing from the action taxonomy")
	}
	if Split.String() != "split" {
		t.Errorf("Split.String() = %q", Split.String())
	}
}
