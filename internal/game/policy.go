package game

import rand "math/rand/v2"

// BotPolicy makes decisions for automated seats. It only decides; the
// table applies the resulting state changes. The ladder is deliberately
// simplistic — it is the table rule in force, not a basic-strategy chart,
// and must not be "improved" without changing the round tests with it.
type BotPolicy struct {
	rng *rand.Rand
}

// NewBotPolicy creates a policy drawing randomness from rng
func NewBotPolicy(rng *rand.Rand) *BotPolicy {
	return &BotPolicy{rng: rng}
}

// DecideBet picks a uniformly random bet in [minBet, maxBet].
func (p *BotPolicy) DecideBet(minBet, maxBet int) int {
	if maxBet <= minBet {
		return minBet
	}
	return minBet + p.rng.IntN(maxBet-minBet+1)
}

// Decide returns the action for one turn-step on hand:
//
//  1. a hand already marked done stands (idempotent no-op)
//  2. a valueless slot stands (pass-through, the hand is not in play)
//  3. a fresh two-card hand of 10 or 11 with no ace doubles
//  4. below 16 hits
//  5. otherwise stands
//
// Split is never chosen; it stays reserved for future strategy. The dealer
// seat is passed for that future work and is ignored by the current ladder.
func (p *BotPolicy) Decide(hand *Hand, dealer *Seat) Action {
	if hand.Done {
		return Stand
	}
	v := hand.Value()
	switch {
	case v == 0:
		return Stand
	case len(hand.Cards) == 2 && !hand.hasAce() && (v == 10 || v == 11):
		return Double
	case v < 16:
		return Hit
	default:
		return Stand
	}
}
