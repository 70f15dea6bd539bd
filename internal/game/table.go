package game

import (
	"errors"
	"fmt"

	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
)

// Phase is the round's top-level state: a strict linear progression per
// round, with EndRound looping back to Bet.
type Phase int

const (
	PhaseInitial Phase = iota
	PhaseBet
	PhaseDeal
	PhasePlay
	PhaseEndRound
)

func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseBet:
		return "bet"
	case PhaseDeal:
		return "deal"
	case PhasePlay:
		return "play"
	case PhaseEndRound:
		return "end_round"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// UIMode tells the input layer what interaction is currently valid. The
// table is the single writer; the input layer only reads it.
type UIMode int

const (
	ModeNormal UIMode = iota
	ModeBet
	ModeTurn
)

func (m UIMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeBet:
		return "bet"
	case ModeTurn:
		return "turn"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// playStage is the play phase's internal progression: the entry check for
// a dealer natural, the turn rotation, then the dealer playing out.
type playStage int

const (
	stageEnter playStage = iota
	stageTurns
	stageDealer
)

// Outcome classifies a settled hand.
type Outcome int

const (
	OutcomeLoss Outcome = iota
	OutcomeWin
	OutcomePush
	OutcomeBlackjack
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLoss:
		return "loss"
	case OutcomeWin:
		return "win"
	case OutcomePush:
		return "push"
	case OutcomeBlackjack:
		return "blackjack"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// HandResult is the settlement of one hand at round end.
type HandResult struct {
	Seat    int
	Hand    int
	Value   int
	Bet     int
	Payout  int
	Outcome Outcome
}

// RoundResult is the settlement of a whole round.
type RoundResult struct {
	Round       int
	DealerValue int
	Hands       []HandResult
}

// Errors returned to the input layer.
var (
	ErrNotBetting    = errors.New("game: table is not collecting bets")
	ErrBetOutOfRange = errors.New("game: bet outside table limits")
	ErrInsufficient  = errors.New("game: balance cannot cover bet")
	ErrNotYourTurn   = errors.New("game: not awaiting a human action")
	ErrInvalidAction = errors.New("game: action not valid for this hand")
)

// Per-card display stagger so stacked cards render staggered rather than
// on top of each other.
const (
	cardStaggerX = 3.0
	cardStaggerY = 1.0
)

// dealPasses is the number of full dealing rounds; the dealer's card in
// the last pass is the face-down hole card.
const dealPasses = 2

// reshuffleDenom: the shoe is rebuilt at a round boundary once fewer than
// 1/reshuffleDenom of its cards remain.
const reshuffleDenom = 5

// Table is the round state machine. One goroutine owns it: every tick it
// takes at most one phase-appropriate logic step, then advances all
// in-flight movables and promotes the finished ones, in that order. Logic
// steps that must wait for animations gate on the in-flight count — the
// only synchronization primitive in the design.
type Table struct {
	cfg    *Config
	zones  Zones
	rng    *rand.Rand
	logger *log.Logger

	shoe   *deck.Deck
	dealer *Seat
	seats  []*Seat // index == seat id; seats[HumanSeat] is the human

	phase   Phase
	mode    UIMode
	stage   playStage
	stalled bool

	movables []*Movable
	objects  []Drawable
	chip     *ChipObject

	turn      *turnState
	dealPass  int
	betsTaken bool

	round      int
	houseNet   int
	lastResult *RoundResult
}

// NewTable creates a table with one dealer, one human seat and three bots,
// a freshly shuffled shoe, and the turn chip at its home zone.
func NewTable(cfg *Config, zones Zones, rng *rand.Rand, logger *log.Logger) *Table {
	t := &Table{
		cfg:    cfg,
		zones:  zones,
		rng:    rng,
		logger: logger.WithPrefix("table"),
		shoe:   deck.New(cfg.Decks, rng),
		dealer: NewSeat(DealerID, RoleDealer, 0),
		phase:  PhaseInitial,
		mode:   ModeNormal,
	}
	for id := 0; id < NumSeats; id++ {
		role := RoleBot
		if id == HumanSeat {
			role = RoleHuman
		}
		seat := NewSeat(id, role, cfg.Balance)
		if role == RoleBot {
			seat.Policy = NewBotPolicy(rng)
		}
		t.seats = append(t.seats, seat)
	}
	t.chip = &ChipObject{Key: TurnChipKey, Pos: zones.get(ZoneChip).Center()}
	t.objects = append(t.objects, t.chip)
	return t
}

// Step runs one tick: a single phase logic step (unless stalled), then a
// uniform advance of every in-flight movable. dt is the elapsed time since
// the previous tick, in seconds.
func (t *Table) Step(dt float64) {
	if !t.stalled {
		switch t.phase {
		case PhaseInitial:
			t.stepInitial()
		case PhaseBet:
			t.stepBet()
		case PhaseDeal:
			t.stepDeal()
		case PhasePlay:
			t.stepPlay()
		case PhaseEndRound:
			t.stepEndRound()
		}
	}
	t.advanceMovables(dt)
}

// stepInitial burns one card face down toward the burn zone. The
// transition to betting does not wait for the burn animation.
func (t *Table) stepInitial() {
	card, err := t.shoe.Draw()
	if err != nil {
		t.stall(err)
		return
	}
	card.FaceDown = true
	t.animateCard(card, t.zones.get(ZoneBurn).TopLeft(), nil)
	t.logger.Debug("burned a card", "remaining", t.shoe.Remaining())
	t.setPhase(PhaseBet)
	t.setMode(ModeBet)
}

// stepBet waits for the human's first-hand bet to become non-zero, then
// debits it, collects every bot's bet exactly once, and moves to dealing.
func (t *Table) stepBet() {
	human := t.seats[HumanSeat]
	if human.Bet(0) == 0 {
		return
	}
	if t.betsTaken {
		return
	}
	t.betsTaken = true

	human.Balance -= human.Bet(0)
	t.animateBetChip(human)
	t.logger.Info("human bet placed", "amount", human.Bet(0), "balance", human.Balance)

	for _, seat := range t.seats {
		if seat.Role != RoleBot {
			continue
		}
		bet := seat.Policy.DecideBet(t.cfg.MinBet, t.cfg.MaxBet)
		seat.setBet(0, bet)
		seat.Balance -= bet
		t.animateBetChip(seat)
		t.logger.Debug("bot bet placed", "seat", seat.ID, "amount", bet, "balance", seat.Balance)
	}

	t.setMode(ModeNormal)
	t.setPhase(PhaseDeal)
}

// stepDeal runs the two dealing passes, one per tick, each gated on the
// previous pass's cards having landed. Deal order is dealer first, then
// seats by ascending id. The dealer's second card is the face-down hole
// card.
func (t *Table) stepDeal() {
	if t.inFlight() > 0 {
		return
	}
	if t.dealPass < dealPasses {
		if err := t.dealRoundOfCards(); err != nil {
			t.stall(err)
			return
		}
		t.dealPass++
		return
	}
	t.stage = stageEnter
	t.setPhase(PhasePlay)
}

// dealRoundOfCards deals one card to the dealer and then every seat.
func (t *Table) dealRoundOfCards() error {
	card, err := t.shoe.Draw()
	if err != nil {
		return err
	}
	if t.dealPass == dealPasses-1 {
		card.FaceDown = true // dealer hole card
	}
	t.dealTo(t.dealer, 0, card)

	for _, seat := range t.seats {
		card, err := t.shoe.Draw()
		if err != nil {
			return err
		}
		t.dealTo(seat, 0, card)
	}
	return nil
}

// stepPlay drives the play phase: the dealer-natural entry check, the turn
// rotation, then the dealer playing out to 17.
func (t *Table) stepPlay() {
	switch t.stage {
	case stageEnter:
		if t.dealer.Hand(0).Value() == 21 {
			// Natural: reveal and settle immediately, no turns.
			t.revealHoleCard()
			t.logger.Info("dealer has blackjack", "hand", t.dealer.Hand(0))
			t.setPhase(PhaseEndRound)
			return
		}
		t.turn = newTurnState(NumSeats - 1) // rightmost bot acts first
		t.stage = stageTurns
		t.moveChipToSeat(t.turn.seat)

	case stageTurns:
		t.stepTurn()

	case stageDealer:
		t.stepDealer()
	}
}

// stepTurn advances the turn coordinator by one sub-step, always gated on
// in-flight animations (the chip or a just-dealt card).
func (t *Table) stepTurn() {
	if t.inFlight() > 0 {
		return
	}
	switch t.turn.phase {
	case phaseMoveChip:
		// Chip has landed; the turn proper starts next step.
		t.turn.phase = phaseTurnStart
	case phaseTurnStart:
		t.resolveTurn()
	case phaseAwaitHuman:
		// Waiting on ApplyHumanAction from the input layer.
	}
}

// resolveTurn resolves the action for the current (seat, hand). Terminal
// and placeholder hands pass through; bots consult their policy; the human
// hands control to the input layer.
func (t *Table) resolveTurn() {
	seat := t.seats[t.turn.seat]
	hand := seat.Hand(t.turn.hand)

	// A hand that reached 21 or busted on its last draw is terminal.
	if !hand.Done && !hand.Empty() && hand.Value() >= 21 {
		hand.Done = true
		if hand.IsBust() {
			t.logger.Info("hand busts", "seat", seat.ID, "hand", hand)
		}
	}
	if hand.Done || hand.Empty() {
		t.advanceTurn()
		return
	}

	if seat.Role == RoleHuman {
		t.turn.phase = phaseAwaitHuman
		t.setMode(ModeTurn)
		return
	}

	action := seat.Policy.Decide(hand, t.dealer)
	t.logger.Debug("bot decides", "seat", seat.ID, "hand", hand, "action", action)
	t.resolveAction(seat, t.turn.hand, action)
}

// resolveAction applies an action to (seat, handIdx). It is the single
// action-resolution primitive: bots reach it through resolveTurn, the
// human through ApplyHumanAction.
func (t *Table) resolveAction(seat *Seat, handIdx int, action Action) {
	hand := seat.Hand(handIdx)
	switch action {
	case Stand:
		hand.Done = true
		t.advanceTurn()
	case Hit:
		t.hit(seat, handIdx)
	case Double:
		bet := seat.Bet(handIdx)
		seat.Balance -= bet
		seat.setBet(handIdx, bet*2)
		hand.Doubled = true
		hand.Done = true
		t.logger.Info("double down", "seat", seat.ID, "bet", bet*2)
		t.hit(seat, handIdx)
	case Split:
		// Recognized but not yet executable; the turn stays where it is.
		t.logger.Warn("split is not implemented at this table", "seat", seat.ID)
	default:
		panic(fmt.Sprintf("game: unknown action %d", int(action)))
	}
}

// hit draws one card into the hand, animated into the hand's quadrant with
// a stagger offset. Further turn progress waits for the card to land.
func (t *Table) hit(seat *Seat, handIdx int) {
	card, err := t.shoe.Draw()
	if err != nil {
		t.stall(err)
		return
	}
	t.dealTo(seat, handIdx, card)
}

// advanceTurn applies the rotation rule; when the rotation is exhausted
// the dealer's hole card is revealed and the dealer plays out.
func (t *Table) advanceTurn() {
	t.setMode(ModeNormal)
	if t.turn.advance() {
		if t.turn.phase == phaseMoveChip {
			t.moveChipToSeat(t.turn.seat)
		}
		return
	}
	t.stage = stageDealer
	t.revealHoleCard()
	t.logger.Debug("turn rotation exhausted, dealer plays", "hand", t.dealer.Hand(0))
}

// stepDealer hits the dealer's hand until it reaches 17, one card per
// drained tick, then settles the round. The dealer stands on any 17.
func (t *Table) stepDealer() {
	if t.inFlight() > 0 {
		return
	}
	if t.dealer.Hand(0).Value() < 17 {
		t.hit(t.dealer, 0)
		return
	}
	t.setPhase(PhaseEndRound)
}

// stepEndRound settles every hand against the dealer, then resets the
// table for the next betting phase.
func (t *Table) stepEndRound() {
	if t.inFlight() > 0 {
		return
	}
	t.settle()
	t.resetRound()
}

// settle pays out every staked hand. Bust loses; a natural (unless the
// dealer also has one) pays 3:2; beating the dealer or a dealer bust pays
// 1:1; a push returns the bet. Doubled hands settle at the doubled bet.
func (t *Table) settle() {
	dealerHand := t.dealer.Hand(0)
	dealerValue := dealerHand.Value()
	dealerNatural := dealerHand.IsBlackjack()

	result := &RoundResult{Round: t.round, DealerValue: dealerValue}
	for _, seat := range t.seats {
		for i := 0; i < MaxHands; i++ {
			hand := seat.Hand(i)
			bet := seat.Bet(i)
			if hand.Empty() || bet == 0 {
				continue
			}
			value := hand.Value()
			outcome := OutcomeLoss
			payout := 0
			switch {
			case value > 21:
			case dealerNatural && hand.IsBlackjack():
				outcome, payout = OutcomePush, bet
			case dealerNatural:
			case hand.IsBlackjack():
				outcome, payout = OutcomeBlackjack, bet+bet*3/2
			case dealerValue > 21 || value > dealerValue:
				outcome, payout = OutcomeWin, bet*2
			case value == dealerValue:
				outcome, payout = OutcomePush, bet
			}
			seat.Balance += payout
			t.houseNet += bet - payout
			result.Hands = append(result.Hands, HandResult{
				Seat: seat.ID, Hand: i, Value: value,
				Bet: bet, Payout: payout, Outcome: outcome,
			})
			t.logger.Info("hand settled",
				"seat", seat.ID, "hand", hand,
				"dealer", dealerValue, "outcome", outcome,
				"bet", bet, "payout", payout)
		}
	}
	t.lastResult = result
}

// resetRound clears hands, bets and table objects (the turn chip goes back
// to its home zone), rebuilds the shoe when it runs low, and loops back to
// the betting phase.
func (t *Table) resetRound() {
	t.dealer.ResetRound()
	for _, seat := range t.seats {
		seat.ResetRound()
	}
	t.objects = t.objects[:0]
	t.objects = append(t.objects, t.chip)
	t.chip.SetPosition(t.zones.get(ZoneChip).Center())
	t.turn = nil
	t.dealPass = 0
	t.betsTaken = false
	t.round++

	if t.shoe.Remaining()*reshuffleDenom < t.shoe.Size() {
		t.shoe = deck.New(t.cfg.Decks, t.rng)
		t.logger.Info("shoe rebuilt", "round", t.round)
		// A fresh shoe burns a card again before betting.
		t.setPhase(PhaseInitial)
		t.setMode(ModeNormal)
		return
	}
	t.setPhase(PhaseBet)
	t.setMode(ModeBet)
}

// PlaceHumanBet records the human's first-hand bet. The input layer calls
// this while the table is in bet mode; the state machine notices the
// non-zero bet on its next step.
func (t *Table) PlaceHumanBet(amount int) error {
	if t.mode != ModeBet {
		return ErrNotBetting
	}
	human := t.seats[HumanSeat]
	if amount < t.cfg.MinBet || amount > t.cfg.MaxBet {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrBetOutOfRange, amount, t.cfg.MinBet, t.cfg.MaxBet)
	}
	if amount > human.Balance {
		return fmt.Errorf("%w: bet %d, balance %d", ErrInsufficient, amount, human.Balance)
	}
	human.setBet(0, amount)
	return nil
}

// ApplyHumanAction resolves the human's turn with the chosen action. It is
// the one re-entrant call the table accepts from outside its own tick
// loop, and it funnels into the same primitive bots use.
func (t *Table) ApplyHumanAction(action Action) error {
	if t.mode != ModeTurn || t.turn == nil || t.turn.phase != phaseAwaitHuman {
		return ErrNotYourTurn
	}
	seat := t.seats[t.turn.seat]
	hand := seat.Hand(t.turn.hand)
	if action == Double {
		if len(hand.Cards) != 2 {
			return fmt.Errorf("%w: double requires a fresh two-card hand", ErrInvalidAction)
		}
		if seat.Balance < seat.Bet(t.turn.hand) {
			return fmt.Errorf("%w: balance %d cannot cover the doubled bet", ErrInsufficient, seat.Balance)
		}
	}
	t.setMode(ModeNormal)
	t.turn.phase = phaseTurnStart
	t.resolveAction(seat, t.turn.hand, action)
	return nil
}

// --- animation plumbing ---

// inFlight returns the pending animation count; logic steps that must wait
// for animations gate on it being zero.
func (t *Table) inFlight() int {
	return len(t.movables)
}

// advanceMovables moves every in-flight movable by dt and promotes the
// finished ones into the static object list, running their handoff hooks.
func (t *Table) advanceMovables(dt float64) {
	kept := t.movables[:0]
	for _, m := range t.movables {
		m.Move(dt)
		if m.Done() {
			t.objects = append(t.objects, m.Obj)
			if m.then != nil {
				m.then()
			}
			continue
		}
		kept = append(kept, m)
	}
	t.movables = kept
}

// animateCard starts a card movable from the deck zone.
func (t *Table) animateCard(card *deck.Card, dest Point, then func()) {
	obj := &CardObject{Card: card, Pos: t.zones.get(ZoneDeck).TopLeft()}
	t.movables = append(t.movables, NewMovable(obj, dest, t.cfg.CardSpeed, then))
}

// animateBetChip slides a chip stack from the seat's status strip to its
// bet strip.
func (t *Table) animateBetChip(seat *Seat) {
	obj := &ChipObject{Key: BetChipKey(seat.ID), Pos: t.zones.get(StatZone(seat.ID)).Center()}
	t.movables = append(t.movables, NewMovable(obj, t.zones.get(BetZone(seat.ID)).Center(), t.cfg.ChipSpeed, nil))
}

// moveChipToSeat sends the turn indicator chip to a seat's status strip.
// The chip is pulled out of the static objects while it travels.
func (t *Table) moveChipToSeat(seatID int) {
	t.removeObject(t.chip)
	dest := t.zones.get(StatZone(seatID)).Center()
	t.movables = append(t.movables, NewMovable(t.chip, dest, t.cfg.ChipSpeed, nil))
}

// removeObject drops obj from the static object list (it is about to be
// animated again).
func (t *Table) removeObject(obj Drawable) {
	for i, o := range t.objects {
		if o == obj {
			t.objects = append(t.objects[:i], t.objects[i+1:]...)
			return
		}
	}
}

// dealTo draws nothing itself: it animates card into (seat, handIdx) with
// a per-card stagger, handing the card to the hand when it lands. The
// movable gate guarantees the hand's card count is settled at spawn time,
// so the stagger index is just the current count.
func (t *Table) dealTo(seat *Seat, handIdx int, card *deck.Card) {
	hand := seat.Hand(handIdx)
	zone := t.zones.get(t.handZoneName(seat, handIdx))
	offset := Point{X: cardStaggerX, Y: cardStaggerY}.Scale(float64(len(hand.Cards)))
	t.animateCard(card, zone.TopLeft().Add(offset), func() { hand.Add(card) })
	t.logger.Debug("card dealt",
		"seat", seat.ID, "handIdx", handIdx,
		"card", card, "faceDown", card.FaceDown)
}

// handZoneName maps a (seat, hand) pair to its zone under the layout
// naming contract.
func (t *Table) handZoneName(seat *Seat, handIdx int) string {
	if seat.Role == RoleDealer {
		return ZoneDealer
	}
	return HandZone(seat.ID, handIdx)
}

// revealHoleCard flips the dealer's cards face up.
func (t *Table) revealHoleCard() {
	for _, c := range t.dealer.Hand(0).Cards {
		c.FaceDown = false
	}
}

// stall marks the table unable to proceed (deck exhaustion mid-round). No
// further logic steps run; animations still complete. The failure is a
// stalled phase, never a crash.
func (t *Table) stall(err error) {
	t.stalled = true
	t.logger.Error("round cannot continue", "err", err, "phase", t.phase)
}

func (t *Table) setPhase(p Phase) {
	t.logger.Debug("phase transition", "from", t.phase, "to", p)
	t.phase = p
}

func (t *Table) setMode(m UIMode) {
	if t.mode != m {
		t.logger.Debug("ui mode", "from", t.mode, "to", m)
	}
	t.mode = m
}

// --- read-only surface for the renderer, input layer and simulator ---

// SetZones swaps in a new layout (terminal resize). Movables already in
// flight keep their old destinations; everything spawned afterwards uses
// the new geometry.
func (t *Table) SetZones(zones Zones) {
	t.zones = zones
}

// Phase returns the current round phase
func (t *Table) Phase() Phase { return t.phase }

// Mode returns the current UI mode
func (t *Table) Mode() UIMode { return t.mode }

// Round returns the number of completed rounds
func (t *Table) Round() int { return t.round }

// Stalled reports whether the table can no longer proceed
func (t *Table) Stalled() bool { return t.stalled }

// Seats returns the non-dealer seats in id order
func (t *Table) Seats() []*Seat { return t.seats }

// Dealer returns the dealer's seat
func (t *Table) Dealer() *Seat { return t.dealer }

// Human returns the human's seat
func (t *Table) Human() *Seat { return t.seats[HumanSeat] }

// HouseNet returns the chips the house has taken from the table so far
// (negative when the players are ahead).
func (t *Table) HouseNet() int { return t.houseNet }

// LastResult returns the most recent round settlement, or nil before the
// first round completes.
func (t *Table) LastResult() *RoundResult { return t.lastResult }

// ShoeRemaining returns the number of cards left in the shoe
func (t *Table) ShoeRemaining() int { return t.shoe.Remaining() }

// CurrentTurn returns the seat id and hand index whose turn is being
// resolved; ok is false outside the turn rotation.
func (t *Table) CurrentTurn() (seatID, handIdx int, ok bool) {
	if t.turn == nil || t.stage != stageTurns {
		return 0, 0, false
	}
	return t.turn.seat, t.turn.hand, true
}

// DrawList returns every drawable in paint order: settled objects first,
// then in-flight ones on top.
func (t *Table) DrawList() []Drawable {
	list := make([]Drawable, 0, len(t.objects)+len(t.movables))
	list = append(list, t.objects...)
	for _, m := range t.movables {
		list = append(list, m.Obj)
	}
	return list
}
