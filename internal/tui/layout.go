package tui

import "github.com/lox/blackjack/internal/game"

// Minimum surface the layout is computed against; smaller terminals get a
// clipped view rather than a broken one.
const (
	minWidth  = 100
	minHeight = 30
)

// surfaceSize clamps a terminal size to the layout minimums, reserving
// rows for the status and input lines under the table surface.
func surfaceSize(w, h int) (int, int) {
	if w < minWidth {
		w = minWidth
	}
	if h < minHeight {
		h = minHeight
	}
	return w, h - 3
}

// BuildZones lays the table out for a w×h cell terminal under the engine's
// zone naming contract: shoe top right, burn pile top left, dealer center
// top, four seat blocks along the bottom, each with four hand quadrants
// and stat/bet strips beneath.
func BuildZones(w, h int) game.Zones {
	w, h = surfaceSize(w, h)

	z := game.Zones{
		game.ZoneDeck:   {X: float64(w - 9), Y: 1, W: 7, H: 5},
		game.ZoneBurn:   {X: 2, Y: 1, W: 7, H: 5},
		game.ZoneDealer: {X: float64(w/2 - 14), Y: 1, W: 28, H: 6},
		game.ZoneChip:   {X: float64(w/2 - 2), Y: 8, W: 4, H: 2},
	}

	seatW := (w - 4) / game.NumSeats
	quadW := seatW / 2
	top := float64(h - 13)
	for seat := 0; seat < game.NumSeats; seat++ {
		x := float64(2 + seat*seatW)
		// Quadrant order bl, br, tl, tr matches the hand index mapping.
		quads := []game.Rect{
			{X: x, Y: top + 4, W: float64(quadW), H: 4},
			{X: x + float64(quadW), Y: top + 4, W: float64(quadW), H: 4},
			{X: x, Y: top, W: float64(quadW), H: 4},
			{X: x + float64(quadW), Y: top, W: float64(quadW), H: 4},
		}
		for hand := 0; hand < game.MaxHands; hand++ {
			z[game.HandZone(seat, hand)] = quads[hand]
		}
		z[game.StatZone(seat)] = game.Rect{X: x, Y: top + 8, W: float64(seatW - 1), H: 2}
		z[game.BetZone(seat)] = game.Rect{X: x, Y: top + 10, W: float64(seatW - 1), H: 2}
	}
	return z
}
