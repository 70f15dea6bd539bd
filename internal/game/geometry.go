package game

import (
	"fmt"
	"math"
)

// Point is a position on the abstract table surface. The renderer decides
// what one unit means (pixels, terminal cells); the engine only does vector
// arithmetic on them.
type Point struct {
	X, Y float64
}

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by f
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Len returns the euclidean length of p as a vector
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Unit returns the unit vector in the direction of p, or the zero point
// when p has no length.
func (p Point) Unit() Point {
	l := p.Len()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Rect is a named table region supplied by the layout collaborator.
type Rect struct {
	X, Y, W, H float64
}

// TopLeft returns the rect's origin
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// Center returns the rect's center point
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Zone names the engine looks up. The layout collaborator must supply every
// name the current table shape needs; a missing name is a contract violation
// and panics.
const (
	ZoneDeck   = "deck"
	ZoneBurn   = "burn"
	ZoneDealer = "dealer"
	ZoneChip   = "chip"
)

// handQuads maps a hand index to its quadrant within the seat zone.
var handQuads = [MaxHands]string{"bl", "br", "tl", "tr"}

// HandZone returns the zone name for a seat's hand slot, e.g. "hand_bl_2".
func HandZone(seat, hand int) string {
	if hand < 0 || hand >= MaxHands {
		panic(fmt.Sprintf("game: hand index %d out of range", hand))
	}
	return fmt.Sprintf("hand_%s_%d", handQuads[hand], seat)
}

// BetZone returns the zone name for a seat's bet strip
func BetZone(seat int) string {
	return fmt.Sprintf("bet_%d", seat)
}

// StatZone returns the zone name for a seat's status strip
func StatZone(seat int) string {
	return fmt.Sprintf("stat_%d", seat)
}

// Zones is the named-region lookup the layout collaborator provides.
type Zones map[string]Rect

// get resolves a zone by name, panicking when the layout contract is broken.
func (z Zones) get(name string) Rect {
	r, ok := z[name]
	if !ok {
		panic(fmt.Sprintf("game: layout is missing zone %q", name))
	}
	return r
}
