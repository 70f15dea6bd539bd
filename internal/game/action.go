package game

import "fmt"

// Action is a turn decision. The set is closed: every consumer switches
// exhaustively over it. Split is a recognized value with no executable
// branch yet; it stays in the taxonomy for future strategy work.
type Action int

const (
	Hit Action = iota
	Stand
	Split
	Double
)

// String returns the action name
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case Split:
		return "split"
	case Double:
		return "double"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Actions lists every recognized action value
var Actions = []Action{Hit, Stand, Split, Double}
