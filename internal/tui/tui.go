// Package tui renders the blackjack table in the terminal and feeds human
// input back into the engine. It owns the tick loop: every frame message
// carries the elapsed time the engine's Step requires.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

// frameInterval is the animation tick rate.
const frameInterval = time.Second / 30

// frameMsg carries the wall-clock time of an animation tick.
type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model is the Bubble Tea model for the blackjack table.
type Model struct {
	cfg    *game.Config
	seed   int64
	logger *log.Logger

	// table is created on the first WindowSizeMsg, once a layout exists.
	table *game.Table

	betInput textinput.Model
	status   string
	statusAt time.Time

	lastFrame time.Time
	width     int
	height    int
	quitting  bool
}

// New creates a model for a table with the given config and seed.
func New(cfg *game.Config, seed int64, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("bet amount (%d-%d)", cfg.MinBet, cfg.MaxBet)
	ti.Prompt = "bet> "
	ti.PromptStyle = HelpStyle
	ti.CharLimit = 7
	ti.Width = 24
	ti.Focus()

	return &Model{
		cfg:      cfg,
		seed:     seed,
		logger:   logger.WithPrefix("tui"),
		betInput: ti,
	}
}

// Table exposes the underlying engine (tests drive it directly).
func (m *Model) Table() *game.Table { return m.table }

// Init starts the tick loop
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, frameTick())
}

// Update handles ticks, resizes and key input
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		zones := BuildZones(msg.Width, msg.Height)
		if m.table == nil {
			m.table = game.NewTable(m.cfg, zones, randutil.New(m.seed), m.logger)
		} else {
			m.table.SetZones(zones)
		}
		return m, nil

	case frameMsg:
		m.advance(time.Time(msg))
		if m.quitting {
			return m, tea.Quit
		}
		return m, frameTick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// advance feeds one tick's elapsed time into the engine.
func (m *Model) advance(now time.Time) {
	if m.table == nil {
		return
	}
	dt := 0.0
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame).Seconds()
	}
	// A backgrounded terminal can report a huge gap; cap it so cards glide
	// rather than teleport.
	if dt > 0.25 {
		dt = 0.25
	}
	m.lastFrame = now
	m.table.Step(dt)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	}
	if m.table == nil {
		return m, nil
	}

	switch m.table.Mode() {
	case game.ModeBet:
		if msg.Type == tea.KeyEnter {
			amount, err := strconv.Atoi(strings.TrimSpace(m.betInput.Value()))
			if err != nil {
				m.setStatus("enter a whole number of chips")
				return m, nil
			}
			if err := m.table.PlaceHumanBet(amount); err != nil {
				m.setStatus(err.Error())
				return m, nil
			}
			m.betInput.Reset()
			m.setStatus(fmt.Sprintf("bet %d placed", amount))
			return m, nil
		}
		var cmd tea.Cmd
		m.betInput, cmd = m.betInput.Update(msg)
		return m, cmd

	case game.ModeTurn:
		var action game.Action
		switch msg.String() {
		case "h":
			action = game.Hit
		case "s":
			action = game.Stand
		case "d":
			action = game.Double
		case "p":
			action = game.Split
		default:
			return m, nil
		}
		if err := m.table.ApplyHumanAction(action); err != nil {
			m.setStatus(err.Error())
		} else {
			m.setStatus(action.String())
		}
	}
	return m, nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusAt = time.Now()
}

// View paints the table surface, the status line, and the input/help line.
func (m *Model) View() string {
	if m.table == nil {
		return "dealing in..."
	}
	w, h := surfaceSize(m.width, m.height)
	c := newCanvas(w, h)

	m.drawZones(c)
	m.drawSeats(c)
	for _, obj := range m.table.DrawList() {
		text, style := glyphFor(obj.VisualKey())
		c.putAt(obj.Position(), text, style)
	}

	return c.String() + "\n" + m.statusLine(w) + "\n" + m.inputLine()
}

func (m *Model) drawZones(c *canvas) {
	zones := BuildZones(m.width, m.height)
	c.frame(zones[game.ZoneDeck], &FrameStyle)
	c.put(int(zones[game.ZoneDeck].X)+1, int(zones[game.ZoneDeck].Y), "SHOE", &LabelStyle)
	c.frame(zones[game.ZoneBurn], &FrameStyle)
	c.put(int(zones[game.ZoneBurn].X)+1, int(zones[game.ZoneBurn].Y), "BURN", &LabelStyle)
	c.frame(zones[game.ZoneDealer], &FrameStyle)
	c.put(int(zones[game.ZoneDealer].X)+1, int(zones[game.ZoneDealer].Y), "DEALER", &LabelStyle)
	for seat := 0; seat < game.NumSeats; seat++ {
		for hand := 0; hand < game.MaxHands; hand++ {
			c.frame(zones[game.HandZone(seat, hand)], &FrameStyle)
		}
	}
}

func (m *Model) drawSeats(c *canvas) {
	zones := BuildZones(m.width, m.height)
	turnSeat, _, turnActive := m.table.CurrentTurn()

	dealer := m.table.Dealer()
	dz := zones[game.ZoneDealer]
	if !dealer.Hand(0).Empty() {
		c.put(int(dz.X)+8, int(dz.Y), dealerSummary(dealer), &LabelStyle)
	}

	for _, seat := range m.table.Seats() {
		style := &LabelStyle
		if turnActive && seat.ID == turnSeat {
			style = &ActiveSeatStyle
		}
		stat := zones[game.StatZone(seat.ID)]
		c.put(int(stat.X), int(stat.Y), seatSummary(seat), style)
		bet := zones[game.BetZone(seat.ID)]
		if total := seat.TotalBet(); total > 0 {
			c.put(int(bet.X), int(bet.Y)+1, fmt.Sprintf("bet %d", total), &ChipStyle)
		}
	}
}

func dealerSummary(dealer *game.Seat) string {
	hand := dealer.Hand(0)
	for _, card := range hand.Cards {
		if card.FaceDown {
			// Never leak the hole card through the summary.
			return "showing ?"
		}
	}
	return fmt.Sprintf("showing %d", hand.Value())
}

func seatSummary(seat *game.Seat) string {
	name := fmt.Sprintf("bot %d", seat.ID)
	if seat.Role == game.RoleHuman {
		name = "you"
	}
	summary := fmt.Sprintf("%s  $%d", name, seat.Balance)
	if !seat.Hand(0).Empty() {
		summary += fmt.Sprintf("  [%d]", seat.Hand(0).Value())
	}
	return summary
}

func (m *Model) statusLine(w int) string {
	table := m.table
	// Round counts completed rounds; the one on the table is the next.
	line := fmt.Sprintf(" round %d  phase %s  shoe %d  house %+d",
		table.Round()+1, table.Phase(), table.ShoeRemaining(), table.HouseNet())
	if table.Stalled() {
		line += "  STALLED"
	}
	if m.status != "" && time.Since(m.statusAt) < 4*time.Second {
		line += "  |  " + m.status
	}
	if len(line) < w {
		line += strings.Repeat(" ", w-len(line))
	}
	return StatusStyle.Render(line)
}

func (m *Model) inputLine() string {
	switch m.table.Mode() {
	case game.ModeBet:
		return m.betInput.View()
	case game.ModeTurn:
		return HelpStyle.Render("your turn: [h]it  [s]tand  [d]ouble  s[p]lit")
	default:
		return HelpStyle.Render("q to quit")
	}
}

// glyphFor resolves a drawable's visual key to its on-screen text. The
// mapping is pure key lookup; the renderer never reaches into game state.
func glyphFor(key string) (string, *lipgloss.Style) {
	switch {
	case key == game.CardBackKey:
		if asciiOnly {
			return "[##]", &CardBackStyle
		}
		return "▒▒▒", &CardBackStyle
	case key == game.TurnChipKey:
		if asciiOnly {
			return "(*)", &ChipStyle
		}
		return "●", &ChipStyle
	case strings.HasPrefix(key, "chip_bet_"):
		if asciiOnly {
			return "(o)", &ChipStyle
		}
		return "◎", &ChipStyle
	default:
		if g, ok := cardGlyphs[key]; ok {
			return g.text, g.style
		}
		return "?", &LabelStyle
	}
}

type glyph struct {
	text  string
	style *lipgloss.Style
}

// cardGlyphs maps every card identity key to its display form, built once
// from the deck's own identity scheme.
var cardGlyphs = buildCardGlyphs()

func buildCardGlyphs() map[string]glyph {
	glyphs := make(map[string]glyph, deck.DeckSize)
	for _, suit := range deck.Suits {
		for _, rank := range deck.Ranks {
			card := deck.Card{Rank: rank, Suit: suit}
			style := &BlackCardStyle
			if suit.IsRed() {
				style = &RedCardStyle
			}
			text := card.String()
			if asciiOnly {
				text = rank.Short() + strings.ToUpper(suit.String()[:1])
			}
			glyphs[card.Key()] = glyph{text: text, style: style}
		}
	}
	return glyphs
}
