package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	cfg := game.DefaultConfig()
	m := New(cfg, 42, log.New(io.Discard))
	model, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 48})
	require.NotNil(t, model.(*Model).Table())
	return model.(*Model)
}

// pump runs n animation frames a quarter second apart.
func pump(m *Model, n int) {
	now := time.Now()
	for i := 0; i < n; i++ {
		now = now.Add(250 * time.Millisecond)
		m.Update(frameMsg(now))
	}
}

func TestWindowSizeCreatesTable(t *testing.T) {
	m := testModel(t)
	assert.Equal(t, game.PhaseInitial, m.Table().Phase())
}

func TestBetEntryAdvancesToDeal(t *testing.T) {
	m := testModel(t)

	pump(m, 50)
	require.Equal(t, game.ModeBet, m.Table().Mode())

	for _, r := range "500" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	pump(m, 2)
	assert.Equal(t, game.PhaseDeal, m.Table().Phase())
}

func TestBetRejectsGarbage(t *testing.T) {
	m := testModel(t)
	pump(m, 50)
	require.Equal(t, game.ModeBet, m.Table().Mode())

	for _, r := range "lots" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, game.PhaseBet, m.Table().Phase())
	assert.NotEmpty(t, m.status)
}

func TestQuitKey(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewRendersBeforeResize(t *testing.T) {
	m := New(game.DefaultConfig(), 1, log.New(io.Discard))
	assert.NotEmpty(t, m.View())
}

func TestViewRendersTable(t *testing.T) {
	m := testModel(t)
	pump(m, 50)
	out := m.View()
	assert.Contains(t, out, "SHOE")
	assert.Contains(t, out, "DEALER")
	assert.Contains(t, out, "round 1")
}

func TestCardGlyphsCoverDeck(t *testing.T) {
	assert.Len(t, cardGlyphs, deck.DeckSize)
	for _, suit := range deck.Suits {
		for _, rank := range deck.Ranks {
			card := deck.Card{Rank: rank, Suit: suit}
			text, style := glyphFor(card.Key())
			assert.NotEqual(t, "?", text, "missing glyph for %s", card.Key())
			if suit.IsRed() {
				assert.Equal(t, &RedCardStyle, style)
			} else {
				assert.Equal(t, &BlackCardStyle, style)
			}
		}
	}
}

func TestGlyphForChips(t *testing.T) {
	text, style := glyphFor(game.TurnChipKey)
	assert.NotEmpty(t, text)
	assert.Equal(t, &ChipStyle, style)

	text, style = glyphFor(game.BetChipKey(2))
	assert.NotEmpty(t, text)
	assert.Equal(t, &ChipStyle, style)

	text, _ = glyphFor("not_a_real_key")
	assert.Equal(t, "?", text)
}

func TestBuildZonesSatisfiesTableContract(t *testing.T) {
	zones := BuildZones(160, 48)
	for _, name := range []string{game.ZoneDeck, game.ZoneBurn, game.ZoneDealer, game.ZoneChip} {
		assert.Contains(t, zones, name)
	}
	for seat := 0; seat < game.NumSeats; seat++ {
		assert.Contains(t, zones, game.StatZone(seat))
		assert.Contains(t, zones, game.BetZone(seat))
		for hand := 0; hand < game.MaxHands; hand++ {
			assert.Contains(t, zones, game.HandZone(seat, hand))
		}
	}
}

func TestBuildZonesClampsTinyTerminal(t *testing.T) {
	zones := BuildZones(10, 5)
	w, h := surfaceSize(10, 5)
	assert.GreaterOrEqual(t, w, minWidth)
	assert.GreaterOrEqual(t, h, minHeight-3)
	assert.Contains(t, zones, game.ZoneDealer)
}

func TestCanvasClipsOutOfBounds(t *testing.T) {
	c := newCanvas(10, 4)
	c.put(-2, 1, "hello", &LabelStyle)
	c.put(8, 1, "world", &LabelStyle)
	c.put(0, 99, "nope", &LabelStyle)
	assert.NotPanics(t, func() { _ = c.String() })
}
