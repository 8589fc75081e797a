package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-rockets/internal/config"
	"github.com/vovakirdan/tui-rockets/internal/core"
	"github.com/vovakirdan/tui-rockets/internal/games/rockets"
	"github.com/vovakirdan/tui-rockets/internal/registry"
	"github.com/vovakirdan/tui-rockets/internal/storage"
)

// lowFuelConfig makes rockets games end after one boosted tick.
func lowFuelConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cfg := config.DefaultRocketsConfig()
	cfg.Difficulty.Enabled = false
	cfg.Physics.InitialFuel = 1
	cfg.FuelCells.DriftSpeed = 0

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "rockets.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	rockets.SetConfigPath(path)
	t.Cleanup(func() { rockets.SetConfigPath("") })
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20, Seed: 7}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelReservesHelpRow(t *testing.T) {
	lowFuelConfig(t)
	game, err := registry.Create("rockets")
	if err != nil {
		t.Fatal(err)
	}

	m := NewModel(game, nil, testRuntime(), Options{})
	if m.screen.Height() != 24-helpHeight {
		t.Errorf("screen height = %d, expected %d", m.screen.Height(), 24-helpHeight)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	if m.screen.Width() != 60 || m.screen.Height() != 30-helpHeight {
		t.Errorf("resized screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelSavesRunOnGameOver(t *testing.T) {
	lowFuelConfig(t)
	store := openStore(t)
	game, err := registry.Create("rockets")
	if err != nil {
		t.Fatal(err)
	}

	m := NewModel(game, store, testRuntime(), Options{Player: "alice"})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, TickMsg{})
	if !m.gameState.GameOver {
		t.Fatal("game not over after spending the last fuel unit")
	}

	// A second tick must not record the run twice.
	m = update(t, m, TickMsg{})

	runs, err := store.RecentRuns("rockets", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, expected 1", len(runs))
	}
	if runs[0].Player != "alice" || runs[0].Ticks != 1 {
		t.Errorf("run = %+v, expected alice after 1 tick", runs[0])
	}

	// Zero scores are not ranked.
	scores, err := store.TopScores("rockets", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 0 {
		t.Errorf("got %d scores, expected none", len(scores))
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	lowFuelConfig(t)
	game, err := registry.Create("rockets")
	if err != nil {
		t.Fatal(err)
	}

	m := NewModel(game, nil, testRuntime(), Options{})
	m.Init()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, TickMsg{})
	if !m.gameState.GameOver {
		t.Fatal("expected game over")
	}

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if m.gameState.GameOver {
		t.Error("restart did not start a new run")
	}
	if m.scoreSaved {
		t.Error("saved flag not cleared on restart")
	}
}

func TestModelBackOnlyWhenMenuAllowed(t *testing.T) {
	lowFuelConfig(t)
	game, err := registry.Create("rockets")
	if err != nil {
		t.Fatal(err)
	}

	m := NewModel(game, nil, testRuntime(), Options{})
	m.Init()
	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("back honored without a menu")
	}

	game, _ = registry.Create("rockets")
	m = NewModel(game, nil, testRuntime(), Options{Menu: true})
	m.Init()
	m = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("back honored while playing")
	}
	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back ignored while paused")
	}
}

func TestModelQuit(t *testing.T) {
	lowFuelConfig(t)
	game, err := registry.Create("rockets_duel")
	if err != nil {
		t.Fatal(err)
	}

	m := NewModel(game, nil, testRuntime(), Options{})
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() {
		t.Error("q did not quit")
	}
	if cmd == nil {
		t.Error("quit returned no command")
	}
	if next.View() != "" {
		t.Error("view not empty after quit")
	}
}
