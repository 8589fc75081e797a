// Package rockets is the playable game built on the particle simulation.
// Players steer fuel-limited rockets around a walled arena and collect
// drifting fuel cells before their tanks run dry.
package rockets

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rockets/internal/config"
	"github.com/vovakirdan/tui-rockets/internal/core"
	"github.com/vovakirdan/tui-rockets/internal/event"
	"github.com/vovakirdan/tui-rockets/internal/particle"
	"github.com/vovakirdan/tui-rockets/internal/registry"
	"github.com/vovakirdan/tui-rockets/internal/scene"
	"github.com/vovakirdan/tui-rockets/internal/sim"
	"github.com/vovakirdan/tui-rockets/internal/spatial"
)

// GameState constants
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// Mode selects how many rockets are in play.
type Mode int

const (
	ModeSolo Mode = iota
	ModeDuel
)

// Minimum terminal size for a playable arena.
const (
	MinScreenW = 20
	MinScreenH = 10
)

// playerColors are the rocket colors by player slot.
var playerColors = []core.Color{core.ColorBrightCyan, core.ColorBrightMagenta}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes game logging. A nil logger is ignored.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements registry.Game on top of sim.Sim.
type Game struct {
	mode Mode

	sim       *sim.Sim
	rocketIDs []particle.ID // Player slot -> rocket id; rockets occupy the first scene slots
	lastDraw  []scene.Cell
	respawns  []int // Ticks until each pending fuel cell returns

	state         string
	scores        []int
	fuelCollected int
	tickCount     int

	runtime    core.RuntimeConfig
	cfg        config.RocketsConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	arena          core.Rect // Arena position on screen, border included
	screenTooSmall bool
}

// New creates a single-player game.
func New() *Game {
	return &Game{mode: ModeSolo}
}

// NewDuel creates a two-player game on one keyboard.
func NewDuel() *Game {
	return &Game{mode: ModeDuel}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeDuel {
		return "rockets_duel"
	}
	return "rockets"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeDuel {
		return "Rockets (Duel)"
	}
	return "Rockets"
}

// Players returns the number of rockets in play.
func (g *Game) Players() int {
	if g.mode == ModeDuel {
		return 2
	}
	return 1
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRockets(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultRocketsConfig()
	}

	if difficultyPreset != "" {
		config.ApplyRocketsPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness, not security

	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
	g.calculateLayout()

	g.state = StatePlaying
	g.scores = make([]int, g.Players())
	g.fuelCollected = 0
	g.tickCount = 0
	g.respawns = nil
	g.rocketIDs = nil

	g.sim = sim.New(g.arena.W, g.arena.H)
	g.spawnRockets()
	for range g.cfg.FuelCells.Count {
		g.spawnFuelCell()
	}
	g.lastDraw = g.sim.Frame().Cells

	logger.Debug("game reset", "mode", g.ID(), "arena", g.arena, "seed", runtime.Seed,
		"progression", g.difficulty.IsEnabled())
}

// calculateLayout sizes the arena below the HUD row. A configured arena size
// is honored up to the screen size and centered horizontally.
func (g *Game) calculateLayout() {
	w := g.runtime.ScreenW
	h := g.runtime.ScreenH - 1

	if g.cfg.Arena.Width > 0 {
		w = core.Min(g.cfg.Arena.Width, w)
	}
	if g.cfg.Arena.Height > 0 {
		h = core.Min(g.cfg.Arena.Height, h)
	}
	w = core.Max(w, 3)
	h = core.Max(h, 3)

	g.arena = core.NewRect((g.runtime.ScreenW-w)/2, 1, w, h)
}

func (g *Game) spawnRockets() {
	velCap := spatial.C(g.cfg.Physics.VelocityCap, g.cfg.Physics.VelocityCap)

	for slot := range g.Players() {
		x := g.arena.W * (slot + 1) / (g.Players() + 1)
		at := spatial.Cell(core.Clamp(x, 1, g.arena.W-2), g.arena.H/2)

		p := particle.NewRocket(spatial.FromCell(at), spatial.Coordinate{}, g.cfg.Physics.InitialFuel)
		p.VelocityCap = velCap
		p.Color = playerColors[slot%len(playerColors)]

		g.rocketIDs = append(g.rocketIDs, g.sim.Scene().Add(p))
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State(), Tick: g.sim.TickCount()}
	}

	res := g.sim.Tick(g.boosts(in))
	g.tickCount++
	g.lastDraw = res.Draw

	g.applyEvents(res.Events)
	g.tickRespawns()

	if g.allOutOfFuel() {
		g.state = StateGameOver
		logger.Info("game over", "mode", g.ID(), "score", g.totalScore(),
			"fuel_collected", g.fuelCollected, "ticks", g.tickCount)
	}

	return core.StepResult{State: g.State(), Tick: res.Tick}
}

// applyEvents acts on refuel events. Slot indices are turned into ids first,
// so removing a fuel cell cannot misdirect a later event in the same batch.
func (g *Game) applyEvents(events []event.GameEvent) {
	type pair struct{ rocket, fuel particle.ID }

	sc := g.sim.Scene()
	pairs := make([]pair, 0, len(events))
	for _, ev := range events {
		switch ev := ev.(type) {
		case event.RefuelEvent:
			r, f := sc.At(ev.RocketIdx), sc.At(ev.FuelCellIdx)
			if r == nil || f == nil {
				continue
			}
			pairs = append(pairs, pair{rocket: r.ID, fuel: f.ID})
		}
	}

	for _, p := range pairs {
		ri, okR := sc.IndexOf(p.rocket)
		if _, okF := sc.IndexOf(p.fuel); !okR || !okF {
			continue
		}

		amount := g.difficulty.RefuelAmount(g.cfg.FuelCells.RefuelAmount, g.totalScore(), g.tickCount)
		added := sc.At(ri).AddFuel(amount)
		sc.RemoveID(p.fuel)

		player := g.playerOf(p.rocket)
		if player >= 0 {
			g.scores[player]++
		}
		g.fuelCollected++

		delay := g.difficulty.RespawnDelay(g.cfg.FuelCells.RespawnDelay, g.totalScore(), g.tickCount)
		g.respawns = append(g.respawns, delay)

		logger.Debug("refuel", "player", player+1, "added", added, "respawn_in", delay)
	}
}

// tickRespawns counts down pending fuel cells and spawns those that are due.
func (g *Game) tickRespawns() {
	pending := g.respawns[:0]
	for _, left := range g.respawns {
		left--
		if left <= 0 {
			g.spawnFuelCell()
			continue
		}
		pending = append(pending, left)
	}
	g.respawns = pending
}

func (g *Game) playerOf(id particle.ID) int {
	for slot, rid := range g.rocketIDs {
		if rid == id {
			return slot
		}
	}
	return -1
}

func (g *Game) allOutOfFuel() bool {
	sc := g.sim.Scene()
	for _, id := range g.rocketIDs {
		if idx, ok := sc.IndexOf(id); ok && sc.At(idx).Fuel > 0 {
			return false
		}
	}
	return true
}

func (g *Game) totalScore() int {
	total := 0
	for _, s := range g.scores {
		total += s
	}
	return total
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.totalScore(),
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// RunSummary reports the finished run for the run log.
func (g *Game) RunSummary() registry.RunSummary {
	return registry.RunSummary{
		Players:       g.Players(),
		FuelCollected: g.fuelCollected,
		Ticks:         g.tickCount,
	}
}

// Fuel returns the fuel of the rocket in the given player slot.
func (g *Game) Fuel(player int) int {
	if player < 0 || player >= len(g.rocketIDs) {
		return 0
	}
	sc := g.sim.Scene()
	if idx, ok := sc.IndexOf(g.rocketIDs[player]); ok {
		return sc.At(idx).Fuel
	}
	return 0
}

func init() {
	registry.Register("rockets", func() registry.Game {
		return New()
	})
	registry.Register("rockets_duel", func() registry.Game {
		return NewDuel()
	})
}
