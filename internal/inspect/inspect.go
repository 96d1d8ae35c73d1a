// Package inspect is an interactive terminal tool for stepping through waves,
// showing each composition, its weights, and where the demons would land on
// the player's radar.
package inspect

import (
	"demon-waves/internal/config"
	"demon-waves/internal/demon"
	"demon-waves/internal/radar"
	"demon-waves/internal/render"
	"demon-waves/internal/spawn"
	"demon-waves/internal/wave"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	skipWaves = 10
	turnStep  = math.Pi / 12 // 15 degrees per key press
	maxLog    = 50
)

// Inspector is the top-level orchestrator of the tool.
type Inspector struct {
	screen    tcell.Screen
	renderer  *render.Renderer
	composer  *wave.Composer
	director  *spawn.Director
	radarCfg  radar.Config
	logger    *slog.Logger
	seed      int64
	firstWave int
	wave      int
	heading   float64 // radians clockwise from +Z
	messages  []string
	view      render.View
	seen      map[viewKey]render.View
	reseed    func() int64
}

// viewKey identifies one composed wave. A wave is composed once per key so
// observers see it once however often it is revisited.
type viewKey struct {
	seed int64
	wave int
}

// New builds an Inspector drawing on screen. The screen must already be
// initialized; Run finalizes it.
func New(screen tcell.Screen, cfg config.Config, catalog *demon.Catalog, composer *wave.Composer, logger *slog.Logger) (*Inspector, error) {
	director, err := spawn.NewDirector(catalog, cfg.Spawn.MinDistance, cfg.Spawn.MaxDistance)
	if err != nil {
		return nil, fmt.Errorf("inspector: %w", err)
	}
	in := &Inspector{
		screen:    screen,
		renderer:  render.NewRenderer(screen, catalog, cfg.Radar),
		composer:  composer,
		director:  director,
		radarCfg:  cfg.Radar,
		logger:    logger,
		seed:      cfg.Seed,
		firstWave: max(cfg.StartWave, 0),
		seen:      make(map[viewKey]render.View),
		reseed:    func() int64 { return time.Now().UnixNano() },
	}
	if in.seed == 0 {
		in.seed = in.reseed()
	}
	in.wave = in.firstWave
	in.recompose()
	return in, nil
}

// Run is the main loop. It returns when the user quits.
func (in *Inspector) Run() {
	defer in.screen.Fini()

	in.addMessage("←/→ step waves · PgUp/PgDn ±10 · r reroll · a/d turn · q quit")
	for {
		in.renderer.DrawFrame(in.view)
		in.renderer.DrawHUD(in.status(), in.messages)

		ev := in.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			in.screen.Sync()
			continue
		case *tcell.EventKey:
			if !in.apply(keyToAction(ev)) {
				return
			}
		case nil:
			return
		}
	}
}

// apply handles one action and reports whether the loop should continue.
func (in *Inspector) apply(action Action) bool {
	switch action {
	case ActionQuit:
		return false
	case ActionNextWave:
		in.setWave(in.wave + 1)
	case ActionPrevWave:
		in.setWave(in.wave - 1)
	case ActionSkipForward:
		in.setWave(in.wave + skipWaves)
	case ActionSkipBack:
		in.setWave(in.wave - skipWaves)
	case ActionFirstWave:
		in.setWave(in.firstWave)
	case ActionReroll:
		in.seed = in.reseed()
		in.addMessage(fmt.Sprintf("New seed %d.", in.seed))
		in.recompose()
	case ActionTurnLeft:
		in.turn(-turnStep)
	case ActionTurnRight:
		in.turn(turnStep)
	}
	return true
}

func (in *Inspector) setWave(n int) {
	n = max(n, 0)
	if n == in.wave {
		return
	}
	in.wave = n
	in.recompose()
}

func (in *Inspector) turn(delta float64) {
	in.heading = math.Mod(in.heading+delta+2*math.Pi, 2*math.Pi)
	in.view.Radar = in.project(in.view.Spawns)
}

// recompose rebuilds the view for the current wave. Each (seed, wave) pair
// has its own generator, so stepping back to a wave shows it unchanged.
func (in *Inspector) recompose() {
	key := viewKey{seed: in.seed, wave: in.wave}
	if v, ok := in.seen[key]; ok {
		v.Radar = in.project(v.Spawns)
		in.view = v
		return
	}

	rng := rand.New(rand.NewSource(in.seed*31 + int64(in.wave)))
	s := in.composer.Summarize(in.wave, rng)
	spawns := in.director.Place(radar.Point{}, s.Types, rng)

	in.view = render.View{
		Wave:       s.Wave,
		Seed:       in.seed,
		Types:      s.Types,
		Weights:    s.Weights,
		Reinforced: s.Reinforced,
		Spawns:     spawns,
		Radar:      in.project(spawns),
	}
	in.seen[key] = in.view
	in.logger.Debug("inspector showing wave", "wave", in.wave, "seed", in.seed, "count", s.Count)
}

func (in *Inspector) project(spawns []spawn.Spawn) radar.Frame {
	forward := radar.Point{X: math.Sin(in.heading), Z: math.Cos(in.heading)}
	return radar.Project(radar.Point{}, forward, spawn.Positions(spawns), in.radarCfg)
}

func (in *Inspector) status() string {
	deg := int(math.Round(in.heading * 180 / math.Pi))
	return fmt.Sprintf("wave %d  seed %d  heading %d°", in.wave, in.seed, deg)
}

func (in *Inspector) addMessage(msg string) {
	in.messages = append(in.messages, msg)
	if len(in.messages) > maxLog {
		in.messages = in.messages[len(in.messages)-maxLog:]
	}
}
