package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/physim/gm"
	"github.com/oliverbestmann/physim/internal/config"
	"github.com/oliverbestmann/physim/physics"
)

const (
	blastRadius   = 150
	blastStrength = 400

	// number of ticks a ball stays highlighted after touching another ball
	flashTicks = 8

	// mass per unit of area
	density = 0.01

	// length of the velocity indicator per unit of speed
	velocityScale = 0.1
)

var (
	background = color.RGBA{R: 0x10, G: 0x12, B: 0x18, A: 0xff}
	ballColor  = color.RGBA{R: 0x4c, G: 0x99, B: 0xff, A: 0xff}
	flashColor = color.RGBA{R: 0xff, G: 0xcc, B: 0x33, A: 0xff}
)

type game struct {
	config config.Config
	world  *physics.World

	reload chan config.Config

	paused bool
	debug  bool

	flashes map[*physics.Body]int
}

func newGame(cfg config.Config) *game {
	g := &game{
		config:  cfg,
		reload:  make(chan config.Config, 1),
		flashes: map[*physics.Body]int{},
	}

	g.reset()

	return g
}

// Reload schedules a new config to be applied on the next tick.
// It is safe to call from any goroutine.
func (g *game) Reload(cfg config.Config) {
	for {
		select {
		case g.reload <- cfg:
			return

		default:
			// drop a pending config that was not applied yet
			select {
			case <-g.reload:
			default:
			}
		}
	}
}

func worldOptions(sim config.Simulation) physics.Options {
	return physics.Options{
		Gravity:    sim.Gravity,
		Elasticity: sim.Elasticity,
		Friction:   sim.Friction,
		Substeps:   sim.Substeps,
	}
}

// reset recreates the world and spawns all balls.
func (g *game) reset() {
	sim := g.config.Simulation

	g.world = physics.NewWorld(g.config.Bounds(), worldOptions(sim))
	clear(g.flashes)

	for range sim.Balls {
		radius := gm.RandomIn(sim.Radius.Min, sim.Radius.Max)
		position := gm.RandomVecIn(g.world.Bounds().Inset(radius))
		velocity := gm.RandomVec().Mul(sim.Speed)

		g.world.SpawnBall(position, velocity, radius, density*math.Pi*radius*radius)
	}

	slog.Debug("Spawned balls", slog.Int("count", sim.Balls))
}

func (g *game) apply(cfg config.Config) {
	previous := g.config
	g.config = cfg

	if cfg.Window.Title != previous.Window.Title {
		ebiten.SetWindowTitle(cfg.Window.Title)
	}

	if cfg.Window.VSync != previous.Window.VSync {
		ebiten.SetVsyncEnabled(cfg.Window.VSync)
	}

	if cfg.Simulation.TPS != previous.Simulation.TPS {
		ebiten.SetTPS(cfg.Simulation.TPS)
	}

	respawn := cfg.Window.Width != previous.Window.Width ||
		cfg.Window.Height != previous.Window.Height ||
		cfg.Simulation.Balls != previous.Simulation.Balls ||
		cfg.Simulation.Radius != previous.Simulation.Radius ||
		cfg.Simulation.Substeps != previous.Simulation.Substeps

	if respawn {
		ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
		g.reset()
	} else {
		g.world.SetGravity(cfg.Simulation.Gravity)
		g.world.SetMaterial(cfg.Simulation.Elasticity, cfg.Simulation.Friction)
	}

	slog.Info("Config reloaded", slog.Bool("respawn", respawn))
}

func (g *game) Update() error {
	select {
	case cfg := <-g.reload:
		g.apply(cfg)
	default:
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination

	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.reset()

	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused

	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.debug = !g.debug
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		center := gm.VecOf(float64FromInts(ebiten.CursorPosition()))
		pushed := g.world.ApplyBlast(center, blastRadius, blastStrength)
		slog.Debug("Blast", slog.String("center", center.String()), slog.Int("bodies", pushed))
	}

	if g.paused {
		return nil
	}

	g.world.Step(1 / float64(ebiten.TPS()))

	for body, ticks := range g.flashes {
		if ticks <= 1 {
			delete(g.flashes, body)
		} else {
			g.flashes[body] = ticks - 1
		}
	}

	for _, contact := range g.world.Contacts() {
		g.flashes[contact.A] = flashTicks
		g.flashes[contact.B] = flashTicks
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	if g.debug {
		g.world.DebugDraw(debugImage{Image: screen})
	} else {
		for _, body := range g.world.Bodies() {
			g.drawBody(screen, body)
		}
	}

	status := fmt.Sprintf("bodies: %d  energy: %.0f\ngravity: %s\nTPS: %0.1f  FPS: %0.1f",
		len(g.world.Bodies()),
		g.world.KineticEnergy(),
		g.world.Gravity(),
		ebiten.ActualTPS(),
		ebiten.ActualFPS(),
	)

	if g.paused {
		status += "\npaused"
	}

	ebitenutil.DebugPrint(screen, status)
}

func (g *game) drawBody(screen *ebiten.Image, body *physics.Body) {
	pos := body.Position()
	tip := pos.Add(body.Velocity().Mul(velocityScale))

	clr := ballColor
	if _, flashing := g.flashes[body]; flashing {
		clr = flashColor
	}

	vector.FillCircle(screen, float32(pos.X), float32(pos.Y), float32(body.Radius()), clr, true)
	vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(tip.X), float32(tip.Y), 1, color.White, true)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.Window.Width, g.config.Window.Height
}

func float64FromInts(x, y int) (float64, float64) {
	return float64(x), float64(y)
}
