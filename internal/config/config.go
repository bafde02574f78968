package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/oliverbestmann/physim/gm"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Window     Window     `yaml:"window"`
	Simulation Simulation `yaml:"simulation"`
}

type Window struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	VSync     bool   `yaml:"vsync"`
	Resizable bool   `yaml:"resizable"`
}

type Simulation struct {
	// Gravity in units per second squared. The y axis points down.
	Gravity gm.Vec2 `yaml:"gravity"`

	// Balls is the number of bodies spawned at startup.
	Balls int `yaml:"balls"`

	Radius Range `yaml:"radius"`

	// Speed is the maximum initial speed of a ball.
	Speed float64 `yaml:"speed"`

	Elasticity float64 `yaml:"elasticity"`
	Friction   float64 `yaml:"friction"`

	// TPS is the number of simulation ticks per second.
	TPS      int `yaml:"tps"`
	Substeps int `yaml:"substeps"`
}

type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	return Config{
		Window: Window{
			Title:  "Physics Sim",
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Simulation: Simulation{
			Gravity:    gm.VecOf(0, 300),
			Balls:      40,
			Radius:     Range{Min: 6, Max: 18},
			Speed:      150,
			Elasticity: 0.9,
			Friction:   0.2,
			TPS:        60,
			Substeps:   4,
		},
	}
}

// Load reads the yaml file at path. Values missing in
// the file keep their default value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}

	config, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}

	return config, nil
}

func Parse(data []byte) (Config, error) {
	config := Default()

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate reports all problems of the config at once. The returned
// error matches ErrInvalidConfig using errors.Is.
func (c Config) Validate() error {
	var errs []error

	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0, "window.width must be positive, got %d", c.Window.Width)
	check(c.Window.Height > 0, "window.height must be positive, got %d", c.Window.Height)

	sim := c.Simulation
	check(sim.Balls >= 0, "simulation.balls must not be negative, got %d", sim.Balls)
	check(sim.Radius.Min > 0, "simulation.radius.min must be positive, got %v", sim.Radius.Min)
	check(sim.Radius.Max >= sim.Radius.Min, "simulation.radius.max must not be less than min, got %v", sim.Radius.Max)
	check(sim.Speed >= 0, "simulation.speed must not be negative, got %v", sim.Speed)
	check(sim.Elasticity >= 0, "simulation.elasticity must not be negative, got %v", sim.Elasticity)
	check(sim.Friction >= 0, "simulation.friction must not be negative, got %v", sim.Friction)
	check(sim.TPS > 0, "simulation.tps must be positive, got %d", sim.TPS)
	check(sim.Substeps > 0, "simulation.substeps must be positive, got %d", sim.Substeps)

	// the largest ball must fit into the window
	size := min(c.Window.Width, c.Window.Height)
	check(sim.Radius.Max*2 < float64(size), "simulation.radius.max %v does not fit into the window", sim.Radius.Max)

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Bounds returns the rectangle covered by the window in simulation coordinates.
func (c Config) Bounds() gm.Rect {
	return gm.RectWithSize(gm.VecOf(float64(c.Window.Width), float64(c.Window.Height)))
}
