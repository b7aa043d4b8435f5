// Package config holds the run configuration: field size, frame interval and the view.
// Values come from the defaults, an optional TOML file and the command line, in this order.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"pong/src/arena"
)

const (
	ViewCanvas   = "canvas"
	ViewTerminal = "terminal"
	ViewConsole  = "console"
)

//Views lists the supported views
var Views = []string{ViewCanvas, ViewTerminal, ViewConsole}

var ErrInvalidConfig = errors.New("invalid config")

//Duration is a time.Duration read from strings like "16ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Config struct {
	Width    int      `toml:"width"`
	Height   int      `toml:"height"`
	Interval Duration `toml:"interval"`
	MaxSteps int      `toml:"max_steps"`
	View     string   `toml:"view"`
	Seed     int64    `toml:"seed"`
}

//Default returns the built-in configuration
func Default() Config {
	return Config{
		Width:    arena.DefWidth,
		Height:   arena.DefHeight,
		Interval: Duration{arena.DefFrameInterval},
		View:     ViewCanvas,
	}
}

//Load reads the TOML file on top of the defaults
//unknown keys are rejected
func Load(path string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, errors.Wrapf(err, "can't read config %q", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return c, errors.Wrapf(ErrInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	return c, nil
}

//Merge returns c with the non-zero fields of o applied
func (c Config) Merge(o Config) Config {
	if o.Width != 0 {
		c.Width = o.Width
	}
	if o.Height != 0 {
		c.Height = o.Height
	}
	if o.Interval.Duration != 0 {
		c.Interval = o.Interval
	}
	if o.MaxSteps != 0 {
		c.MaxSteps = o.MaxSteps
	}
	if o.View != "" {
		c.View = o.View
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	return c
}

//Validate checks the values before the arena is created
func (c Config) Validate() error {
	if c.Interval.Duration < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative interval %v", c.Interval)
	}
	if c.MaxSteps < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative max steps %v", c.MaxSteps)
	}
	known := false
	for _, v := range Views {
		known = known || v == c.View
	}
	if !known {
		return errors.Wrapf(ErrInvalidConfig, "unknown view %q", c.View)
	}
	o := c.ArenaOptions()
	return arena.Field{Width: o.Width, Height: o.Height}.Validate()
}

//ArenaOptions converts the config to the arena options
func (c Config) ArenaOptions() *arena.Options {
	return &arena.Options{
		Width:    float64(c.Width),
		Height:   float64(c.Height),
		Interval: c.Interval.Duration,
		MaxSteps: c.MaxSteps,
		Seed:     c.Seed,
	}
}
