package main

import (
	"log"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"pong/src/arena"
	"pong/src/config"
	"pong/src/view"
	"pong/src/view/canvas"
)

var (
	views = map[string]func() arena.Viewer{
		config.ViewCanvas:   func() arena.Viewer { return canvas.NewCanvas("Pong") },
		config.ViewTerminal: func() arena.Viewer { return view.NewViewTerminal() },
		config.ViewConsole:  func() arena.Viewer { return view.NewConsoleOut(nil) },
	}
)

func main() {
	cfg := initOptions()

	var stateCh chan arena.Status
	if cfg.View == config.ViewConsole {
		stateCh = make(chan arena.Status, 10) //the buffered channel to getting the arena status
	}

	a, err := arena.NewBaseArena(cfg.ArenaOptions(), stateCh)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	v := views[cfg.View]()
	a.RegisterViewer(v)

	switch cfg.View {
	case config.ViewCanvas:
		// the window drives the frames
		v.Start()
	case config.ViewTerminal:
		a.Run()
		v.Start()
	case config.ViewConsole:
		out := v.(*view.ConsoleOut)
		out.Start()
		a.Run()
		for st := range stateCh {
			if st.RunningMode == arena.RunningStateFinished {
				out.Summary(st)
				break
			}
		}
	}
}

func initOptions() config.Config {
	var (
		flags      config.Config
		interval   time.Duration
		configPath string
	)
	flaggy.SetName("pong")
	flaggy.SetDescription("Pong: the left paddle follows the pointer, the right one is played by the computer")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&configPath, "c", "config", "Path to the TOML config file")
	flaggy.Int(&flags.Width, "x", "width", "Width of the field")
	flaggy.Int(&flags.Height, "y", "height", "Height of the field")
	flaggy.Duration(&interval, "i", "interval", "Interval between the frames in format the number with 'ms' suffix, for example 16ms")
	flaggy.Int(&flags.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps frames, 0 runs forever")
	flaggy.Int64(&flags.Seed, "r", "seed", "Seed for the serve directions, 0 takes the clock")
	flaggy.String(&flags.View, "v", "view", "View to use ["+strings.Join(config.Views, "|")+"]")

	flaggy.Parse()
	flags.Interval = config.Duration{Duration: interval}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			flaggy.ShowHelpAndExit(err.Error())
		}
	}
	cfg = cfg.Merge(flags)

	if err := cfg.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	if cfg.View == config.ViewConsole && cfg.MaxSteps == 0 {
		flaggy.ShowHelpAndExit("the console view needs --maxSteps")
	}

	return cfg
}
