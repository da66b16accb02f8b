// Command glimmer renders the interactive particle page in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glimmer/audio"
	"github.com/lixenwraith/glimmer/config"
	"github.com/lixenwraith/glimmer/core"
	"github.com/lixenwraith/glimmer/parameter"
	"github.com/lixenwraith/glimmer/render"
	"github.com/lixenwraith/glimmer/scene"
	"github.com/lixenwraith/glimmer/service"
)

var (
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/glimmer.log")
	configFlag  = flag.String("config", "", "TOML configuration file")
	envFlag     = flag.String("env", ".env", "dotenv file")
	seedFlag    = flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	markersFlag = flag.Int("markers", 0, "Trail marker count override")
	soundFlag   = flag.Bool("sound", false, "Start with sound enabled")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Effects.Seed = *seedFlag
	}
	if *markersFlag > 0 {
		cfg.Effects.Markers = *markersFlag
	}
	if *soundFlag {
		cfg.Audio.Enabled = true
	}
	palette, err := cfg.ParticlePalette()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	edge, err := cfg.Edge()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	hub := service.NewHub()
	audioSvc := audio.NewService(cfg.AudioSettings())
	if err := hub.Register(audioSvc, !cfg.Audio.Enabled); err != nil {
		log.Printf("register audio: %v", err)
	}
	if err := hub.InitAll(); err != nil {
		log.Printf("services init: %v", err)
	} else if err := hub.StartAll(); err != nil {
		log.Printf("services start: %v", err)
	}
	defer hub.StopAll()

	orchestrator := render.NewOrchestrator(screen, float64(cfg.Effects.CellWidth), float64(cfg.Effects.CellHeight))
	opts := scene.Options{
		Markers:   cfg.Effects.Markers,
		Palette:   palette,
		EdgeColor: edge,
		Tagline:   cfg.Effects.Tagline,
		Seed:      cfg.Effects.Seed,
	}
	if player := audioSvc.Player(); player != nil {
		opts.Sound = player
	}
	sc := scene.New(orchestrator.Surface(), opts)
	sc.Register(orchestrator)

	run(screen, orchestrator, sc, cfg.FrameInterval())
}

// run is the redraw loop: events and ticks share this goroutine
func run(screen tcell.Screen, orchestrator *render.Orchestrator, sc *scene.Scene, interval time.Duration) {
	eventChan := make(chan tcell.Event, parameter.EventQueueSize)
	quit := make(chan struct{})
	defer close(quit)

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	})

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case ev := <-eventChan:
			if resize, ok := ev.(*tcell.EventResize); ok {
				orchestrator.Resize(resize.Size())
			}
			if !sc.HandleEvent(ev) {
				return
			}

		case <-ticker.C:
			frameStart := time.Now()
			sc.Tick(float64(frameStart.Sub(start).Microseconds()) / 1000)
			orchestrator.RenderFrame()
			if elapsed := time.Since(frameStart); elapsed > parameter.FrameBudget {
				log.Printf("frame over budget: %v", elapsed)
			}
		}
	}
}
