package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hourglass/audio"
	"github.com/lixenwraith/hourglass/config"
	"github.com/lixenwraith/hourglass/engine"
	"github.com/lixenwraith/hourglass/event"
	"github.com/lixenwraith/hourglass/hourglass"
	"github.com/lixenwraith/hourglass/input"
	"github.com/lixenwraith/hourglass/parameter"
	"github.com/lixenwraith/hourglass/render"
	"github.com/lixenwraith/hourglass/system"
)

var (
	configFlag   = flag.String("config", "", "Path to TOML settings file")
	durationFlag = flag.Float64("duration", 0, "Countdown length in seconds (overrides config)")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/hourglass.log")
	muteFlag     = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hourglass: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *durationFlag > 0 {
		cfg.Duration = *durationFlag
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mHOURGLASS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	world := engine.NewWorld(cfg.Duration, hourglass.NewSimBuilder())
	keymap := input.DefaultKeymap()
	if err := cfg.Apply(&world.Resource, keymap); err != nil {
		return err
	}

	// Audio is optional; failure leaves the player nil
	if cfg.Sound {
		sm := audio.NewSoundManager(*muteFlag)
		if err := sm.Initialize(); err != nil {
			log.Printf("audio: %v, continuing without sound", err)
		} else {
			world.Resource.Audio = sm
			defer sm.Close()
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	world.AddSystem(system.NewGestureSystem(world))
	world.AddSystem(system.NewTimerSystem(world))
	world.AddSystem(system.NewFlipGuardSystem(world))
	world.AddSystem(system.NewColorSystem(world, rng))
	world.AddSystem(system.NewShapeSystem(world))
	world.AddSystem(system.NewChamberSystem(world))
	world.AddSystem(system.NewAnimationSystem(world))
	world.AddSystem(system.NewAudioSystem(world))

	renderer := render.NewTerminalRenderer(screen)
	world.AddHandler(renderer)
	renderer.Layout(world)

	if cfg.ColorMode == engine.ColorRandom {
		world.PushEvent(event.EventColorRandom, nil)
	}

	// Input goroutine only produces events; the frame loop owns all state
	quit := make(chan struct{})
	go pollInput(screen, keymap, world.Resource.Events, quit)

	frames := engine.NewFrameClock(engine.NewMonotonicTimeProvider())
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			elapsed, delta := frames.Next()
			for _, ev := range world.Tick(elapsed, delta) {
				if ev.Type == event.EventQuit {
					log.Printf("quit requested")
					return nil
				}
			}
			renderer.Layout(world)
			renderer.RenderFrame(world)
		}
	}
}

// pollInput converts terminal events into queued game events until the screen closes
func pollInput(screen tcell.Screen, keymap *input.Keymap, q *event.EventQueue, quit chan<- struct{}) {
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	tracker := input.NewTracker()
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			close(quit)
			return
		case *tcell.EventKey:
			keymap.Dispatch(ev, q)
		case *tcell.EventMouse:
			tracker.Dispatch(ev, q)
		case *tcell.EventResize:
			w, h := ev.Size()
			q.Push(event.GameEvent{Type: event.EventResize, Payload: &event.ResizePayload{Width: w, Height: h}})
			screen.Sync()
		}
	}
}
