package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/modes"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/score"
)

var (
	configFlag      = flag.String("config", "", "Path to config file (default: user config dir)")
	debugFlag       = flag.Bool("debug", false, "Write debug log to logs/vi-snake.log")
	difficultyFlag  = flag.String("difficulty", "", "Starting difficulty: easy, medium, hard")
	noSoundFlag     = flag.Bool("no-sound", false, "Disable audio")
	noPersistFlag   = flag.Bool("no-persist", false, "Keep the high score in memory only")
	writeConfigFlag = flag.Bool("write-config", false, "Write the effective config file and exit")
)

var _ engine.ScoreKeeper = (*score.Bridge)(nil)

func main() {
	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	configPath := *configFlag
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
		cfg = config.Default()
	}
	if *difficultyFlag != "" {
		cfg.Difficulty = *difficultyFlag
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
	}
	if *noSoundFlag {
		cfg.Sound = false
	}

	if *writeConfigFlag {
		if err := cfg.Write(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Printf("config written to %s\n", configPath)
		return
	}

	// High score persistence
	var store score.Store
	if *noPersistFlag {
		store = score.NewMemoryStore(0)
	} else {
		store = score.NewFileStore(cfg.HighScorePath)
	}
	scores := score.NewBridge(store)

	game := engine.NewGame(engine.Config{
		Difficulty: cfg.DifficultyLevel(),
		Scores:     scores,
	})

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	core.SetCrashScreen(screen)
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbText))
	screen.HideCursor()
	screen.Clear()

	// Audio is optional; the game runs silently when the device is unavailable
	sound := audio.NewSoundManager(audio.NewAudioConfig(cfg.Sound, cfg.MasterVolume))
	if err := sound.Initialize(); err != nil {
		log.Printf("audio unavailable: %v", err)
	} else {
		defer sound.Cleanup()
	}

	loop := &frameLoop{
		game:      game,
		particles: render.NewParticleSystem(nil),
		sound:     sound,
		renderer:  render.NewTerminalRenderer(screen),
	}
	handler := modes.NewInputHandler(game, screen, nil, sound)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, 64)
	core.Go(func() { pollEvents(screen, events) })

	driver := engine.NewDriver[tcell.Event](cfg.FrameInterval(), events)
	if err := driver.Run(ctx, handler.HandleEvent, loop.frame); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("driver: %v", err)
	}

	log.Printf("exit after %d frames, high score %d", driver.Frames(), scores.HighScore())
}

// pollEvents feeds terminal events to the driver until the screen is finalized
func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	defer close(events)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}
