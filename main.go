package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"overworld/internal/audio"
	"overworld/internal/clock"
	"overworld/internal/config"
	"overworld/internal/scene"
	"overworld/internal/worlds"
)

const defaultLogFile = "overworld.log"

var (
	worldsFlag = flag.String("worlds", "", "Worlds YAML file (built-in worlds if empty)")
	tuningFlag = flag.String("tuning", "", "Tuning YAML file (built-in physics if empty)")
	worldFlag  = flag.String("world", "", "World id to preselect in the menu")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	debugFlag  = flag.Bool("debug", false, "Write a debug log")
	logFlag    = flag.String("log", defaultLogFile, "Debug log path, used with -debug")
)

// setupLogging returns the game logger. When disabled everything is
// discarded since stdout belongs to the screen.
func setupLogging(enabled bool, path string) (*log.Logger, io.Closer, error) {
	if !enabled {
		return log.New(io.Discard, "", 0), io.NopCloser(nil), nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	return log.New(f, "[overworld] ", log.LstdFlags|log.Lmicroseconds), f, nil
}

type app struct {
	screen tcell.Screen
	game   *scene.Game
	fps    time.Duration
	log    *log.Logger
}

func (a *app) run() {
	inputChan := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(inputChan)
				return
			}
			inputChan <- ev
		}
	}()

	ticker := time.NewTicker(a.fps)
	defer ticker.Stop()

	a.game.SetSize(a.screen.Size())
	lastFrame := time.Now()
	for !a.game.Done() {
		now := time.Now()
		deltaTime := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if deltaTime > 0.1 {
			deltaTime = 0.1
		}

		// drain whatever arrived since the last frame
	drain:
		for {
			select {
			case ev, ok := <-inputChan:
				if !ok {
					return
				}
				if k, isKey := ev.(*tcell.EventKey); isKey && k.Key() == tcell.KeyCtrlC {
					a.log.Printf("interrupted")
					return
				}
				if _, isResize := ev.(*tcell.EventResize); isResize {
					a.screen.Sync()
				}
				a.game.HandleEvent(ev)
			default:
				break drain
			}
		}

		a.game.Update(deltaTime)
		a.game.Draw(a.screen)

		<-ticker.C
	}
}

func main() {
	flag.Parse()

	logger, logCloser, err := setupLogging(*debugFlag, *logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "overworld: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	file, err := worlds.Load(*worldsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "overworld: %v\n", err)
		os.Exit(1)
	}
	tuning, err := config.LoadTuning(*tuningFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "overworld: %v\n", err)
		os.Exit(1)
	}
	preselect := *worldFlag
	if preselect == "" && *worldsFlag != "" {
		preselect = file.DefaultWorldID
	}

	var sound *audio.SoundManager
	if !*muteFlag {
		sound = audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			logger.Printf("audio initialization failed: %v (continuing without audio)", err)
		}
		defer sound.Cleanup()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "overworld: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "overworld: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash.
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			fmt.Fprintf(os.Stderr, "\noverworld crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	logger.Printf("starting: %d worlds, %d fps", len(file.Worlds), tuning.FPS)
	game := scene.NewGame(scene.Options{
		Worlds:         file.Worlds,
		Tuning:         tuning,
		Clock:          clock.SystemClock{},
		Sound:          sound,
		Logger:         logger,
		PreselectWorld: preselect,
	})

	a := &app{screen: screen, game: game, fps: tuning.FrameDuration(), log: logger}
	a.run()
	logger.Printf("bye")
}
