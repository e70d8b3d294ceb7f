package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pixelpen/audio"
	"github.com/lixenwraith/pixelpen/config"
	"github.com/lixenwraith/pixelpen/editor"
	"github.com/lixenwraith/pixelpen/input"
	"github.com/lixenwraith/pixelpen/render"
)

type app struct {
	screen   tcell.Screen
	ctrl     *editor.Controller
	renderer *render.Renderer
	keys     *input.KeyTable
	sound    *audio.Feedback

	file     string
	symbol   string
	lastTick time.Time
}

func main() {
	var (
		width      = flag.Int("width", 0, "grid width (overrides config)")
		height     = flag.Int("height", 0, "grid height (overrides config)")
		file       = flag.String("file", "sprite.txt", "grid file to load and save")
		configPath = flag.String("config", defaultConfigPath(), "config file")
		mute       = flag.Bool("mute", false, "disable feedback tones")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pixelpen: %v\n", err)
		os.Exit(1)
	}
	if *width > 0 {
		cfg.Grid.Width = *width
	}
	if *height > 0 {
		cfg.Grid.Height = *height
	}

	ctrl, err := editor.New(cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pixelpen: %v\n", err)
		os.Exit(1)
	}
	if _, err := os.Stat(*file); err == nil {
		ctrl.Load(*file)
	}

	keys := input.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		override, err := input.KeymapFromNames(cfg.Keys)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pixelpen: %v\n", err)
			os.Exit(1)
		}
		keys.Merge(override)
	}

	var sound *audio.Feedback
	if *mute {
		sound = &audio.Feedback{}
	} else {
		if sound, err = audio.New(); err != nil {
			// Non-fatal, the editor runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pixelpen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "pixelpen: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "CRASH: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	a := &app{
		screen:   screen,
		ctrl:     ctrl,
		renderer: render.New(screen),
		keys:     keys,
		sound:    sound,
		file:     *file,
		symbol:   cfg.Export.Symbol,
		lastTick: time.Now(),
	}
	a.run()
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pixelpen.toml"
	}
	return home + "/.config/pixelpen.toml"
}

func (a *app) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- a.screen.PollEvent()
		}
	}()

	a.renderer.Draw(a.ctrl)

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
			a.renderer.Draw(a.ctrl)

		case <-ticker.C:
			if a.playbackDue() {
				a.ctrl.PlaybackTick()
				a.lastTick = time.Now()
			}
			a.renderer.Draw(a.ctrl)
		}
	}
}

// playbackDue reports whether the playback delay has elapsed while playing
func (a *app) playbackDue() bool {
	reel := a.ctrl.Reel()
	return reel.Playing() && reel.Len() > 1 && time.Since(a.lastTick) >= reel.Delay()
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleAction(a.keys.Decode(ev))
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) handleAction(action input.Action) bool {
	switch action {
	case input.ActionQuit:
		return false
	case input.ActionActivate:
		a.ctrl.Activate()
	case input.ActionCycleMode:
		a.ctrl.CycleMode()
	case input.ActionToggleColor:
		a.ctrl.ToggleColor()
	case input.ActionToggleFilled:
		a.ctrl.ToggleFilledRect()
	case input.ActionClear:
		a.ctrl.ClearGrid()
	case input.ActionSave:
		a.ctrl.Save(a.file)
		a.chirp()
	case input.ActionExport:
		a.ctrl.Export(exportPath(a.file), a.symbol)
		a.chirp()
	case input.ActionLoad:
		a.ctrl.Load(a.file)
		a.chirp()
	case input.ActionPrevFrame:
		a.ctrl.PrevFrame()
	case input.ActionNextFrame:
		a.ctrl.NextFrame()
	case input.ActionNewFrame:
		a.ctrl.NewFrame()
		a.chirp()
	case input.ActionTogglePlay:
		a.ctrl.TogglePlay()
		a.lastTick = time.Now()
	case input.ActionSpeedUp:
		a.ctrl.AdjustSpeed(-50 * time.Millisecond)
	case input.ActionSpeedDown:
		a.ctrl.AdjustSpeed(50 * time.Millisecond)
	default:
		if dx, dy := action.Delta(); dx != 0 || dy != 0 {
			a.ctrl.Move(dx, dy)
		}
	}
	return true
}

// chirp translates the last operation's status into a feedback tone
func (a *app) chirp() {
	if _, kind := a.ctrl.Status(); kind == editor.StatusError {
		a.sound.Buzz()
		return
	}
	a.sound.Tick()
}

// exportPath derives the packed-export file name from the grid file
func exportPath(file string) string {
	for i := len(file) - 1; i >= 0; i-- {
		if file[i] == '.' {
			return file[:i] + ".h"
		}
		if file[i] == '/' {
			break
		}
	}
	return file + ".h"
}
