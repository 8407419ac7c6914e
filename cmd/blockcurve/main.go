package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockcurve/audio"
	"github.com/lixenwraith/blockcurve/config"
	"github.com/lixenwraith/blockcurve/constants"
	"github.com/lixenwraith/blockcurve/core"
	"github.com/lixenwraith/blockcurve/editor"
	"github.com/lixenwraith/blockcurve/render/raster"
)

var (
	configFlag   = flag.String("config", "", "Config file (default ~/.config/blockcurve/config.toml)")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/")
	colorFlag    = flag.String("color", "", "Color mode: auto, truecolor, 256, mono")
	snapshotFlag = flag.String("snapshot", "", "Render one frame to this PNG file and exit")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", constants.AppName, err)
		os.Exit(1)
	}
}

// loadConfig resolves the config path, loads it and applies the -color flag
func loadConfig() (*config.Config, string, error) {
	path, explicit := *configFlag, *configFlag != ""
	if !explicit {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, "", err
		}
		path = p
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, "", err
	}
	if *colorFlag != "" {
		cfg.Color = *colorFlag
		if err := cfg.Validate(); err != nil {
			return nil, "", fmt.Errorf("-color: %w", err)
		}
	}
	log.Printf("config %s loaded", path)
	return cfg, path, nil
}

func run() error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	if *snapshotFlag != "" {
		return snapshot(cfg, *snapshotFlag)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the editor crashes
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.SetTitle(constants.AppTitle)
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.AudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	a, err := newApp(screen, cfg, sound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var updates <-chan *config.Config
	var watchErrs <-chan error
	if _, err := os.Stat(filepath.Dir(path)); err == nil {
		if w, err := config.Watch(ctx, path); err == nil {
			updates, watchErrs = w.Updates, w.Errors
		} else {
			log.Printf("config watch disabled: %v", err)
		}
	}

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	a.tick()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return nil
			}

		case <-frameTicker.C:
			a.tick()

		case upd, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			a.applyConfig(upd)
			frameTicker.Reset(upd.FrameInterval())

		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			a.reportError(err)
		}
	}
}

// snapshot renders the configured initial curve to a PNG file
func snapshot(cfg *config.Config, out string) error {
	pal, err := cfg.RenderPalette()
	if err != nil {
		return err
	}
	f := editor.DefaultPipeline().Process(editor.NewSession(cfg.ControlPoints()).Curve())
	if err := raster.New(pal).WritePNG(out, f); err != nil {
		return err
	}
	log.Printf("snapshot written to %s (%d blocks)", out, f.Occupied())
	return nil
}
