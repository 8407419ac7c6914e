package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockcurve/audio"
	"github.com/lixenwraith/blockcurve/config"
	"github.com/lixenwraith/blockcurve/core"
	"github.com/lixenwraith/blockcurve/editor"
	"github.com/lixenwraith/blockcurve/input"
	"github.com/lixenwraith/blockcurve/render"
)

// app owns the editor state and drives one frame per tick on the main goroutine
type app struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	session  *editor.Session
	pipeline editor.Pipeline
	machine  *input.Machine
	sound    *audio.SoundManager
	cfg      *config.Config
	frame    *editor.Frame
	message  string
}

func newApp(screen tcell.Screen, cfg *config.Config, sound *audio.SoundManager) (*app, error) {
	pal, err := cfg.RenderPalette()
	if err != nil {
		return nil, err
	}
	r := render.NewTerminalRenderer(screen, render.NewColorProfile(cfg.ColorMode()), pal)
	a := &app{
		screen:   screen,
		renderer: r,
		session:  editor.NewSession(cfg.ControlPoints(), editor.WithPickRadius(r.Viewport().PickRadius())),
		pipeline: editor.DefaultPipeline(),
		machine:  input.NewMachine(),
		sound:    sound,
		cfg:      cfg,
	}
	log.Printf("viewport %dx%d, pick radius %.1f", r.Viewport().Cols, r.Viewport().Rows, a.session.PickRadius())
	return a, nil
}

// pointer returns the pointer in world units and the primary button state
func (a *app) pointer() (core.Point, bool) {
	p := a.machine.Pointer()
	if !p.Known {
		return core.Point{}, false
	}
	return a.renderer.Viewport().PointerWorld(p.X, p.Y), p.Held
}

// handleEvent applies one terminal event, returns false to quit
// Button edges update the session at once so a press and release inside one frame still grab
func (a *app) handleEvent(ev tcell.Event) bool {
	intent := a.machine.Process(ev)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		return false
	case input.IntentResize:
		w, h := a.screen.Size()
		a.renderer.Resize(w, h)
		a.session.SetPickRadius(a.renderer.Viewport().PickRadius())
		a.screen.Sync()
	case input.IntentReset:
		a.session.Reset()
		a.message = "reset"
		log.Printf("control points reset")
	case input.IntentPointerDown, input.IntentPointerUp:
		pos, held := a.pointer()
		a.feedback(a.session.Update(pos, held))
	}
	return true
}

// tick runs input, sampling, detection and classification, then renders
func (a *app) tick() {
	pos, held := a.pointer()
	f, tr := a.pipeline.Step(a.session, pos, held)
	a.feedback(tr)
	a.frame = f

	st := render.Status{Message: a.message}
	if a.machine.Pointer().Known {
		st.Pointer, st.HasPointer = pos, true
	}
	a.renderer.RenderFrame(f, st)
}

func (a *app) feedback(tr editor.Transition) {
	if tr.Empty() {
		return
	}
	if len(tr.Grabbed) > 0 {
		a.message = ""
		a.sound.PlayGrab()
		log.Printf("grabbed %v", tr.Grabbed)
	}
	if len(tr.Released) > 0 {
		a.sound.PlayRelease()
		log.Printf("released %v at %v", tr.Released, a.session.Points())
	}
}

// applyConfig takes palette, color mode and audio from a reloaded config
// Control points stay where the user left them
func (a *app) applyConfig(cfg *config.Config) {
	pal, err := cfg.RenderPalette()
	if err != nil {
		a.reportError(err)
		return
	}
	a.cfg = cfg
	a.renderer.SetPalette(pal)
	a.renderer.SetColors(render.NewColorProfile(cfg.ColorMode()))
	a.sound.SetConfig(cfg.AudioConfig())
	a.message = "config reloaded"
	log.Printf("config reloaded: frame rate %d, color %s", cfg.FrameRate, cfg.Color)
}

func (a *app) reportError(err error) {
	a.message = err.Error()
	log.Printf("config: %v", err)
}
