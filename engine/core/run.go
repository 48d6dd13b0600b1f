package core

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/hubastard/groveui/engine/profiler"
	"github.com/hubastard/groveui/engine/ui"
)

// Run wires the platform window + backend and executes the main loop. Each
// rendered frame is one ui frame: OnUI and every layer's OnUI run between
// BeginFrame and EndFrame, then the backend replays the command list.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newBackend func(Window, Config) (Backend, error)) error {
	if cfg.TextWidth == nil || cfg.TextHeight == nil {
		return errors.New("core: text metrics are required")
	}
	log := cfg.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	be, err := newBackend(win, cfg)
	if err != nil {
		return fmt.Errorf("create backend: %w", err)
	}
	defer be.Shutdown()

	w, h := win.FramebufferSize()
	be.Resize(w, h)

	opts := append([]ui.Option{ui.WithLogger(log)}, cfg.UIOptions...)
	eng := &Engine{
		Window:  win,
		Backend: be,
		UI:      ui.New(cfg.TextWidth, cfg.TextHeight, opts...),
		Input:   NewInput(),
		Log:     log,
		start:   time.Now(),
	}
	win.SetEventCallback(func(ev Event) { eng.dispatch(app, ev) })

	app.OnStart(eng)

	// Fixed-timestep (60 Hz) updates; the UI is built once per rendered frame.
	const tick = time.Second / 60
	var (
		accum   time.Duration
		prev    = time.Now()
		bg      = cfg.ClearColor
		maxStep = 10 // prevent spiral of death
	)

	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		// Poll OS events (platform will emit via callbacks)
		win.PollEvents()

		steps := 0
		for accum >= tick && steps < maxStep {
			dt := float64(tick) / float64(time.Second)
			app.OnUpdate(eng, dt)
			eng.Layers.ForEach(func(l Layer) { l.OnUpdate(eng, dt) })
			accum -= tick
			steps++
		}

		eng.applyStyles(cfg.Styles)

		endUI := profiler.Start("ui")
		eng.UI.Update(func() {
			app.OnUI(eng)
			eng.Layers.ForEach(func(l Layer) { l.OnUI(eng) })
		})
		endUI()

		endRender := profiler.Start("render")
		be.Clear(bg[0], bg[1], bg[2], bg[3])
		err := be.Render(eng.UI.CommandList())
		endRender()
		if err != nil {
			eng.shutdown(app)
			return fmt.Errorf("render frame %d: %w", eng.UI.Frame(), err)
		}

		win.SwapBuffers()
		eng.frames++
	}

	eng.shutdown(app)
	log.Info("engine exit", "frames", eng.frames, "uptime", eng.Uptime().Round(time.Millisecond))
	return nil
}

// dispatch hands ev to the app, then to layers top-down. The UI context
// only sees input no layer claimed.
func (e *Engine) dispatch(app App, ev Event) {
	app.OnEvent(e, ev)
	handled := false
	e.Layers.ForEachReverse(func(l Layer) bool {
		handled = l.OnEvent(e, ev)
		return handled
	})
	if handled {
		e.Input.Handle(nil, ev)
	} else {
		e.Input.Handle(e.UI, ev)
	}

	switch ev.(type) {
	case EventResize:
		fw, fh := e.Window.FramebufferSize()
		if fw < 1 || fh < 1 {
			return
		}
		e.Backend.Resize(fw, fh)
	case EventCloseRequested:
		e.Window.RequestClose()
	}
}

// applyStyles swaps in the newest pending style, if any.
func (e *Engine) applyStyles(styles <-chan ui.Style) {
	if styles == nil {
		return
	}
	for {
		select {
		case st, ok := <-styles:
			if !ok {
				return
			}
			e.UI.SetStyle(st)
			e.Log.Debug("style applied", "frame", e.UI.Frame())
		default:
			return
		}
	}
}

func (e *Engine) shutdown(app App) {
	for {
		l, ok := e.Layers.Pop()
		if !ok {
			break
		}
		l.OnDetach(e)
	}
	app.OnShutdown(e)
}
