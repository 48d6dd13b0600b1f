// Command sandbox opens a glfw window and runs the demo UI on the GL
// backend.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hubastard/groveui/engine/config"
	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/demo"
	glbackend "github.com/hubastard/groveui/engine/gfx/gl"
	"github.com/hubastard/groveui/engine/platform"
	"github.com/hubastard/groveui/engine/profiler"
	"github.com/hubastard/groveui/engine/text"
	"github.com/hubastard/groveui/engine/ui"
)

// App pushes the demo layer and logs the engine lifecycle.
type App struct {
	log   *slog.Logger
	layer core.Layer
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 10) // ~1K scope samples
	a.log.Info("sandbox started", "profiler", profiler.Enabled())
	e.PushLayer(a.layer)
}

func (a *App) OnUpdate(*core.Engine, float64) {}
func (a *App) OnUI(*core.Engine)              {}

func (a *App) OnEvent(_ *core.Engine, ev core.Event) {
	if r, ok := ev.(core.EventResize); ok {
		a.log.Debug("resize", "w", r.W, "h", r.H)
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	a.log.Info("sandbox stopped", "frames", e.Frames(), "uptime", e.Uptime())
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sandbox:", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "groveui.toml", "TOML or YAML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	log := cfg.Logger(os.Stderr)

	atlas, err := loadFont(cfg.Font)
	if err != nil {
		return err
	}
	fonts := text.NewFonts(atlas)
	defer fonts.Close()

	style := ui.DefaultStyle()
	hostCfg := cfg.Core()
	if path := cfg.UI.StyleFile; path != "" {
		if style, err = config.LoadStyle(path, style); err != nil {
			return err
		}
		w, err := config.WatchStyle(path, ui.DefaultStyle(), log)
		if err != nil {
			return err
		}
		defer w.Close()
		go func() {
			for err := range w.Errors() {
				log.Warn("style reload", "err", err)
			}
		}()
		hostCfg.Styles = w.Styles()
	}

	hostCfg.Log = log
	hostCfg.TextWidth = fonts.TextWidth
	hostCfg.TextHeight = fonts.TextHeight
	hostCfg.UIOptions = append(cfg.Options(nil), ui.WithStyle(style))

	d := demo.New()
	d.ShowStats = true
	app := &App{log: log, layer: demo.NewLayer(d)}

	newBackend := func(win core.Window, c core.Config) (core.Backend, error) {
		fbw, _ := win.FramebufferSize()
		scale := float32(1)
		if c.Width > 0 && fbw > 0 {
			scale = float32(fbw) / float32(c.Width)
		}
		r, err := glbackend.NewRendererGL(fonts, scale, c.Log)
		if err != nil {
			return nil, err
		}
		d.RendererStats = r.Stats
		return r, nil
	}

	return core.Run(app, hostCfg, platform.NewGLFWWindow, newBackend)
}

func loadFont(f config.FontConfig) (*text.Atlas, error) {
	if f.Path == "" {
		return text.Default(f.Size)
	}
	return text.LoadTTF(f.Path, f.Size)
}
