package demo

import (
	"os"
	"time"

	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/profiler"
)

// Layer runs the demo inside core.Run. Ctrl+P writes a profiler dump to
// DumpDir, Escape closes the window.
type Layer struct {
	*Demo
	DumpDir string

	lastUI time.Time
}

func NewLayer(d *Demo) *Layer { return &Layer{Demo: d, DumpDir: os.TempDir()} }

func (l *Layer) OnAttach(e *core.Engine) {
	e.Log.Debug("demo layer attached")
	l.Log("Welcome to groveui")
}

func (l *Layer) OnDetach(e *core.Engine) { e.Log.Debug("demo layer detached") }

// OnUpdate runs between frames, the only place a style may be swapped.
func (l *Layer) OnUpdate(e *core.Engine, _ float64) {
	if l.ApplyPending(e.UI) {
		e.Log.Debug("style edited")
	}
}

func (l *Layer) OnUI(e *core.Engine) {
	now := time.Now()
	if !l.lastUI.IsZero() {
		l.SetFrameTime(float64(now.Sub(l.lastUI)) / float64(time.Millisecond))
	}
	l.lastUI = now
	l.Build(e.UI)
}

func (l *Layer) OnEvent(e *core.Engine, ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down {
		return false
	}
	switch {
	case k.Key == core.KeyP && k.Mods&core.ModCtrl != 0:
		path, err := profiler.Dump(l.DumpDir)
		if err != nil {
			e.Log.Warn("profiler dump failed", "err", err)
			l.Log("profiler dump failed")
		} else {
			e.Log.Info("speedscope dump", "path", path)
			l.Log("profile written to " + path)
		}
		return true
	case k.Key == core.KeyEscape:
		e.Window.RequestClose()
		return true
	}
	return false
}
