package core

import (
	"log/slog"
	"time"

	"github.com/hubastard/groveui/engine/ui"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)              // called once after window/backend init
	OnUpdate(e *Engine, dt float64) // called at a fixed tick (60Hz)
	OnUI(e *Engine)                 // declares this frame's UI; e.UI is inside a frame
	OnEvent(e *Engine, ev Event)    // input/window events, before the UI sees them
	OnShutdown(e *Engine)           // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window  Window
	Backend Backend
	UI      *ui.Ctx
	Input   *Input
	Layers  LayerStack
	Log     *slog.Logger
	start   time.Time
	frames  int
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// PushLayer attaches l above every existing layer.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

// Frames is the number of frames presented so far.
func (e *Engine) Frames() int { return e.frames }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
	Destroy()
}

// Backend replays a finished frame's command list.
type Backend interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	Render(cmds *ui.CommandList) error
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// EventChar is one typed character.
type EventChar struct{ Rune rune }

func (EventChar) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyBackspace
	KeyTab
	KeyLeftShift
	KeyRightShift
	KeyLeftCtrl
	KeyRightCtrl
	KeyLeftAlt
	KeyRightAlt
	KeyP
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor [4]float32 // RGBA

	// Text metrics for the UI context. Both must be set.
	TextWidth  ui.TextWidthFunc
	TextHeight ui.TextHeightFunc
	UIOptions  []ui.Option

	// Styles, when set, is drained between frames and applied with SetStyle.
	Styles <-chan ui.Style
	Log    *slog.Logger
}
