package ui

import (
	"cmp"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"
)

// ===== Capacities =====

const (
	IDStackSize        = 32
	ClipStackSize      = 32
	ContainerStackSize = 32
	RootListSize       = 32
	ContainerPoolSize  = 48
	TreeNodePoolSize   = 48
	MaxInputText       = 32
)

// TextWidthFunc measures s in font, in pixels.
type TextWidthFunc func(font Font, s string) int

// TextHeightFunc returns the line height of font, in pixels.
type TextHeightFunc func(font Font) int

// PaintOrder selects how root containers are ordered in the command stream.
type PaintOrder int

const (
	// PaintDeclaration paints roots in the order they were begun.
	PaintDeclaration PaintOrder = iota
	// PaintZOrder paints roots by ascending z-index, so the most recently
	// raised container ends up on top.
	PaintZOrder
)

func (p PaintOrder) String() string {
	if p == PaintZOrder {
		return "z"
	}
	return "declaration"
}

type FrameState int

const (
	FrameIdle FrameState = iota
	FrameOpen
	FrameClosed
)

func (s FrameState) String() string {
	switch s {
	case FrameOpen:
		return "open"
	case FrameClosed:
		return "closed"
	}
	return "idle"
}

// ===== Options =====

// Option configures a Ctx during New.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	style        *Style
	arenaSize    int
	poolSize     int
	treePoolSize int
	paintOrder   PaintOrder
}

func defaultOptions() options {
	return options{
		arenaSize:    DefaultArenaSize,
		poolSize:     ContainerPoolSize,
		treePoolSize: TreeNodePoolSize,
	}
}

// WithLogger routes diagnostics and fatal usage errors through l. The
// default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func WithStyle(s Style) Option {
	return func(o *options) { o.style = &s }
}

// WithArenaSize sets the command arena limit in bytes.
func WithArenaSize(n int) Option {
	return func(o *options) { o.arenaSize = n }
}

// WithPoolSize sets the number of container slots.
func WithPoolSize(n int) Option {
	return func(o *options) { o.poolSize = n }
}

// WithTreeNodePoolSize sets how many headers and tree nodes can be
// expanded at once.
func WithTreeNodePoolSize(n int) Option {
	return func(o *options) { o.treePoolSize = n }
}

func WithPaintOrder(p PaintOrder) Option {
	return func(o *options) { o.paintOrder = p }
}

// ===== Immediate-UI context =====

// Ctx is one UI instance. It is not safe for concurrent use.
//
// A frame is BeginFrame, any number of container and control calls, then
// EndFrame; the command list is valid from EndFrame until the next
// BeginFrame. Every fixed-capacity buffer is allocated in New.
type Ctx struct {
	log        *slog.Logger
	textWidth  TextWidthFunc
	textHeight TextHeightFunc
	paintOrder PaintOrder

	style Style
	state FrameState
	frame int

	idStack        stack[ID]
	clipStack      stack[Rect]
	layoutStack    stack[layout]
	containerStack stack[int]
	rootList       stack[int]

	cmds *CommandList

	containerPool *Pool
	containers    []Container
	treeNodePool  *Pool

	lastID       ID
	lastRect     Rect
	lastZIndex   int
	hover        ID
	focus        ID
	updatedFocus bool

	// container indices, -1 when unset
	hoverRoot     int
	nextHoverRoot int
	scrollTarget  int

	input input
}

// New creates a context that measures text with textWidth and textHeight.
func New(textWidth TextWidthFunc, textHeight TextHeightFunc, opts ...Option) *Ctx {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = newNopLogger()
	}
	c := &Ctx{
		log:            o.logger,
		textWidth:      textWidth,
		textHeight:     textHeight,
		paintOrder:     o.paintOrder,
		style:          DefaultStyle(),
		idStack:        newStack[ID]("id", IDStackSize),
		clipStack:      newStack[Rect]("clip", ClipStackSize),
		layoutStack:    newStack[layout]("layout", LayoutStackSize),
		containerStack: newStack[int]("container", ContainerStackSize),
		rootList:       newStack[int]("root", RootListSize),
		cmds:           newCommandList(o.arenaSize),
		containerPool:  NewPool("container", o.poolSize),
		containers:     make([]Container, o.poolSize),
		treeNodePool:   NewPool("treenode", o.treePoolSize),
		hoverRoot:      -1,
		nextHoverRoot:  -1,
		scrollTarget:   -1,
	}
	if o.style != nil {
		c.style = *o.style
	}
	c.cmds.ctx = c
	c.containerPool.ctx = c
	c.treeNodePool.ctx = c
	c.input.text = make([]byte, 0, MaxInputText)
	return c
}

// SetTextMetrics replaces the measuring callbacks between frames.
func (c *Ctx) SetTextMetrics(w TextWidthFunc, h TextHeightFunc) {
	if c.state == FrameOpen {
		c.fatal("SetTextMetrics", ErrFrameState, "metrics swapped inside a frame")
	}
	c.textWidth, c.textHeight = w, h
}

// Frame is the number of frames begun so far.
func (c *Ctx) Frame() int { return c.frame }

func (c *Ctx) State() FrameState { return c.state }

// CommandList is the arena of the last completed frame.
func (c *Ctx) CommandList() *CommandList { return c.cmds }

// Commands yields the last completed frame's drawable records in paint order.
func (c *Ctx) Commands() iter.Seq[Command] { return c.cmds.Commands() }

// BeginFrame starts a frame. Input reported since the previous EndFrame
// applies to this frame.
func (c *Ctx) BeginFrame() {
	if c.textWidth == nil || c.textHeight == nil {
		c.fatal("BeginFrame", ErrNoMetrics, "")
	}
	if c.state == FrameOpen {
		c.fatal("BeginFrame", ErrFrameState, "previous frame was never ended")
	}
	c.cmds.reset()
	c.rootList.reset()
	c.scrollTarget = -1
	c.hoverRoot = c.nextHoverRoot
	c.nextHoverRoot = -1
	c.input.mouseDelta = c.input.mousePos.Sub(c.input.lastMousePos)
	c.frame++
	c.state = FrameOpen
}

// EndFrame closes the frame: it checks stack balance, applies deferred
// input effects and links root containers into paint order.
func (c *Ctx) EndFrame() {
	c.requireFrame("EndFrame")
	c.checkBalance()

	if c.scrollTarget >= 0 {
		cnt := &c.containers[c.scrollTarget]
		cnt.Scroll = cnt.Scroll.Add(c.input.scrollDelta)
	}

	if !c.updatedFocus {
		c.focus = 0
	}
	c.updatedFocus = false

	if c.input.mousePressed != 0 && c.nextHoverRoot >= 0 {
		cnt := &c.containers[c.nextHoverRoot]
		if cnt.ZIndex < c.lastZIndex && cnt.ZIndex >= 0 {
			c.BringToFront(cnt)
		}
	}

	c.input.endFrame()

	if c.paintOrder == PaintZOrder {
		slices.SortStableFunc(c.rootList.items, func(a, b int) int {
			return cmp.Compare(c.containers[a].ZIndex, c.containers[b].ZIndex)
		})
	}
	c.linkRoots()
	c.state = FrameClosed
}

// Update runs body between BeginFrame and EndFrame.
func (c *Ctx) Update(body func()) {
	c.BeginFrame()
	body()
	c.EndFrame()
}

func (c *Ctx) requireFrame(op string) {
	if c.state != FrameOpen {
		c.fatal(op, ErrFrameState, "no frame open (state %s)", c.state)
	}
}

func (c *Ctx) checkBalance() {
	var open []string
	for _, s := range []struct {
		name string
		n    int
	}{
		{"id", c.idStack.len()},
		{"clip", c.clipStack.len()},
		{"container", c.containerStack.len()},
		{"layout", c.layoutStack.len()},
	} {
		if s.n != 0 {
			open = append(open, fmt.Sprintf("%s=%d", s.name, s.n))
		}
	}
	if len(open) > 0 {
		c.fatal("EndFrame", ErrUnbalancedFrame, "%s", strings.Join(open, " "))
	}
}

// linkRoots chains the root segments: the jump at offset 0 enters the
// first root, each root's tail enters the next, and the last tail exits at
// the write offset.
func (c *Ctx) linkRoots() {
	roots := c.rootList.items
	for i, idx := range roots {
		cnt := &c.containers[idx]
		if i == 0 {
			c.cmds.setJump(0, cnt.head+jumpSize)
		} else {
			prev := &c.containers[roots[i-1]]
			c.cmds.setJump(prev.tail, cnt.head+jumpSize)
		}
		if i == len(roots)-1 {
			c.cmds.setJump(cnt.tail, c.cmds.Len())
		}
	}
	c.log.Debug("frame end", "frame", c.frame, "roots", len(roots), "bytes", c.cmds.Len(), "order", c.paintOrder)
}
