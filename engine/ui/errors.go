package ui

import (
	"errors"
	"fmt"
)

// Sentinels carried by UsageError. A usage error means a begin/end pair or a
// fixed capacity was violated; the engine cannot continue the frame.
var (
	ErrStackOverflow   = errors.New("stack overflow")
	ErrStackUnderflow  = errors.New("stack underflow")
	ErrArenaFull       = errors.New("command arena full")
	ErrTooManyWidths   = errors.New("too many row widths")
	ErrUnbalancedFrame = errors.New("unbalanced stacks at end of frame")
	ErrPoolExhausted   = errors.New("every pool slot is in use this frame")
	ErrFrameState      = errors.New("invalid frame state")
	ErrNoMetrics       = errors.New("text metrics callbacks not set")
	ErrStrayCommands   = errors.New("draw commands emitted outside a root container")
)

// UsageError is the panic value of every fatal engine error.
type UsageError struct {
	Op     string
	Err    error
	Detail string
}

func (e *UsageError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("ui: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("ui: %s: %v (%s)", e.Op, e.Err, e.Detail)
}

func (e *UsageError) Unwrap() error { return e.Err }

// fatal logs and panics. Left unrecovered it terminates the process, which is
// the only safe outcome once pool stamps or the jump graph may be corrupt.
func (c *Ctx) fatal(op string, err error, format string, args ...any) {
	ue := &UsageError{Op: op, Err: err}
	if format != "" {
		ue.Detail = fmt.Sprintf(format, args...)
	}
	c.log.Error("fatal usage error", "op", op, "err", err, "detail", ue.Detail, "frame", c.frame)
	panic(ue)
}
