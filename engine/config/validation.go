package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/ui"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is every problem found in one pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i := range e {
		msgs[i] = e[i].Error()
	}
	return strings.Join(msgs, "; ")
}

// The arena must at least hold the two jumps of one root plus a rect.
const minArenaSize = 64

func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		add("window.size", "must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := colors.ParseHex(c.Window.Clear); err != nil {
		add("window.clear", "%v", err)
	}
	if c.UI.ArenaSize != 0 && c.UI.ArenaSize < minArenaSize {
		add("ui.arena_size", "must be at least %d bytes, got %d", minArenaSize, c.UI.ArenaSize)
	}
	if c.UI.PoolSize < 0 {
		add("ui.pool_size", "must not be negative")
	}
	if c.UI.TreeNodePool < 0 {
		add("ui.tree_node_pool", "must not be negative")
	}
	switch c.UI.PaintOrder {
	case "", ui.PaintDeclaration.String(), ui.PaintZOrder.String():
	default:
		add("ui.paint_order", "want %q or %q, got %q", ui.PaintDeclaration, ui.PaintZOrder, c.UI.PaintOrder)
	}
	if c.Font.Size <= 0 {
		add("font.size", "must be positive")
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		add("log.level", "%v", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		add("log.format", "want text or json, got %q", c.Log.Format)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
