// Package config loads engine and style settings from TOML or YAML files.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/ui"
)

type Config struct {
	Window WindowConfig `toml:"window" yaml:"window"`
	UI     UIConfig     `toml:"ui" yaml:"ui"`
	Font   FontConfig   `toml:"font" yaml:"font"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

type WindowConfig struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	VSync  bool   `toml:"vsync" yaml:"vsync"`
	Clear  string `toml:"clear" yaml:"clear"` // hex
}

type UIConfig struct {
	ArenaSize    int    `toml:"arena_size" yaml:"arena_size"`
	PoolSize     int    `toml:"pool_size" yaml:"pool_size"`
	TreeNodePool int    `toml:"tree_node_pool" yaml:"tree_node_pool"`
	PaintOrder   string `toml:"paint_order" yaml:"paint_order"` // "declaration" or "z"
	StyleFile    string `toml:"style_file" yaml:"style_file"`
}

type FontConfig struct {
	Path string  `toml:"path" yaml:"path"` // empty uses Go Regular
	Size float64 `toml:"size" yaml:"size"`
}

type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "text" or "json"
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "groveui",
			Width:  1280,
			Height: 720,
			VSync:  true,
			Clear:  "#14191F",
		},
		UI: UIConfig{
			ArenaSize:    ui.DefaultArenaSize,
			PoolSize:     ui.ContainerPoolSize,
			TreeNodePool: ui.TreeNodePoolSize,
			PaintOrder:   ui.PaintDeclaration.String(),
		},
		Font: FontConfig{Size: 14},
		Log:  LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults, applies GROVEUI_* environment
// overrides and validates the result. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return cfg, nil
}

// decodeFile decodes path into v by extension. Missing files are not an
// error.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), v); err != nil {
			return fmt.Errorf("decode TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("decode YAML: %w", err)
		}
	default:
		return fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	return nil
}

// ApplyEnvOverrides applies GROVEUI_* environment variables.
func (c *Config) ApplyEnvOverrides() error {
	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}
	num := func(name string, dst *int) error {
		v, ok := os.LookupEnv(name)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("env %s: %w", name, err)
		}
		*dst = n
		return nil
	}

	str("GROVEUI_TITLE", &c.Window.Title)
	str("GROVEUI_CLEAR", &c.Window.Clear)
	str("GROVEUI_PAINT_ORDER", &c.UI.PaintOrder)
	str("GROVEUI_STYLE", &c.UI.StyleFile)
	str("GROVEUI_FONT", &c.Font.Path)
	str("GROVEUI_LOG_LEVEL", &c.Log.Level)
	str("GROVEUI_LOG_FORMAT", &c.Log.Format)
	for name, dst := range map[string]*int{
		"GROVEUI_WIDTH":      &c.Window.Width,
		"GROVEUI_HEIGHT":     &c.Window.Height,
		"GROVEUI_ARENA_SIZE": &c.UI.ArenaSize,
		"GROVEUI_POOL_SIZE":  &c.UI.PoolSize,
	} {
		if err := num(name, dst); err != nil {
			return err
		}
	}
	if v, ok := os.LookupEnv("GROVEUI_VSYNC"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("env GROVEUI_VSYNC: %w", err)
		}
		c.Window.VSync = b
	}
	return nil
}

// PaintOrder parses UI.PaintOrder. Validate rejects unknown values.
func (c *Config) PaintOrder() ui.PaintOrder {
	if c.UI.PaintOrder == ui.PaintZOrder.String() {
		return ui.PaintZOrder
	}
	return ui.PaintDeclaration
}

// Options translates the [ui] section into ui.New options. Zero sizes keep
// the engine defaults.
func (c *Config) Options(log *slog.Logger) []ui.Option {
	opts := []ui.Option{ui.WithPaintOrder(c.PaintOrder())}
	if log != nil {
		opts = append(opts, ui.WithLogger(log))
	}
	if c.UI.ArenaSize > 0 {
		opts = append(opts, ui.WithArenaSize(c.UI.ArenaSize))
	}
	if c.UI.PoolSize > 0 {
		opts = append(opts, ui.WithPoolSize(c.UI.PoolSize))
	}
	if c.UI.TreeNodePool > 0 {
		opts = append(opts, ui.WithTreeNodePoolSize(c.UI.TreeNodePool))
	}
	return opts
}

// Core returns the host loop settings.
func (c *Config) Core() core.Config {
	bg, err := colors.ParseHex(c.Window.Clear)
	if err != nil {
		bg = colors.DarkGray
	}
	return core.Config{
		Title:      c.Window.Title,
		Width:      c.Window.Width,
		Height:     c.Window.Height,
		VSync:      c.Window.VSync,
		ClearColor: bg.Float(),
	}
}

// Logger builds a slog logger writing to w per the [log] section.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	_ = level.UnmarshalText([]byte(c.Log.Level))
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
