// Command uidump builds demo frames headlessly and prints the resulting
// command stream. It can also rasterise the last frame with the software
// backend and compare it against a golden PNG.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/hubastard/groveui/engine/assets"
	"github.com/hubastard/groveui/engine/config"
	"github.com/hubastard/groveui/engine/demo"
	"github.com/hubastard/groveui/engine/gfx/soft"
	"github.com/hubastard/groveui/engine/text"
	"github.com/hubastard/groveui/engine/ui"
)

var errGoldenMismatch = errors.New("image differs from golden")

type options struct {
	configPath string
	frames     int
	fixed      bool
	raw        bool
	quiet      bool
	color      string
	png        string
	golden     string
	tolerance  int
	width      int
	height     int
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	case err != nil:
		fmt.Fprintln(os.Stderr, "uidump:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("uidump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "TOML or YAML config file")
	fs.IntVar(&o.frames, "frames", 2, "frames to build; the last one is dumped")
	fs.BoolVar(&o.fixed, "fixed", false, "use 6x12 monospace metrics instead of the font")
	fs.BoolVar(&o.raw, "raw", false, "dump arena order, jumps included")
	fs.BoolVar(&o.quiet, "q", false, "do not print commands")
	fs.StringVar(&o.color, "color", "auto", "colorize output: auto, always or never")
	fs.StringVar(&o.png, "png", "", "write the last frame to this PNG")
	fs.StringVar(&o.golden, "golden", "", "compare the last frame with this PNG")
	fs.IntVar(&o.tolerance, "tolerance", 2, "per channel tolerance for -golden")
	fs.IntVar(&o.width, "width", 960, "image width")
	fs.IntVar(&o.height, "height", 540, "image height")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	switch {
	case o.frames < 1:
		return o, errors.New("-frames must be at least 1")
	case o.color != "auto" && o.color != "always" && o.color != "never":
		return o, fmt.Errorf("-color: unknown mode %q", o.color)
	case o.fixed && (o.png != "" || o.golden != ""):
		return o, errors.New("-png and -golden need font metrics, drop -fixed")
	case o.tolerance < 0 || o.tolerance > 255:
		return o, errors.New("-tolerance must be within 0..255")
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	log := cfg.Logger(stderr)

	var (
		width  ui.TextWidthFunc
		height ui.TextHeightFunc
		fonts  *text.Fonts
	)
	if o.fixed {
		m := text.Fixed{Advance: 6, Line: 12}
		width, height = m.TextWidth, m.TextHeight
	} else {
		var atlas *text.Atlas
		if cfg.Font.Path != "" {
			atlas, err = text.LoadTTF(cfg.Font.Path, cfg.Font.Size)
		} else {
			atlas, err = text.Default(cfg.Font.Size)
		}
		if err != nil {
			return err
		}
		fonts = text.NewFonts(atlas)
		defer fonts.Close()
		width, height = fonts.TextWidth, fonts.TextHeight
	}

	opts := cfg.Options(log)
	if cfg.UI.StyleFile != "" {
		st, err := config.LoadStyle(cfg.UI.StyleFile, ui.DefaultStyle())
		if err != nil {
			return err
		}
		opts = append(opts, ui.WithStyle(st))
	}
	c := ui.New(width, height, opts...)
	d := demo.New()
	for range o.frames {
		c.Update(func() { d.Build(c) })
	}
	log.Debug("frames built", "frames", o.frames, "arena", c.CommandList().Len())

	if !o.quiet {
		p := printer{w: stdout, color: useColor(o.color, stdout)}
		if err := p.dump(c.CommandList(), o.raw); err != nil {
			return err
		}
	}

	if o.png == "" && o.golden == "" {
		return nil
	}
	sr := soft.New(fonts, o.width, o.height)
	defer sr.Shutdown()
	bg := cfg.Core().ClearColor
	sr.Clear(bg[0], bg[1], bg[2], bg[3])
	if err := sr.Render(c.CommandList()); err != nil {
		return err
	}
	if o.png != "" {
		if err := assets.SavePNG(o.png, sr.Image()); err != nil {
			return err
		}
		log.Info("wrote image", "path", o.png)
	}
	if o.golden != "" {
		want, err := assets.LoadPNG(o.golden)
		if err != nil {
			return err
		}
		if n := assets.Diff(want, sr.Image(), uint8(o.tolerance)); n > 0 {
			return fmt.Errorf("%w: %d pixels (%s)", errGoldenMismatch, n, o.golden)
		}
		log.Info("golden image matches", "path", o.golden)
	}
	return nil
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
