package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/hubastard/groveui/engine/ui"
)

const reset = "\x1b[0m"

var typeColors = map[ui.CommandType]string{
	ui.CommandJump: "\x1b[90m",
	ui.CommandClip: "\x1b[33m",
	ui.CommandRect: "\x1b[36m",
	ui.CommandText: "\x1b[32m",
	ui.CommandIcon: "\x1b[35m",
}

type printer struct {
	w     io.Writer
	color bool
}

// dump writes one line per record: arena offset, type, rect and the
// type-specific payload.
func (p printer) dump(list *ui.CommandList, raw bool) error {
	seq := list.Commands
	if raw {
		seq = list.Records
	}
	bw := bufio.NewWriter(p.w)
	n := p.write(bw, seq())
	fmt.Fprintf(bw, "%d commands, %d bytes\n", n, list.Len())
	return bw.Flush()
}

func (p printer) write(w io.Writer, cmds iter.Seq[ui.Command]) int {
	n := 0
	for cmd := range cmds {
		n++
		name := fmt.Sprintf("%-4s", cmd.Type)
		if p.color {
			name = typeColors[cmd.Type] + name + reset
		}
		fmt.Fprintf(w, "%6d  %s  ", cmd.Offset(), name)
		switch cmd.Type {
		case ui.CommandJump:
			fmt.Fprintf(w, "-> %d\n", cmd.Target)
		case ui.CommandClip:
			if cmd.Rect == ui.UnclippedRect {
				fmt.Fprintln(w, "unclipped")
			} else {
				fmt.Fprintln(w, rect(cmd.Rect))
			}
		case ui.CommandRect:
			fmt.Fprintf(w, "%s  %s\n", rect(cmd.Rect), cmd.Color.Hex())
		case ui.CommandText:
			fmt.Fprintf(w, "%s  %s  %q\n", rect(cmd.Rect), cmd.Color.Hex(), cmd.Text)
		case ui.CommandIcon:
			fmt.Fprintf(w, "%s  %s  icon %d\n", rect(cmd.Rect), cmd.Color.Hex(), cmd.Icon)
		default:
			fmt.Fprintln(w)
		}
	}
	return n
}

func rect(r ui.Rect) string { return fmt.Sprintf("%4d %4d %4d %4d", r.X, r.Y, r.W, r.H) }
