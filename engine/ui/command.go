package ui

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/hubastard/groveui/engine/colors"
)

// DefaultArenaSize is the command arena limit in bytes.
const DefaultArenaSize = 256 * 1024

type CommandType uint32

const (
	CommandJump CommandType = iota + 1
	CommandClip
	CommandRect
	CommandText
	CommandIcon
)

func (t CommandType) String() string {
	switch t {
	case CommandJump:
		return "jump"
	case CommandClip:
		return "clip"
	case CommandRect:
		return "rect"
	case CommandText:
		return "text"
	case CommandIcon:
		return "icon"
	}
	return fmt.Sprintf("CommandType(%d)", uint32(t))
}

// Record sizes in bytes. Every record starts with {type, size uint32}.
const (
	headerSize   = 8
	rectSize     = 16
	colorSize    = 4
	jumpSize     = headerSize + 4
	clipSize     = headerSize + rectSize
	rectCmdSize  = headerSize + rectSize + colorSize
	iconSize     = headerSize + 4 + rectSize + colorSize
	textHeadSize = headerSize + 4 + 8 + 8 + colorSize + 4
)

// Command is a decoded record. Which fields are meaningful depends on Type:
//
//	CommandClip  Rect
//	CommandRect  Rect, Color
//	CommandText  Font, Rect (pen position and measured size), Color, Text
//	CommandIcon  Icon, Rect, Color
//	CommandJump  Target (only seen through Records)
//
// A zero Command is the iteration start for CommandList.Next.
type Command struct {
	Type   CommandType
	Rect   Rect
	Color  colors.Color
	Font   Font
	Text   string
	Icon   Icon
	Target int

	off, size int
}

// Offset is the record's position in the arena.
func (c Command) Offset() int { return c.off }

// CommandList is the per-frame draw arena. Records are appended in call
// order; root containers are bracketed by jump records that EndFrame patches
// so iteration visits them in paint order. Only integer offsets refer into
// the buffer.
type CommandList struct {
	buf   []byte
	limit int
	fonts []Font
	ctx   *Ctx
}

func newCommandList(limit int) *CommandList {
	return &CommandList{buf: make([]byte, 0, limit), limit: limit}
}

// Len is the write offset.
func (l *CommandList) Len() int { return len(l.buf) }

func (l *CommandList) Bytes() []byte { return l.buf }

func (l *CommandList) reset() {
	l.buf = l.buf[:0]
	clear(l.fonts)
	l.fonts = l.fonts[:0]
}

// push reserves a record of size bytes, writes its header and returns its
// offset.
func (l *CommandList) push(t CommandType, size int) int {
	off := len(l.buf)
	if off+size > l.limit {
		l.ctx.fatal("push "+t.String(), ErrArenaFull, "need %d bytes at %d, limit %d", size, off, l.limit)
	}
	l.buf = l.buf[:off+size]
	binary.LittleEndian.PutUint32(l.buf[off:], uint32(t))
	binary.LittleEndian.PutUint32(l.buf[off+4:], uint32(size))
	return off
}

func (l *CommandList) pushJump(target int) int {
	off := l.push(CommandJump, jumpSize)
	l.setJump(off, target)
	return off
}

func (l *CommandList) setJump(off, target int) {
	binary.LittleEndian.PutUint32(l.buf[off+headerSize:], uint32(target))
}

func (l *CommandList) jumpTarget(off int) int {
	return int(binary.LittleEndian.Uint32(l.buf[off+headerSize:]))
}

func (l *CommandList) internFont(f Font) uint32 {
	for i, have := range l.fonts {
		if have == f {
			return uint32(i)
		}
	}
	l.fonts = append(l.fonts, f)
	return uint32(len(l.fonts) - 1)
}

func putRect(b []byte, r Rect) {
	binary.LittleEndian.PutUint32(b[0:], uint32(int32(r.X)))
	binary.LittleEndian.PutUint32(b[4:], uint32(int32(r.Y)))
	binary.LittleEndian.PutUint32(b[8:], uint32(int32(r.W)))
	binary.LittleEndian.PutUint32(b[12:], uint32(int32(r.H)))
}

func getRect(b []byte) Rect {
	return Rect{
		X: int(int32(binary.LittleEndian.Uint32(b[0:]))),
		Y: int(int32(binary.LittleEndian.Uint32(b[4:]))),
		W: int(int32(binary.LittleEndian.Uint32(b[8:]))),
		H: int(int32(binary.LittleEndian.Uint32(b[12:]))),
	}
}

func putColor(b []byte, c colors.Color) { b[0], b[1], b[2], b[3] = c.R, c.G, c.B, c.A }

func getColor(b []byte) colors.Color { return colors.Color{R: b[0], G: b[1], B: b[2], A: b[3]} }

func (l *CommandList) pushClip(r Rect) {
	off := l.push(CommandClip, clipSize)
	putRect(l.buf[off+headerSize:], r)
}

func (l *CommandList) pushRect(r Rect, c colors.Color) {
	off := l.push(CommandRect, rectCmdSize)
	putRect(l.buf[off+headerSize:], r)
	putColor(l.buf[off+headerSize+rectSize:], c)
}

func (l *CommandList) pushIcon(id Icon, r Rect, c colors.Color) {
	off := l.push(CommandIcon, iconSize)
	b := l.buf[off+headerSize:]
	binary.LittleEndian.PutUint32(b, uint32(int32(id)))
	putRect(b[4:], r)
	putColor(b[4+rectSize:], c)
}

// pushText stores bbox as {pen x, pen y, measured w, measured h}.
func (l *CommandList) pushText(f Font, s string, bbox Rect, c colors.Color) {
	off := l.push(CommandText, textHeadSize+len(s))
	b := l.buf[off+headerSize:]
	binary.LittleEndian.PutUint32(b, l.internFont(f))
	putRect(b[4:], bbox)
	putColor(b[4+rectSize:], c)
	binary.LittleEndian.PutUint32(b[8+rectSize:], uint32(len(s)))
	copy(b[12+rectSize:], s)
}

func (l *CommandList) decode(off int, cmd *Command) {
	b := l.buf[off:]
	*cmd = Command{
		Type: CommandType(binary.LittleEndian.Uint32(b)),
		off:  off,
		size: int(binary.LittleEndian.Uint32(b[4:])),
	}
	b = b[headerSize:]
	switch cmd.Type {
	case CommandJump:
		cmd.Target = int(binary.LittleEndian.Uint32(b))
	case CommandClip:
		cmd.Rect = getRect(b)
	case CommandRect:
		cmd.Rect = getRect(b)
		cmd.Color = getColor(b[rectSize:])
	case CommandIcon:
		cmd.Icon = Icon(int32(binary.LittleEndian.Uint32(b)))
		cmd.Rect = getRect(b[4:])
		cmd.Color = getColor(b[4+rectSize:])
	case CommandText:
		cmd.Font = l.fonts[binary.LittleEndian.Uint32(b)]
		cmd.Rect = getRect(b[4:])
		cmd.Color = getColor(b[4+rectSize:])
		n := int(binary.LittleEndian.Uint32(b[8+rectSize:]))
		cmd.Text = string(b[12+rectSize : 12+rectSize+n])
	}
}

// Next advances cmd to the next drawable record, following jumps, and
// reports whether one was found. Start from a zero Command. The list can be
// walked any number of times until the next BeginFrame.
func (l *CommandList) Next(cmd *Command) bool {
	off := 0
	if cmd.size != 0 {
		off = cmd.off + cmd.size
	}
	for off != len(l.buf) {
		if CommandType(binary.LittleEndian.Uint32(l.buf[off:])) != CommandJump {
			l.decode(off, cmd)
			return true
		}
		off = l.jumpTarget(off)
	}
	return false
}

// Commands yields the drawable records in paint order.
func (l *CommandList) Commands() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		var cmd Command
		for l.Next(&cmd) {
			if !yield(cmd) {
				return
			}
		}
	}
}

// Records yields every record in storage order, jumps included, without
// following jumps.
func (l *CommandList) Records() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		var cmd Command
		for off := 0; off < len(l.buf); off += cmd.size {
			l.decode(off, &cmd)
			if !yield(cmd) {
				return
			}
		}
	}
}
