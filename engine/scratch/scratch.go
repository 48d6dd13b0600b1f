// Package scratch formats per-frame labels into one reusable byte buffer.
// Immediate-mode UIs rebuild every label each frame; the ui copies text into
// its command arena, so a view into the buffer only has to live until the
// widget call returns.
package scratch

import (
	"strconv"
	"unicode/utf8"
	"unsafe"
)

// Buffer is single-goroutine. Reset it once per frame.
type Buffer struct {
	buf []byte
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer length without freeing memory.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

func (b *Buffer) Cap() int { return cap(b.buf) }
func (b *Buffer) Len() int { return len(b.buf) }

// Grow makes room for n more bytes.
func (b *Buffer) Grow(n int) {
	if len(b.buf)+n <= cap(b.buf) {
		return
	}
	nb := make([]byte, len(b.buf), max(cap(b.buf)*2, len(b.buf)+n))
	copy(nb, b.buf)
	b.buf = nb
}

// Mark returns a bookmark to later slice the output.
func (b *Buffer) Mark() int { return len(b.buf) }

// StringFrom copies the bytes written since mark.
func (b *Buffer) StringFrom(mark int) string { return string(b.buf[mark:]) }

// ViewFrom is a zero-copy string over the bytes written since mark. It is
// valid until the next Reset.
func (b *Buffer) ViewFrom(mark int) string {
	s := b.buf[mark:]
	if len(s) == 0 {
		return ""
	}
	return unsafe.String(&s[0], len(s))
}

// ----- chainable appends -----

func (b *Buffer) S(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

func (b *Buffer) C(c byte) *Buffer {
	b.buf = append(b.buf, c)
	return b
}

func (b *Buffer) R(r rune) *Buffer {
	b.buf = utf8.AppendRune(b.buf, r)
	return b
}

func (b *Buffer) I(v int) *Buffer {
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

func (b *Buffer) U(v uint64) *Buffer {
	b.buf = strconv.AppendUint(b.buf, v, 10)
	return b
}

// F64 appends v with prec digits after the point.
func (b *Buffer) F64(v float64, prec int) *Buffer {
	b.buf = strconv.AppendFloat(b.buf, v, 'f', prec, 64)
	return b
}

func (b *Buffer) Bool(v bool) *Buffer {
	b.buf = strconv.AppendBool(b.buf, v)
	return b
}

// Hex appends u in lowercase hexadecimal without "0x".
func (b *Buffer) Hex(u uint64) *Buffer {
	b.buf = strconv.AppendUint(b.buf, u, 16)
	return b
}

// Pad appends n copies of c.
func (b *Buffer) Pad(n int, c byte) *Buffer {
	if n <= 0 {
		return b
	}
	b.Grow(n)
	for range n {
		b.buf = append(b.buf, c)
	}
	return b
}

// Sprintf supports %s %d %u %x %t %f (with .prec) and %%, and returns a
// view valid until the next Reset. Unknown verbs are written literally.
// Missing arguments stop formatting.
func (b *Buffer) Sprintf(format string, args ...any) string {
	var ai int
	mark := len(b.buf)
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			b.buf = append(b.buf, ch)
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			b.buf = append(b.buf, '%')
			i++
			continue
		}
		i++
		prec := -1
		if i < len(format) && format[i] == '.' {
			i++
			start := i
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
			prec, _ = strconv.Atoi(format[start:i])
		}
		if i >= len(format) || ai >= len(args) {
			break
		}
		switch format[i] {
		case 's':
			b.str(args[ai])
		case 'd':
			b.buf = strconv.AppendInt(b.buf, toInt64(args[ai]), 10)
		case 'u':
			b.buf = strconv.AppendUint(b.buf, uint64(toInt64(args[ai])), 10)
		case 'x':
			b.buf = strconv.AppendUint(b.buf, uint64(toInt64(args[ai])), 16)
		case 't':
			v, _ := args[ai].(bool)
			b.buf = strconv.AppendBool(b.buf, v)
		case 'f':
			if prec < 0 {
				prec = 3
			}
			b.buf = strconv.AppendFloat(b.buf, toFloat64(args[ai]), 'f', prec, 64)
		default:
			b.buf = append(b.buf, '%', format[i])
		}
		ai++
	}
	return b.ViewFrom(mark)
}

func (b *Buffer) str(v any) {
	switch x := v.(type) {
	case string:
		b.buf = append(b.buf, x...)
	case []byte:
		b.buf = append(b.buf, x...)
	case interface{ String() string }:
		b.buf = append(b.buf, x.String()...)
	default:
		b.buf = append(b.buf, "<unsupported>"...)
	}
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case uintptr:
		return int64(x)
	}
	return 0
}

func toFloat64(v any) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	}
	return float64(toInt64(v))
}
