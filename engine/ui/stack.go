package ui

// stack is a fixed-capacity LIFO. Its backing array is allocated once so a
// frame never grows it; overflow and underflow are usage errors.
type stack[T any] struct {
	name  string
	items []T
}

func newStack[T any](name string, capacity int) stack[T] {
	return stack[T]{name: name, items: make([]T, 0, capacity)}
}

func (s *stack[T]) len() int { return len(s.items) }

func (s *stack[T]) push(c *Ctx, v T) {
	if len(s.items) == cap(s.items) {
		c.fatal("push "+s.name, ErrStackOverflow, "capacity %d", cap(s.items))
	}
	s.items = append(s.items, v)
}

func (s *stack[T]) pop(c *Ctx) T {
	if len(s.items) == 0 {
		c.fatal("pop "+s.name, ErrStackUnderflow, "")
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v
}

// top returns a pointer to the top item, or nil when empty.
func (s *stack[T]) top() *T {
	if len(s.items) == 0 {
		return nil
	}
	return &s.items[len(s.items)-1]
}

func (s *stack[T]) reset() { s.items = s.items[:0] }
