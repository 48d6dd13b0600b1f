package ui

// PoolSlot records which id occupies a slot and the frame it was last
// touched. ID 0 marks an empty slot.
type PoolSlot struct {
	ID         ID
	LastUpdate int
}

// Pool maps ids to a fixed number of slot indices, reusing the least
// recently touched slot when it runs out. The owner keeps its payload in a
// parallel slice indexed by the same numbers.
type Pool struct {
	name  string
	slots []PoolSlot
	ctx   *Ctx // reports exhaustion; nil for a standalone pool
}

func NewPool(name string, size int) *Pool {
	return &Pool{name: name, slots: make([]PoolSlot, size)}
}

func (p *Pool) Len() int { return len(p.slots) }

func (p *Pool) Slot(idx int) PoolSlot { return p.slots[idx] }

// Lookup returns the slot holding id, or -1.
func (p *Pool) Lookup(id ID) int {
	for i := range p.slots {
		if p.slots[i].ID == id {
			return i
		}
	}
	return -1
}

// Allocate claims the slot with the oldest stamp for id and touches it.
// Slots touched during frame are never evicted; if every slot was, the
// pool is exhausted.
func (p *Pool) Allocate(id ID, frame int) int {
	n, oldest := -1, frame
	for i := range p.slots {
		if p.slots[i].LastUpdate < oldest {
			oldest = p.slots[i].LastUpdate
			n = i
		}
	}
	if n < 0 {
		op := "allocate " + p.name
		if p.ctx == nil {
			panic(&UsageError{Op: op, Err: ErrPoolExhausted})
		}
		p.ctx.fatal(op, ErrPoolExhausted, "%d slots", len(p.slots))
	}
	if p.ctx != nil && p.slots[n].ID != 0 {
		p.ctx.log.Debug("pool evict", "pool", p.name, "slot", n, "id", p.slots[n].ID, "last_update", oldest)
	}
	p.slots[n].ID = id
	p.Touch(n, frame)
	return n
}

func (p *Pool) Touch(idx, frame int) { p.slots[idx].LastUpdate = frame }

// Clear empties a slot so it is picked before any live one.
func (p *Pool) Clear(idx int) { p.slots[idx] = PoolSlot{} }
