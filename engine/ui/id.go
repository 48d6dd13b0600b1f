package ui

import "encoding/binary"

// ID identifies one widget occurrence across frames. It is a hash, so two
// different occurrences can collide.
type ID uint32

// 32-bit FNV-1a.
const (
	hashInitial ID = 2166136261
	hashPrime   ID = 16777619
)

func hashBytes(h ID, data []byte) ID {
	for _, b := range data {
		h = (h ^ ID(b)) * hashPrime
	}
	return h
}

func hashString(h ID, s string) ID {
	for i := 0; i < len(s); i++ {
		h = (h ^ ID(s[i])) * hashPrime
	}
	return h
}

func (c *Ctx) scopeID() ID {
	if top := c.idStack.top(); top != nil {
		return *top
	}
	return hashInitial
}

// GetID hashes data into the current id scope.
func (c *Ctx) GetID(data []byte) ID {
	c.lastID = hashBytes(c.scopeID(), data)
	return c.lastID
}

func (c *Ctx) GetIDString(s string) ID {
	c.lastID = hashString(c.scopeID(), s)
	return c.lastID
}

// GetIDInt hashes n as 8 little-endian bytes, for loop indices and the like.
func (c *Ctx) GetIDInt(n int) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	return c.GetID(buf[:])
}

func (c *Ctx) PushID(data []byte)    { c.idStack.push(c, c.GetID(data)) }
func (c *Ctx) PushIDString(s string) { c.idStack.push(c, c.GetIDString(s)) }
func (c *Ctx) PushIDInt(n int)       { c.idStack.push(c, c.GetIDInt(n)) }
func (c *Ctx) PopID()                { c.idStack.pop(c) }

// LastID is the id most recently produced by any GetID variant.
func (c *Ctx) LastID() ID { return c.lastID }
