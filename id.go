package gui

import "hash/fnv"

// ID uniquely identifies a widget for state persistence.
type ID uint64

// GetID generates an ID from a string label, unique within the current ID
// stack. A per-frame call counter is mixed in so the same label drawn twice in
// a loop gets two IDs; the ID therefore shifts when widgets are inserted
// before it. Use GetStableID for state that must survive such changes.
func (ctx *Context) GetID(label string) ID {
	ctx.idCounter++
	return ID(uint64(ctx.CurrentID())<<32 | uint64(ctx.idCounter)<<16 | hashLabel(label)&0xFFFF)
}

// GetStableID generates an ID from the label and the ID stack only. It is the
// same in every frame as long as the ID stack is, whatever was drawn before.
func (ctx *Context) GetStableID(label string) ID {
	return ID(uint64(ctx.CurrentID())<<32 | hashLabel(label)&0xFFFFFFFF)
}

func hashLabel(label string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(label))
	return h.Sum64()
}

// PushStableID pushes a stable ID (see GetStableID) onto the stack. Every ID
// generated until the matching PopID is relative to it; VirtualList pushes
// each row's key.
func (ctx *Context) PushStableID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetStableID(label))
}

// PopID removes the last ID from the stack.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the current parent ID (top of stack).
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
