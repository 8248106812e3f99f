package audio

import "sync"

// toneSlot holds one tone, rendered at unit volume on first use
type toneSlot struct {
	once sync.Once
	buf  floatBuffer
}

// toneCache renders each sound at most once, unknown ids share the bell slot
// Slots render independently so a slow tone never blocks lookups of another
type toneCache struct {
	slots [soundTypeCount]toneSlot
}

func (c *toneCache) lookup(id string) floatBuffer {
	st, _ := ParseSound(id)
	s := &c.slots[st]
	s.once.Do(func() {
		s.buf = generateSound(st)
	})
	return s.buf
}
