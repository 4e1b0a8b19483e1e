package snake

import (
	"iter"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Body is a double-ended queue of segments backed by a ring buffer.
// Index 0 is the segment right behind the head; the highest index is the tail.
// PushFront and Truncate are O(1).
type Body struct {
	buf   []core.Point
	start int // buffer index of element 0
	n     int
}

// NewBody creates an empty body able to hold capacity segments before it
// has to grow. Size it to the number of playable cells.
func NewBody(capacity int) *Body {
	return &Body{buf: make([]core.Point, max(capacity, 1))}
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return b.n
}

// PushFront inserts p as element 0.
func (b *Body) PushFront(p core.Point) {
	if b.n == len(b.buf) {
		b.grow()
	}
	b.start = (b.start - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.start] = p
	b.n++
}

// At returns element i. It panics if i is out of range, like a slice would.
func (b *Body) At(i int) core.Point {
	if i < 0 || i >= b.n {
		panic("snake: body index out of range")
	}
	return b.buf[(b.start+i)%len(b.buf)]
}

// Truncate keeps the first n segments and drops the rest.
// It is a no-op when the body already has n or fewer segments.
func (b *Body) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < b.n {
		b.n = n
	}
}

// Reset removes every segment.
func (b *Body) Reset() {
	b.start = 0
	b.n = 0
}

// Contains reports whether any segment equals p.
func (b *Body) Contains(p core.Point) bool {
	for _, seg := range b.All() {
		if seg == p {
			return true
		}
	}
	return false
}

// All iterates over the segments from neck to tail.
func (b *Body) All() iter.Seq2[int, core.Point] {
	return func(yield func(int, core.Point) bool) {
		for i := 0; i < b.n; i++ {
			if !yield(i, b.buf[(b.start+i)%len(b.buf)]) {
				return
			}
		}
	}
}

// Slice returns a copy of the segments from neck to tail.
func (b *Body) Slice() []core.Point {
	out := make([]core.Point, 0, b.n)
	for _, seg := range b.All() {
		out = append(out, seg)
	}
	return out
}

// grow doubles the buffer, unrolling the ring so element 0 sits at index 0.
func (b *Body) grow() {
	buf := make([]core.Point, len(b.buf)*2)
	for i := 0; i < b.n; i++ {
		buf[i] = b.buf[(b.start+i)%len(b.buf)]
	}
	b.buf = buf
	b.start = 0
}
