package cbor

import "sync"

// ByteBuffer is a small growable byte buffer backed by a sync.Pool, used
// internally by the Scanner to accumulate a Pay payload and by the
// Parser to concatenate the chunks of an indefinite-length byte/text
// string. It is not part of the public value or token model.
type ByteBuffer struct {
	b []byte
}

var bbPool = sync.Pool{New: func() any { return &ByteBuffer{b: make([]byte, 0, 64)} }}

// getByteBuffer obtains a pooled, zero-length ByteBuffer.
func getByteBuffer() *ByteBuffer {
	bb := bbPool.Get().(*ByteBuffer)
	bb.b = bb.b[:0]
	return bb
}

// putByteBuffer returns bb to the pool. The caller must not use bb
// afterward.
func putByteBuffer(bb *ByteBuffer) {
	bb.b = bb.b[:0]
	bbPool.Put(bb)
}

// Bytes returns the buffer's current contents.
func (bb *ByteBuffer) Bytes() []byte { return bb.b }

// Len returns the buffer's current length.
func (bb *ByteBuffer) Len() int { return len(bb.b) }

// Reset truncates the buffer to zero length without releasing capacity.
func (bb *ByteBuffer) Reset() { bb.b = bb.b[:0] }

// ensure grows the buffer's capacity, if needed, to hold n more bytes
// without reallocating again.
func (bb *ByteBuffer) ensure(n int) {
	need := len(bb.b) + n
	if cap(bb.b) >= need {
		return
	}
	c := cap(bb.b)
	if c == 0 {
		c = 64
	}
	for c < need {
		c <<= 1
	}
	nb := make([]byte, len(bb.b), c)
	copy(nb, bb.b)
	bb.b = nb
}

// WriteByte appends a single byte.
func (bb *ByteBuffer) WriteByte(c byte) {
	bb.ensure(1)
	bb.b = append(bb.b, c)
}

// Write appends p.
func (bb *ByteBuffer) Write(p []byte) {
	bb.ensure(len(p))
	bb.b = append(bb.b, p...)
}

// Take returns a freshly allocated copy of the buffer's contents, sized
// exactly to fit. Use this when handing the bytes to a caller who may
// retain them past the buffer's return to the pool.
func (bb *ByteBuffer) Take() []byte {
	out := make([]byte, len(bb.b))
	copy(out, bb.b)
	return out
}
