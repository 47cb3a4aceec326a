package bitstream

import "github.com/arloliu/gamesave/internal/pool"

// MaxWriteBits is the largest bit count accepted by a single WriteBits call.
const MaxWriteBits = 32

// Writer appends bits to a pool.ByteBuffer, least-significant bit first.
//
// Complete bytes are flushed to the buffer as soon as they fill; call Flush
// once at the end to emit the zero-padded trailing byte.
type Writer struct {
	bitBuf   uint64 // pending bits, low bitCount bits valid
	bitCount int    // number of pending bits, always < 8 between calls
	written  uint64 // total bits written since creation
	buf      *pool.ByteBuffer
}

// NewWriter creates a Writer that appends to buf.
func NewWriter(buf *pool.ByteBuffer) *Writer {
	return &Writer{buf: buf}
}

// WriteBit writes a single bit. Any non-zero value writes a one.
func (w *Writer) WriteBit(bit uint) {
	if bit != 0 {
		w.WriteBits(1, 1)
	} else {
		w.WriteBits(0, 1)
	}
}

// WriteBits writes the low n bits of value, bit 0 first.
//
// Panics if n is negative or greater than MaxWriteBits.
func (w *Writer) WriteBits(value uint64, n int) {
	if n < 0 || n > MaxWriteBits {
		panic("bitstream: bit count out of range")
	}

	w.bitBuf |= (value & (uint64(1)<<n - 1)) << w.bitCount
	w.bitCount += n
	w.written += uint64(n)

	for w.bitCount >= 8 {
		_ = w.buf.WriteByte(byte(w.bitBuf))
		w.bitBuf >>= 8
		w.bitCount -= 8
	}
}

// Flush writes the pending partial byte, if any, zero-padded on the high side.
// Writing may continue afterwards but will start at a fresh byte boundary.
func (w *Writer) Flush() {
	if w.bitCount == 0 {
		return
	}

	_ = w.buf.WriteByte(byte(w.bitBuf))
	w.written += uint64(8 - w.bitCount)
	w.bitBuf = 0
	w.bitCount = 0
}

// BitsWritten returns the number of bits written, including any padding emitted by Flush.
func (w *Writer) BitsWritten() uint64 {
	return w.written
}
