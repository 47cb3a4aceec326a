package bitstream

// Reader consumes bits from a byte slice, least-significant bit first,
// stopping after a fixed number of bits.
type Reader struct {
	data  []byte
	pos   uint64 // index of the next bit to read
	limit uint64 // total readable bits
}

// NewReader creates a Reader over the first nbits bits of data.
//
// If data holds fewer than nbits bits the limit is clamped to len(data)*8;
// callers that need to distinguish truncation should compare Len against nbits.
func NewReader(data []byte, nbits uint64) *Reader {
	avail := uint64(len(data)) * 8
	if nbits > avail {
		nbits = avail
	}

	return &Reader{data: data, limit: nbits}
}

// ReadBit returns the next bit and true, or 0 and false once the limit is reached.
func (r *Reader) ReadBit() (uint, bool) {
	if r.pos >= r.limit {
		return 0, false
	}

	bit := uint(r.data[r.pos>>3]>>(r.pos&7)) & 1
	r.pos++

	return bit, true
}

// ReadBits reads n bits (n <= 64) and returns them with the first bit read in bit 0.
// It returns false without consuming anything if fewer than n bits remain.
func (r *Reader) ReadBits(n int) (uint64, bool) {
	if n < 0 || n > 64 || uint64(n) > r.Remaining() {
		return 0, false
	}

	var v uint64
	for i := range n {
		bit, _ := r.ReadBit()
		v |= uint64(bit) << i
	}

	return v, true
}

// Len returns the total number of readable bits.
func (r *Reader) Len() uint64 {
	return r.limit
}

// Remaining returns the number of bits not yet consumed.
func (r *Reader) Remaining() uint64 {
	return r.limit - r.pos
}
