package rankcode

import (
	"fmt"
	"math"

	"github.com/arloliu/gamesave/errs"
	"github.com/arloliu/gamesave/internal/bitstream"
	"github.com/arloliu/gamesave/internal/pool"
	"github.com/arloliu/gamesave/section"
)

// Encoder compresses byte buffers into rank code blobs.
//
// The encoding process:
//  1. Count byte frequencies and rank the distinct values, most frequent first
//  2. Sum the codeword lengths to get the bit count
//  3. Emit the header: bit count, TabCount-1, rank table
//  4. Pack the codeword of each input byte's rank, in input order, LSB-first
//
// The zero value is ready to use. An Encoder reuses its scratch histogram
// between calls and is not safe for concurrent use.
type Encoder struct {
	hist Histogram
}

// NewEncoder creates a new rank code encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode compresses data and returns a newly allocated blob owned by the caller.
//
// Empty input encodes to a zero-length blob.
//
// Returns:
//   - []byte: The compressed blob
//   - error: ErrInputTooLarge if the packed bit count exceeds math.MaxUint32
func (e *Encoder) Encode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	e.hist = Histogram{}
	e.hist.Add(data)

	table := e.hist.RankTable()
	bitCount := e.hist.BitCount(table)
	if bitCount > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bits for %d input bytes", errs.ErrInputTooLarge, bitCount, len(data))
	}

	header := section.NewRankHeader(uint32(bitCount), table)

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	buf.Grow(header.BlobSize())
	buf.B = header.AppendTo(buf.B)

	ranks := table.Ranks()
	w := bitstream.NewWriter(buf)
	for _, b := range data {
		cw := codeTable[ranks[b]]
		w.WriteBits(uint64(cw.Bits), int(cw.Length))
	}
	w.Flush()

	return buf.Clone(), nil
}

// Encode compresses data with a fresh Encoder.
func Encode(data []byte) ([]byte, error) {
	return NewEncoder().Encode(data)
}
