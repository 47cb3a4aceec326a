package rankcode

import (
	"fmt"

	"github.com/arloliu/gamesave/errs"
	"github.com/arloliu/gamesave/internal/bitstream"
	"github.com/arloliu/gamesave/section"
)

// Decoder expands a rank code blob.
//
// Two modes are available through Decode:
//   - Discovery (expectedSize == 0): a dry run over the bit count determines the
//     output length, then the real decode fills an exactly sized buffer.
//   - Known size (expectedSize > 0): the output is allocated up front and every
//     write is bound-checked against it.
//
// A Decoder only reads the blob it was created with and may be shared between goroutines.
type Decoder struct {
	header  section.RankHeader
	payload []byte
	empty   bool
}

// NewDecoder parses and validates the blob header.
//
// The decoder keeps a reference to blob; the caller must not modify it while decoding.
//
// Returns:
//   - *Decoder: Decoder ready to expand the blob
//   - error: ErrMalformedHeader if the header or blob length is inconsistent,
//     ErrTruncatedBitstream if fewer packed bytes are present than the bit count needs
func NewDecoder(blob []byte) (*Decoder, error) {
	if len(blob) == 0 {
		return &Decoder{empty: true}, nil
	}

	header, err := section.ParseRankHeader(blob)
	if err != nil {
		return nil, err
	}

	payload := blob[header.Size():]
	need := header.PackedSize()
	if len(payload) < need {
		return nil, fmt.Errorf("%w: bit count %d needs %d packed bytes, have %d",
			errs.ErrTruncatedBitstream, header.BitCount, need, len(payload))
	}
	if len(payload) > need {
		return nil, fmt.Errorf("%w: %d trailing bytes after packed bits",
			errs.ErrMalformedHeader, len(payload)-need)
	}

	return &Decoder{header: header, payload: payload}, nil
}

// Header returns the parsed blob header. It is the zero header for an empty blob.
func (d *Decoder) Header() section.RankHeader {
	return d.header
}

// IsEmpty reports whether the blob is the zero-length empty-input representation.
func (d *Decoder) IsEmpty() bool {
	return d.empty
}

// Count performs a dry run over the packed bits and returns the number of
// symbols they encode, validating every codeword on the way.
func (d *Decoder) Count() (int, error) {
	if d.empty {
		return 0, nil
	}

	return d.walk(nil)
}

// Decode expands the blob into a newly allocated buffer owned by the caller.
//
// Parameters:
//   - expectedSize: 0 for discovery mode, or the exact decoded length
//
// Returns:
//   - []byte: The original bytes
//   - error: ErrSizeMismatch if the decoded length differs from a non-zero expectedSize,
//     ErrTruncatedBitstream, ErrInvalidCodeword or ErrRankOutOfRange for corrupted payloads
func (d *Decoder) Decode(expectedSize int) ([]byte, error) {
	if expectedSize < 0 {
		return nil, fmt.Errorf("%w: negative expected size %d", errs.ErrSizeMismatch, expectedSize)
	}

	if expectedSize == 0 {
		n, err := d.Count()
		if err != nil {
			return nil, err
		}
		expectedSize = n
		if n == 0 {
			return []byte{}, nil
		}
	}

	if d.empty {
		return nil, fmt.Errorf("%w: empty blob, expected %d bytes", errs.ErrSizeMismatch, expectedSize)
	}

	out := make([]byte, expectedSize)
	n, err := d.walk(out)
	if err != nil {
		return nil, err
	}
	if n != expectedSize {
		return nil, fmt.Errorf("%w: decoded %d bytes, expected %d", errs.ErrSizeMismatch, n, expectedSize)
	}

	return out, nil
}

// walk runs the codeword state machine over exactly BitCount bits.
// With a nil out it only counts symbols; otherwise it writes each decoded byte
// into out and fails as soon as out would overflow.
func (d *Decoder) walk(out []byte) (int, error) {
	table := d.header.RankTable
	r := bitstream.NewReader(d.payload, uint64(d.header.BitCount))

	var st symbolState
	n := 0
	for {
		bit, ok := r.ReadBit()
		if !ok {
			break
		}

		rank, done, err := st.feed(bit)
		if err != nil {
			return n, fmt.Errorf("%w: at bit %d", err, r.Len()-r.Remaining()-1)
		}
		if !done {
			continue
		}

		if rank >= len(table) {
			return n, fmt.Errorf("%w: rank %d, tab count %d", errs.ErrRankOutOfRange, rank, len(table))
		}

		if out != nil {
			if n >= len(out) {
				return n, fmt.Errorf("%w: more than %d symbols in %d bits",
					errs.ErrSizeMismatch, len(out), d.header.BitCount)
			}
			out[n] = table[rank]
		}
		n++
	}

	if !st.idle() {
		return n, fmt.Errorf("%w: bit count %d ends inside a codeword", errs.ErrTruncatedBitstream, d.header.BitCount)
	}

	return n, nil
}

// symbolState tracks a partially read codeword.
type symbolState struct {
	cBit         int  // escape level read so far
	accumulating bool // reading offset bits
	remaining    int  // offset bits still to read
	offset       int  // offset accumulator, MSB first
}

// feed consumes one bit and reports the rank when it completes a codeword.
func (s *symbolState) feed(bit uint) (int, bool, error) {
	if s.accumulating {
		s.offset = s.offset<<1 | int(bit)
		s.remaining--
		if s.remaining > 0 {
			return 0, false, nil
		}

		rank := bucketStart[s.cBit] + s.offset
		*s = symbolState{}

		return rank, true, nil
	}

	if bit != 0 {
		s.cBit++
		if s.cBit > MaxLevel {
			return 0, false, fmt.Errorf("%w: escape prefix longer than %d", errs.ErrInvalidCodeword, MaxLevel)
		}

		return 0, false, nil
	}

	// zero bit terminates the escape prefix
	level := s.cBit
	extra := ExtraBits(level)
	if extra == 0 {
		*s = symbolState{}
		return bucketStart[level], true, nil
	}

	s.accumulating = true
	s.remaining = extra
	s.offset = 0

	return 0, false, nil
}

func (s *symbolState) idle() bool {
	return s.cBit == 0 && !s.accumulating
}

// Decode expands blob. Pass expectedSize 0 to discover the length from the blob.
func Decode(blob []byte, expectedSize int) ([]byte, error) {
	d, err := NewDecoder(blob)
	if err != nil {
		return nil, err
	}

	return d.Decode(expectedSize)
}

// Inspect parses and validates blob and returns its header without decoding the payload.
func Inspect(blob []byte) (section.RankHeader, error) {
	d, err := NewDecoder(blob)
	if err != nil {
		return section.RankHeader{}, err
	}

	return d.Header(), nil
}
