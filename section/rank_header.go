package section

import (
	"fmt"

	"github.com/arloliu/gamesave/endian"
	"github.com/arloliu/gamesave/errs"
)

// RankHeader represents the variable-size header at the start of a rank code blob.
type RankHeader struct {
	// BitCount is the number of meaningful bits in the packed payload, excluding padding.
	BitCount uint32 // byte offset 0-3
	// RankTable lists the distinct byte values of the original input, most frequent first.
	// Its length is the TabCount.
	RankTable []byte // byte offset 5-(5+TabCount)
}

// NewRankHeader creates a header for the given bit count and rank table.
//
// The table is referenced, not copied.
func NewRankHeader(bitCount uint32, rankTable []byte) *RankHeader {
	return &RankHeader{
		BitCount:  bitCount,
		RankTable: rankTable,
	}
}

// TabCount returns the number of entries in the rank table.
func (h *RankHeader) TabCount() int {
	return len(h.RankTable)
}

// Size returns the serialized header size in bytes.
func (h *RankHeader) Size() int {
	return RankHeaderFixedSize + len(h.RankTable)
}

// PackedSize returns the number of payload bytes needed to hold BitCount bits.
func (h *RankHeader) PackedSize() int {
	return int((uint64(h.BitCount) + 7) / 8)
}

// BlobSize returns the total size of a well-formed blob carrying this header.
func (h *RankHeader) BlobSize() int {
	return h.Size() + h.PackedSize()
}

// Validate checks that the rank table length can be represented in the header.
func (h *RankHeader) Validate() error {
	n := len(h.RankTable)
	if n < MinTabCount || n > MaxTabCount {
		return fmt.Errorf("%w: tab count %d outside [%d, %d]", errs.ErrMalformedHeader, n, MinTabCount, MaxTabCount)
	}

	return nil
}

// Parse parses the header from the start of a blob.
//
// The rank table aliases data; it is not copied.
//
// Parameters:
//   - data: Blob bytes beginning with the header
//
// Returns:
//   - error: ErrMalformedHeader if data is too short for the fixed fields or the declared rank table
func (h *RankHeader) Parse(data []byte) error {
	if len(data) < RankHeaderFixedSize {
		return fmt.Errorf("%w: need %d header bytes, have %d", errs.ErrMalformedHeader, RankHeaderFixedSize, len(data))
	}

	engine := endian.GetLittleEndianEngine()
	h.BitCount = engine.Uint32(data[0:BitCountSize])
	tabCount := int(data[BitCountSize]) + 1

	end := RankTableOffset + tabCount
	if len(data) < end {
		return fmt.Errorf("%w: tab count %d needs %d bytes, have %d", errs.ErrMalformedHeader, tabCount, end, len(data))
	}
	h.RankTable = data[RankTableOffset:end]

	return nil
}

// AppendTo appends the serialized header to buf and returns the extended slice.
//
// Panics if the rank table is empty or longer than MaxTabCount; callers must Validate first.
func (h *RankHeader) AppendTo(buf []byte) []byte {
	if err := h.Validate(); err != nil {
		panic(err)
	}

	engine := endian.GetLittleEndianEngine()
	buf = engine.AppendUint32(buf, h.BitCount)
	buf = append(buf, byte(len(h.RankTable)-1))

	return append(buf, h.RankTable...)
}

// Bytes serializes the RankHeader into a new byte slice.
func (h *RankHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, h.Size()))
}

// ParseRankHeader parses a RankHeader from the start of a blob.
//
// Parameters:
//   - data: Blob bytes (must hold at least the fixed fields and the rank table)
//
// Returns:
//   - RankHeader: Parsed header whose rank table aliases data
//   - error: ErrMalformedHeader if data is too short
func ParseRankHeader(data []byte) (RankHeader, error) {
	h := RankHeader{}
	if err := h.Parse(data); err != nil {
		return RankHeader{}, err
	}

	return h, nil
}
