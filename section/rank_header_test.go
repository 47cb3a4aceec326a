package section

import (
	"testing"

	"github.com/arloliu/gamesave/errs"
	"github.com/stretchr/testify/require"
)

func TestNewRankHeader(t *testing.T) {
	header := NewRankHeader(4, []byte{0x41})

	require.NotNil(t, header)
	require.Equal(t, uint32(4), header.BitCount)
	require.Equal(t, 1, header.TabCount())
	require.Equal(t, 6, header.Size())
	require.Equal(t, 1, header.PackedSize())
	require.Equal(t, 7, header.BlobSize())
}

func TestRankHeader_Bytes(t *testing.T) {
	header := NewRankHeader(0x01020304, []byte{0x41, 0x42, 0x43})

	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01, 0x02, 0x41, 0x42, 0x43}, header.Bytes())
}

func TestRankHeader_Parse(t *testing.T) {
	t.Run("Valid header", func(t *testing.T) {
		original := NewRankHeader(1234, []byte{9, 8, 7, 6})
		data := append(original.Bytes(), 0xAA, 0xBB)

		parsed := &RankHeader{}
		err := parsed.Parse(data)

		require.NoError(t, err)
		require.Equal(t, original.BitCount, parsed.BitCount)
		require.Equal(t, original.RankTable, parsed.RankTable)
		require.Equal(t, 9, parsed.Size())
	})

	t.Run("Full table", func(t *testing.T) {
		table := make([]byte, MaxTabCount)
		for i := range table {
			table[i] = byte(i)
		}
		data := NewRankHeader(2048, table).Bytes()
		require.Equal(t, byte(0xFF), data[BitCountSize])
		require.Len(t, data, MaxRankHeaderSize)

		parsed, err := ParseRankHeader(data)
		require.NoError(t, err)
		require.Equal(t, MaxTabCount, parsed.TabCount())
	})

	t.Run("Too short for fixed fields", func(t *testing.T) {
		_, err := ParseRankHeader([]byte{1, 2, 3})
		require.ErrorIs(t, err, errs.ErrMalformedHeader)
	})

	t.Run("Too short for rank table", func(t *testing.T) {
		// declares TabCount 3 but carries 2 table bytes
		_, err := ParseRankHeader([]byte{8, 0, 0, 0, 2, 0x10, 0x20})
		require.ErrorIs(t, err, errs.ErrMalformedHeader)
	})
}

func TestRankHeader_PackedSize(t *testing.T) {
	tests := []struct {
		bitCount uint32
		expected int
	}{
		{0, 0},
		{1, 1},
		{8, 1},
		{9, 2},
		{0xFFFFFFFF, 0x20000000},
	}

	for _, tt := range tests {
		h := RankHeader{BitCount: tt.bitCount}
		require.Equal(t, tt.expected, h.PackedSize(), "bitCount %d", tt.bitCount)
	}
}

func TestRankHeader_Validate(t *testing.T) {
	require.ErrorIs(t, (&RankHeader{}).Validate(), errs.ErrMalformedHeader)
	require.ErrorIs(t, (&RankHeader{RankTable: make([]byte, MaxTabCount+1)}).Validate(), errs.ErrMalformedHeader)
	require.NoError(t, (&RankHeader{RankTable: []byte{1}}).Validate())

	require.Panics(t, func() { (&RankHeader{}).Bytes() })
}
