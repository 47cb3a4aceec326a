package rankcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeFor(t *testing.T) {
	tests := []struct {
		name   string
		rank   int
		bits   uint32
		level  uint8
		extra  uint8
		length uint8
	}{
		{name: "rank 0", rank: 0, bits: 0b0, level: 0, extra: 0, length: 1},
		{name: "rank 1", rank: 1, bits: 0b01, level: 1, extra: 0, length: 2},
		{name: "rank 2", rank: 2, bits: 0b0011, level: 2, extra: 1, length: 4},
		{name: "rank 3", rank: 3, bits: 0b1011, level: 2, extra: 1, length: 4},
		{name: "rank 4", rank: 4, bits: 0b000111, level: 3, extra: 2, length: 6},
		{name: "rank 5 offset MSB first", rank: 5, bits: 0b100111, level: 3, extra: 2, length: 6},
		{name: "rank 7", rank: 7, bits: 0b110111, level: 3, extra: 2, length: 6},
		{name: "rank 128", rank: 128, bits: 0x00FF, level: 8, extra: 7, length: 16},
		{name: "rank 255", rank: 255, bits: 0xFEFF, level: 8, extra: 7, length: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cw := CodeFor(tt.rank)
			require.Equal(t, tt.bits, cw.Bits)
			require.Equal(t, tt.level, cw.Level)
			require.Equal(t, tt.extra, cw.Extra)
			require.Equal(t, tt.length, cw.Length)
		})
	}
}

func TestCodeLength_Schedule(t *testing.T) {
	expected := []int{1, 2, 4, 6, 8, 10, 12, 14, 16}

	for level, want := range expected {
		for rank := BucketStart(level); rank < BucketStart(level)+BucketSize(level); rank++ {
			require.Equal(t, level, LevelOf(rank), "rank %d", rank)
			require.Equal(t, want, CodeLength(rank), "rank %d", rank)
		}
	}
}

func TestBuckets_CoverAllRanks(t *testing.T) {
	sizes := []int{1, 1, 2, 4, 8, 16, 32, 64, 128}
	total := 0
	for level, size := range sizes {
		require.Equal(t, total, BucketStart(level))
		require.Equal(t, size, BucketSize(level))
		if level >= 1 {
			require.Equal(t, size, 1<<ExtraBits(level), "bucket %d offsets must fill its extra bits", level)
		}
		total += size
	}
	require.Equal(t, NumRanks, total)
}

func TestCodeLength_NonDecreasing(t *testing.T) {
	for rank := 1; rank < NumRanks; rank++ {
		require.GreaterOrEqual(t, CodeLength(rank), CodeLength(rank-1))
	}
	require.Equal(t, MaxCodeLength, CodeLength(NumRanks-1))
}

func TestCodeTable_PrefixFree(t *testing.T) {
	for i := range NumRanks {
		a := CodeFor(i)
		for j := range NumRanks {
			if i == j {
				continue
			}
			b := CodeFor(j)
			if a.Length > b.Length {
				continue
			}
			mask := uint32(1)<<a.Length - 1
			require.NotEqual(t, a.Bits, b.Bits&mask, "rank %d is a prefix of rank %d", i, j)
		}
	}
}
