package rankcode

import "math/bits"

const (
	// NumRanks is the number of rank positions, one per possible byte value.
	NumRanks = 256
	// MaxLevel is the deepest escape level. Level L selects a bucket of 2^(L-1) ranks (L >= 1).
	MaxLevel = 8
	// MaxCodeLength is the longest codeword in bits, used by ranks 128-255.
	MaxCodeLength = 2 * MaxLevel
)

// bucketStart[L] is the first rank of bucket L; bucketStart[MaxLevel+1] closes the last bucket.
var bucketStart = [MaxLevel + 2]int{0, 1, 2, 4, 8, 16, 32, 64, 128, 256}

// Codeword describes the fixed prefix code assigned to one rank position.
//
// A codeword is Level one-bits, a terminating zero-bit, then Extra bits holding
// the rank's offset within its bucket, most significant bit first.
type Codeword struct {
	Bits   uint32 // codeword in stream order: the first bit to emit is bit 0
	Level  uint8  // escape level, the count of leading one-bits
	Extra  uint8  // number of offset bits after the terminating zero
	Length uint8  // total codeword length in bits
}

var codeTable [NumRanks]Codeword

func init() {
	for rank := range NumRanks {
		codeTable[rank] = buildCodeword(rank)
	}
}

func buildCodeword(rank int) Codeword {
	level := LevelOf(rank)
	extra := ExtraBits(level)
	offset := rank - bucketStart[level]

	// unary escape prefix; bit `level` stays zero as the terminator
	code := uint32(1)<<level - 1
	for i := range extra {
		bit := uint32(offset>>(extra-1-i)) & 1
		code |= bit << (level + 1 + i)
	}

	return Codeword{
		Bits:   code,
		Level:  uint8(level),
		Extra:  uint8(extra),
		Length: uint8(level + 1 + extra),
	}
}

// CodeFor returns the codeword for rank. Panics if rank is outside [0, NumRanks).
func CodeFor(rank int) Codeword {
	return codeTable[rank]
}

// CodeLength returns the codeword length in bits for rank: 1 for rank 0, 2 for
// rank 1, and 2L for ranks in bucket L >= 2.
func CodeLength(rank int) int {
	return int(codeTable[rank].Length)
}

// LevelOf returns the escape level of the bucket containing rank.
//
// Bucket starts are powers of two, so the level is the bit length of the rank.
func LevelOf(rank int) int {
	return bits.Len8(uint8(rank))
}

// ExtraBits returns the number of offset bits that follow the prefix at level.
func ExtraBits(level int) int {
	if level < 2 {
		return 0
	}

	return level - 1
}

// BucketStart returns the first rank of the bucket at level.
func BucketStart(level int) int {
	return bucketStart[level]
}

// BucketSize returns the number of ranks in the bucket at level.
func BucketSize(level int) int {
	return bucketStart[level+1] - bucketStart[level]
}
