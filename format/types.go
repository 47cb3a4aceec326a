package format

// CompressionType identifies a byte codec.
type CompressionType uint8

const (
	CompressionNone  CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd  CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2    CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4   CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionRank  CompressionType = 0x5 // CompressionRank represents the frequency-ranked prefix code.
	CompressionBzip2 CompressionType = 0x6 // CompressionBzip2 represents bzip2 compression.
)

// CompressionTypes lists every known compression type in ascending order.
var CompressionTypes = []CompressionType{
	CompressionNone,
	CompressionZstd,
	CompressionS2,
	CompressionLZ4,
	CompressionRank,
	CompressionBzip2,
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionRank:
		return "Rank"
	case CompressionBzip2:
		return "Bzip2"
	default:
		return "Unknown"
	}
}
