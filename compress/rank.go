package compress

import (
	"github.com/arloliu/gamesave/format"
	"github.com/arloliu/gamesave/rankcode"
)

// RankCompressor exposes the rank code as a Codec.
//
// Decompress runs in discovery mode because the Codec interface carries no
// expected length. Callers that know the decoded size should use
// rankcode.Decode directly to get the bound check.
type RankCompressor struct{}

var _ Codec = (*RankCompressor)(nil)

// NewRankCompressor creates a new rank code codec.
func NewRankCompressor() RankCompressor {
	return RankCompressor{}
}

// Type returns format.CompressionRank.
func (c RankCompressor) Type() format.CompressionType {
	return format.CompressionRank
}

// Compress encodes data into a rank code blob. Empty input yields an empty blob.
func (c RankCompressor) Compress(data []byte) ([]byte, error) {
	return rankcode.Encode(data)
}

// Decompress decodes a rank code blob, discovering its length.
func (c RankCompressor) Decompress(data []byte) ([]byte, error) {
	return rankcode.Decode(data, 0)
}
