// Package gamesave stores fixed-size game records as printable text entries.
//
// A record blob goes through two reversible stages before it is written:
//
//  1. rankcode compresses it with a frequency-ranked prefix code
//  2. obfs turns the compressed bytes into lowercase letters wrapped with spaces
//
// Loading runs the stages backwards and, because the record sizes are fixed,
// decodes in known-size mode so a corrupted entry cannot produce more or fewer
// bytes than the record needs.
//
// # Basic Usage
//
// Encoding and decoding a single blob:
//
//	text, err := gamesave.Encode(raw)
//	raw, err = gamesave.Decode(text, len(raw))
//
// Persisting the score table and pilot profiles in a document:
//
//	doc := gamesave.NewMemoryDocument()
//	store, _ := gamesave.NewStore(doc, gamesave.WithLogger(logger))
//
//	scores := gamesave.DefaultTopScores()
//	scores.Insert(gamesave.ScoreRecord{Name: gamesave.NewName("MAVERICK"), Score: 12000})
//	_ = store.SaveScores(&scores)
//
//	state, err := store.Load()
//	// state is always usable; err lists entries that fell back to defaults
//
// # Package Structure
//
//   - rankcode: the compressor and its blob format
//   - obfs: the letter encoding
//   - compress: the rank code next to general-purpose codecs for comparison
//   - section: the blob header
//   - errs: sentinel errors shared by all packages
package gamesave

import (
	"github.com/arloliu/gamesave/obfs"
	"github.com/arloliu/gamesave/rankcode"
)

// Encode compresses raw and returns its obfuscated text.
//
// Without options keys come from a freshly seeded random source, so encoding
// the same bytes twice gives different text that decodes identically.
func Encode(raw []byte, opts ...obfs.EncoderOption) (string, error) {
	enc, err := obfs.NewEncoder(opts...)
	if err != nil {
		return "", err
	}

	return encodeWith(enc, raw)
}

// Decode reverses Encode.
//
// Parameters:
//   - text: Obfuscated text; characters outside 'a'..'z' are ignored
//   - expectedSize: Exact decoded length, or 0 to discover it from the blob
//
// Returns:
//   - []byte: The original bytes
//   - error: Any obfs or rankcode error; no partial output is returned
func Decode(text string, expectedSize int) ([]byte, error) {
	blob, err := obfs.Decode(text)
	if err != nil {
		return nil, err
	}

	return rankcode.Decode(blob, expectedSize)
}

func encodeWith(enc *obfs.Encoder, raw []byte) (string, error) {
	blob, err := rankcode.Encode(raw)
	if err != nil {
		return "", err
	}

	return enc.Encode(blob), nil
}
