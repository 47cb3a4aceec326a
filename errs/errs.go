// Package errs defines the sentinel errors shared by the gamesave codec packages.
//
// Callers should test for these with errors.Is; producers wrap them with
// additional context using fmt.Errorf("%w: ...").
package errs

import "errors"

// Rank code blob errors.
var (
	// ErrMalformedHeader is returned when the declared TabCount or bit count is
	// inconsistent with the length of the compressed blob.
	ErrMalformedHeader = errors.New("malformed rank code header")
	// ErrTruncatedBitstream is returned when fewer bits are available than the
	// header declares, or the declared bits end in the middle of a codeword.
	ErrTruncatedBitstream = errors.New("truncated rank code bitstream")
	// ErrSizeMismatch is returned when a known-size decode would underflow or
	// overflow the target buffer.
	ErrSizeMismatch = errors.New("decoded size mismatch")
	// ErrInvalidCodeword is returned when an escape prefix exceeds the deepest bucket.
	ErrInvalidCodeword = errors.New("invalid rank codeword")
	// ErrRankOutOfRange is returned when a decoded rank has no entry in the rank table.
	ErrRankOutOfRange = errors.New("rank outside rank table")
	// ErrInputTooLarge is returned when the encoded bit count does not fit the 32-bit header field.
	ErrInputTooLarge = errors.New("input too large for rank code blob")
)

// Obfuscation layer errors.
var (
	// ErrFilteredLengthNotMultipleOfThree is returned when the obfuscated text,
	// after dropping characters outside the alphabet, cannot be split into
	// key and digit-pair blocks.
	ErrFilteredLengthNotMultipleOfThree = errors.New("obfuscated length is not a multiple of three")
	// ErrInvalidDigitPair is returned when a (tens, ones) pair cannot encode a byte.
	ErrInvalidDigitPair = errors.New("invalid obfuscated digit pair")
)

// ErrRoundTripMismatch is returned when a codec does not restore its input.
var ErrRoundTripMismatch = errors.New("codec round trip mismatch")

// Persistence errors.
var (
	// ErrChecksumMismatch is returned when decoded record bytes disagree with the
	// entry's checksum attribute, or the attribute cannot be parsed.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrInvalidRecordSize is returned when a record buffer is not exactly the size of its layout.
	ErrInvalidRecordSize = errors.New("invalid record size")
)
