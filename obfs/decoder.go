package obfs

import (
	"fmt"

	"github.com/arloliu/gamesave/errs"
	"github.com/arloliu/gamesave/internal/pool"
)

// Decode recovers the blob from obfuscated text.
//
// Bytes outside 'a'..'z' are discarded before decoding. When the remaining
// letter count is not a multiple of three the leftover letters are dropped: the
// returned blob holds the bytes that could be decoded and the error is
// ErrFilteredLengthNotMultipleOfThree.
//
// Returns:
//   - []byte: The decoded blob, owned by the caller
//   - error: ErrFilteredLengthNotMultipleOfThree or ErrInvalidDigitPair
func Decode(text string) ([]byte, error) {
	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	buf.Grow(len(text))
	buf.B = appendLetters(buf.B, text)
	letters := buf.B

	m := len(letters) / 3
	out := make([]byte, m)
	for i := range m {
		key := letters[i]
		tens := int(letters[m+2*i] - 'a')
		ones := int(letters[m+2*i+1] - 'a')

		x := tens*10 + ones
		if ones > 9 || x > 255 {
			return nil, fmt.Errorf("%w: %q at byte %d", errs.ErrInvalidDigitPair, letters[m+2*i:m+2*i+2], i)
		}
		out[i] = byte(x) ^ key
	}

	if rem := len(letters) % 3; rem != 0 {
		return out, fmt.Errorf("%w: %d letters, %d left over", errs.ErrFilteredLengthNotMultipleOfThree, len(letters), rem)
	}

	return out, nil
}

// Filter returns the letters of text that take part in decoding.
func Filter(text string) string {
	return string(appendLetters(make([]byte, 0, len(text)), text))
}

func appendLetters(dst []byte, text string) []byte {
	for i := 0; i < len(text); i++ {
		if c := text[i]; c >= 'a' && c < 'a'+AlphabetSize {
			dst = append(dst, c)
		}
	}

	return dst
}
