package obfs

import (
	"strings"

	"github.com/arloliu/gamesave/internal/options"
	"github.com/arloliu/gamesave/internal/pool"
)

// Encoder converts blobs to obfuscated text.
//
// An Encoder is not safe for concurrent use unless its KeySource is.
type Encoder struct {
	cfg EncoderConfig
}

// NewEncoder creates an encoder. Without WithKeySource or WithSeed it uses a
// freshly seeded random source.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := &EncoderConfig{lineWidth: DefaultLineWidth}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.keys == nil {
		cfg.keys = NewRandomKeySource()
	}

	return &Encoder{cfg: *cfg}, nil
}

// Encode returns the obfuscated text for blob. An empty blob encodes to "".
func (e *Encoder) Encode(blob []byte) string {
	n := len(blob)
	if n == 0 {
		return ""
	}

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	buf.ExtendOrGrow(3 * n)
	seq := buf.B
	for i, v := range blob {
		key := byte('a' + e.cfg.keys.IntN(KeyAlphabetSize))
		x := v ^ key
		seq[i] = key
		seq[n+2*i] = 'a' + x/10
		seq[n+2*i+1] = 'a' + x%10
	}

	return Wrap(seq, e.cfg.lineWidth)
}

// Encode obfuscates blob with keys drawn from src, wrapped at DefaultLineWidth.
func Encode(blob []byte, src KeySource) string {
	e := Encoder{cfg: EncoderConfig{keys: src, lineWidth: DefaultLineWidth}}
	return e.Encode(blob)
}

// EncodedLen returns the length of the text produced for an n-byte blob.
func EncodedLen(n int, lineWidth int) int {
	letters := 3 * n
	if lineWidth <= 0 || letters == 0 {
		return letters
	}

	return letters + (letters-1)/lineWidth
}

// Wrap inserts a space before every letter whose index is a positive multiple of
// width. A width of zero or less returns seq unchanged.
func Wrap(seq []byte, width int) string {
	if width <= 0 {
		return string(seq)
	}

	var sb strings.Builder
	sb.Grow(len(seq) + len(seq)/width)
	for i, c := range seq {
		if i > 0 && i%width == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(c)
	}

	return sb.String()
}
