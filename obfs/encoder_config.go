package obfs

import (
	"fmt"

	"github.com/arloliu/gamesave/internal/options"
)

const (
	// DefaultLineWidth is the number of letters between inserted spaces.
	DefaultLineWidth = 125
	// KeyAlphabetSize is the number of letters keys are drawn from, 'a'..'y'.
	KeyAlphabetSize = 25
	// AlphabetSize is the number of letters accepted on decode, 'a'..'z'.
	AlphabetSize = 26
)

// EncoderConfig holds the obfuscation encoder settings.
type EncoderConfig struct {
	keys      KeySource
	lineWidth int
}

// EncoderOption represents a functional option for configuring the obfuscation encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithKeySource sets the source of key letters.
func WithKeySource(src KeySource) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if src == nil {
			return fmt.Errorf("obfs: nil key source")
		}
		c.keys = src

		return nil
	})
}

// WithSeed uses a deterministic key source seeded with seed.
func WithSeed(seed uint64) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.keys = NewSeededKeySource(seed)
	})
}

// WithLineWidth sets the number of letters between inserted spaces. Zero disables wrapping.
func WithLineWidth(width int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if width < 0 {
			return fmt.Errorf("obfs: invalid line width %d", width)
		}
		c.lineWidth = width

		return nil
	})
}
