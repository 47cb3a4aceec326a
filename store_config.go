package gamesave

import (
	"errors"
	"fmt"

	"github.com/arloliu/gamesave/internal/options"
	"github.com/arloliu/gamesave/obfs"
	"github.com/hashicorp/go-hclog"
)

// StoreConfig holds the Store settings.
type StoreConfig struct {
	logger   hclog.Logger
	safeMode bool
	checksum bool
	encoder  []obfs.EncoderOption

	cacheSize int
}

// StoreOption represents a functional option for configuring a Store.
type StoreOption = options.Option[*StoreConfig]

func defaultStoreConfig() *StoreConfig {
	return &StoreConfig{
		logger:   hclog.NewNullLogger(),
		checksum: true,
	}
}

// WithLogger sets the logger fallbacks and saves are reported to.
func WithLogger(logger hclog.Logger) StoreOption {
	return options.New(func(c *StoreConfig) error {
		if logger == nil {
			return errors.New("gamesave: nil logger")
		}
		c.logger = logger

		return nil
	})
}

// WithSafeMode skips the pilot profile entry on both load and save.
// Profiles come back as defaults and the stored entry is left untouched.
func WithSafeMode() StoreOption {
	return options.NoError(func(c *StoreConfig) {
		c.safeMode = true
	})
}

// WithChecksum controls checksum verification on load. Saves always record the
// xxHash64 of the raw record bytes in the checksum attribute; when enabled, loads
// reject entries whose decoded bytes do not match it. Entries without the
// attribute are accepted. Enabled by default.
func WithChecksum(enabled bool) StoreOption {
	return options.NoError(func(c *StoreConfig) {
		c.checksum = enabled
	})
}

// WithEncoderOptions passes options to the obfuscation encoder used on save.
func WithEncoderOptions(opts ...obfs.EncoderOption) StoreOption {
	return options.NoError(func(c *StoreConfig) {
		c.encoder = append(c.encoder, opts...)
	})
}

// WithDecodeCache keeps the decoded bytes of up to size entry texts, so loading
// unchanged text skips decoding. Zero disables the cache, which is the default.
func WithDecodeCache(size int) StoreOption {
	return options.New(func(c *StoreConfig) error {
		if size < 0 {
			return fmt.Errorf("gamesave: invalid decode cache size %d", size)
		}
		c.cacheSize = size

		return nil
	})
}
