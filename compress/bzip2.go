package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/gamesave/format"
	"github.com/dsnet/compress/bzip2"
)

const bzip2Level = 9

// Bzip2Compressor wraps the dsnet/compress bzip2 stream format at level 9.
type Bzip2Compressor struct{}

var _ Codec = (*Bzip2Compressor)(nil)

// NewBzip2Compressor creates a new bzip2 codec.
func NewBzip2Compressor() Bzip2Compressor {
	return Bzip2Compressor{}
}

// Type returns format.CompressionBzip2.
func (c Bzip2Compressor) Type() format.CompressionType {
	return format.CompressionBzip2
}

// Compress compresses the input data into a bzip2 stream.
func (c Bzip2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	bw, err := bzip2.NewWriter(&buf, &bzip2.WriterConfig{Level: bzip2Level})
	if err != nil {
		return nil, fmt.Errorf("creating bzip2 writer: %w", err)
	}

	if _, err := bw.Write(data); err != nil {
		_ = bw.Close()
		return nil, fmt.Errorf("writing bzip2 data: %w", err)
	}

	if err := bw.Close(); err != nil {
		return nil, fmt.Errorf("closing bzip2 writer: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses a bzip2 stream.
func (c Bzip2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	br, err := bzip2.NewReader(bytes.NewReader(data), &bzip2.ReaderConfig{})
	if err != nil {
		return nil, fmt.Errorf("creating bzip2 reader: %w", err)
	}
	defer br.Close()

	out, err := io.ReadAll(br)
	if err != nil {
		return nil, fmt.Errorf("reading bzip2 data: %w", err)
	}

	return out, nil
}
