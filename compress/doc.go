// Package compress provides the byte codecs gamesave can run a save blob through.
//
// The rank code (format.CompressionRank) is the codec used for persisted blobs.
// The general-purpose codecs exist so its output can be compared against
// well-known algorithms on the same input:
//   - None: no compression, the baseline
//   - Zstd: klauspost/compress zstd, best ratio of the general-purpose codecs
//   - S2: klauspost/compress s2, fast with a moderate ratio
//   - LZ4: pierrec/lz4 block format, fastest decompression
//   - Bzip2: dsnet/compress bzip2, block-sorting, slow but strong on text
//   - Rank: the frequency-ranked prefix code from package rankcode
//
// Save blobs are a few hundred bytes at most. On inputs that small the fixed
// framing of zstd and bzip2 often outweighs their savings, which is why the
// rank code, with a header of 5 bytes plus the rank table, remains competitive.
//
// # Architecture
//
// Every codec implements Codec:
//
//	type Codec interface {
//	    Type() format.CompressionType
//	    Compressor
//	    Decompressor
//	}
//
// Built-in codecs are stateless values and safe for concurrent use. Encoders
// and decoders that benefit from warm-up are pooled internally.
//
// # Measuring
//
// Measure runs one codec over a buffer, verifies the round trip and reports
// sizes and timings:
//
//	for _, ct := range format.CompressionTypes {
//	    codec, _ := compress.GetCodec(ct)
//	    stats, err := compress.Measure(codec, data)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Printf("%-6s %5d bytes %6.2f%%\n", stats.Algorithm, stats.CompressedSize, stats.SpaceSavings())
//	}
package compress
