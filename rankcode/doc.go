// Package rankcode implements a lossless byte compressor built on a static,
// frequency-ranked prefix code.
//
// # Overview
//
// Each blob carries its own rank table: the distinct byte values of the input,
// most frequent first. Every byte is then replaced by the codeword of its rank.
// Codewords come from a fixed table shared by encoder and decoder, so only the
// rank table needs to be stored:
//
//	Level | Ranks   | Codeword              | Bits
//	------|---------|-----------------------|-----
//	0     | 0       | 0                     | 1
//	1     | 1       | 10                    | 2
//	2     | 2-3     | 110 + 1 offset bit    | 4
//	3     | 4-7     | 1110 + 2 offset bits  | 6
//	...   | ...     | ...                   | ...
//	8     | 128-255 | 111111110 + 7 bits    | 16
//
// The unary escape prefix terminates itself and offsets are fixed-width within
// a bucket, so the code is prefix-free. It is not a Huffman code: the most
// frequent byte always costs one bit and lengths only grow with rank.
//
// # Usage
//
//	blob, err := rankcode.Encode(raw)
//	if err != nil {
//	    return err
//	}
//
//	// discovery mode: the length is recovered from the blob
//	out, err := rankcode.Decode(blob, 0)
//
//	// known-size mode: fails with errs.ErrSizeMismatch unless exactly len(raw) bytes decode
//	out, err = rankcode.Decode(blob, len(raw))
//
// The blob layout is described in the section package. Empty input encodes to a
// zero-length blob.
//
// # Thread Safety
//
// Package-level Encode and Decode are safe for concurrent use. An Encoder reuses
// scratch state and must not be shared; a Decoder only reads its blob.
package rankcode
