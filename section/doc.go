// Package section defines the binary layout of a rank code blob header.
//
// # Blob Structure
//
// A rank code blob is a fixed prefix, the rank table, and the packed codewords:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ BitCount (4 bytes, uint32 little-endian)                │
//	├─────────────────────────────────────────────────────────┤
//	│ TabCount-1 (1 byte)                                     │
//	├─────────────────────────────────────────────────────────┤
//	│ Rank Table (TabCount bytes)                             │
//	│  - distinct byte values, most frequent first            │
//	├─────────────────────────────────────────────────────────┤
//	│ Packed Bits (ceil(BitCount/8) bytes)                    │
//	│  - codewords LSB-first, final byte zero-padded          │
//	└─────────────────────────────────────────────────────────┘
//
// TabCount ranges from 1 to 256, so it is stored minus one to fit a byte. An
// empty input has no distinct values and is represented by a zero-length blob
// rather than by a header; RankHeader never describes it.
//
// # Header Format
//
//	Bytes    | Field      | Type   | Description
//	---------|------------|--------|---------------------------------------
//	0-3      | BitCount   | uint32 | Number of meaningful packed bits
//	4        | TabCount-1 | uint8  | Rank table length minus one
//	5-(5+N)  | RankTable  | []byte | N = TabCount byte values
package section
