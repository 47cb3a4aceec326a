// Package bitstream packs and unpacks individual bits into and out of byte buffers.
//
// Bits are stored least-significant-bit first within each byte: stream bit i
// lives in byte i/8 at bit position i%8. Writing the stream 1,1,0,1 produces the
// byte 0b00001011 (0x0B).
//
// The final partial byte is zero-padded on the high side.
package bitstream
