// Package obfs turns compressed blobs into printable text and back.
//
// # Format
//
// For a blob of N bytes the encoder draws N random key letters from 'a'..'y'.
// Each byte V is XORed with its key letter K and the result X (0-255) is written
// as two letters, 'a'+X/10 and 'a'+X%10. The text is all N key letters followed
// by all N letter pairs:
//
//	blob:  01 02 03
//	keys:  a  b  c
//	X:     96 96 96
//	text:  abc jg jg jg  ->  "abcjgjgjg"
//
// A space is inserted every 125 letters so the text wraps when embedded in a
// document. Decoding ignores every byte outside 'a'..'z', so the text survives
// any whitespace reformatting.
//
// # Randomness
//
// Keys come from an injected KeySource. A *rand.Rand from math/rand/v2
// satisfies it; KeySequence replays fixed keys. Decoding never needs the keys
// back from the caller: they are stored in the text itself.
package obfs
