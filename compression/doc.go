// Package compression implements the LZSS-style codec understood by the
// on-calculator CHIP-8 interpreter.
//
// The interpreter ships with a small, fixed decompression routine, so the
// wire format is not negotiable: every byte this package emits must decode
// on that routine, bit for bit. The format uses a single reserved flag byte,
// 0xFF, to introduce a three-byte back-reference token:
//
//	FF  oollllll  oooooooo
//
// where the low six bits of the second byte hold the match length (1-63),
// its top two bits hold bits 9-8 of the backward offset, and the third byte
// holds offset bits 7-0. A back-reference means "copy length bytes starting
// offset+1 bytes before the current end of the decoded output", copied one
// byte at a time so a match may overlap its own destination. Any other byte
// is a literal. A literal 0xFF is escaped by doubling: the sequence FF 00
// (length bits all zero) decodes to a single 0xFF and consumes two bytes.
//
// Matches are searched in a 1024-byte window, the most the decoder's offset
// field can reach. A back-reference is only worth emitting when the matched
// span would cost more than three bytes written as literals; shorter runs
// are cheaper spelled out, since the token itself is three bytes.
package compression
