package compression

import (
	"fmt"
	"io"
)

// Decompress decodes data produced by [Compress]. It mirrors the
// interpreter's built-in routine, including the byte-at-a-time copy that
// lets a back-reference overlap its own destination.
//
// Unlike the on-calc routine, malformed input is rejected instead of read
// out of bounds: a token truncated by the end of input fails with
// [io.ErrUnexpectedEOF], and a back-reference reaching before the start of
// the output fails too.
func Decompress(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src)*2)

	for i := 0; i < len(src); {
		if src[i] != Flag {
			out = append(out, src[i])
			i++
			continue
		}

		if i+1 >= len(src) {
			return nil, fmt.Errorf("%w: flag byte at end of input", io.ErrUnexpectedEOF)
		}
		length := int(src[i+1] & MaxMatchLength)
		if length == 0 {
			// Escaped literal flag byte.
			out = append(out, Flag)
			i += 2
			continue
		}

		if i+2 >= len(src) {
			return nil, fmt.Errorf(
				"%w: back-reference at offset %d is missing its offset byte",
				io.ErrUnexpectedEOF, i)
		}
		offset := int(src[i+1]&0xC0)<<2 | int(src[i+2])
		start := len(out) - offset - 1
		if start < 0 {
			return nil, fmt.Errorf(
				"back-reference at offset %d reaches %d bytes before the start of output",
				i, -start)
		}
		for k := 0; k < length; k++ {
			out = append(out, out[start+k])
		}
		i += 3
	}
	return out, nil
}
