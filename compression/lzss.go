package compression

import (
	"github.com/boljen/go-bitmap"
)

const (
	// Flag is the reserved byte value that introduces a back-reference
	// token. Literal occurrences are escaped by doubling.
	Flag = 0xFF

	// WindowSize is the farthest distance a back-reference can reach. The
	// offset field is 10 bits, so the decoder can't look back any further.
	WindowSize = 1024

	// MaxMatchLength is the longest match one token can encode. The length
	// shares its byte with the two high offset bits, leaving six bits.
	MaxMatchLength = 63
)

// tokenCost is the size of an encoded back-reference. A matched span is only
// worth a token when writing it as literals would cost more than this.
const tokenCost = 3

// token is either a literal byte (length == 0) or a back-reference into
// already-decoded output. Matching and serialization stay separate this way:
// the search never has to think about flag-byte escaping.
type token struct {
	literal byte
	length  int
	offset  int // distance back minus one, [0, WindowSize-1]
}

func (t token) append(dst []byte) []byte {
	if t.length == 0 {
		if t.literal == Flag {
			return append(dst, Flag, 0x00)
		}
		return append(dst, t.literal)
	}
	return append(dst, Flag, byte((t.offset&0x300)>>2|t.length), byte(t.offset))
}

// Compress encodes src so that [Decompress] (and the interpreter's built-in
// decoder) reproduces it exactly. Empty input gives empty output.
//
// The encoder is a greedy single pass. At each position it picks the longest
// match in the preceding window; ties keep the earliest candidate, so output
// is deterministic and stable across versions. A match may run past the
// window boundary into bytes the decoder has yet to produce -- overlapping
// copies are resolved byte by byte on the other end.
func Compress(src []byte) []byte {
	out := make([]byte, 0, len(src)+len(src)/8+1)

	// Tracks byte values that have entered the window. Bits are never
	// cleared when the window slides past an occurrence; a stale bit only
	// costs a wasted scan, never a wrong token.
	seen := bitmap.New(256)

	for i := 0; i < len(src); {
		windowStart := i - WindowSize
		if windowStart < 0 {
			windowStart = 0
		}

		bestJ, bestLen := 0, 0
		if seen.Get(int(src[i])) {
			for j := windowStart; j < i; j++ {
				if src[j] != src[i] {
					continue
				}
				length := matchRunLength(src, j, i)
				if length > bestLen {
					bestJ = j
					bestLen = length
				}
			}
		}
		if bestLen > MaxMatchLength {
			bestLen = MaxMatchLength
		}

		if literalCost(src[bestJ:bestJ+bestLen]) > tokenCost {
			out = token{length: bestLen, offset: i - bestJ - 1}.append(out)
			for _, b := range src[i : i+bestLen] {
				seen.Set(int(b), true)
			}
			i += bestLen
		} else {
			out = token{literal: src[i]}.append(out)
			seen.Set(int(src[i]), true)
			i++
		}
	}
	return out
}

// matchRunLength counts consecutive equal bytes at j and i. The count is not
// clamped to the gap between them: a run that extends past i encodes an
// overlapping copy.
func matchRunLength(src []byte, j, i int) int {
	n := 0
	for i+n < len(src) && src[j+n] == src[i+n] {
		n++
	}
	return n
}

// literalCost is the encoded size of span written without a token. Flag
// bytes cost two because of escape doubling.
func literalCost(span []byte) int {
	cost := 0
	for _, b := range span {
		if b == Flag {
			cost += 2
		} else {
			cost++
		}
	}
	return cost
}
