package compression

import (
	"fmt"
	"io"
)

// CompressStream reads the input until EOF, compresses it, and writes the
// encoded bytes to the output. The returned int64 gives the number of bytes
// written to the output stream; if an error occurred the value is undefined
// and should not be used.
//
// The codec needs the whole image in memory to search for matches, so this
// is a convenience wrapper rather than true streaming. ROM images top out at
// a few kilobytes, which makes that a non-issue here.
func CompressStream(input io.Reader, output io.Writer) (int64, error) {
	raw, err := io.ReadAll(input)
	if err != nil {
		return 0, fmt.Errorf("error reading input: %w", err)
	}

	n, err := output.Write(Compress(raw))
	if err != nil {
		return int64(n), fmt.Errorf("failed to write to output: %w", err)
	}
	return int64(n), nil
}

// DecompressStream reads compressed data from the input until EOF and writes
// the decoded bytes to the output. The returned int64 gives the decompressed
// size; if an error occurred the value is undefined and should not be used.
func DecompressStream(input io.Reader, output io.Writer) (int64, error) {
	decoded, err := DecompressToBytes(input)
	if err != nil {
		return 0, err
	}

	n, err := output.Write(decoded)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write to output: %w", err)
	}
	return int64(n), nil
}

// DecompressToBytes works like [DecompressStream] except it returns the
// decoded data in a new byte slice instead of writing to an [io.Writer].
func DecompressToBytes(input io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return Decompress(raw)
}
