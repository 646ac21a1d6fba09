package testing

import (
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// CreateRandomRom returns a ROM image of the given size filled with random
// bytes. It is guaranteed to either return a valid slice or fail the test
// and abort.
func CreateRandomRom(size uint, t *testing.T) []byte {
	rom := make([]byte, size)
	_, err := rand.Read(rom)
	require.NoErrorf(t, err, "failed to fill a %d-byte ROM with random bytes", size)
	return rom
}

// CreateSpriteRom returns a ROM image that compresses the way real CHIP-8
// programs do: repeated sprite rows with the occasional 0xFF flag byte mixed
// in.
func CreateSpriteRom(size uint) []byte {
	rom := make([]byte, size)
	sprite := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0, 0xFF, 0x20, 0x60}
	for i := range rom {
		rom[i] = sprite[i%len(sprite)]
	}
	return rom
}

// NewOutputStream returns a fixed-size in-memory stream to use as a write
// destination in packaging tests. Its size is fixed to the given number of
// bytes; writing past the end triggers an error.
func NewOutputStream(size uint) io.ReadWriteSeeker {
	return bytesextra.NewReadWriteSeeker(make([]byte, size))
}
