package ch8var_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/calclink/ch8var"
	"github.com/calclink/ch8var/calcs"
	"github.com/calclink/ch8var/compression"
	vartest "github.com/calclink/ch8var/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ti89Model(t *testing.T) calcs.Model {
	model, err := calcs.GetPredefinedModel("ti89")
	require.NoError(t, err)
	return model
}

func TestConvert__SizeBound(t *testing.T) {
	opts := ch8var.Options{Model: ti89Model(t)}

	_, err := ch8var.Convert(make([]byte, ch8var.MaxRomSize+1), opts)
	assert.ErrorIs(t, err, ch8var.ErrInputTooLarge)

	_, err = ch8var.Convert(make([]byte, ch8var.MaxRomSize), opts)
	assert.NoError(t, err, "a ROM exactly at the limit must convert")
}

func TestConvert__EmptyRom(t *testing.T) {
	file, err := ch8var.Convert(nil, ch8var.Options{Model: ti89Model(t), VarName: "empty"})
	require.NoError(t, err)

	assert.Empty(t, file.Payload())
	assert.Equal(t, 99, file.Size())

	header := file.Header()
	assert.Equal(t, uint32(99), binary.LittleEndian.Uint32(header[76:80]))
	assert.Equal(t, uint16(9), binary.BigEndian.Uint16(header[86:88]))
}

func TestConvert__DefaultFolder(t *testing.T) {
	file, err := ch8var.Convert([]byte{0x41}, ch8var.Options{Model: ti89Model(t), VarName: "x"})
	require.NoError(t, err)
	assert.Equal(
		t, []byte{'m', 'a', 'i', 'n', 0, 0, 0, 0}, file.Header()[10:18],
		"folder must default to main")
}

func TestConvert__PayloadIsCompressedRom(t *testing.T) {
	rom := vartest.CreateSpriteRom(1024)
	file, err := ch8var.Convert(rom, ch8var.Options{Model: ti89Model(t), VarName: "sprites"})
	require.NoError(t, err)

	assert.Equal(t, compression.Compress(rom), file.Payload())

	decoded, err := compression.Decompress(file.Payload())
	require.NoError(t, err)
	assert.Equal(t, rom, decoded)
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "pong.ch8")
	rom := vartest.CreateRandomRom(512, t)
	require.NoError(t, os.WriteFile(inputPath, rom, 0o644))

	opts := ch8var.Options{Model: ti89Model(t)}
	require.NoError(t, ch8var.ConvertFile(inputPath, "", opts))

	// Output path and variable name both derive from the input filename.
	written, err := os.ReadFile(filepath.Join(dir, "pong.89y"))
	require.NoError(t, err)

	expected, err := ch8var.Convert(rom, ch8var.Options{Model: opts.Model, VarName: "pong"})
	require.NoError(t, err)
	assert.Equal(t, expected.Bytes(), written)
	assert.Equal(
		t, []byte{'p', 'o', 'n', 'g', 0, 0, 0, 0}, written[64:72],
		"variable name was not derived from the filename")
}

func TestConvertFile__OversizedRomLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "big.ch8")
	require.NoError(
		t, os.WriteFile(inputPath, make([]byte, ch8var.MaxRomSize+1), 0o644))

	err := ch8var.ConvertFile(inputPath, "", ch8var.Options{Model: ti89Model(t)})
	require.ErrorIs(t, err, ch8var.ErrInputTooLarge)

	_, err = os.Stat(filepath.Join(dir, "big.89y"))
	assert.True(t, os.IsNotExist(err), "no output may be produced for an oversized ROM")
}

func TestConvertFile__MissingInput(t *testing.T) {
	err := ch8var.ConvertFile(
		filepath.Join(t.TempDir(), "missing.ch8"), "", ch8var.Options{Model: ti89Model(t)})
	assert.True(t, os.IsNotExist(err), "read errors must be passed through unchanged")
}
