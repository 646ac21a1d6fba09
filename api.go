// Package ch8var converts raw CHIP-8 ROM images into TI-68k calculator
// variable files that the on-calc interpreter can load and run.
//
// A conversion compresses the ROM with the interpreter's LZSS-style codec
// (see the compression package) and wraps the result in the link file
// envelope the calculator OS expects (see the tivar package). The ROM itself
// is treated as opaque bytes; nothing here validates or interprets CHIP-8
// code.
package ch8var

import (
	"fmt"
	"os"

	"github.com/calclink/ch8var/calcs"
	"github.com/calclink/ch8var/compression"
	"github.com/calclink/ch8var/tivar"
)

// MaxRomSize is the largest ROM image the interpreter can address: CHIP-8
// programs live in a fixed 4 KiB memory space.
const MaxRomSize = 4096

// DefaultFolder is the on-calculator folder used when none is given.
const DefaultFolder = "main"

// Options selects the target calculator and the on-calc names for a
// conversion.
type Options struct {
	Model calcs.Model

	// Folder is the destination folder on the calculator. Empty means
	// DefaultFolder. Clipped to 8 bytes.
	Folder string

	// VarName is the on-calc variable name, clipped to 8 bytes.
	// [ConvertFile] derives it from the input filename when empty.
	VarName string
}

// Convert compresses rom and assembles the variable file around it.
//
// ROMs larger than [MaxRomSize] fail with [ErrInputTooLarge] before any
// work happens. Each call is independent: no state is shared between
// conversions.
func Convert(rom []byte, opts Options) (*tivar.File, error) {
	if len(rom) > MaxRomSize {
		return nil, ErrInputTooLarge.WithMessage(
			fmt.Sprintf("%d bytes, limit is %d", len(rom), MaxRomSize))
	}

	folder := opts.Folder
	if folder == "" {
		folder = DefaultFolder
	}

	return tivar.New(opts.Model.Signature, folder, opts.VarName, compression.Compress(rom))
}

// ConvertFile reads the ROM at inputPath, converts it, and writes the
// variable file to outputPath as a single atomic unit.
//
// An empty outputPath means "next to the input, with the model's extension"
// (see [OutputPath]); an empty opts.VarName is derived from the input
// filename (see [VariableName]). Read and write failures are returned
// unchanged; a failed conversion never leaves a partial file at the output
// path.
func ConvertFile(inputPath, outputPath string, opts Options) error {
	rom, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	if opts.VarName == "" {
		opts.VarName = VariableName(inputPath)
	}
	if outputPath == "" {
		outputPath = OutputPath(inputPath, opts.Model)
	}

	file, err := Convert(rom, opts)
	if err != nil {
		return err
	}
	return file.WriteFile(outputPath)
}
