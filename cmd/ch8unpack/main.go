package main

import (
	"fmt"
	"os"

	"github.com/calclink/ch8var/compression"
	"github.com/calclink/ch8var/tivar"
)

// Extracts the original ROM image back out of a converted variable file.
// Mostly useful for checking what a file on a calculator actually contains.
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(
			os.Stderr,
			"Extract the ROM image from a CHIP-8 variable file.\nUsage: %s input-file output-file\n",
			os.Args[0])
		os.Exit(1)
	}

	sourceFilePath := os.Args[1]
	outputFilePath := os.Args[2]

	raw, err := os.ReadFile(sourceFilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read `%v`: %s\n", sourceFilePath, err)
		os.Exit(1)
	}

	// Header in front, trailer and checksum in back; the payload is what's
	// left in between.
	envelope := tivar.HeaderSize + len(tivar.Trailer) + 2
	if len(raw) < envelope {
		fmt.Fprintf(
			os.Stderr, "`%v` is too short to be a variable file\n", sourceFilePath)
		os.Exit(2)
	}
	payload := raw[tivar.HeaderSize : len(raw)-len(tivar.Trailer)-2]

	rom, err := compression.Decompress(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error expanding payload: %s\n", err)
		os.Exit(2)
	}

	if err := os.WriteFile(outputFilePath, rom, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write `%v`: %s\n", outputFilePath, err)
		os.Exit(1)
	}

	fmt.Printf("Extracted %d-byte ROM from %d-byte payload.\n", len(rom), len(payload))
}
