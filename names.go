package ch8var

import (
	"path/filepath"
	"strings"

	"github.com/calclink/ch8var/calcs"
)

// VariableName derives a default on-calc variable name from a ROM path: the
// base filename with the usual ROM suffixes removed. The tivar package clips
// it to 8 bytes, so long filenames are fine here.
func VariableName(path string) string {
	return filepath.Base(stripRomSuffix(path))
}

// OutputPath derives a default output path from a ROM path: the input path
// with the ROM suffix swapped for the model's link file extension.
func OutputPath(path string, model calcs.Model) string {
	return stripRomSuffix(path) + "." + model.Extension
}

// stripRomSuffix removes at most one ".ch8" and then at most one ".rom"
// suffix, in that order.
func stripRomSuffix(path string) string {
	path = strings.TrimSuffix(path, ".ch8")
	return strings.TrimSuffix(path, ".rom")
}
