// Package tivar assembles TI-68k "other" variable files around a compressed
// CHIP-8 payload.
//
// The file layout is header (91 bytes), payload, trailer (6 bytes), then a
// two-byte checksum. The calculator's link software and OS loader both parse
// the header with fixed offsets, so every field -- including the filler
// groups that mean nothing to us -- has to be reproduced byte for byte.
package tivar

import (
	"encoding/binary"
	"errors"
)

// HeaderSize is the fixed size of the variable file header.
const HeaderSize = 91

// ChecksumOffset is where checksum coverage begins: the datasize field and
// everything after it, through the end of the trailer. Nothing before this
// offset is summed.
const ChecksumOffset = offDatasize

// ExtensionLength is the length of the on-calc extension tag ("ch8") that
// the size fields account for.
const ExtensionLength = 3

// Header field offsets. The folder and variable name fields hold up to eight
// bytes each, zero padded.
const (
	offSignature = 0
	offFill1     = 8
	offFolder    = 10
	offComment   = 18
	offFill2     = 58
	offName      = 64
	offFill3     = 72
	offSize      = 76
	offFill4     = 80
	offDatasize  = 86
	offVersion   = 88

	nameFieldSize = 8
)

const (
	versionMajor = 1
	versionMinor = 0
	versionPatch = 0
)

// Vendor-mandated filler. None of it means anything to this program, but the
// loader rejects files without it.
var (
	fill1 = [2]byte{0x01, 0x00}
	fill2 = [6]byte{0x01, 0x00, 0x52, 0x00, 0x00, 0x00}
	fill3 = [4]byte{0x1C, 0x00, 0x00, 0x00}
	fill4 = [6]byte{0xA5, 0x5A, 0x00, 0x00, 0x00, 0x00}
)

// Trailer is the fixed magic appended after the payload. It tags the
// variable as a packed CHIP-8 image ("\x00ch8\x00" plus the OTH type tag)
// and is identical for every output file.
var Trailer = [6]byte{0x00, 'c', 'h', '8', 0x00, 0xF8}

// MaxPayloadSize is the largest compressed payload whose datasize field
// still fits in sixteen bits. Payloads compressed from a 4 KiB ROM can't get
// anywhere near it, but we check instead of letting the field wrap.
const MaxPayloadSize = 0xFFFF - ExtensionLength - 6

var ErrPayloadTooLarge = errors.New("compressed payload too large for the header size fields")

var ErrBadSignature = errors.New("device signature must be exactly 8 bytes")

// buildHeader lays out the fixed 91-byte header record. The size field is
// little endian; datasize is big endian. That asymmetry is the vendor's, not
// ours.
func buildHeader(signature, folder, name string, payloadLen int) [HeaderSize]byte {
	var h [HeaderSize]byte

	copy(h[offSignature:], signature)
	copy(h[offFill1:], fill1[:])
	copyName(h[offFolder:offFolder+nameFieldSize], folder)
	// The comment field at offComment stays zeroed.
	copy(h[offFill2:], fill2[:])
	copyName(h[offName:offName+nameFieldSize], name)
	copy(h[offFill3:], fill3[:])
	binary.LittleEndian.PutUint32(
		h[offSize:], uint32(HeaderSize+payloadLen+5+ExtensionLength))
	copy(h[offFill4:], fill4[:])
	binary.BigEndian.PutUint16(
		h[offDatasize:], uint16(payloadLen+3+ExtensionLength+3))
	h[offVersion] = versionMajor
	h[offVersion+1] = versionMinor
	h[offVersion+2] = versionPatch

	return h
}

// copyName copies up to len(dst) bytes of s into dst. Longer names are
// clipped; shorter ones leave the zero padding in place. Character content
// is not validated.
func copyName(dst []byte, s string) {
	if len(s) > len(dst) {
		s = s[:len(dst)]
	}
	copy(dst, s)
}
