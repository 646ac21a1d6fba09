package tivar

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
)

// File is a fully assembled variable file. Build one with [New]; the header,
// trailer, and checksum are all derived there, so a File is immutable and
// always internally consistent.
type File struct {
	header  [HeaderSize]byte
	payload []byte
}

// New assembles a variable file around an already-compressed payload.
//
// The signature must be one of the eight-byte device signatures (see the
// calcs package). Folder and name are clipped to eight bytes and zero padded.
// Payloads too large for the header's size fields are rejected with
// [ErrPayloadTooLarge] rather than letting the fields wrap.
func New(signature, folder, name string, payload []byte) (*File, error) {
	if len(signature) != 8 {
		return nil, ErrBadSignature
	}
	if len(payload) > MaxPayloadSize {
		return nil, ErrPayloadTooLarge
	}

	return &File{
		header:  buildHeader(signature, folder, name, len(payload)),
		payload: payload,
	}, nil
}

// Size returns the total size of the output file in bytes.
func (f *File) Size() int {
	return HeaderSize + len(f.payload) + len(Trailer) + 2
}

// Payload returns the compressed payload between header and trailer.
func (f *File) Payload() []byte {
	return f.payload
}

// Header returns the raw 91-byte header record.
func (f *File) Header() []byte {
	return f.header[:]
}

// Checksum computes the file's checksum: the wrapping byte sum from the
// header's datasize field through the end of the trailer.
func (f *File) Checksum() uint16 {
	return Checksum(f.header[ChecksumOffset:], f.payload, Trailer[:])
}

// Bytes serializes the whole file: header, payload, trailer, checksum.
func (f *File) Bytes() []byte {
	out := make([]byte, 0, f.Size())
	out = append(out, f.header[:]...)
	out = append(out, f.payload...)
	out = append(out, Trailer[:]...)
	return binary.LittleEndian.AppendUint16(out, f.Checksum())
}

// WriteTo writes the serialized file to w. It implements [io.WriterTo].
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Bytes())
	return int64(n), err
}

// WriteFile writes the serialized file to path as a single atomic unit. The
// bytes go to a temporary file in the destination directory first and are
// renamed into place only after every byte is on disk, so a failure partway
// through never leaves a truncated file at path.
func (f *File) WriteFile(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".partial-*")
	if err != nil {
		return err
	}

	_, writeErr := f.WriteTo(tmp)
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		combined := multierror.Append(writeErr, closeErr)
		if rmErr := os.Remove(tmp.Name()); rmErr != nil {
			combined = multierror.Append(combined, rmErr)
		}
		return combined.ErrorOrNil()
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		if rmErr := os.Remove(tmp.Name()); rmErr != nil {
			return multierror.Append(err, rmErr).ErrorOrNil()
		}
		return err
	}
	return nil
}
