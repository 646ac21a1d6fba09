package tivar

// Checksum returns the 16-bit wrapping sum of every byte in the given
// chunks, in order. The link file format stores it little endian after the
// trailer; coverage runs from the header's datasize field through the end of
// the trailer.
func Checksum(chunks ...[]byte) uint16 {
	var sum uint16
	for _, chunk := range chunks {
		for _, b := range chunk {
			sum += uint16(b)
		}
	}
	return sum
}
