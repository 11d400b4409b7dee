// Package crc32 implements the checksum algorithm used by DFU file suffixes.
//
// DFU files store the bitwise complement of the standard reflected CRC32
// (IEEE 802.3, polynomial 0xEDB88320). The accumulator convention matches
// the flashing tools in the wild: callers start from an accumulator of zero,
// fold in the file body chunk by chunk with Update, and XOR the result with
// 0xFFFFFFFF to obtain the value stored in the suffix's dwCRC field.
package crc32

// crcTable is the 256-entry lookup table for the reflected polynomial.
// Built once at package init and never mutated afterwards.
var crcTable = makeTable()

func makeTable() [256]uint32 {
	const poly = 0xEDB88320

	var table [256]uint32
	for i := 0; i < 256; i++ {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ poly
			} else {
				crc >>= 1
			}
		}
		table[i] = crc
	}
	return table
}

// Update folds p into the accumulator acc and returns the new accumulator.
// Splitting the input across any number of Update calls yields the same
// result as a single call over the concatenated bytes.
func Update(acc uint32, p []byte) uint32 {
	crc := acc ^ 0xFFFFFFFF
	for _, b := range p {
		crc = (crc >> 8) ^ crcTable[(crc^uint32(b))&0xFF]
	}
	return crc ^ 0xFFFFFFFF
}

// Checksum returns the finalized DFU checksum of p in one call.
func Checksum(p []byte) uint32 {
	return Update(0, p) ^ 0xFFFFFFFF
}
