package png

// crcPoly is the reflected CRC-32 polynomial used by zlib and PNG.
const crcPoly = 0xedb88320

var crcTable = MakeTable()

// MakeTable builds the 256-entry lookup table for crcPoly.
func MakeTable() *[256]uint32 {
	t := new([256]uint32)
	for n := range t {
		c := uint32(n)
		for k := 0; k < 8; k++ {
			if c&1 != 0 {
				c = crcPoly ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		t[n] = c
	}
	return t
}

// UpdateCRC feeds p into a running CRC. The caller owns the pre- and
// post-conditioning; start from 0xffffffff and xor the result with it.
func UpdateCRC(crc uint32, p []byte) uint32 {
	for _, b := range p {
		crc = crcTable[byte(crc)^b] ^ (crc >> 8)
	}
	return crc
}

// CRC returns the CRC-32 of p as defined by zlib and PNG.
func CRC(p []byte) uint32 {
	return UpdateCRC(0xffffffff, p) ^ 0xffffffff
}
