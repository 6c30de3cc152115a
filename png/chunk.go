package png

import "fmt"

// ChunkType is the 4-byte chunk type tag. Bit 5 of each byte (lower case
// letter) carries one property of the chunk.
type ChunkType [4]byte

const propertyBit = 0x20

// Ancillary reports whether the chunk can be ignored by a decoder.
func (t ChunkType) Ancillary() bool { return t[0]&propertyBit != 0 }

// Critical is the negation of Ancillary.
func (t ChunkType) Critical() bool { return !t.Ancillary() }

// Private reports whether the chunk is not part of the public registry.
func (t ChunkType) Private() bool { return t[1]&propertyBit != 0 }

// Reserved reports whether the reserved bit is set. Conforming types have it clear.
func (t ChunkType) Reserved() bool { return t[2]&propertyBit != 0 }

// SafeToCopy reports whether an editor that does not recognize the chunk
// may copy it into a modified file.
func (t ChunkType) SafeToCopy() bool { return t[3]&propertyBit != 0 }

func (t ChunkType) String() string {
	return string(t[:])
}

// Chunk is a single chunk of a PNG datastream.
// Data aliases the buffer the chunk was parsed from.
type Chunk struct {
	// Offset of the length field from the start of the buffer.
	Offset int

	Length uint32
	Type   ChunkType
	Data   []byte

	// CRC as declared in the file.
	CRC uint32
}

// Checksum computes the CRC-32 over the chunk type and data.
// Compare it with CRC to detect corruption.
func (c Chunk) Checksum() uint32 {
	crc := UpdateCRC(0xffffffff, c.Type[:])
	crc = UpdateCRC(crc, c.Data)
	return crc ^ 0xffffffff
}

// String makes Chunk satisfy the Stringer interface.
func (c Chunk) String() string {
	return fmt.Sprintf("%s: %08x, %d[bytes], crc %08x", c.Type, c.Offset, c.Length, c.CRC)
}
