package png

import (
	"encoding/binary"
	"errors"
	"iter"
)

var (
	// ErrSignature is returned for buffers that are too short or do not
	// start with the PNG signature.
	ErrSignature = errors.New("invalid signature")

	// ErrTruncated is reported by ChunkIter.Err when iteration stopped with
	// bytes left that do not frame a complete chunk.
	ErrTruncated = errors.New("truncated chunk")
)

// chunk = length, type, data, CRC
const chunkOverhead = 4 + 4 + 4

// ChunkIter walks the chunks of an in-memory PNG datastream without copying.
// It is forward-only; once Next returns false it stays exhausted.
type ChunkIter struct {
	b      []byte
	offset int
	err    error
}

// NewChunkIter returns an iterator positioned after the signature of b.
func NewChunkIter(b []byte) (*ChunkIter, error) {
	rest, ok := DropSignature(b)
	if !ok {
		return nil, ErrSignature
	}
	return &ChunkIter{b: rest, offset: len(Signature)}, nil
}

// Next returns the next chunk. It returns false at the end of the buffer or
// when the remaining bytes cannot hold the next chunk; use Err to tell
// the two apart.
func (it *ChunkIter) Next() (Chunk, bool) {
	if len(it.b) < chunkOverhead {
		if len(it.b) > 0 {
			it.err = ErrTruncated
		}
		return Chunk{}, false
	}
	length := binary.BigEndian.Uint32(it.b[0:4])
	// 64-bit so that a length near 2^32 cannot wrap on 32-bit platforms.
	if uint64(len(it.b)-8) < uint64(length)+4 {
		it.err = ErrTruncated
		return Chunk{}, false
	}

	end := 8 + int(length)
	c := Chunk{
		Offset: it.offset,
		Length: length,
		Type:   ChunkType(it.b[4:8]),
		Data:   it.b[8:end:end],
		CRC:    binary.BigEndian.Uint32(it.b[end : end+4]),
	}
	it.b = it.b[end+4:]
	it.offset += end + 4
	return c, true
}

// Err returns ErrTruncated if Next stopped with unconsumed bytes, and nil
// before that or after a clean end.
func (it *ChunkIter) Err() error {
	return it.err
}

// Remaining returns the number of bytes not yet consumed.
func (it *ChunkIter) Remaining() int {
	return len(it.b)
}

// All returns an iterator over the remaining chunks. It shares the
// cursor with Next.
func (it *ChunkIter) All() iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		for {
			c, ok := it.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}
