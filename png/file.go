// Package png splits an in-memory PNG datastream into chunks and computes
// their CRC-32 checksums. Pixel data is not decoded.
package png

// File is a PNG datastream split into its chunks.
type File struct {
	Chunks []Chunk

	// Truncated is set when the datastream ends inside a chunk.
	Truncated bool

	buf []byte
}

// NewFile creates a new PNG file struct over b. b is not copied.
func NewFile(b []byte) (*File, error) {
	f := &File{buf: b}
	return f, nil
}

// Parse parses a PNG file.
func (f *File) Parse() error {
	it, err := NewChunkIter(f.buf)
	if err != nil {
		return err
	}

	f.Chunks = f.Chunks[:0]
	for c := range it.All() {
		f.Chunks = append(f.Chunks, c)
	}
	f.Truncated = it.Err() != nil

	return nil
}
