package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/ysh86/lspng/png"
)

type report struct {
	File       string  `yaml:"file"`
	Size       int     `yaml:"size"`
	Chunks     []entry `yaml:"chunks"`
	Mismatches int     `yaml:"mismatches"`
	Truncated  bool    `yaml:"truncated"`
}

type entry struct {
	Type       string `yaml:"type"`
	Offset     int    `yaml:"offset"`
	Length     uint32 `yaml:"length"`
	CRC        string `yaml:"crc"`
	Computed   string `yaml:"computed"`
	Valid      bool   `yaml:"valid"`
	Critical   bool   `yaml:"critical"`
	Private    bool   `yaml:"private"`
	SafeToCopy bool   `yaml:"safe_to_copy"`
	Info       string `yaml:"info,omitempty"`
}

func newEntry(c png.Chunk) entry {
	computed := c.Checksum()
	return entry{
		Type:       c.Type.String(),
		Offset:     c.Offset,
		Length:     c.Length,
		CRC:        fmt.Sprintf("%08x", c.CRC),
		Computed:   fmt.Sprintf("%08x", computed),
		Valid:      computed == c.CRC,
		Critical:   c.Type.Critical(),
		Private:    c.Type.Private(),
		SafeToCopy: c.Type.SafeToCopy(),
		Info:       describe(c),
	}
}

// describe decodes the payload of a few well-known chunks for display.
func describe(c png.Chunk) string {
	d := c.Data
	switch c.Type.String() {
	case "IHDR":
		if len(d) != 13 {
			return "corrupted!"
		}
		return fmt.Sprintf("Width = %d, Height = %d, Bit depth = %d, Color type = %d, "+
			"Compression method = %d, Filter method = %d, Interlace method = %d",
			binary.BigEndian.Uint32(d[0:4]),
			binary.BigEndian.Uint32(d[4:8]),
			d[8], d[9], d[10], d[11], d[12])
	case "sRGB":
		if len(d) != 1 {
			return "corrupted!"
		}
		return fmt.Sprintf("Rendering intent = %d", d[0])
	case "tEXt":
		keyword, text, ok := bytes.Cut(d, []byte{0})
		if !ok || len(keyword) == 0 {
			return "corrupted!"
		}
		return fmt.Sprintf("%s = %q", keyword, text)
	case "IEND":
		if len(d) != 0 {
			return "corrupted!"
		}
	}
	return ""
}

func writeText(w io.Writer, r *report) error {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("file: %s (%s)\n", r.File, humanize.IBytes(uint64(r.Size))))
	for _, e := range r.Chunks {
		status := "ok"
		if !e.Valid {
			status = "BAD, computed " + e.Computed
		}
		buf.WriteString(fmt.Sprintf("chunk '%s': %08x, %s, crc %s %s",
			e.Type, e.Offset, humanize.Bytes(uint64(e.Length)), e.CRC, status))
		if e.Info != "" {
			buf.WriteString(": " + e.Info)
		}
		buf.WriteString("\n")
	}
	if r.Truncated {
		buf.WriteString("truncated!\n")
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func writeYAML(w io.Writer, r *report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
