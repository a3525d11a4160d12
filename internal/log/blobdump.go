package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// BlobDumper records the compiled binaries that get embedded.
type BlobDumper interface {
	Dump(symbol string, data []byte)
}

type blobDumper struct {
	w  io.Writer
	mu sync.Mutex
}

// NewBlobDumper returns a BlobDumper writing to w. A nil w discards.
func NewBlobDumper(w io.Writer) BlobDumper {
	return &blobDumper{w: w}
}

// Dump writes one line: symbol, byte count and a space separated hex dump.
func (d *blobDumper) Dump(symbol string, data []byte) {
	if d.w == nil {
		return
	}

	var line bytes.Buffer
	fmt.Fprintf(&line, "%s: %d bytes, hex:", symbol, len(data))
	const hexdigits = "0123456789abcdef"
	for _, b := range data {
		line.WriteByte(' ')
		line.WriteByte(hexdigits[b>>4])
		line.WriteByte(hexdigits[b&0x0f])
	}
	line.WriteByte('\n')

	d.mu.Lock()
	_, _ = d.w.Write(line.Bytes())
	d.mu.Unlock()
}
