package wlfile

import (
	"fmt"
	"os"

	"github.com/Neumenon/wldat/wldat"
)

// Info describes a stored document without decoding its elements.
type Info struct {
	Path        string
	Header      string // first line as stored
	Comment     string
	Shape       wldat.Shape
	Size        int64 // bytes on disk
	TextSize    int   // bytes after decompression
	Compression Compression
	CRC32       uint32 // of the decompressed text
}

// Rank returns the number of dimensions.
func (i *Info) Rank() int {
	return i.Shape.Rank()
}

// Stat reads the header and infers the shape of the document at path.
// Leaf values are not parsed, so malformed literals do not show up here.
func Stat(path string, opts ...Option) (*Info, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	text, used, err := readText(path, o.compression)
	if err != nil {
		return nil, err
	}

	s := string(text)
	shape, err := wldat.InferShapeText(s, o.parse.MaxRank)
	if err != nil {
		return nil, fmt.Errorf("infer shape of %s: %w", path, err)
	}
	header, _ := wldat.SplitHeader(s)

	return &Info{
		Path:        path,
		Header:      header,
		Comment:     wldat.Comment(s),
		Shape:       shape,
		Size:        fi.Size(),
		TextSize:    len(text),
		Compression: used,
		CRC32:       ComputeCRC(text),
	}, nil
}
