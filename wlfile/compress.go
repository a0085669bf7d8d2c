package wlfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression selects the on-disk encoding of a document.
type Compression uint8

const (
	CompressionAuto Compression = iota // from magic bytes on read, file extension on write
	CompressionNone
	CompressionGzip
	CompressionZstd
)

// String returns the compression name.
func (c Compression) String() string {
	switch c {
	case CompressionAuto:
		return "auto"
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// ParseCompression parses a compression name. The empty string is auto.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return CompressionAuto, nil
	case "none", "off":
		return CompressionNone, nil
	case "gzip", "gz":
		return CompressionGzip, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	}
	return CompressionAuto, fmt.Errorf("unknown compression %q", s)
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// sniffCompression looks at the first bytes of a file.
func sniffCompression(head []byte) Compression {
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(head, gzipMagic):
		return CompressionGzip
	default:
		return CompressionNone
	}
}

// compressionForPath picks a compression from the file extension.
func compressionForPath(path string) Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// readAll reads r to the end, decompressing as c says.
func readAll(r io.Reader, c Compression) ([]byte, Compression, error) {
	br := bufio.NewReader(r)
	if c == CompressionAuto {
		head, _ := br.Peek(len(zstdMagic))
		c = sniffCompression(head)
	}

	switch c {
	case CompressionGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, c, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		data, err := io.ReadAll(zr)
		if err != nil {
			return nil, c, fmt.Errorf("gzip: %w", err)
		}
		return data, c, nil

	case CompressionZstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, c, fmt.Errorf("zstd: %w", err)
		}
		defer zr.Close()
		data, err := io.ReadAll(zr)
		if err != nil {
			return nil, c, fmt.Errorf("zstd: %w", err)
		}
		return data, c, nil

	default:
		data, err := io.ReadAll(br)
		return data, CompressionNone, err
	}
}

// writeAll writes data to w, compressing as c says. Level 0 selects the
// library default.
func writeAll(w io.Writer, data []byte, c Compression, level int) error {
	switch c {
	case CompressionGzip:
		if level == 0 {
			level = gzip.DefaultCompression
		}
		zw, err := gzip.NewWriterLevel(w, level)
		if err != nil {
			return fmt.Errorf("gzip: %w", err)
		}
		if _, err := zw.Write(data); err != nil {
			zw.Close()
			return fmt.Errorf("gzip: %w", err)
		}
		return zw.Close()

	case CompressionZstd:
		var opts []zstd.EOption
		if level != 0 {
			opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
		}
		zw, err := zstd.NewWriter(w, opts...)
		if err != nil {
			return fmt.Errorf("zstd: %w", err)
		}
		if _, err := zw.Write(data); err != nil {
			zw.Close()
			return fmt.Errorf("zstd: %w", err)
		}
		return zw.Close()

	default:
		_, err := w.Write(data)
		return err
	}
}
