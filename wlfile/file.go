package wlfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Neumenon/wldat/wldat"
)

// Option configures Read, Write and Stat.
type Option func(*options)

type options struct {
	parse       wldat.ParseOptions
	emit        wldat.EmitOptions
	comment     string
	compression Compression
	level       int
	onWarning   func(wldat.ParseError)
	err         error // first invalid option, reported by every entry point
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		parse: wldat.DefaultParseOptions(),
		emit:  wldat.DefaultEmitOptions(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, o.err
}

// WithConfig applies every setting of cfg. An invalid cfg makes the call it
// is passed to fail with the validation error.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if err := cfg.Validate(); err != nil {
			if o.err == nil {
				o.err = err
			}
			return
		}
		o.parse, _ = cfg.ParseOptions()
		o.emit, _ = cfg.EmitOptions()
		o.compression, _ = ParseCompression(cfg.Compression)
		o.comment = cfg.Comment
		o.level = cfg.CompressionLevel
	}
}

// WithParseOptions sets the decoder options.
func WithParseOptions(p wldat.ParseOptions) Option {
	return func(o *options) {
		o.parse = p
	}
}

// WithEmitOptions sets the encoder options.
func WithEmitOptions(e wldat.EmitOptions) Option {
	return func(o *options) {
		o.emit = e
	}
}

// WithDefaultComment sets the comment written for documents that have none.
func WithDefaultComment(comment string) Option {
	return func(o *options) {
		o.comment = comment
	}
}

// WithCompression forces a compression instead of detecting it.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithCompressionLevel sets the gzip or zstd level (0: library default).
func WithCompressionLevel(level int) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithWarningHandler calls fn for every decode warning, in order.
func WithWarningHandler(fn func(wldat.ParseError)) Option {
	return func(o *options) {
		o.onWarning = fn
	}
}

// Read decodes the document stored at path.
func Read[T wldat.Scalar](path string, opts ...Option) (*wldat.DecodeResult[T], error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	text, _, err := readText(path, o.compression)
	if err != nil {
		return nil, err
	}

	res, err := wldat.Decode[T](string(text), o.parse)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if o.onWarning != nil {
		for _, w := range res.Warnings {
			o.onWarning(w)
		}
	}
	return res, nil
}

// ReadReal decodes a document of real numbers.
func ReadReal(path string, opts ...Option) (*wldat.DecodeResult[float64], error) {
	return Read[float64](path, opts...)
}

// ReadComplex decodes a document of complex numbers.
func ReadComplex(path string, opts ...Option) (*wldat.DecodeResult[complex128], error) {
	return Read[complex128](path, opts...)
}

// Write encodes doc and stores it at path, replacing any existing file.
// Encoding errors are reported before the file is touched.
func Write[T wldat.Scalar](path string, doc *wldat.Document[T], opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}

	if doc != nil && doc.Comment == "" && o.comment != "" {
		withComment := *doc
		withComment.Comment = o.comment
		doc = &withComment
	}

	text, err := wldat.Encode(doc, o.emit)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	c := o.compression
	if c == CompressionAuto {
		c = compressionForPath(path)
	}
	return writeText(path, []byte(text), c, o.level)
}

// WriteReal encodes a document of real numbers.
func WriteReal(path string, doc *wldat.Document[float64], opts ...Option) error {
	return Write(path, doc, opts...)
}

// WriteComplex encodes a document of complex numbers.
func WriteComplex(path string, doc *wldat.Document[complex128], opts ...Option) error {
	return Write(path, doc, opts...)
}

// readText returns the decompressed contents of path.
func readText(path string, c Compression) ([]byte, Compression, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, c, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, used, err := readAll(f, c)
	if err != nil {
		return nil, used, fmt.Errorf("read %s: %w", path, err)
	}
	return data, used, nil
}

// writeText writes data to a temporary file next to path and renames it
// into place once everything has been flushed and closed.
func writeText(path string, data []byte, c Compression, level int) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = writeAll(f, data, c, level); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
