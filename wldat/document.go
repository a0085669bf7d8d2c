package wldat

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// DecodeResult contains the decoded document and any warnings.
type DecodeResult[T Scalar] struct {
	Document *Document[T]
	Header   string // first line exactly as read
	Warnings []ParseError
}

// HasWarnings returns true if any token decoded to NaN or trailing input
// was ignored.
func (r *DecodeResult[T]) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Decode parses a whole document: header line, then the nested-brace body.
func Decode[T Scalar](text string, opts ParseOptions) (*DecodeResult[T], error) {
	header, body := SplitHeader(text)
	base := Position{Line: 2, Column: 1, Offset: len(text) - len(body)}

	shape, err := inferShape(body, base, opts.MaxRank)
	if err != nil {
		if errors.Is(err, ErrEmptyBody) {
			return nil, &ParseError{Message: "no array after header line", Pos: base, Err: ErrEmptyBody}
		}
		return nil, err
	}

	data, warnings, err := parseBody[T](body, base, shape, opts)
	if err != nil {
		return nil, err
	}

	return &DecodeResult[T]{
		Document: &Document[T]{
			Comment: unwrapComment(header),
			Shape:   shape,
			Data:    data,
		},
		Header:   header,
		Warnings: warnings,
	}, nil
}

// DecodeReal decodes a document of real numbers.
func DecodeReal(text string, opts ParseOptions) (*DecodeResult[float64], error) {
	return Decode[float64](text, opts)
}

// DecodeComplex decodes a document of complex numbers.
func DecodeComplex(text string, opts ParseOptions) (*DecodeResult[complex128], error) {
	return Decode[complex128](text, opts)
}

// DecodeReader reads r to the end and decodes it. The caller owns r.
func DecodeReader[T Scalar](r io.Reader, opts ParseOptions) (*DecodeResult[T], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return Decode[T](string(data), opts)
}

// Encode renders doc as a header line, the nested-brace body and a
// trailing newline. The document is validated before anything is rendered.
func Encode[T Scalar](doc *Document[T], opts EmitOptions) (string, error) {
	if doc == nil {
		return "", errors.New("nil document")
	}
	if err := doc.Validate(opts.MaxRank); err != nil {
		return "", err
	}

	body, err := EmitBody(doc.Data, doc.Shape, opts)
	if err != nil {
		return "", err
	}

	header := HeaderLine(doc.Comment)
	var sb strings.Builder
	sb.Grow(len(header) + len(body) + 2)
	sb.WriteString(header)
	sb.WriteByte('\n')
	sb.WriteString(body)
	sb.WriteByte('\n')
	return sb.String(), nil
}

// EncodeReal encodes a document of real numbers.
func EncodeReal(doc *Document[float64], opts EmitOptions) (string, error) {
	return Encode(doc, opts)
}

// EncodeComplex encodes a document of complex numbers.
func EncodeComplex(doc *Document[complex128], opts EmitOptions) (string, error) {
	return Encode(doc, opts)
}

// EncodeTo encodes doc and writes it to w in one call. Nothing is written
// if encoding fails.
func EncodeTo[T Scalar](w io.Writer, doc *Document[T], opts EmitOptions) error {
	text, err := Encode(doc, opts)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// HeaderLine returns the Wolfram comment line for comment, substituting
// DefaultComment when it is empty. Line breaks become spaces so the header
// stays on one line.
func HeaderLine(comment string) string {
	if strings.TrimSpace(comment) == "" {
		comment = DefaultComment
	}
	comment = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(comment)
	return "(* " + comment + " *)"
}
