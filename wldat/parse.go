package wldat

import (
	"fmt"
	"strings"
)

// ParseOptions configures decoding.
type ParseOptions struct {
	// Strict fails on the first token that is not a number instead of
	// storing NaN and recording a warning.
	Strict bool

	// Order is the layout of the decoded buffer.
	Order Order

	// MaxRank caps the number of dimensions (default: DefaultMaxRank).
	MaxRank int

	// MaxTokenLen rejects longer tokens; 0 means no limit.
	MaxTokenLen int
}

// DefaultParseOptions returns lenient row-major options.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Order:   RowMajor,
		MaxRank: DefaultMaxRank,
	}
}

// StrictParseOptions returns options that reject malformed literals.
func StrictParseOptions() ParseOptions {
	opts := DefaultParseOptions()
	opts.Strict = true
	return opts
}

// ParseBody fills a flat buffer from the nested-brace text in body using a
// shape obtained from InferShape. Warnings list the tokens that decoded to
// NaN in lenient mode.
func ParseBody[T Scalar](body string, shape Shape, opts ParseOptions) ([]T, []ParseError, error) {
	return parseBody[T](body, Position{Line: 1, Column: 1}, shape, opts)
}

func parseBody[T Scalar](body string, base Position, shape Shape, opts ParseOptions) ([]T, []ParseError, error) {
	if err := shape.Validate(opts.MaxRank); err != nil {
		return nil, nil, err
	}

	// Every element needs its own token, so a body with c commas holds at
	// most c+1 of them. Checked before the buffer is allocated.
	if n, room := shape.NumElements(), strings.Count(body, ",")+1; n > room {
		return nil, nil, &ParseError{
			Message: fmt.Sprintf("shape %s needs %d elements, body has room for at most %d", shape, n, room),
			Pos:     base,
			Err:     ErrStructure,
		}
	}

	p := &bodyParser[T]{
		src:     body,
		pos:     base,
		shape:   shape,
		opts:    opts,
		indices: make([]int, len(shape)),
		data:    make([]T, shape.NumElements()),
	}

	if err := p.parseLevel(0); err != nil {
		return nil, p.warnings, err
	}

	p.skipSpace()
	if !p.atEnd() {
		msg := fmt.Sprintf("trailing content after array: %q", p.excerpt())
		if opts.Strict {
			return nil, p.warnings, p.errorf(p.pos, ErrStructure, "%s", msg)
		}
		p.addWarning(p.pos, nil, "%s", msg)
	}

	return p.data, p.warnings, nil
}

// bodyParser holds the state of one ParseBody call.
type bodyParser[T Scalar] struct {
	src string
	off int // byte offset into src
	pos Position

	shape   Shape
	opts    ParseOptions
	indices []int
	data    []T

	tok      []byte
	tokPos   Position
	warnings []ParseError
}

// parseLevel reads one brace-delimited level, recursing for sub-arrays.
func (p *bodyParser[T]) parseLevel(level int) error {
	innermost := level == len(p.shape)-1

	p.skipSpace()
	if p.atEnd() {
		return p.errorf(p.pos, ErrStructure, "expected '{' at depth %d, got end of input", level)
	}
	if ch := p.peek(); ch != '{' {
		return p.errorf(p.pos, ErrStructure, "expected '{' at depth %d, got %q", level, ch)
	}
	openPos := p.pos
	p.advance()

	count := 0
	pendingSep := false // an element was read and no ',' has followed it yet
	p.tok = p.tok[:0]

	for {
		if p.atEnd() {
			return p.errorf(openPos, ErrStructure, "unterminated '{' at depth %d", level)
		}

		ch := p.peek()
		switch {
		case ch == '{':
			if innermost {
				return p.errorf(p.pos, ErrStructure, "'{' nested deeper than rank %d", len(p.shape))
			}
			if len(p.tok) > 0 || pendingSep {
				return p.errorf(p.pos, ErrStructure, "missing ',' before '{'")
			}
			if count >= p.shape[level] {
				return p.errorf(p.pos, ErrStructure, "depth %d has more than %d elements", level, p.shape[level])
			}
			p.indices[level] = count
			if err := p.parseLevel(level + 1); err != nil {
				return err
			}
			count++
			pendingSep = true

		case ch == '}':
			closePos := p.pos
			p.advance()
			if len(p.tok) > 0 {
				if err := p.flush(level, count); err != nil {
					return err
				}
				count++
			} else if count > 0 && !pendingSep {
				return p.errorf(closePos, ErrStructure, "empty element before '}'")
			}
			if count != p.shape[level] {
				return p.errorf(closePos, ErrStructure, "depth %d has %d elements, want %d", level, count, p.shape[level])
			}
			return nil

		case ch == ',':
			commaPos := p.pos
			p.advance()
			if len(p.tok) > 0 {
				if err := p.flush(level, count); err != nil {
					return err
				}
				count++
			} else if !pendingSep {
				return p.errorf(commaPos, ErrStructure, "empty element before ','")
			}
			pendingSep = false

		case isSpace(ch):
			// Spaces inside a token are dropped, so "1 + 2 I" reads as one literal.
			p.advance()

		default:
			if !innermost {
				return p.errorf(p.pos, ErrStructure, "number at depth %d where '{' is expected", level)
			}
			if len(p.tok) == 0 {
				p.tokPos = p.pos
			}
			if p.opts.MaxTokenLen > 0 && len(p.tok) >= p.opts.MaxTokenLen {
				return p.errorf(p.tokPos, ErrStructure, "token longer than %d bytes", p.opts.MaxTokenLen)
			}
			p.tok = append(p.tok, ch)
			p.advance()
		}
	}
}

// flush stores the pending token as element count of the innermost level.
func (p *bodyParser[T]) flush(level, count int) error {
	token := string(p.tok)
	p.tok = p.tok[:0]

	if count >= p.shape[level] {
		return p.errorf(p.tokPos, ErrStructure, "depth %d has more than %d elements", level, p.shape[level])
	}

	v, ok := parseScalar[T](token)
	if !ok {
		if p.opts.Strict {
			return p.errorf(p.tokPos, ErrBadLiteral, "invalid numeric literal %q", token)
		}
		p.addWarning(p.tokPos, ErrBadLiteral, "invalid numeric literal %q, stored as NaN", token)
	}

	p.indices[level] = count
	p.data[p.shape.Offset(p.indices, p.opts.Order)] = v
	return nil
}

// Scanning helpers

func (p *bodyParser[T]) atEnd() bool {
	return p.off >= len(p.src)
}

func (p *bodyParser[T]) peek() byte {
	return p.src[p.off]
}

func (p *bodyParser[T]) advance() {
	if p.off >= len(p.src) {
		return
	}
	if p.src[p.off] == '\n' {
		p.pos.Line++
		p.pos.Column = 1
	} else {
		p.pos.Column++
	}
	p.pos.Offset++
	p.off++
}

func (p *bodyParser[T]) skipSpace() {
	for !p.atEnd() && isSpace(p.peek()) {
		p.advance()
	}
}

// excerpt returns up to 16 bytes of the remaining input.
func (p *bodyParser[T]) excerpt() string {
	rest := p.src[p.off:]
	if len(rest) > 16 {
		return rest[:16] + "..."
	}
	return rest
}

// Error handling

func (p *bodyParser[T]) errorf(pos Position, kind error, format string, args ...interface{}) error {
	return &ParseError{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
		Err:     kind,
	}
}

func (p *bodyParser[T]) addWarning(pos Position, kind error, format string, args ...interface{}) {
	p.warnings = append(p.warnings, ParseError{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
		Err:     kind,
	})
}
