package wldat

import (
	"fmt"
	"strings"
)

// SplitHeader separates the first line of text from the body that follows
// it. A trailing '\r' on the header line is dropped.
func SplitHeader(text string) (header, body string) {
	i := strings.IndexByte(text, '\n')
	if i < 0 {
		return strings.TrimSuffix(text, "\r"), ""
	}
	return strings.TrimSuffix(text[:i], "\r"), text[i+1:]
}

// Comment returns the comment carried by the first line of text. A
// Wolfram comment "(* ... *)" is unwrapped; any other line is returned as is.
func Comment(text string) string {
	header, _ := SplitHeader(text)
	return unwrapComment(header)
}

func unwrapComment(header string) string {
	h := strings.TrimSpace(header)
	if len(h) >= 4 && strings.HasPrefix(h, "(*") && strings.HasSuffix(h, "*)") {
		return strings.TrimSpace(h[2 : len(h)-2])
	}
	return header
}

// InferRank counts the opening braces that begin body. Whitespace between
// them is ignored.
func InferRank(body string, maxRank int) (int, error) {
	return inferRank(body, Position{Line: 1, Column: 1}, maxRank)
}

// InferShape returns the size of every dimension of the array in body,
// outermost first. Only brace and comma structure is examined: each
// dimension is sized from the first sub-array at its depth.
func InferShape(body string, maxRank int) (Shape, error) {
	return inferShape(body, Position{Line: 1, Column: 1}, maxRank)
}

// InferShapeText is InferShape for a whole document, header included.
func InferShapeText(text string, maxRank int) (Shape, error) {
	_, body := SplitHeader(text)
	return inferShape(body, Position{Line: 2, Column: 1, Offset: len(text) - len(body)}, maxRank)
}

func inferRank(body string, base Position, maxRank int) (int, error) {
	if maxRank <= 0 {
		maxRank = DefaultMaxRank
	}

	count := 0
	i := 0
	for ; i < len(body); i++ {
		ch := body[i]
		if ch == '{' {
			count++
			continue
		}
		if isSpace(ch) {
			continue
		}
		break
	}

	if count == 0 {
		if i == len(body) {
			return 0, ErrEmptyBody
		}
		return 0, &ParseError{
			Message: fmt.Sprintf("expected '{', got %q", body[i]),
			Pos:     advancePos(base, body[:i]),
			Err:     ErrNoOpenBrace,
		}
	}
	if count > maxRank {
		return 0, &LimitError{Limit: maxRank, Got: count}
	}
	return count, nil
}

func inferShape(body string, base Position, maxRank int) (Shape, error) {
	rank, err := inferRank(body, base, maxRank)
	if err != nil {
		return nil, err
	}

	sizes := make(Shape, rank)
	for i := range sizes {
		sizes[i] = 1
	}

	// At depth d the scan stops on d+1 closing braces and counts d closing
	// braces followed by a comma. The innermost depth is counted first, so
	// depth d sizes dimension rank-1-d.
	window := make([]byte, 0, rank+1)
	depth := 0
	for i := 0; i < len(body) && depth < rank; i++ {
		ch := body[i]
		if isSpace(ch) {
			continue
		}
		if len(window) == cap(window) {
			copy(window, window[1:])
			window = window[:len(window)-1]
		}
		window = append(window, ch)

		if endsWithStop(window, depth) {
			depth++
			continue
		}
		if endsWithTarget(window, depth) {
			sizes[rank-1-depth]++
		}
	}
	return sizes, nil
}

// endsWithStop reports whether w ends with depth+1 closing braces.
func endsWithStop(w []byte, depth int) bool {
	n := depth + 1
	if len(w) < n {
		return false
	}
	for _, ch := range w[len(w)-n:] {
		if ch != '}' {
			return false
		}
	}
	return true
}

// endsWithTarget reports whether w ends with depth closing braces and a comma.
func endsWithTarget(w []byte, depth int) bool {
	n := depth + 1
	if len(w) < n || w[len(w)-1] != ',' {
		return false
	}
	for _, ch := range w[len(w)-n : len(w)-1] {
		if ch != '}' {
			return false
		}
	}
	return true
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

// advancePos moves p over s.
func advancePos(p Position, s string) Position {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			p.Line++
			p.Column = 1
		} else {
			p.Column++
		}
		p.Offset++
	}
	return p
}
