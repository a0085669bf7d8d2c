package wldat

import (
	"errors"
	"fmt"
)

var (
	// ErrRankLimit is matched by errors.Is for a *LimitError.
	ErrRankLimit = errors.New("dimensions exceed limit")

	// ErrNoOpenBrace means the body does not begin with '{'.
	ErrNoOpenBrace = errors.New("body does not begin with '{'")

	// ErrEmptyBody means there is nothing after the header line.
	ErrEmptyBody = errors.New("empty body")

	ErrBadLiteral   = errors.New("invalid numeric literal")
	ErrStructure    = errors.New("malformed brace structure")
	ErrSizeMismatch = errors.New("buffer size does not match shape")
	ErrInvalidShape = errors.New("invalid shape")
)

// ParseError represents a decoding error with location.
type ParseError struct {
	Message string
	Pos     Position
	Err     error // sentinel category, may be nil
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LimitError reports a rank above the configured cap.
type LimitError struct {
	Limit int
	Got   int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("dimensions exceed limit: %d > %d", e.Got, e.Limit)
}

func (e *LimitError) Is(target error) bool {
	return target == ErrRankLimit
}
