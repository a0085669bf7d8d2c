package wldat

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Scalar is the element type of a document: real or complex.
type Scalar interface {
	float64 | complex128
}

// DefaultMaxRank is the largest rank accepted unless the options say otherwise.
const DefaultMaxRank = 128

// Order is the mapping from a multi-index to a flat buffer offset.
type Order uint8

const (
	RowMajor    Order = iota // outermost brace level varies slowest
	ColumnMajor              // outermost brace level varies fastest
)

// String returns the order name.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return fmt.Sprintf("order(%d)", uint8(o))
	}
}

// ParseOrder parses an order name. The empty string is RowMajor.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "row", "row-major", "row_major", "c":
		return RowMajor, nil
	case "column", "col", "column-major", "column_major", "fortran", "f":
		return ColumnMajor, nil
	}
	return RowMajor, fmt.Errorf("unknown order %q", s)
}

// Position is a location in the decoded text.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Shape holds the size of each dimension, outermost first.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the product of all sizes, or 0 for an empty shape.
// The product is only meaningful for a shape that passed Validate.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Equal reports whether two shapes are identical.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// String renders the shape as "[2 3 4]".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Validate checks the rank against maxRank (DefaultMaxRank when <= 0),
// that every size is positive and that the element count fits in an int.
func (s Shape) Validate(maxRank int) error {
	if maxRank <= 0 {
		maxRank = DefaultMaxRank
	}
	if len(s) == 0 {
		return fmt.Errorf("%w: rank 0", ErrInvalidShape)
	}
	if len(s) > maxRank {
		return &LimitError{Limit: maxRank, Got: len(s)}
	}
	n := 1
	for i, d := range s {
		if d <= 0 {
			return fmt.Errorf("%w: dimension %d has size %d", ErrInvalidShape, i, d)
		}
		if n > math.MaxInt/d {
			return fmt.Errorf("%w: %s has more than %d elements", ErrInvalidShape, s, math.MaxInt)
		}
		n *= d
	}
	return nil
}

// Strides returns the element stride of each dimension under order.
func (s Shape) Strides(order Order) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	if order == ColumnMajor {
		strides[0] = 1
		for i := 1; i < len(s); i++ {
			strides[i] = strides[i-1] * s[i-1]
		}
		return strides
	}
	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Offset converts a full multi-index to a flat buffer offset.
func (s Shape) Offset(indices []int, order Order) int {
	idx := 0
	if order == ColumnMajor {
		for d := len(s) - 1; d >= 0; d-- {
			idx = indices[d] + s[d]*idx
		}
		return idx
	}
	for d := 0; d < len(s); d++ {
		idx = indices[d] + s[d]*idx
	}
	return idx
}

// DefaultComment is written when a document has no comment of its own.
const DefaultComment = "Created with wldat: <https://github.com/Neumenon/wldat>"

// Document is a comment, a shape and the flat data buffer it describes.
type Document[T Scalar] struct {
	Comment string
	Shape   Shape
	Data    []T
}

// NumElements returns the element count declared by the shape.
func (d *Document[T]) NumElements() int {
	return d.Shape.NumElements()
}

// Validate checks the shape and that Data has exactly one element per
// position in the shape.
func (d *Document[T]) Validate(maxRank int) error {
	if err := d.Shape.Validate(maxRank); err != nil {
		return err
	}
	if n := d.Shape.NumElements(); len(d.Data) != n {
		return fmt.Errorf("%w: shape %s needs %d elements, buffer has %d",
			ErrSizeMismatch, d.Shape, n, len(d.Data))
	}
	return nil
}

// At returns the element at the given multi-index in row-major layout.
func (d *Document[T]) At(indices ...int) (T, error) {
	return d.AtOrder(RowMajor, indices...)
}

// AtOrder returns the element at the given multi-index for a buffer laid
// out in order.
func (d *Document[T]) AtOrder(order Order, indices ...int) (T, error) {
	var zero T
	if len(indices) != len(d.Shape) {
		return zero, fmt.Errorf("got %d indices for rank %d", len(indices), len(d.Shape))
	}
	for i, ix := range indices {
		if ix < 0 || ix >= d.Shape[i] {
			return zero, fmt.Errorf("index %d out of range [0,%d) in dimension %d", ix, d.Shape[i], i)
		}
	}
	off := d.Shape.Offset(indices, order)
	if off >= len(d.Data) {
		return zero, fmt.Errorf("%w: offset %d beyond buffer of %d", ErrSizeMismatch, off, len(d.Data))
	}
	return d.Data[off], nil
}
