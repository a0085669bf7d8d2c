package wldat

import (
	"fmt"
	"strings"
)

// EmitOptions configures encoding.
type EmitOptions struct {
	// Order is the layout of the buffer being encoded.
	Order Order

	// PlainExponent writes 1.5e+00 instead of 1.5*^+00.
	PlainExponent bool

	// MaxRank caps the number of dimensions (default: DefaultMaxRank).
	MaxRank int
}

// DefaultEmitOptions returns row-major options with Wolfram exponents.
func DefaultEmitOptions() EmitOptions {
	return EmitOptions{
		Order:   RowMajor,
		MaxRank: DefaultMaxRank,
	}
}

// EmitBody renders data in shape as nested braces. Nothing is rendered
// when the buffer length does not match the shape.
func EmitBody[T Scalar](data []T, shape Shape, opts EmitOptions) (string, error) {
	if err := shape.Validate(opts.MaxRank); err != nil {
		return "", err
	}
	if n := shape.NumElements(); len(data) != n {
		return "", fmt.Errorf("%w: shape %s needs %d elements, buffer has %d",
			ErrSizeMismatch, shape, n, len(data))
	}

	e := &emitter[T]{
		data:    data,
		shape:   shape,
		opts:    opts,
		indices: make([]int, len(shape)),
	}
	e.sb.Grow(len(data) * e.leafWidth())
	e.emitLevel(0)
	return e.sb.String(), nil
}

type emitter[T Scalar] struct {
	sb      strings.Builder
	data    []T
	shape   Shape
	opts    EmitOptions
	indices []int
}

func (e *emitter[T]) emitLevel(level int) {
	innermost := level == len(e.shape)-1

	e.sb.WriteByte('{')
	for i := 0; i < e.shape[level]; i++ {
		e.indices[level] = i
		if innermost {
			v := e.data[e.shape.Offset(e.indices, e.opts.Order)]
			e.sb.WriteString(formatScalar(v, e.opts.PlainExponent))
		} else {
			e.emitLevel(level + 1)
		}
		if i < e.shape[level]-1 {
			e.sb.WriteString(", ")
		}
	}
	e.sb.WriteByte('}')
}

// leafWidth estimates the rendered size of one element plus separator.
func (e *emitter[T]) leafWidth() int {
	var zero T
	if _, ok := any(zero).(complex128); ok {
		return 54
	}
	return 26
}
