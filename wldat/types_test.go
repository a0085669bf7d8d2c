package wldat

import (
	"errors"
	"math"
	"testing"
)

func TestShape_Strides(t *testing.T) {
	shape := Shape{2, 3, 4}

	row := shape.Strides(RowMajor)
	if row[0] != 12 || row[1] != 4 || row[2] != 1 {
		t.Errorf("row-major strides = %v", row)
	}
	col := shape.Strides(ColumnMajor)
	if col[0] != 1 || col[1] != 2 || col[2] != 6 {
		t.Errorf("column-major strides = %v", col)
	}

	// Offset must agree with the strides for every index.
	for _, order := range []Order{RowMajor, ColumnMajor} {
		strides := shape.Strides(order)
		seen := make(map[int]bool)
		for i := 0; i < 2; i++ {
			for j := 0; j < 3; j++ {
				for k := 0; k < 4; k++ {
					off := shape.Offset([]int{i, j, k}, order)
					if want := i*strides[0] + j*strides[1] + k*strides[2]; off != want {
						t.Errorf("%s Offset(%d,%d,%d) = %d, want %d", order, i, j, k, off, want)
					}
					seen[off] = true
				}
			}
		}
		if len(seen) != shape.NumElements() {
			t.Errorf("%s offsets are not a permutation: %d distinct", order, len(seen))
		}
	}
}

func TestShape_Validate(t *testing.T) {
	tests := []struct {
		shape Shape
		want  error
	}{
		{Shape{1}, nil},
		{Shape{2, 3}, nil},
		{Shape{}, ErrInvalidShape},
		{Shape{3, 0}, ErrInvalidShape},
		{Shape{-2}, ErrInvalidShape},
	}
	for _, tt := range tests {
		err := tt.shape.Validate(DefaultMaxRank)
		if tt.want == nil && err != nil {
			t.Errorf("Validate(%s) = %v", tt.shape, err)
		}
		if tt.want != nil && !errors.Is(err, tt.want) {
			t.Errorf("Validate(%s) = %v, want %v", tt.shape, err, tt.want)
		}
	}

	overflow := []Shape{
		{math.MaxInt/2 + 1, 2},
		{math.MaxInt, math.MaxInt},
		{1 << 16, 1 << 16, 1 << 16, 1 << 16},
	}
	for _, shape := range overflow {
		if err := shape.Validate(DefaultMaxRank); !errors.Is(err, ErrInvalidShape) {
			t.Errorf("Validate(%s) = %v, want ErrInvalidShape", shape, err)
		}
	}
	if err := (Shape{math.MaxInt}).Validate(DefaultMaxRank); err != nil {
		t.Errorf("a single dimension of MaxInt fits: %v", err)
	}
	if err := (Shape{math.MaxInt / 2, 2}).Validate(DefaultMaxRank); err != nil {
		t.Errorf("a product just below MaxInt fits: %v", err)
	}

	if err := (Shape{1, 1, 1}).Validate(2); !errors.Is(err, ErrRankLimit) {
		t.Errorf("expected ErrRankLimit, got %v", err)
	}
}

func TestShape_String(t *testing.T) {
	if s := (Shape{2, 3, 4}).String(); s != "[2 3 4]" {
		t.Errorf("String = %q", s)
	}
	if n := (Shape{}).NumElements(); n != 0 {
		t.Errorf("empty shape has %d elements", n)
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in   string
		want Order
	}{
		{"", RowMajor},
		{"row-major", RowMajor},
		{"C", RowMajor},
		{"column_major", ColumnMajor},
		{"Fortran", ColumnMajor},
	}
	for _, tt := range tests {
		got, err := ParseOrder(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseOrder(%q) = %v, %v", tt.in, got, err)
		}
	}
	if _, err := ParseOrder("diagonal"); err == nil {
		t.Error("expected error for unknown order")
	}
}

func TestDocument_At(t *testing.T) {
	doc := &Document[float64]{Shape: Shape{2, 3}, Data: []float64{1, 2, 3, 4, 5, 6}}

	v, err := doc.At(1, 2)
	if err != nil || v != 6 {
		t.Errorf("At(1, 2) = %v, %v", v, err)
	}
	v, err = doc.AtOrder(ColumnMajor, 1, 0)
	if err != nil || v != 2 {
		t.Errorf("AtOrder(ColumnMajor, 1, 0) = %v, %v", v, err)
	}

	if _, err := doc.At(2, 0); err == nil {
		t.Error("expected out of range error")
	}
	if _, err := doc.At(0); err == nil {
		t.Error("expected rank error")
	}

	short := &Document[float64]{Shape: Shape{2, 3}, Data: []float64{1}}
	if _, err := short.At(1, 1); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}
