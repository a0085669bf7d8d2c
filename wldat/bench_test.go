package wldat

import (
	"math/rand"
	"testing"
)

func benchDocument(shape Shape) *Document[float64] {
	rng := rand.New(rand.NewSource(7))
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return &Document[float64]{Comment: "bench", Shape: shape, Data: data}
}

func BenchmarkEncode(b *testing.B) {
	doc := benchDocument(Shape{64, 64})
	opts := DefaultEmitOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(doc, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	text, err := Encode(benchDocument(Shape{64, 64}), DefaultEmitOptions())
	if err != nil {
		b.Fatal(err)
	}
	opts := DefaultParseOptions()
	b.SetBytes(int64(len(text)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DecodeReal(text, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInferShape(b *testing.B) {
	text, err := Encode(benchDocument(Shape{16, 16, 16}), DefaultEmitOptions())
	if err != nil {
		b.Fatal(err)
	}
	_, body := SplitHeader(text)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := InferShape(body, DefaultMaxRank); err != nil {
			b.Fatal(err)
		}
	}
}
