package quality_test

import (
	"testing"

	"github.com/katalvlaran/artfield/pattern"
	"github.com/katalvlaran/artfield/quality"
)

func BenchmarkEvaluate(b *testing.B) {
	field, err := pattern.Synthesize(pattern.Spec{
		Kind:   pattern.Interference,
		Params: map[string]float64{"freq1": 3, "freq2": 5},
		Width:  128, Height: 128,
	})
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		quality.Evaluate(field)
	}
}

func BenchmarkRank_50Candidates(b *testing.B) {
	fields := make([]pattern.Field, 50)
	for i := range fields {
		f, err := pattern.Synthesize(pattern.Spec{
			Kind:   pattern.Random,
			Params: map[string]float64{"seed": float64(i)},
			Width:  64, Height: 64,
		})
		if err != nil {
			b.Fatal(err)
		}
		fields[i] = f
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		quality.Rank(fields, 10)
	}
}
