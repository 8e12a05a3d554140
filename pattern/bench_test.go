package pattern_test

import (
	"testing"

	"github.com/katalvlaran/artfield/pattern"
)

// benchSynthesize measures one kind at 128×128.
func benchSynthesize(b *testing.B, k pattern.Kind) {
	spec := specFor(k, 128, 128)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pattern.Synthesize(spec); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSynthesize_Sine(b *testing.B)         { benchSynthesize(b, pattern.Sine) }
func BenchmarkSynthesize_Spiral(b *testing.B)       { benchSynthesize(b, pattern.Spiral) }
func BenchmarkSynthesize_Interference(b *testing.B) { benchSynthesize(b, pattern.Interference) }
func BenchmarkSynthesize_Noise(b *testing.B)        { benchSynthesize(b, pattern.Noise) }
func BenchmarkSynthesize_Random(b *testing.B)       { benchSynthesize(b, pattern.Random) }
