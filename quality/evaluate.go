package quality

import (
	"math"

	"github.com/katalvlaran/artfield/pattern"
)

// Evaluate computes the composite quality of field. Pure: the input is
// never mutated and identical fields always score identically.
//
// Each peaked sub-metric is the raw measurement pushed through its
// preference curve; Symmetry enters as-is (monotone bonus). The Total is
// the fixed weighted combination declared in types.go.
//
// Complexity: O(W×H).
func Evaluate(field pattern.Field) Score {
	pc := preference(stddev(field), contrastPeak, contrastWidth)
	pe := preference(entropy(field), entropyPeak, entropyWidth)
	ps := preference(smoothness(field), smoothnessPeak, smoothnessWidth)
	sym := symmetry(field)

	return Score{
		Contrast:   pc,
		Entropy:    pe,
		Smoothness: ps,
		Symmetry:   sym,
		Total:      WeightContrast*pc + WeightEntropy*pe + WeightSmoothness*ps + WeightSymmetry*sym,
	}
}

// preference is the peaked curve exp(−((x−peak)/width)²) ∈ (0,1].
func preference(x, peak, width float64) float64 {
	d := (x - peak) / width

	return math.Exp(-d * d)
}

// stddev returns the population standard deviation of all intensities.
func stddev(f pattern.Field) float64 {
	n := float64(f.Width() * f.Height())
	if n == 0 {
		return 0
	}
	var sum float64
	for y := range f {
		for _, v := range f[y] {
			sum += v
		}
	}
	mean := sum / n
	var varSum float64
	for y := range f {
		for _, v := range f[y] {
			d := v - mean
			varSum += d * d
		}
	}

	return math.Sqrt(varSum / n)
}

// entropy returns the Shannon entropy of a coarse intensity histogram,
// normalized to [0,1] by the maximum log2(entropyBins).
func entropy(f pattern.Field) float64 {
	var hist [entropyBins]int
	total := 0
	for y := range f {
		for _, v := range f[y] {
			bin := int(v * entropyBins)
			if bin >= entropyBins {
				bin = entropyBins - 1
			}
			hist[bin]++
			total++
		}
	}
	if total == 0 {
		return 0
	}
	var h float64
	for _, c := range hist {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}

	return h / math.Log2(entropyBins)
}

// smoothness returns 1/(1+gain·meanGradient) where the gradient uses
// central differences in the interior and one-sided differences at the
// edges. Flat fields score 1; rough fields approach 0.
func smoothness(f pattern.Field) float64 {
	w, h := f.Width(), f.Height()
	if w == 0 || h == 0 {
		return 1
	}
	var sum float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := axisGradient(f[y], x, w)
			gy := colGradient(f, x, y, h)
			sum += math.Hypot(gx, gy)
		}
	}
	mean := sum / float64(w*h)

	return 1 / (1 + smoothnessGain*mean)
}

// axisGradient is the horizontal derivative at column x of one row.
func axisGradient(row []float64, x, w int) float64 {
	switch {
	case w == 1:
		return 0
	case x == 0:
		return row[1] - row[0]
	case x == w-1:
		return row[w-1] - row[w-2]
	default:
		return (row[x+1] - row[x-1]) / 2
	}
}

// colGradient is the vertical derivative at row y of one column.
func colGradient(f pattern.Field, x, y, h int) float64 {
	switch {
	case h == 1:
		return 0
	case y == 0:
		return f[1][x] - f[0][x]
	case y == h-1:
		return f[h-1][x] - f[h-2][x]
	default:
		return (f[y+1][x] - f[y-1][x]) / 2
	}
}

// symmetry returns the mean of horizontal and vertical mirror similarity,
// each 1 − mean|field − mirror| over the compared halves. A field equal
// to both of its mirrors scores exactly 1; a field whose mirrors are its
// pixel negation scores 0.
func symmetry(f pattern.Field) float64 {
	w, h := f.Width(), f.Height()
	if w == 0 || h == 0 {
		return 1
	}

	// Horizontal axis: top half vs. flipped bottom half.
	var hDiff float64
	hCount := 0
	for y := 0; y < h/2; y++ {
		for x := 0; x < w; x++ {
			hDiff += math.Abs(f[y][x] - f[h-1-y][x])
			hCount++
		}
	}
	hSym := 1.0
	if hCount > 0 {
		hSym = 1 - hDiff/float64(hCount)
	}

	// Vertical axis: left half vs. flipped right half.
	var vDiff float64
	vCount := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w/2; x++ {
			vDiff += math.Abs(f[y][x] - f[y][w-1-x])
			vCount++
		}
	}
	vSym := 1.0
	if vCount > 0 {
		vSym = 1 - vDiff/float64(vCount)
	}

	return clamp01((hSym + vSym) / 2)
}

// clamp01 forces v into [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
