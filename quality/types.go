package quality

// Fixed weights combining the four sub-metrics into Total. These are part
// of the evaluation contract: changing any of them changes what the
// discriminator means by "good".
const (
	WeightContrast   = 0.30
	WeightEntropy    = 0.30
	WeightSmoothness = 0.20
	WeightSymmetry   = 0.20
)

// Preference-curve targets and widths. Each peaked metric is mapped
// through exp(−((x−peak)/width)²), so a raw value at the peak scores 1
// and falls off smoothly toward both extremes.
const (
	// Contrast: stddev of a [0,1] field tops out at 0.5; prefer medium-high.
	contrastPeak  = 0.28
	contrastWidth = 0.18

	// Entropy: normalized to [0,1] by log2(entropyBins); prefer medium.
	entropyPeak  = 0.65
	entropyWidth = 0.30

	// Smoothness: 1/(1+gain·meanGradient); prefer moderate.
	smoothnessPeak  = 0.50
	smoothnessWidth = 0.25
	smoothnessGain  = 10.0
)

// entropyBins is the coarse histogram resolution for the entropy metric.
const entropyBins = 64

// Score is the composite quality of one field. Every component and the
// Total lie in [0,1]. Immutable once computed.
type Score struct {
	Contrast   float64 `json:"contrast"`
	Entropy    float64 `json:"entropy"`
	Smoothness float64 `json:"smoothness"`
	Symmetry   float64 `json:"symmetry"`
	Total      float64 `json:"total"`
}
