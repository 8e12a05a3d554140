package pattern

import (
	"math"

	"github.com/katalvlaran/artfield/prng"
)

// SampleParams draws one value per required parameter of k from src,
// walking the catalog in its fixed order. Draws are uniform over each
// parameter's sampling range; integral parameters are rounded.
//
// The walk order is part of the reproducibility contract: callers that
// share a Source position (the batch orchestrator does) rely on every
// kind consuming a fixed number of draws.
func SampleParams(k Kind, src *prng.Source) map[string]float64 {
	ranges := paramCatalog[k]
	params := make(map[string]float64, len(ranges))
	for _, p := range ranges {
		v := src.Uniform(p.Lo, p.Hi)
		if p.Integral {
			v = math.Round(v)
		}
		params[p.Name] = v
	}

	return params
}

// SampleSpec draws a complete Spec for k at the given dimensions.
func SampleSpec(k Kind, w, h int, src *prng.Source) Spec {
	return Spec{Kind: k, Params: SampleParams(k, src), Width: w, Height: h}
}
