// Package artfield is a deterministic playground for synthesizing,
// coloring, curating, and batch-producing 2D generative artworks from
// pure mathematical functions.
//
// 🚀 What is artfield?
//
//	A seed-reproducible generative-art toolkit that brings together:
//		• Pattern synthesis: sine, cosine, spiral, interference, gradient
//		  noise, radial gradients and seeded random fields — all pure
//		  functions over normalized coordinates
//		• Color mapping: fixed channel schemes plus piecewise-linear
//		  control-point color tables (sunset, ocean, fire, viridis, …)
//		• A latent codec: a deterministic parameter↔latent bottleneck with
//		  reparameterized seeded sampling (a VAE-shaped heuristic, not a
//		  trained model)
//		• A quality discriminator: contrast/entropy/smoothness/symmetry
//		  scoring with filter and stable top-n ranking
//		• A batch studio: seeded, fully reproducible artwork collections
//		  with skip-and-record failure handling
//
// ✨ Why choose artfield?
//
//   - Bit-for-bit reproducible — every stochastic choice is keyed on an
//     explicit integer seed; no ambient entropy anywhere in the core
//   - Pure Go — the core performs no I/O; persistence and display are
//     injected collaborators (render/, store/, cmd/)
//   - Embarrassingly parallel — artworks in a batch share nothing mutable
//     and can be driven concurrently with identical results
//
// Everything is organized into small focused packages:
//
//	pattern/  — Spec, Kind, Synthesize: scalar fields in [0,1]
//	colormap/ — channel schemes, color tables, field→RGB application
//	latent/   — Encode / Sample / Decode / Generate / Reconstruct
//	quality/  — Evaluate, Filter, Rank, IsReal
//	studio/   — seeded batch orchestration and diverse collections
//	prng/     — the single seeded entropy source used by the core
//	config/   — validated generation configuration (viper)
//	render/   — RGBA conversion, PNG encoding, gallery contact sheets
//	store/    — injected batch metadata store (JSON file implementation)
//
// Quick taste:
//
//	spec := pattern.Spec{
//	  Kind:   pattern.Sine,
//	  Params: map[string]float64{"frequency": 5, "phase": 0},
//	  Width:  256, Height: 256,
//	}
//	field, _ := pattern.Synthesize(spec)
//	img := colormap.MustTable("sunset").Apply(field)
//
// Dive into each package's doc.go for formulas, invariants, and examples.
//
//	go get github.com/katalvlaran/artfield
package artfield
