// Package latent maps pattern parameters through a fixed-dimensional
// pseudo-probabilistic bottleneck.
//
// 🚀 What is latent?
//
//	A deterministic parameter↔latent codec shaped like a variational
//	autoencoder but containing no learned weights:
//	  • Encode    — fold a parameter set into a Distribution
//	                (mean + log-variance), deterministically
//	  • Sample    — draw one Vector via the reparameterization form
//	                mean + exp(0.5·logvar)·ε(seed)
//	  • Decode    — affinely rescale a Vector into concrete pattern
//	                parameters and synthesize the field
//	  • Generate  — draw from the unit prior with a seed and decode
//	  • Reconstruct — the full Encode → Sample → Decode round trip
//
// The projection matrices behind Encode and Decode are generated once at
// package init from fixed internal seeds. They are part of the codec
// contract: the same parameters always encode to the same Distribution,
// independent of call order, and the latent→parameter assignment is a
// fixed documented affine map, never inferred at runtime.
//
// Reproducibility:
//
//	All randomness enters through the explicit seed of Sample/Generate.
//	Same (params, kind, shape, seed) → identical field, bit for bit;
//	changing only the seed changes the field.
//
// Errors:
//   - ErrUnsupportedPattern — kind has no registered decode mapping
//   - ErrDimensionMismatch  — a vector's length disagrees with Dim
package latent
