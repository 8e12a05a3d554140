// Package pattern synthesizes 2D scalar intensity fields from closed-form
// mathematical functions.
//
// 🚀 What is pattern?
//
//	The leaf library of artfield: pure functions mapping a Spec
//	(kind + parameters + dimensions) to a dense Field of float64
//	intensities, every element clamped to [0,1]. Supported kinds:
//	  • Sine / Cosine    — periodic waves over (nx+ny)
//	  • Spiral           — polar angle/radius interaction
//	  • Interference     — product of two orthogonal waves (moiré)
//	  • Noise            — fractal gradient noise over a fixed
//	                       permutation table
//	  • Radial           — distance-from-center gradient
//	  • Random           — per-pixel seeded uniform field
//
// Coordinates are normalized per axis: nx = 2·x/width − 1 and
// ny = 2·y/height − 1, so every formula sees nx, ny ∈ [−1, 1).
//
// ⚙️ Usage:
//
//	spec := pattern.Spec{
//	  Kind:   pattern.Spiral,
//	  Params: map[string]float64{"turns": 5, "tightness": 1.2},
//	  Width:  512, Height: 512,
//	}
//	field, err := pattern.Synthesize(spec)
//	if err != nil {
//	  // ErrInvalidSpec: bad dimensions or missing/non-finite parameter
//	}
//
// Determinism:
//
//	Synthesize is referentially transparent. Every kind, including Noise
//	and Random, is a pure function of its Spec: Noise reads only the
//	fixed package-level permutation table, and Random derives its stream
//	from the explicit "seed" parameter. Two calls with equal Specs yield
//	bit-for-bit identical fields.
//
// Complexity: O(W×H) time and memory per call (×octaves for Noise).
package pattern
