// Package colormap maps scalar intensity fields to RGB images.
//
// Two mapping families exist:
//
//   - Scheme — a fixed channel policy (Grayscale, Red, Green, Blue,
//     Rainbow, Warm, Cool). Each is a closed formula over the intensity;
//     Rainbow converts intensity to a hue angle at full saturation and
//     value and applies the standard HSV→RGB sector conversion.
//
//   - Table — a named, ordered sequence of control points (t, R, G, B)
//     defining a piecewise-linear interpolant. Built-in tables cover the
//     artistic gradients (sunset, ocean, forest, fire, aurora, neon,
//     vintage, cyberpunk) and perceptual anchors (viridis, plasma).
//
// Boundary policy: an intensity of exactly 0 or 1 returns the first or
// last control point verbatim, never an interpolated blend.
//
// All tables are immutable package-level values built once at init and
// safe for concurrent reads; Apply holds no caches, so identical
// (field, table) inputs always produce identical images.
package colormap
