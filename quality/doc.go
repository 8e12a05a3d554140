// Package quality scores the visual interest of scalar fields and
// exposes filter and ranking operations over candidate sets.
//
// 🚀 What is quality?
//
//	A heuristic discriminator: four sub-metrics derived purely from a
//	field's intensities, each pushed through a preference curve that
//	peaks at a target value and falls off toward both extremes —
//	over- and under-saturated patterns are equally undesirable:
//	  • Contrast   — standard deviation, preferred medium-high
//	  • Entropy    — normalized Shannon entropy of a 64-bin histogram,
//	                 preferred medium
//	  • Smoothness — inverse mean gradient magnitude, preferred moderate
//	  • Symmetry   — mirror similarity; the one monotone metric: more
//	                 symmetric is always at least as good
//
// The total is a fixed weighted combination (see the weight constants in
// types.go); the weights are part of the evaluation contract and cannot
// be tuned per call.
//
// Evaluate is a pure function: no shared state, identical fields always
// produce identical scores, and Rank breaks ties by original input order
// so results are reproducible.
package quality
