// Package studio orchestrates seeded, reproducible generation of artwork
// collections.
//
// 🚀 What is studio?
//
//	The batch driver tying the core together. One artwork request walks
//	a fixed pipeline:
//
//	  Start → ParamsSelected → FieldSynthesized → [Filtered]
//	        → Colorized → MetadataRecorded → Done
//
//	ParamsSelected branches on the generation method:
//	  • Standard      — pattern kind and parameters drawn from the seed
//	  • Latent        — a prior draw decoded through the latent codec
//	  • Discriminator — many standard candidates, ranked by quality;
//	                    only the survivors proceed past Filtered
//
// Reproducibility:
//
//	BatchGenerate(n, seedStart) assigns seeds seedStart..seedStart+n−1,
//	one per artwork in order, so a batch is fully determined by
//	(n, seedStart, method, options). Every stochastic choice inside one
//	artwork — kind, parameters, palette — flows from a Source keyed on
//	that artwork's seed alone, which is why the parallel driver produces
//	byte-identical fields to the sequential one.
//
// Failure handling:
//
//	A failed artwork is skipped and recorded (seed + error) in the Batch
//	summary; it never aborts the rest of the batch. Standard and latent
//	synthesis retry once with a re-drawn parameter set before giving up.
//	Context cancellation abandons remaining seeds without touching
//	completed artworks.
//
// Diverse collections:
//
//	GenerateDiverseCollection partitions n across the three methods by
//	the fixed ratio ⌊n/3⌋ standard, ⌊n/3⌋ latent, remainder
//	discriminator, with consecutive seed ranges in that order.
package studio
