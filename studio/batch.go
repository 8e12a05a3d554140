package studio

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/artfield/pattern"
	"github.com/katalvlaran/artfield/prng"
	"github.com/katalvlaran/artfield/quality"
)

// BatchGenerate produces a batch of artworks for seeds
// seedStart..seedStart+n−1, in order. Individual failures are skipped and
// recorded in the Batch summary, never aborting the remaining seeds.
// Cancellation of ctx abandons the remaining seeds and returns the
// partial batch alongside ctx's error.
//
// Under the Discriminator method the n seeds form the candidate pool:
// all candidates are synthesized and ranked, and only the top NBest
// (those meeting QualityThreshold, when set) become artworks.
func (s *Studio) BatchGenerate(ctx context.Context, n int, seedStart int64) (*Batch, error) {
	if s.opts.Method == Discriminator {
		return s.batchDiscriminator(ctx, n, seedStart, 1)
	}

	batch := &Batch{SeedStart: seedStart, Requested: n, Method: s.opts.Method.String()}
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return batch, err
		}
		seed := seedStart + int64(i)
		art, err := s.generate(seed, s.opts.Method, i)
		if err != nil {
			batch.Failures = append(batch.Failures, Failure{Seed: seed, Err: err.Error()})
			continue
		}
		batch.Artworks = append(batch.Artworks, art)
	}

	return batch, nil
}

// BatchGenerateParallel is BatchGenerate distributed across a bounded
// worker pool. Each worker owns one seed at a time and shares nothing
// mutable, so the resulting artworks are identical to the sequential
// driver's (timestamps aside) and land in the same order.
func (s *Studio) BatchGenerateParallel(ctx context.Context, n int, seedStart int64) (*Batch, error) {
	workers := s.opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if s.opts.Method == Discriminator {
		return s.batchDiscriminator(ctx, n, seedStart, workers)
	}

	type slot struct {
		art  Artwork
		fail *Failure
	}
	slots := make([]slot, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seed := seedStart + int64(i)
			art, err := s.generate(seed, s.opts.Method, i)
			if err != nil {
				slots[i] = slot{fail: &Failure{Seed: seed, Err: err.Error()}}
				return nil
			}
			slots[i] = slot{art: art}

			return nil
		})
	}
	err := g.Wait()

	batch := &Batch{SeedStart: seedStart, Requested: n, Method: s.opts.Method.String()}
	for _, sl := range slots {
		switch {
		case sl.fail != nil:
			batch.Failures = append(batch.Failures, *sl.fail)
		case sl.art.Field != nil:
			batch.Artworks = append(batch.Artworks, sl.art)
		}
	}

	return batch, err
}

// candidate is one discriminator-pool entry, holding its seed stream so
// the palette draw of a survivor continues where synthesis left off.
type candidate struct {
	seed  int64
	kind  pattern.Kind
	field pattern.Field
	src   *prng.Source
}

// batchDiscriminator synthesizes the whole candidate pool, ranks it, and
// colorizes only the survivors, in rank order.
func (s *Studio) batchDiscriminator(ctx context.Context, n int, seedStart int64, workers int) (*Batch, error) {
	batch := &Batch{SeedStart: seedStart, Requested: n, Method: Discriminator.String()}

	cands := make([]*candidate, n)
	fails := make([]*Failure, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seed := seedStart + int64(i)
			src := prng.New(seed)
			kind := prng.Pick(src, s.opts.Kinds)
			field, err := s.synthStandard(kind, src)
			if err != nil {
				fails[i] = &Failure{Seed: seed, Err: err.Error()}
				return nil
			}
			cands[i] = &candidate{seed: seed, kind: kind, field: field, src: src}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return batch, err
	}

	fields := make([]pattern.Field, 0, n)
	pool := make([]*candidate, 0, n)
	for i := 0; i < n; i++ {
		if fails[i] != nil {
			batch.Failures = append(batch.Failures, *fails[i])
			continue
		}
		if cands[i] != nil {
			fields = append(fields, cands[i].field)
			pool = append(pool, cands[i])
		}
	}

	// Keep the top NBest, then apply the threshold cut when one is set.
	// Fewer survivors than NBest is not an error.
	for idx, r := range quality.Rank(fields, s.opts.NBest) {
		if r.Score.Total < s.opts.QualityThreshold {
			continue
		}
		c := pool[r.Index]
		score := r.Score
		art, err := s.finish(c.field, &score, c.seed, c.kind, Discriminator, idx, c.src)
		if err != nil {
			batch.Failures = append(batch.Failures, Failure{Seed: c.seed, Err: err.Error()})
			continue
		}
		batch.Artworks = append(batch.Artworks, art)
	}

	return batch, nil
}

// Fixed diverse-collection partition: one third standard, one third
// latent, the remainder discriminator, in that seed order.
func diversePartition(n int) (nStandard, nLatent, nDiscriminator int) {
	nStandard = n / 3
	nLatent = n / 3
	nDiscriminator = n - nStandard - nLatent

	return nStandard, nLatent, nDiscriminator
}

// GenerateDiverseCollection produces one combined batch spanning all
// three methods under the fixed partition of diversePartition, with
// consecutive seed ranges assigned in standard → latent → discriminator
// order. The partition and ordering are constants of the design, never
// randomized, so the collection is reproducible from (n, seedStart).
func (s *Studio) GenerateDiverseCollection(ctx context.Context, n int, seedStart int64) (*Batch, error) {
	nStd, nLat, nDisc := diversePartition(n)
	combined := &Batch{SeedStart: seedStart, Requested: n, Method: "diverse"}

	seed := seedStart
	for _, part := range []struct {
		method Method
		count  int
	}{
		{Standard, nStd},
		{Latent, nLat},
		{Discriminator, nDisc},
	} {
		if part.count == 0 {
			continue
		}
		sub := *s
		sub.opts.Method = part.method
		b, err := sub.BatchGenerate(ctx, part.count, seed)
		if b != nil {
			combined.Artworks = append(combined.Artworks, b.Artworks...)
			combined.Failures = append(combined.Failures, b.Failures...)
		}
		if err != nil {
			return combined, err
		}
		seed += int64(part.count)
	}

	return combined, nil
}
