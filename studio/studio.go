package studio

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/artfield/colormap"
	"github.com/katalvlaran/artfield/latent"
	"github.com/katalvlaran/artfield/pattern"
	"github.com/katalvlaran/artfield/prng"
	"github.com/katalvlaran/artfield/quality"
)

// Studio drives artwork generation under one fixed Options value.
// A Studio is immutable after New and safe for concurrent use.
type Studio struct {
	opts Options
}

// New validates opts and returns a ready Studio. All validation errors
// wrap ErrConfiguration and surface before any generation begins.
func New(opts Options) (*Studio, error) {
	if opts.Width < 1 || opts.Height < 1 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrConfiguration, opts.Width, opts.Height)
	}
	if len(opts.Kinds) == 0 {
		return nil, fmt.Errorf("%w: at least one pattern kind required", ErrConfiguration)
	}
	for _, k := range opts.Kinds {
		if !k.Valid() {
			return nil, fmt.Errorf("%w: unknown pattern kind %s", ErrConfiguration, k)
		}
	}
	if len(opts.Palettes) == 0 {
		return nil, fmt.Errorf("%w: at least one palette required", ErrConfiguration)
	}
	for _, name := range opts.Palettes {
		if _, err := colormap.ParseScheme(name); err == nil {
			continue
		}
		if _, err := colormap.TableByName(name); err != nil {
			return nil, fmt.Errorf("%w: unknown palette %q", ErrConfiguration, name)
		}
	}
	if !opts.Method.Valid() {
		return nil, fmt.Errorf("%w: unknown method %s", ErrConfiguration, opts.Method)
	}
	if opts.QualityThreshold < 0 || opts.QualityThreshold > 1 {
		return nil, fmt.Errorf("%w: quality threshold %v outside [0,1]", ErrConfiguration, opts.QualityThreshold)
	}
	if opts.NCandidates < 1 || opts.NBest < 1 {
		return nil, fmt.Errorf("%w: NCandidates and NBest must be positive", ErrConfiguration)
	}

	return &Studio{opts: opts}, nil
}

// Options returns a copy of the studio's configuration.
func (s *Studio) Options() Options { return s.opts }

// Generate produces one artwork for seed using the configured method.
// For the Discriminator method it draws NCandidates standard candidates
// from the seed's stream and keeps the single best survivor; if every
// candidate falls below QualityThreshold it returns ErrNoSurvivors.
func (s *Studio) Generate(seed int64) (Artwork, error) {
	if s.opts.Method == Discriminator {
		return s.generateBest(seed)
	}

	return s.generate(seed, s.opts.Method, 0)
}

// generate runs the standard or latent pipeline for one seed.
// index feeds the deterministic artwork ID.
func (s *Studio) generate(seed int64, method Method, index int) (Artwork, error) {
	src := prng.New(seed)
	kind := prng.Pick(src, s.opts.Kinds)

	var (
		field pattern.Field
		err   error
	)
	switch method {
	case Latent:
		field, err = latent.Generate(kind, s.opts.Width, s.opts.Height, seed)
		if errors.Is(err, pattern.ErrInvalidSpec) {
			// Re-draw from a derived seed rather than failing the artwork.
			field, err = latent.Generate(kind, s.opts.Width, s.opts.Height, seed+retrySeedDelta)
		}
	default:
		field, err = s.synthStandard(kind, src)
	}
	if err != nil {
		return Artwork{}, fmt.Errorf("seed %d: %w", seed, err)
	}

	return s.finish(field, nil, seed, kind, method, index, src)
}

// synthStandard draws a parameter set from src and synthesizes it,
// retrying once with a fresh draw if the first set is rejected.
func (s *Studio) synthStandard(kind pattern.Kind, src *prng.Source) (pattern.Field, error) {
	spec := pattern.SampleSpec(kind, s.opts.Width, s.opts.Height, src)
	field, err := pattern.Synthesize(spec)
	if errors.Is(err, pattern.ErrInvalidSpec) {
		spec = pattern.SampleSpec(kind, s.opts.Width, s.opts.Height, src)
		field, err = pattern.Synthesize(spec)
	}

	return field, err
}

// generateBest is the single-artwork discriminator path: NCandidates
// standard draws from the seed's own stream, ranked, best survivor kept.
func (s *Studio) generateBest(seed int64) (Artwork, error) {
	src := prng.New(seed)
	fields := make([]pattern.Field, 0, s.opts.NCandidates)
	kinds := make([]pattern.Kind, 0, s.opts.NCandidates)
	for i := 0; i < s.opts.NCandidates; i++ {
		kind := prng.Pick(src, s.opts.Kinds)
		field, err := s.synthStandard(kind, src)
		if err != nil {
			continue // a bad candidate is not fatal to the request
		}
		fields = append(fields, field)
		kinds = append(kinds, kind)
	}

	ranked := quality.Rank(fields, 1)
	if len(ranked) == 0 || ranked[0].Score.Total < s.opts.QualityThreshold {
		return Artwork{}, fmt.Errorf("seed %d: %w", seed, ErrNoSurvivors)
	}
	best := ranked[0]

	return s.finish(best.Field, &best.Score, seed, kinds[best.Index], Discriminator, 0, src)
}

// finish colorizes field, records metadata, and assembles the Artwork.
// The palette draw continues the artwork's own seeded stream.
func (s *Studio) finish(field pattern.Field, score *quality.Score, seed int64,
	kind pattern.Kind, method Method, index int, src *prng.Source) (Artwork, error) {
	palette := prng.Pick(src, s.opts.Palettes)
	img, err := applyPalette(field, palette)
	if err != nil {
		return Artwork{}, fmt.Errorf("seed %d: %w", seed, err)
	}

	return Artwork{
		Meta: Metadata{
			ID:        artworkID(seed, index),
			Seed:      seed,
			Kind:      kind.String(),
			Palette:   palette,
			Method:    method.String(),
			Width:     s.opts.Width,
			Height:    s.opts.Height,
			Timestamp: time.Now().UTC(),
			Quality:   score,
		},
		Field: field,
		Image: img,
	}, nil
}

// artworkID derives the collision-free per-batch identifier from the
// seed and the artwork's monotonic index.
func artworkID(seed int64, index int) string {
	return fmt.Sprintf("art_%d_%03d", seed, index)
}

// applyPalette resolves name as a scheme first, then as a table.
// Palette names are validated in New, so failure here means the name set
// changed underneath us — report it as a configuration error.
func applyPalette(field pattern.Field, name string) (colormap.Image, error) {
	if scheme, err := colormap.ParseScheme(name); err == nil {
		return colormap.ApplyScheme(field, scheme)
	}
	table, err := colormap.TableByName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: palette %q", ErrConfiguration, name)
	}

	return table.Apply(field), nil
}
