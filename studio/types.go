package studio

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/artfield/colormap"
	"github.com/katalvlaran/artfield/pattern"
	"github.com/katalvlaran/artfield/quality"
)

// Sentinel errors for orchestration.
var (
	// ErrConfiguration indicates an unusable Options value; surfaced by
	// New before any generation begins.
	ErrConfiguration = errors.New("studio: invalid configuration")
	// ErrNoSurvivors indicates the discriminator rejected every candidate
	// of a single-artwork request.
	ErrNoSurvivors = errors.New("studio: no candidate passed the quality threshold")
)

// Method selects how an artwork's parameters come to exist.
type Method int

const (
	// Standard samples kind and parameters directly from the seed.
	Standard Method = iota
	// Latent decodes a seeded prior draw through the latent codec.
	Latent
	// Discriminator generates standard candidates and keeps the best.
	Discriminator
)

var methodNames = [...]string{"standard", "latent", "discriminator"}

// String returns the canonical lower-case name of m.
func (m Method) String() string {
	if m < Standard || m > Discriminator {
		return fmt.Sprintf("method(%d)", int(m))
	}

	return methodNames[m]
}

// Valid reports whether m is a member of the closed enum.
func (m Method) Valid() bool { return m >= Standard && m <= Discriminator }

// ParseMethod resolves a canonical name back to its Method.
func ParseMethod(name string) (Method, error) {
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown method %q", ErrConfiguration, name)
}

// retrySeedDelta derives the replacement seed when a latent draw must be
// re-drawn after an invalid parameter set.
const retrySeedDelta = 7919

// Options configures a Studio. Construct via DefaultOptions and adjust.
type Options struct {
	// Width and Height of every synthesized field.
	Width, Height int
	// Kinds is the pool of pattern kinds the seed may select from.
	Kinds []pattern.Kind
	// Palettes is the pool of color scheme and color table names.
	Palettes []string
	// Method selects the generation path for Generate/BatchGenerate.
	Method Method
	// QualityThreshold applies on the Discriminator path; survivors need
	// Total ≥ threshold. Zero disables the threshold cut.
	QualityThreshold float64
	// NCandidates is the candidate pool size for single-artwork
	// Discriminator requests.
	NCandidates int
	// NBest caps the survivors of a Discriminator batch.
	NBest int
	// Workers bounds the parallel driver; ≤0 means GOMAXPROCS.
	Workers int
}

// DefaultOptions mirrors the classic automation setup: all kinds, all
// palettes, standard method, a 20-candidate pool keeping the best 5.
func DefaultOptions() Options {
	palettes := make([]string, 0, 16)
	for _, s := range colormap.Schemes() {
		palettes = append(palettes, s.String())
	}
	palettes = append(palettes, colormap.TableNames()...)

	return Options{
		Width: 512, Height: 512,
		Kinds:            pattern.Kinds(),
		Palettes:         palettes,
		Method:           Standard,
		QualityThreshold: 0.5,
		NCandidates:      20,
		NBest:            5,
	}
}

// Metadata describes one finished artwork. Created once per artwork and
// never mutated; the ID is a pure function of the seed and the artwork's
// index within its batch.
type Metadata struct {
	ID        string         `json:"id"`
	Seed      int64          `json:"seed"`
	Kind      string         `json:"pattern_kind"`
	Palette   string         `json:"color_table_name"`
	Method    string         `json:"generation_method"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Timestamp time.Time      `json:"timestamp"`
	Quality   *quality.Score `json:"quality_score,omitempty"`
}

// Artwork is one finished piece: metadata, the scalar field, and its
// colorized image. Ownership passes to the caller.
type Artwork struct {
	Meta  Metadata
	Field pattern.Field
	Image colormap.Image
}

// Failure records one skipped seed and why it was skipped.
type Failure struct {
	Seed int64  `json:"seed"`
	Err  string `json:"error"`
}

// Batch summarizes one batch run: the artworks that completed, in seed
// order (rank order for discriminator batches), plus every skipped seed.
type Batch struct {
	SeedStart int64
	Requested int
	Method    string
	Artworks  []Artwork
	Failures  []Failure
}

// Metadatas returns the ordered metadata records of the batch.
func (b *Batch) Metadatas() []Metadata {
	out := make([]Metadata, len(b.Artworks))
	for i, a := range b.Artworks {
		out[i] = a.Meta
	}

	return out
}
