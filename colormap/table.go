package colormap

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/artfield/pattern"
)

// tables is the registry of built-in color tables. Populated once below;
// never mutated afterwards, so concurrent lookups are safe.
var tables = map[string]*Table{}

// Built-in artistic gradients and perceptual anchors. Stops are spread
// evenly over [0,1] in list order.
func init() {
	register("sunset", "#1a1a2e", "#16213e", "#0f3460", "#533483", "#e94560", "#ff6b6b", "#ffa500", "#ffd700")
	register("ocean", "#000428", "#004e92", "#009ffd", "#2a2a72", "#009ffd", "#00d2ff", "#3a7bd5")
	register("forest", "#0a0e27", "#1a3a2a", "#2d5016", "#3d6b14", "#5a9214", "#7fb347", "#a8d5ba")
	register("fire", "#000000", "#330000", "#660000", "#990000", "#cc0000", "#ff3300", "#ff6600", "#ff9900", "#ffcc00")
	register("aurora", "#000000", "#001122", "#003344", "#0066aa", "#00aaff", "#00ffaa", "#aaff00", "#ffff00")
	register("neon", "#000000", "#1a0033", "#330066", "#6600cc", "#9900ff", "#cc66ff", "#ff99ff", "#ffccff")
	register("vintage", "#2c1810", "#4a2c1a", "#6b4423", "#8b6914", "#a0822d", "#c4a574", "#e6d5b8", "#f5e6d3")
	register("cyberpunk", "#000000", "#1a0033", "#330066", "#0000ff", "#00ffff", "#00ff00", "#ffff00", "#ff00ff")
	register("viridis", "#440154", "#3b528b", "#21918c", "#5ec962", "#fde725")
	register("plasma", "#0d0887", "#7e03a8", "#cc4778", "#f89441", "#f0f921")
}

// register builds a Table from evenly spaced hex stops and installs it.
func register(name string, hexes ...string) {
	stops := make([]Stop, len(hexes))
	for i, h := range hexes {
		stops[i] = Stop{
			T:     float64(i) / float64(len(hexes)-1),
			Color: parseHex(h),
		}
	}
	tables[name] = &Table{Name: name, Stops: stops}
}

// parseHex decodes "#rrggbb". Built-in definitions only; panics on a
// malformed literal so a bad table never reaches runtime.
func parseHex(s string) RGB {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		panic("colormap: bad hex literal " + s)
	}

	return RGB{r, g, b}
}

// TableByName returns the registered table called name,
// or ErrUnknownTable.
func TableByName(name string) (*Table, error) {
	t, ok := tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}

	return t, nil
}

// MustTable returns the registered table called name, panicking when it
// does not exist. Intended for package-level fixtures and examples.
func MustTable(name string) *Table {
	t, err := TableByName(name)
	if err != nil {
		panic(err)
	}

	return t
}

// TableNames returns all registered table names in sorted order.
func TableNames() []string {
	names := make([]string, 0, len(tables))
	for n := range tables {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// At evaluates the interpolant at t ∈ [0,1] (clamped). The boundary
// policy is exact: t==0 returns the first stop and t==1 the last stop
// without interpolation.
func (tb *Table) At(t float64) RGB {
	t = clamp01(t)
	stops := tb.Stops
	if t == 0 {
		return stops[0].Color
	}
	if t == 1 {
		return stops[len(stops)-1].Color
	}

	// Find the bracketing pair. Stops are sorted by T at construction.
	hi := sort.Search(len(stops), func(i int) bool { return stops[i].T >= t })
	if hi == 0 {
		return stops[0].Color
	}
	if hi == len(stops) {
		return stops[len(stops)-1].Color
	}
	lo := hi - 1
	span := stops[hi].T - stops[lo].T
	if span == 0 {
		return stops[lo].Color
	}
	f := (t - stops[lo].T) / span

	return RGB{
		R: lerpByte(stops[lo].Color.R, stops[hi].Color.R, f),
		G: lerpByte(stops[lo].Color.G, stops[hi].Color.G, f),
		B: lerpByte(stops[lo].Color.B, stops[hi].Color.B, f),
	}
}

// Apply maps every intensity of field through the table.
// Pure: identical (field, table) inputs yield identical images.
// Complexity: O(W×H·log S) for S stops.
func (tb *Table) Apply(field pattern.Field) Image {
	img := NewImage(field.Width(), field.Height())
	for y := range field {
		for x, v := range field[y] {
			img[y][x] = tb.At(v)
		}
	}

	return img
}

// lerpByte interpolates one 8-bit channel with rounding.
func lerpByte(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}
