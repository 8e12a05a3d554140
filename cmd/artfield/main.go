// Command artfield runs the batch automation: it loads a configuration,
// generates a seeded collection of artworks, writes each image as PNG,
// composes a gallery contact sheet, and saves the batch summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/katalvlaran/artfield/colormap"
	"github.com/katalvlaran/artfield/config"
	"github.com/katalvlaran/artfield/render"
	"github.com/katalvlaran/artfield/store"
	"github.com/katalvlaran/artfield/studio"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "path to configuration file (defaults apply when empty)")
		n       = flag.Int("n", 0, "override n_artworks")
		seed    = flag.Int64("seed", -1, "override seed_start")
		diverse = flag.Bool("diverse", false, "generate a diverse collection across all methods")
		outDir  = flag.String("out", "", "override output directory")
	)
	flag.Parse()

	if err := run(*cfgPath, *n, *seed, *diverse, *outDir); err != nil {
		fmt.Fprintln(os.Stderr, "artfield:", err)
		os.Exit(1)
	}
}

func run(cfgPath string, n int, seed int64, diverse bool, outDir string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if n > 0 {
		cfg.NArtworks = n
	}
	if seed >= 0 {
		cfg.SeedStart = seed
	}
	if diverse {
		cfg.Diverse = true
	}
	if outDir != "" {
		cfg.OutDir = outDir
	}

	opts, err := cfg.StudioOptions()
	if err != nil {
		return err
	}
	s, err := studio.New(opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(cfg.OutDir, "images"), 0o755); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Generating %d artworks from seed %d (%s)...\n",
		cfg.NArtworks, cfg.SeedStart, cfg.Method)
	start := time.Now()

	var batch *studio.Batch
	if cfg.Diverse {
		batch, err = s.GenerateDiverseCollection(ctx, cfg.NArtworks, cfg.SeedStart)
	} else {
		batch, err = s.BatchGenerateParallel(ctx, cfg.NArtworks, cfg.SeedStart)
	}
	if err != nil {
		return err
	}

	images := make([]colormap.Image, 0, len(batch.Artworks))
	for _, art := range batch.Artworks {
		path := filepath.Join(cfg.OutDir, "images", art.Meta.ID+".png")
		if err := writePNG(path, art.Image); err != nil {
			return err
		}
		images = append(images, art.Image)
		fmt.Printf("  seed %d: %s (%s)\n", art.Meta.Seed, art.Meta.Kind, art.Meta.Palette)
	}
	for _, f := range batch.Failures {
		fmt.Printf("  seed %d skipped: %s\n", f.Seed, f.Err)
	}

	if len(images) > 0 {
		sheet, err := render.ContactSheet(images, 4, 128)
		if err != nil {
			return err
		}
		if err := writeSheet(filepath.Join(cfg.OutDir, "gallery.png"), sheet); err != nil {
			return err
		}
	}

	fs := store.NewFileStore(filepath.Join(cfg.OutDir, "batch_summary.json"))
	if err := fs.Save(store.NewRecord(batch)); err != nil {
		return err
	}

	fmt.Printf("Done: %d artworks, %d skipped, %.2fs\n",
		len(batch.Artworks), len(batch.Failures), time.Since(start).Seconds())

	return nil
}

func writePNG(path string, img colormap.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return render.EncodePNG(f, img)
}

func writeSheet(path string, sheet image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, sheet)
}
