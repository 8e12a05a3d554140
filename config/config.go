package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/katalvlaran/artfield/colormap"
	"github.com/katalvlaran/artfield/pattern"
	"github.com/katalvlaran/artfield/studio"
)

// ErrConfiguration indicates an unreadable or invalid configuration.
var ErrConfiguration = errors.New("config: invalid configuration")

// Config is the validated parameter set for one automation run.
type Config struct {
	NArtworks        int      `mapstructure:"n_artworks"`
	SeedStart        int64    `mapstructure:"seed_start"`
	Width            int      `mapstructure:"width"`
	Height           int      `mapstructure:"height"`
	Kinds            []string `mapstructure:"pattern_kinds"`
	Palettes         []string `mapstructure:"color_tables"`
	Method           string   `mapstructure:"generation_method"`
	QualityThreshold float64  `mapstructure:"quality_threshold"`
	NCandidates      int      `mapstructure:"n_candidates"`
	NBest            int      `mapstructure:"n_best"`
	Workers          int      `mapstructure:"workers"`
	Diverse          bool     `mapstructure:"diverse"`
	OutDir           string   `mapstructure:"out_dir"`
}

// Load reads the configuration at path (any viper-supported format;
// empty path means defaults only), validates it, and returns it.
// All failures wrap ErrConfiguration.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults matches studio.DefaultOptions plus automation defaults.
func setDefaults(v *viper.Viper) {
	def := studio.DefaultOptions()
	kinds := make([]string, len(def.Kinds))
	for i, k := range def.Kinds {
		kinds[i] = k.String()
	}

	v.SetDefault("n_artworks", 10)
	v.SetDefault("seed_start", 0)
	v.SetDefault("width", def.Width)
	v.SetDefault("height", def.Height)
	v.SetDefault("pattern_kinds", kinds)
	v.SetDefault("color_tables", def.Palettes)
	v.SetDefault("generation_method", def.Method.String())
	v.SetDefault("quality_threshold", def.QualityThreshold)
	v.SetDefault("n_candidates", def.NCandidates)
	v.SetDefault("n_best", def.NBest)
	v.SetDefault("workers", 0)
	v.SetDefault("diverse", false)
	v.SetDefault("out_dir", "output")
}

// validate rejects every field a studio or the automation driver could
// not honor. Fail fast: nothing is generated on a bad configuration.
func (c *Config) validate() error {
	if c.NArtworks < 1 {
		return fmt.Errorf("%w: n_artworks must be positive", ErrConfiguration)
	}
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrConfiguration, c.Width, c.Height)
	}
	for _, name := range c.Kinds {
		if _, err := pattern.ParseKind(name); err != nil {
			return fmt.Errorf("%w: pattern kind %q", ErrConfiguration, name)
		}
	}
	for _, name := range c.Palettes {
		if _, err := colormap.ParseScheme(name); err == nil {
			continue
		}
		if _, err := colormap.TableByName(name); err != nil {
			return fmt.Errorf("%w: palette %q", ErrConfiguration, name)
		}
	}
	if _, err := studio.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: generation method %q", ErrConfiguration, c.Method)
	}
	if c.QualityThreshold < 0 || c.QualityThreshold > 1 {
		return fmt.Errorf("%w: quality_threshold %v outside [0,1]", ErrConfiguration, c.QualityThreshold)
	}
	if c.NCandidates < 1 || c.NBest < 1 {
		return fmt.Errorf("%w: n_candidates and n_best must be positive", ErrConfiguration)
	}

	return nil
}

// StudioOptions converts the configuration into validated studio Options.
func (c *Config) StudioOptions() (studio.Options, error) {
	kinds := make([]pattern.Kind, len(c.Kinds))
	for i, name := range c.Kinds {
		k, err := pattern.ParseKind(name)
		if err != nil {
			return studio.Options{}, fmt.Errorf("%w: pattern kind %q", ErrConfiguration, name)
		}
		kinds[i] = k
	}
	method, err := studio.ParseMethod(c.Method)
	if err != nil {
		return studio.Options{}, err
	}

	return studio.Options{
		Width:            c.Width,
		Height:           c.Height,
		Kinds:            kinds,
		Palettes:         c.Palettes,
		Method:           method,
		QualityThreshold: c.QualityThreshold,
		NCandidates:      c.NCandidates,
		NBest:            c.NBest,
		Workers:          c.Workers,
	}, nil
}
