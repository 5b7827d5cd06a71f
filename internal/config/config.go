package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mosaic/internal/logger"
)

// EnvPrefix namespaces every environment variable read by LoadConfig.
const EnvPrefix = "MOSAIC"

// Output formats of the solve command.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all configuration for the CLI.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Puzzle holds configuration for solving.
	Puzzle PuzzleConfig `mapstructure:"puzzle"`
	// Output holds configuration for result printing.
	Output OutputConfig `mapstructure:"output"`
	// Generate holds configuration for the puzzle generator.
	Generate GenerateConfig `mapstructure:"generate"`
}

// PuzzleConfig controls how a puzzle is read and solved.
type PuzzleConfig struct {
	// Input is the puzzle file; empty or "-" reads stdin.
	Input string `mapstructure:"input" default:""`
	// Pattern is a file with pattern art; empty means the sea monster.
	Pattern string `mapstructure:"pattern" default:""`
	// Exhaustive rejects images where several orientations match.
	Exhaustive bool `mapstructure:"exhaustive" default:"false"`
	// Validate checks the neighbour-count histogram before assembly.
	Validate bool `mapstructure:"validate" default:"true"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// Format is text (two lines) or json.
	Format string `mapstructure:"format" default:"text"`
}

// GenerateConfig mirrors the builder options.
type GenerateConfig struct {
	// Seed of the generator; 0 picks a fresh one per run.
	Seed int64 `mapstructure:"seed" default:"0"`
	// GridSize is the number of tiles per side.
	GridSize int `mapstructure:"grid_size" default:"3"`
	// TileSize is the side of each tile in pixels.
	TileSize int `mapstructure:"tile_size" default:"10"`
	// Fill is the probability that a background pixel is filled.
	Fill float64 `mapstructure:"fill" default:"0.45"`
	// Copies is the number of patterns stamped into the picture.
	Copies int `mapstructure:"copies" default:"2"`
}

// Validate checks the enumerated values.
func (c *Config) Validate() error {
	if !c.Log.IsValidFormat() {
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	switch c.Output.Format {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalid, c.Output.Format)
	}
	return nil
}

// LoadConfig loads configuration from the .env file in path, environment
// variables and the given flags. flags maps configuration keys such as
// "output.format" to the flag overriding them; nil flags are skipped.
func LoadConfig(path string, flags map[string]*pflag.Flag) (*Config, error) {
	// Ignore error if file doesn't exist
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, f := range flags {
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", f.Name, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
