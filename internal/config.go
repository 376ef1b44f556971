package internal

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Pixel distance from the first vertex within which a click closes the ring.
const DefaultClosePixels = 20

type Config struct {
	// Vertex equality tolerance in map units
	Tolerance float64 `yaml:"tolerance"`
	// Closing distance in screen pixels. Multiply by the viewport resolution to
	// get map units.
	ClosePixels float64 `yaml:"close_pixels"`
}

func DefaultConfig() Config {
	return Config{
		Tolerance:   DefaultTolerance,
		ClosePixels: DefaultClosePixels,
	}
}

// Read a YAML config. Missing fields keep their defaults, and unknown fields
// are an error, since a misspelled key would otherwise be silently ignored.
func ParseConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "could not decode config")
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func LoadConfig(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "could not open config %q", path)
	}
	defer file.Close()

	config, err := ParseConfig(file)
	if err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %q", path)
	}
	return config, nil
}

func (c Config) Validate() error {
	if !(c.Tolerance > 0) || !IsFinite(Point{c.Tolerance, 0}) {
		return errors.Errorf("tolerance must be a positive number, got %v", c.Tolerance)
	}
	if !(c.ClosePixels > 0) || !IsFinite(Point{c.ClosePixels, 0}) {
		return errors.Errorf("close_pixels must be a positive number, got %v", c.ClosePixels)
	}
	return nil
}

func (c Config) Scanner() Scanner {
	return Scanner{Tolerance: c.Tolerance}
}

// Closing tolerance in map units at the given viewport resolution.
func (c Config) CloseTolerance(resolution float64) float64 {
	return PixelTolerance(c.ClosePixels, resolution)
}
