package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"
)

// Config carries the host-loop settings. The grid itself is derived from
// the surface dimensions divided by cell size + 1.
type Config struct {
	Width    int   `json:"width"`
	Height   int   `json:"height"`
	CellSize int   `json:"cell_size"`
	Scale    int   `json:"scale"`
	Seed     int64 `json:"seed"`
	TPS      int   `json:"tps"`

	// Path is where the optional JSON config file lives. It is only ever
	// set from the command line, never from the file itself.
	Path string `json:"-"`
}

// NewConfig returns the default host configuration.
func NewConfig() Config {
	return Config{
		Width:    960,
		Height:   640,
		CellSize: 4,
		Seed:     1337,
		TPS:      10,
		Path:     "life.json",
	}
}

// DisplayScale returns the on-screen pixel span of one cell: the explicit
// scale when set, otherwise the cell size plus one pixel of gutter.
func (c Config) DisplayScale() int {
	if c.Scale > 0 {
		return c.Scale
	}
	return c.CellSize + 1
}

// LoadConfig reads a JSON config file over the defaults. A missing file is
// not an error; any other read or decode failure is.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}

	if err = json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Bind registers a flag for each setting on the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Path, "config", c.Path, "path to an optional JSON config file")
	fs.IntVar(&c.Width, "width", c.Width, "host surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "host surface height in pixels")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell edge in pixels; the grid scales down by cell-size+1")
	fs.IntVar(&c.Scale, "scale", c.Scale, "display pixels per cell edge (0 means cell-size+1)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial random fill")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
}

// Resolve loads the JSON file at c.Path over the defaults and re-applies
// every flag the user set explicitly on fs, so precedence is
// defaults < file < command line. fs must already be parsed.
func (c Config) Resolve(fs *flag.FlagSet) (Config, error) {
	out, err := LoadConfig(c.Path)
	if err != nil {
		return c, err
	}
	out.Path = c.Path

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			out.Width = c.Width
		case "height":
			out.Height = c.Height
		case "cell-size":
			out.CellSize = c.CellSize
		case "scale":
			out.Scale = c.Scale
		case "seed":
			out.Seed = c.Seed
		case "tps":
			out.TPS = c.TPS
		}
	})
	return out, nil
}
