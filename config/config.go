package config

import (
	"errors"
	"fmt"
	"os"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v2"
)

var (
	ErrInvalidSizeRange = errors.New("config: min_size must be at least 1 and no greater than max_size")
	ErrGlyphWidth       = errors.New("config: glyphs must be non-empty and of equal display width")
)

type Glyphs struct {
	Current   string `yaml:"current"`
	Visited   string `yaml:"visited"`
	Unvisited string `yaml:"unvisited"`
}

// Config holds the board size bounds offered to the user and how boards
// are drawn.
type Config struct {
	MinSize int    `yaml:"min_size"`
	MaxSize int    `yaml:"max_size"`
	Glyphs  Glyphs `yaml:"glyphs"`
	Color   bool   `yaml:"color"`
}

func Default() Config {
	return Config{
		MinSize: 3,
		MaxSize: 10,
		Glyphs: Glyphs{
			Current:   "[K]",
			Visited:   "[/]",
			Unvisited: "[ ]",
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the size range and that all glyphs occupy the same
// number of terminal columns.
func (c Config) Validate() error {
	if c.MinSize < 1 || c.MinSize > c.MaxSize {
		return fmt.Errorf("%w: got %d..%d", ErrInvalidSizeRange, c.MinSize, c.MaxSize)
	}

	w := runewidth.StringWidth(c.Glyphs.Current)
	if w == 0 ||
		runewidth.StringWidth(c.Glyphs.Visited) != w ||
		runewidth.StringWidth(c.Glyphs.Unvisited) != w {
		return ErrGlyphWidth
	}

	return nil
}
