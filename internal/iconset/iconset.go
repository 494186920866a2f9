package iconset

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"strconv"
	"strings"

	"github.com/deborahgu/serialicon/internal/constants"
	"github.com/deborahgu/serialicon/internal/render"
)

var (
	ErrNoSizes       = errors.New("no icon sizes configured")
	ErrInvalidSize   = errors.New("icon size must be positive")
	ErrDuplicateSize = errors.New("duplicate icon size")
)

// Config is the immutable input of one icon set build.
type Config struct {
	sizes   []int
	options render.Options
}

// DefaultConfig returns the shipped size list, reference size and palette.
func DefaultConfig() Config {
	return Config{sizes: constants.DefaultSizes(), options: render.DefaultOptions()}
}

// NewConfig validates sizes and returns a Config rendering them with opts.
// Sizes are kept in ascending order regardless of input order.
func NewConfig(sizes []int, opts render.Options) (Config, error) {
	if err := validate(sizes); err != nil {
		return Config{}, err
	}
	s := slices.Clone(sizes)
	slices.Sort(s)
	return Config{sizes: s, options: opts}, nil
}

// WithSizes returns a copy of c rendering sizes instead.
func (c Config) WithSizes(sizes []int) (Config, error) {
	return NewConfig(sizes, c.options)
}

// Sizes returns a copy of the configured sizes, smallest first.
func (c Config) Sizes() []int {
	return slices.Clone(c.sizes)
}

// Options returns the render options.
func (c Config) Options() render.Options {
	return c.options
}

func validate(sizes []int) error {
	if len(sizes) == 0 {
		return ErrNoSizes
	}
	seen := make(map[int]bool, len(sizes))
	for _, s := range sizes {
		if s <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidSize, s)
		}
		if seen[s] {
			return fmt.Errorf("%w: %d", ErrDuplicateSize, s)
		}
		seen[s] = true
	}
	return nil
}

// ParseSizes parses a comma separated list such as "16,32,48".
func ParseSizes(list string) ([]int, error) {
	var sizes []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", field, err)
		}
		sizes = append(sizes, n)
	}
	if err := validate(sizes); err != nil {
		return nil, err
	}
	return sizes, nil
}

// Icon is one rendered frame.
type Icon struct {
	Size  int
	Image *image.RGBA
}

// Set is the rendered icon frames in ascending size order.
type Set []Icon

// Build renders every configured size, smallest first.
func Build(cfg Config) (Set, error) {
	if err := validate(cfg.sizes); err != nil {
		return nil, err
	}
	set := make(Set, 0, len(cfg.sizes))
	for _, size := range cfg.sizes {
		set = append(set, Icon{Size: size, Image: render.Icon(size, cfg.options)})
	}
	return set, nil
}

// Images returns the frames in order.
func (s Set) Images() []image.Image {
	out := make([]image.Image, len(s))
	for i, ic := range s {
		out[i] = ic.Image
	}
	return out
}

// Sizes returns the frame sizes in order.
func (s Set) Sizes() []int {
	out := make([]int, len(s))
	for i, ic := range s {
		out[i] = ic.Size
	}
	return out
}

// Smallest returns the first frame, which the container uses as its default.
func (s Set) Smallest() (Icon, bool) {
	if len(s) == 0 {
		return Icon{}, false
	}
	return s[0], true
}
