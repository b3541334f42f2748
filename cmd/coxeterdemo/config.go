package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/HactarCE/coxeter/vecmath"
)

// ErrConfig indicates a rejected scene configuration.
var ErrConfig = errors.New("coxeterdemo: invalid scene config")

// SceneConfig describes one polytope generation run. It can be loaded
// from a TOML file or assembled from command-line flags.
type SceneConfig struct {
	// Diagram is the chain of Coxeter edge labels, e.g. [4, 3] for cubic
	// symmetry. Every label must be > 1.
	Diagram []int `toml:"diagram"`
	// Facets are the seed facet normals ("base facets"), one vector per
	// entry, truncated or zero-padded to the diagram's dimension.
	Facets [][]float64 `toml:"facets"`
	// TransformPoles maps facet coordinates through the diagram's pole
	// basis before orbiting, matching the interactive tool's pipeline.
	TransformPoles bool `toml:"transform_poles"`
	// MaxElements overrides the group enumeration element limit when > 0.
	MaxElements int `toml:"max_elements"`
}

// loadConfig reads a SceneConfig from a TOML file.
func loadConfig(path string) (SceneConfig, error) {
	var cfg SceneConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return SceneConfig{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return cfg, nil
}

// validate rejects configurations the library would refuse anyway, with
// friendlier messages.
func (c SceneConfig) validate() error {
	if len(c.Diagram) == 0 {
		return fmt.Errorf("%w: no diagram edge labels", ErrConfig)
	}
	for i, e := range c.Diagram {
		if e <= 1 {
			return fmt.Errorf("%w: diagram label %d is %d, must be > 1", ErrConfig, i, e)
		}
	}
	if len(c.Facets) == 0 {
		return fmt.Errorf("%w: no seed facets", ErrConfig)
	}
	return nil
}

// seeds converts the configured facets to vectors truncated to ndim.
func (c SceneConfig) seeds(ndim int) []vecmath.Vector {
	out := make([]vecmath.Vector, len(c.Facets))
	for i, f := range c.Facets {
		out[i] = vecmath.Vector(f).Truncate(ndim)
	}
	return out
}

// parseInts parses a comma-separated label list like "4,3,3".
func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: label %q", ErrConfig, part)
		}
		out = append(out, n)
	}
	return out, nil
}

// parseFloats parses a comma-separated vector like "1,0,0".
func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: component %q", ErrConfig, part)
		}
		out = append(out, x)
	}
	return out, nil
}
