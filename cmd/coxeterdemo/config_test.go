package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HactarCE/coxeter/vecmath"
)

func testLogger() zerolog.Logger { return zerolog.Nop() }

// TestLoadConfig verifies TOML decoding of a scene file.
func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	content := `
diagram = [4, 3]
facets = [[1.0, 0.0, 0.0], [1.0, 1.0, 1.0]]
transform_poles = true
max_elements = 128
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3}, cfg.Diagram)
	assert.Equal(t, [][]float64{{1, 0, 0}, {1, 1, 1}}, cfg.Facets)
	assert.True(t, cfg.TransformPoles)
	assert.Equal(t, 128, cfg.MaxElements)
	assert.NoError(t, cfg.validate())
}

// TestLoadConfigMissingFile verifies the error wrap.
func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrConfig)
}

// TestValidate verifies rejected configurations.
func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  SceneConfig
		ok   bool
	}{
		{"Valid", SceneConfig{Diagram: []int{4, 3}, Facets: [][]float64{{1}}}, true},
		{"NoDiagram", SceneConfig{Facets: [][]float64{{1}}}, false},
		{"BadLabel", SceneConfig{Diagram: []int{4, 1}, Facets: [][]float64{{1}}}, false},
		{"NoFacets", SceneConfig{Diagram: []int{4, 3}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrConfig)
			}
		})
	}
}

// TestSeeds verifies facet truncation to the diagram dimension.
func TestSeeds(t *testing.T) {
	cfg := SceneConfig{Facets: [][]float64{{1, 2, 3, 4, 5}, {1}}}
	seeds := cfg.seeds(3)
	assert.Equal(t, []vecmath.Vector{{1, 2, 3}, {1}}, seeds)
}

// TestParseHelpers verifies comma-list parsing for flags.
func TestParseHelpers(t *testing.T) {
	edges, err := parseInts(" 4, 3 ,3")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 3}, edges)

	_, err = parseInts("4,x")
	assert.ErrorIs(t, err, ErrConfig)

	facet, err := parseFloats("1, 0, -0.5")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, -0.5}, facet)

	_, err = parseFloats("1,,2")
	assert.ErrorIs(t, err, ErrConfig)
}

// TestAssembleConfigFlagOverrides verifies flags beat the config file.
func TestAssembleConfigFlagOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte("diagram = [3, 3]\nfacets = [[1.0]]\n"), 0o644))

	cfg, err := assembleConfig(path, "4,3", []string{"0,0,1"}, false)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3}, cfg.Diagram)
	assert.Equal(t, [][]float64{{0, 0, 1}}, cfg.Facets)
}

// TestRunPipeline exercises the full pipeline through the CLI layer.
func TestRunPipeline(t *testing.T) {
	cfg := SceneConfig{Diagram: []int{4, 3}, Facets: [][]float64{{1, 0, 0}}}
	doc, err := run(testLogger(), cfg, true)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Ndim)
	assert.Equal(t, 48, doc.Order)
	assert.Len(t, doc.Poles, 6)
	assert.Len(t, doc.Polygons, 6)
}
