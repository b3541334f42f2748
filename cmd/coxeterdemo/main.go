// Command coxeterdemo runs the full polytope generation pipeline from the
// command line: Coxeter diagram → reflection group → facet orbit → sliced
// polytope → polygons as JSON.
//
// Usage:
//
//	coxeterdemo -diagram 4,3 -facet 1,0,0
//	coxeterdemo -config scene.toml -out cube.json -v
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/HactarCE/coxeter/diagram"
	"github.com/HactarCE/coxeter/group"
	"github.com/HactarCE/coxeter/polytope"
	"github.com/HactarCE/coxeter/vecmath"
)

// output is the JSON document written for downstream rendering.
type output struct {
	Ndim     int           `json:"ndim"`
	Order    int           `json:"group_order"`
	Poles    [][]float64   `json:"poles,omitempty"`
	Polygons [][][]float64 `json:"polygons"`
}

func main() {
	var (
		configPath = flag.String("config", "", "TOML scene config file")
		diagramArg = flag.String("diagram", "", "comma-separated Coxeter edge labels, e.g. 4,3")
		transform  = flag.Bool("transform-poles", false, "map facets through the diagram's pole basis")
		withPoles  = flag.Bool("poles", false, "include the orbit pole vectors in the output")
		outPath    = flag.String("out", "", "output file (default stdout)")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	var facetArgs []string
	flag.Func("facet", "comma-separated seed facet normal, repeatable", func(s string) error {
		facetArgs = append(facetArgs, s)
		return nil
	})
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *verbose {
		log = log.Level(zerolog.DebugLevel)
	}

	cfg, err := assembleConfig(*configPath, *diagramArg, facetArgs, *transform)
	if err != nil {
		log.Error().Err(err).Msg("rejected configuration")
		os.Exit(1)
	}

	doc, err := run(log, cfg, *withPoles)
	if err != nil {
		log.Error().Err(err).Msg("generation failed")
		os.Exit(1)
	}

	if err := writeOutput(*outPath, doc); err != nil {
		log.Error().Err(err).Msg("writing output failed")
		os.Exit(1)
	}
}

// assembleConfig merges a config file with flag overrides; flags win.
func assembleConfig(path, diagramArg string, facetArgs []string, transform bool) (SceneConfig, error) {
	var cfg SceneConfig
	if path != "" {
		var err error
		if cfg, err = loadConfig(path); err != nil {
			return SceneConfig{}, err
		}
	}
	if diagramArg != "" {
		edges, err := parseInts(diagramArg)
		if err != nil {
			return SceneConfig{}, err
		}
		cfg.Diagram = edges
	}
	if len(facetArgs) > 0 {
		cfg.Facets = nil
		for _, arg := range facetArgs {
			facet, err := parseFloats(arg)
			if err != nil {
				return SceneConfig{}, err
			}
			cfg.Facets = append(cfg.Facets, facet)
		}
	}
	if transform {
		cfg.TransformPoles = true
	}
	return cfg, cfg.validate()
}

// run executes the pipeline: diagram → group → seeds → polygons.
func run(log zerolog.Logger, cfg SceneConfig, withPoles bool) (*output, error) {
	cd, err := diagram.New(cfg.Diagram)
	if err != nil {
		return nil, err
	}

	var opts []group.Option
	if cfg.MaxElements > 0 {
		opts = append(opts, group.WithMaxElements(cfg.MaxElements))
	}
	g, err := cd.Group(opts...)
	if err != nil {
		return nil, err
	}
	log.Info().Ints("diagram", cfg.Diagram).Int("order", g.Order()).
		Msg("enumerated symmetry group")

	seeds := cfg.seeds(cd.Ndim())
	if cfg.TransformPoles {
		basis, err := cd.PoleBasis()
		if err != nil {
			return nil, err
		}
		for i, s := range seeds {
			seeds[i] = basis.Transform(s)
		}
		log.Debug().Msg("mapped facets through pole basis")
	}

	poles, err := polytope.Poles(g, seeds)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("poles", len(poles)).Msg("computed facet orbit")

	polys, err := polytope.ShapeGeom(g, seeds)
	if err != nil {
		return nil, err
	}
	log.Info().Int("polygons", len(polys)).Msg("constructed polytope")

	doc := &output{
		Ndim:     cd.Ndim(),
		Order:    g.Order(),
		Polygons: encodePolygons(polys, cd.Ndim()),
	}
	if withPoles {
		doc.Poles = encodeVectors(poles, cd.Ndim())
	}
	return doc, nil
}

func encodePolygons(polys []polytope.Polygon, ndim int) [][][]float64 {
	out := make([][][]float64, len(polys))
	for i, p := range polys {
		out[i] = encodeVectors(p.Verts, ndim)
	}
	return out
}

func encodeVectors(vs []vecmath.Vector, ndim int) [][]float64 {
	out := make([][]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Pad(ndim)
	}
	return out
}

func writeOutput(path string, doc *output) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
