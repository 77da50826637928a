// Command scenectl runs a single generation request through pkg/scene.Store
// and prints the resulting layer summary as JSON. It exists to exercise the
// engine facade end to end without a host process wired around it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/chazu/scenecraft/pkg/mesh"
	"github.com/chazu/scenecraft/pkg/scene"
	"github.com/chazu/scenecraft/pkg/sceneconfig"
)

type boundsJSON struct {
	Min    mesh.Vec3 `json:"min"`
	Max    mesh.Vec3 `json:"max"`
	Center mesh.Vec3 `json:"center"`
}

type summary struct {
	LayerID              string                      `json:"layer_id"`
	VertexCount          uint32                      `json:"vertex_count"`
	TriangleCount        uint32                      `json:"triangles"`
	Bounds               boundsJSON                  `json:"bounds"`
	TopCenter            mesh.Vec3                   `json:"top_center"`
	BottomCenter         mesh.Vec3                   `json:"bottom_center"`
	Size                 mesh.Vec3                   `json:"size"`
	SpatialRelationships []scene.SpatialRelationship `json:"spatial_relationships,omitempty"`
	Warnings             []string                    `json:"warnings"`
	CorrelationID        string                      `json:"correlation_id"`
}

func main() {
	codePath := flag.String("code", "", "path to a generation source file (required)")
	description := flag.String("description", "", "human-readable description of the layer")
	configPath := flag.String("config", "", "path to a TOML config file (optional)")
	seed := flag.Uint("seed", 1, "deterministic RNG seed for this generation")
	flag.Parse()

	if *codePath == "" {
		fmt.Fprintln(os.Stderr, "scenectl: -code is required")
		os.Exit(2)
	}

	code, err := os.ReadFile(*codePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scenectl: reading %s: %v\n", *codePath, err)
		os.Exit(1)
	}

	cfg := sceneconfig.Default()
	if *configPath != "" {
		raw, err := os.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "scenectl: reading config %s: %v\n", *configPath, err)
			os.Exit(1)
		}
		cfg, err = sceneconfig.Load(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "scenectl: parsing config: %v\n", err)
			os.Exit(1)
		}
	}

	store := scene.NewStore(cfg)

	input, err := json.Marshal(struct {
		Code        string `json:"code"`
		Description string `json:"description,omitempty"`
	}{Code: string(code), Description: *description})
	if err != nil {
		fmt.Fprintf(os.Stderr, "scenectl: encoding input: %v\n", err)
		os.Exit(1)
	}

	res, err := store.Generate(input, uint32(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "scenectl: generation failed: %v\n", err)
		os.Exit(1)
	}

	rels, _, ok := store.SpatialAnalysis(res.Layer.ID)
	if !ok {
		rels = nil
	}

	out := summary{
		LayerID:              res.Layer.ID,
		VertexCount:          res.Layer.Buf.VertexCount(),
		TriangleCount:        res.Layer.Buf.TriangleCount(),
		Bounds:               boundsJSON{Min: res.Layer.Bounds.Min, Max: res.Layer.Bounds.Max, Center: res.Layer.Bounds.Center},
		TopCenter:            res.Layer.TopCenter(),
		BottomCenter:         res.Layer.BottomCenter(),
		Size:                 res.Layer.Size(),
		SpatialRelationships: rels,
		Warnings:             res.Warnings,
		CorrelationID:        res.CorrelationID,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "scenectl: encoding output: %v\n", err)
		os.Exit(1)
	}
}
