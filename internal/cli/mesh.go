package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazu/armature/pkg/algebra"
	"github.com/chazu/armature/pkg/geometry"
	"github.com/chazu/armature/pkg/kinematics"
	"github.com/chazu/armature/pkg/solid"
	"github.com/chazu/armature/pkg/solid/sdfx"
	"github.com/chazu/armature/pkg/units"
)

// meshCommand creates the "mesh" subcommand. It evaluates a scene script,
// places a marker box at the world-space origin of every frame, and renders
// the union of the markers to a triangle mesh written as JSON.
func (c *CLI) meshCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "mesh <script>",
		Short: "Render scene frame markers to a triangle mesh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			result, err := c.evaluateScript(args[0])
			if err != nil {
				return err
			}
			for _, f := range result.Findings {
				c.Logger.Warnf("%s", f)
			}
			if len(result.Errors) > 0 {
				for _, e := range result.Errors {
					c.Logger.Errorf("%s", e.Error())
				}
				return fmt.Errorf("%d error(s) in %s", len(result.Errors), args[0])
			}

			mesh, err := markerMesh(result.Frames, cfg)
			if err != nil {
				return err
			}
			c.Logger.Infof("Meshed %d frame marker(s): %d vertices, %d triangles",
				result.Frames.Len(), mesh.VertexCount(), mesh.TriangleCount())

			return writeMesh(mesh, output, c.Logger)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

// markerMesh unions one marker box per frame, centered on each frame's
// world-space origin, and triangulates the result.
func markerMesh(graph *kinematics.FrameGraph, cfg Config) (*solid.Mesh, error) {
	builder := sdfx.NewWithCells(cfg.MeshCells)

	var scene solid.Solid
	for id := kinematics.FrameID(0); int(id) < graph.Len(); id++ {
		origin, err := graph.ToWorld(id, geometry.Origin(3, units.Meter))
		if err != nil {
			return nil, err
		}
		box, err := builder.Box(cfg.MarkerSize, cfg.MarkerSize, cfg.MarkerSize)
		if err != nil {
			return nil, err
		}
		offset := algebra.MustVector([]float64{origin.X(), origin.Y(), origin.Z()}, units.Unitless)
		marker, err := builder.Translate(box, offset)
		if err != nil {
			return nil, err
		}
		if scene == nil {
			scene = marker
		} else {
			scene = builder.Union(scene, marker)
		}
	}

	mesh, err := builder.ToMesh(scene)
	if err != nil {
		return nil, err
	}
	mesh.Name = "frame-markers"
	return mesh, nil
}

// writeMesh serializes the mesh as JSON to path, or stdout when path is empty.
func writeMesh(mesh *solid.Mesh, path string, logger interface{ Infof(string, ...any) }) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	if err := enc.Encode(mesh); err != nil {
		return err
	}
	if path != "" {
		logger.Infof("Wrote mesh to %s", path)
	}
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for path, or stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
