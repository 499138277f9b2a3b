package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/armature/pkg/geometry"
	"github.com/chazu/armature/pkg/kinematics"
	"github.com/chazu/armature/pkg/units"
)

// framesCommand creates the "frames" subcommand. It evaluates a scene script
// and prints every frame with its origin resolved into world coordinates.
func (c *CLI) framesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "frames <script>",
		Short: "List scene frames with their world-space origins",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			return c.printFrames(cmd, result.Frames)
		},
	}
}

func (c *CLI) printFrames(cmd *cobra.Command, graph *kinematics.FrameGraph) error {
	out := cmd.OutOrStdout()
	for id := kinematics.FrameID(0); int(id) < graph.Len(); id++ {
		name, err := graph.Name(id)
		if err != nil {
			return err
		}
		origin, err := graph.ToWorld(id, geometry.Origin(3, units.Meter))
		if err != nil {
			return err
		}
		parentName := "-"
		if parent, ok, err := graph.Parent(id); err != nil {
			return err
		} else if ok {
			if parentName, err = graph.Name(parent); err != nil {
				return err
			}
		}
		fmt.Fprintf(out, "%-20s parent=%-20s origin=(%.6g, %.6g, %.6g) %s\n",
			name, parentName, origin.X(), origin.Y(), origin.Z(), origin.Position().Unit().Symbol)
	}
	return nil
}
