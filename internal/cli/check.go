package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/chazu/armature/pkg/engine"
)

// checkCommand creates the "check" subcommand. It evaluates a scene script
// and reports findings and errors without producing any output artifacts.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <script>",
		Short: "Evaluate a scene script and report findings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.evaluateScript(args[0])
			if err != nil {
				return err
			}
			c.reportResult(result)
			if len(result.Errors) > 0 {
				return fmt.Errorf("%d error(s) in %s", len(result.Errors), args[0])
			}
			return nil
		},
	}
}

// evaluateScript reads the script at path and runs it through a fresh engine.
func (c *CLI) evaluateScript(path string) (*engine.EvalResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("Evaluating %s (%d bytes)", path, len(data))
	return engine.NewEngine().Evaluate(string(data))
}

// reportResult logs frames, recorded values, findings and errors.
func (c *CLI) reportResult(result *engine.EvalResult) {
	c.Logger.Infof("Scene has %d frame(s)", result.Frames.Len())

	keys := make([]string, 0, len(result.Values))
	for k := range result.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.Logger.Infof("%s = %s", k, result.Values[k])
	}

	for _, f := range result.Findings {
		c.Logger.Warnf("%s", f)
	}
	for _, e := range result.Errors {
		c.Logger.Errorf("%s", e.Error())
	}
}
