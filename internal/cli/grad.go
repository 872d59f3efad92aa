// Implements: prd004-breadboard-cli R4 (grad command).
package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/circuits/pkg/gates"
)

type gradFlags struct {
	gate string
	a, b float64
}

func newGradCmd() *cobra.Command {
	var gf gradFlags

	cmd := &cobra.Command{
		Use:   "grad",
		Short: "Print the one-step gradient of a single gate",
		Long: "Report the partial sensitivities of one gate's output under the\n" +
			"continuous relaxation with respect to its own operand values. This is\n" +
			"a single-step oracle, not a chain-rule derivative across a tree.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrad(cmd, &gf)
		},
	}

	cmd.Flags().StringVar(&gf.gate, "gate", "and", "gate kind: input, not, and, or")
	cmd.Flags().Float64Var(&gf.a, "a", 0, "first operand value")
	cmd.Flags().Float64Var(&gf.b, "b", 0, "second operand value (and/or only)")

	return cmd
}

func runGrad(cmd *cobra.Command, gf *gradFlags) error {
	var g gates.Gate[float64]
	switch gf.gate {
	case "input":
		g = gates.InputGate(gf.a)
	case "not":
		g = gates.NotGate(gf.a)
	case "and":
		g = gates.AndGate(gf.a, gf.b)
	case "or":
		g = gates.OrGate(gf.a, gf.b)
	default:
		return fmt.Errorf("unknown gate kind %q (want input, not, and, or)", gf.gate)
	}

	out := cmd.OutOrStdout()
	slots := []string{"a", "b"}
	for i, partial := range gates.Gradient(g) {
		fmt.Fprintf(out, "d/d%s = %s\n", slots[i], strconv.FormatFloat(partial, 'g', -1, 64))
	}
	return nil
}
