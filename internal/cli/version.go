// Implements: prd004-breadboard-cli R2.2 (version command).
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/circuits/pkg/gates"
)

const modulePath = "github.com/mesh-intelligence/circuits"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the breadboard version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "breadboard v%s\nmodule: %s\n", gates.Version, modulePath)
			return nil
		},
	}
}
