// Package cli implements the breadboard command-line interface, the demo
// driver over the circuits library: it builds the worked example circuit and
// folds it with the reference algebras.
// Implements: prd004-breadboard-cli (R1: root command, R6: global flags,
//
//	R7: exit codes).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes (prd004-breadboard-cli R7).
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
}

var flags rootFlags

// NewRootCmd creates the top-level "breadboard" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "breadboard",
		Short: "Build and evaluate boolean circuits",
		Long: "Breadboard builds immutable boolean circuits and folds them with the\n" +
			"reference algebras: boolean evaluation, continuous relaxation, the\n" +
			"pretty-printer, and the one-step gradient oracle.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "memo data directory (default: .breadboard-db)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newEvalCmd())
	root.AddCommand(newGradCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// sysError prints the message to stderr and exits with the system error code.
func sysError(msg string) error {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(exitSysError)
	return nil // unreachable
}
