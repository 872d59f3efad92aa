// Implements: prd004-breadboard-cli R3 (eval command).
package cli

import (
	"crypto/rand"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/circuits/internal/memo"
	"github.com/mesh-intelligence/circuits/internal/paths"
	"github.com/mesh-intelligence/circuits/pkg/gates"
)

type evalFlags struct {
	x, y, z bool
	memo    bool
}

// circuit builds the worked example EQ(AND(x, OR(AND(x, y), z)), NOT(z)).
// The x and z operands are shared between the equivalence branches.
func circuit[T any](x, y, z T) *gates.Tree[T] {
	xi, yi, zi := gates.Input(x), gates.Input(y), gates.Input(z)
	return gates.EQ(gates.And(xi, gates.Or(gates.And(xi, yi), zi)), gates.Not(zi))
}

func newEvalCmd() *cobra.Command {
	var ef evalFlags

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the example circuit under the reference algebras",
		Long: "Build EQ(AND(x, OR(AND(x, y), z)), NOT(z)) from the given inputs and fold\n" +
			"it with the pretty-printer, boolean, and continuous-relaxation algebras,\n" +
			"then derive the root structural identity.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, &ef)
		},
	}

	cmd.Flags().BoolVar(&ef.x, "x", false, "value of input x")
	cmd.Flags().BoolVar(&ef.y, "y", false, "value of input y")
	cmd.Flags().BoolVar(&ef.z, "z", false, "value of input z")
	cmd.Flags().BoolVar(&ef.memo, "memo", false, "cache per-node results in the memo database")

	return cmd
}

func runEval(cmd *cobra.Command, ef *evalFlags) error {
	out := cmd.OutOrStdout()

	// Symbolic form and plain evaluations.
	fmt.Fprintf(out, "Circuit:  %s\n", gates.Fold(gates.Printer, circuit("x", "y", "z")))
	fmt.Fprintf(out, "Inputs:   x=%t, y=%t, z=%t\n", ef.x, ef.y, ef.z)

	truth := circuit(ef.x, ef.y, ef.z)
	fmt.Fprintf(out, "Boolean:  %t\n", gates.Fold(gates.Boolean, truth))

	relaxed := gates.MapInputs(boolToFloat, truth)
	fmt.Fprintf(out, "Soft:     %s\n", strconv.FormatFloat(gates.Fold(gates.Soft, relaxed), 'g', -1, 64))

	// Identified form: mint one identity per distinct input, then derive
	// the root identity structurally.
	minter := gates.NewMinter(rand.Reader)
	x, err := gates.MintValue(minter, "x")
	if err != nil {
		return sysError(fmt.Sprintf("mint identity: %s", err))
	}
	y, err := gates.MintValue(minter, "y")
	if err != nil {
		return sysError(fmt.Sprintf("mint identity: %s", err))
	}
	z, err := gates.MintValue(minter, "z")
	if err != nil {
		return sysError(fmt.Sprintf("mint identity: %s", err))
	}
	identified := circuit(x, y, z)

	if !evalMemoEnabled(cmd, ef) {
		root := gates.Fold(gates.Lift(gates.Printer), identified)
		fmt.Fprintf(out, "Identity: %s\n", root.ID)
		return nil
	}

	store, dataDir, err := openMemoStore()
	if err != nil {
		return sysError(err.Error())
	}
	defer store.Close()

	m := memo.NewMemoizer("printer", gates.Printer, store)
	root := gates.Fold(m.Algebra(), identified)
	if err := m.Err(); err != nil {
		return sysError(fmt.Sprintf("memo store: %s", err))
	}

	fmt.Fprintf(out, "Identity: %s\n", root.ID)
	fmt.Fprintf(out, "Memo:     %d computed, %d reused (%s)\n", m.Misses(), m.Hits(), dataDir)
	return nil
}

// evalMemoEnabled resolves the memo switch: the flag wins when set, the
// config value applies otherwise.
func evalMemoEnabled(cmd *cobra.Command, ef *evalFlags) bool {
	if cmd.Flags().Changed("memo") {
		return ef.memo
	}

	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return false
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return false
	}
	return cfg.GetBool(cfgKeyMemo)
}

// openMemoStore resolves the data directory and opens the SQLite memo store.
func openMemoStore() (memo.Store, string, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, "", fmt.Errorf("resolve config directory: %w", err)
	}

	var configDataDir string
	if cfg, err := loadConfig(configDir); err == nil {
		configDataDir = cfg.GetString(cfgKeyDataDir)
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, configDataDir)
	if err != nil {
		return nil, "", fmt.Errorf("resolve data directory: %w", err)
	}

	store, err := memo.OpenSQLite(dataDir)
	if err != nil {
		return nil, "", fmt.Errorf("open memo store: %w", err)
	}
	return store, dataDir, nil
}

func boolToFloat(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
