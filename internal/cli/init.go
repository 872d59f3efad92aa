// Implements: prd004-breadboard-cli R2.1 (init command).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/circuits/internal/memo"
	"github.com/mesh-intelligence/circuits/internal/paths"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize breadboard configuration and memo storage",
		Long:  "Create the configuration directory with a default config.yaml and initialize the memo database.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(fmt.Sprintf("resolve config directory: %s", err))
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Sprintf("create config directory: %s", err))
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return sysError(fmt.Sprintf("write config: %s", err))
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError(fmt.Sprintf("load config: %s", err))
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return sysError(fmt.Sprintf("resolve data directory: %s", err))
	}

	// Initialize the memo database by opening and closing it once.
	store, err := memo.OpenSQLite(dataDir)
	if err != nil {
		return sysError(fmt.Sprintf("initialize memo storage: %s", err))
	}
	if err := store.Close(); err != nil {
		return sysError(fmt.Sprintf("finalize memo storage: %s", err))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Breadboard initialized successfully")
	return nil
}
