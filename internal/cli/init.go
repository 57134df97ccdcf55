package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/patrickrbarry/lifetracker/internal/paths"
	"github.com/patrickrbarry/lifetracker/internal/storage"
	"github.com/patrickrbarry/lifetracker/internal/tracker"
)

func newInitCmd() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize lifetracker storage",
		Long: "Create the configuration and data directories, write a default\n" +
			"config.yaml, and seed the built-in taxonomy.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, backend)
		},
	}
	cmd.Flags().StringVar(&backend, "backend", storage.BackendSQLite, "storage backend (sqlite or json)")
	return cmd
}

func runInit(cmd *cobra.Command, backend string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysErr(fmt.Errorf("resolve config dir: %w", err))
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysErr(fmt.Errorf("create config directory: %w", err))
	}

	dataDir, err := paths.ResolveDataDir(flags.dataDir, "")
	if err != nil {
		return sysErr(fmt.Errorf("resolve data dir: %w", err))
	}
	if err := writeConfigIfMissing(configDir, backend, flags.dataDir); err != nil {
		return sysErr(err)
	}

	store, err := storage.Open(storage.Config{Backend: backend, DataDir: dataDir})
	if err != nil {
		return sysErr(fmt.Errorf("open storage: %w", err))
	}
	defer store.Close()

	// Opening the tracker seeds and persists the baseline taxonomy.
	tr, err := tracker.Open(store, newLogger())
	if err != nil {
		return sysErr(fmt.Errorf("initialize tracker: %w", err))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Lifetracker initialized (%d categories)\n",
		len(tr.Taxonomy().Categories))
	return nil
}

// sysErr marks an error as a system failure so Execute exits with the
// system error code.
func sysErr(err error) error {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(exitSysError)
	return nil // unreachable
}
