// Package cli implements the lifetracker command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/patrickrbarry/lifetracker/internal/log"
	"github.com/patrickrbarry/lifetracker/internal/paths"
	"github.com/patrickrbarry/lifetracker/internal/storage"
	"github.com/patrickrbarry/lifetracker/internal/tracker"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	verbose   bool
}

var flags rootFlags

// NewRootCmd creates the top-level "lifetracker" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lifetracker",
		Short: "Track daily activities across user-defined categories",
		Long: "Lifetracker records per-day values for a user-editable taxonomy of\n" +
			"activities and turns them into history charts and CSV exports.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newCategoryCmd())
	root.AddCommand(newActivityCmd())
	root.AddCommand(newOptionsCmd())
	root.AddCommand(newRecordCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newExportCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// newLogger builds the process logger honoring --verbose.
func newLogger() *log.Logger {
	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	return log.New(log.Config{Level: level})
}

// openTracker resolves directories and config, opens the storage backend,
// and loads the tracker. The returned closer releases the backend.
func openTracker(cmd *cobra.Command) (*tracker.Tracker, func() error, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return nil, nil, err
	}
	dataDir, err := paths.ResolveDataDir(flags.dataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := storage.Open(storage.Config{
		Backend: cfg.GetString(cfgKeyBackend),
		DataDir: dataDir,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	tr, err := tracker.Open(store, newLogger())
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return tr, store.Close, nil
}
