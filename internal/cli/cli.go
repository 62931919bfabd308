package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/scenewire/scenewire/pkg/buildinfo"
	"github.com/scenewire/scenewire/pkg/mirror"
	"github.com/scenewire/scenewire/pkg/snapshot"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "scenewire"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "scenewire",
		Short:        "Scenewire serializes scene graphs to their wire format",
		Long:         `Scenewire walks a rendering scene graph, serializes it into the JSON wire format consumed by remote viewers, and keeps repeated passes incremental through content-addressed array caching and dependency diffing.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.serializeCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a mirror runner for CLI use. With noStore set, snapshot
// publishing is disabled.
func (c *CLI) newRunner(noStore bool) (*mirror.Runner, error) {
	store, err := newStore(noStore)
	if err != nil {
		return nil, err
	}
	return mirror.NewRunner(nil, store, c.Logger), nil
}

func newStore(noStore bool) (snapshot.Store, error) {
	if noStore {
		return snapshot.NewNullStore(), nil
	}
	dir, err := snapshotDir()
	if err != nil {
		return snapshot.NewNullStore(), nil
	}
	return snapshot.NewFileStore(dir)
}

// =============================================================================
// Paths
// =============================================================================

// snapshotDir returns the snapshot directory using XDG standard
// (~/.cache/scenewire/).
func snapshotDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
