package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scenewire/scenewire/pkg/snapshot"
)

// cacheCommand creates the snapshot store management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the snapshot store",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all stored snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := snapshotDir()
			if err != nil {
				return fmt.Errorf("get snapshot dir: %w", err)
			}

			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Snapshot store is empty")
				return nil
			}

			store, err := snapshot.NewFileStore(dir)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(); err != nil {
				return err
			}

			printSuccess("Cleared snapshot store")
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the snapshot store directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := snapshotDir()
			if err != nil {
				return fmt.Errorf("get snapshot dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}
