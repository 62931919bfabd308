package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/scenewire/scenewire/pkg/mirror"
)

// serializeOpts holds the command-line flags for the serialize command.
type serializeOpts struct {
	output        string        // output file path; "-" or empty writes to stdout
	sessionID     string        // stable session id for snapshot keys
	ttl           time.Duration // snapshot lifetime
	noStore       bool          // skip snapshot publishing
	ignoreHistory bool          // force full dependency adds
	pretty        bool          // indent the JSON output
}

// serializeCommand creates the serialize command.
func (c *CLI) serializeCommand() *cobra.Command {
	var opts serializeOpts

	cmd := &cobra.Command{
		Use:   "serialize [scene.toml]",
		Short: "Serialize a scene description to wire JSON",
		Long: `Serialize loads a TOML scene description, walks the scene graph, and
emits the JSON wire tree a remote viewer consumes. Unless --no-store is
set, the result is also published to the snapshot store.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSerialize(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.sessionID, "session", "", "session id for the snapshot key (default: random)")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", 0, "snapshot lifetime (default: 24h)")
	cmd.Flags().BoolVar(&opts.noStore, "no-store", false, "skip snapshot publishing")
	cmd.Flags().BoolVar(&opts.ignoreHistory, "ignore-history", false, "force full dependency adds instead of diffs")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the JSON output")

	return cmd
}

func (c *CLI) runSerialize(cmd *cobra.Command, input string, opts *serializeOpts) error {
	ctx := withLogger(cmd.Context(), c.Logger)
	prog := newProgress(c.Logger)

	win, err := loadSceneFile(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noStore)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Synchronize(ctx, win, mirror.Options{
		SessionID:     opts.sessionID,
		SnapshotTTL:   opts.ttl,
		IgnoreHistory: opts.ignoreHistory,
		SkipPublish:   opts.noStore,
		Logger:        c.Logger,
	})
	if err != nil {
		return err
	}

	data := result.Data
	if opts.pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return fmt.Errorf("indent output: %w", err)
		}
		buf.WriteByte('\n')
		data = buf.Bytes()
	}

	if err := writeOutput(opts.output, data); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Serialized %s", input))

	printSuccess("Serialized %s", filepath.Base(input))
	printStats(result.Stats.Nodes, result.Stats.Arrays, result.Key != "")
	if result.Key != "" {
		printDetail("Snapshot: %s", result.Key)
	}
	if opts.output != "" && opts.output != "-" {
		printFile(opts.output)
		printNextStep("Inspect the tree", fmt.Sprintf("scenewire inspect %s", opts.output))
	}
	return nil
}

// writeOutput writes data to path, treating "" and "-" as stdout.
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// deriveOutput derives an output path from the input path and extension.
func deriveOutput(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + ext
}
