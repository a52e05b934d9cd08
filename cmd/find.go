package cmd

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/jetscout/jetscout/internal/discover"
	"github.com/jetscout/jetscout/internal/logging"
	"github.com/jetscout/jetscout/internal/settings"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Run one discovery pass and print the result envelope",
	Long: `Run one synchronous discovery pass over all known products and print the
result envelope to stdout as a single JSON document.

This is the command the launcher integration shells out to. The envelope is
either {"kind":"success","projects":[...]} with exit status 0, or
{"kind":"error","message":...,"traceback":...} with a non-zero exit status.
Diagnostics go to stderr only.`,
	RunE: runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(settings.LogLevel())
	if err != nil {
		return err
	}
	defer logger.Sync()

	env := discover.Run(logger)
	if err := json.NewEncoder(os.Stdout).Encode(env); err != nil {
		return err
	}
	if env.Kind == discover.KindError {
		// Envelope already carries the details; the error here sets the exit status.
		return errors.New(env.Message)
	}
	return nil
}
