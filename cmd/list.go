//go:build unix

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jetscout/jetscout/internal/apiclient"
	"github.com/jetscout/jetscout/internal/discover"
	"github.com/jetscout/jetscout/internal/logging"
	"github.com/jetscout/jetscout/internal/settings"
)

var (
	listJSON   bool
	listRemote bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered recent projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		var env discover.Envelope
		if listRemote {
			c := apiclient.New()
			if err := c.GetJSON(cmd.Context(), "/api/projects", &env); err != nil {
				return err
			}
		} else {
			logger, err := logging.New(settings.LogLevel())
			if err != nil {
				return err
			}
			defer logger.Sync()
			env = discover.Run(logger)
		}
		if env.Kind == discover.KindError {
			return errors.New(env.Message)
		}
		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(env)
		}

		total := 0
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PRODUCT\tNAME\tPATH")
		for _, pair := range env.Projects {
			for _, p := range pair.Projects {
				fmt.Fprintf(w, "%s\t%s\t%s\n", pair.Key, p.Name, p.Path)
				total++
			}
		}
		if total == 0 {
			fmt.Println("No recent projects found")
			return nil
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print the raw envelope as JSON")
	listCmd.Flags().BoolVar(&listRemote, "remote", false, "query a running daemon instead of scanning locally")
}
