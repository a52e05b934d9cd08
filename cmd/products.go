package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jetscout/jetscout/internal/catalog"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Show the products jetscout knows how to discover",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tVENDOR DIR\tCONFIG GLOB")
		for _, p := range catalog.Products() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.Key, p.VendorDir, p.ConfigGlob)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(productsCmd)
}
