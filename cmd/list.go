package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tclemos/microbench/workload"
)

// listCmd prints the built-in workloads.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in workloads",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "WORKLOAD\tDESCRIPTION")
		for _, info := range workload.BuiltIn() {
			fmt.Fprintf(w, "%s\t%s\n", info.Type, info.Description)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
