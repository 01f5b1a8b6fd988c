package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const defaultThreads = 4

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gfatrim <graph.gfa>",
		Short: "Trim a GFA assembly graph to the sub-graph its paths and walks use",
		Long: `Gfatrim reduces a GFA assembly graph to the sub-graph induced by a
chosen subset of its paths and walks: every segment, link, and jump
not touched by a kept path or walk is removed. Headers and
unrecognized record types pass through unchanged.

By default every path and walk is kept, which drops only segments and
edges nothing references. Supply --paths-to-keep to trim the graph to
a named subset.`,
		Args:         cobra.ExactArgs(1),
		RunE:         RunTrim,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringP("paths-to-keep", "p", "", "File with one path or walk name per line (default: keep all)")
	rootCmd.Flags().IntP("threads", "t", defaultThreads, "Worker count for the parallel stages (0 = all cores)")
	rootCmd.Flags().BoolP("ignore-segments", "S", false, "Do not remove any segment lines")
	rootCmd.Flags().BoolP("ignore-links", "L", false, "Do not remove any link lines")
	rootCmd.Flags().BoolP("ignore-jumps", "J", false, "Do not remove any jump lines")
	rootCmd.Flags().StringP("output", "o", "", "Write the trimmed graph to this file instead of stdout")
	rootCmd.Flags().Bool("allow-missing", false, "Ignore selection names that match no path or walk")
	rootCmd.Flags().String("config", "", "YAML file with defaults for the flags above")
	rootCmd.Flags().BoolP("quiet", "q", false, "Only log warnings and errors")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gfatrim %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	return rootCmd
}
