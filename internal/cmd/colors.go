package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-noise/dsp/noise"
)

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the named noise colors and their exponents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printColors(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(colorsCmd)
}

func printColors(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COLOR\tEXPONENT")
	for _, c := range noise.Colors() {
		fmt.Fprintf(tw, "%s\t%+g\n", c, c.Exponent())
	}
	return tw.Flush()
}
