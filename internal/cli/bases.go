package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/quanta/dim"
)

// baseDimension pairs a named base dimension with its vector.
type baseDimension struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}

// baseDimensions lists the seven SI base dimensions plus dimensionless,
// in the canonical component order.
func baseDimensions() []baseDimension {
	rows := []struct {
		name string
		v    dim.Vector
	}{
		{"mass", dim.Mass},
		{"length", dim.Length},
		{"time", dim.Time},
		{"current", dim.Current},
		{"temperature", dim.Temperature},
		{"amount", dim.Amount},
		{"luminous intensity", dim.LuminousIntensity},
		{"dimensionless", dim.Dimensionless},
	}
	out := make([]baseDimension, 0, len(rows))
	for _, row := range rows {
		out = append(out, baseDimension{Name: row.name, Unit: row.v.Unit()})
	}
	return out
}

// NewBasesCommand creates the bases command.
func NewBasesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bases",
		Short: "List the SI base dimensions",
		Long: `List the seven SI base dimensions plus the dimensionless dimension,
each with its canonical unit string.

Examples:
  quanta bases
  quanta bases --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}

			bases := baseDimensions()
			if rootOpts.Format == "json" {
				return formatter.Success(bases)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, b := range bases {
				fmt.Fprintf(w, "%s\t%s\n", b.Name, b.Unit)
			}
			return w.Flush()
		},
	}
	return cmd
}
