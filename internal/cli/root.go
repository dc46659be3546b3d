package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// envDefaults holds defaults picked up from the environment before flag
// parsing. Flags still win over the environment.
type envDefaults struct {
	Format string `env:"QUANTA_FORMAT" envDefault:"text"`
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the quanta CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	defaults := envDefaults{Format: "text"}
	// A malformed environment falls back to the built-in defaults; the
	// format check in PersistentPreRunE still catches bad values.
	_ = env.Parse(&defaults)

	cmd := &cobra.Command{
		Use:   "quanta",
		Short: "quanta - dimension-checked quantities",
		Long:  "A calculator surface over the SI dimension algebra: tag magnitudes with dimensions, combine them, and render canonical unit strings.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", defaults.Format, "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewBasesCommand(opts))
	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewScenarioCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
