// Package cmd implements the cerke command line.
package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"cerke/meta"
)

// Root builds the command tree. The configuration is read from the
// environment before any subcommand runs.
func Root() *cobra.Command {
	cfg := &meta.Config{}

	root := &cobra.Command{
		Use:  "cerke",
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := meta.Load()
			if err != nil {
				return err
			}
			*cfg = loaded

			level, err := cfg.Level()
			if err != nil {
				return err
			}
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				level = zerolog.TraceLevel
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
	}

	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	root.AddCommand(New(cfg))
	root.AddCommand(Show(cfg))
	root.AddCommand(Move(cfg))
	root.AddCommand(Parachute(cfg))
	root.AddCommand(Soak(cfg))
	root.AddCommand(Serve(cfg))

	return root
}
