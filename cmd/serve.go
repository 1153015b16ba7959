package cmd

import (
	"github.com/spf13/cobra"

	"cerke/communication/server"
	"cerke/gamemaster"
	"cerke/meta"
)

func Serve(cfg *meta.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve games over HTTP",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = cfg.Addr
			}
			return server.New(gamemaster.NewManager(), cfg.First).ListenAndServe(addr)
		},
	}

	cmd.Flags().String("addr", "", "Listen address, defaults to CERKE_ADDR")
	return cmd
}
