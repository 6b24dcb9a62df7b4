package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"slicer-runner/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local stand-in for the Slicer exec endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loader(cmd).Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			c.Serve.Port = port
		}
		return server.New(c.Serve).Serve(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (default serve.port, 2016)")
}
