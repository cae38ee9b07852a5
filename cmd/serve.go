package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/shandysiswandi/goamviajes/internal/app"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			application := app.New(configPath)
			wait := application.Start(cmd.Context())
			<-wait

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			application.Stop(ctx)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default /config/config.yaml, ./config/config.yaml when LOCAL=true)")
	return cmd
}
