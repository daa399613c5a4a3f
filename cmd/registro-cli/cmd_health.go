package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	var ready bool
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			if ready {
				resp, err := apiClient.Ready(ctx)
				if err != nil {
					fatal("readiness check", err)
				}
				output(resp, resp.Status)
				return
			}
			resp, err := apiClient.Health(ctx)
			if err != nil {
				fatal("health check", err)
			}
			output(resp, resp.Status)
		},
	}
	cmd.Flags().BoolVar(&ready, "ready", false, "Query the readiness endpoint instead of liveness")
	return cmd
}
