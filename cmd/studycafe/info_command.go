package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show API service information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			info, err := client.Info(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, info)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "API 연결 성공: %s\n", info.String())
			if info.Description != "" {
				fmt.Fprintln(out, info.Description)
			}
			fmt.Fprintf(out, "Endpoint: %s\n", client.BaseURL())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			status, err := client.Health(cmd.Context())
			if err != nil {
				return err
			}
			colorize := shouldColorize(cmd.OutOrStdout())
			line := fmt.Sprintf("%s: %s", client.BaseURL(), status)
			if colorize {
				color := ansiGreen
				if status != "healthy" {
					color = ansiYellow
				}
				line = color + line + ansiReset
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}
}
