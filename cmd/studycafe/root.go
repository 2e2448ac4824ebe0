package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var apiURLFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &apiURLFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "studycafe",
		Short:         "Space84 StudyCafe CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureSettings()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "Fanfic API base URL (overrides config and STUDYCAFE_API_URL)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newInfoCommand(ctx))
	rootCmd.AddCommand(newHealthCommand(ctx))
	rootCmd.AddCommand(newArtistsCommand(ctx))
	rootCmd.AddCommand(newFanficCommand(ctx))
	rootCmd.AddCommand(newTUICommand(ctx))

	return rootCmd
}
