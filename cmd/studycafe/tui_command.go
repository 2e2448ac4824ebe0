package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/space84/studycafe/internal/tui"
)

func newTUICommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.ensureSettings()
			if err != nil {
				return err
			}
			// The UI owns the terminal; logs only go to log_file.
			logger, closer, err := ctx.logger(io.Discard)
			if err != nil {
				return err
			}
			defer closer.Close()

			return tui.Run(settings, logger)
		},
	}
}
