package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/space84/studycafe/internal/directory"
)

func newArtistsCommand(ctx *commandContext) *cobra.Command {
	var query string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "artists",
		Short: "List artists sorted by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := ctx.ensureSettings()
			if err != nil {
				return err
			}
			client, err := ctx.apiClient()
			if err != nil {
				return err
			}
			logger, closer, err := ctx.logger(io.Discard)
			if err != nil {
				return err
			}
			defer closer.Close()

			dir := directory.New(client,
				directory.WithLogger(logger),
				directory.WithLocale(settings.LanguageTag()),
			)
			if err := dir.Load(cmd.Context()); err != nil {
				return err
			}
			dir.SetQuery(query)
			visible := dir.Visible()

			if asJSON {
				return writeJSON(cmd, visible)
			}

			out := cmd.OutOrStdout()
			if len(visible) == 0 {
				fmt.Fprintln(out, "검색 결과가 없습니다")
				return nil
			}

			rows := make([][]string, 0, len(visible))
			for _, artist := range visible {
				rows = append(rows, []string{artist.Name, artist.Slug, strconv.Itoa(artist.TracksCount)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Name", "Slug", "Tracks"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
				shouldColorize(out),
			))
			fmt.Fprintf(out, "%d명\n", len(visible))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive name filter")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
