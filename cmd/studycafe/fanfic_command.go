package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/space84/studycafe/internal/detail"
	"github.com/space84/studycafe/internal/fanfic"
)

func newFanficCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fanfic <slug>",
		Short: "Show the fanfiction narrative for an artist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("unsupported output format %q (want text, json or yaml)", output)
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

			slug := args[0]
			view := detail.New(client, logger)
			if err := view.Load(cmd.Context(), slug); err != nil {
				if fanfic.Classify(err) == fanfic.KindNotFound {
					return fmt.Errorf("팬픽을 찾을 수 없습니다: %s", slug)
				}
				return err
			}

			switch output {
			case "json":
				return writeJSON(cmd, view.Narrative())
			case "yaml":
				return writeYAML(cmd, view.Narrative())
			}

			sections, _ := view.Sections()
			writeSections(cmd.OutOrStdout(), sections)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json, yaml")
	return cmd
}

func writeSections(out io.Writer, s detail.Sections) {
	fmt.Fprintln(out, s.Title)
	fmt.Fprintf(out, "아티스트: %s\n", s.Artist)
	if len(s.Chips) > 0 {
		fmt.Fprintf(out, "[%s]\n", strings.Join(s.Chips, "] ["))
	}
	fmt.Fprintln(out)

	for _, p := range s.Paragraphs {
		fmt.Fprintln(out, p)
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, s.TracksHeading)
	for _, track := range s.Tracks {
		fmt.Fprintf(out, "  - %s\n", track)
	}

	if s.HasSimilarArtists() {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "유사 아티스트: %s\n", strings.Join(s.SimilarArtists, ", "))
	}

	if s.HasGallery() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "이미지 갤러리")
		for _, img := range s.Gallery {
			fmt.Fprintf(out, "  %s: %s\n", img.Alt, img.URL)
		}
	}

	if s.HasVideos() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "대표곡 유튜브")
		for _, v := range s.Videos {
			fmt.Fprintf(out, "  %s: %s\n", v.Title, v.EmbedURL)
			fmt.Fprintf(out, "    %s\n", v.WatchURL)
		}
	}
}
