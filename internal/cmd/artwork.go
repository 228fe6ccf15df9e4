package cmd

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Digital-Shane/tvdbxml/internal/client"
	"github.com/Digital-Shane/tvdbxml/internal/model"
	"github.com/Digital-Shane/tvdbxml/internal/parser"
)

var bannerSeason int

var actorsCmd = &cobra.Command{
	Use:   "actors <id>",
	Short: "List the cast of a series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunLookup(cmd, args, lookupActors)
	},
}

var bannersCmd = &cobra.Command{
	Use:   "banners <id>",
	Short: "List the artwork of a series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunLookup(cmd, args, lookupBanners)
	},
}

func lookupActors(ctx context.Context, c *client.Client, args []string) (view, error) {
	id, err := parseSeriesID(args[0])
	if err != nil {
		return view{}, err
	}
	actors, err := c.Actors(ctx, id)
	if err != nil {
		return view{}, err
	}
	return actorsView(actors), nil
}

func lookupBanners(ctx context.Context, c *client.Client, args []string) (view, error) {
	id, err := parseSeriesID(args[0])
	if err != nil {
		return view{}, err
	}
	banners, err := c.Banners(ctx, id, bannerSeason)
	if err != nil {
		return view{}, err
	}
	return bannersView(banners), nil
}

func actorsView(actors []model.Actor) view {
	return view{data: actors, table: func(w io.Writer) {
		heading(w, "Actors", len(actors))
		rows := make([][]string, 0, len(actors))
		for _, a := range actors {
			cells := itemCells(a)
			rows = append(rows, []string{num(a.SortOrder), cells[0], cells[1], cells[2]})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"Rank", "Name", "Role", "Image"},
			rows,
			[]columnAlignment{alignRight},
		))
	}}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// accents renders the fanart accent colors, or "" when there are none.
func accents(b model.Banner) string {
	light, dark, neutral, ok := b.AccentColors()
	if !ok {
		return ""
	}
	return strings.Join([]string{hexColor(light), hexColor(dark), hexColor(neutral)}, " ")
}

func bannersView(banners []model.Banner) view {
	return view{data: banners, table: func(w io.Writer) {
		heading(w, "Banners", len(banners))
		rows := make([][]string, 0, len(banners))
		for _, b := range banners {
			rows = append(rows, []string{
				num(b.ID),
				b.Type.String(),
				b.Type2.String(),
				num(b.SeasonNumber),
				b.Language.String(),
				rating(b.Rating),
				accents(b),
				truncate(b.BannerPath.String(), urlWidth),
			})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"ID", "Type", "Type2", "Season", "Lang", "Rating", "Colors", "Path"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignRight},
		))
	}}
}

func init() {
	bannersCmd.Flags().IntVarP(&bannerSeason, "season", "s", parser.AllSeasons, "Only list artwork for this season")

	rootCmd.AddCommand(actorsCmd)
	rootCmd.AddCommand(bannersCmd)
}
