package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Digital-Shane/tvdbxml/internal/client"
	"github.com/Digital-Shane/tvdbxml/internal/model"
)

var seasonsCmd = &cobra.Command{
	Use:   "seasons <id>",
	Short: "List the seasons of a series",
	Long: `List the seasons of a series with their season artwork.

Seasons are derived from the episode list of the full series archive; a season
without episodes is not listed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunLookup(cmd, args, lookupSeasons)
	},
}

func lookupSeasons(ctx context.Context, c *client.Client, args []string) (view, error) {
	id, err := parseSeriesID(args[0])
	if err != nil {
		return view{}, err
	}
	seasons, err := c.Seasons(ctx, id)
	if err != nil {
		return view{}, err
	}
	return seasonsView(seasons), nil
}

func seasonsView(seasons []model.Season) view {
	return view{data: seasons, table: func(w io.Writer) {
		heading(w, "Seasons", len(seasons))
		rows := make([][]string, 0, len(seasons))
		for _, s := range seasons {
			cells := itemCells(s)
			rows = append(rows, []string{
				cells[0],
				cells[1],
				num(s.SeasonID),
				num(s.DVDSeason),
				fmt.Sprint(len(s.Banners)),
				cells[2],
			})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"Season", "Description", "Season ID", "DVD", "Banners", "Image"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight},
		))
	}}
}

func init() {
	rootCmd.AddCommand(seasonsCmd)
}
