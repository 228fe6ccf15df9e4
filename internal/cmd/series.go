package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Digital-Shane/tvdbxml/internal/client"
	"github.com/Digital-Shane/tvdbxml/internal/model"
)

var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search series by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunLookup(cmd, args, lookupSearch)
	},
}

var seriesCmd = &cobra.Command{
	Use:   "series <id|imdb-id>",
	Short: "Show the base record of one series",
	Long: `Show the base record of one series by catalog id, or by IMDb id when the
argument starts with "tt".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunLookup(cmd, args, lookupSeries)
	},
}

func lookupSearch(ctx context.Context, c *client.Client, args []string) (view, error) {
	found, err := c.SearchSeries(ctx, strings.Join(args, " "))
	if err != nil {
		return view{}, err
	}
	return seriesListView(found), nil
}

func lookupSeries(ctx context.Context, c *client.Client, args []string) (view, error) {
	var (
		s   model.Series
		err error
	)
	if strings.HasPrefix(args[0], "tt") {
		s, err = c.SeriesByIMDBID(ctx, args[0])
	} else {
		id, perr := parseSeriesID(args[0])
		if perr != nil {
			return view{}, perr
		}
		s, err = c.Series(ctx, id)
	}
	if err != nil {
		return view{}, err
	}
	return seriesDetailView(s), nil
}

func seriesListView(found []model.Series) view {
	return view{data: found, table: func(w io.Writer) {
		heading(w, "Series", len(found))
		rows := make([][]string, 0, len(found))
		for _, s := range found {
			rows = append(rows, []string{
				num(s.ID),
				truncate(s.Name.String(), descWidth/2),
				s.Network.String(),
				s.FirstAired.String(),
				s.Language.String(),
				truncate(s.Overview.String(), descWidth),
			})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"ID", "Name", "Network", "First aired", "Lang", "Overview"},
			rows,
			[]columnAlignment{alignRight},
		))
	}}
}

func seriesDetailView(s model.Series) view {
	return view{data: s, table: func(w io.Writer) {
		detailTable(w, s.TitleText(), [][2]string{
			{"ID", num(s.ID)},
			{"Status", s.Status.String()},
			{"Network", s.Network.String()},
			{"Airs", strings.TrimSpace(s.AirsDayOfWeek.String() + " " + s.AirsTime.String())},
			{"First aired", s.FirstAired.String()},
			{"Runtime", num(s.Runtime)},
			{"Rating", rating(s.Rating)},
			{"Votes", num(s.RatingCount)},
			{"Content rating", s.ContentRating.String()},
			{"Genres", list(s.Genres)},
			{"Actors", truncate(list(s.Actors), 2*descWidth)},
			{"IMDb", s.IMDBID.String()},
			{"Zap2it", s.Zap2itID.String()},
			{"Language", s.Language.String()},
			{"Overview", truncate(s.DescText(), 2*descWidth)},
			{"Banner", s.ImageURL()},
			{"Poster", s.Poster.String()},
			{"Fanart", s.Fanart.String()},
		})
	}}
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(seriesCmd)
}
