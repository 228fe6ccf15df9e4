package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Digital-Shane/tvdbxml/internal/client"
	"github.com/Digital-Shane/tvdbxml/internal/model"
	"github.com/Digital-Shane/tvdbxml/internal/parser"
)

var (
	episodeSeason int
	episodeOrder  string
)

var episodesCmd = &cobra.Command{
	Use:   "episodes <id>",
	Short: "List the episodes of a series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunLookup(cmd, args, lookupEpisodes)
	},
}

var episodeCmd = &cobra.Command{
	Use:   "episode <id> <season> <episode>",
	Short: "Show a single episode",
	Long: `Show a single episode by season and episode number.

The --order flag picks the numbering: default (aired), dvd or absolute. With
absolute order the season argument is ignored by the catalog.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunLookup(cmd, args, lookupEpisode)
	},
}

func lookupEpisodes(ctx context.Context, c *client.Client, args []string) (view, error) {
	id, err := parseSeriesID(args[0])
	if err != nil {
		return view{}, err
	}
	episodes, err := c.Episodes(ctx, id, episodeSeason)
	if err != nil {
		return view{}, err
	}
	return episodesView(episodes), nil
}

func lookupEpisode(ctx context.Context, c *client.Client, args []string) (view, error) {
	id, err := parseSeriesID(args[0])
	if err != nil {
		return view{}, err
	}
	season, err := parseNumber("season", args[1])
	if err != nil {
		return view{}, err
	}
	number, err := parseNumber("episode", args[2])
	if err != nil {
		return view{}, err
	}
	order, err := client.ParseShowOrder(episodeOrder)
	if err != nil {
		return view{}, err
	}

	e, err := c.Episode(ctx, id, order, season, number)
	if err != nil {
		return view{}, err
	}
	return episodeDetailView(e), nil
}

func episodeCode(e model.Episode) string {
	if e.SeasonNumber == model.NotPresent || e.Number == model.NotPresent {
		return ""
	}
	return fmt.Sprintf("S%02dE%02d", e.SeasonNumber, e.Number)
}

func episodesView(episodes []model.Episode) view {
	return view{data: episodes, table: func(w io.Writer) {
		heading(w, "Episodes", len(episodes))
		rows := make([][]string, 0, len(episodes))
		for _, e := range episodes {
			rows = append(rows, []string{
				episodeCode(e),
				num(e.AbsoluteNumber),
				truncate(e.TitleText(), descWidth/2),
				e.FirstAired.String(),
				rating(e.Rating),
				truncate(e.DescText(), descWidth),
			})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"Episode", "Abs", "Name", "Aired", "Rating", "Overview"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft, alignRight},
		))
	}}
}

func episodeDetailView(e model.Episode) view {
	return view{data: e, table: func(w io.Writer) {
		title := e.TitleText()
		if code := episodeCode(e); code != "" {
			title = code + " " + title
		}
		detailTable(w, title, [][2]string{
			{"ID", num(e.ID)},
			{"Series ID", num(e.SeriesID)},
			{"Season ID", num(e.SeasonID)},
			{"Absolute", num(e.AbsoluteNumber)},
			{"DVD season", num(e.DVDSeason)},
			{"DVD episode", num(e.DVDEpisodeNumber)},
			{"Aired", e.FirstAired.String()},
			{"Airs after season", num(e.AirsAfterSeason)},
			{"Airs before season", num(e.AirsBeforeSeason)},
			{"Airs before episode", num(e.AirsBeforeEpisode)},
			{"Rating", rating(e.Rating)},
			{"Directors", list(e.Directors)},
			{"Writers", list(e.Writers)},
			{"Guest stars", truncate(list(e.GuestStars), 2*descWidth)},
			{"Production code", e.ProductionCode.String()},
			{"IMDb", e.IMDBID.String()},
			{"Language", e.Language.String()},
			{"Overview", truncate(e.DescText(), 2*descWidth)},
			{"Image", e.ImageURL()},
		})
	}}
}

func init() {
	episodesCmd.Flags().IntVarP(&episodeSeason, "season", "s", parser.AllSeasons, "Only list this season (0 is specials)")
	episodeCmd.Flags().StringVar(&episodeOrder, "order", string(client.OrderDefault), "Episode numbering: default, dvd or absolute")

	rootCmd.AddCommand(episodesCmd)
	rootCmd.AddCommand(episodeCmd)
}
