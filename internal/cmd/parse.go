package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Digital-Shane/tvdbxml/internal/archive"
	"github.com/Digital-Shane/tvdbxml/internal/log"
	"github.com/Digital-Shane/tvdbxml/internal/model"
	"github.com/Digital-Shane/tvdbxml/internal/parser"
)

var (
	parseKind   string
	parseRecord bool
	parseSeason int
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Decode a downloaded catalog document",
	Long: `Decode a catalog document saved on disk, without network access.

A .zip file is treated as a full series archive and read through its member
documents; any other file is read as a single XML document. --kind selects the
entity: series, episodes, seasons, banners or actors. --record reads a
one-record document (series and episodes only).`,
	Args: cobra.ExactArgs(1),
	RunE: runParseCommand,
}

func runParseCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := log.NewLogger(cfg.LogLevel, false)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	log.Initialize(cfg.EnableLogging, cfg.LogRetentionDays)
	if err := log.StartSession(cmd.Name(), args); err != nil {
		logger.Warn("Failed to start log session", zap.Error(err))
	}
	defer func() {
		if err := log.EndSession(); err != nil {
			logger.Warn("Failed to write log session", zap.Error(err))
		}
	}()

	v, err := parseLocal(localSource{
		Path:     args[0],
		Kind:     parseKind,
		Record:   parseRecord,
		Season:   parseSeason,
		Language: cfg.Language,
		Log:      logger,
	})
	if err != nil {
		return err
	}
	return v.print(cmd.OutOrStdout(), jsonOutput)
}

// localSource describes one offline parse.
type localSource struct {
	Path     string
	Kind     string
	Record   bool
	Season   int
	Language string
	Log      *zap.Logger
}

func (s localSource) isArchive() bool {
	return strings.EqualFold(filepath.Ext(s.Path), ".zip")
}

func parseLocal(src localSource) (view, error) {
	if src.Log == nil {
		src.Log = zap.NewNop()
	}
	if src.Record && src.isArchive() {
		return view{}, fmt.Errorf("--record needs an .xml document, not an archive")
	}

	switch src.Kind {
	case "series":
		p := parser.SeriesParser{Log: src.Log}
		if src.Record {
			s, err := parseRecordFile[model.Series](p, src.Path)
			return seriesDetailView(s), err
		}
		list, err := parseListFile[model.Series](p, src)
		return seriesListView(list), err
	case "episodes":
		p := parser.NewEpisodeParser(src.Language, src.Season, src.Log)
		if src.Record {
			e, err := parseRecordFile[model.Episode](p, src.Path)
			return episodeDetailView(e), err
		}
		list, err := parseListFile[model.Episode](p, src)
		return episodesView(list), err
	case "seasons":
		list, err := parseListFile[model.Season](parser.SeasonParser{Language: src.Language, Log: src.Log}, src)
		return seasonsView(list), err
	case "banners":
		list, err := parseListFile[model.Banner](parser.NewBannerParser(src.Season, src.Log), src)
		return bannersView(list), err
	case "actors":
		list, err := parseListFile[model.Actor](parser.ActorParser{Log: src.Log}, src)
		return actorsView(list), err
	}
	return view{}, fmt.Errorf("unknown kind %q (want series, episodes, seasons, banners or actors)", src.Kind)
}

func parseListFile[T any](p parser.ListParser[T], src localSource) ([]T, error) {
	var (
		out []T
		err error
	)
	if src.isArchive() {
		var docs archive.DocumentSet
		docs, err = unpackFile(src.Path)
		if err != nil {
			return nil, err
		}
		out, err = p.ParseDocumentSet(docs)
	} else {
		var data []byte
		data, err = os.ReadFile(src.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", src.Path, err)
		}
		out, err = p.ParseDocument(string(data))
	}
	log.LogParse(src.Path, len(out), err)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", src.Path, err)
	}
	return out, nil
}

func parseRecordFile[T any](p parser.RecordParser[T], path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("failed to read %s: %w", path, err)
	}
	out, err := p.ParseRecord(string(data))
	if err != nil {
		log.LogParse(path, 0, err)
		return zero, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	log.LogParse(path, 1, nil)
	return out, nil
}

func unpackFile(path string) (archive.DocumentSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	docs, err := archive.UnpackReader(f)
	log.LogUnpack(path, len(docs), err)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", path, err)
	}
	return docs, nil
}

func init() {
	parseCmd.Flags().StringVarP(&parseKind, "kind", "k", "series", "Entity to decode: series, episodes, seasons, banners or actors")
	parseCmd.Flags().BoolVar(&parseRecord, "record", false, "Read a one-record document")
	parseCmd.Flags().IntVarP(&parseSeason, "season", "s", parser.AllSeasons, "Only keep episodes or banners of this season")

	rootCmd.AddCommand(parseCmd)
}
