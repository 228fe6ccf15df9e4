package parser

import (
	"go.uber.org/zap"

	"github.com/Digital-Shane/tvdbxml/internal/archive"
	"github.com/Digital-Shane/tvdbxml/internal/decode"
	"github.com/Digital-Shane/tvdbxml/internal/model"
	"github.com/Digital-Shane/tvdbxml/internal/xmlx"
)

var (
	_ ListParser[model.Series]    = SeriesParser{}
	_ RecordParser[model.Series]  = SeriesParser{}
	_ ListParser[model.Episode]   = (*EpisodeParser)(nil)
	_ RecordParser[model.Episode] = (*EpisodeParser)(nil)
	_ ListParser[model.Banner]    = (*BannerParser)(nil)
	_ ListParser[model.Actor]     = ActorParser{}
	_ ListParser[model.Season]    = SeasonParser{}
)

// SeriesParser reads search results and single series records.
type SeriesParser struct {
	Log *zap.Logger
}

func (p SeriesParser) ParseDocument(text string) ([]model.Series, error) {
	return readList(text, dataRoot, seriesElem, p.Log, func(c *xmlx.Cursor) (model.Series, bool, error) {
		s, err := decode.Series(c, p.Log)
		return s, true, err
	})
}

// ParseDocumentSet always fails: series lists only come from search.
func (p SeriesParser) ParseDocumentSet(archive.DocumentSet) ([]model.Series, error) {
	return nil, ErrDocumentSetUnsupported
}

func (p SeriesParser) ParseRecord(text string) (model.Series, error) {
	return readRecord(text, seriesElem, func(c *xmlx.Cursor) (model.Series, error) {
		return decode.Series(c, p.Log)
	})
}

// EpisodeParser reads the episodes of one language, optionally limited to a
// single season.
type EpisodeParser struct {
	language string
	season   int
	log      *zap.Logger
}

// NewEpisodeParser returns a parser for lang. Pass AllSeasons to keep every
// episode.
func NewEpisodeParser(lang string, season int, log *zap.Logger) *EpisodeParser {
	return &EpisodeParser{language: lang, season: season, log: log}
}

func (p *EpisodeParser) ParseDocument(text string) ([]model.Episode, error) {
	return readList(text, dataRoot, episodeElem, p.log, func(c *xmlx.Cursor) (model.Episode, bool, error) {
		b, err := decode.EpisodeBuilder(c, p.log)
		if err != nil {
			return model.Episode{}, false, err
		}
		if !seasonMatches(p.season, b.SeasonNumber()) {
			return model.Episode{}, false, nil
		}
		return b.Build(), true, nil
	})
}

func (p *EpisodeParser) ParseDocumentSet(docs archive.DocumentSet) ([]model.Episode, error) {
	text, err := docs.Lookup(archive.LanguageDocument(p.language))
	if err != nil {
		return nil, err
	}
	return p.ParseDocument(text)
}

// ParseRecord reads a single-episode document. The season filter does not
// apply.
func (p *EpisodeParser) ParseRecord(text string) (model.Episode, error) {
	return readRecord(text, episodeElem, func(c *xmlx.Cursor) (model.Episode, error) {
		return decode.Episode(c, p.log)
	})
}

// BannerParser reads banners.xml, optionally limited to one season.
type BannerParser struct {
	season int
	log    *zap.Logger
}

func NewBannerParser(season int, log *zap.Logger) *BannerParser {
	return &BannerParser{season: season, log: log}
}

func (p *BannerParser) ParseDocument(text string) ([]model.Banner, error) {
	return readList(text, bannersRoot, bannerElem, p.log, func(c *xmlx.Cursor) (model.Banner, bool, error) {
		b, err := decode.Banner(c, p.log)
		if err != nil {
			return model.Banner{}, false, err
		}
		return b, seasonMatches(p.season, b.SeasonNumber), nil
	})
}

func (p *BannerParser) ParseDocumentSet(docs archive.DocumentSet) ([]model.Banner, error) {
	text, err := docs.Lookup(archive.BannersDocument)
	if err != nil {
		return nil, err
	}
	return p.ParseDocument(text)
}

type ActorParser struct {
	Log *zap.Logger
}

func (p ActorParser) ParseDocument(text string) ([]model.Actor, error) {
	return readList(text, actorsRoot, actorElem, p.Log, func(c *xmlx.Cursor) (model.Actor, bool, error) {
		a, err := decode.Actor(c, p.Log)
		return a, true, err
	})
}

func (p ActorParser) ParseDocumentSet(docs archive.DocumentSet) ([]model.Actor, error) {
	text, err := docs.Lookup(archive.ActorsDocument)
	if err != nil {
		return nil, err
	}
	return p.ParseDocument(text)
}
