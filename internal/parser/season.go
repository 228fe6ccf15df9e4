package parser

import (
	"cmp"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/Digital-Shane/tvdbxml/internal/archive"
	"github.com/Digital-Shane/tvdbxml/internal/decode"
	"github.com/Digital-Shane/tvdbxml/internal/model"
	"github.com/Digital-Shane/tvdbxml/internal/xmlx"
)

// SeasonParser derives seasons from the episode document of one language and
// attaches season banners when a banner document is available.
type SeasonParser struct {
	Language string
	Log      *zap.Logger
}

// ParseDocument derives seasons from a lone episode document. No banners are
// attached.
func (p SeasonParser) ParseDocument(text string) ([]model.Season, error) {
	builders, err := p.seasonKeys(text)
	if err != nil {
		return nil, err
	}
	return buildSeasons(builders), nil
}

// ParseDocumentSet reads <Language>.xml and, if present, banners.xml.
func (p SeasonParser) ParseDocumentSet(docs archive.DocumentSet) ([]model.Season, error) {
	text, err := docs.Lookup(archive.LanguageDocument(p.Language))
	if err != nil {
		return nil, err
	}
	builders, err := p.seasonKeys(text)
	if err != nil {
		return nil, err
	}
	if len(builders) == 0 {
		return []model.Season{}, nil
	}

	if bannerText, ok := docs[archive.BannersDocument]; ok && strings.TrimSpace(bannerText) != "" {
		banners, err := p.seasonBanners(bannerText)
		if err != nil {
			return nil, err
		}
		mergeBanners(builders, banners)
	}
	return buildSeasons(builders), nil
}

type seasonKey struct {
	seriesID int
	number   int
}

// seasonKeys returns one builder per (series, season) in ascending season
// order. The first episode seen for a season supplies its fields.
func (p SeasonParser) seasonKeys(text string) ([]*model.SeasonBuilder, error) {
	seen := make(map[seasonKey]bool)
	builders, err := readList(text, dataRoot, episodeElem, p.Log, func(c *xmlx.Cursor) (*model.SeasonBuilder, bool, error) {
		b, err := decode.SeasonKey(c)
		if err != nil {
			return nil, false, err
		}
		key := seasonKey{seriesID: b.SeriesID(), number: b.SeasonNumber()}
		if seen[key] {
			return nil, false, nil
		}
		seen[key] = true
		return b, true, nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(builders, func(a, b *model.SeasonBuilder) int {
		return cmp.Or(
			cmp.Compare(a.SeasonNumber(), b.SeasonNumber()),
			cmp.Compare(a.SeriesID(), b.SeriesID()),
		)
	})
	return builders, nil
}

// seasonBanners returns the season-type banners ordered by season number,
// keeping document order within a season.
func (p SeasonParser) seasonBanners(text string) ([]model.Banner, error) {
	banners, err := readList(text, bannersRoot, bannerElem, p.Log, func(c *xmlx.Cursor) (model.Banner, bool, error) {
		b, err := decode.Banner(c, p.Log)
		if err != nil {
			return model.Banner{}, false, err
		}
		return b, b.Type.Value == model.SeasonBannerType, nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(banners, func(a, b model.Banner) int {
		return cmp.Compare(a.SeasonNumber, b.SeasonNumber)
	})
	return banners, nil
}

// mergeBanners walks both sorted lists once. A banner whose season does not
// exist is dropped and the walk continues with the next banner.
func mergeBanners(seasons []*model.SeasonBuilder, banners []model.Banner) {
	i := 0
	for _, b := range banners {
		for i < len(seasons) && seasons[i].SeasonNumber() < b.SeasonNumber {
			i++
		}
		if i == len(seasons) {
			return
		}
		if seasons[i].SeasonNumber() == b.SeasonNumber {
			seasons[i].AddBanner(b)
		}
	}
}

func buildSeasons(builders []*model.SeasonBuilder) []model.Season {
	out := make([]model.Season, 0, len(builders))
	for _, b := range builders {
		out = append(out, b.Build())
	}
	return out
}
