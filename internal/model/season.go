package model

import "fmt"

// SeasonBannerType marks a banner as belonging to one season.
const SeasonBannerType = "season"

// Season is derived from the episodes of a series. It has no element of its
// own in catalog documents.
type Season struct {
	SeriesID     int      `json:"series_id"`
	SeasonNumber int      `json:"season_number"`
	SeasonID     int      `json:"season_id"`
	DVDSeason    int      `json:"dvd_season"`
	Language     Text     `json:"language"`
	Banners      []Banner `json:"banners"`
}

// ImageURL is the path of the first season-format banner, or "".
func (s Season) ImageURL() string {
	for _, b := range s.Banners {
		if b.Type2.Value == SeasonBannerType {
			return b.BannerPath.String()
		}
	}
	return ""
}

func (s Season) TitleText() string {
	if s.SeasonNumber == 0 {
		return "Specials"
	}
	return fmt.Sprintf("S%02d", s.SeasonNumber)
}

func (s Season) DescText() string {
	if s.SeasonNumber == 0 {
		return "Specials"
	}
	return fmt.Sprintf("Season %02d", s.SeasonNumber)
}

type SeasonBuilder struct {
	s Season
}

func NewSeasonBuilder() *SeasonBuilder {
	return &SeasonBuilder{s: Season{
		SeriesID:     NotPresent,
		SeasonNumber: NotPresent,
		SeasonID:     NotPresent,
		DVDSeason:    NotPresent,
		Banners:      []Banner{},
	}}
}

func (b *SeasonBuilder) SetSeriesID(v int) *SeasonBuilder {
	b.s.SeriesID = v
	return b
}

func (b *SeasonBuilder) SetSeasonNumber(v int) *SeasonBuilder {
	b.s.SeasonNumber = v
	return b
}

func (b *SeasonBuilder) SetSeasonID(v int) *SeasonBuilder {
	b.s.SeasonID = v
	return b
}

func (b *SeasonBuilder) SetDVDSeason(v int) *SeasonBuilder {
	b.s.DVDSeason = v
	return b
}

func (b *SeasonBuilder) SetLanguage(v string) *SeasonBuilder {
	b.s.Language = NewText(v)
	return b
}

// AddBanner appends a banner, keeping insertion order.
func (b *SeasonBuilder) AddBanner(banner Banner) *SeasonBuilder {
	b.s.Banners = append(b.s.Banners, banner)
	return b
}

func (b *SeasonBuilder) SeriesID() int {
	return b.s.SeriesID
}

func (b *SeasonBuilder) SeasonNumber() int {
	return b.s.SeasonNumber
}

func (b *SeasonBuilder) Build() Season {
	s := b.s
	s.Banners = make([]Banner, len(b.s.Banners))
	copy(s.Banners, b.s.Banners)
	return s
}
