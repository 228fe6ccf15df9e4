package model

// Episode is a single episode record.
type Episode struct {
	ID               int      `json:"id"`
	DVDChapter       int      `json:"dvd_chapter"`
	DVDDiscID        int      `json:"dvd_disc_id"`
	DVDEpisodeNumber int      `json:"dvd_episode_number"`
	DVDSeason        int      `json:"dvd_season"`
	Directors        []string `json:"directors"`
	Name             Text     `json:"name"`
	Number           int      `json:"number"`
	FirstAired       Date     `json:"first_aired"`
	GuestStars       []string `json:"guest_stars"`
	IMDBID           Text     `json:"imdb_id"`
	Language         Text     `json:"language"`
	Overview         Text     `json:"overview"`
	ProductionCode   Text     `json:"production_code"`
	Rating           float32  `json:"rating"`
	SeasonNumber     int      `json:"season_number"`
	Writers          []string `json:"writers"`
	AbsoluteNumber   int      `json:"absolute_number"`

	// Placement of specials relative to regular episodes.
	AirsAfterSeason   int `json:"airs_after_season"`
	AirsBeforeEpisode int `json:"airs_before_episode"`
	AirsBeforeSeason  int `json:"airs_before_season"`

	Filename    Text  `json:"filename"`
	LastUpdated int64 `json:"last_updated"`
	SeasonID    int   `json:"season_id"`
	SeriesID    int   `json:"series_id"`
}

func (e Episode) ImageURL() string {
	return e.Filename.String()
}

func (e Episode) TitleText() string {
	return e.Name.String()
}

func (e Episode) DescText() string {
	return e.Overview.String()
}

// IsSpecial reports whether the episode belongs to season 0.
func (e Episode) IsSpecial() bool {
	return e.SeasonNumber == 0
}

// EpisodeBuilder accumulates Episode fields during a decode.
type EpisodeBuilder struct {
	e Episode
}

func NewEpisodeBuilder() *EpisodeBuilder {
	return &EpisodeBuilder{e: Episode{
		ID:                NotPresent,
		DVDChapter:        NotPresent,
		DVDDiscID:         NotPresent,
		DVDEpisodeNumber:  NotPresent,
		DVDSeason:         NotPresent,
		Directors:         []string{},
		Number:            NotPresent,
		GuestStars:        []string{},
		Rating:            NotPresent,
		SeasonNumber:      NotPresent,
		Writers:           []string{},
		AbsoluteNumber:    NotPresent,
		AirsAfterSeason:   NotPresent,
		AirsBeforeEpisode: NotPresent,
		AirsBeforeSeason:  NotPresent,
		LastUpdated:       NotPresent,
		SeasonID:          NotPresent,
		SeriesID:          NotPresent,
	}}
}

func (b *EpisodeBuilder) SetID(v int) *EpisodeBuilder {
	b.e.ID = v
	return b
}

func (b *EpisodeBuilder) SetDVDChapter(v int) *EpisodeBuilder {
	b.e.DVDChapter = v
	return b
}

func (b *EpisodeBuilder) SetDVDDiscID(v int) *EpisodeBuilder {
	b.e.DVDDiscID = v
	return b
}

func (b *EpisodeBuilder) SetDVDEpisodeNumber(v int) *EpisodeBuilder {
	b.e.DVDEpisodeNumber = v
	return b
}

func (b *EpisodeBuilder) SetDVDSeason(v int) *EpisodeBuilder {
	b.e.DVDSeason = v
	return b
}

func (b *EpisodeBuilder) SetDirectors(v []string) *EpisodeBuilder {
	b.e.Directors = cloneStrings(v)
	return b
}

func (b *EpisodeBuilder) SetName(v string) *EpisodeBuilder {
	b.e.Name = NewText(v)
	return b
}

func (b *EpisodeBuilder) SetNumber(v int) *EpisodeBuilder {
	b.e.Number = v
	return b
}

func (b *EpisodeBuilder) SetFirstAired(d Date) *EpisodeBuilder {
	b.e.FirstAired = d
	return b
}

func (b *EpisodeBuilder) SetGuestStars(v []string) *EpisodeBuilder {
	b.e.GuestStars = cloneStrings(v)
	return b
}

func (b *EpisodeBuilder) SetIMDBID(v string) *EpisodeBuilder {
	b.e.IMDBID = NewText(v)
	return b
}

func (b *EpisodeBuilder) SetLanguage(v string) *EpisodeBuilder {
	b.e.Language = NewText(v)
	return b
}

func (b *EpisodeBuilder) SetOverview(v string) *EpisodeBuilder {
	b.e.Overview = NewText(v)
	return b
}

func (b *EpisodeBuilder) SetProductionCode(v string) *EpisodeBuilder {
	b.e.ProductionCode = NewText(v)
	return b
}

func (b *EpisodeBuilder) SetRating(v float32) *EpisodeBuilder {
	b.e.Rating = v
	return b
}

func (b *EpisodeBuilder) SetSeasonNumber(v int) *EpisodeBuilder {
	b.e.SeasonNumber = v
	return b
}

func (b *EpisodeBuilder) SetWriters(v []string) *EpisodeBuilder {
	b.e.Writers = cloneStrings(v)
	return b
}

func (b *EpisodeBuilder) SetAbsoluteNumber(v int) *EpisodeBuilder {
	b.e.AbsoluteNumber = v
	return b
}

func (b *EpisodeBuilder) SetAirsAfterSeason(v int) *EpisodeBuilder {
	b.e.AirsAfterSeason = v
	return b
}

func (b *EpisodeBuilder) SetAirsBeforeEpisode(v int) *EpisodeBuilder {
	b.e.AirsBeforeEpisode = v
	return b
}

func (b *EpisodeBuilder) SetAirsBeforeSeason(v int) *EpisodeBuilder {
	b.e.AirsBeforeSeason = v
	return b
}

// SetFilename takes the catalog-relative screenshot path.
func (b *EpisodeBuilder) SetFilename(path string) *EpisodeBuilder {
	b.e.Filename = ImageURL(path)
	return b
}

func (b *EpisodeBuilder) SetLastUpdated(v int64) *EpisodeBuilder {
	b.e.LastUpdated = v
	return b
}

func (b *EpisodeBuilder) SetSeasonID(v int) *EpisodeBuilder {
	b.e.SeasonID = v
	return b
}

func (b *EpisodeBuilder) SetSeriesID(v int) *EpisodeBuilder {
	b.e.SeriesID = v
	return b
}

// SeasonNumber is the season decoded so far, or NotPresent.
func (b *EpisodeBuilder) SeasonNumber() int {
	return b.e.SeasonNumber
}

func (b *EpisodeBuilder) Build() Episode {
	e := b.e
	e.Directors = cloneStrings(b.e.Directors)
	e.GuestStars = cloneStrings(b.e.GuestStars)
	e.Writers = cloneStrings(b.e.Writers)
	return e
}
