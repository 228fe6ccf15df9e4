package model

// Series is a base series record.
type Series struct {
	ID            int      `json:"id"`
	Actors        []string `json:"actors"`
	AirsDayOfWeek Text     `json:"airs_day_of_week"` // "Monday" through "Sunday"
	AirsTime      Text     `json:"airs_time"`        // e.g. "8:00 PM"
	ContentRating Text     `json:"content_rating"`
	FirstAired    Date     `json:"first_aired"`
	Genres        []string `json:"genres"`
	IMDBID        Text     `json:"imdb_id"`
	Language      Text     `json:"language"`
	Network       Text     `json:"network"`
	NetworkID     int      `json:"network_id"`
	Overview      Text     `json:"overview"`
	Rating        float32  `json:"rating"`
	RatingCount   int      `json:"rating_count"`
	Runtime       int      `json:"runtime"`

	// TVComID is the TV.com identifier, not the catalog series id.
	TVComID     int   `json:"tv_com_id"`
	Name        Text  `json:"name"`
	Status      Text  `json:"status"`
	Added       Text  `json:"added"`
	AddedBy     Text  `json:"added_by"`
	Banner      Text  `json:"banner"`
	Fanart      Text  `json:"fanart"`
	Poster      Text  `json:"poster"`
	LastUpdated int64 `json:"last_updated"` // update token, not a timestamp
	Zap2itID    Text  `json:"zap2it_id"`
}

func (s Series) ImageURL() string {
	return s.Banner.String()
}

func (s Series) TitleText() string {
	return s.Name.String()
}

func (s Series) DescText() string {
	return s.Overview.String()
}

// SeriesBuilder accumulates Series fields during a decode.
type SeriesBuilder struct {
	s Series
}

// NewSeriesBuilder returns a builder with every field absent.
func NewSeriesBuilder() *SeriesBuilder {
	return &SeriesBuilder{s: Series{
		ID:          NotPresent,
		Actors:      []string{},
		Genres:      []string{},
		NetworkID:   NotPresent,
		Rating:      NotPresent,
		RatingCount: NotPresent,
		Runtime:     NotPresent,
		TVComID:     NotPresent,
		LastUpdated: NotPresent,
	}}
}

func (b *SeriesBuilder) SetID(id int) *SeriesBuilder {
	b.s.ID = id
	return b
}

func (b *SeriesBuilder) SetActors(v []string) *SeriesBuilder {
	b.s.Actors = cloneStrings(v)
	return b
}

func (b *SeriesBuilder) SetAirsDayOfWeek(v string) *SeriesBuilder {
	b.s.AirsDayOfWeek = NewText(v)
	return b
}

func (b *SeriesBuilder) SetAirsTime(v string) *SeriesBuilder {
	b.s.AirsTime = NewText(v)
	return b
}

func (b *SeriesBuilder) SetContentRating(v string) *SeriesBuilder {
	b.s.ContentRating = NewText(v)
	return b
}

func (b *SeriesBuilder) SetFirstAired(d Date) *SeriesBuilder {
	b.s.FirstAired = d
	return b
}

func (b *SeriesBuilder) SetGenres(v []string) *SeriesBuilder {
	b.s.Genres = cloneStrings(v)
	return b
}

func (b *SeriesBuilder) SetIMDBID(v string) *SeriesBuilder {
	b.s.IMDBID = NewText(v)
	return b
}

func (b *SeriesBuilder) SetLanguage(v string) *SeriesBuilder {
	b.s.Language = NewText(v)
	return b
}

func (b *SeriesBuilder) SetNetwork(v string) *SeriesBuilder {
	b.s.Network = NewText(v)
	return b
}

func (b *SeriesBuilder) SetNetworkID(v int) *SeriesBuilder {
	b.s.NetworkID = v
	return b
}

func (b *SeriesBuilder) SetOverview(v string) *SeriesBuilder {
	b.s.Overview = NewText(v)
	return b
}

func (b *SeriesBuilder) SetRating(v float32) *SeriesBuilder {
	b.s.Rating = v
	return b
}

func (b *SeriesBuilder) SetRatingCount(v int) *SeriesBuilder {
	b.s.RatingCount = v
	return b
}

func (b *SeriesBuilder) SetRuntime(v int) *SeriesBuilder {
	b.s.Runtime = v
	return b
}

func (b *SeriesBuilder) SetTVComID(v int) *SeriesBuilder {
	b.s.TVComID = v
	return b
}

func (b *SeriesBuilder) SetName(v string) *SeriesBuilder {
	b.s.Name = NewText(v)
	return b
}

func (b *SeriesBuilder) SetStatus(v string) *SeriesBuilder {
	b.s.Status = NewText(v)
	return b
}

func (b *SeriesBuilder) SetAdded(v string) *SeriesBuilder {
	b.s.Added = NewText(v)
	return b
}

func (b *SeriesBuilder) SetAddedBy(v string) *SeriesBuilder {
	b.s.AddedBy = NewText(v)
	return b
}

// SetBanner takes a catalog-relative path and stores the absolute URL.
func (b *SeriesBuilder) SetBanner(path string) *SeriesBuilder {
	b.s.Banner = ImageURL(path)
	return b
}

func (b *SeriesBuilder) SetFanart(path string) *SeriesBuilder {
	b.s.Fanart = ImageURL(path)
	return b
}

func (b *SeriesBuilder) SetPoster(path string) *SeriesBuilder {
	b.s.Poster = ImageURL(path)
	return b
}

func (b *SeriesBuilder) SetLastUpdated(v int64) *SeriesBuilder {
	b.s.LastUpdated = v
	return b
}

func (b *SeriesBuilder) SetZap2itID(v string) *SeriesBuilder {
	b.s.Zap2itID = NewText(v)
	return b
}

// Build returns the finished record. The returned Series shares no state with
// the builder.
func (b *SeriesBuilder) Build() Series {
	s := b.s
	s.Actors = cloneStrings(b.s.Actors)
	s.Genres = cloneStrings(b.s.Genres)
	return s
}
