package decode

import (
	"go.uber.org/zap"

	"github.com/Digital-Shane/tvdbxml/internal/model"
	"github.com/Digital-Shane/tvdbxml/internal/xmlx"
)

type (
	seriesB  = model.SeriesBuilder
	episodeB = model.EpisodeBuilder
	bannerB  = model.BannerBuilder
	actorB   = model.ActorBuilder
	seasonB  = model.SeasonBuilder
)

// Search results use "seriesid" and "language" where full records use "id"
// and "Language". "SeriesID" is the TV.com id.
var seriesFields = map[string]field[seriesB]{
	"id":             intField((*seriesB).SetID),
	"seriesid":       intField((*seriesB).SetID),
	"Actors":         listField((*seriesB).SetActors),
	"Airs_DayOfWeek": textField((*seriesB).SetAirsDayOfWeek),
	"Airs_Time":      textField((*seriesB).SetAirsTime),
	"ContentRating":  textField((*seriesB).SetContentRating),
	"FirstAired":     dateField((*seriesB).SetFirstAired),
	"Genre":          listField((*seriesB).SetGenres),
	"IMDB_ID":        textField((*seriesB).SetIMDBID),
	"Language":       textField((*seriesB).SetLanguage),
	"language":       textField((*seriesB).SetLanguage),
	"Network":        textField((*seriesB).SetNetwork),
	"NetworkID":      intField((*seriesB).SetNetworkID),
	"Overview":       textField((*seriesB).SetOverview),
	"Rating":         floatField((*seriesB).SetRating),
	"RatingCount":    intField((*seriesB).SetRatingCount),
	"Runtime":        intField((*seriesB).SetRuntime),
	"SeriesID":       intField((*seriesB).SetTVComID),
	"SeriesName":     textField((*seriesB).SetName),
	"Status":         textField((*seriesB).SetStatus),
	"added":          textField((*seriesB).SetAdded),
	"addedBy":        textField((*seriesB).SetAddedBy),
	"banner":         textField((*seriesB).SetBanner),
	"fanart":         textField((*seriesB).SetFanart),
	"lastupdated":    longField((*seriesB).SetLastUpdated),
	"poster":         textField((*seriesB).SetPoster),
	"zap2it_id":      textField((*seriesB).SetZap2itID),
}

var episodeFields = map[string]field[episodeB]{
	"id":                 intField((*episodeB).SetID),
	"DVD_chapter":        intField((*episodeB).SetDVDChapter),
	"DVD_discid":         intField((*episodeB).SetDVDDiscID),
	"DVD_episodenumber":  intField((*episodeB).SetDVDEpisodeNumber),
	"DVD_season":         intField((*episodeB).SetDVDSeason),
	"Director":           listField((*episodeB).SetDirectors),
	"EpisodeName":        textField((*episodeB).SetName),
	"EpisodeNumber":      intField((*episodeB).SetNumber),
	"FirstAired":         dateField((*episodeB).SetFirstAired),
	"GuestStars":         listField((*episodeB).SetGuestStars),
	"IMDB_ID":            textField((*episodeB).SetIMDBID),
	"Language":           textField((*episodeB).SetLanguage),
	"Overview":           textField((*episodeB).SetOverview),
	"ProductionCode":     textField((*episodeB).SetProductionCode),
	"Rating":             floatField((*episodeB).SetRating),
	"SeasonNumber":       intField((*episodeB).SetSeasonNumber),
	"Writer":             listField((*episodeB).SetWriters),
	"absolute_number":    intField((*episodeB).SetAbsoluteNumber),
	"airsafter_season":   intField((*episodeB).SetAirsAfterSeason),
	"airsbefore_episode": intField((*episodeB).SetAirsBeforeEpisode),
	"airsbefore_season":  intField((*episodeB).SetAirsBeforeSeason),
	"filename":           textField((*episodeB).SetFilename),
	"lastupdated":        longField((*episodeB).SetLastUpdated),
	"seasonid":           intField((*episodeB).SetSeasonID),
	"seriesid":           intField((*episodeB).SetSeriesID),
}

var bannerFields = map[string]field[bannerB]{
	"id":            intField((*bannerB).SetID),
	"BannerPath":    textField((*bannerB).SetBannerPath),
	"ThumbnailPath": textField((*bannerB).SetThumbnailPath),
	"VignettePath":  textField((*bannerB).SetVignettePath),
	"BannerType":    textField((*bannerB).SetType),
	"BannerType2":   textField((*bannerB).SetType2),
	"Colors":        listField((*bannerB).SetColors),
	"Language":      textField((*bannerB).SetLanguage),
	"Rating":        floatField((*bannerB).SetRating),
	"RatingCount":   intField((*bannerB).SetRatingCount),
	"SeriesName":    boolField((*bannerB).SetHasSeriesName),
	"Season":        intField((*bannerB).SetSeasonNumber),
}

var actorFields = map[string]field[actorB]{
	"id":        intField((*actorB).SetID),
	"Image":     textField((*actorB).SetImage),
	"Name":      textField((*actorB).SetName),
	"Role":      textField((*actorB).SetRole),
	"SortOrder": intField((*actorB).SetSortOrder),
}

// seasonFields picks the season key out of an <Episode>.
var seasonFields = map[string]field[seasonB]{
	"seriesid":     intField((*seasonB).SetSeriesID),
	"SeasonNumber": intField((*seasonB).SetSeasonNumber),
	"seasonid":     intField((*seasonB).SetSeasonID),
	"DVD_season":   intField((*seasonB).SetDVDSeason),
	"Language":     textField((*seasonB).SetLanguage),
}

// Series decodes the <Series> element under the cursor. A nil log disables
// unknown-tag logging.
func Series(c *xmlx.Cursor, log *zap.Logger) (model.Series, error) {
	b := model.NewSeriesBuilder()
	if err := fields(c, b, seriesFields, log); err != nil {
		return model.Series{}, err
	}
	return b.Build(), nil
}

// EpisodeBuilder decodes the <Episode> under the cursor and returns the
// builder so callers can inspect the season before building.
func EpisodeBuilder(c *xmlx.Cursor, log *zap.Logger) (*model.EpisodeBuilder, error) {
	b := model.NewEpisodeBuilder()
	if err := fields(c, b, episodeFields, log); err != nil {
		return nil, err
	}
	return b, nil
}

func Episode(c *xmlx.Cursor, log *zap.Logger) (model.Episode, error) {
	b, err := EpisodeBuilder(c, log)
	if err != nil {
		return model.Episode{}, err
	}
	return b.Build(), nil
}

func Banner(c *xmlx.Cursor, log *zap.Logger) (model.Banner, error) {
	b := model.NewBannerBuilder()
	if err := fields(c, b, bannerFields, log); err != nil {
		return model.Banner{}, err
	}
	return b.Build(), nil
}

func Actor(c *xmlx.Cursor, log *zap.Logger) (model.Actor, error) {
	b := model.NewActorBuilder()
	if err := fields(c, b, actorFields, log); err != nil {
		return model.Actor{}, err
	}
	return b.Build(), nil
}

// SeasonKey reads the season identity from the <Episode> under the cursor.
// The remaining episode tags are skipped silently.
func SeasonKey(c *xmlx.Cursor) (*model.SeasonBuilder, error) {
	b := model.NewSeasonBuilder()
	if err := fields(c, b, seasonFields, nil); err != nil {
		return nil, err
	}
	return b, nil
}
