package client

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultBaseURL is the legacy XML interface root.
const DefaultBaseURL = "http://thetvdb.com/api/"

// ShowOrder selects which numbering a single-episode lookup uses.
type ShowOrder string

const (
	OrderDefault  ShowOrder = "default"
	OrderDVD      ShowOrder = "dvd"
	OrderAbsolute ShowOrder = "absolute"
)

// ParseShowOrder accepts the three orders by name. An empty string is the
// aired order.
func ParseShowOrder(s string) (ShowOrder, error) {
	switch o := ShowOrder(strings.ToLower(s)); o {
	case "":
		return OrderDefault, nil
	case OrderDefault, OrderDVD, OrderAbsolute:
		return o, nil
	}
	return "", fmt.Errorf("unknown show order %q", s)
}

// URLs builds endpoint addresses for one API key and language.
type URLs struct {
	Base     string
	APIKey   string
	Language string
}

func (u URLs) base() string {
	if u.Base == "" {
		return DefaultBaseURL
	}
	if !strings.HasSuffix(u.Base, "/") {
		return u.Base + "/"
	}
	return u.Base
}

func (u URLs) keyed(format string, args ...any) string {
	return u.base() + url.PathEscape(u.APIKey) + fmt.Sprintf(format, args...)
}

// SearchURL finds series by name.
func (u URLs) SearchURL(name string) string {
	q := url.Values{}
	q.Set("seriesname", name)
	if u.Language != "" {
		q.Set("language", u.Language)
	}
	return u.base() + "GetSeries.php?" + q.Encode()
}

// RemoteIDURL finds a series by IMDB id.
func (u URLs) RemoteIDURL(imdbID string) string {
	q := url.Values{}
	q.Set("imdbid", imdbID)
	if u.Language != "" {
		q.Set("language", u.Language)
	}
	return u.base() + "GetSeriesByRemoteID.php?" + q.Encode()
}

// SeriesRecordURL is the base series record without episodes.
func (u URLs) SeriesRecordURL(seriesID int) string {
	return u.keyed("/series/%d/%s.xml", seriesID, u.Language)
}

// FullSeriesURL is the zipped bundle holding <lang>.xml, banners.xml and
// actors.xml.
func (u URLs) FullSeriesURL(seriesID int) string {
	return u.keyed("/series/%d/all/%s.zip", seriesID, u.Language)
}

func (u URLs) EpisodeURL(seriesID int, order ShowOrder, season, episode int) string {
	if order == "" {
		order = OrderDefault
	}
	return u.keyed("/series/%d/%s/%d/%d/%s.xml", seriesID, order, season, episode, u.Language)
}

func (u URLs) ActorsURL(seriesID int) string {
	return u.keyed("/series/%d/actors.xml", seriesID)
}

func (u URLs) BannersURL(seriesID int) string {
	return u.keyed("/series/%d/banners.xml", seriesID)
}
