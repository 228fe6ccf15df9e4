package cmd

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Digital-Shane/tvdbxml/internal/model"
	"github.com/Digital-Shane/tvdbxml/internal/xmlx"
)

const fullSeriesXML = `<?xml version="1.0" encoding="UTF-8" ?>
<Data>
  <Series><id>81189</id><SeriesName>Breaking Bad</SeriesName></Series>
  <Episode><id>1</id><SeasonNumber>1</SeasonNumber><EpisodeNumber>1</EpisodeNumber><EpisodeName>Pilot</EpisodeName><seriesid>81189</seriesid></Episode>
  <Episode><id>2</id><SeasonNumber>1</SeasonNumber><EpisodeNumber>2</EpisodeNumber><EpisodeName>Cat's in the Bag...</EpisodeName><seriesid>81189</seriesid></Episode>
  <Episode><id>3</id><SeasonNumber>2</SeasonNumber><EpisodeNumber>1</EpisodeNumber><EpisodeName>Seven Thirty-Seven</EpisodeName><seriesid>81189</seriesid></Episode>
</Data>`

const seriesBannersXML = `<Banners>
  <Banner><id>10</id><BannerPath>seasons/81189-1.jpg</BannerPath><BannerType>season</BannerType><BannerType2>season</BannerType2><Season>1</Season></Banner>
  <Banner><id>11</id><BannerPath>fanart/original/81189-1.jpg</BannerPath><BannerType>fanart</BannerType><BannerType2>1920x1080</BannerType2></Banner>
</Banners>`

const seriesActorsXML = `<Actors>
  <Actor><id>1</id><Name>Bryan Cranston</Name><Role>Walter White</Role><SortOrder>0</SortOrder></Actor>
</Actors>`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func writeZip(t *testing.T, docs map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "en.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, body := range docs {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("Write(%q) error = %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	return path
}

func TestParseLocalArchive(t *testing.T) {
	path := writeZip(t, map[string]string{
		"en.xml":      fullSeriesXML,
		"banners.xml": seriesBannersXML,
		"actors.xml":  seriesActorsXML,
	})

	t.Run("episodes of one season", func(t *testing.T) {
		v, err := parseLocal(localSource{Path: path, Kind: "episodes", Season: 1, Language: "en"})
		if err != nil {
			t.Fatalf("parseLocal() error = %v", err)
		}
		episodes := v.data.([]model.Episode)
		var got []int
		for _, e := range episodes {
			got = append(got, e.ID)
		}
		if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
			t.Errorf("episode ids mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("seasons with banners", func(t *testing.T) {
		v, err := parseLocal(localSource{Path: path, Kind: "seasons", Language: "en"})
		if err != nil {
			t.Fatalf("parseLocal() error = %v", err)
		}
		seasons := v.data.([]model.Season)
		if len(seasons) != 2 {
			t.Fatalf("got %d seasons, want 2", len(seasons))
		}
		got := []int{len(seasons[0].Banners), len(seasons[1].Banners)}
		if diff := cmp.Diff([]int{1, 0}, got); diff != "" {
			t.Errorf("banner counts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("actors", func(t *testing.T) {
		v, err := parseLocal(localSource{Path: path, Kind: "actors"})
		if err != nil {
			t.Fatalf("parseLocal() error = %v", err)
		}
		if actors := v.data.([]model.Actor); len(actors) != 1 || actors[0].Name.String() != "Bryan Cranston" {
			t.Errorf("actors = %+v, want Bryan Cranston", actors)
		}
	})

	t.Run("series are not shipped in archives", func(t *testing.T) {
		_, err := parseLocal(localSource{Path: path, Kind: "series"})
		if !errors.Is(err, xmlx.ErrStructure) {
			t.Errorf("parseLocal(series archive) error = %v, want structural error", err)
		}
	})

	t.Run("missing language document", func(t *testing.T) {
		_, err := parseLocal(localSource{Path: path, Kind: "episodes", Season: -1, Language: "de"})
		if !errors.Is(err, xmlx.ErrStructure) {
			t.Errorf("parseLocal(de) error = %v, want structural error", err)
		}
	})
}

func TestParseLocalDocument(t *testing.T) {
	tests := map[string]struct {
		file    string
		body    string
		src     localSource
		wantLen int
	}{
		"banners": {
			file:    "banners.xml",
			body:    seriesBannersXML,
			src:     localSource{Kind: "banners", Season: -1},
			wantLen: 2,
		},
		"banners of season 1": {
			file:    "banners.xml",
			body:    seriesBannersXML,
			src:     localSource{Kind: "banners", Season: 1},
			wantLen: 1,
		},
		"episodes": {
			file:    "en.xml",
			body:    fullSeriesXML,
			src:     localSource{Kind: "episodes", Season: -1, Language: "en"},
			wantLen: 3,
		},
		"search results": {
			file:    "search.xml",
			body:    `<Data><Series><seriesid>81189</seriesid><SeriesName>Breaking Bad</SeriesName></Series></Data>`,
			src:     localSource{Kind: "series"},
			wantLen: 1,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			tc.src.Path = writeFile(t, tc.file, tc.body)
			v, err := parseLocal(tc.src)
			if err != nil {
				t.Fatalf("parseLocal() error = %v", err)
			}
			var n int
			switch data := v.data.(type) {
			case []model.Banner:
				n = len(data)
			case []model.Episode:
				n = len(data)
			case []model.Series:
				n = len(data)
			default:
				t.Fatalf("unexpected data %T", v.data)
			}
			if n != tc.wantLen {
				t.Errorf("parseLocal() returned %d records, want %d", n, tc.wantLen)
			}
		})
	}
}

func TestParseLocalRecord(t *testing.T) {
	path := writeFile(t, "81189.xml", `<Data><Series><id>81189</id><SeriesName>Breaking Bad</SeriesName><Genre>|Drama|Crime|</Genre></Series></Data>`)

	v, err := parseLocal(localSource{Path: path, Kind: "series", Record: true})
	if err != nil {
		t.Fatalf("parseLocal() error = %v", err)
	}
	s := v.data.(model.Series)
	if s.ID != 81189 || s.Name.String() != "Breaking Bad" {
		t.Errorf("series = %d %q, want 81189 Breaking Bad", s.ID, s.Name.String())
	}
	if diff := cmp.Diff([]string{"Drama", "Crime"}, s.Genres); diff != "" {
		t.Errorf("Genres mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLocalErrors(t *testing.T) {
	xmlPath := writeFile(t, "doc.xml", "<Actors/>")
	zipPath := writeZip(t, map[string]string{"en.xml": fullSeriesXML})

	tests := map[string]localSource{
		"unknown kind":       {Path: xmlPath, Kind: "movies"},
		"record from zip":    {Path: zipPath, Kind: "series", Record: true},
		"missing file":       {Path: filepath.Join(t.TempDir(), "nope.xml"), Kind: "actors"},
		"wrong root":         {Path: xmlPath, Kind: "banners", Season: -1},
		"not an archive":     {Path: writeFile(t, "broken.zip", "not a zip"), Kind: "actors"},
		"record wrong shape": {Path: xmlPath, Kind: "episodes", Record: true, Season: -1},
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := parseLocal(src); err == nil {
				t.Errorf("parseLocal(%+v) error = nil, want error", src)
			}
		})
	}
}
