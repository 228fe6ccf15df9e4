package client

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Digital-Shane/tvdbxml/internal/archive"
	"github.com/Digital-Shane/tvdbxml/internal/parser"
	"github.com/Digital-Shane/tvdbxml/internal/xmlx"
)

// stubFetcher serves canned bodies and counts requests per URL.
type stubFetcher struct {
	mu     sync.Mutex
	bodies map[string][]byte
	errs   map[string]error
	calls  map[string]int
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{bodies: map[string][]byte{}, errs: map[string]error{}, calls: map[string]int{}}
}

func (s *stubFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[url]++
	if err, ok := s.errs[url]; ok {
		return nil, err
	}
	body, ok := s.bodies[url]
	if !ok {
		return nil, &HTTPStatusError{URL: url, StatusCode: http.StatusNotFound}
	}
	return body, nil
}

type recorded struct {
	op     string
	target string
	size   int
	failed bool
}

type stubRecorder struct {
	mu  sync.Mutex
	ops []recorded
}

func (r *stubRecorder) Record(op, target string, size int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, recorded{op: op, target: target, size: size, failed: err != nil})
}

func bundleZip(t *testing.T, docs map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
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
	return buf.Bytes()
}

const episodesXML = `<?xml version="1.0" encoding="UTF-8" ?>
<Data>
  <Series><id>81189</id><SeriesName>Breaking Bad</SeriesName></Series>
  <Episode><id>1</id><SeasonNumber>1</SeasonNumber><EpisodeNumber>1</EpisodeNumber><seriesid>81189</seriesid></Episode>
  <Episode><id>2</id><SeasonNumber>1</SeasonNumber><EpisodeNumber>2</EpisodeNumber><seriesid>81189</seriesid></Episode>
  <Episode><id>3</id><SeasonNumber>2</SeasonNumber><EpisodeNumber>1</EpisodeNumber><seriesid>81189</seriesid></Episode>
  <Episode><id>4</id><SeasonNumber>0</SeasonNumber><EpisodeNumber>1</EpisodeNumber><seriesid>81189</seriesid></Episode>
</Data>`

const bannersXML = `<Banners>
  <Banner><id>10</id><BannerPath>seasons/81189-1.jpg</BannerPath><BannerType>season</BannerType><BannerType2>season</BannerType2><Season>1</Season></Banner>
  <Banner><id>11</id><BannerPath>fanart/original/81189-1.jpg</BannerPath><BannerType>fanart</BannerType><BannerType2>1920x1080</BannerType2></Banner>
  <Banner><id>12</id><BannerPath>seasons/81189-2.jpg</BannerPath><BannerType>season</BannerType><BannerType2>season</BannerType2><Season>2</Season></Banner>
</Banners>`

func newTestClient(t *testing.T) (*Client, *stubFetcher, *stubRecorder) {
	t.Helper()
	f := newStubFetcher()
	r := &stubRecorder{}
	c := New("KEY", "en", WithFetcher(f), WithRecorder(r))
	f.bodies[c.URLs().FullSeriesURL(81189)] = bundleZip(t, map[string]string{
		"en.xml":                episodesXML,
		archive.BannersDocument: bannersXML,
		archive.ActorsDocument:  "<Actors/>",
	})
	return c, f, r
}

func TestClientBundleSharedAcrossCalls(t *testing.T) {
	c, f, _ := newTestClient(t)
	ctx := context.Background()

	seasons, err := c.Seasons(ctx, 81189)
	if err != nil {
		t.Fatalf("Seasons() error = %v", err)
	}
	got := []string{}
	for _, s := range seasons {
		got = append(got, fmt.Sprintf("%s:%d", s.TitleText(), len(s.Banners)))
	}
	if diff := cmp.Diff([]string{"Specials:0", "S01:1", "S02:1"}, got); diff != "" {
		t.Errorf("Seasons() mismatch (-want +got):\n%s", diff)
	}

	eps, err := c.Episodes(ctx, 81189, 1)
	if err != nil {
		t.Fatalf("Episodes() error = %v", err)
	}
	if len(eps) != 2 {
		t.Errorf("Episodes(season 1) = %d episodes, want 2", len(eps))
	}

	banners, err := c.Banners(ctx, 81189, parser.AllSeasons)
	if err != nil {
		t.Fatalf("Banners() error = %v", err)
	}
	if len(banners) != 3 {
		t.Errorf("Banners(all) = %d, want 3", len(banners))
	}

	if n := f.calls[c.URLs().FullSeriesURL(81189)]; n != 1 {
		t.Errorf("bundle fetched %d times, want 1", n)
	}
}

func TestClientBundleExpires(t *testing.T) {
	c, f, _ := newTestClient(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.docs.now = func() time.Time { return now }
	ctx := context.Background()

	if _, err := c.Seasons(ctx, 81189); err != nil {
		t.Fatalf("Seasons() error = %v", err)
	}
	now = now.Add(11 * time.Minute)
	if _, err := c.Seasons(ctx, 81189); err != nil {
		t.Fatalf("Seasons() error = %v", err)
	}
	if n := f.calls[c.URLs().FullSeriesURL(81189)]; n != 2 {
		t.Errorf("bundle fetched %d times after expiry, want 2", n)
	}
}

func TestClientRecordsOperations(t *testing.T) {
	c, _, r := newTestClient(t)
	if _, err := c.Episodes(context.Background(), 81189, parser.AllSeasons); err != nil {
		t.Fatalf("Episodes() error = %v", err)
	}

	url := c.URLs().FullSeriesURL(81189)
	want := []recorded{
		{op: OpFetch, target: url, size: len(c.fetcher.(*stubFetcher).bodies[url])},
		{op: OpUnpack, target: url, size: 3},
		{op: OpParse, target: url, size: 4},
	}
	if diff := cmp.Diff(want, r.ops, cmp.AllowUnexported(recorded{})); diff != "" {
		t.Errorf("recorded operations mismatch (-want +got):\n%s", diff)
	}
}

func TestClientDecodeFailureIsStructural(t *testing.T) {
	c, f, _ := newTestClient(t)
	f.bodies[c.URLs().ActorsURL(5)] = []byte("<Actors><Actor>")
	f.bodies[c.URLs().FullSeriesURL(6)] = []byte("not a zip")

	if _, err := c.Actors(context.Background(), 5); !errors.Is(err, xmlx.ErrStructure) {
		t.Errorf("Actors(truncated) error = %v, want ErrStructure", err)
	}
	if _, err := c.Seasons(context.Background(), 6); !errors.Is(err, xmlx.ErrStructure) {
		t.Errorf("Seasons(bad zip) error = %v, want ErrStructure", err)
	}
	if n := f.calls[c.URLs().ActorsURL(5)]; n != 1 {
		t.Errorf("decode failure fetched %d times, want 1", n)
	}
}

func TestClientTransportErrors(t *testing.T) {
	c, f, _ := newTestClient(t)
	f.errs[c.URLs().ActorsURL(1)] = &HTTPStatusError{URL: c.URLs().ActorsURL(1), StatusCode: http.StatusServiceUnavailable}

	_, err := c.Actors(context.Background(), 1)
	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("Actors() error = %T %v, want *ProviderError", err, err)
	}
	if pe.Code != "UNAVAILABLE" || !pe.Retry {
		t.Errorf("ProviderError = %+v, want retryable UNAVAILABLE", pe)
	}

	_, err = c.Series(context.Background(), 404)
	if !errors.As(err, &pe) || pe.Code != "NOT_FOUND" {
		t.Errorf("Series(missing) error = %v, want NOT_FOUND", err)
	}
}

func TestClientSearchAndRecords(t *testing.T) {
	c, f, _ := newTestClient(t)
	f.bodies[c.URLs().SearchURL("breaking bad")] = []byte(`<Data><Series><seriesid>81189</seriesid><language>en</language>` +
		`<SeriesName>Breaking Bad</SeriesName><IMDB_ID>tt0903747</IMDB_ID></Series></Data>`)
	f.bodies[c.URLs().RemoteIDURL("tt0903747")] = []byte(`<Data><Series><seriesid>81189</seriesid><SeriesName>Breaking Bad</SeriesName></Series></Data>`)
	f.bodies[c.URLs().EpisodeURL(81189, OrderDVD, 1, 2)] = []byte(`<Data><Episode><id>2</id><EpisodeName>Cat's in the Bag...</EpisodeName></Episode></Data>`)
	ctx := context.Background()

	found, err := c.SearchSeries(ctx, "breaking bad")
	if err != nil || len(found) != 1 || found[0].ID != 81189 {
		t.Fatalf("SearchSeries() = %+v, %v", found, err)
	}

	s, err := c.SeriesByIMDBID(ctx, "tt0903747")
	if err != nil || s.Name.Value != "Breaking Bad" {
		t.Errorf("SeriesByIMDBID() = %+v, %v", s, err)
	}

	e, err := c.Episode(ctx, 81189, OrderDVD, 1, 2)
	if err != nil || e.ID != 2 {
		t.Errorf("Episode() = %+v, %v", e, err)
	}
}

func TestClientCache(t *testing.T) {
	file := filepath.Join(t.TempDir(), "responses.gob")
	rc, err := NewCache(time.Hour, file)
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	c, f, _ := newTestClient(t)
	WithCache(rc)(c)
	url := c.URLs().ActorsURL(81189)
	f.bodies[url] = []byte("<Actors><Actor><id>1</id><Name>Bryan Cranston</Name></Actor></Actors>")

	for i := 0; i < 2; i++ {
		if _, err := c.Actors(context.Background(), 81189); err != nil {
			t.Fatalf("Actors() error = %v", err)
		}
	}
	if n := f.calls[url]; n != 1 {
		t.Errorf("cached URL fetched %d times, want 1", n)
	}

	if err := rc.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	reloaded, err := NewCache(time.Hour, file)
	if err != nil {
		t.Fatalf("NewCache(saved) error = %v", err)
	}
	if _, ok := reloaded.get(url); !ok {
		t.Errorf("reloaded cache missing %s (len %d)", url, reloaded.Len())
	}
}

func TestCacheCorruptFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "responses.gob")
	if err := os.WriteFile(file, []byte("not a gob stream"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	rc, err := NewCache(time.Hour, file)
	if err == nil {
		t.Fatal("NewCache(corrupt) error = nil, want error")
	}
	if rc == nil || rc.Len() != 0 {
		t.Fatalf("NewCache(corrupt) cache = %v, want an empty usable cache", rc)
	}

	rc.set("http://example.com/a.xml", []byte("<Data/>"))
	if err := rc.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	reloaded, err := NewCache(time.Hour, file)
	if err != nil {
		t.Fatalf("NewCache(rewritten) error = %v", err)
	}
	if reloaded.Len() != 1 {
		t.Errorf("rewritten cache len = %d, want 1", reloaded.Len())
	}
}

func TestCacheMissingFile(t *testing.T) {
	rc, err := NewCache(time.Hour, filepath.Join(t.TempDir(), "absent.gob"))
	if err != nil || rc.Len() != 0 {
		t.Errorf("NewCache(missing) = len %d, %v, want empty cache and nil error", rc.Len(), err)
	}
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.xml":
			w.Header().Set("Content-Type", "text/xml")
			fmt.Fprint(w, "<Data/>")
		case "/limited":
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.Client(), 10, time.Second)
	body, err := f.Fetch(context.Background(), srv.URL+"/ok.xml")
	if err != nil || string(body) != "<Data/>" {
		t.Errorf("Fetch(ok) = %q, %v", body, err)
	}

	_, err = f.Fetch(context.Background(), srv.URL+"/limited")
	var se *HTTPStatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("Fetch(limited) error = %v, want 429 HTTPStatusError", err)
	}
	var pe *ProviderError
	if !errors.As(mapError(err), &pe) || pe.Code != "RATE_LIMITED" || pe.RetryAfter != 10 {
		t.Errorf("mapError(429) = %+v", pe)
	}
}

func TestMapError(t *testing.T) {
	tests := map[string]struct {
		err       error
		wantCode  string
		wantRetry bool
	}{
		"unauthorized": {err: &HTTPStatusError{StatusCode: 401}, wantCode: "AUTH_FAILED"},
		"not found":    {err: &HTTPStatusError{StatusCode: 404}, wantCode: "NOT_FOUND"},
		"rate limited": {err: &HTTPStatusError{StatusCode: 429}, wantCode: "RATE_LIMITED", wantRetry: true},
		"bad gateway":  {err: &HTTPStatusError{StatusCode: 502}, wantCode: "UNAVAILABLE", wantRetry: true},
		"teapot":       {err: &HTTPStatusError{StatusCode: 418}, wantCode: "UNKNOWN"},
		"network":      {err: errors.New("connection refused"), wantCode: "UNKNOWN"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var pe *ProviderError
			if !errors.As(mapError(tc.err), &pe) {
				t.Fatalf("mapError() did not return *ProviderError")
			}
			if pe.Code != tc.wantCode || pe.Retry != tc.wantRetry {
				t.Errorf("mapError() = %s retry %v, want %s retry %v", pe.Code, pe.Retry, tc.wantCode, tc.wantRetry)
			}
			if !errors.Is(pe, tc.err) {
				t.Errorf("ProviderError does not wrap the cause")
			}
		})
	}
}
