// Package client fetches catalog documents and hands them to the parsers. It
// owns every piece of shared state: the request budget, the response cache
// and the memo of unpacked series bundles.
package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Digital-Shane/tvdbxml/internal/archive"
	"github.com/Digital-Shane/tvdbxml/internal/model"
	"github.com/Digital-Shane/tvdbxml/internal/parser"
)

// Operation names passed to a Recorder.
const (
	OpFetch  = "fetch"
	OpUnpack = "unpack"
	OpParse  = "parse"
)

// Recorder receives one call per fetch, unpack and parse step.
type Recorder interface {
	Record(op, target string, size int, err error)
}

// Client talks to the legacy XML interface for one API key and language.
type Client struct {
	urls     URLs
	fetcher  Fetcher
	log      *zap.Logger
	cache    *Cache
	docs     *docMemo
	recorder Recorder
}

type Option func(*Client)

func WithFetcher(f Fetcher) Option {
	return func(c *Client) { c.fetcher = f }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithCache serves repeated URLs from rc.
func WithCache(rc *Cache) Option {
	return func(c *Client) { c.cache = rc }
}

func WithRecorder(r Recorder) Option {
	return func(c *Client) { c.recorder = r }
}

func WithBaseURL(base string) Option {
	return func(c *Client) { c.urls.Base = base }
}

// WithBundleTTL sets how long unpacked series bundles are reused.
func WithBundleTTL(ttl time.Duration) Option {
	return func(c *Client) { c.docs = newDocMemo(ttl) }
}

// New returns a client for apiKey. An empty language means English.
func New(apiKey, language string, opts ...Option) *Client {
	if language == "" {
		language = "en"
	}
	c := &Client{
		urls: URLs{Base: DefaultBaseURL, APIKey: apiKey, Language: language},
		log:  zap.NewNop(),
		docs: newDocMemo(10 * time.Minute),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fetcher == nil {
		c.fetcher = NewHTTPFetcher(nil, 0, 0)
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// URLs exposes the endpoint builder in use.
func (c *Client) URLs() URLs {
	return c.urls
}

func (c *Client) record(op, target string, size int, err error) {
	if c.recorder != nil {
		c.recorder.Record(op, target, size, err)
	}
}

// fetch returns the body at url from the cache or the network. Transport
// failures come back as *ProviderError.
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	if c.cache != nil {
		if body, ok := c.cache.get(url); ok {
			c.log.Debug("Cache hit", zap.String("url", url))
			return body, nil
		}
	}

	start := time.Now()
	body, err := c.fetcher.Fetch(ctx, url)
	c.record(OpFetch, url, len(body), err)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		c.log.Warn("Fetch failed", zap.String("url", url), zap.Error(err))
		return nil, mapError(err)
	}
	c.log.Debug("Fetched", zap.String("url", url), zap.Int("bytes", len(body)), zap.Duration("elapsed", time.Since(start)))

	if c.cache != nil {
		c.cache.set(url, body)
	}
	return body, nil
}

// bundle returns the unpacked full-series archive.
func (c *Client) bundle(ctx context.Context, seriesID int) (archive.DocumentSet, error) {
	url := c.urls.FullSeriesURL(seriesID)
	if docs, ok := c.docs.load(url); ok {
		return docs, nil
	}

	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	docs, err := archive.Unpack(body)
	c.record(OpUnpack, url, len(docs), err)
	if err != nil {
		return nil, fmt.Errorf("series %d: %w", seriesID, err)
	}
	c.docs.store(url, docs)
	return docs, nil
}

func parseList[T any](c *Client, url string, run func() ([]T, error)) ([]T, error) {
	out, err := run()
	c.record(OpParse, url, len(out), err)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", url, err)
	}
	return out, nil
}

func parseOne[T any](c *Client, url string, run func() (T, error)) (T, error) {
	out, err := run()
	size := 1
	if err != nil {
		size = 0
	}
	c.record(OpParse, url, size, err)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to parse %s: %w", url, err)
	}
	return out, nil
}

// SearchSeries looks series up by name. No match is an empty list.
func (c *Client) SearchSeries(ctx context.Context, name string) ([]model.Series, error) {
	url := c.urls.SearchURL(name)
	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	p := parser.SeriesParser{Log: c.log}
	return parseList(c, url, func() ([]model.Series, error) { return p.ParseDocument(string(body)) })
}

func (c *Client) SeriesByIMDBID(ctx context.Context, imdbID string) (model.Series, error) {
	url := c.urls.RemoteIDURL(imdbID)
	body, err := c.fetch(ctx, url)
	if err != nil {
		return model.Series{}, err
	}
	p := parser.SeriesParser{Log: c.log}
	return parseOne(c, url, func() (model.Series, error) { return p.ParseRecord(string(body)) })
}

// Series fetches the base record of one series.
func (c *Client) Series(ctx context.Context, seriesID int) (model.Series, error) {
	url := c.urls.SeriesRecordURL(seriesID)
	body, err := c.fetch(ctx, url)
	if err != nil {
		return model.Series{}, err
	}
	p := parser.SeriesParser{Log: c.log}
	return parseOne(c, url, func() (model.Series, error) { return p.ParseRecord(string(body)) })
}

func (c *Client) Seasons(ctx context.Context, seriesID int) ([]model.Season, error) {
	docs, err := c.bundle(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	p := parser.SeasonParser{Language: c.urls.Language, Log: c.log}
	return parseList(c, c.urls.FullSeriesURL(seriesID), func() ([]model.Season, error) { return p.ParseDocumentSet(docs) })
}

// Episodes lists episodes of one season, or all with parser.AllSeasons.
func (c *Client) Episodes(ctx context.Context, seriesID, season int) ([]model.Episode, error) {
	docs, err := c.bundle(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	p := parser.NewEpisodeParser(c.urls.Language, season, c.log)
	return parseList(c, c.urls.FullSeriesURL(seriesID), func() ([]model.Episode, error) { return p.ParseDocumentSet(docs) })
}

func (c *Client) Episode(ctx context.Context, seriesID int, order ShowOrder, season, episode int) (model.Episode, error) {
	url := c.urls.EpisodeURL(seriesID, order, season, episode)
	body, err := c.fetch(ctx, url)
	if err != nil {
		return model.Episode{}, err
	}
	p := parser.NewEpisodeParser(c.urls.Language, parser.AllSeasons, c.log)
	return parseOne(c, url, func() (model.Episode, error) { return p.ParseRecord(string(body)) })
}

func (c *Client) Actors(ctx context.Context, seriesID int) ([]model.Actor, error) {
	url := c.urls.ActorsURL(seriesID)
	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	p := parser.ActorParser{Log: c.log}
	return parseList(c, url, func() ([]model.Actor, error) { return p.ParseDocument(string(body)) })
}

// Banners lists banners of one season, or all with parser.AllSeasons.
func (c *Client) Banners(ctx context.Context, seriesID, season int) ([]model.Banner, error) {
	docs, err := c.bundle(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	p := parser.NewBannerParser(season, c.log)
	return parseList(c, c.urls.FullSeriesURL(seriesID), func() ([]model.Banner, error) { return p.ParseDocumentSet(docs) })
}
