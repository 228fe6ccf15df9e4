package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Digital-Shane/tvdbxml/internal/client"
	"github.com/Digital-Shane/tvdbxml/internal/config"
	"github.com/Digital-Shane/tvdbxml/internal/log"
)

// lookupFunc runs one catalog query against c.
type lookupFunc func(ctx context.Context, c *client.Client, args []string) (view, error)

// RunLookup executes the common logic for all network commands: load the
// configuration, open a log session, build the client, run the query, then
// persist the response cache and print the result.
func RunLookup(cmd *cobra.Command, args []string, lookup lookupFunc) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		path, _ := config.ConfigPath()
		return fmt.Errorf("no API key configured: set TVDB_API_KEY or api_key in %s", path)
	}

	logger, err := log.NewLogger(cfg.LogLevel, false)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	log.Initialize(cfg.EnableLogging, cfg.LogRetentionDays)
	if err := log.StartSession(cmd.Name(), args); err != nil {
		logger.Warn("Failed to start log session", zap.Error(err))
	}
	defer func() {
		if err := log.EndSession(); err != nil {
			logger.Warn("Failed to write log session", zap.Error(err))
		}
	}()

	c, rc, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	v, err := lookup(cmd.Context(), c, args)
	if rc != nil {
		if serr := rc.Save(); serr != nil {
			logger.Warn("Failed to save response cache", zap.Error(serr))
		}
	}
	if err != nil {
		return describe(err)
	}
	return v.print(cmd.OutOrStdout(), jsonOutput)
}

// loadConfig reads the configuration and applies the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if langFlag != "" {
		lang, err := config.NormalizeLanguage(langFlag)
		if err != nil {
			return nil, err
		}
		cfg.Language = lang
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

// newClient wires the configured request budget, cache and session log into
// a client. The returned cache is nil when caching is disabled.
func newClient(cfg *config.Config, logger *zap.Logger) (*client.Client, *client.Cache, error) {
	opts := []client.Option{
		client.WithLogger(logger),
		client.WithBaseURL(cfg.BaseURL),
		client.WithFetcher(client.NewHTTPFetcher(nil, cfg.MaxRequests, cfg.RequestWindow())),
		client.WithBundleTTL(cfg.BundleTTL()),
		client.WithRecorder(log.Recorder{}),
	}

	var rc *client.Cache
	if cfg.CacheEnabled {
		file, err := client.DefaultCacheFile()
		if err != nil {
			return nil, nil, err
		}
		rc, err = client.NewCache(cfg.CacheTTL(), file)
		if err != nil {
			logger.Warn("starting with an empty response cache", zap.Error(err))
		}
		opts = append(opts, client.WithCache(rc))
	}

	return client.New(cfg.APIKey, cfg.Language, opts...), rc, nil
}

// describe adds the retry delay to transient failures.
func describe(err error) error {
	var pe *client.ProviderError
	if errors.As(err, &pe) && pe.Retry {
		return fmt.Errorf("%w (retry in %ds)", err, pe.RetryAfter)
	}
	return err
}

func parseSeriesID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid series id %q", s)
	}
	return id, nil
}

func parseNumber(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return n, nil
}
