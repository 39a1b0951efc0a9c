package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/Belphemur/ShowSearch/internal/cache"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
	"github.com/Belphemur/ShowSearch/internal/parser"
)

// Each endpoint caches its responses in the cache group of the same name.
const (
	endpointSearch   = cache.GroupSearch
	endpointEpisodes = cache.GroupEpisodes
)

// Client defines the interface for querying the show catalog
type Client interface {
	// SearchShows returns the shows matching term, in the catalog's order.
	// The term is sent as-is; an empty term is not rejected.
	SearchShows(ctx context.Context, term string) ([]models.Show, error)
	// GetEpisodes returns the episodes of a show, in the catalog's order, tagged with showID.
	GetEpisodes(ctx context.Context, showID int) (*models.EpisodeList, error)

	// Close releases any resources held by the client (e.g., cache connections).
	Close() error
}

// client implements the Client interface
type client struct {
	searchHTTP    *http.Client
	episodesHTTP  *http.Client
	baseURL       *url.URL
	userAgent     string
	showParser    parser.Parser[models.Show]
	episodeParser parser.Parser[models.Episode]
	searchCache   cache.Cache
	episodesCache cache.Cache
}

// NewClient creates a new catalog client from cfg.
// Invalid optional settings (timeout, proxy, cache backend) are logged and replaced by defaults.
func NewClient(cfg *config.Config) Client {
	cfg = cfg.Normalized()
	logger := config.GetLogger()

	timeout := config.ParseDuration("client_timeout", cfg.ClientTimeout, 30*time.Second)

	// Clone DefaultTransport to keep its pooling, HTTP/2 and dial timeouts
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}
	transport := newCompressionTransport(baseTransport)
	retry := newRetrySettings(cfg)

	baseURL, err := url.Parse(cfg.Catalog.BaseURL)
	if err != nil {
		logger.Warn().Err(err).Str("base_url", cfg.Catalog.BaseURL).Msg("Invalid catalog URL, using default")
		baseURL, _ = url.Parse(config.DefaultCatalogURL)
	}

	return &client{
		searchHTTP:    &http.Client{Timeout: timeout, Transport: retry.wrap(transport, endpointSearch)},
		episodesHTTP:  &http.Client{Timeout: timeout, Transport: retry.wrap(transport, endpointEpisodes)},
		baseURL:       baseURL,
		userAgent:     cfg.UserAgent,
		showParser:    parser.NewShowParser(cfg.Catalog.DefaultImage),
		episodeParser: parser.NewEpisodeParser(),
		searchCache:   newResponseCache(cfg, endpointSearch),
		episodesCache: newResponseCache(cfg, endpointEpisodes),
	}
}

// newResponseCache creates the cache for one endpoint, falling back to memory when the
// configured backend is unreachable so that a Redis outage does not take the service down.
func newResponseCache(cfg *config.Config, group string) cache.Cache {
	c, err := cache.NewFromConfig(cfg, group)
	if err == nil {
		return c
	}

	logger := config.GetLogger()
	logger.Warn().Err(err).Str("provider", cfg.Cache.Provider).Str("cache", group).Msg("Cache backend unavailable, falling back to memory")
	fallback := *cfg
	fallback.Cache.Provider = "memory"
	c, err = cache.NewFromConfig(&fallback, group)
	if err != nil {
		logger.Error().Err(err).Str("cache", group).Msg("Memory cache unavailable, caching disabled")
		c, _ = cache.New("none", cache.ProviderConfig{})
	}
	return c
}

// Close releases any resources held by the client, such as cache connections.
func (c *client) Close() error {
	return errors.Join(c.searchCache.Close(), c.episodesCache.Close())
}
