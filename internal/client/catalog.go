package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
	"github.com/Belphemur/ShowSearch/internal/cache"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/metrics"
	"github.com/Belphemur/ShowSearch/internal/models"
	"github.com/Belphemur/ShowSearch/internal/parser"
)

// maxBodySize bounds how much of a catalog response is read. The longest episode
// lists (daily shows) stay well below it.
const maxBodySize = 32 << 20

// SearchShows queries search/shows with term and maps every result to a Show
func (c *client) SearchShows(ctx context.Context, term string) ([]models.Show, error) {
	logger := config.GetLogger()

	var shows []models.Show
	err := c.fetch(ctx, request{
		endpoint:   endpointSearch,
		url:        c.resolve("search/shows", url.Values{"q": {term}}),
		httpClient: c.searchHTTP,
		cache:      c.searchCache,
		cacheKey:   searchCacheKey(term),
	}, func(b []byte) (err error) {
		shows, err = c.showParser.Parse(bytes.NewReader(b))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("search shows %q: %w", term, err)
	}

	logger.Debug().Str("term", term).Int("count", len(shows)).Msg("Show search completed")
	return shows, nil
}

// GetEpisodes queries shows/{id}/episodes and returns the episodes tagged with showID
func (c *client) GetEpisodes(ctx context.Context, showID int) (*models.EpisodeList, error) {
	logger := config.GetLogger()

	if showID <= 0 {
		return nil, apperrors.NewShowNotFoundError(showID)
	}

	var episodes []models.Episode
	err := c.fetch(ctx, request{
		endpoint:   endpointEpisodes,
		url:        c.resolve(fmt.Sprintf("shows/%d/episodes", showID), nil),
		httpClient: c.episodesHTTP,
		cache:      c.episodesCache,
		cacheKey:   strconv.Itoa(showID),
		notFound:   func() error { return apperrors.NewShowNotFoundError(showID) },
	}, func(b []byte) (err error) {
		episodes, err = c.episodeParser.Parse(bytes.NewReader(b))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get episodes of show %d: %w", showID, err)
	}

	logger.Debug().Int("show_id", showID).Int("count", len(episodes)).Msg("Episode lookup completed")
	return &models.EpisodeList{ShowID: showID, Episodes: episodes}, nil
}

// request describes one catalog GET
type request struct {
	endpoint   string
	url        string
	httpClient *http.Client
	cache      cache.Cache
	cacheKey   string
	// notFound builds the error returned for a 404; nil treats 404 like any other failure
	notFound func() error
}

// fetch hands the UTF-8 body of req to decode, serving it from cache when possible.
// A fetched body is only cached once decode accepts it, so a malformed response is
// requested again on the next call.
func (c *client) fetch(ctx context.Context, req request, decode func([]byte) error) error {
	logger := config.GetLogger()

	if cached, ok := req.cache.Get(req.cacheKey); ok {
		metrics.CatalogRequestsTotal.WithLabelValues(req.endpoint, "cache_hit").Inc()
		logger.Debug().Str("endpoint", req.endpoint).Str("key", req.cacheKey).Msg("Serving catalog response from cache")
		return decode(cached)
	}

	start := time.Now()
	body, err := c.get(ctx, req)
	metrics.CatalogRequestDuration.WithLabelValues(req.endpoint).Observe(time.Since(start).Seconds())
	if err == nil {
		err = decode(body)
	}
	if err != nil {
		metrics.CatalogRequestsTotal.WithLabelValues(req.endpoint, outcomeLabel(err)).Inc()
		logger.Warn().Err(err).Str("endpoint", req.endpoint).Str("url", req.url).Msg("Catalog request failed")
		return err
	}

	metrics.CatalogRequestsTotal.WithLabelValues(req.endpoint, "success").Inc()
	req.cache.Set(req.cacheKey, body)
	return nil
}

func (c *client) get(ctx context.Context, req request) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := req.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && req.notFound != nil {
		return nil, req.notFound()
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apperrors.ErrUpstreamStatus{URL: req.url, StatusCode: resp.StatusCode}
	}

	reader, err := parser.NewUTF8Reader(io.LimitReader(resp.Body, maxBodySize), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, &apperrors.ErrInvalidPayload{Resource: req.endpoint, Reason: "decode charset", Err: err}
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// resolve builds an absolute catalog URL from a path relative to the base URL
func (c *client) resolve(path string, query url.Values) string {
	ref := &url.URL{Path: path}
	if query != nil {
		ref.RawQuery = query.Encode()
	}
	return c.baseURL.ResolveReference(ref).String()
}

// searchCacheKey folds case and Unicode normalisation so that "Amélie" typed with a
// combining accent and "AMÉLIE" share one entry. The catalog matches case-insensitively.
func searchCacheKey(term string) string {
	return "q:" + cases.Fold().String(norm.NFC.String(strings.TrimSpace(term)))
}

// outcomeLabel maps a fetch error to the status label of catalog_requests_total
func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, &apperrors.ErrNotFound{}):
		return "not_found"
	case errors.Is(err, &apperrors.ErrUpstreamStatus{}):
		return "http_error"
	case errors.Is(err, &apperrors.ErrInvalidPayload{}):
		return "invalid_payload"
	default:
		return "transport_error"
	}
}
