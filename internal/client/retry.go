package client

import (
	"net/http"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/failsafehttp"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/metrics"
)

// retrySettings holds the retry policy parameters shared by every endpoint
type retrySettings struct {
	maxRetries int
	backoff    time.Duration
	maxBackoff time.Duration
}

func newRetrySettings(cfg *config.Config) retrySettings {
	s := retrySettings{
		maxRetries: cfg.Retry.MaxRetries,
		backoff:    config.ParseDuration("retry.backoff", cfg.Retry.Backoff, 200*time.Millisecond),
		maxBackoff: config.ParseDuration("retry.max_backoff", cfg.Retry.MaxBackoff, 2*time.Second),
	}
	if s.maxBackoff <= s.backoff {
		s.maxBackoff = 2 * s.backoff
	}
	return s
}

// wrap returns next wrapped in a retry policy for endpoint. Transport errors, 429 and 5xx
// responses are retried; once attempts run out the last response or error is returned as-is
// so callers still see the real status code.
func (s retrySettings) wrap(next http.RoundTripper, endpoint string) http.RoundTripper {
	if s.maxRetries <= 0 {
		return next
	}

	logger := config.GetLogger()
	policy := failsafehttp.NewRetryPolicyBuilder().
		WithMaxRetries(s.maxRetries).
		WithBackoff(s.backoff, s.maxBackoff).
		ReturnLastFailure().
		OnRetry(func(e failsafe.ExecutionEvent[*http.Response]) {
			metrics.CatalogRetriesTotal.WithLabelValues(endpoint).Inc()
			event := logger.Warn().Str("endpoint", endpoint).Int("attempt", e.Attempts())
			if err := e.LastError(); err != nil {
				event = event.Err(err)
			}
			if resp := e.LastResult(); resp != nil {
				event = event.Int("status", resp.StatusCode)
			}
			event.Msg("Retrying catalog request")
		}).
		Build()

	return failsafehttp.NewRoundTripper(next, policy)
}
