// Package errorreport forwards unexpected failures to Sentry.
package errorreport

import (
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/ShowSearch/internal/config"
)

// Reporter captures errors on its own Sentry hub.
// A Reporter created without a DSN drops everything it is given.
type Reporter struct {
	hub *sentry.Hub
}

// Option customises the Sentry client options before the client is created.
type Option func(*sentry.ClientOptions)

// New creates a Reporter for dsn. An empty dsn returns a disabled Reporter and no error.
func New(dsn, environment string, opts ...Option) (*Reporter, error) {
	if dsn == "" {
		return &Reporter{}, nil
	}

	options := sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		ServerName:  "showsearch",
	}
	for _, opt := range opts {
		opt(&options)
	}

	client, err := sentry.NewClient(options)
	if err != nil {
		return nil, err
	}
	return &Reporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

// NewFromConfig creates a Reporter from the sentry section of cfg.
// An invalid DSN is logged and yields a disabled Reporter.
func NewFromConfig(cfg *config.Config) *Reporter {
	logger := config.GetLogger()

	r, err := New(cfg.Sentry.DSN, cfg.Sentry.Environment)
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid Sentry DSN, error reporting disabled")
		return &Reporter{}
	}
	if r.Enabled() {
		logger.Info().Str("environment", cfg.Sentry.Environment).Msg("Sentry error reporting enabled")
	}
	return r
}

// Enabled reports whether errors are actually sent.
func (r *Reporter) Enabled() bool {
	return r != nil && r.hub != nil
}

// Capture sends err with tags attached to the event.
func (r *Reporter) Capture(err error, tags map[string]string) {
	if err == nil || !r.Enabled() {
		return
	}
	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		r.hub.CaptureException(err)
	})
}

// Flush waits up to timeout for buffered events to be sent.
func (r *Reporter) Flush(timeout time.Duration) bool {
	if !r.Enabled() {
		return true
	}
	return r.hub.Flush(timeout)
}
