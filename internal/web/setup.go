package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Belphemur/ShowSearch/internal/client"
	"github.com/Belphemur/ShowSearch/internal/config"
)

// NewHTTPServer creates the public web server for cfg, serving the routes of a Server
// built on c.
func NewHTTPServer(cfg *config.Config, c client.Client, reporter ErrorReporter) *http.Server {
	port := cfg.Server.Port
	if port == 0 {
		port = 8080
	}
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Address, port),
		Handler:           NewServer(c, reporter).Router(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      defaultRequestTimeout + 5*time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}
