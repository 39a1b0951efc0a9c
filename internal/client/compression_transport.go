package client

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// acceptEncoding lists the content codings the transport can decode
const acceptEncoding = "gzip, br, zstd"

// compressionTransport advertises gzip, brotli and zstd and decodes the response body,
// so the catalog can send compressed episode lists. Go's own transparent gzip is
// disabled as soon as Accept-Encoding is set explicitly, hence the manual handling.
type compressionTransport struct {
	transport http.RoundTripper
}

func newCompressionTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &compressionTransport{transport: base}
}

// RoundTrip sets Accept-Encoding on a copy of req and decodes the response body
func (t *compressionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Accept-Encoding") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("Accept-Encoding", acceptEncoding)
	}

	resp, err := t.transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.Body == nil || resp.Body == http.NoBody {
		return resp, nil
	}

	var decoded io.ReadCloser
	switch contentEncoding(resp.Header.Get("Content-Encoding")) {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, err
		}
		decoded = gz
	case "br":
		decoded = io.NopCloser(brotli.NewReader(resp.Body))
	case "zstd":
		zr, err := zstd.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, err
		}
		decoded = zr.IOReadCloser()
	default:
		// identity or a coding we did not ask for
		return resp, nil
	}

	resp.Body = &decodedBody{decoder: decoded, raw: resp.Body}
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	resp.Uncompressed = true
	return resp, nil
}

// decodedBody reads through the decoder and closes both the decoder and the raw body
type decodedBody struct {
	decoder io.ReadCloser
	raw     io.ReadCloser
}

func (d *decodedBody) Read(p []byte) (int, error) {
	return d.decoder.Read(p)
}

func (d *decodedBody) Close() error {
	decErr := d.decoder.Close()
	rawErr := d.raw.Close()
	if decErr != nil {
		return decErr
	}
	return rawErr
}

// contentEncoding returns the outermost coding of a Content-Encoding header, lowercased.
// Codings are listed in the order they were applied, so the last one is removed first.
func contentEncoding(header string) string {
	parts := strings.Split(header, ",")
	return strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
}
