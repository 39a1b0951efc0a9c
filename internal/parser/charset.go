package parser

import (
	"fmt"
	"io"
	"mime"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// NewUTF8Reader wraps body so that it yields UTF-8, based on the charset parameter of contentType.
//
// The catalog answers in UTF-8, which makes this a pass-through in practice. A response
// declaring another charset (e.g. "application/json; charset=ISO-8859-1") is transcoded.
// Content sniffing is deliberately not used: JSON carries no <meta> hints and a short
// ASCII prefix would be misdetected as windows-1252.
func NewUTF8Reader(body io.Reader, contentType string) (io.Reader, error) {
	if contentType == "" {
		return body, nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil || params["charset"] == "" {
		return body, nil
	}

	enc, name := charset.Lookup(params["charset"])
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", params["charset"])
	}
	if name == "utf-8" {
		return body, nil
	}
	return transform.NewReader(body, enc.NewDecoder()), nil
}
