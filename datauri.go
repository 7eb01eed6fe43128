package tailicon

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/tdewolff/parse/v2"
)

// ErrBadDataURI is returned when a data URI does not hold an SVG image.
var ErrBadDataURI = errors.New("not an SVG data URI")

const dataURIPrefix = "data:image/svg+xml;utf8,"

// uriComponentTable marks the bytes that are percent-encoded, it leaves the same characters unescaped as encodeURIComponent does.
var uriComponentTable = [256]bool{}

func init() {
	for c := 0; c < 256; c++ {
		uriComponentTable[c] = !('A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' ||
			c == '-' || c == '_' || c == '.' || c == '!' || c == '~' || c == '*' || c == '\'' || c == '(' || c == ')')
	}
}

// DataURI returns svg as a data URI with the image/svg+xml media type. All reserved characters are percent-encoded.
func DataURI(svg string) string {
	return dataURIPrefix + string(parse.EncodeURL([]byte(svg), uriComponentTable))
}

// DecodeDataURI returns the SVG markup of a data URI as produced by DataURI. Base64 encoded URIs are accepted as well.
func DecodeDataURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", ErrBadDataURI
	}
	comma := strings.IndexByte(uri, ',')
	if comma == -1 {
		return "", ErrBadDataURI
	}

	mediatype, data := uri[len("data:"):comma], uri[comma+1:]
	params := strings.Split(mediatype, ";")
	if strings.TrimSpace(params[0]) != "image/svg+xml" {
		return "", fmt.Errorf("media type %q: %w", params[0], ErrBadDataURI)
	}
	if strings.TrimSpace(params[len(params)-1]) == "base64" {
		b, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return "", fmt.Errorf("%v: %w", err, ErrBadDataURI)
		}
		return string(b), nil
	}
	svg, err := url.PathUnescape(data)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrBadDataURI)
	}
	return svg, nil
}
