// ABOUTME: Response compression for JSON API payloads
// ABOUTME: Wraps the router with gzip negotiated from Accept-Encoding

package middleware

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// minCompressSize skips compression for small bodies such as health checks.
const minCompressSize = 1024

// Compress wraps h so responses larger than minCompressSize are gzip
// encoded when the client accepts it.
func Compress(h http.Handler) (http.Handler, error) {
	wrapper, err := gzhttp.NewWrapper(gzhttp.MinSize(minCompressSize))
	if err != nil {
		return nil, err
	}
	return wrapper(h), nil
}
