package httputil

import "net/http"

// APIHeaders returns the default headers for cosmetics-API requests.
func APIHeaders() http.Header {
	h := http.Header{}
	h.Set("Accept", "application/json")
	h.Set("Accept-Encoding", "gzip, br")
	h.Set("User-Agent", "fortshop/1.0")
	return h
}
