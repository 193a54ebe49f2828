package services

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	proxyTimeout      = 20 * time.Second
	proxyMaxRedirects = 5
	proxyMaxBodyBytes = 5 << 20 // 5 MiB cap on fetched pages
)

var proxyClient = &http.Client{
	Timeout: proxyTimeout,
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		if len(via) >= proxyMaxRedirects {
			return errors.New("too many redirects")
		}
		return nil
	},
}

// FetchExternalRecipe retrieves an external page server-side so the
// browser can import recipes without tripping over CORS. Returns the
// body (capped), its content type, and the upstream status code.
func FetchExternalRecipe(rawURL string) ([]byte, string, int, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, "", 0, errors.New("invalid url")
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", 0, err
	}
	req.Header.Set("User-Agent", "KitchenPal/1.0 recipe importer")

	resp, err := proxyClient.Do(req)
	if err != nil {
		return nil, "", 0, fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, proxyMaxBodyBytes))
	if err != nil {
		return nil, "", 0, err
	}
	return body, resp.Header.Get("Content-Type"), resp.StatusCode, nil
}
