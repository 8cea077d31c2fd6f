// Package fonts warms the page's font stylesheet.
package fonts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// StylesheetURL is the stylesheet the page declares.
const StylesheetURL = "https://fonts.googleapis.com/css2?family=EB+Garamond:ital,wght@0,400;0,500;0,600;0,700;1,400;1,500&family=IBM+Plex+Sans:wght@300;400;500;600;700&family=JetBrains+Mono:wght@300;400;500&display=swap"

// DefaultTimeout bounds a prefetch when the caller sets none.
const DefaultTimeout = 5 * time.Second

// Prefetch issues one GET for url and discards the body. It never returns
// an error: failures are logged at debug and dropped.
func Prefetch(ctx context.Context, client *http.Client, url string, logger zerolog.Logger) {
	if url == "" {
		return
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	start := time.Now()
	n, err := fetch(ctx, client, url)
	if err != nil {
		logger.Debug().Err(err).Str("url", url).Msg("font prefetch failed")
		return
	}
	logger.Debug().
		Str("url", url).
		Int64("bytes", n).
		Dur("elapsed", time.Since(start)).
		Msg("font stylesheet prefetched")
}

// Start runs Prefetch on its own goroutine. The returned channel closes
// when the prefetch finishes.
func Start(ctx context.Context, client *http.Client, url string, logger zerolog.Logger) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		Prefetch(ctx, client, url, logger)
	}()
	return done
}

func fetch(ctx context.Context, client *http.Client, url string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "text/css,*/*;q=0.1")

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	n, err := io.Copy(io.Discard, resp.Body)
	if err != nil {
		return n, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return n, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return n, nil
}
