package crawl

import (
	"context"
	"time"
)

// DefaultRetryDelays returns the backoff delays used between fetch
// attempts: 1s, 2s, 4s. The portal times out or serves 5xx under load,
// and a failed fetch usually succeeds on a later attempt.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetchWithRetry fetches url, retrying once per backoff delay. One delay
// means two attempts. A canceled context aborts between attempts.
func fetchWithRetry(ctx context.Context, url string, fetch func(ctx context.Context, url string) (string, error), delays []time.Duration) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt == len(delays) {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
	return "", lastErr
}
