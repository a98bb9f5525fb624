package adaptors

import (
	"context"
	"time"
)

// WebClient is the fetch side of an audit: it retrieves a page body and the
// elapsed fetch time so the performance rules have something to band on.
type WebClient interface {
	Do(ctx context.Context, url string, method string) ([]byte, int, time.Duration, error)
}
