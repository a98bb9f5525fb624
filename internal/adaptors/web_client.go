package adaptors

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/Arjun0606/cabbageseo-sub008/internal/pkg/errors"
	"github.com/Arjun0606/cabbageseo-sub008/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// WebClient fetches pages for audit requests. Every audit needs the elapsed
// fetch time because the performance rules band on it, so Do reports the
// duration alongside the body.
type WebClient struct {
	client *http.Client
	log    *log.Logger
}

func NewWebClient(timeout time.Duration, log *log.Logger) *WebClient {
	rTripper := promhttp.InstrumentRoundTripperDuration(
		metrics.HTTPClientRequestDuration,
		promhttp.InstrumentRoundTripperCounter(metrics.HTTPClientRequestsTotal, http.DefaultTransport))

	return &WebClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: rTripper,
		},
		log: log,
	}
}

// Do fetches url and returns the body, HTTP status and elapsed wall time.
func (w *WebClient) Do(ctx context.Context, url string, method string) ([]byte, int, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		w.log.WithError(err).Error(`failed to create request`)
		return nil, 0, 0, errors.Wrap(err, `failed to create request`)
	}

	req.Header.Set("User-Agent", "CabbageSEO-Audit/1.0")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	start := time.Now()
	resp, err := w.client.Do(req)
	if err != nil {
		w.log.WithError(err).Error(`failed to fetch url`)
		return nil, 0, 0, errors.Wrap(err, `failed to fetch url`)
	}
	defer resp.Body.Close()

	bodyByte, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		w.log.Errorf(`failed to read response body. error: %v`, err)
		return nil, 0, 0, errors.Wrap(err, `failed to read response body`)
	}

	return bodyByte, resp.StatusCode, elapsed, nil
}
