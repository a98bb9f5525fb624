package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Arjun0606/cabbageseo-sub008/internal/adaptors"
	domain "github.com/Arjun0606/cabbageseo-sub008/internal/domain/adaptors"
	"github.com/Arjun0606/cabbageseo-sub008/internal/domain/models"
	"github.com/Arjun0606/cabbageseo-sub008/internal/pkg/errors"
	"github.com/Arjun0606/cabbageseo-sub008/internal/pkg/metrics"
	"github.com/Arjun0606/cabbageseo-sub008/internal/pkg/worker_pool"
	"github.com/Arjun0606/cabbageseo-sub008/internal/service"

	log "github.com/sirupsen/logrus"
)

const maxSiteAuditURLs = 50

// SiteAuditHandler fetches a list of live pages through a bounded worker
// pool, then aggregates their scores. A URL whose fetch fails is still
// scored, from an empty snapshot, so one dead page cannot sink the batch.
type SiteAuditHandler struct {
	service *service.Analyzer
	client  domain.WebClient
	workers int
	log     *log.Logger
}

type SiteAuditRequest struct {
	URLs []string `json:"urls"`
}

func (r *SiteAuditRequest) Validate() error {

	if len(r.URLs) == 0 {
		return errors.New("urls is empty")
	}
	if len(r.URLs) > maxSiteAuditURLs {
		return errors.Errorf("too many urls: %d exceeds limit of %d", len(r.URLs), maxSiteAuditURLs)
	}

	for _, u := range r.URLs {
		parsed, err := url.Parse(u)
		if err != nil {
			return errors.Wrap(err, `failed to parse url`)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return errors.Errorf("url is invalid: %s", u)
		}
	}

	return nil
}

func NewSiteAuditHandler(service *service.Analyzer, client domain.WebClient, workers int, log *log.Logger) *SiteAuditHandler {
	return &SiteAuditHandler{
		service: service,
		client:  client,
		workers: workers,
		log:     log,
	}
}

func (h *SiteAuditHandler) Handle(w http.ResponseWriter, r *http.Request) {

	h.log.Debug(`audit site handler called`)

	var request SiteAuditRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.log.WithError(err).Error(`failed to decode request body`)
		sendError(w, `failed to decode request body`, err, http.StatusBadRequest)
		return
	}

	if err := request.Validate(); err != nil {
		h.log.WithError(err).Error(`failed to validate request body`)
		sendError(w, `failed to validate request body`, err, http.StatusBadRequest)
		return
	}

	pages := h.fetchAll(r.Context(), request.URLs)

	start := time.Now()
	result := h.service.AnalyzeSite(pages)

	for _, page := range result.Pages {
		metrics.PagesAnalyzedTotal.Inc()
		metrics.ScoreDistribution.WithLabelValues("seo").Observe(float64(page.SEOScore))
		metrics.ScoreDistribution.WithLabelValues("aio").Observe(float64(page.AIOScore))
		metrics.ScoreDistribution.WithLabelValues("combined").Observe(float64(page.CombinedScore))
	}
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	w.Header().Set(`Content-Type`, `application/json`)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.log.WithError(err).Error(`failed to encode response`)
		return
	}
}

type fetchedPage struct {
	index int
	page  *models.PageInput
}

// fetchAll fans the URLs out over the worker pool and reassembles the
// snapshots in request order.
func (h *SiteAuditHandler) fetchAll(ctx context.Context, urls []string) []*models.PageInput {
	pool := worker_pool.NewWorkerPool(ctx, h.workers, false, h.log)
	defer pool.Stop()

	go func() {
		for i, u := range urls {
			err := pool.Submit(strconv.Itoa(i), h.fetchTask(i, u))
			if err != nil {
				h.log.WithError(err).Warnf(`fetch task %d not submitted`, i)
			}
		}
	}()

	pages := make([]*models.PageInput, len(urls))
	for range urls {
		res, ok := <-pool.ResultsCh
		if !ok {
			break
		}
		fetched, ok := res.Result.(fetchedPage)
		if !ok {
			continue
		}
		pages[fetched.index] = fetched.page
	}

	// Unsubmitted slots (pool canceled mid-batch) still need a snapshot.
	for i, p := range pages {
		if p == nil {
			pages[i] = &models.PageInput{URL: urls[i]}
		}
	}
	return pages
}

func (h *SiteAuditHandler) fetchTask(index int, pageURL string) worker_pool.TaskFunc {
	return func(ctx context.Context) (any, error) {
		body, statusCode, elapsed, err := h.client.Do(ctx, pageURL, http.MethodGet)
		if err != nil || statusCode >= 400 {
			h.log.WithField(`url`, pageURL).Warn(`fetch failed, scoring empty snapshot`)
			return fetchedPage{index: index, page: &models.PageInput{URL: pageURL}}, nil
		}
		return fetchedPage{index: index, page: adaptors.BuildPageInput(pageURL, body, elapsed)}, nil
	}
}
