package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Arjun0606/cabbageseo-sub008/internal/domain/models"
	"github.com/Arjun0606/cabbageseo-sub008/internal/pkg/errors"
	"github.com/Arjun0606/cabbageseo-sub008/internal/pkg/metrics"
	"github.com/Arjun0606/cabbageseo-sub008/internal/service"

	log "github.com/sirupsen/logrus"
)

// SiteScoreHandler aggregates scores over a batch of pre-crawled snapshots.
// An empty batch is valid and returns a zeroed aggregate.
type SiteScoreHandler struct {
	service *service.Analyzer
	log     *log.Logger
}

type SiteScoreRequest struct {
	Pages []*models.PageInput `json:"pages"`
}

func NewSiteScoreHandler(service *service.Analyzer, log *log.Logger) *SiteScoreHandler {
	return &SiteScoreHandler{
		service: service,
		log:     log,
	}
}

func (h *SiteScoreHandler) Handle(w http.ResponseWriter, r *http.Request) {

	h.log.Debug(`score site handler called`)

	var request SiteScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.log.WithError(err).Error(`failed to decode request body`)
		sendError(w, `failed to decode request body`, err, http.StatusBadRequest)
		return
	}

	for _, p := range request.Pages {
		if p == nil || p.URL == "" {
			err := errors.New("every page needs a url")
			h.log.WithError(err).Error(`failed to validate request body`)
			sendError(w, `failed to validate request body`, err, http.StatusBadRequest)
			return
		}
	}

	start := time.Now()
	result := h.service.AnalyzeSite(request.Pages)

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
