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

// PageScoreHandler scores a pre-crawled page snapshot posted by the caller.
// No fetching happens here; the audit handlers cover that path.
type PageScoreHandler struct {
	service *service.Analyzer
	log     *log.Logger
}

type PageScoreResponse struct {
	*models.AnalysisResult
	SEOFixes []string `json:"seo_fixes"`
	AIOFixes []string `json:"aio_fixes"`
}

func NewPageScoreHandler(service *service.Analyzer, log *log.Logger) *PageScoreHandler {
	return &PageScoreHandler{
		service: service,
		log:     log,
	}
}

func (h *PageScoreHandler) Handle(w http.ResponseWriter, r *http.Request) {

	h.log.Debug(`score page handler called`)

	var page models.PageInput
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		h.log.WithError(err).Error(`failed to decode request body`)
		sendError(w, `failed to decode request body`, err, http.StatusBadRequest)
		return
	}

	if page.URL == "" {
		err := errors.New("url is empty")
		h.log.WithError(err).Error(`failed to validate request body`)
		sendError(w, `failed to validate request body`, err, http.StatusBadRequest)
		return
	}

	result := scorePage(h.service, &page)

	response := PageScoreResponse{
		AnalysisResult: result,
		SEOFixes:       service.TopRecommendations(result.SEOBreakdown.AllItems(), service.DefaultRecommendationLimit),
		AIOFixes:       service.TopRecommendations(result.AIOBreakdown.AllItems(), service.DefaultRecommendationLimit),
	}

	w.Header().Set(`Content-Type`, `application/json`)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.WithError(err).Error(`failed to encode response`)
		return
	}
}

// scorePage runs the analyzer and records engine metrics for the page.
func scorePage(svc *service.Analyzer, page *models.PageInput) *models.AnalysisResult {
	start := time.Now()
	result := svc.AnalyzePage(page)

	metrics.PagesAnalyzedTotal.Inc()
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	metrics.ScoreDistribution.WithLabelValues("seo").Observe(float64(result.SEOScore))
	metrics.ScoreDistribution.WithLabelValues("aio").Observe(float64(result.AIOScore))
	metrics.ScoreDistribution.WithLabelValues("combined").Observe(float64(result.CombinedScore))
	return result
}
