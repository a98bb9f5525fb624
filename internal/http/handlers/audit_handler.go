package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/Arjun0606/cabbageseo-sub008/internal/adaptors"
	domain "github.com/Arjun0606/cabbageseo-sub008/internal/domain/adaptors"
	"github.com/Arjun0606/cabbageseo-sub008/internal/pkg/errors"
	"github.com/Arjun0606/cabbageseo-sub008/internal/service"

	log "github.com/sirupsen/logrus"
)

// AuditHandler fetches one live page, snapshots it and scores the snapshot.
type AuditHandler struct {
	service *service.Analyzer
	client  domain.WebClient
	log     *log.Logger
}

type AuditRequest struct {
	URL string `json:"url"`
}

func (r *AuditRequest) Validate() error {

	if r.URL == "" {
		return errors.New("url is empty")
	}

	baseURL, err := url.Parse(r.URL)
	if err != nil {
		return errors.Wrap(err, `failed to parse url`)
	}

	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return errors.New("url is invalid")
	}

	return nil
}

func NewAuditHandler(service *service.Analyzer, client domain.WebClient, log *log.Logger) *AuditHandler {
	return &AuditHandler{
		service: service,
		client:  client,
		log:     log,
	}
}

func (h *AuditHandler) Handle(w http.ResponseWriter, r *http.Request) {

	h.log.Debug(`audit page handler called`)

	var request AuditRequest
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

	body, statusCode, elapsed, err := h.client.Do(r.Context(), request.URL, http.MethodGet)
	if err != nil {
		sendError(w, `failed to fetch page`, err, http.StatusBadGateway)
		return
	}
	if statusCode >= 400 {
		sendError(w, `page returned error status`, errors.Errorf("upstream status %d", statusCode), http.StatusBadGateway)
		return
	}

	page := adaptors.BuildPageInput(request.URL, body, elapsed)
	result := scorePage(h.service, page)

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
