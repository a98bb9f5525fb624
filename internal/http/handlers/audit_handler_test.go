package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Arjun0606/cabbageseo-sub008/internal/domain/models"
	"github.com/Arjun0606/cabbageseo-sub008/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockWebClient is a mock implementation of the WebClient interface
type MockWebClient struct {
	mock.Mock
}

func (m *MockWebClient) Do(ctx context.Context, url string, method string) ([]byte, int, time.Duration, error) {
	args := m.Called(ctx, url, method)
	return args.Get(0).([]byte), args.Int(1), args.Get(2).(time.Duration), args.Error(3)
}

const auditFixture = `<!DOCTYPE html>
<html lang="en"><head>
<title>A title tag sized comfortably inside the band here</title>
<meta name="description" content="Long enough to land inside the optimal meta description band, which takes a bit of deliberate padding to reach comfortably.">
<meta name="viewport" content="width=device-width, initial-scale=1">
</head><body>
<h1>A Title Tag Heading</h1>
<p>Body text for the audit fixture page.</p>
</body></html>`

func TestAuditHandler(t *testing.T) {
	logger := testLogger()
	mockClient := new(MockWebClient)
	handler := NewAuditHandler(service.NewAnalyzer(logger), mockClient, logger)

	const testURL = "https://example.com"
	mockClient.On("Do", mock.Anything, testURL, http.MethodGet).
		Return([]byte(auditFixture), http.StatusOK, 420*time.Millisecond, nil)

	req := httptest.NewRequest(http.MethodPost, "/audit", strings.NewReader(`{"url":"https://example.com"}`))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response PageScoreResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, testURL, response.URL)
	assert.Greater(t, response.SEOScore, 0)
	assert.True(t, response.PageInfo.HasH1)
	assert.True(t, response.PageInfo.HasMetaDescription)

	mockClient.AssertExpectations(t)
}

func TestAuditHandlerValidation(t *testing.T) {
	logger := testLogger()
	handler := NewAuditHandler(service.NewAnalyzer(logger), new(MockWebClient), logger)

	cases := []struct {
		name string
		body string
	}{
		{"empty url", `{"url":""}`},
		{"bad scheme", `{"url":"ftp://example.com"}`},
		{"not json", `nope`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/audit", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAuditHandlerFetchFailure(t *testing.T) {
	logger := testLogger()
	mockClient := new(MockWebClient)
	handler := NewAuditHandler(service.NewAnalyzer(logger), mockClient, logger)

	mockClient.On("Do", mock.Anything, "https://down.example.com", http.MethodGet).
		Return([]byte(nil), 0, time.Duration(0), assert.AnError)

	req := httptest.NewRequest(http.MethodPost, "/audit", strings.NewReader(`{"url":"https://down.example.com"}`))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestAuditHandlerUpstreamErrorStatus(t *testing.T) {
	logger := testLogger()
	mockClient := new(MockWebClient)
	handler := NewAuditHandler(service.NewAnalyzer(logger), mockClient, logger)

	mockClient.On("Do", mock.Anything, "https://example.com/missing", http.MethodGet).
		Return([]byte("not found"), http.StatusNotFound, 10*time.Millisecond, nil)

	req := httptest.NewRequest(http.MethodPost, "/audit", strings.NewReader(`{"url":"https://example.com/missing"}`))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSiteAuditHandler(t *testing.T) {
	logger := testLogger()
	mockClient := new(MockWebClient)
	handler := NewSiteAuditHandler(service.NewAnalyzer(logger), mockClient, 2, logger)

	mockClient.On("Do", mock.Anything, "https://example.com/a", http.MethodGet).
		Return([]byte(auditFixture), http.StatusOK, 300*time.Millisecond, nil)
	mockClient.On("Do", mock.Anything, "https://example.com/b", http.MethodGet).
		Return([]byte(nil), 0, time.Duration(0), assert.AnError)

	req := httptest.NewRequest(http.MethodPost, "/audit/site",
		strings.NewReader(`{"urls":["https://example.com/a","https://example.com/b"]}`))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.SiteAnalysisResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.Equal(t, 2, response.PagesAnalyzed)
	require.Len(t, response.Pages, 2)

	// Request order survives the fan-out; the dead page scores from an
	// empty snapshot instead of failing the batch.
	assert.Equal(t, "https://example.com/a", response.Pages[0].URL)
	assert.Equal(t, "https://example.com/b", response.Pages[1].URL)
	assert.Greater(t, response.Pages[0].SEOScore, response.Pages[1].SEOScore)

	mockClient.AssertExpectations(t)
}

func TestSiteAuditHandlerValidation(t *testing.T) {
	logger := testLogger()
	handler := NewSiteAuditHandler(service.NewAnalyzer(logger), new(MockWebClient), 2, logger)

	cases := []struct {
		name string
		body string
	}{
		{"empty list", `{"urls":[]}`},
		{"bad scheme", `{"urls":["ftp://example.com"]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/audit/site", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
