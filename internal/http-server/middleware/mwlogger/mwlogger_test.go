package mwlogger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"synergy/internal/lib/logger/handlers/slogdiscard"
	"synergy/internal/lib/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLoggerCountsRequests(t *testing.T) {
	router := chi.NewRouter()
	router.Use(New(slogdiscard.NewDiscardLogger()))
	router.Get("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	router.Get("/silent", func(w http.ResponseWriter, r *http.Request) {})

	teapots := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "418")
	oks := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "200")
	beforeTeapot := testutil.ToFloat64(teapots)
	beforeOK := testutil.ToFloat64(oks)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/teapot", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/silent", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, beforeTeapot+1, testutil.ToFloat64(teapots))
	assert.Equal(t, beforeOK+1, testutil.ToFloat64(oks))
}
