package main

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aria-lang/biopm/api/handlers"
	"github.com/aria-lang/biopm/api/middleware"
	"github.com/aria-lang/biopm/internal/analysis"
	"github.com/aria-lang/biopm/internal/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter(t *testing.T) {
	var logs bytes.Buffer
	h := handlers.New(analysis.NewAnalyzer(nil, status.Classifier{}), true)
	srv := httptest.NewServer(newRouter(h, middleware.RequestLogger(log.New(&logs, "", 0))))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))

	resp, err = http.Post(srv.URL+"/api/analyze", "application/json",
		strings.NewReader(`{"query": "ATGGCT", "reference": "ATGGCC"}`))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"Conserved"`)

	resp, err = http.Get(srv.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "text/html", resp.Header.Get("Content-Type"))

	assert.Contains(t, logs.String(), "POST /api/analyze 200")
}
