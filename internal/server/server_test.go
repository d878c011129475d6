// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/market-scout/internal/report"
	"github.com/pdiddy/market-scout/pkg/types"
)

type fakeResearcher struct {
	rep types.Report
	err error
}

func (f *fakeResearcher) Run(_ context.Context, _ string) (types.Report, error) {
	return f.rep, f.err
}

func sampleReport() types.Report {
	return types.Report{
		Overview: "Acme Corp builds rockets.",
		Usecases: types.UseCaseList{UseCases: []types.UseCase{
			{Title: "Demand Forecasting", Explanation: "e", PracticalApplication: []string{}},
		}},
		Resources: types.ResourceCollection{UseCaseResources: []types.ResourceBundle{
			{Title: "Demand Forecasting", Resources: types.ResourceSet{
				HuggingFaceModels: []types.ResourceItem{types.FoundResource("m1", "http://x")},
			}},
		}},
	}
}

func newTestServer(t *testing.T, researcher Researcher) (*Server, *report.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := report.NewStore(types.StoreConfig{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return New(researcher, store, types.ServerConfig{MaxQueryLen: 200}, "", nil), store
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestResearchReturnsAndPersistsReport(t *testing.T) {
	s, store := newTestServer(t, &fakeResearcher{rep: sampleReport()})

	w := doRequest(s, http.MethodPost, "/research", `{"query": "Acme"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got types.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, sampleReport(), got)
	assert.NotEmpty(t, w.Header().Get("X-Report-ID"))

	rec, err := store.Latest()
	require.NoError(t, err)
	assert.Equal(t, "Acme", rec.Query)
}

func TestResearchRejectsBadQueries(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"missing query", `{}`},
		{"blank query", `{"query": "   "}`},
		{"oversized query", `{"query": "` + strings.Repeat("x", 300) + `"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t, &fakeResearcher{rep: sampleReport()})
			w := doRequest(s, http.MethodPost, "/research", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestResearchMapsAIFailureTo502(t *testing.T) {
	s, _ := newTestServer(t, &fakeResearcher{
		err: &types.SummarizationError{Err: context.DeadlineExceeded},
	})

	w := doRequest(s, http.MethodPost, "/research", `{"query": "Acme"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestLatestBeforeAnyRunIs404(t *testing.T) {
	s, _ := newTestServer(t, &fakeResearcher{})

	assert.Equal(t, http.StatusNotFound, doRequest(s, http.MethodGet, "/report", "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(s, http.MethodGet, "/report/download", "").Code)
}

func TestLatestReturnsStoredBody(t *testing.T) {
	s, store := newTestServer(t, &fakeResearcher{})
	_, err := store.Save(sampleReport(), "Acme")
	require.NoError(t, err)

	w := doRequest(s, http.MethodGet, "/report", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got types.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, sampleReport(), got)
}

func TestGetByID(t *testing.T) {
	s, store := newTestServer(t, &fakeResearcher{})
	id, err := store.Save(sampleReport(), "Acme")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(s, http.MethodGet, "/reports/"+id, "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(s, http.MethodGet, "/reports/unknown", "").Code)
}

func TestDownloadStreamsPDFAttachment(t *testing.T) {
	s, store := newTestServer(t, &fakeResearcher{})
	_, err := store.Save(sampleReport(), "Acme")
	require.NoError(t, err)

	w := doRequest(s, http.MethodGet, "/report/download", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Acme_Corp_Research_Report.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"), "body should be a PDF document")
}

func TestDownloadMarkdownFormat(t *testing.T) {
	s, store := newTestServer(t, &fakeResearcher{})
	_, err := store.Save(sampleReport(), "Acme")
	require.NoError(t, err)

	w := doRequest(s, http.MethodGet, "/report/download?format=markdown", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, w.Header().Get("Content-Disposition"), "Acme_Corp_Research_Report.md")
	assert.Contains(t, w.Body.String(), "# Acme Corp Research Report")
	assert.Contains(t, w.Body.String(), "[m1](http://x)")
}
