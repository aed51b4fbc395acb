package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvinbhou/ptt-studyabroad-api/internal/admission"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/background"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/logger"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/metrics"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/program"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/refdata"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/storage"
)

func TestMatchRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     MatchRequest
		wantErr bool
	}{
		{"Valid minimal", MatchRequest{GPA: 3.5}, false},
		{"Valid full", MatchRequest{GPA: 4.3, Level: "phd", ProgramTypes: []string{"cs", "EE"}}, false},
		{"GPA too high", MatchRequest{GPA: 4.4}, true},
		{"GPA negative", MatchRequest{GPA: -0.1}, true},
		{"Bad program level", MatchRequest{GPA: 3.0, Level: "bachelor"}, true},
		{"Bad program type", MatchRequest{GPA: 3.0, ProgramTypes: []string{"LAW"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func newTestHandler(t *testing.T) (*Handler, *storage.DB) {
	t.Helper()
	db, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tables := refdata.Load()
	programs := program.NewResolver(tables)
	return NewHandler(
		db,
		background.NewResolver(tables),
		admission.NewParser(tables, programs),
		programs,
		metrics.New(prometheus.NewRegistry()),
		logger.New("error"),
	), db
}

func TestBuildProfile(t *testing.T) {
	h, _ := newTestHandler(t)

	p := h.buildProfile(&MatchRequest{
		GPA:            3.8,
		University:     "台大",
		Major:          "資工",
		Level:          "phd",
		ProgramTypes:   []string{"cs"},
		TargetSchools:  []string{"CMU", "Hogwarts"},
		TargetPrograms: []string{"MHCI"},
	})

	assert.Equal(t, "NTU", p.UniID)
	assert.Equal(t, "CSIE", p.MajorID)
	assert.Equal(t, "CS", p.MajorType)
	assert.Equal(t, "PhD", p.Level)
	assert.Equal(t, []string{"CS", "HCI"}, p.ProgramTypes)
	assert.Equal(t, []string{"MHCI"}, p.Programs)
	assert.Equal(t, []string{"Carnegie Mellon University"}, p.Universities)
}

func seedCorpus(t *testing.T, db *storage.DB) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, db.SaveArticlesBatch(ctx, []*storage.Article{
		{
			ID: "M.1", URL: "u1", Title: "[錄取] CMU MSCS", Author: "a",
			Date: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), Type: "ADMISSION",
			UniID: "NTU", MajorID: "CSIE", MajorType: "CS",
			MaxGPA: 3.9, MinGPA: 3.7, MeanGPA: 3.8, GPAScale: 4.0,
		},
		{
			ID: "M.2", URL: "u2", Title: "[錄取] Gatech MSEE", Author: "b",
			Date: time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC), Type: "ADMISSION",
			UniID: "NCKU", MajorID: "EE", MajorType: "EE",
			MaxGPA: -1, MinGPA: -1, MeanGPA: -1, GPAScale: -1,
		},
	}))
	require.NoError(t, db.SaveAdmissionProgramsBatch(ctx, []*storage.AdmissionProgram{
		{ArticleID: "M.1", Level: "MS", Name: "MSCS", Type: "CS", University: "Carnegie Mellon University"},
		{ArticleID: "M.2", Level: "MS", Name: "MSEE", Type: "EE", University: "Georgia Institute of Technology"},
	}))
}

func doRequest(router *gin.Engine, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/admission", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRankAdmissionEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, db := newTestHandler(t)
	seedCorpus(t, db)

	router := gin.New()
	router.POST("/admission", h.RankAdmission)

	w := doRequest(router, MatchRequest{
		GPA:          3.8,
		University:   "台大",
		Major:        "資工",
		ProgramTypes: []string{"CS"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "M.1", resp.Results[0].ArticleID)
	assert.Greater(t, resp.Results[0].Score, 0.0)
	assert.Equal(t, []string{"Carnegie Mellon University"}, resp.Results[0].Universities)
	assert.Equal(t, []string{"MSCS"}, resp.Results[0].Programs)
}

func TestRankAdmissionEndpointValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/admission", h.RankAdmission)

	w := doRequest(router, MatchRequest{GPA: 9.9})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/admission", bytes.NewReader([]byte("not json")))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRankAdmissionEmptyCorpus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newTestHandler(t)

	router := gin.New()
	router.POST("/admission", h.RankAdmission)

	w := doRequest(router, MatchRequest{GPA: 3.5})
	require.Equal(t, http.StatusOK, w.Code)

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Results)
}
