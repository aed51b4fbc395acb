// Package app holds the HTTP handlers of the matching API.
package app

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alvinbhou/ptt-studyabroad-api/internal/admission"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/background"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/classify"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/errors"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/logger"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/metrics"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/program"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/scoring"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/storage"
)

// resultLimit caps how many ranked articles a response carries before
// low scorers are trimmed.
const resultLimit = 100

// Handler serves the ranking endpoints.
type Handler struct {
	db         *storage.DB
	background *background.Resolver
	admission  *admission.Parser
	programs   *program.Resolver
	metrics    *metrics.Metrics
	log        *logger.Logger
}

// NewHandler creates the API handler. The admission parser and program
// resolver serve request-side resolution of target schools and
// programs.
func NewHandler(db *storage.DB, bg *background.Resolver, adm *admission.Parser, progs *program.Resolver, m *metrics.Metrics, log *logger.Logger) *Handler {
	return &Handler{
		db:         db,
		background: bg,
		admission:  adm,
		programs:   progs,
		metrics:    m,
		log:        log.WithModule("api"),
	}
}

// MatchResponse is the ranked result list of one query.
type MatchResponse struct {
	Count   int                     `json:"count"`
	Results []scoring.RankedArticle `json:"results"`
}

// RankAdmission handles POST /admission: rank admission reports by
// background similarity to the applicant.
func (h *Handler) RankAdmission(c *gin.Context) {
	h.rank(c, "admission", scoring.RankSimilar)
}

// RankSchoolChoice handles POST /school-choice: rank admission reports
// by coverage of the applicant's wanted programs and universities.
func (h *Handler) RankSchoolChoice(c *gin.Context) {
	h.rank(c, "school_choice", scoring.RankTargetSchools)
}

func (h *Handler) rank(c *gin.Context, endpoint string, rankFn func([]storage.ProgramRow, scoring.Profile) []scoring.RankedArticle) {
	start := time.Now()

	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.clientError(c, endpoint, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		var msg string
		if verr, ok := err.(*errors.ValidationError); ok {
			msg = verr.Error()
		} else {
			msg = "invalid request"
		}
		h.clientError(c, endpoint, http.StatusUnprocessableEntity, msg)
		return
	}

	profile := h.buildProfile(&req)

	rows, err := h.db.LoadProgramRows(c.Request.Context(),
		[]string{string(classify.TypeAdmission)}, nil)
	if err != nil {
		h.log.WithError(err).Error("failed to load scoring corpus")
		h.metrics.HTTPErrorsTotal.WithLabelValues(endpoint, "500").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	results := scoring.Trim(rankFn(rows, profile), resultLimit)
	if results == nil {
		results = []scoring.RankedArticle{}
	}

	duration := time.Since(start)
	h.metrics.QueryDurationSeconds.WithLabelValues(endpoint).Observe(duration.Seconds())
	h.metrics.QueryResultsReturned.WithLabelValues(endpoint).Observe(float64(len(results)))
	h.log.Info("query served",
		"endpoint", endpoint,
		"results", len(results),
		"duration_ms", duration.Milliseconds())

	c.JSON(http.StatusOK, MatchResponse{Count: len(results), Results: results})
}

func (h *Handler) clientError(c *gin.Context, endpoint string, status int, msg string) {
	h.metrics.HTTPErrorsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	c.JSON(status, gin.H{"error": msg})
}

// majorAnchor adapts a resolved university token into the anchor the
// major resolver keys its token window on.
func majorAnchor(word string) *background.UniversityMatch {
	if word == "" {
		return nil
	}
	return &background.UniversityMatch{MatchedWord: word}
}
