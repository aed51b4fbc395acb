package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArticle(id, articleType string) *Article {
	return &Article{
		ID:       id,
		URL:      "https://www.ptt.cc/bbs/studyabroad/" + id + ".html",
		Title:    "[錄取] " + id,
		Author:   "poster",
		Content:  "Background: NTU CSIE",
		Date:     time.Date(2020, 3, 10, 2, 33, 10, 0, time.UTC),
		Type:     articleType,
		UniID:    "NTU",
		MaxGPA:   3.9,
		MinGPA:   3.7,
		MeanGPA:  3.8,
		GPAScale: 4.0,
	}
}

func TestSaveAndGetArticle(t *testing.T) {
	db, err := NewTestDB()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	a := testArticle("M.100", "ADMISSION")
	require.NoError(t, db.SaveArticlesBatch(ctx, []*Article{a}))

	got, err := db.GetArticleByID(ctx, "M.100")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, a.Type, got.Type)
	assert.Equal(t, a.UniID, got.UniID)
	assert.InDelta(t, 3.8, got.MeanGPA, 1e-9)
	assert.True(t, a.Date.Equal(got.Date))

	missing, err := db.GetArticleByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSaveArticlesBatchUpsert(t *testing.T) {
	db, err := NewTestDB()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	a := testArticle("M.1", "ADMISSION")
	require.NoError(t, db.SaveArticlesBatch(ctx, []*Article{a}))

	a.MeanGPA = 3.5
	require.NoError(t, db.SaveArticlesBatch(ctx, []*Article{a}))

	got, err := db.GetArticleByID(ctx, "M.1")
	require.NoError(t, err)
	assert.InDelta(t, 3.5, got.MeanGPA, 1e-9)

	counts, err := db.CountArticlesByType(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts["ADMISSION"])
}

func TestLoadProgramRows(t *testing.T) {
	db, err := NewTestDB()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	require.NoError(t, db.SaveArticlesBatch(ctx, []*Article{
		testArticle("M.1", "ADMISSION"),
		testArticle("M.2", "GENERAL_CS"),
	}))
	require.NoError(t, db.SaveAdmissionProgramsBatch(ctx, []*AdmissionProgram{
		{ArticleID: "M.1", Level: "MS", Name: "MSCS", Type: "CS", University: "Carnegie Mellon University"},
		{ArticleID: "M.1", Level: "MS", Name: "MSEE", Type: "EE", University: "Stanford University"},
		{ArticleID: "M.2", Level: "MS", Name: "MSCS", Type: "CS", University: "Cornell Tech"},
	}))

	all, err := db.LoadProgramRows(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	admissionOnly, err := db.LoadProgramRows(ctx, []string{"ADMISSION"}, nil)
	require.NoError(t, err)
	assert.Len(t, admissionOnly, 2)
	for _, r := range admissionOnly {
		assert.Equal(t, "M.1", r.ArticleID)
		assert.Equal(t, "NTU", r.UniID)
	}

	csOnly, err := db.LoadProgramRows(ctx, nil, []string{"CS"})
	require.NoError(t, err)
	assert.Len(t, csOnly, 2)
}

func TestSaveAdmissionDuplicatesIgnored(t *testing.T) {
	db, err := NewTestDB()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	require.NoError(t, db.SaveArticlesBatch(ctx, []*Article{testArticle("M.1", "ADMISSION")}))

	unis := []*AdmissionUniversity{
		{ArticleID: "M.1", University: "Cornell Tech"},
		{ArticleID: "M.1", University: "Cornell Tech"},
	}
	require.NoError(t, db.SaveAdmissionUniversitiesBatch(ctx, unis))

	// The third entry repeats (university, name) at another level; a
	// post admits to one program per school, so it is dropped too.
	programs := []*AdmissionProgram{
		{ArticleID: "M.1", Level: "MS", Name: "MSCS", Type: "CS", University: "Cornell Tech"},
		{ArticleID: "M.1", Level: "MS", Name: "MSCS", Type: "CS", University: "Cornell Tech"},
		{ArticleID: "M.1", Level: "PhD", Name: "MSCS", Type: "CS", University: "Cornell Tech"},
	}
	require.NoError(t, db.SaveAdmissionProgramsBatch(ctx, programs))

	rows, err := db.LoadProgramRows(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
