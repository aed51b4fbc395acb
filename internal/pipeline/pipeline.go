// Package pipeline runs the full ingest flow: load the crawled
// articles dump, classify each post, extract background and admission
// entities, and persist the result.
package pipeline

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alvinbhou/ptt-studyabroad-api/internal/admission"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/background"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/classify"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/logger"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/metrics"
	"github.com/alvinbhou/ptt-studyabroad-api/internal/storage"
)

// Pipeline wires the extractors to the store.
type Pipeline struct {
	db         *storage.DB
	background *background.Resolver
	admission  *admission.Parser
	metrics    *metrics.Metrics
	log        *logger.Logger
	workers    int
}

// New creates a pipeline with the given worker bound.
func New(db *storage.DB, bg *background.Resolver, adm *admission.Parser, m *metrics.Metrics, log *logger.Logger, workers int) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		db:         db,
		background: bg,
		admission:  adm,
		metrics:    m,
		log:        log.WithModule("pipeline"),
		workers:    workers,
	}
}

// result is the fully extracted form of one post.
type result struct {
	article      *storage.Article
	universities []*storage.AdmissionUniversity
	programs     []*storage.AdmissionProgram
}

// Run ingests one articles dump end to end. Extraction fans out over
// the worker bound; persistence happens in three batched writes once
// every post is processed.
func (p *Pipeline) Run(ctx context.Context, articlesPath string) error {
	start := time.Now()

	raw, skipped, err := LoadArticles(articlesPath)
	if err != nil {
		return err
	}
	if skipped > 0 {
		p.metrics.ArticlesSkippedTotal.WithLabelValues("duplicate").Add(float64(skipped))
	}
	p.log.Info("articles loaded", "count", len(raw), "skipped", skipped)

	var (
		mu      sync.Mutex
		results []result
	)

	// The group context is for workers only; it is canceled once Wait
	// returns and must not leak into the persistence writes below.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for _, a := range raw {
		a := a
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res := p.process(a)
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var (
		articles     []*storage.Article
		universities []*storage.AdmissionUniversity
		programs     []*storage.AdmissionProgram
	)
	for _, res := range results {
		articles = append(articles, res.article)
		universities = append(universities, res.universities...)
		programs = append(programs, res.programs...)
		p.metrics.ArticlesIngestedTotal.WithLabelValues(res.article.Type).Inc()
	}

	if err := p.db.SaveArticlesBatch(ctx, articles); err != nil {
		return err
	}
	if err := p.db.SaveAdmissionUniversitiesBatch(ctx, universities); err != nil {
		return err
	}
	if err := p.db.SaveAdmissionProgramsBatch(ctx, programs); err != nil {
		return err
	}

	duration := time.Since(start)
	p.metrics.PipelineDuration.Observe(duration.Seconds())
	p.log.Info("ingest finished",
		"articles", len(articles),
		"admission_universities", len(universities),
		"admission_programs", len(programs),
		"duration_ms", duration.Milliseconds())
	return nil
}

// process classifies one post and runs the extractors its type calls
// for. Posts typed ALL are stored without extraction.
func (p *Pipeline) process(raw RawArticle) result {
	article := &storage.Article{
		ID:       raw.ArticleID,
		URL:      raw.URL,
		Title:    raw.Title,
		Author:   raw.Author,
		Content:  raw.Content,
		Date:     ParseDate(raw.Date),
		Type:     string(classify.Classify(raw.Title)),
		MaxGPA:   -1,
		MinGPA:   -1,
		MeanGPA:  -1,
		GPAScale: -1,
	}
	res := result{article: article}

	if article.Type == string(classify.TypeAll) {
		return res
	}

	p.extractBackground(article, raw.Content)

	if article.Type == string(classify.TypeAdmission) {
		p.extractAdmission(&res, raw)
	}
	return res
}

func (p *Pipeline) extractBackground(article *storage.Article, content string) {
	match := p.background.FindUniversity(content)
	if match == nil {
		p.metrics.ExtractionMissesTotal.WithLabelValues("university").Inc()
		return
	}
	p.metrics.ExtractionHitsTotal.WithLabelValues("university").Inc()
	article.UniID = match.UniID

	if major := p.background.FindMajor(content, match); major != "" {
		article.MajorID = major
		article.MajorType = p.background.MajorType(major)
		p.metrics.ExtractionHitsTotal.WithLabelValues("major").Inc()
	} else {
		p.metrics.ExtractionMissesTotal.WithLabelValues("major").Inc()
	}

	stats := p.background.FindGPA(content, match)
	article.MaxGPA = stats.Max
	article.MinGPA = stats.Min
	article.MeanGPA = stats.Mean
	article.GPAScale = stats.Scale
	if stats.Unknown() {
		p.metrics.ExtractionMissesTotal.WithLabelValues("gpa").Inc()
	} else {
		p.metrics.ExtractionHitsTotal.WithLabelValues("gpa").Inc()
	}
}

func (p *Pipeline) extractAdmission(res *result, raw RawArticle) {
	sec := p.admission.ParseSection(raw.Title, raw.Content)
	outcome := p.admission.Resolve(sec)
	if len(outcome.Universities) == 0 {
		p.metrics.ExtractionMissesTotal.WithLabelValues("admission").Inc()
		return
	}
	p.metrics.ExtractionHitsTotal.WithLabelValues("admission").Inc()

	for _, uni := range outcome.Universities {
		res.universities = append(res.universities, &storage.AdmissionUniversity{
			ArticleID:  raw.ArticleID,
			University: uni,
		})
	}
	for _, pair := range outcome.Pairs {
		// Names store in canonical short form; the type resolves off the
		// raw vocabulary token before normalization.
		typ := "N/A"
		if pair.Name != "" {
			typ = p.admission.ProgramType(pair.Name)
		}
		res.programs = append(res.programs, &storage.AdmissionProgram{
			ArticleID:  raw.ArticleID,
			Level:      pair.Level,
			Name:       p.admission.NormalizeProgram(pair.Level, pair.Name),
			Type:       typ,
			University: pair.University,
		})
	}
}
