package screening

import (
	"context"
	"sort"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hiresmart-ai/hiresmart/internal/ai"
)

// TextExtractor is the black-box contract to the excluded extraction
// layer: it returns the best-effort plain text of a source document or
// an error when no text could be obtained. The runner never inspects
// file formats itself.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

// Runner executes screening batches: extraction, content dedup,
// parallel scoring, enrichment, sorting and identity dedup.
type Runner struct {
	cfg       Config
	logger    *zap.Logger
	extractor TextExtractor
	enricher  ai.Enricher
}

// NewRunner builds a Runner. The enricher may be nil, in which case
// every candidate gets the templated local summary.
func NewRunner(cfg Config, logger *zap.Logger, extractor TextExtractor, enricher ai.Enricher) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cfg:       cfg.sanitize(),
		logger:    logger,
		extractor: extractor,
		enricher:  enricher,
	}
}

// RunBatch screens the given files against the job context and returns
// the ranked, deduplicated results. Per-document failures degrade to
// placeholder results; only aggregate-level problems (no job
// description, no files) fail the run before it starts.
func (r *Runner) RunBatch(ctx context.Context, files []string, job *JobContext) (*BatchResult, error) {
	if job == nil || job.Description == "" {
		return nil, ErrNoJobDescription
	}
	if len(files) == 0 {
		return nil, ErrNoInputFiles
	}

	// Extraction and content dedup run sequentially before any scoring
	// task is dispatched: extraction is cheap, and first arrival must
	// win content-duplicate ties.
	deduper := NewContentDeduper()
	docs := make([]*ResumeDocument, 0, len(files))
	contentSkipped := 0

	for _, file := range files {
		text, err := r.extractor.ExtractText(ctx, file)
		doc := NewResumeDocument(file, text, err)
		if err != nil {
			r.logger.Warn("text extraction failed",
				zap.String("file", file),
				zap.Error(err),
			)
			docs = append(docs, doc)
			continue
		}

		if deduper.CheckAndAdd(doc.Fingerprint) {
			contentSkipped++
			r.logger.Info("skipping content duplicate",
				zap.String("file", file),
			)
			continue
		}
		docs = append(docs, doc)
	}

	r.logger.Info("content dedup pass",
		zap.Int("initial", len(files)),
		zap.Int("dropped", contentSkipped),
		zap.Int("left", len(docs)),
	)

	results := r.scoreAll(ctx, docs, job)

	// Completion order of the workers must not leak into the output.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].FitScore != results[j].FitScore {
			return results[i].FitScore > results[j].FitScore
		}
		return results[i].FileName < results[j].FileName
	})

	final, nameStats := DedupeByName(results, r.cfg.NameMatchThreshold)
	r.logger.Info("identity dedup pass",
		zap.Int("initial", nameStats.Initial),
		zap.Int("dropped", nameStats.Dropped),
		zap.Int("left", nameStats.Left),
	)

	batch := &BatchResult{
		Results:           final,
		TotalFiles:        len(files),
		UniqueAnalyzed:    len(final),
		DuplicatesSkipped: contentSkipped + nameStats.Dropped,
	}

	for verdict, count := range batch.CountByVerdict() {
		r.logger.Info("verdict tier", zap.String("verdict", verdict), zap.Int("count", count))
	}

	return batch, nil
}

// scoreAll dispatches scoring tasks to a bounded worker pool. Each task
// is pure computation plus at most one blocking enrichment call; the
// pool stays small to respect the enrichment API's rate limits.
func (r *Runner) scoreAll(ctx context.Context, docs []*ResumeDocument, job *JobContext) []*CandidateResult {
	workers := r.cfg.MaxWorkers
	if len(docs) < workers {
		workers = len(docs)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]*CandidateResult, len(docs))
	var completed atomic.Int64

	g := &errgroup.Group{}
	g.SetLimit(workers)

	for i, doc := range docs {
		g.Go(func() error {
			results[i] = r.scoreOne(ctx, doc, job)
			r.logger.Debug("scored resume",
				zap.String("file", doc.FileName),
				zap.Int("fit_score", results[i].FitScore),
				zap.Int64("completed", completed.Add(1)),
				zap.Int("total", len(docs)),
			)
			return nil
		})
	}

	// Workers never return errors; per-document failures degrade to
	// placeholder results instead of aborting the batch.
	_ = g.Wait()

	return results
}

func (r *Runner) scoreOne(ctx context.Context, doc *ResumeDocument, job *JobContext) *CandidateResult {
	result := Evaluate(doc, job, r.cfg)
	if doc.ExtractErr != nil {
		return result
	}

	result.CandidateName = ResolveName(doc.FileName, doc.Text)

	degenerate := result.Recommendation == RecommendJDSubmission
	r.enrich(ctx, doc, job, result, degenerate)

	if result.Summary == "" {
		result.Summary = TemplatedSummary(result, len(job.RequiredSkill))
	}

	return result
}

// enrich layers the optional model-assisted summary onto a result. Any
// failure is logged and swallowed; the degenerate-submission warning is
// never overwritten.
func (r *Runner) enrich(ctx context.Context, doc *ResumeDocument, job *JobContext, result *CandidateResult, degenerate bool) {
	if r.enricher == nil {
		return
	}

	summary, err := r.enricher.SummarizeCandidate(ctx, doc.Text, job.Title)
	if err != nil {
		r.logger.Warn("candidate enrichment failed",
			zap.String("file", doc.FileName),
			zap.Error(err),
		)
		return
	}

	result.CurrentRole = summary.CurrentRole
	result.Strengths = summary.Strengths
	result.Weaknesses = summary.Weaknesses
	if summary.Summary != "" && !degenerate {
		result.Summary = summary.Summary
	}

	ApplySuggestedName(result, summary.CandidateName)
}
