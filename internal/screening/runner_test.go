package screening

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/hiresmart-ai/hiresmart/internal/ai"
)

type stubExtractor struct {
	texts map[string]string
	errs  map[string]error
}

func (s *stubExtractor) ExtractText(_ context.Context, path string) (string, error) {
	if err := s.errs[path]; err != nil {
		return "", err
	}
	text, ok := s.texts[path]
	if !ok {
		return "", errors.New("unexpected path: " + path)
	}
	return text, nil
}

type stubEnricher struct {
	summary *ai.CandidateSummary
	err     error
}

func (s *stubEnricher) SuggestJobKeywords(context.Context, string) (*ai.JobKeywords, error) {
	return nil, errors.New("not used in these tests")
}

func (s *stubEnricher) SummarizeCandidate(context.Context, string, string) (*ai.CandidateSummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.summary, nil
}

const anitaResume = `Anita Desai
anita@example.com
2 years of experience in quality assurance.
Skills: Python
Diploma in Computer Applications`

func TestRunBatchReconciliation(t *testing.T) {
	t.Parallel()

	extractor := &stubExtractor{
		texts: map[string]string{
			"priya.txt":      strongResume,
			"priya_copy.txt": strongResume,
			"anita.txt":      anitaResume,
		},
		errs: map[string]error{
			"broken.txt": errUnreadable,
		},
	}

	runner := NewRunner(DefaultConfig(), zap.NewNop(), extractor, nil)

	batch, err := runner.RunBatch(context.Background(),
		[]string{"priya.txt", "priya_copy.txt", "anita.txt", "broken.txt"}, testJob())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if batch.TotalFiles != 4 {
		t.Fatalf("expected 4 total files, got %d", batch.TotalFiles)
	}

	if batch.UniqueAnalyzed != 3 || batch.DuplicatesSkipped != 1 {
		t.Fatalf("unexpected accounting: unique=%d duplicates=%d", batch.UniqueAnalyzed, batch.DuplicatesSkipped)
	}

	if batch.TotalFiles != batch.UniqueAnalyzed+batch.DuplicatesSkipped {
		t.Fatalf("batch totals do not reconcile: %+v", batch)
	}

	// First arrival wins content-duplicate ties.
	for _, r := range batch.Results {
		if r.FileName == "priya_copy.txt" {
			t.Fatal("expected the later content duplicate to be skipped")
		}
	}

	for i := 1; i < len(batch.Results); i++ {
		if batch.Results[i].FitScore > batch.Results[i-1].FitScore {
			t.Fatalf("results not sorted by fit score: %d before %d",
				batch.Results[i-1].FitScore, batch.Results[i].FitScore)
		}
	}

	var errorResult *CandidateResult
	for _, r := range batch.Results {
		if r.FileName == "broken.txt" {
			errorResult = r
		}
	}
	if errorResult == nil {
		t.Fatal("expected the extraction failure to stay in the results")
	}
	if errorResult.Verdict != VerdictError || errorResult.FitScore != 0 {
		t.Fatalf("unexpected error result: %+v", errorResult)
	}
}

func TestRunBatchIdentityDedup(t *testing.T) {
	t.Parallel()

	older := `Priya Sharma
priya.old@example.com
2 years of experience.
Skills: Python`

	extractor := &stubExtractor{texts: map[string]string{
		"priya_current.txt": strongResume,
		"priya_old.txt":     older,
	}}

	runner := NewRunner(DefaultConfig(), zap.NewNop(), extractor, nil)

	batch, err := runner.RunBatch(context.Background(),
		[]string{"priya_old.txt", "priya_current.txt"}, testJob())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(batch.Results) != 1 {
		t.Fatalf("expected a single surviving identity, got %d", len(batch.Results))
	}

	if batch.Results[0].FileName != "priya_current.txt" {
		t.Fatalf("expected the higher-scoring instance to survive, got %q", batch.Results[0].FileName)
	}

	if batch.DuplicatesSkipped != 1 {
		t.Fatalf("expected one identity duplicate, got %d", batch.DuplicatesSkipped)
	}
}

func TestRunBatchValidation(t *testing.T) {
	t.Parallel()

	runner := NewRunner(DefaultConfig(), zap.NewNop(), &stubExtractor{}, nil)

	if _, err := runner.RunBatch(context.Background(), []string{"a.txt"}, nil); !errors.Is(err, ErrNoJobDescription) {
		t.Fatalf("expected ErrNoJobDescription, got %v", err)
	}

	if _, err := runner.RunBatch(context.Background(), nil, testJob()); !errors.Is(err, ErrNoInputFiles) {
		t.Fatalf("expected ErrNoInputFiles, got %v", err)
	}
}

func TestRunBatchEnrichment(t *testing.T) {
	t.Parallel()

	extractor := &stubExtractor{texts: map[string]string{"priya.txt": strongResume}}
	enricher := &stubEnricher{summary: &ai.CandidateSummary{
		CandidateName: "Priya Sharma",
		CurrentRole:   "Senior Python Developer",
		Strengths:     []string{"deep python background"},
		Weaknesses:    []string{"no cloud certifications"},
		Summary:       "A strong backend candidate.",
	}}

	runner := NewRunner(DefaultConfig(), zap.NewNop(), extractor, enricher)

	batch, err := runner.RunBatch(context.Background(), []string{"priya.txt"}, testJob())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := batch.Results[0]
	if r.CurrentRole != "Senior Python Developer" {
		t.Fatalf("expected enriched role, got %q", r.CurrentRole)
	}
	if r.Summary != "A strong backend candidate." {
		t.Fatalf("expected enriched summary, got %q", r.Summary)
	}
	if len(r.Strengths) != 1 || len(r.Weaknesses) != 1 {
		t.Fatalf("expected strengths and weaknesses to be carried over: %+v", r)
	}
}

func TestRunBatchEnricherFailureFallsBack(t *testing.T) {
	t.Parallel()

	extractor := &stubExtractor{texts: map[string]string{"priya.txt": strongResume}}
	enricher := &stubEnricher{err: errors.New("quota exhausted")}

	runner := NewRunner(DefaultConfig(), zap.NewNop(), extractor, enricher)

	batch, err := runner.RunBatch(context.Background(), []string{"priya.txt"}, testJob())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(batch.Results[0].Summary, "Matched ") {
		t.Fatalf("expected templated fallback summary, got %q", batch.Results[0].Summary)
	}
}

func TestRunBatchDegenerateKeepsWarning(t *testing.T) {
	t.Parallel()

	job := testJob()
	extractor := &stubExtractor{texts: map[string]string{"jd_copy.txt": job.Description}}
	enricher := &stubEnricher{summary: &ai.CandidateSummary{Summary: "Looks like a lovely person."}}

	runner := NewRunner(DefaultConfig(), zap.NewNop(), extractor, enricher)

	batch, err := runner.RunBatch(context.Background(), []string{"jd_copy.txt"}, job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := batch.Results[0]
	if r.Recommendation != RecommendJDSubmission {
		t.Fatalf("expected JD-submission recommendation, got %q", r.Recommendation)
	}
	if !strings.Contains(r.Summary, "similar to the job description") {
		t.Fatalf("expected the warning summary to survive enrichment, got %q", r.Summary)
	}
}
