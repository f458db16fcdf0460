package screening

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// Verdict tiers, ordered from best to worst.
const (
	VerdictBestFit   = "Best Fit"
	VerdictStrongFit = "Strong Fit"
	VerdictAverage   = "Average"
	VerdictNotAFit   = "Not a Fit"
	VerdictError     = "Error"
)

// Recommendation strings attached to each verdict tier.
const (
	RecommendInterview    = "Recommend for Interview"
	ConsiderInterview     = "Consider for Interview"
	DoNotRecommend        = "Do Not Recommend"
	RecommendJDSubmission = "Possible JD Upload - Not a Resume"
)

const notProvided = "Not provided"

// ResumeDocument is one extracted input file. It is immutable after
// extraction and discarded once scored.
type ResumeDocument struct {
	FileName    string
	Text        string
	Fingerprint string
	// ExtractErr is set when the source text could not be obtained.
	// A document with ExtractErr short-circuits scoring entirely.
	ExtractErr error
}

// NewResumeDocument builds a document from raw extracted text,
// computing its content fingerprint up front.
func NewResumeDocument(fileName, text string, extractErr error) *ResumeDocument {
	doc := &ResumeDocument{
		FileName:   fileName,
		Text:       text,
		ExtractErr: extractErr,
	}
	if extractErr == nil {
		doc.Fingerprint = Fingerprint(text)
	}
	return doc
}

// Fingerprint returns the content hash used for exact-duplicate
// detection: sha256 over the lowercased, whitespace-collapsed text.
func Fingerprint(text string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	return fmt.Sprintf("%x", sha256.Sum256([]byte(normalized)))
}

// JobContext holds everything known about the job being screened
// against. It is built once per batch and shared read-only across all
// evaluations.
type JobContext struct {
	Title         string
	Description   string
	RequiredSkill []string
	NiceToHave    []string
	RequiredYears int
}

// ScoreBreakdown carries the five independently bounded rubric
// components. The fit score is always the clamped sum of these.
type ScoreBreakdown struct {
	Skills     int `json:"skills"`       // 0-40
	Experience int `json:"experience"`   // 0-25
	NiceToHave int `json:"nice_to_have"` // 0-15
	Education  int `json:"education"`    // 0-10
	Relevance  int `json:"relevance"`    // 0-10
}

// Total returns the fit score: the component sum clamped to [0,100].
func (b ScoreBreakdown) Total() int {
	sum := b.Skills + b.Experience + b.NiceToHave + b.Education + b.Relevance
	if sum < 0 {
		return 0
	}
	if sum > 100 {
		return 100
	}
	return sum
}

// CandidateResult is the scored outcome for one unique resume.
// Only the name may be overwritten after creation, and only when a
// better-quality name is resolved later.
type CandidateResult struct {
	FileName        string         `json:"file_name"`
	CandidateName   string         `json:"candidate_name"`
	FitScore        int            `json:"fit_score"`
	Verdict         string         `json:"verdict"`
	Recommendation  string         `json:"recommendation"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Location        string         `json:"location"`
	CurrentRole     string         `json:"current_role,omitempty"`
	ExperienceYears int            `json:"experience_years"`
	Education       string         `json:"education"`
	SkillsMatched   []string       `json:"skills_matched"`
	SkillsMissing   []string       `json:"skills_missing"`
	NiceToHaveHit   []string       `json:"nice_to_have_matched"`
	Relevance       float64        `json:"relevance"`
	Summary         string         `json:"summary"`
	Strengths       []string       `json:"strengths,omitempty"`
	Weaknesses      []string       `json:"weaknesses,omitempty"`
	Breakdown       ScoreBreakdown `json:"score_breakdown"`
}

// BatchResult is the outcome of a single runBatch call. Results are
// sorted by fit score descending and already deduplicated.
type BatchResult struct {
	Results           []*CandidateResult `json:"results"`
	TotalFiles        int                `json:"total_files"`
	UniqueAnalyzed    int                `json:"unique_analyzed"`
	DuplicatesSkipped int                `json:"duplicates_skipped"`
}

// CountByVerdict returns the number of results per verdict tier.
// Error results are grouped under Not a Fit, as the UI did.
func (b *BatchResult) CountByVerdict() map[string]int {
	counts := map[string]int{
		VerdictBestFit:   0,
		VerdictStrongFit: 0,
		VerdictAverage:   0,
		VerdictNotAFit:   0,
	}
	for _, r := range b.Results {
		switch r.Verdict {
		case VerdictBestFit, VerdictStrongFit, VerdictAverage:
			counts[r.Verdict]++
		default:
			counts[VerdictNotAFit]++
		}
	}
	return counts
}
