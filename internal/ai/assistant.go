package ai

import "context"

// JobKeywords is the optional enrichment of a job context suggested by
// the model. Any or all fields may be empty; callers must tolerate the
// zero value.
type JobKeywords struct {
	JobTitle           string   `mapstructure:"job_title"`
	MustHaveSkills     []string `mapstructure:"must_have_skills"`
	NiceToHaveSkills   []string `mapstructure:"nice_to_have_skills"`
	Technologies       []string `mapstructure:"technologies"`
	ExperienceRequired int      `mapstructure:"experience_required"`
}

// CandidateSummary is the optional narrative enrichment for one scored
// candidate. The zero value is a valid "no enrichment" response.
type CandidateSummary struct {
	CandidateName string   `mapstructure:"candidate_name"`
	CurrentRole   string   `mapstructure:"current_role"`
	Strengths     []string `mapstructure:"strengths"`
	Weaknesses    []string `mapstructure:"weaknesses"`
	Summary       string   `mapstructure:"summary"`
}

// Enricher produces model-assisted enrichments. Implementations return
// an error rather than panic on any failure; callers always have a
// local fallback, so scoring never depends on these calls.
type Enricher interface {
	SuggestJobKeywords(ctx context.Context, description string) (*JobKeywords, error)
	SummarizeCandidate(ctx context.Context, resumeText, jobTitle string) (*CandidateSummary, error)
}
