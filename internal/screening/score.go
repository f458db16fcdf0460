package screening

import (
	"fmt"
	"math"
)

// Component caps of the scoring rubric.
const (
	skillsCap     = 40
	experienceCap = 25
	niceToHaveCap = 15
	educationCap  = 10
	relevanceCap  = 10

	// skillsDefault is awarded when no required skills could be derived
	// from the job description at all.
	skillsDefault = 20

	// experienceDefault applies when neither side states any experience.
	experienceDefault = 10

	// pointsPerNiceToHave is the bonus per matched nice-to-have skill.
	pointsPerNiceToHave = 5

	// pointsPerYearUnrequired rewards experience when the job states no
	// requirement.
	pointsPerYearUnrequired = 3

	// experienceRatioCeiling bounds the candidate/required years ratio
	// before scaling, so outliers do not dominate.
	experienceRatioCeiling = 1.5
)

// Fit score thresholds for the verdict tiers.
const (
	bestFitThreshold   = 85
	strongFitThreshold = 70
	averageThreshold   = 50
)

// VerdictFor maps a fit score to its verdict and recommendation. The
// mapping is monotonic over the fixed thresholds {50, 70, 85}.
func VerdictFor(fitScore int) (verdict, recommendation string) {
	switch {
	case fitScore >= bestFitThreshold:
		return VerdictBestFit, RecommendInterview
	case fitScore >= strongFitThreshold:
		return VerdictStrongFit, RecommendInterview
	case fitScore >= averageThreshold:
		return VerdictAverage, ConsiderInterview
	default:
		return VerdictNotAFit, DoNotRecommend
	}
}

// SkillsScore scores required-skill coverage on 0-40. With no derivable
// required skills the component defaults to its midpoint instead of
// punishing every candidate.
func SkillsScore(matched, required int) int {
	if required == 0 {
		return skillsDefault
	}
	score := int(math.Round(float64(matched) / float64(required) * skillsCap))
	if score > skillsCap {
		return skillsCap
	}
	return score
}

// ExperienceScore scores candidate experience against the job's
// requirement on 0-25.
func ExperienceScore(candidateYears, requiredYears int) int {
	switch {
	case requiredYears > 0:
		ratio := math.Min(float64(candidateYears)/float64(requiredYears), experienceRatioCeiling)
		score := int(math.Round(ratio * experienceCap))
		if score > experienceCap {
			return experienceCap
		}
		return score
	case candidateYears > 0:
		score := candidateYears * pointsPerYearUnrequired
		if score > experienceCap {
			return experienceCap
		}
		return score
	default:
		return experienceDefault
	}
}

// NiceToHaveScore scores matched bonus skills on 0-15.
func NiceToHaveScore(matched int) int {
	score := matched * pointsPerNiceToHave
	if score > niceToHaveCap {
		return niceToHaveCap
	}
	return score
}

// RelevanceScore maps a 0-100 similarity percentage onto 0-10.
func RelevanceScore(similarity float64) int {
	score := int(math.Round(similarity / 10))
	if score > relevanceCap {
		return relevanceCap
	}
	if score < 0 {
		return 0
	}
	return score
}

// Evaluate runs the full deterministic rubric for one document against
// the job context. Enrichment (summary, name assistance) is layered on
// elsewhere; given identical inputs this function always produces an
// identical result.
func Evaluate(doc *ResumeDocument, job *JobContext, cfg Config) *CandidateResult {
	cfg = cfg.sanitize()

	if doc.ExtractErr != nil {
		return extractionFailureResult(doc)
	}

	matched, missing := MatchSkills(doc.Text, job.RequiredSkill, cfg.SkillMatchThreshold)
	niceMatched := MatchNiceToHave(doc.Text, job.NiceToHave, cfg.SkillMatchThreshold)

	years := ExtractExperienceYears(doc.Text)
	education, educationPoints := DetectEducation(doc.Text)
	similarity := Similarity(doc.Text, job.Description)

	required := len(job.RequiredSkill)
	if required == 1 && job.RequiredSkill[0] == FallbackSkill {
		required = 0
	}

	breakdown := ScoreBreakdown{
		Skills:     SkillsScore(len(matched), required),
		Experience: ExperienceScore(years, job.RequiredYears),
		NiceToHave: NiceToHaveScore(len(niceMatched)),
		Education:  educationPoints,
		Relevance:  RelevanceScore(similarity),
	}

	result := &CandidateResult{
		FileName:        doc.FileName,
		FitScore:        breakdown.Total(),
		Email:           ExtractEmail(doc.Text),
		Phone:           ExtractPhone(doc.Text),
		Location:        ExtractLocation(doc.Text),
		ExperienceYears: years,
		Education:       education,
		SkillsMatched:   matched,
		SkillsMissing:   missing,
		NiceToHaveHit:   niceMatched,
		Relevance:       similarity,
		Breakdown:       breakdown,
	}
	result.Verdict, result.Recommendation = VerdictFor(result.FitScore)

	// A resume that is effectively the job description itself is not a
	// candidate at all; the override beats every computed component.
	if similarity > cfg.DegenerateSimilarity {
		result.Verdict = VerdictNotAFit
		result.Recommendation = RecommendJDSubmission
		result.Summary = fmt.Sprintf(
			"Warning: submission is %.2f%% similar to the job description and looks like a copy of the JD rather than a resume.",
			similarity,
		)
	}

	return result
}

// extractionFailureResult is the degraded placeholder for a document
// whose text could not be obtained. It still enters the final list so
// batch totals reconcile.
func extractionFailureResult(doc *ResumeDocument) *CandidateResult {
	return &CandidateResult{
		FileName:       doc.FileName,
		CandidateName:  NameFromFileName(doc.FileName),
		FitScore:       0,
		Verdict:        VerdictError,
		Recommendation: DoNotRecommend,
		Email:          notProvided,
		Phone:          notProvided,
		Location:       notProvided,
		Education:      educationNotDetected,
		Summary:        fmt.Sprintf("Could not extract text from %s: %v", doc.FileName, doc.ExtractErr),
	}
}

// TemplatedSummary is the local fallback used when the enrichment call
// fails or is disabled: a short narrative built purely from computed
// facts.
func TemplatedSummary(r *CandidateResult, requiredTotal int) string {
	summary := fmt.Sprintf("Matched %d of %d required skills", len(r.SkillsMatched), requiredTotal)
	if r.ExperienceYears > 0 {
		summary += fmt.Sprintf(" with %d years of experience", r.ExperienceYears)
	}
	if len(r.NiceToHaveHit) > 0 {
		summary += fmt.Sprintf("; %d nice-to-have skills present", len(r.NiceToHaveHit))
	}
	return summary + "."
}
