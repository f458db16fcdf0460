package screening

import (
	"regexp"
	"strconv"
	"strings"
)

var emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// Phone patterns tried in priority order: regional mobile first, then a
// bare 10-digit run, then international, then a dashed triplet.
var phoneRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:\+91[\s\-]?)?[6-9]\d{9}\b`),
	regexp.MustCompile(`\b\d{10}\b`),
	regexp.MustCompile(`\+\d{1,3}[\s\-]?\d{6,12}\b`),
	regexp.MustCompile(`\b\d{3}-\d{3}-\d{4}\b`),
}

// locationGazetteer is scanned in order; the first entry found in the
// text wins, regardless of where it appears. This can mis-detect when
// several city names co-occur (a former employer's address, say) but is
// kept for compatibility with how batches have historically been scored.
var locationGazetteer = []string{
	"bangalore", "bengaluru", "hyderabad", "pune", "chennai", "mumbai",
	"delhi", "gurgaon", "gurugram", "noida", "kolkata", "ahmedabad",
	"kochi", "jaipur", "chandigarh", "indore", "coimbatore",
	"new york", "san francisco", "seattle", "austin", "boston", "london",
	"berlin", "amsterdam", "toronto", "singapore", "dubai", "sydney",
	"remote", "work from home", "wfh",
}

// Candidate-side experience patterns, tried in order; only the first
// family to match contributes, mentions are never aggregated.
var experienceRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)(?:\.\d+)?\s*\+?\s*years?\s+of\s+experience`),
	regexp.MustCompile(`(?i)experience\s+of\s+(\d+)(?:\.\d+)?\s*\+?\s*years?`),
	regexp.MustCompile(`(?i)(\d+)(?:\.\d+)?\s*\+?\s*years?\s+in\s+[a-z]`),
	regexp.MustCompile(`(?i)total\s+experience\s*(?:of|:)?\s*(\d+)`),
}

// Job-side patterns: ranges first (take the lower bound), then single
// values.
var requiredRangeRe = regexp.MustCompile(`(?i)(\d+)\s*(?:-|–|to)\s*\d+\s*\+?\s*years?`)

var requiredSingleRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*\+?\s*years?\s+of\s+experience`),
	regexp.MustCompile(`(?i)minimum\s+(?:of\s+)?(\d+)\s*\+?\s*years?`),
	regexp.MustCompile(`(?i)at\s+least\s+(\d+)\s*\+?\s*years?`),
	regexp.MustCompile(`(?i)(\d+)\s*\+\s*years?`),
}

// educationTiers are scanned best-first; the first tier with any
// keyword hit decides both the label and the rubric points.
var educationTiers = []struct {
	Label    string
	Points   int
	Keywords []string
}{
	{"PhD", 10, []string{"phd", "ph.d", "doctorate", "doctoral"}},
	{"Masters", 10, []string{"master", "m.tech", "mtech", "m.sc", "msc", "mba", "m.e.", "mca", "pgdm", "post graduate", "postgraduate"}},
	{"Bachelors", 7, []string{"bachelor", "b.tech", "btech", "b.e.", "b.sc", "bsc", "bca", "b.com", "undergraduate degree"}},
	{"Diploma", 5, []string{"diploma", "polytechnic"}},
}

const (
	educationNotDetected       = "Not detected"
	educationNotDetectedPoints = 3
)

// ExtractEmail returns the first email address in the text, or the
// "Not provided" placeholder.
func ExtractEmail(text string) string {
	if m := emailRe.FindString(text); m != "" {
		return m
	}
	return notProvided
}

// ExtractPhone returns the first phone number matching any of the known
// regional/international formats, or the "Not provided" placeholder.
func ExtractPhone(text string) string {
	for _, re := range phoneRes {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return notProvided
}

// ExtractLocation returns the first gazetteer entry present in the
// text, title-cased, or the "Not provided" placeholder. The gazetteer
// order decides ties, not the position in the resume.
func ExtractLocation(text string) string {
	lower := strings.ToLower(text)
	for _, city := range locationGazetteer {
		if strings.Contains(lower, city) {
			return titleCase(city)
		}
	}
	return notProvided
}

// ExtractExperienceYears returns the candidate's years of experience
// from the first matching pattern family, or 0.
func ExtractExperienceYears(text string) int {
	for _, re := range experienceRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if years, err := strconv.Atoi(m[1]); err == nil {
				return years
			}
		}
	}
	return 0
}

// ExtractRequiredYears returns the experience requirement stated in a
// job description. Range expressions ("5-10 years") yield their lower
// bound and are tried before single-value patterns. Defaults to 0.
func ExtractRequiredYears(description string) int {
	if m := requiredRangeRe.FindStringSubmatch(description); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			return years
		}
	}
	for _, re := range requiredSingleRes {
		if m := re.FindStringSubmatch(description); m != nil {
			if years, err := strconv.Atoi(m[1]); err == nil {
				return years
			}
		}
	}
	return 0
}

// DetectEducation returns the best education tier mentioned in the text
// along with its rubric points (0-10). Unknown tiers still earn a few
// points rather than zero.
func DetectEducation(text string) (label string, points int) {
	lower := strings.ToLower(text)
	for _, tier := range educationTiers {
		for _, kw := range tier.Keywords {
			if strings.Contains(lower, kw) {
				return tier.Label, tier.Points
			}
		}
	}
	return educationNotDetected, educationNotDetectedPoints
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "wfh" {
			words[i] = "WFH"
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
