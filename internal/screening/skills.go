package screening

import (
	"regexp"
	"sort"
	"strings"
)

// skillVocabulary is the reference list of technology and soft-skill
// terms scanned for in job descriptions. Lowercase on purpose; all
// matching is case-insensitive.
var skillVocabulary = []string{
	// languages
	"python", "java", "javascript", "typescript", "golang", "c++", "c#",
	"ruby", "php", "scala", "kotlin", "swift", "rust", "r programming",
	// web and frameworks
	"react", "angular", "vue", "node.js", "nodejs", "django", "flask",
	"spring boot", "spring", ".net", "express", "fastapi", "rails",
	"html", "css", "rest api", "graphql", "grpc", "microservices",
	// data
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"oracle", "cassandra", "kafka", "rabbitmq", "spark", "hadoop",
	"pandas", "numpy", "tensorflow", "pytorch", "scikit-learn",
	"machine learning", "deep learning", "data analysis", "nlp",
	"data science", "etl", "power bi", "tableau", "excel",
	// infra
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
	"jenkins", "ci/cd", "git", "linux", "ansible", "devops",
	// practice and soft skills
	"agile", "scrum", "jira", "unit testing", "tdd", "selenium",
	"communication", "leadership", "problem solving", "teamwork",
	"project management", "stakeholder management",
}

// FallbackSkill is used when nothing recognizable can be derived from a
// job description, so the skills component still has a denominator.
const FallbackSkill = "general skills"

var bulletLineRe = regexp.MustCompile(`^\s*(?:[-*•·\x{2022}]|\d+[.)])\s+(.{2,60})$`)

var phraseRe = regexp.MustCompile(`[a-zA-Z][a-zA-Z+.#/ ]{1,40}`)

// DeriveRequiredSkills extracts the required-skill set from a job
// description: every vocabulary term present as a substring, plus short
// alphabetic phrases pulled from bulleted lines. The result is
// deduplicated case-insensitively and sorted; an unparseable
// description falls back to the "general skills" sentinel.
func DeriveRequiredSkills(description string) []string {
	lower := strings.ToLower(description)
	seen := make(map[string]bool)
	var skills []string

	add := func(s string) {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		skills = append(skills, s)
	}

	for _, term := range skillVocabulary {
		if strings.Contains(lower, term) {
			add(term)
		}
	}

	for _, line := range strings.Split(description, "\n") {
		m := bulletLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		item := strings.TrimSpace(m[1])
		// Only short alphabetic phrases qualify as skills; full
		// sentences from responsibility bullets are noise.
		if len(item) > 40 || strings.Count(item, " ") > 3 {
			continue
		}
		if !isAlphabeticPhrase(item) {
			continue
		}
		add(item)
	}

	if len(skills) == 0 {
		return []string{FallbackSkill}
	}

	sort.Strings(skills)
	return skills
}

// MatchSkills splits the required skills into matched and missing for
// the given resume text. Each skill is first looked up as an exact
// case-insensitive substring; failing that, the best fuzzy ratio
// against the resume's candidate phrases must reach the threshold.
// Both output lists preserve the order of required.
func MatchSkills(resumeText string, required []string, threshold int) (matched, missing []string) {
	lower := strings.ToLower(resumeText)
	phrases := candidatePhrases(resumeText)

	for _, skill := range required {
		if skillPresent(lower, phrases, skill, threshold) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}

// MatchNiceToHave returns the subset of nice-to-have skills present in
// the resume, using the same exact-then-fuzzy rule. Absent entries are
// simply dropped; nice-to-haves are never counted against a candidate.
func MatchNiceToHave(resumeText string, niceToHave []string, threshold int) []string {
	lower := strings.ToLower(resumeText)
	phrases := candidatePhrases(resumeText)

	var matched []string
	for _, skill := range niceToHave {
		if skillPresent(lower, phrases, skill, threshold) {
			matched = append(matched, skill)
		}
	}
	return matched
}

func skillPresent(lowerResume string, phrases []string, skill string, threshold int) bool {
	skill = strings.ToLower(strings.TrimSpace(skill))
	if skill == "" {
		return false
	}
	if strings.Contains(lowerResume, skill) {
		return true
	}

	best := 0
	for _, phrase := range phrases {
		if r := Ratio(skill, phrase); r > best {
			best = r
		}
	}
	return best >= threshold
}

// candidatePhrases tokenizes resume text into short alphabetic word
// groups used as fuzzy-match targets.
func candidatePhrases(text string) []string {
	raw := phraseRe.FindAllString(strings.ToLower(text), -1)
	phrases := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if len(p) < 2 || strings.Count(p, " ") > 3 {
			continue
		}
		phrases = append(phrases, p)
	}
	return phrases
}

func isAlphabeticPhrase(s string) bool {
	letters := 0
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			letters++
		case r == ' ', r == '+', r == '#', r == '.', r == '/', r == '-':
		default:
			return false
		}
	}
	return letters >= 2
}

// MergeSkillLists combines the user-supplied and model-suggested
// nice-to-have lists, deduplicating case-insensitively while keeping
// first-seen casing and order.
func MergeSkillLists(lists ...[]string) []string {
	seen := make(map[string]bool)
	var merged []string
	for _, list := range lists {
		for _, s := range list {
			s = strings.TrimSpace(s)
			key := strings.ToLower(s)
			if s == "" || seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, s)
		}
	}
	return merged
}

// MergeRequiredSkills merges the derived required skills with
// model-suggested lists, then drops the fallback sentinel whenever the
// merge contributed at least one real skill. The sentinel can never be
// matched against a resume, so leaving it alongside real skills would
// deflate every candidate's skills denominator.
func MergeRequiredSkills(derived []string, suggested ...[]string) []string {
	merged := MergeSkillLists(append([][]string{derived}, suggested...)...)
	if len(merged) <= 1 {
		return merged
	}

	kept := merged[:0]
	for _, s := range merged {
		if strings.EqualFold(s, FallbackSkill) {
			continue
		}
		kept = append(kept, s)
	}
	if len(kept) == 0 {
		return []string{FallbackSkill}
	}
	return kept
}
