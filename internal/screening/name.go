package screening

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// UnknownName is the placeholder used when no strategy yields a name.
// Placeholder names are never deduplicated against each other.
const UnknownName = "Unknown"

// portalPrefixes are job-board artifacts commonly baked into downloaded
// resume filenames.
var portalPrefixes = []string{
	"naukri", "naukri_", "indeed", "indeed_", "linkedin", "linkedin_",
	"monster", "shine", "timesjobs", "glassdoor", "profile", "cv_", "resume_",
}

// headerVocabulary marks lines (and tokens) that belong to resume
// boilerplate rather than a person's name.
var headerVocabulary = map[string]bool{
	"resume": true, "curriculum": true, "vitae": true, "cv": true,
	"profile": true, "summary": true, "objective": true, "career": true,
	"contact": true, "email": true, "phone": true, "mobile": true,
	"address": true, "linkedin": true, "github": true, "portfolio": true,
	"education": true, "experience": true, "skills": true, "projects": true,
	"professional": true, "personal": true, "details": true, "name": true,
	"engineer": true, "developer": true, "manager": true, "analyst": true,
	"consultant": true, "architect": true, "senior": true, "junior": true,
	"lead": true, "intern": true, "page": true, "confidential": true,
}

// titleKeywords flag names that are actually job titles and should be
// replaced by a model-suggested name when one exists.
var titleKeywords = []string{
	"senior", "junior", "lead", "principal", "staff", "manager",
	"engineer", "developer", "analyst", "consultant", "architect",
	"specialist", "administrator", "director", "intern",
}

var (
	bracketedRe   = regexp.MustCompile(`[\[(][^\])]*[\])]`)
	digitRunRe    = regexp.MustCompile(`\d{3,}`)
	numberTokenRe = regexp.MustCompile(`^\d+$`)
	camelSplitRe  = regexp.MustCompile(`([a-z])([A-Z])`)
)

// NameFromFileName derives a display name from the source file name:
// extension, portal prefixes, bracketed tags, numeric suffixes and
// resume/cv tokens are stripped, separators become spaces and camel
// case is split. Falls back to the original file name when cleanup
// leaves nothing.
func NameFromFileName(fileName string) string {
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))

	cleaned := base
	lower := strings.ToLower(cleaned)
	for _, prefix := range portalPrefixes {
		if strings.HasPrefix(lower, prefix) {
			cleaned = cleaned[len(prefix):]
			lower = strings.ToLower(cleaned)
		}
	}

	cleaned = bracketedRe.ReplaceAllString(cleaned, " ")
	cleaned = camelSplitRe.ReplaceAllString(cleaned, "$1 $2")
	cleaned = strings.NewReplacer("_", " ", "-", " ", ".", " ", "+", " ").Replace(cleaned)

	var kept []string
	for _, tok := range strings.Fields(cleaned) {
		low := strings.ToLower(tok)
		if low == "resume" || low == "cv" || numberTokenRe.MatchString(tok) {
			continue
		}
		kept = append(kept, tok)
	}

	name := strings.Join(kept, " ")
	if strings.TrimSpace(name) == "" {
		return base
	}
	return name
}

// NameFromContent scans the first 15 non-blank lines of resume text for
// something that looks like a personal name. Lines with emails, long
// digit runs, URLs or header vocabulary are skipped; a surviving line
// must be 2-4 capitalized words under 40 characters total. A single
// camel-cased token that splits into such words also qualifies.
// Returns "" when nothing qualifies.
func NameFromContent(text string) string {
	lines := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines++
		if lines > 15 {
			break
		}

		if strings.Contains(line, "@") || strings.Contains(line, "http") ||
			strings.Contains(line, "www.") || digitRunRe.MatchString(line) ||
			len(line) > 50 {
			continue
		}

		tokens := strings.Fields(line)
		if len(tokens) == 1 {
			if split := splitCamelCase(tokens[0]); len(split) >= 2 && len(split) <= 3 && validNameTokens(split) {
				return strings.Join(split, " ")
			}
			continue
		}
		if len(tokens) < 2 || len(tokens) > 4 || len(line) >= 40 {
			continue
		}
		if validNameTokens(tokens) {
			return line
		}
	}
	return ""
}

// ResolveName combines both strategies, preferring the content-based
// name over the filename-derived one.
func ResolveName(fileName, text string) string {
	if name := NameFromContent(text); name != "" {
		return name
	}
	if name := NameFromFileName(fileName); containsLetter(name) {
		return name
	}
	return UnknownName
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// LooksLikePersonalName reports whether a resolved name has the shape
// of a 2-4 word personal name free of title keywords.
func LooksLikePersonalName(name string) bool {
	tokens := strings.Fields(strings.TrimSpace(name))
	if len(tokens) < 2 || len(tokens) > 4 {
		return false
	}
	if ContainsTitleKeyword(name) {
		return false
	}
	return validNameTokens(tokens)
}

// ContainsTitleKeyword reports whether the name carries an obvious job
// title token ("senior", "manager", ...).
func ContainsTitleKeyword(name string) bool {
	for _, tok := range strings.Fields(strings.ToLower(name)) {
		tok = strings.Trim(tok, ".,")
		for _, kw := range titleKeywords {
			if tok == kw {
				return true
			}
		}
	}
	return false
}

// ApplySuggestedName overwrites the result's name with the
// model-suggested one when the current name is low quality: either it
// does not look like a personal name or it contains a job-title
// keyword. This is the only permitted post-hoc mutation of a result.
func ApplySuggestedName(r *CandidateResult, suggested string) {
	suggested = strings.TrimSpace(suggested)
	if suggested == "" {
		return
	}
	if !LooksLikePersonalName(r.CandidateName) || ContainsTitleKeyword(r.CandidateName) {
		r.CandidateName = suggested
	}
}

func validNameTokens(tokens []string) bool {
	for _, tok := range tokens {
		runes := []rune(strings.Trim(tok, "."))
		if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes {
			if !unicode.IsLetter(r) {
				return false
			}
		}
		if headerVocabulary[strings.ToLower(string(runes))] {
			return false
		}
	}
	return true
}

func splitCamelCase(s string) []string {
	split := camelSplitRe.ReplaceAllString(s, "$1 $2")
	return strings.Fields(split)
}
