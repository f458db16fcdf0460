package screening

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// maxFeatures caps the vocabulary used for the TF-IDF vectors. Terms
// are ranked by combined frequency across both documents before the cap
// is applied.
const maxFeatures = 1000

// stopwords excluded from the similarity vocabulary. Small by design:
// resumes and job descriptions are short documents and an aggressive
// list starts eating signal.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true, "from": true,
	"as": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "should": true, "can": true, "could": true,
	"this": true, "that": true, "these": true, "those": true,
	"i": true, "you": true, "we": true, "they": true, "it": true,
	"our": true, "your": true, "their": true, "his": true, "her": true,
	"not": true, "no": true, "so": true, "if": true, "than": true,
	"then": true, "there": true, "about": true, "into": true,
	"which": true, "who": true, "what": true, "when": true, "where": true,
	"how": true, "all": true, "also": true, "more": true, "other": true,
	"such": true, "its": true, "per": true, "etc": true,
}

// Similarity computes the lexical relevance between a resume and a job
// description: TF-IDF vectors over a shared bounded vocabulary, cosine
// similarity, scaled to 0-100 and rounded to two decimals. Any
// degenerate input (nothing left after stopword removal) yields 0; it
// never fails.
func Similarity(resumeText, jobDescription string) float64 {
	resumeTF := termFrequencies(resumeText)
	jobTF := termFrequencies(jobDescription)
	if len(resumeTF) == 0 || len(jobTF) == 0 {
		return 0
	}

	vocab := boundedVocabulary(resumeTF, jobTF)
	if len(vocab) == 0 {
		return 0
	}

	// Two-document corpus: a term in both docs gets a lower weight than
	// a term unique to one, smoothed so no weight hits zero.
	resumeVec := make([]float64, len(vocab))
	jobVec := make([]float64, len(vocab))
	for i, term := range vocab {
		df := 0
		if resumeTF[term] > 0 {
			df++
		}
		if jobTF[term] > 0 {
			df++
		}
		idf := math.Log(3.0/float64(1+df)) + 1
		resumeVec[i] = float64(resumeTF[term]) * idf
		jobVec[i] = float64(jobTF[term]) * idf
	}

	cos := cosine(resumeVec, jobVec)
	if math.IsNaN(cos) || cos < 0 {
		return 0
	}
	return math.Round(cos*100*100) / 100
}

func termFrequencies(text string) map[string]int {
	tf := make(map[string]int)
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
	for _, tok := range tokens {
		if len(tok) < 2 || stopwords[tok] {
			continue
		}
		tf[tok]++
	}
	return tf
}

func boundedVocabulary(a, b map[string]int) []string {
	total := make(map[string]int, len(a)+len(b))
	for t, n := range a {
		total[t] += n
	}
	for t, n := range b {
		total[t] += n
	}

	vocab := make([]string, 0, len(total))
	for t := range total {
		vocab = append(vocab, t)
	}
	// Deterministic order: frequency desc, then lexicographic.
	sort.Slice(vocab, func(i, j int) bool {
		if total[vocab[i]] != total[vocab[j]] {
			return total[vocab[i]] > total[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})
	if len(vocab) > maxFeatures {
		vocab = vocab[:maxFeatures]
	}
	return vocab
}

func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
