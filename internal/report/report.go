// Package report renders screening results as plain text, CSV and JSON.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hiresmart-ai/hiresmart/internal/screening"
)

// verdictOrder fixes the section order of the text report.
var verdictOrder = []string{
	screening.VerdictBestFit,
	screening.VerdictStrongFit,
	screening.VerdictAverage,
	screening.VerdictNotAFit,
}

// Text renders the batch as a downloadable shortlisting report:
// aggregate counts first, then per-candidate blocks grouped by verdict.
func Text(batch *screening.BatchResult) string {
	var b strings.Builder

	b.WriteString("AI RESUME SHORTLISTING REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	counts := batch.CountByVerdict()
	fmt.Fprintf(&b, "Total Candidates: %d\n", len(batch.Results))
	for _, verdict := range verdictOrder {
		fmt.Fprintf(&b, "%s: %d\n", verdict, counts[verdict])
	}
	b.WriteString("\n" + strings.Repeat("=", 50) + "\n\n")

	for _, verdict := range verdictOrder {
		results := resultsForVerdict(batch, verdict)
		if len(results) == 0 {
			continue
		}

		fmt.Fprintf(&b, "\n--- %s ---\n\n", strings.ToUpper(verdict))
		for _, r := range results {
			fmt.Fprintf(&b, "Name: %s\n", valueOr(r.CandidateName, screening.UnknownName))
			fmt.Fprintf(&b, "Score: %d/100\n", r.FitScore)
			fmt.Fprintf(&b, "Role: %s\n", valueOr(r.CurrentRole, "N/A"))
			fmt.Fprintf(&b, "Email: %s\n", valueOr(r.Email, "N/A"))
			fmt.Fprintf(&b, "Phone: %s\n", valueOr(r.Phone, "N/A"))
			fmt.Fprintf(&b, "Summary: %s\n", valueOr(r.Summary, "N/A"))
			fmt.Fprintf(&b, "Recommendation: %s\n", valueOr(r.Recommendation, "N/A"))
			b.WriteString(strings.Repeat("-", 30) + "\n\n")
		}
	}

	return b.String()
}

var csvHeader = []string{
	"file_name", "candidate_name", "fit_score", "verdict", "recommendation",
	"email", "phone", "location", "current_role", "experience_years",
	"education", "skills_matched", "skills_missing", "nice_to_have_matched",
	"relevance", "summary",
}

// WriteCSV streams the batch to w as one row per candidate. List-valued
// fields are joined with "; " so the file opens cleanly in spreadsheets.
func WriteCSV(w io.Writer, batch *screening.BatchResult) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range batch.Results {
		row := []string{
			r.FileName,
			r.CandidateName,
			strconv.Itoa(r.FitScore),
			r.Verdict,
			r.Recommendation,
			r.Email,
			r.Phone,
			r.Location,
			r.CurrentRole,
			strconv.Itoa(r.ExperienceYears),
			r.Education,
			strings.Join(r.SkillsMatched, "; "),
			strings.Join(r.SkillsMissing, "; "),
			strings.Join(r.NiceToHaveHit, "; "),
			strconv.FormatFloat(r.Relevance, 'f', 2, 64),
			r.Summary,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row for %s: %w", r.FileName, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// DumpToTmpFile writes the full batch as indented JSON to a temp file
// and returns its path.
func DumpToTmpFile(batch *screening.BatchResult) (string, error) {
	file, err := os.CreateTemp("", "screening_results_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(batch); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// WriteFile renders the batch in the named format ("text", "csv" or
// "json") to the given path.
func WriteFile(path, format string, batch *screening.BatchResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text", "txt":
		_, err = io.WriteString(file, Text(batch))
	case "csv":
		err = WriteCSV(file, batch)
	case "json":
		enc := json.NewEncoder(file)
		enc.SetIndent("", "  ")
		err = enc.Encode(batch)
	default:
		err = fmt.Errorf("unsupported report format: %s", format)
	}
	if err != nil {
		return err
	}

	return file.Close()
}

func resultsForVerdict(batch *screening.BatchResult, verdict string) []*screening.CandidateResult {
	var results []*screening.CandidateResult
	for _, r := range batch.Results {
		if r.Verdict == verdict {
			results = append(results, r)
			continue
		}
		// Error results are reported under Not a Fit, matching the counts.
		if verdict == screening.VerdictNotAFit && r.Verdict == screening.VerdictError {
			results = append(results, r)
		}
	}
	return results
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
