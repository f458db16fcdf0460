package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/hiresmart-ai/hiresmart/internal/ai"
	"github.com/hiresmart-ai/hiresmart/internal/util"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Enricher implements ai.Enricher on top of a Gemini content generator.
type Enricher struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

//go:embed prompt_keywords.md
var keywordsPromptTemplate string

//go:embed prompt_summary.md
var summaryPromptTemplate string

const defaultMaxLogLength = 200

var yearsRe = regexp.MustCompile(`\d+`)

func NewEnricher(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Enricher {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Enricher{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// SuggestJobKeywords asks the model to pull required skills, nice-to-haves
// and an experience floor out of a free-form job description.
func (e *Enricher) SuggestJobKeywords(ctx context.Context, description string) (*ai.JobKeywords, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("job description is required")
	}

	prompt := strings.ReplaceAll(keywordsPromptTemplate, "{{JOB_DESCRIPTION}}", description)

	raw, err := e.generate(ctx, "job keywords", prompt)
	if err != nil {
		return nil, err
	}

	data, err := decodeResponse(raw)
	if err != nil {
		return nil, err
	}

	// Models often answer "5 years" or "5+" where a number was asked for.
	if v, ok := data["experience_required"]; ok {
		data["experience_required"] = coerceYears(v)
	}

	keywords := &ai.JobKeywords{}
	if err := weakDecode(data, keywords); err != nil {
		return nil, fmt.Errorf("decode job keywords: %w", err)
	}

	return keywords, nil
}

// SummarizeCandidate asks the model for a short narrative about one resume
// in the context of the target role.
func (e *Enricher) SummarizeCandidate(ctx context.Context, resumeText, jobTitle string) (*ai.CandidateSummary, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return nil, fmt.Errorf("resume text is required")
	}

	prompt := strings.ReplaceAll(summaryPromptTemplate, "{{RESUME_TEXT}}", resumeText)
	prompt = strings.ReplaceAll(prompt, "{{JOB_TITLE}}", strings.TrimSpace(jobTitle))

	raw, err := e.generate(ctx, "candidate summary", prompt)
	if err != nil {
		return nil, err
	}

	data, err := decodeResponse(raw)
	if err != nil {
		return nil, err
	}

	summary := &ai.CandidateSummary{}
	if err := weakDecode(data, summary); err != nil {
		return nil, fmt.Errorf("decode candidate summary: %w", err)
	}

	return summary, nil
}

func (e *Enricher) generate(ctx context.Context, kind, prompt string) (string, error) {
	e.logger.Debug("gemini generate content request",
		zap.String("kind", kind),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	e.logger.Debug("gemini generate content response",
		zap.String("kind", kind),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, e.maxLogLen)),
	)

	return raw, nil
}

// decodeResponse tolerates fenced code blocks around the JSON payload.
func decodeResponse(raw string) (map[string]any, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	return data, nil
}

func weakDecode(data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(data)
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceYears(v any) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case int:
		return val
	case string:
		match := yearsRe.FindString(val)
		if match == "" {
			return 0
		}
		years, err := strconv.Atoi(match)
		if err != nil {
			return 0
		}
		return years
	default:
		return 0
	}
}
