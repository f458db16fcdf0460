package gemini

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeModels struct {
	mu    sync.Mutex
	calls int
	queue []fakeResponse
}

type fakeResponse struct {
	resp *genai.GenerateContentResponse
	err  error
}

func (f *fakeModels) GenerateContent(_ context.Context, _ string, _ []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if len(f.queue) == 0 {
		return nil, errors.New("unexpected call")
	}
	res := f.queue[0]
	f.queue = f.queue[1:]
	return res.resp, res.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func stubWait(t *testing.T) {
	t.Helper()
	original := waitFor
	waitFor = func(context.Context, time.Duration) error { return nil }
	t.Cleanup(func() { waitFor = original })
}

func TestGeneratorRetriesOnError(t *testing.T) {
	stubWait(t)

	models := &fakeModels{queue: []fakeResponse{
		{err: errors.New("transient")},
		{resp: textResponse("retry ok")},
	}}

	g := &Generator{
		models:     models,
		modelName:  "gemini-2.5-flash",
		maxRetries: 2,
		logger:     zap.NewNop(),
	}

	output, err := g.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output != "retry ok" {
		t.Fatalf("unexpected output: %q", output)
	}

	if models.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", models.calls)
	}
}

func TestGeneratorStopsAfterRetriesExhausted(t *testing.T) {
	stubWait(t)

	models := &fakeModels{queue: []fakeResponse{
		{err: errors.New("boom")},
		{err: errors.New("boom")},
		{err: errors.New("boom")},
	}}

	g := &Generator{
		models:     models,
		modelName:  "gemini-2.5-flash",
		maxRetries: 2,
		logger:     zap.NewNop(),
	}

	_, err := g.GenerateContent(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error after retries exhausted")
	}

	if models.calls != 3 {
		t.Fatalf("expected 3 calls, got %d", models.calls)
	}
}

func TestGeneratorDoesNotRetryAfterCancel(t *testing.T) {
	stubWait(t)

	ctx, cancel := context.WithCancel(context.Background())

	models := &fakeModels{queue: []fakeResponse{
		{err: errors.New("canceled mid-flight")},
	}}

	g := &Generator{
		models:     models,
		modelName:  "gemini-2.5-flash",
		maxRetries: 3,
		logger:     zap.NewNop(),
	}

	cancel()

	_, err := g.GenerateContent(ctx, "prompt")
	if err == nil {
		t.Fatal("expected error when context canceled")
	}

	if models.calls != 1 {
		t.Fatalf("expected single call, got %d", models.calls)
	}
}

func TestGeneratorRejectsEmptyPrompt(t *testing.T) {
	g := &Generator{models: &fakeModels{}, modelName: "gemini-2.5-flash", logger: zap.NewNop()}

	if _, err := g.GenerateContent(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty prompt")
	}
}

func TestGeneratorJoinsMultipleParts(t *testing.T) {
	models := &fakeModels{queue: []fakeResponse{{
		resp: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "first"},
					{Text: "  "},
					{Text: "second"},
				}},
			}},
		},
	}}}

	g := &Generator{models: models, modelName: "gemini-2.5-flash", logger: zap.NewNop()}

	output, err := g.GenerateContent(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output != "first\nsecond" {
		t.Fatalf("unexpected output: %q", output)
	}
}
