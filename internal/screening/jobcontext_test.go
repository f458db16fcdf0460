package screening

import (
	"errors"
	"testing"
)

func TestBuildJobContext(t *testing.T) {
	t.Parallel()

	job, err := BuildJobContext("Backend Engineer", "We need Python and PostgreSQL. 3+ years required.",
		[]string{"Docker"}, []string{"docker", "Kafka"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if job.Title != "Backend Engineer" {
		t.Fatalf("unexpected title: %q", job.Title)
	}

	if !containsString(job.RequiredSkill, "python") {
		t.Fatalf("expected derived skills, got %v", job.RequiredSkill)
	}

	if job.RequiredYears != 3 {
		t.Fatalf("expected 3 required years, got %d", job.RequiredYears)
	}

	if len(job.NiceToHave) != 2 || job.NiceToHave[0] != "Docker" || job.NiceToHave[1] != "Kafka" {
		t.Fatalf("expected merged nice-to-have list, got %v", job.NiceToHave)
	}
}

func TestBuildJobContextRequiresDescription(t *testing.T) {
	t.Parallel()

	if _, err := BuildJobContext("Title", "   "); !errors.Is(err, ErrNoJobDescription) {
		t.Fatalf("expected ErrNoJobDescription, got %v", err)
	}
}
