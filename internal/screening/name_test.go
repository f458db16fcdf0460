package screening

import "testing"

func TestNameFromFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fileName string
		expect   string
	}{
		{name: "portal prefix and tags", fileName: "naukri_PriyaSharma[5y_0m].txt", expect: "Priya Sharma"},
		{name: "resume prefix and numeric suffix", fileName: "resume_john_doe_12345.txt", expect: "john doe"},
		{name: "camel case", fileName: "RahulVerma.txt", expect: "Rahul Verma"},
		{name: "dashes and cv token", fileName: "anita-desai-cv.txt", expect: "anita desai"},
		{name: "nothing left falls back to base", fileName: "12345.txt", expect: "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NameFromFileName(tt.fileName); got != tt.expect {
				t.Fatalf("NameFromFileName(%q) = %q, expected %q", tt.fileName, got, tt.expect)
			}
		})
	}
}

func TestNameFromContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		expect string
	}{
		{
			name:   "name on first line",
			text:   "Priya Sharma\nSenior Developer\npriya@example.com",
			expect: "Priya Sharma",
		},
		{
			name:   "skips header boilerplate",
			text:   "RESUME\nJohn Smith\njohn@example.com",
			expect: "John Smith",
		},
		{
			name:   "skips contact lines",
			text:   "priya@example.com\n+91 9876543210\nPriya Sharma",
			expect: "Priya Sharma",
		},
		{
			name:   "single camel cased token",
			text:   "PriyaSharma\nBangalore",
			expect: "Priya Sharma",
		},
		{
			name:   "lowercase line is not a name",
			text:   "priya sharma\nsomething else",
			expect: "",
		},
		{
			name:   "no name anywhere",
			text:   "Objective\nSeeking challenging opportunities in software development engineering roles today",
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NameFromContent(tt.text); got != tt.expect {
				t.Fatalf("NameFromContent(%q) = %q, expected %q", tt.text, got, tt.expect)
			}
		})
	}
}

func TestResolveName(t *testing.T) {
	t.Parallel()

	// Content beats filename.
	if got := ResolveName("naukri_SomeoneElse.txt", "Priya Sharma\nDeveloper"); got != "Priya Sharma" {
		t.Fatalf("expected content name to win, got %q", got)
	}

	// Filename fallback.
	if got := ResolveName("rahul_verma.txt", "no personal name in here at all because every line is lowercase"); got != "rahul verma" {
		t.Fatalf("expected filename fallback, got %q", got)
	}

	// Letterless filename yields the placeholder.
	if got := ResolveName("12345.txt", "nothing usable"); got != UnknownName {
		t.Fatalf("expected %q, got %q", UnknownName, got)
	}
}

func TestLooksLikePersonalName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		expect bool
	}{
		{name: "Priya Sharma", expect: true},
		{name: "Anita Rani Desai", expect: true},
		{name: "Priya", expect: false},
		{name: "Senior Software Engineer", expect: false},
		{name: "priya sharma", expect: false},
		{name: "", expect: false},
	}

	for _, tt := range tests {
		if got := LooksLikePersonalName(tt.name); got != tt.expect {
			t.Fatalf("LooksLikePersonalName(%q) = %v, expected %v", tt.name, got, tt.expect)
		}
	}
}

func TestApplySuggestedName(t *testing.T) {
	t.Parallel()

	// A good name is never overwritten.
	r := &CandidateResult{CandidateName: "Priya Sharma"}
	ApplySuggestedName(r, "Someone Else")
	if r.CandidateName != "Priya Sharma" {
		t.Fatalf("expected good name to survive, got %q", r.CandidateName)
	}

	// A job title is replaced.
	r = &CandidateResult{CandidateName: "Senior Developer"}
	ApplySuggestedName(r, "Rahul Verma")
	if r.CandidateName != "Rahul Verma" {
		t.Fatalf("expected title to be replaced, got %q", r.CandidateName)
	}

	// An empty suggestion changes nothing.
	r = &CandidateResult{CandidateName: "Senior Developer"}
	ApplySuggestedName(r, "  ")
	if r.CandidateName != "Senior Developer" {
		t.Fatalf("expected empty suggestion to be ignored, got %q", r.CandidateName)
	}
}
