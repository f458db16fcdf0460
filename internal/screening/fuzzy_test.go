package screening

import "testing"

func TestRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a, b   string
		expect int
	}{
		{name: "identical", a: "golang", b: "golang", expect: 100},
		{name: "case insensitive", a: "Golang", b: "golang", expect: 100},
		{name: "both empty", a: "", b: "", expect: 100},
		{name: "one deletion", a: "kubernetes", b: "kubernets", expect: 95},
		{name: "nothing in common", a: "ab", b: "xyz", expect: 0},
		{name: "one side empty", a: "go", b: "", expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Ratio(tt.a, tt.b); got != tt.expect {
				t.Fatalf("Ratio(%q, %q) = %d, expected %d", tt.a, tt.b, got, tt.expect)
			}
		})
	}
}

func TestRatioSymmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"python", "pyton"},
		{"priya sharma", "sharma priya"},
		{"postgresql", "mysql"},
	}

	for _, p := range pairs {
		if Ratio(p[0], p[1]) != Ratio(p[1], p[0]) {
			t.Fatalf("Ratio is not symmetric for %q / %q", p[0], p[1])
		}
	}
}

func TestTokenSortRatio(t *testing.T) {
	t.Parallel()

	if got := TokenSortRatio("John Smith", "Smith, John"); got != 100 {
		t.Fatalf("expected reordered identical names to score 100, got %d", got)
	}

	if got := TokenSortRatio("Priya Sharma", "Priya R Sharma"); got != 92 {
		t.Fatalf("expected 92 for name with extra initial, got %d", got)
	}

	if got := TokenSortRatio("John A. Smith", "John Smith"); got != 91 {
		t.Fatalf("expected 91 for name with middle initial, got %d", got)
	}

	if got := TokenSortRatio("Rahul Verma", "Anita Desai"); got >= 60 {
		t.Fatalf("expected unrelated names to score low, got %d", got)
	}
}

func TestIndelDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b   string
		expect int
	}{
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 5},
		{"golang", "gilang", 2},
		{"same", "same", 0},
	}

	for _, tt := range tests {
		if got := indelDistance([]rune(tt.a), []rune(tt.b)); got != tt.expect {
			t.Fatalf("indelDistance(%q, %q) = %d, expected %d", tt.a, tt.b, got, tt.expect)
		}
	}
}
