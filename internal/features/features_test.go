package features

import (
	"reflect"
	"testing"

	"github.com/spigell/hh-ranker/internal/records"
)

func TestJaccard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{name: "identical ignoring case", a: []string{"Go", "SQL"}, b: []string{"go", "sql"}, want: 1},
		{name: "half overlap", a: []string{"go", "sql"}, b: []string{"go", "docker", "sql", "k8s"}, want: 0.5},
		{name: "disjoint", a: []string{"go"}, b: []string{"java"}, want: 0},
		{name: "empty left", a: nil, b: []string{"go"}, want: 0},
		{name: "empty both", a: nil, b: nil, want: 0},
		{name: "duplicates collapse", a: []string{"Go", "go ", "GO"}, b: []string{"go"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Jaccard(tt.a, tt.b); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if got := Jaccard(tt.b, tt.a); got != tt.want {
				t.Fatalf("expected symmetric %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNormalizeAll(t *testing.T) {
	t.Parallel()

	got := NormalizeAll([]string{" Machine   Learning ", "", "python", "Python"})
	want := []string{"machine learning", "python"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExtractDefaultsMissingFields(t *testing.T) {
	t.Parallel()

	v := Extract(&records.Position{ID: "bare"}, records.ModeInternship)
	if v.Compensation != 0 || v.Duration != 0 || v.Location != "" || len(v.Skills) != 0 {
		t.Fatalf("expected zero vector, got %+v", v)
	}

	if v := Extract(nil, records.ModeJob); v.Mode != records.ModeJob {
		t.Fatalf("expected mode to survive nil position, got %+v", v)
	}
}

func TestExtractDurationOnlyForInternships(t *testing.T) {
	t.Parallel()

	p := &records.Position{DurationMonths: 3, Stipend: &records.Stipend{Amount: 8000}}

	if v := Extract(p, records.ModeInternship); v.Duration != 3 || v.Compensation != 8000 {
		t.Fatalf("unexpected internship vector: %+v", v)
	}
	if v := Extract(p, records.ModeJob); v.Duration != 0 {
		t.Fatalf("jobs must not carry duration, got %+v", v)
	}
}

func TestTokens(t *testing.T) {
	t.Parallel()

	tokenizer := NewTokenizer(DefaultBuckets())

	job := &records.Position{
		Skills:       []string{"Python", "SQL"},
		Location:     "Bangalore",
		Category:     "Engineering",
		LocationMode: "Onsite",
		Salary:       &records.Salary{Min: 500000, Max: 900000},
	}
	got := tokenizer.Tokens(job, records.ModeJob)
	want := []string{
		"skill:python", "skill:sql", "location:bangalore", "category:engineering",
		"work:on-site", "salary:high",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTokensBuckets(t *testing.T) {
	t.Parallel()

	tokenizer := NewTokenizer(DefaultBuckets())

	tests := []struct {
		name     string
		position *records.Position
		want     string
	}{
		{name: "low stipend", position: &records.Position{Stipend: &records.Stipend{Amount: 3000}}, want: "stipend:low"},
		{name: "medium stipend", position: &records.Position{Stipend: &records.Stipend{Amount: 10000}}, want: "stipend:medium"},
		{name: "very high stipend", position: &records.Position{Stipend: &records.Stipend{Amount: 50000}}, want: "stipend:very-high"},
		{name: "unpaid", position: &records.Position{Stipend: &records.Stipend{Amount: 50000, Unpaid: true}}, want: "stipend:unpaid"},
		{name: "short", position: &records.Position{DurationMonths: 1}, want: "duration:short"},
		{name: "very long", position: &records.Position{DurationMonths: 12}, want: "duration:very-long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tokens := tokenizer.Tokens(tt.position, records.ModeInternship)
			if !reflect.DeepEqual(tokens, []string{tt.want}) {
				t.Fatalf("expected [%s], got %v", tt.want, tokens)
			}
		})
	}
}

func TestUnpaidNeverProducesAmountBucket(t *testing.T) {
	t.Parallel()

	tokenizer := NewTokenizer(DefaultBuckets())
	p := &records.Position{Stipend: &records.Stipend{Amount: 9000, Unpaid: true}, DurationMonths: 3}

	for _, token := range tokenizer.Tokens(p, records.ModeInternship) {
		switch token {
		case "stipend:low", "stipend:medium", "stipend:high", "stipend:very-high":
			t.Fatalf("unpaid internship produced %q", token)
		}
	}
}

func TestBucketsValidate(t *testing.T) {
	if err := DefaultBuckets().Validate(); err != nil {
		t.Fatalf("default buckets must be valid: %v", err)
	}

	b := DefaultBuckets()
	b.Stipend = [3]float64{5000, 5000, 20000}
	if err := b.Validate(); err == nil {
		t.Fatal("expected error for non-increasing stipend buckets")
	}
}
