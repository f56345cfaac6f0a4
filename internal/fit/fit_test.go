package fit

import (
	"math"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/spigell/hh-ranker/internal/records"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMatchSkills(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate []string
		required  []string
		want      float64
		missing   []string
	}{
		{name: "no requirements", candidate: nil, required: nil, want: 1},
		{name: "no candidate skills", candidate: nil, required: []string{"go"}, want: 0, missing: []string{"go"}},
		{name: "all exact", candidate: []string{"Go", "SQL"}, required: []string{"go", "sql"}, want: 1},
		{name: "two of three", candidate: []string{"python", "sql"}, required: []string{"python", "sql", "docker"}, want: 2.0/3 - 0.25/3, missing: []string{"docker"}},
		{name: "partial", candidate: []string{"javascript"}, required: []string{"java", "go"}, want: 0.25 - 0.125, missing: []string{"go"}},
		{name: "extra bonus capped", candidate: []string{"go", "a", "b", "c", "d", "e", "f", "g"}, required: []string{"go", "rust"}, want: 0.5 + 0.15 - 0.125, missing: []string{"rust"}},
		{name: "clamped at one", candidate: []string{"go", "a", "b"}, required: []string{"go"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MatchSkills(tt.candidate, tt.required)
			if !almostEqual(got.Score, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got.Score)
			}
			if !reflect.DeepEqual(got.Missing, tt.missing) {
				t.Fatalf("expected missing %v, got %v", tt.missing, got.Missing)
			}
		})
	}
}

func TestExperienceScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate string
		required  string
		want      float64
	}{
		{name: "exact", candidate: "2-3", required: "2-3", want: 1},
		{name: "exact with suffix", candidate: "3 years", required: "3", want: 1},
		{name: "no requirement", candidate: "", required: "", want: 1},
		{name: "missing candidate", candidate: "", required: "2-3", want: 0},
		{name: "slightly more", candidate: "3", required: "2.5", want: 0.98 - 0.2/0.5*0.03},
		{name: "over qualified", candidate: "3-5", required: "2-3", want: 0.88},
		{name: "far over qualified", candidate: "10+", required: "0-1", want: 0.75},
		{name: "under qualified", candidate: "1-2", required: "2-3", want: 0.6},
		{name: "fresher requirement", candidate: "1-2", required: "fresher", want: 0.90},
		{name: "fresher candidate", candidate: "fresher", required: "3-5", want: 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExperienceScore(tt.candidate, tt.required); !almostEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestExperienceYears(t *testing.T) {
	t.Parallel()

	cases := map[string]float64{
		"Senior":    6,
		"2 - 4 yrs": 3,
		"7+":        8,
		"10+ years": 12,
	}
	for label, want := range cases {
		got, ok := ExperienceYears(label)
		if !ok || got != want {
			t.Fatalf("%q: expected %v, got %v (ok=%v)", label, want, got, ok)
		}
	}

	if _, ok := ExperienceYears("plenty"); ok {
		t.Fatalf("expected unknown label to be rejected")
	}
}

func TestEducationScore(t *testing.T) {
	t.Parallel()

	degrees := func(names ...string) []records.Education {
		out := make([]records.Education, 0, len(names))
		for _, n := range names {
			out = append(out, records.Education{Degree: n})
		}
		return out
	}

	tests := []struct {
		name         string
		education    []records.Education
		requirements []string
		want         float64
	}{
		{name: "meets", education: degrees("B.Tech"), requirements: []string{"bachelor"}, want: 1},
		{name: "exceeds", education: degrees("PhD in Physics"), requirements: []string{"Bachelor's degree"}, want: 1},
		{name: "highest degree counts", education: degrees("12th", "MBA"), requirements: []string{"master"}, want: 1},
		{name: "short by one", education: degrees("Bachelor of Science"), requirements: []string{"Master"}, want: 0.75},
		{name: "floor", education: degrees("High School"), requirements: []string{"doctorate"}, want: 0.5},
		{name: "no education", education: nil, requirements: []string{"bachelor"}, want: 0.5},
		{name: "any", education: nil, requirements: []string{"Any graduate"}, want: 1},
		{name: "no requirement", education: nil, requirements: nil, want: 1},
		{name: "unrecognized requirement", education: nil, requirements: []string{"relevant coursework"}, want: 1},
		{name: "postgraduate is master", education: degrees("Postgraduate diploma"), requirements: []string{"master"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := EducationScore(tt.education, tt.requirements); !almostEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLocationScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate string
		position  string
		mode      records.LocationMode
		want      float64
	}{
		{name: "remote", candidate: "Delhi", position: "Pune", mode: records.Remote, want: 1},
		{name: "hybrid", candidate: "", position: "Pune", mode: "Hybrid", want: 1},
		{name: "exact", candidate: "bangalore", position: "Bangalore", mode: records.OnSite, want: 1},
		{name: "contained", candidate: "Bangalore, Karnataka", position: "Bangalore", mode: records.OnSite, want: 0.9},
		{name: "mismatch", candidate: "Delhi", position: "Pune", mode: records.OnSite, want: 0.4},
		{name: "missing", candidate: "", position: "Pune", mode: records.OnSite, want: 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := LocationScore(tt.candidate, tt.position, tt.mode); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestHistoryScore(t *testing.T) {
	t.Parallel()

	if got := HistoryScore(&records.Candidate{}); got != 0.7 {
		t.Fatalf("expected base score, got %v", got)
	}

	full := &records.Candidate{
		Skills:    []string{"go"},
		Education: []records.Education{{Degree: "bachelor"}},
		Bio:       "Backend developer",
	}
	if got := HistoryScore(full); got != 1 {
		t.Fatalf("expected capped score of 1, got %v", got)
	}
}

func TestDecideIsMonotonic(t *testing.T) {
	t.Parallel()

	base := Breakdown{Skills: 0.5, Experience: 0.5, Education: 0.5, Location: 0.5, History: 0.5}
	setters := map[string]func(*Breakdown, float64){
		"skills":     func(b *Breakdown, v float64) { b.Skills = v },
		"experience": func(b *Breakdown, v float64) { b.Experience = v },
		"education":  func(b *Breakdown, v float64) { b.Education = v },
		"location":   func(b *Breakdown, v float64) { b.Location = v },
		"history":    func(b *Breakdown, v float64) { b.History = v },
	}

	for name, set := range setters {
		prev := -1.0
		for step := 0; step <= 20; step++ {
			b := base
			set(&b, float64(step)/20)
			got := Decide(b)
			if got < prev {
				t.Fatalf("%s: decision decreased at step %d (%v < %v)", name, step, got, prev)
			}
			if got <= 0 || got >= 1 {
				t.Fatalf("%s: decision out of (0,1): %v", name, got)
			}
			prev = got
		}
	}
}

func TestBandFor(t *testing.T) {
	t.Parallel()

	cases := map[int]Band{
		100: BandExcellent,
		85:  BandExcellent,
		84:  BandGood,
		70:  BandGood,
		55:  BandAverage,
		40:  BandBelowAverage,
		39:  BandPoor,
		0:   BandPoor,
	}
	for score, want := range cases {
		if got := BandFor(score); got != want {
			t.Fatalf("score %d: expected %s, got %s", score, want, got)
		}
		if want.Recommendation() == "" {
			t.Fatalf("band %s has no recommendation", want)
		}
	}
}

func scenarioCandidate() *records.Candidate {
	return &records.Candidate{
		ID:         "c1",
		Skills:     []string{"python", "sql"},
		Experience: "2-3",
		Education:  []records.Education{{Degree: "bachelor"}},
		Location:   "Bangalore",
	}
}

func scenarioPosition() *records.Position {
	return &records.Position{
		ID:           "p1",
		Skills:       []string{"python", "sql", "docker"},
		Experience:   "2-3",
		Education:    []string{"bachelor"},
		Location:     "Bangalore",
		LocationMode: records.OnSite,
	}
}

func TestScoreScenario(t *testing.T) {
	t.Parallel()

	a := New().Score(scenarioCandidate(), scenarioPosition(), records.ModeJob)

	if a.Breakdown.Skills < 0.5 || a.Breakdown.Skills > 0.7 {
		t.Fatalf("expected skills sub-score in [0.5, 0.7], got %v", a.Breakdown.Skills)
	}
	if a.Breakdown.Experience != 1 || a.Breakdown.Education != 1 || a.Breakdown.Location != 1 {
		t.Fatalf("unexpected breakdown: %+v", a.Breakdown)
	}
	if a.Band != BandExcellent && a.Band != BandGood {
		t.Fatalf("expected good or excellent, got %s (%d)", a.Band, a.Score)
	}
	if a.Score != 92 {
		t.Fatalf("expected score 92, got %d", a.Score)
	}

	if !slices.ContainsFunc(a.Gaps, func(g string) bool { return strings.Contains(g, "docker") }) {
		t.Fatalf("expected a skills gap mentioning docker, got %v", a.Gaps)
	}
	for _, want := range []string{
		"Experience level fits the requirement",
		"Meets the education requirement",
		"Location is compatible",
	} {
		if !slices.Contains(a.Strengths, want) {
			t.Fatalf("expected strength %q in %v", want, a.Strengths)
		}
	}

	result := a.Result(scenarioCandidate())
	if result.Method != records.MethodFit || result.Band != string(a.Band) || result.Explanation == nil {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Explanation.Breakdown["skills"] != a.Breakdown.Skills {
		t.Fatalf("breakdown not carried over: %v", result.Explanation.Breakdown)
	}
	if !slices.Equal(result.Explanation.MissingSkills, []string{"docker"}) {
		t.Fatalf("expected missing skills [docker], got %v", result.Explanation.MissingSkills)
	}
}

func TestScoreHandlesEmptyInput(t *testing.T) {
	t.Parallel()

	a := New().Score(nil, nil, records.ModeInternship)
	if a.Score < 0 || a.Score > 100 || a.Band == "" {
		t.Fatalf("unexpected assessment for empty input: %+v", a)
	}
}

func TestScreenCandidates(t *testing.T) {
	t.Parallel()

	strong := scenarioCandidate()
	strong.ID = "strong"
	strong.Skills = append(strong.Skills, "docker")

	twinA := scenarioCandidate()
	twinA.ID = "twin-a"
	twinB := scenarioCandidate()
	twinB.ID = "twin-b"

	weak := &records.Candidate{ID: "weak", Location: "Delhi", Experience: "fresher"}

	screening := New().ScreenCandidates(
		[]*records.Candidate{weak, twinA, nil, strong, twinB},
		scenarioPosition(),
		records.ModeJob,
	)

	got := make([]string, 0, len(screening.Candidates))
	for i, r := range screening.Candidates {
		got = append(got, r.Candidate.ID)
		if r.Rank != i+1 {
			t.Fatalf("expected rank %d, got %d", i+1, r.Rank)
		}
		if i > 0 && r.Score > screening.Candidates[i-1].Score {
			t.Fatalf("results not in descending order at %d", i)
		}
	}

	if want := []string{"strong", "twin-a", "twin-b", "weak"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	stats := screening.Stats
	if stats.Total != 4 {
		t.Fatalf("expected 4 screened candidates, got %d", stats.Total)
	}
	if stats.Excellent+stats.Good+stats.Average+stats.BelowAverage+stats.Poor != stats.Total {
		t.Fatalf("band counts do not add up: %+v", stats)
	}

	sum := 0
	for _, r := range screening.Candidates {
		sum += r.Score
	}
	if want := int(math.Round(float64(sum) / 4)); stats.AverageScore != want {
		t.Fatalf("expected average %d, got %d", want, stats.AverageScore)
	}
}

func TestScreenCandidatesEmpty(t *testing.T) {
	t.Parallel()

	screening := New().ScreenCandidates(nil, scenarioPosition(), records.ModeJob)
	if len(screening.Candidates) != 0 || screening.Stats.Total != 0 || screening.Stats.AverageScore != 0 {
		t.Fatalf("unexpected empty screening: %+v", screening)
	}
}
