package fit

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/spigell/hh-ranker/internal/features"
	"github.com/spigell/hh-ranker/internal/records"
)

const (
	partialMatchWeight = 0.5
	extraSkillBonus    = 0.03
	maxExtraBonus      = 0.15
	missingPenalty     = 0.25
)

// SkillMatch is the outcome of comparing candidate skills with required ones.
type SkillMatch struct {
	Score   float64
	Exact   []string
	Partial []string
	Missing []string
	Extra   int
}

// MatchSkills scores exact matches fully and substring matches at half weight, adds a capped
// bonus for extra skills and subtracts a penalty for required skills left unmatched.
func MatchSkills(candidate, required []string) SkillMatch {
	req := features.NormalizeAll(required)
	if len(req) == 0 {
		return SkillMatch{Score: 1}
	}

	have := features.NormalizeAll(candidate)
	if len(have) == 0 {
		return SkillMatch{Score: 0, Missing: req}
	}

	haveSet := make(map[string]struct{}, len(have))
	for _, s := range have {
		haveSet[s] = struct{}{}
	}

	var match SkillMatch
	used := make(map[string]struct{}, len(have))
	for _, r := range req {
		if _, ok := haveSet[r]; ok {
			match.Exact = append(match.Exact, r)
			used[r] = struct{}{}
			continue
		}

		partial := false
		for _, s := range have {
			if strings.Contains(s, r) || strings.Contains(r, s) {
				partial = true
				used[s] = struct{}{}
			}
		}
		if partial {
			match.Partial = append(match.Partial, r)
			continue
		}
		match.Missing = append(match.Missing, r)
	}
	match.Extra = len(have) - len(used)

	n := float64(len(req))
	score := float64(len(match.Exact))/n +
		partialMatchWeight*float64(len(match.Partial))/n +
		math.Min(maxExtraBonus, extraSkillBonus*float64(match.Extra)) -
		missingPenalty*float64(len(match.Missing))/n
	match.Score = clamp01(score)
	return match
}

// experienceTable maps the experience labels used by postings and profiles to years.
var experienceTable = map[string]float64{
	"fresher":     0,
	"intern":      0,
	"none":        0,
	"0":           0,
	"entry":       0.5,
	"entry-level": 0.5,
	"0-1":         0.5,
	"junior":      1.5,
	"1-2":         1.5,
	"1-3":         2,
	"2-3":         2.5,
	"mid":         3.5,
	"mid-level":   3.5,
	"3-5":         4,
	"5+":          6,
	"5-7":         6,
	"senior":      6,
	"5-10":        7.5,
	"lead":        8,
	"7-10":        8.5,
	"principal":   10,
	"10+":         12,
}

var (
	yearsNoise = regexp.MustCompile(`\s*(years?|yrs?)\b`)
	yearsRange = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:-|to)\s*(\d+(?:\.\d+)?)$`)
	yearsPlus  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*\+$`)
	yearsPlain = regexp.MustCompile(`^(\d+(?:\.\d+)?)$`)
)

// ExperienceYears maps a label to a year equivalent. Labels missing from the table are
// parsed as "N-M", "N+" or "N", with an optional "years" suffix.
func ExperienceYears(label string) (float64, bool) {
	key := features.Normalize(label)
	if key == "" {
		return 0, false
	}
	if years, ok := experienceTable[key]; ok {
		return years, true
	}

	key = strings.TrimSpace(yearsNoise.ReplaceAllString(key, ""))
	if years, ok := experienceTable[key]; ok {
		return years, true
	}

	if m := yearsRange.FindStringSubmatch(key); m != nil {
		lo, _ := strconv.ParseFloat(m[1], 64)
		hi, _ := strconv.ParseFloat(m[2], 64)
		return (lo + hi) / 2, true
	}
	if m := yearsPlus.FindStringSubmatch(key); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		return n + 1, true
	}
	if m := yearsPlain.FindStringSubmatch(key); m != nil {
		n, _ := strconv.ParseFloat(m[1], 64)
		return n, true
	}
	return 0, false
}

// ExperienceScore compares year equivalents. Exact match is 1, a little more experience
// is 0.95-0.98, much more is 0.75-0.90 and less follows 0.15-0.90 by ratio.
func ExperienceScore(candidate, required string) float64 {
	req, ok := ExperienceYears(required)
	if !ok {
		return 1
	}
	have, ok := ExperienceYears(candidate)
	if !ok {
		return 0
	}

	if have == req {
		return 1
	}

	if req == 0 {
		switch {
		case have <= 1:
			return 0.95
		case have <= 3:
			return 0.90
		default:
			return 0.80
		}
	}

	ratio := have / req
	switch {
	case ratio > 2:
		return 0.75
	case ratio > 1.5:
		return 0.90 - (ratio-1.5)/0.5*0.10
	case ratio > 1:
		return 0.98 - (ratio-1)/0.5*0.03
	default:
		return 0.15 + 0.75*ratio
	}
}

// Education levels, ordinal.
const (
	levelUnknown = iota
	levelHighSchool
	levelDiploma
	levelBachelor
	levelMaster
	levelDoctorate
)

// educationVocabulary is checked from the highest level down, so "postgraduate" is a
// master before "graduate" can make it a bachelor.
var educationVocabulary = []struct {
	level    int
	keywords []string
}{
	{level: levelDoctorate, keywords: []string{"phd", "ph.d", "doctorate", "doctoral", "doctor of"}},
	{level: levelMaster, keywords: []string{"master", "m.tech", "mtech", "m.sc", "msc", "mba", "mca", "m.e.", "postgraduate", "post graduate"}},
	{level: levelBachelor, keywords: []string{"bachelor", "b.tech", "btech", "b.e.", "b.sc", "bsc", "bca", "bba", "b.com", "bcom", "undergraduate", "graduate"}},
	{level: levelDiploma, keywords: []string{"diploma", "associate", "polytechnic"}},
	{level: levelHighSchool, keywords: []string{"high school", "higher secondary", "secondary", "12th", "10th", "hsc", "ssc"}},
}

// EducationLevel finds the level named in a degree or requirement string.
func EducationLevel(s string) int {
	n := features.Normalize(s)
	if n == "" {
		return levelUnknown
	}
	for _, entry := range educationVocabulary {
		for _, keyword := range entry.keywords {
			if strings.Contains(n, keyword) {
				return entry.level
			}
		}
	}
	return levelUnknown
}

func allowsAnyEducation(requirement string) bool {
	for _, word := range strings.Fields(features.Normalize(requirement)) {
		if word == "any" {
			return true
		}
	}
	return false
}

// EducationScore compares the highest degree of the candidate with the highest level the
// position asks for. Falling short scores proportionally, never below 0.5.
func EducationScore(education []records.Education, requirements []string) float64 {
	required := levelUnknown
	for _, r := range requirements {
		if allowsAnyEducation(r) {
			return 1
		}
		required = max(required, EducationLevel(r))
	}
	if required == levelUnknown {
		return 1
	}

	achieved := levelUnknown
	for _, e := range education {
		achieved = max(achieved, EducationLevel(e.Degree))
	}
	if achieved >= required {
		return 1
	}
	return math.Max(0.5, float64(achieved)/float64(required))
}

// LocationScore ignores location for remote and hybrid work. Missing data is neutral.
func LocationScore(candidate, position string, mode records.LocationMode) float64 {
	if mode.LocationIrrelevant() {
		return 1
	}

	c, p := features.Normalize(candidate), features.Normalize(position)
	switch {
	case c == "" || p == "":
		return 0.7
	case c == p:
		return 1
	case strings.Contains(c, p) || strings.Contains(p, c):
		return 0.9
	default:
		return 0.4
	}
}

// HistoryScore stands in for behavioural history: a 0.7 base plus profile completeness.
func HistoryScore(c *records.Candidate) float64 {
	if c == nil {
		return 0.7
	}

	signals := 0
	if len(features.NormalizeAll(c.Skills)) > 0 {
		signals++
	}
	if len(c.Education) > 0 {
		signals++
	}
	if c.HasBio() {
		signals++
	}
	// Tenths keep the sums exact: 0.7, 0.8, 0.9, 1.
	return math.Min(1, float64(7+signals)/10)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
