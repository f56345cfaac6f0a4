package features

import "strings"

// Normalize lowercases a label and collapses inner whitespace.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// NormalizeAll normalizes labels, dropping blanks and duplicates while keeping first-seen order.
func NormalizeAll(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		n := Normalize(v)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Set builds a lookup set of normalized labels.
func Set(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range NormalizeAll(values) {
		set[v] = struct{}{}
	}
	return set
}

// Jaccard is |A∩B| / |A∪B| compared case-insensitively.
// An empty set on either side gives 0 rather than an undefined ratio.
func Jaccard(a, b []string) float64 {
	setA, setB := Set(a), Set(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for v := range setA {
		if _, ok := setB[v]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// EqualFold compares two labels after normalization.
func EqualFold(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
