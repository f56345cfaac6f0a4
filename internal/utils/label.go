package utils

import "strings"

const ellipsis = "..."

// TruncateLabel folds a free-text value onto one line and cuts it to limit runes,
// appending an ellipsis when something was cut. Prompt items must stay single-line.
func TruncateLabel(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimRight(string(runes[:limit]), " ") + ellipsis
}
