package fit

// Band is the qualitative class of a fit score.
type Band string

const (
	BandExcellent    Band = "excellent"
	BandGood         Band = "good"
	BandAverage      Band = "average"
	BandBelowAverage Band = "below-average"
	BandPoor         Band = "poor"
)

var bands = []struct {
	min            int
	band           Band
	recommendation string
}{
	{min: 85, band: BandExcellent, recommendation: "Highly recommended: strong match, prioritize for interview"},
	{min: 70, band: BandGood, recommendation: "Recommended: good match, worth interviewing"},
	{min: 55, band: BandAverage, recommendation: "Consider: meets part of the requirements, review the gaps"},
	{min: 40, band: BandBelowAverage, recommendation: "Not recommended unless the pool is thin: significant gaps"},
	{min: 0, band: BandPoor, recommendation: "Not a fit: core requirements are not met"},
}

// BandFor classifies a 0-100 score.
func BandFor(score int) Band {
	for _, b := range bands {
		if score >= b.min {
			return b.band
		}
	}
	return BandPoor
}

func (b Band) Recommendation() string {
	for _, entry := range bands {
		if entry.band == b {
			return entry.recommendation
		}
	}
	return ""
}
