// Package sentiment estimates the emotional lean of claim text with a small
// polarity lexicon. The output is a coarse three-bucket distribution for
// display next to a report, not a calibrated measurement.
package sentiment

import (
	"strings"
	"unicode"
)

// Distribution is the percentage split of sentiment across a text.
type Distribution struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

var positiveWords = map[string]struct{}{
	"good": {}, "great": {}, "excellent": {}, "positive": {}, "success": {},
	"successful": {}, "safe": {}, "benefit": {}, "beneficial": {}, "improve": {},
	"improved": {}, "win": {}, "best": {}, "love": {}, "happy": {},
	"effective": {}, "cure": {}, "breakthrough": {}, "genuine": {}, "true": {},
}

var negativeWords = map[string]struct{}{
	"bad": {}, "terrible": {}, "awful": {}, "negative": {}, "fail": {},
	"failure": {}, "dangerous": {}, "harm": {}, "harmful": {}, "toxic": {},
	"worst": {}, "hate": {}, "crisis": {}, "death": {}, "deadly": {},
	"fake": {}, "hoax": {}, "scam": {}, "fraud": {}, "stolen": {},
	"rigged": {}, "ruin": {},
}

// Score returns polarity in [-1, 1] from lexicon hits. No hits scores 0.
func Score(text string) float64 {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	var pos, neg int
	for _, w := range words {
		if _, ok := positiveWords[w]; ok {
			pos++
		}
		if _, ok := negativeWords[w]; ok {
			neg++
		}
	}

	if pos+neg == 0 {
		return 0
	}
	return float64(pos-neg) / float64(pos+neg)
}

// Analyze maps polarity onto the three fixed display distributions.
func Analyze(text string) Distribution {
	score := Score(text)
	switch {
	case score > 0.1:
		return Distribution{Positive: 80, Neutral: 10, Negative: 10}
	case score < -0.1:
		return Distribution{Positive: 10, Neutral: 20, Negative: 70}
	default:
		return Distribution{Positive: 20, Neutral: 60, Negative: 20}
	}
}
