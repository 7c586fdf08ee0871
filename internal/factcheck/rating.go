package factcheck

import "strings"

// RatingLabel buckets a fact checker's free-text rating.
type RatingLabel string

const (
	RatingFalse   RatingLabel = "False"
	RatingTrue    RatingLabel = "True"
	RatingUnclear RatingLabel = "Unclear"
)

// Fact checkers publish ratings as free text ("Pants on Fire!", "Mostly
// true", "Four Pinocchios"). These word sets cover the common vocabulary;
// anything outside them stays Unclear rather than guessed.
var (
	falseIndicators = []string{
		"false", "fake", "untrue", "incorrect", "inaccurate", "misleading",
		"pants on fire", "debunked", "hoax", "fabricated", "no evidence",
		"unsupported", "wrong", "pinocchio",
	}
	trueIndicators = []string{
		"true", "correct", "accurate", "legitimate", "verified", "confirmed",
	}
)

// ClassifyRating maps a textual rating to False, True or Unclear. The false
// set is checked first so mixed ratings ("half true, mostly false") resolve
// to False.
func ClassifyRating(rating string) RatingLabel {
	lower := strings.ToLower(rating)
	for _, word := range falseIndicators {
		if strings.Contains(lower, word) {
			return RatingFalse
		}
	}
	for _, word := range trueIndicators {
		if strings.Contains(lower, word) {
			return RatingTrue
		}
	}
	return RatingUnclear
}
