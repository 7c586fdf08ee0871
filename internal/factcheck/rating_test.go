package factcheck

import "testing"

func TestClassifyRating(t *testing.T) {
	tests := []struct {
		rating string
		want   RatingLabel
	}{
		{"This claim is mostly false and misleading", RatingFalse},
		{"Rated mostly true", RatingTrue},
		{"Context needed", RatingUnclear},
		{"Pants on Fire!", RatingFalse},
		{"Four Pinocchios", RatingFalse},
		{"Accurate with caveats", RatingTrue},
		{"Untrue", RatingFalse},
		{"", RatingUnclear},
		{"N/A", RatingUnclear},
		// Mixed ratings resolve to False, the false set is checked first
		{"Half true, half false", RatingFalse},
	}

	for _, tt := range tests {
		if got := ClassifyRating(tt.rating); got != tt.want {
			t.Errorf("ClassifyRating(%q) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}
