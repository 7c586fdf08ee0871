package factcheck

import (
	"math"
	"sort"
)

// OverallLabel is the categorical verdict for a whole report.
type OverallLabel string

const (
	LabelHighlyMisleading    OverallLabel = "Highly Misleading"
	LabelPartiallyMisleading OverallLabel = "Partially Misleading"
	LabelMostlyAccurate      OverallLabel = "Mostly Accurate"
	LabelInconclusive        OverallLabel = "Inconclusive"
)

// MinCredibleReviews is the coverage floor: fewer independent reviews than
// this and the report is Inconclusive regardless of how the reviews lean.
const MinCredibleReviews = 5

// Report summarizes every review found for one query.
type Report struct {
	Query                 string        `json:"query"`
	AverageSeverity       float64       `json:"average_severity"`
	CredibilityScore      int           `json:"credibility_score"`
	NormalizedCredibility float64       `json:"normalized_credibility"`
	FalsePercentage       float64       `json:"false_percentage"`
	OverallLabel          OverallLabel  `json:"overall_label"`
	Reviews               []ClaimReview `json:"reviews"`
}

// Aggregate merges a review list into a single scored report. The
// credibility score is simply the review count: more independent coverage
// is treated as a proxy for credibility, a deliberately crude heuristic.
// Reviews are sorted by severity descending for display; ties keep their
// original order.
func Aggregate(query string, reviews []ClaimReview) Report {
	report := Report{
		Query:   query,
		Reviews: make([]ClaimReview, len(reviews)),
	}
	copy(report.Reviews, reviews)
	sort.SliceStable(report.Reviews, func(i, j int) bool {
		return report.Reviews[i].SeverityScore > report.Reviews[j].SeverityScore
	})

	report.CredibilityScore = len(reviews)
	report.NormalizedCredibility = math.Min(float64(len(reviews))/10.0, 1.0)

	if len(reviews) > 0 {
		var severityTotal, falseCount int
		for _, r := range reviews {
			severityTotal += r.SeverityScore
			if ClassifyRating(r.Rating) == RatingFalse {
				falseCount++
			}
		}
		report.AverageSeverity = float64(severityTotal) / float64(len(reviews))
		report.FalsePercentage = float64(falseCount) / float64(len(reviews)) * 100
	}

	// Coverage gates the label before the false-percentage thresholds:
	// too few reviews means no call either way.
	switch {
	case report.CredibilityScore < MinCredibleReviews:
		report.OverallLabel = LabelInconclusive
	case report.FalsePercentage >= 70:
		report.OverallLabel = LabelHighlyMisleading
	case report.FalsePercentage >= 40:
		report.OverallLabel = LabelPartiallyMisleading
	default:
		report.OverallLabel = LabelMostlyAccurate
	}

	return report
}
