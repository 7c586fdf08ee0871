package factcheck

import "strings"

// DefaultSeverity is assigned when no rule matches: misleading but not
// urgent or harmful.
const DefaultSeverity = 4

// SeverityRule maps a keyword set to a severity score for one topic
// category.
type SeverityRule struct {
	Category string
	Keywords []string
	Score    int
}

// severityRules is the canonical rule table. Rules are evaluated top to
// bottom and the first match wins, so position encodes priority: a claim
// that mentions both vaccines and celebrities is a health claim. Do not
// reorder without revisiting that contract.
var severityRules = []SeverityRule{
	{
		Category: "health",
		Keywords: []string{"vaccine", "covid-19", "health", "medication", "pandemic", "disease"},
		Score:    10,
	},
	{
		Category: "safety",
		Keywords: []string{"fire", "explosion", "danger", "safety", "hazard", "chemical"},
		Score:    9,
	},
	{
		Category: "environment",
		Keywords: []string{"climate change", "global warming", "pollution", "deforestation", "ozone"},
		Score:    8,
	},
	{
		Category: "politics",
		Keywords: []string{"election", "conspiracy", "fraud", "government", "corruption", "immigration", "racism", "gender inequality"},
		Score:    7,
	},
	{
		Category: "science",
		Keywords: []string{"alien", "technology", "space", "robot", "science", "scientific research"},
		Score:    6,
	},
	{
		Category: "finance",
		Keywords: []string{"stock market", "cryptocurrency", "scam", "investment", "bitcoin", "ponzi"},
		Score:    7,
	},
	{
		Category: "education",
		Keywords: []string{"university", "degree", "school", "curriculum", "education", "student loan"},
		Score:    6,
	},
	{
		Category: "celebrity",
		Keywords: []string{"celebrity", "actor", "singer", "sports", "scandal"},
		Score:    5,
	},
}

// MatchSeverity returns the first rule matching the claim text along with
// the keywords that triggered it. ok is false when only the default score
// applies.
func MatchSeverity(text string) (rule SeverityRule, matched []string, ok bool) {
	lower := strings.ToLower(text)
	for _, r := range severityRules {
		var hits []string
		for _, kw := range r.Keywords {
			if strings.Contains(lower, kw) {
				hits = append(hits, kw)
			}
		}
		if len(hits) > 0 {
			return r, hits, true
		}
	}
	return SeverityRule{}, nil, false
}

// AssignSeverity scores claim text from 1 to 10 by topic. Health and safety
// topics score highest; anything unmatched gets DefaultSeverity.
func AssignSeverity(text string) int {
	if rule, _, ok := MatchSeverity(text); ok {
		return rule.Score
	}
	return DefaultSeverity
}
