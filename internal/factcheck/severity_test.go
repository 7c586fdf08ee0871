package factcheck

import "testing"

func TestAssignSeverity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"health keyword", "New vaccine side effects revealed", 10},
		{"safety keyword", "Chemical hazard found in tap water", 9},
		{"environment keyword", "Climate change is a hoax", 8},
		{"politics keyword", "The election was stolen through fraud", 7},
		{"science keyword", "Aliens built the pyramids", 6},
		{"finance keyword", "Bitcoin will make you rich overnight", 7},
		{"education keyword", "Student loan forgiveness is automatic", 6},
		{"celebrity keyword", "Famous actor caught in scandal", 5},
		{"no match", "The sky was orange yesterday evening", 4},
		{"case insensitive", "VACCINES are dangerous", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AssignSeverity(tt.text); got != tt.want {
				t.Errorf("AssignSeverity(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

// Rule order encodes priority: the first matching rule wins even when a
// lower-priority rule also matches.
func TestAssignSeverityPriority(t *testing.T) {
	// Health outranks finance
	if got := AssignSeverity("Vaccines cause autism and also ruin your credit score and investment"); got != 10 {
		t.Errorf("expected health rule to win, got severity %d", got)
	}

	// Health outranks celebrity/sports
	if got := AssignSeverity("Disease spreads at major sports event"); got != 10 {
		t.Errorf("expected health rule to win over sports, got severity %d", got)
	}

	// Science is evaluated before finance, so a claim matching both
	// scores 6, not 7
	if got := AssignSeverity("Space technology will crash the stock market"); got != 6 {
		t.Errorf("expected science rule to win over finance, got severity %d", got)
	}
}

func TestMatchSeverity(t *testing.T) {
	rule, matched, ok := MatchSeverity("The pandemic was planned and the disease is fake")
	if !ok {
		t.Fatal("expected a rule match")
	}
	if rule.Category != "health" {
		t.Errorf("expected health category, got %q", rule.Category)
	}
	if len(matched) != 2 {
		t.Errorf("expected 2 matched keywords, got %v", matched)
	}

	_, _, ok = MatchSeverity("Nothing notable here")
	if ok {
		t.Error("expected no rule match")
	}
}
