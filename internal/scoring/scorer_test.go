package scoring

import (
	"testing"

	"github.com/vijay-prabhu/jobfit/internal/posting"
	"github.com/vijay-prabhu/jobfit/internal/signals"
)

const exampleDescription = "Required: SQL. Must manage roadmap, backlog, sprint, KPI, API, e-commerce, SaaS, JIRA, Tableau."

func scorePosting(p posting.Posting) Result {
	e := signals.NewExtractor(signals.Default())
	return NewScorer(DefaultScorerConfig()).Score(e.Extract(p))
}

func TestScore_Examples(t *testing.T) {
	tests := []struct {
		name     string
		post     posting.Posting
		expected int
		decision Decision
	}{
		{
			// 0.35*75 + 10 + 0.20*50 + 0.20*50 + 0.10*37.5 + 5
			name:     "required sql with broad coverage",
			post:     posting.Posting{Description: exampleDescription},
			expected: 65,
			decision: DecisionSkip,
		},
		{
			// 65 * 0.70 = 45.5
			name: "far on-site with low salary",
			post: posting.Posting{
				Description: exampleDescription,
				Location:    "Palo Alto",
				Salary:      "$95k",
			},
			expected: 46,
			decision: DecisionSkip,
		},
		{
			name: "far on-site with high salary is not penalized",
			post: posting.Posting{
				Description: exampleDescription,
				Location:    "Palo Alto",
				Salary:      "$180k",
			},
			expected: 65,
			decision: DecisionSkip,
		},
		{
			name: "low salary without locality is not penalized",
			post: posting.Posting{
				Description: exampleDescription,
				Salary:      "$95k",
			},
			expected: 65,
			decision: DecisionSkip,
		},
		{
			name: "remote clears far on-site",
			post: posting.Posting{
				Description: exampleDescription,
				Location:    "Palo Alto or Remote",
				Salary:      "$95k",
			},
			expected: 65,
			decision: DecisionSkip,
		},
		{
			name:     "internship override",
			post:     posting.Posting{Description: "Summer internship, part-time, great PM experience"},
			expected: 0,
			decision: DecisionSkip,
		},
		{
			// 35 + 10 + 5
			name:     "empty posting",
			post:     posting.Posting{},
			expected: 50,
			decision: DecisionSkip,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorePosting(tt.post)
			if got.Score != tt.expected {
				t.Errorf("Score = %d, want %d (breakdown: %+v)", got.Score, tt.expected, got.Breakdown)
			}
			if got.Decision != tt.decision {
				t.Errorf("Decision = %q, want %q", got.Decision, tt.decision)
			}
		})
	}
}

func TestScore_Breakdown(t *testing.T) {
	got := scorePosting(posting.Posting{Description: exampleDescription})
	bd := got.Breakdown

	if bd.RequiredScore != 75 {
		t.Errorf("RequiredScore = %d, want 75", bd.RequiredScore)
	}
	if bd.SeniorScore != 100 {
		t.Errorf("SeniorScore = %d, want 100", bd.SeniorScore)
	}
	if bd.ResponsibilityCoverage != 0.5 {
		t.Errorf("ResponsibilityCoverage = %v, want 0.5", bd.ResponsibilityCoverage)
	}
	if bd.DomainCoverage != 0.5 {
		t.Errorf("DomainCoverage = %v, want 0.5", bd.DomainCoverage)
	}
	if bd.ToolingCoverage != 0.375 {
		t.Errorf("ToolingCoverage = %v, want 0.375", bd.ToolingCoverage)
	}
	if bd.FarOnSitePenalty || bd.InternshipOverride {
		t.Errorf("unexpected adjustments: %+v", bd)
	}
}

func TestScore_Bundles(t *testing.T) {
	s := NewScorer(DefaultScorerConfig())
	salary := 100

	tests := []struct {
		name     string
		bundle   signals.Bundle
		expected int
	}{
		{
			name: "both penalties",
			bundle: signals.Bundle{
				SQLRequired: true,
				CRMRequired: true,
			},
			// 0.35*57 + 10 + 5 = 34.95
			expected: 35,
		},
		{
			name: "bonuses are unconditional",
			bundle: signals.Bundle{
				Hits: map[signals.Category]int{
					signals.CategoryBilingual: 1,
					signals.CategoryAI:        3,
				},
			},
			expected: 62,
		},
		{
			name: "clamped to 92",
			bundle: signals.Bundle{
				Hits: map[signals.Category]int{
					signals.CategoryPM:        6,
					signals.CategoryAgile:     4,
					signals.CategoryDomain:    9,
					signals.CategoryTools:     8,
					signals.CategoryBilingual: 1,
					signals.CategoryAI:        1,
				},
			},
			expected: 92,
		},
		{
			name: "penalty applies after bonuses",
			bundle: signals.Bundle{
				Hits: map[signals.Category]int{
					signals.CategoryBilingual: 1,
				},
				SalaryCeilingK: &salary,
				FarOnSite:      true,
			},
			// (50 + 8) * 0.7 = 40.6
			expected: 41,
		},
		{
			name: "internship with full-time is scored normally",
			bundle: signals.Bundle{
				Internship: true,
				FullTime:   true,
			},
			expected: 50,
		},
		{
			name: "internship override beats everything",
			bundle: signals.Bundle{
				Hits: map[signals.Category]int{
					signals.CategoryPM:        6,
					signals.CategoryDomain:    6,
					signals.CategoryBilingual: 1,
				},
				Internship: true,
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(tt.bundle)
			if got.Score != tt.expected {
				t.Errorf("Score = %d, want %d (raw %.4f)", got.Score, tt.expected, got.Breakdown.Raw)
			}
			if got.Score < 0 || got.Score > 92 {
				t.Errorf("Score = %d out of [0, 92]", got.Score)
			}
		})
	}
}

func TestScore_SentenceOrderIndependent(t *testing.T) {
	a := posting.Posting{Description: "Own the roadmap and backlog. Partner with stakeholders on KPI growth. SQL required."}
	b := posting.Posting{Description: "SQL required. Partner with stakeholders on KPI growth. Own the roadmap and backlog."}

	if sa, sb := scorePosting(a).Score, scorePosting(b).Score; sa != sb {
		t.Errorf("reordered sentences scored %d and %d, want equal", sa, sb)
	}
}

func TestTier(t *testing.T) {
	tests := []struct {
		score    int
		expected Decision
	}{
		{0, DecisionSkip},
		{69, DecisionSkip},
		{70, DecisionApply},
		{79, DecisionApply},
		{80, DecisionPriority},
		{92, DecisionPriority},
	}

	for _, tt := range tests {
		if got := Tier(tt.score); got != tt.expected {
			t.Errorf("Tier(%d) = %q, want %q", tt.score, got, tt.expected)
		}
	}
}

func TestDecision_ShouldApply(t *testing.T) {
	if DecisionSkip.ShouldApply() {
		t.Error("Skip should not apply")
	}
	if !DecisionApply.ShouldApply() || !DecisionPriority.ShouldApply() {
		t.Error("Apply tiers should apply")
	}
}
