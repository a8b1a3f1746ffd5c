package scoring

import (
	"math"

	"github.com/vijay-prabhu/jobfit/internal/signals"
)

// ScorerConfig configures the weighted acceptance model
type ScorerConfig struct {
	// Linear weights, applied to 0-100 terms
	RequiredWeight       float64
	SeniorWeight         float64
	ResponsibilityWeight float64
	DomainWeight         float64
	ToolingWeight        float64
	FlatWeight           float64 // Unconditional credit every posting receives

	// Coverage caps
	ResponsibilityCap int
	DomainCap         int
	ToolingCap        int

	// Required-context penalties
	SQLPenalty int
	CRMPenalty int

	// Presence bonuses
	BilingualBonus float64
	AIBonus        float64

	// Far on-site penalty, applied when salary ceiling <= LowSalaryK
	LowSalaryK      int
	FarOnSiteFactor float64

	MaxScore int
}

// DefaultScorerConfig returns the reference weighting
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		RequiredWeight:       0.35,
		SeniorWeight:         0.10,
		ResponsibilityWeight: 0.20,
		DomainWeight:         0.20,
		ToolingWeight:        0.10,
		FlatWeight:           0.05,

		ResponsibilityCap: 8,
		DomainCap:         6,
		ToolingCap:        8,

		SQLPenalty: 25,
		CRMPenalty: 18,

		BilingualBonus: 8,
		AIBonus:        4,

		LowSalaryK:      120,
		FarOnSiteFactor: 0.70,

		MaxScore: 92,
	}
}

// seniorScore is a profile assumption: the candidate always clears the seniority bar.
const seniorScore = 100

// Breakdown records every intermediate term of a score
type Breakdown struct {
	RequiredScore          int     `json:"required_score"`
	SeniorScore            int     `json:"senior_score"`
	ResponsibilityCoverage float64 `json:"responsibility_coverage"`
	DomainCoverage         float64 `json:"domain_coverage"`
	ToolingCoverage        float64 `json:"tooling_coverage"`
	WeightedBase           float64 `json:"weighted_base"`
	BilingualBonus         float64 `json:"bilingual_bonus"`
	AIBonus                float64 `json:"ai_bonus"`
	FarOnSitePenalty       bool    `json:"far_on_site_penalty"`
	InternshipOverride     bool    `json:"internship_override"`
	Raw                    float64 `json:"raw"` // Before clamping and rounding
}

// Result is the outcome of scoring one posting
type Result struct {
	Score     int       `json:"score"`
	Decision  Decision  `json:"decision"`
	Breakdown Breakdown `json:"breakdown"`
}

// Scorer computes acceptance scores from signal bundles
type Scorer struct {
	config ScorerConfig
}

// NewScorer creates a new Scorer with the given configuration
func NewScorer(config ScorerConfig) *Scorer {
	return &Scorer{config: config}
}

// Score combines the signals into a bounded integer score.
// Operation order matters: bonuses are added before the far on-site factor
// multiplies the total, and the internship override discards everything.
func (s *Scorer) Score(b signals.Bundle) Result {
	cfg := s.config
	var bd Breakdown

	penalty := 0
	if b.SQLRequired {
		penalty += cfg.SQLPenalty
	}
	if b.CRMRequired {
		penalty += cfg.CRMPenalty
	}
	bd.RequiredScore = max(0, 100-penalty)
	bd.SeniorScore = seniorScore

	bd.ResponsibilityCoverage = signals.RatioCap(b.ResponsibilityHits(), cfg.ResponsibilityCap)
	bd.DomainCoverage = signals.RatioCap(b.Hits[signals.CategoryDomain], cfg.DomainCap)
	bd.ToolingCoverage = signals.RatioCap(b.Hits[signals.CategoryTools], cfg.ToolingCap)

	bd.WeightedBase = cfg.RequiredWeight*float64(bd.RequiredScore) +
		cfg.SeniorWeight*float64(bd.SeniorScore) +
		cfg.ResponsibilityWeight*(100*bd.ResponsibilityCoverage) +
		cfg.DomainWeight*(100*bd.DomainCoverage) +
		cfg.ToolingWeight*(100*bd.ToolingCoverage) +
		cfg.FlatWeight*100

	raw := bd.WeightedBase
	if b.Has(signals.CategoryBilingual) {
		bd.BilingualBonus = cfg.BilingualBonus
		raw += cfg.BilingualBonus
	}
	if b.Has(signals.CategoryAI) {
		bd.AIBonus = cfg.AIBonus
		raw += cfg.AIBonus
	}

	if b.SalaryCeilingK != nil && *b.SalaryCeilingK <= cfg.LowSalaryK && b.FarOnSite {
		bd.FarOnSitePenalty = true
		raw *= cfg.FarOnSiteFactor
	}

	if b.Internship && !b.FullTime {
		bd.InternshipOverride = true
		raw = 0
	}
	bd.Raw = raw

	score := int(math.RoundToEven(math.Max(0, math.Min(float64(cfg.MaxScore), raw))))

	return Result{
		Score:     score,
		Decision:  Tier(score),
		Breakdown: bd,
	}
}
