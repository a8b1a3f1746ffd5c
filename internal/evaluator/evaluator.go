package evaluator

import (
	"sort"

	"go.uber.org/zap"

	"github.com/vijay-prabhu/jobfit/internal/posting"
	"github.com/vijay-prabhu/jobfit/internal/resume"
	"github.com/vijay-prabhu/jobfit/internal/scoring"
	"github.com/vijay-prabhu/jobfit/internal/signals"
)

// Evaluation combines a posting with its signals, score and resume fragment
type Evaluation struct {
	Posting  posting.Posting  `json:"posting"`
	Signals  signals.Bundle   `json:"signals"`
	Result   scoring.Result   `json:"result"`
	Resume   resume.Fragment  `json:"resume"`
	Decision scoring.Decision `json:"decision"`
}

// Score returns the final acceptance score
func (e Evaluation) Score() int {
	return e.Result.Score
}

// Evaluator runs postings through extraction, scoring and synthesis
type Evaluator struct {
	extractor   *signals.Extractor
	scorer      *scoring.Scorer
	synthesizer *resume.Synthesizer
	logger      *zap.Logger
}

// New creates an Evaluator. The patterns are shared read-only by all stages.
func New(patterns *signals.Patterns, scorerCfg scoring.ScorerConfig, profile resume.Profile, logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{
		extractor:   signals.NewExtractor(patterns),
		scorer:      scoring.NewScorer(scorerCfg),
		synthesizer: resume.NewSynthesizer(patterns, profile),
		logger:      logger,
	}
}

// Default creates an Evaluator with the reference configuration
func Default() *Evaluator {
	return New(signals.Default(), scoring.DefaultScorerConfig(), resume.DefaultProfile(), nil)
}

// Evaluate scores a single posting
func (ev *Evaluator) Evaluate(p posting.Posting) Evaluation {
	bundle := ev.extractor.Extract(p)
	result := ev.scorer.Score(bundle)
	fragment := ev.synthesizer.Synthesize(p, result.Score)

	ev.logger.Debug("posting evaluated",
		zap.String("title", p.Title),
		zap.String("company", p.Company),
		zap.Int("score", result.Score),
		zap.String("decision", string(result.Decision)),
		zap.Bool("far_on_site_penalty", result.Breakdown.FarOnSitePenalty),
		zap.Bool("internship_override", result.Breakdown.InternshipOverride),
	)

	return Evaluation{
		Posting:  p,
		Signals:  bundle,
		Result:   result,
		Resume:   fragment,
		Decision: result.Decision,
	}
}

// EvaluateBatch scores postings sequentially and returns them sorted by
// descending score. Equal scores keep their input order.
func (ev *Evaluator) EvaluateBatch(postings []posting.Posting) []Evaluation {
	results := make([]Evaluation, 0, len(postings))

	for _, p := range postings {
		results = append(results, ev.Evaluate(p))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Result.Score > results[j].Result.Score
	})

	return results
}

// FilterApply returns only evaluations in an apply tier
func FilterApply(evals []Evaluation) []Evaluation {
	var apply []Evaluation
	for _, e := range evals {
		if e.Decision.ShouldApply() {
			apply = append(apply, e)
		}
	}
	return apply
}

// Stats summarizes a batch of evaluations
type Stats struct {
	Total     int     `json:"total"`
	Priority  int     `json:"priority"`
	Apply     int     `json:"apply"`
	Skip      int     `json:"skip"`
	MeanScore float64 `json:"mean_score"`
	TopScore  int     `json:"top_score"`
}

// GetStats returns statistics about evaluated postings
func GetStats(evals []Evaluation) Stats {
	stats := Stats{Total: len(evals)}

	sum := 0
	for _, e := range evals {
		sum += e.Result.Score
		stats.TopScore = max(stats.TopScore, e.Result.Score)

		switch e.Decision {
		case scoring.DecisionPriority:
			stats.Priority++
		case scoring.DecisionApply:
			stats.Apply++
		case scoring.DecisionSkip:
			stats.Skip++
		}
	}

	if stats.Total > 0 {
		stats.MeanScore = float64(sum) / float64(stats.Total)
	}

	return stats
}
