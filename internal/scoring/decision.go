package scoring

// Decision is the tier a score falls into
type Decision string

const (
	DecisionPriority Decision = "Apply (Priority)"
	DecisionApply    Decision = "Apply"
	DecisionSkip     Decision = "Skip"
)

// Tier thresholds
const (
	PriorityThreshold = 80
	ApplyThreshold    = 70
)

// Tier maps a final score onto its decision
func Tier(score int) Decision {
	switch {
	case score >= PriorityThreshold:
		return DecisionPriority
	case score >= ApplyThreshold:
		return DecisionApply
	default:
		return DecisionSkip
	}
}

// ShouldApply reports whether the decision is one of the apply tiers
func (d Decision) ShouldApply() bool {
	return d == DecisionPriority || d == DecisionApply
}
