package stats

// Severity tiers for stability classifications, from best to worst.
const (
	TierNeutral  = "neutral"
	TierBest     = "best"
	TierVeryGood = "very_good"
	TierGood     = "good"
	TierCaution  = "caution"
	TierWorst    = "worst"
)

type Classification struct {
	Label       string `json:"label"`
	Tier        string `json:"tier"`
	Description string `json:"description"`
}

// ClassifyStability maps a day's stability score and sample count onto a
// display label. The ladder is evaluated top down, first match wins, and
// boundary scores belong to the higher tier.
func ClassifyStability(score float64, count int) Classification {
	switch {
	case count < minStabilityCount:
		return Classification{
			Label:       "insufficient data",
			Tier:        TierNeutral,
			Description: "log at least 3 runs in a day for a stability reading",
		}
	case score >= 90:
		return Classification{
			Label:       "exceptional precision",
			Tier:        TierBest,
			Description: "times are nearly identical, race-ready consistency",
		}
	case score >= 80:
		return Classification{
			Label:       "highly stable",
			Tier:        TierVeryGood,
			Description: "very tight spread between runs",
		}
	case score >= 60:
		return Classification{
			Label:       "solid",
			Tier:        TierGood,
			Description: "consistent day with normal variation",
		}
	case score >= 40:
		return Classification{
			Label:       "some variability",
			Tier:        TierCaution,
			Description: "noticeable spread, watch pacing and recovery",
		}
	default:
		return Classification{
			Label:       "diverging",
			Tier:        TierWorst,
			Description: "times vary widely, focus on repeatable execution",
		}
	}
}
