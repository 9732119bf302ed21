package matching

import (
	"fmt"
	"strings"
)

const (
	StrategyRandom       = "random"
	StrategySkillOverlap = "skill_overlap"
)

type Candidate struct {
	JobSeekerID int64
	Skills      []string
	AboutMe     string
}

type Job struct {
	ID           int64
	Title        string
	Requirements string
	Skills       []string
}

// Scorer rates how well a candidate fits a job on a 0..100 scale. Job may be
// the zero value when no posting is in context.
type Scorer interface {
	Score(c Candidate, j Job) int
}

func NewScorer(strategy string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategyRandom:
		return NewRandomScorer(nil), nil
	case StrategySkillOverlap:
		return SkillOverlapScorer{}, nil
	default:
		return nil, fmt.Errorf("unknown match strategy: %s", strategy)
	}
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
