package matching

import (
	"math"
	"strings"
)

// SkillOverlapScorer scores by the share of the job's skills the candidate
// lists. Skills named only in the job's requirements text count as well.
// A job without any skills scores every candidate by how many skills they
// list, capped at 100.
type SkillOverlapScorer struct{}

func (SkillOverlapScorer) Score(c Candidate, j Job) int {
	have := make(map[string]struct{}, len(c.Skills))
	for _, s := range c.Skills {
		s = normalizeSkill(s)
		if s == "" {
			continue
		}
		have[s] = struct{}{}
	}

	want := make(map[string]struct{}, len(j.Skills))
	for _, s := range j.Skills {
		s = normalizeSkill(s)
		if s == "" {
			continue
		}
		want[s] = struct{}{}
	}

	reqText := strings.ToLower(j.Requirements)
	if reqText != "" {
		for s := range have {
			if strings.Contains(reqText, s) {
				want[s] = struct{}{}
			}
		}
	}

	if len(want) == 0 {
		return clampInt(len(have)*10, 0, 100)
	}

	matched := 0
	for s := range want {
		if _, ok := have[s]; ok {
			matched++
		}
	}

	score := int(math.Round(100 * float64(matched) / float64(len(want))))
	return clampInt(score, 0, 100)
}

func normalizeSkill(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}
