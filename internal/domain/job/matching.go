package job

import (
	"cmp"
	"slices"
	"strings"

	"resume-evaluator-api/internal/domain/analysis"
)

const (
	LevelEntry  = "entry"
	LevelMid    = "mid"
	LevelSenior = "senior"

	defaultQuery   = "software developer"
	queryScanLines = 5
)

var (
	titleHints  = []string{"developer", "engineer", "manager", "analyst", "specialist"}
	seniorHints = []string{"senior", "lead", "principal", "architect"}
	midHints    = []string{"mid", "intermediate", "3+ years", "4+ years"}
	entryHints  = []string{"junior", "entry", "graduate", "0-2 years"}
)

// SearchQuery picks the first line among the leading few that looks like a job
// title, falling back to the first line.
func SearchQuery(jobDescription string) string {
	lines := strings.Split(jobDescription, "\n")
	for i, line := range lines {
		if i == queryScanLines {
			break
		}
		l := strings.ToLower(strings.TrimSpace(line))
		if hasAny(l, titleHints) {
			return l
		}
	}

	if first := strings.TrimSpace(lines[0]); first != "" {
		return first
	}
	return defaultQuery
}

// ExperienceLevel infers seniority from posting text. Unclear postings are mid.
func ExperienceLevel(description string) string {
	d := strings.ToLower(description)
	switch {
	case hasAny(d, seniorHints):
		return LevelSenior
	case hasAny(d, midHints):
		return LevelMid
	case hasAny(d, entryHints):
		return LevelEntry
	default:
		return LevelMid
	}
}

// MatchScore is the keyword coverage of the resume against the posting, 0-100.
func MatchScore(resumeText, description string) float64 {
	gaps := analysis.FindKeywordGaps(resumeText, description)
	return min(100, max(0, gaps.CoveragePercentage))
}

// Rank scores every posting against the resume and returns the best limit of them.
func Rank(resumeText string, ps Postings, limit int) Postings {
	for _, p := range ps {
		p.MatchScore = MatchScore(resumeText, p.Description)
	}

	ranked := slices.Clone(ps)
	slices.SortStableFunc(ranked, func(a, b *Posting) int {
		return cmp.Compare(b.MatchScore, a.MatchScore)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func hasAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
