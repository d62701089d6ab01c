package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchQuery(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"title on second line", "ACME Corp\nSenior Backend Engineer\nRemote", "senior backend engineer"},
		{"no title falls back to first line", "ACME Corp\nWe build rockets", "ACME Corp"},
		{"title beyond fifth line ignored", "a\nb\nc\nd\ne\nData Analyst", "a"},
		{"empty description", "", "software developer"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchQuery(tt.in))
		})
	}
}

func TestExperienceLevel(t *testing.T) {
	assert.Equal(t, LevelSenior, ExperienceLevel("Tech Lead for payments"))
	assert.Equal(t, LevelMid, ExperienceLevel("Requires 3+ years"))
	assert.Equal(t, LevelEntry, ExperienceLevel("Junior role, graduates welcome"))
	assert.Equal(t, LevelMid, ExperienceLevel("Backend role"))
}

func TestRank(t *testing.T) {
	ps := Postings{
		{Title: "none", Description: "python aws docker"},
		{Title: "full", Description: "docker"},
		{Title: "half", Description: "docker kubernetes"},
	}

	ranked := Rank("docker", ps, 2)

	require.Len(t, ranked, 2)
	assert.Equal(t, "full", ranked[0].Title)
	assert.InDelta(t, 100.0, ranked[0].MatchScore, 0.001)
	assert.Equal(t, "half", ranked[1].Title)
	assert.InDelta(t, 50.0, ranked[1].MatchScore, 0.001)
}
