package usage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"resume-evaluator-api/internal/domain/plan"
)

func TestMonthOf(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"mid month", time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), "2024-01"},
		{"last second of january", time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC), "2024-01"},
		{"first instant of february", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), "2024-02"},
		{"non utc input normalized", time.Date(2024, 3, 1, 1, 0, 0, 0, time.FixedZone("CET", 2*3600)), "2024-02"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthOf(tt.in))
		})
	}
}

func TestRecord_Count(t *testing.T) {
	r := &Record{ScansUsed: 3, CoverLettersGenerated: 1, InterviewQuestionsGenerated: 7}

	assert.Equal(t, 3, r.Count(plan.Scan))
	assert.Equal(t, 1, r.Count(plan.CoverLetter))
	assert.Equal(t, 7, r.Count(plan.InterviewQuestions))
	assert.Equal(t, 0, r.Count(plan.Action("other")))
}

func TestDeltas(t *testing.T) {
	s, c, i := Deltas(plan.CoverLetter)
	assert.Equal(t, []int{0, 1, 0}, []int{s, c, i})

	s, c, i = Deltas(plan.Action("other"))
	assert.Equal(t, []int{0, 0, 0}, []int{s, c, i})
}
