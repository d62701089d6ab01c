package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "resume-evaluator-api/internal/domain/tracking"
)

var (
	applicationCols = []string{
		"id", "user_id", "resume_analysis_id", "job_title", "company", "job_url", "status", "notes",
		"applied_at", "created_at", "updated_at",
	}
	preparationCols = []string{
		"id", "user_id", "job_application_id", "job_title", "company", "questions", "notes",
		"created_at", "updated_at",
	}
)

func TestRepository_CreateJobApplicationDefaultsToSaved(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ts := time.Now().UTC()
	mock.ExpectQuery(`INSERT INTO job_applications`).
		WithArgs(int64(2), (*int64)(nil), "Go Engineer", "Acme", "", "saved", "", (*time.Time)(nil)).
		WillReturnRows(pgxmock.NewRows(applicationCols).
			AddRow(int64(1), int64(2), (*int64)(nil), "Go Engineer", "Acme", "", "saved", "", (*time.Time)(nil), ts, ts))

	a, err := NewRepository(mock).CreateJobApplication(context.Background(), &domain.JobApplication{
		UserID:   2,
		JobTitle: "Go Engineer",
		Company:  "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSaved, a.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateJobApplicationNotOwned(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`UPDATE job_applications`).
		WithArgs("t", "c", "", "applied", "", (*time.Time)(nil), (*int64)(nil), int64(5), int64(2)).
		WillReturnRows(pgxmock.NewRows(applicationCols))

	a, err := NewRepository(mock).UpdateJobApplication(context.Background(), &domain.JobApplication{
		ID:       5,
		UserID:   2,
		JobTitle: "t",
		Company:  "c",
		Status:   domain.StatusApplied,
	})
	require.NoError(t, err)
	assert.Nil(t, a)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteReportsOwnership(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "owned", affected: 1, want: true},
		{name: "foreign or missing", affected: 0, want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			mock.ExpectExec(`DELETE FROM optimized_resumes WHERE id = \$1 AND user_id = \$2`).
				WithArgs(int64(3), int64(2)).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.affected))

			ok, err := NewRepository(mock).DeleteOptimizedResume(context.Background(), 2, 3)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_InterviewPreparationQuestionsRoundTrip(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	ts := time.Now().UTC()
	stored := `["Why Go?","Describe a hard bug"]`
	mock.ExpectQuery(`INSERT INTO interview_preparations`).
		WithArgs(int64(2), (*int64)(nil), "SRE", "", stored, "").
		WillReturnRows(pgxmock.NewRows(preparationCols).
			AddRow(int64(4), int64(2), (*int64)(nil), "SRE", "", stored, "", ts, ts))
	mock.ExpectQuery(`SELECT .* FROM interview_preparations\s+WHERE user_id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows(preparationCols).
			AddRow(int64(4), int64(2), (*int64)(nil), "SRE", "", "garbage", "", ts, ts))

	repo := NewRepository(mock)
	p, err := repo.CreateInterviewPreparation(context.Background(), &domain.InterviewPreparation{
		UserID:    2,
		JobTitle:  "SRE",
		Questions: []string{"Why Go?", "Describe a hard bug"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Why Go?", "Describe a hard bug"}, p.Questions)

	list, err := repo.FetchInterviewPreparations(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Questions)
	require.NoError(t, mock.ExpectationsWereMet())
}
