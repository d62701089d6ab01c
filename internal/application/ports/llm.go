package ports

import (
	"context"

	"resume-evaluator-api/internal/domain/analysis"
)

type ResumeEvaluator interface {
	EvaluateResume(ctx context.Context, resume, job string) (*analysis.Evaluation, error)
	GenerateCoverLetter(ctx context.Context, resume, job, company string) (string, error)
	GenerateInterviewQuestions(ctx context.Context, resume, job string) ([]string, error)
	OptimizeResume(ctx context.Context, resume, job, requirements string) (string, error)
}
