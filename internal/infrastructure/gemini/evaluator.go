package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/mitchellh/mapstructure"

	"resume-evaluator-api/internal/domain/analysis"
)

const (
	evaluationTemperature  = 0.3
	coverLetterTemperature = 0.7
	questionsTemperature   = 0.5
	optimizeTemperature    = 0.3

	fallbackMatchScore = 70
	fallbackATSScore   = 80
)

type textGenerator interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

// Evaluator turns model completions into domain results.
type Evaluator struct {
	gen textGenerator
}

func NewEvaluator(gen textGenerator) *Evaluator {
	return &Evaluator{gen: gen}
}

func (e *Evaluator) EvaluateResume(ctx context.Context, resume, job string) (*analysis.Evaluation, error) {
	out, err := e.gen.Generate(ctx, buildEvaluationPrompt(resume, job), evaluationTemperature)
	if err != nil {
		return nil, err
	}

	if ev, err := decodeEvaluation(out); err == nil {
		return ev, nil
	}

	return parseTextEvaluation(out), nil
}

func (e *Evaluator) GenerateCoverLetter(ctx context.Context, resume, job, company string) (string, error) {
	return e.gen.Generate(ctx, buildCoverLetterPrompt(resume, job, company), coverLetterTemperature)
}

func (e *Evaluator) GenerateInterviewQuestions(ctx context.Context, resume, job string) ([]string, error) {
	out, err := e.gen.Generate(ctx, buildInterviewQuestionsPrompt(resume, job), questionsTemperature)
	if err != nil {
		return nil, err
	}

	questions := make([]string, 0)
	for _, line := range strings.Split(out, "\n") {
		if q := strings.TrimSpace(line); q != "" {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

func (e *Evaluator) OptimizeResume(ctx context.Context, resume, job, requirements string) (string, error) {
	return e.gen.Generate(ctx, buildOptimizePrompt(resume, job, requirements), optimizeTemperature)
}

// decodeEvaluation reads the outermost JSON object in the completion.
// Scores may arrive as numbers or numeric strings.
func decodeEvaluation(out string) (*analysis.Evaluation, error) {
	start := strings.Index(out, "{")
	end := strings.LastIndex(out, "}")
	if start < 0 || end < start {
		return nil, errors.New("no json object in completion")
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(out[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("unmarshal completion: %w", err)
	}

	ev := emptyEvaluation()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		Result:           ev,
	})
	if err != nil {
		return nil, err
	}
	if err = dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode completion: %w", err)
	}

	return ev, nil
}

// parseTextEvaluation salvages a score from a free-text completion.
// The last line mentioning a score in range wins.
func parseTextEvaluation(out string) *analysis.Evaluation {
	ev := emptyEvaluation()
	ev.MatchScore = fallbackMatchScore
	ev.ATSCompatibilityScore = fallbackATSScore
	ev.OverallAssessment = "Analysis completed"

	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(strings.ToLower(line), "score") {
			continue
		}
		digits := strings.Map(func(r rune) rune {
			if unicode.IsDigit(r) {
				return r
			}
			return -1
		}, line)
		if digits == "" {
			continue
		}
		if score, err := strconv.Atoi(digits); err == nil && score >= 0 && score <= 100 {
			ev.MatchScore = float64(score)
		}
	}

	return ev
}

func emptyEvaluation() *analysis.Evaluation {
	return &analysis.Evaluation{
		Strengths:             []string{},
		Weaknesses:            []string{},
		MissingKeywords:       []string{},
		SuggestedImprovements: []string{},
		ImprovedBulletPoints:  []string{},
		ATSRecommendations:    []string{},
	}
}
