package analysis

import (
	"encoding/json"
)

// EncodePayload serializes a result payload into its stored text form.
func EncodePayload(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeEvaluation never fails: unreadable input yields the empty evaluation.
func DecodeEvaluation(raw string) Evaluation { return decodeOrEmpty[Evaluation](raw) }

func DecodeKeywordGaps(raw string) KeywordGaps { return decodeOrEmpty[KeywordGaps](raw) }

func DecodeJobAnalysis(raw string) JobAnalysis { return decodeOrEmpty[JobAnalysis](raw) }

func decodeOrEmpty[T any](raw string) T {
	var v T
	if raw == "" {
		return v
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		var empty T
		return empty
	}
	return v
}
