package analysis

const (
	analysisColumns = `id, user_id, resume_file_id, resume_text, job_description,
		ai_evaluation, keyword_gaps, job_analysis, created_at`

	InsertAnalysis = `
		INSERT INTO resume_analyses (user_id, resume_file_id, resume_text, job_description,
			ai_evaluation, keyword_gaps, job_analysis)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + analysisColumns
	SelectRecentAnalyses = `
		SELECT ` + analysisColumns + `
		FROM resume_analyses
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	SelectAnalysis = `
		SELECT ` + analysisColumns + `
		FROM resume_analyses
		WHERE id = $1 AND user_id = $2
	`
)
