package job_posting

const (
	postingColumns = `id, title, company, location, description, requirements, salary_range, job_type,
		experience_level, source, source_url, posted_at, is_active, created_at`

	UpsertPosting = `
		INSERT INTO job_postings (title, company, location, description, requirements, salary_range, job_type,
			experience_level, source, source_url, posted_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE)
		ON CONFLICT (source_url) DO UPDATE
		SET title = EXCLUDED.title,
			company = EXCLUDED.company,
			location = EXCLUDED.location,
			description = EXCLUDED.description,
			salary_range = EXCLUDED.salary_range,
			job_type = EXCLUDED.job_type,
			posted_at = EXCLUDED.posted_at,
			is_active = TRUE
	`
	SelectActivePostings = `
		SELECT ` + postingColumns + `
		FROM job_postings
		WHERE is_active
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
)
