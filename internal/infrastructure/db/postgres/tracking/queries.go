package tracking

const (
	applicationColumns = `id, user_id, resume_analysis_id, job_title, company, job_url, status, notes,
		applied_at, created_at, updated_at`

	SelectJobApplications = `
		SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE user_id = $1
		ORDER BY updated_at DESC, id DESC
	`
	InsertJobApplication = `
		INSERT INTO job_applications (user_id, resume_analysis_id, job_title, company, job_url, status, notes, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + applicationColumns
	UpdateJobApplication = `
		UPDATE job_applications
		SET job_title = $1, company = $2, job_url = $3, status = $4, notes = $5, applied_at = $6,
			resume_analysis_id = $7, updated_at = now()
		WHERE id = $8 AND user_id = $9
		RETURNING ` + applicationColumns
	DeleteJobApplication = `DELETE FROM job_applications WHERE id = $1 AND user_id = $2`

	optimizedColumns = `id, user_id, original_file_id, job_title, company, job_description, content,
		created_at, updated_at`

	SelectOptimizedResumes = `
		SELECT ` + optimizedColumns + `
		FROM optimized_resumes
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	InsertOptimizedResume = `
		INSERT INTO optimized_resumes (user_id, original_file_id, job_title, company, job_description, content)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + optimizedColumns
	DeleteOptimizedResume = `DELETE FROM optimized_resumes WHERE id = $1 AND user_id = $2`

	preparationColumns = `id, user_id, job_application_id, job_title, company, questions, notes,
		created_at, updated_at`

	SelectInterviewPreparations = `
		SELECT ` + preparationColumns + `
		FROM interview_preparations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	InsertInterviewPreparation = `
		INSERT INTO interview_preparations (user_id, job_application_id, job_title, company, questions, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + preparationColumns
	UpdateInterviewPreparation = `
		UPDATE interview_preparations
		SET job_title = $1, company = $2, questions = $3, notes = $4, job_application_id = $5, updated_at = now()
		WHERE id = $6 AND user_id = $7
		RETURNING ` + preparationColumns
	DeleteInterviewPreparation = `DELETE FROM interview_preparations WHERE id = $1 AND user_id = $2`
)
