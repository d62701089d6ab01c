package usage

const (
	usageColumns = `id, user_id, month, scans_used, cover_letters_generated, interview_questions_generated, created_at, updated_at`

	// The no-op update makes RETURNING yield the existing row on conflict.
	UpsertUsageRecord = `
		INSERT INTO usage_records (user_id, month)
		VALUES ($1, $2)
		ON CONFLICT (user_id, month) DO UPDATE
		SET user_id = EXCLUDED.user_id
		RETURNING ` + usageColumns
	IncrementUsageRecord = `
		INSERT INTO usage_records (user_id, month, scans_used, cover_letters_generated, interview_questions_generated)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, month) DO UPDATE
		SET scans_used = usage_records.scans_used + EXCLUDED.scans_used,
		    cover_letters_generated = usage_records.cover_letters_generated + EXCLUDED.cover_letters_generated,
		    interview_questions_generated = usage_records.interview_questions_generated + EXCLUDED.interview_questions_generated,
		    updated_at = now()
		RETURNING ` + usageColumns
	SelectUsageHistory = `
		SELECT ` + usageColumns + `
		FROM usage_records
		WHERE user_id = $1
		ORDER BY month DESC
		LIMIT $2
	`
)
