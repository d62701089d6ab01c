package user_file

const (
	fileColumns = `id, user_id, storage_key, original_filename, file_type, mime_type, file_size, created_at`

	SelectUserFiles = `
		SELECT ` + fileColumns + `
		FROM user_files
		WHERE user_id = $1 AND ($2::text IS NULL OR file_type = $2)
		ORDER BY created_at DESC, id DESC
	`
	SelectUserFile = `
		SELECT ` + fileColumns + `
		FROM user_files
		WHERE id = $1 AND user_id = $2
	`
	InsertUserFile = `
		INSERT INTO user_files (user_id, storage_key, original_filename, file_type, mime_type, file_size)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + fileColumns
	DeleteUserFile = `
		DELETE FROM user_files
		WHERE id = $1 AND user_id = $2
		RETURNING ` + fileColumns
)
