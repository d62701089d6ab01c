package user

const (
	userColumns = `id, external_id, email, first_name, middle_name, last_name, position_level, job_category,
		plan, stripe_customer_id, current_resume_id, created_at, updated_at`

	SelectUserByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	SelectUserByExternalID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE external_id = $1
	`
	SelectUserByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE lower(email) = lower($1)
	`
	SelectUserByStripeCustomerID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE stripe_customer_id = $1
	`
	InsertUser = `
		INSERT INTO users (external_id, email, first_name, middle_name, last_name, position_level, job_category, plan)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns
	UpdateUserProfile = `
		UPDATE users
		SET email = $1,
		    first_name = $2,
		    middle_name = $3,
		    last_name = $4,
		    position_level = $5,
		    job_category = $6,
		    updated_at = now()
		WHERE id = $7
		RETURNING ` + userColumns
	UpdateUserExternalID = `
		UPDATE users
		SET external_id = $1,
		    updated_at = now()
		WHERE id = $2
		RETURNING ` + userColumns
	UpdateUserPlan = `
		UPDATE users
		SET plan = $1,
		    updated_at = now()
		WHERE id = $2
		RETURNING ` + userColumns
	UpdateUserStripeCustomer = `
		UPDATE users
		SET stripe_customer_id = $1,
		    updated_at = now()
		WHERE id = $2
	`
	UpdateUserCurrentResume = `
		UPDATE users
		SET current_resume_id = $1,
		    updated_at = now()
		WHERE id = $2
		RETURNING ` + userColumns
	DeleteUserByID = `
		DELETE FROM users
		WHERE id = $1
		RETURNING ` + userColumns
)
