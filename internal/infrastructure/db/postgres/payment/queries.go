package payment

const (
	paymentColumns = `id, user_id, stripe_event_id, stripe_payment_intent_id, amount, currency, plan, status, created_at`

	InsertPayment = `
		INSERT INTO payments (user_id, stripe_event_id, stripe_payment_intent_id, amount, currency, plan, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (stripe_event_id) DO NOTHING
		RETURNING id
	`
	InsertWebhookEvent = `
		INSERT INTO webhook_events (stripe_event_id, event_type, user_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (stripe_event_id) DO NOTHING
		RETURNING stripe_event_id
	`
	UpdateUserPlan = `
		UPDATE users
		SET plan = $1, updated_at = now()
		WHERE id = $2
	`
	SelectPayments = `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
)
