package billing

import (
	"time"
)

type (
	CheckoutRequest struct {
		Plan string `json:"plan"`
	}

	Checkout struct {
		SessionID string `json:"session_id"`
		URL       string `json:"url"`
	}

	Portal struct {
		URL string `json:"url"`
	}

	Payment struct {
		ID        int64     `json:"id"`
		Amount    int64     `json:"amount"`
		Currency  string    `json:"currency"`
		Plan      string    `json:"plan"`
		Status    string    `json:"status"`
		CreatedAt time.Time `json:"created_at"`
	}
	ResponseData struct {
		Data []Payment `json:"data"`
	}
)
