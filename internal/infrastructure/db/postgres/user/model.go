package user

import (
	"time"

	"resume-evaluator-api/internal/domain/user"
)

var (
	ErrUserAlreadyExists  = user.ErrAlreadyExists
	ErrEmailAlreadyExists = user.ErrEmailTaken
)

type (
	User struct {
		ID               int64
		ExternalID       string
		Email            string
		FirstName        string
		MiddleName       string
		LastName         string
		PositionLevel    string
		JobCategory      string
		Plan             string
		StripeCustomerID *string
		CurrentResumeID  *int64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
