package user

import (
	"time"

	"resume-evaluator-api/internal/domain/plan"
)

type (
	// ID is the internal surrogate key. It never changes for the lifetime of a user,
	// even when the identity provider reissues the external id.
	ID   int64
	User struct {
		ID         ID
		ExternalID string
		Email      string

		FirstName     string
		MiddleName    string
		LastName      string
		PositionLevel string
		JobCategory   string

		Plan             plan.Plan
		StripeCustomerID *string
		CurrentResumeID  *int64

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User

	Profile struct {
		Email         string
		FirstName     string
		MiddleName    string
		LastName      string
		PositionLevel string
		JobCategory   string
	}
)

func (u *User) Profile() Profile {
	return Profile{
		Email:         u.Email,
		FirstName:     u.FirstName,
		MiddleName:    u.MiddleName,
		LastName:      u.LastName,
		PositionLevel: u.PositionLevel,
		JobCategory:   u.JobCategory,
	}
}

// Merge overlays the non-empty fields of with onto p.
func (p Profile) Merge(with Profile) Profile {
	if with.Email != "" {
		p.Email = with.Email
	}
	if with.FirstName != "" {
		p.FirstName = with.FirstName
	}
	if with.MiddleName != "" {
		p.MiddleName = with.MiddleName
	}
	if with.LastName != "" {
		p.LastName = with.LastName
	}
	if with.PositionLevel != "" {
		p.PositionLevel = with.PositionLevel
	}
	if with.JobCategory != "" {
		p.JobCategory = with.JobCategory
	}
	return p
}
