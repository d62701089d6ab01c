package user

import (
	"resume-evaluator-api/internal/domain/plan"
	domain "resume-evaluator-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	p, ok := plan.Parse(model.Plan)
	if !ok {
		p = plan.Free
	}

	return &domain.User{
		ID:         domain.ID(model.ID),
		ExternalID: model.ExternalID,
		Email:      model.Email,

		FirstName:     model.FirstName,
		MiddleName:    model.MiddleName,
		LastName:      model.LastName,
		PositionLevel: model.PositionLevel,
		JobCategory:   model.JobCategory,

		Plan:             p,
		StripeCustomerID: model.StripeCustomerID,
		CurrentResumeID:  model.CurrentResumeID,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
