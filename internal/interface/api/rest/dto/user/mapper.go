package user

import (
	"resume-evaluator-api/internal/domain/usage"
	"resume-evaluator-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	return User{
		ID:              uDomain.ExternalID,
		Email:           uDomain.Email,
		FirstName:       uDomain.FirstName,
		MiddleName:      uDomain.MiddleName,
		LastName:        uDomain.LastName,
		PositionLevel:   uDomain.PositionLevel,
		JobCategory:     uDomain.JobCategory,
		Plan:            uDomain.Plan.String(),
		CurrentResumeID: uDomain.CurrentResumeID,
		CreatedAt:       uDomain.CreatedAt,
	}
}

func ToDomainProfile(r Request) user.Profile {
	return user.Profile{
		Email:         r.Email,
		FirstName:     r.FirstName,
		MiddleName:    r.MiddleName,
		LastName:      r.LastName,
		PositionLevel: r.PositionLevel,
		JobCategory:   r.JobCategory,
	}
}

func ToResponseUsage(r usage.Record) Usage {
	return Usage{
		Month:                       r.Month,
		ScansUsed:                   r.ScansUsed,
		CoverLettersGenerated:       r.CoverLettersGenerated,
		InterviewQuestionsGenerated: r.InterviewQuestionsGenerated,
	}
}

func ToResponsePlanStatus(st usage.Status) PlanStatus {
	features := make([]string, len(st.Limits.Features))
	for i, f := range st.Limits.Features {
		features[i] = string(f)
	}

	return PlanStatus{
		Plan:  st.Plan.String(),
		Usage: ToResponseUsage(st.Usage),
		Limits: Limits{
			Scans:              int(st.Limits.Scans),
			CoverLetters:       int(st.Limits.CoverLetters),
			InterviewQuestions: int(st.Limits.InterviewQuestions),
			Features:           features,
		},
	}
}

func ToResponseUsageHistory(records []*usage.Record) UsageHistory {
	out := UsageHistory{Data: make([]Usage, len(records))}
	for i, r := range records {
		out.Data[i] = ToResponseUsage(*r)
	}
	return out
}
