package job

import (
	"resume-evaluator-api/internal/domain/job"
)

func ToResponsePostings(ps job.Postings) Postings {
	out := make(Postings, len(ps))
	for idx, p := range ps {
		out[idx] = Posting{
			Title:           p.Title,
			Company:         p.Company,
			Location:        p.Location,
			Description:     p.Description,
			Requirements:    p.Requirements,
			SalaryRange:     p.SalaryRange,
			JobType:         p.JobType,
			ExperienceLevel: p.ExperienceLevel,
			Source:          p.Source,
			SourceURL:       p.SourceURL,
			PostedAt:        p.PostedAt,
			MatchScore:      p.MatchScore,
		}
	}
	return out
}
