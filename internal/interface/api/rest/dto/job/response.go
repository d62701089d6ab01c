package job

type (
	AnalyzeRequest struct {
		JobDescription string `json:"job_description"`
	}

	SearchRequest struct {
		Query    string `json:"query"`
		Location string `json:"location"`
		Limit    int    `json:"limit"`
	}

	MatchRequest struct {
		ResumeText     string `json:"resume_text"`
		JobDescription string `json:"job_description"`
		Location       string `json:"location"`
		Limit          int    `json:"limit"`
	}

	Posting struct {
		Title           string  `json:"title"`
		Company         string  `json:"company"`
		Location        string  `json:"location"`
		Description     string  `json:"description"`
		Requirements    string  `json:"requirements,omitempty"`
		SalaryRange     string  `json:"salary_range,omitempty"`
		JobType         string  `json:"job_type,omitempty"`
		ExperienceLevel string  `json:"experience_level"`
		Source          string  `json:"source"`
		SourceURL       string  `json:"source_url"`
		PostedAt        string  `json:"posted_at,omitempty"`
		MatchScore      float64 `json:"match_score"`
	}
	Postings     []Posting
	ResponseData struct {
		Data Postings `json:"data"`
	}
)
