package plan

type (
	Plan    string
	Action  string
	Feature string

	// Quota is a monthly ceiling for a metered action. Unlimited disables the ceiling.
	Quota int

	Limits struct {
		Scans              Quota
		CoverLetters       Quota
		InterviewQuestions Quota
		Features           []Feature
	}

	// Catalog maps every known plan to its limits. Lookups never fail:
	// unknown plans resolve to Free.
	Catalog map[Plan]Limits
)

const (
	Free    Plan = "free"
	Starter Plan = "starter"
	Premium Plan = "premium"
	Elite   Plan = "elite"
)

const (
	Scan               Action = "scan"
	CoverLetter        Action = "cover_letter"
	InterviewQuestions Action = "interview_questions"
)

const (
	JobSearch          Feature = "job_search"
	JobMatching        Feature = "job_matching"
	ResumeOptimization Feature = "resume_optimization"
)

const Unlimited Quota = -1

var paidFeatures = []Feature{JobSearch, JobMatching, ResumeOptimization}

var DefaultCatalog = Catalog{
	Free: {
		Scans:              5,
		CoverLetters:       0,
		InterviewQuestions: 0,
	},
	Starter: {
		Scans:              Unlimited,
		CoverLetters:       0,
		InterviewQuestions: 0,
		Features:           paidFeatures,
	},
	Premium: {
		Scans:              Unlimited,
		CoverLetters:       Unlimited,
		InterviewQuestions: Unlimited,
		Features:           paidFeatures,
	},
	Elite: {
		Scans:              Unlimited,
		CoverLetters:       Unlimited,
		InterviewQuestions: Unlimited,
		Features:           paidFeatures,
	},
}

func (c Catalog) Limits(p Plan) Limits {
	if l, ok := c[p]; ok {
		return l
	}
	return c[Free]
}

func (c Catalog) Quota(p Plan, a Action) Quota {
	return c.Limits(p).Quota(a)
}

func (c Catalog) HasFeature(p Plan, f Feature) bool {
	for _, have := range c.Limits(p).Features {
		if have == f {
			return true
		}
	}
	return false
}

// Quota returns 0 for actions the catalog does not meter, which denies them.
func (l Limits) Quota(a Action) Quota {
	switch a {
	case Scan:
		return l.Scans
	case CoverLetter:
		return l.CoverLetters
	case InterviewQuestions:
		return l.InterviewQuestions
	default:
		return 0
	}
}

func (q Quota) IsUnlimited() bool { return q == Unlimited }

// Allows reports whether one more action fits under the quota given the current count.
func (q Quota) Allows(count int) bool {
	if q.IsUnlimited() {
		return true
	}
	return count < int(q)
}

func Parse(s string) (Plan, bool) {
	p := Plan(s)
	switch p {
	case Free, Starter, Premium, Elite:
		return p, true
	default:
		return "", false
	}
}

func ParseAction(s string) (Action, bool) {
	a := Action(s)
	switch a {
	case Scan, CoverLetter, InterviewQuestions:
		return a, true
	default:
		return "", false
	}
}

func (p Plan) String() string   { return string(p) }
func (a Action) String() string { return string(a) }

func Actions() []Action { return []Action{Scan, CoverLetter, InterviewQuestions} }
