package analysis

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	technicalSkills = []string{
		"python", "javascript", "java", "c++", "c#", "php", "ruby", "go", "rust", "swift", "kotlin",
		"react", "angular", "vue", "node.js", "express", "django", "flask", "spring", "laravel",
		"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
		"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "github",
		"machine learning", "ai", "data science", "pandas", "numpy", "tensorflow", "pytorch",
		"html", "css", "bootstrap", "tailwind", "sass", "less",
		"agile", "scrum", "kanban", "jira", "confluence",
	}
	softSkills = []string{
		"leadership", "communication", "teamwork", "problem solving", "analytical thinking",
		"creativity", "adaptability", "time management", "organization", "attention to detail",
		"customer service", "project management", "collaboration", "mentoring", "presentation",
	}
	experienceLevels = []string{
		"entry level", "junior", "mid level", "senior", "lead", "principal", "architect",
		"intern", "graduate", "experienced", "expert",
	}
	educationTerms = []string{
		"bachelor", "master", "phd", "degree", "diploma", "certification", "certified",
	}

	yearsRe  = regexp.MustCompile(`(\d+)[+]?\s*(?:years?|yrs?)\s*(?:of\s*)?(?:experience|exp)`)
	salaryRe = regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})*(?:-\d{1,3}(?:,\d{3})*)?)\s*(?:k|k\+|per\s*year|annually)`)
)

const (
	DifficultyEntry  = "entry"
	DifficultyMid    = "mid"
	DifficultySenior = "senior"

	manyTechnicalSkills = 10
	seniorYears         = 5
)

// ExtractJobKeywords matches the fixed vocabularies against the lower-cased
// description by substring.
func ExtractJobKeywords(jobDescription string) JobKeywords {
	text := strings.ToLower(jobDescription)

	kw := JobKeywords{
		TechnicalSkills:       containedIn(text, technicalSkills),
		SoftSkills:            containedIn(text, softSkills),
		ExperienceLevel:       containedIn(text, experienceLevels),
		EducationRequirements: containedIn(text, educationTerms),
		YearsRequired:         []int{},
		SalaryInfo:            []string{},
	}

	for _, m := range yearsRe.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil {
			kw.YearsRequired = append(kw.YearsRequired, n)
		}
	}
	for _, m := range salaryRe.FindAllStringSubmatch(text, -1) {
		kw.SalaryInfo = append(kw.SalaryInfo, m[1])
	}

	return kw
}

func AnalyzeJobRequirements(jobDescription string) JobAnalysis {
	kw := ExtractJobKeywords(jobDescription)

	a := JobAnalysis{
		Keywords:          kw,
		TotalRequirements: len(kw.TechnicalSkills) + len(kw.SoftSkills),
		DifficultyLevel:   DifficultyEntry,
		Recommendations:   []string{},
	}

	maxYears := -1
	if len(kw.YearsRequired) > 0 {
		maxYears = slices.Max(kw.YearsRequired)
		switch {
		case maxYears <= 2:
			a.DifficultyLevel = DifficultyEntry
		case maxYears <= seniorYears:
			a.DifficultyLevel = DifficultyMid
		default:
			a.DifficultyLevel = DifficultySenior
		}
	}

	if len(kw.TechnicalSkills) > manyTechnicalSkills {
		a.Recommendations = append(a.Recommendations,
			"This role requires many technical skills. Focus on the most relevant ones for your resume.")
	}
	if maxYears > seniorYears {
		a.Recommendations = append(a.Recommendations,
			"This is a senior-level position. Emphasize leadership and project experience.")
	}

	return a
}

// FindKeywordGaps lists job skills absent from the resume and the share of
// skills the resume covers, rounded to one decimal.
func FindKeywordGaps(resumeText, jobDescription string) KeywordGaps {
	resume := strings.ToLower(resumeText)
	kw := ExtractJobKeywords(jobDescription)

	gaps := KeywordGaps{
		MissingTechnicalSkills: missingFrom(resume, kw.TechnicalSkills),
		MissingSoftSkills:      missingFrom(resume, kw.SoftSkills),
	}
	gaps.TotalMissing = len(gaps.MissingTechnicalSkills) + len(gaps.MissingSoftSkills)

	total := len(kw.TechnicalSkills) + len(kw.SoftSkills)
	covered := total - gaps.TotalMissing
	gaps.CoveragePercentage = math.Round(float64(covered)/float64(max(1, total))*1000) / 10

	return gaps
}

func containedIn(text string, vocabulary []string) []string {
	found := []string{}
	for _, term := range vocabulary {
		if strings.Contains(text, term) {
			found = append(found, term)
		}
	}
	return found
}

func missingFrom(text string, terms []string) []string {
	missing := []string{}
	for _, term := range terms {
		if !strings.Contains(text, term) {
			missing = append(missing, term)
		}
	}
	return missing
}
