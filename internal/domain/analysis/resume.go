package analysis

import (
	"strings"
)

const (
	minResumeWords = 200
	maxResumeWords = 800
)

var (
	contactTerms    = []string{"email", "phone", "@"}
	educationHints  = []string{"education", "degree", "university", "college"}
	experienceHints = []string{"experience", "work", "employment", "job"}
	skillsHints     = []string{"skills", "technologies", "programming", "languages"}
)

// AnalyzeResumeStructure runs the ATS layout checks on extracted resume text.
func AnalyzeResumeStructure(resumeText string) ResumeStructure {
	text := strings.ToLower(resumeText)

	s := ResumeStructure{
		WordCount:       len(strings.Fields(resumeText)),
		HasContactInfo:  containsAny(text, contactTerms),
		HasEducation:    containsAny(text, educationHints),
		HasExperience:   containsAny(text, experienceHints),
		HasSkills:       containsAny(text, skillsHints),
		Recommendations: []string{},
	}

	switch {
	case s.WordCount < minResumeWords:
		s.Recommendations = append(s.Recommendations, "Resume seems too short. Consider adding more details about your experience.")
	case s.WordCount > maxResumeWords:
		s.Recommendations = append(s.Recommendations, "Resume might be too long. Consider condensing to 1-2 pages.")
	}
	if !s.HasContactInfo {
		s.Recommendations = append(s.Recommendations, "Add contact information (email, phone).")
	}
	if !s.HasEducation {
		s.Recommendations = append(s.Recommendations, "Include education section.")
	}
	if !s.HasExperience {
		s.Recommendations = append(s.Recommendations, "Add work experience section.")
	}
	if !s.HasSkills {
		s.Recommendations = append(s.Recommendations, "Include skills section.")
	}

	return s
}

func containsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
