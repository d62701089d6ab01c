package analysis

import (
	"time"

	"resume-evaluator-api/internal/domain/user"
)

type (
	// Evaluation is the model-produced assessment of a resume against a job.
	// It is stored and returned as received.
	Evaluation struct {
		MatchScore            float64  `json:"match_score" mapstructure:"match_score"`
		OverallAssessment     string   `json:"overall_assessment" mapstructure:"overall_assessment"`
		Strengths             []string `json:"strengths" mapstructure:"strengths"`
		Weaknesses            []string `json:"weaknesses" mapstructure:"weaknesses"`
		MissingKeywords       []string `json:"missing_keywords" mapstructure:"missing_keywords"`
		SuggestedImprovements []string `json:"suggested_improvements" mapstructure:"suggested_improvements"`
		ImprovedBulletPoints  []string `json:"improved_bullet_points" mapstructure:"improved_bullet_points"`
		ATSCompatibilityScore float64  `json:"ats_compatibility_score" mapstructure:"ats_compatibility_score"`
		ATSRecommendations    []string `json:"ats_recommendations" mapstructure:"ats_recommendations"`
	}

	KeywordGaps struct {
		MissingTechnicalSkills []string `json:"missing_technical_skills"`
		MissingSoftSkills      []string `json:"missing_soft_skills"`
		TotalMissing           int      `json:"total_missing"`
		CoveragePercentage     float64  `json:"coverage_percentage"`
	}

	JobKeywords struct {
		TechnicalSkills       []string `json:"technical_skills"`
		SoftSkills            []string `json:"soft_skills"`
		ExperienceLevel       []string `json:"experience_level"`
		EducationRequirements []string `json:"education_requirements"`
		YearsRequired         []int    `json:"years_required"`
		SalaryInfo            []string `json:"salary_info"`
	}

	JobAnalysis struct {
		Keywords          JobKeywords `json:"keywords"`
		TotalRequirements int         `json:"total_requirements"`
		DifficultyLevel   string      `json:"difficulty_level"`
		Recommendations   []string    `json:"recommendations"`
	}

	ResumeStructure struct {
		WordCount       int      `json:"word_count"`
		HasContactInfo  bool     `json:"has_contact_info"`
		HasEducation    bool     `json:"has_education"`
		HasExperience   bool     `json:"has_experience"`
		HasSkills       bool     `json:"has_skills"`
		Recommendations []string `json:"recommendations"`
	}

	// ResumeAnalysis is one immutable evaluation event.
	ResumeAnalysis struct {
		ID             int64
		UserID         user.ID
		ResumeFileID   *int64
		ResumeText     string
		JobDescription string

		Evaluation  Evaluation
		KeywordGaps KeywordGaps
		JobAnalysis JobAnalysis

		CreatedAt time.Time
	}
	ResumeAnalyses []*ResumeAnalysis
)
