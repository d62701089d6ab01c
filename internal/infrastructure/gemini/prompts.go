package gemini

import "fmt"

const evaluationPrompt = `You are an expert resume evaluator and career coach. Analyze the following resume against the job description and provide a detailed evaluation.

Job Description:
%s

Resume:
%s

Respond with a single JSON object using exactly these keys:
{
  "match_score": 0-100,
  "overall_assessment": "one sentence",
  "strengths": ["..."],
  "weaknesses": ["..."],
  "missing_keywords": ["..."],
  "suggested_improvements": ["..."],
  "improved_bullet_points": ["..."],
  "ats_compatibility_score": 0-100,
  "ats_recommendations": ["..."]
}

Give actionable feedback specific to this job.`

const coverLetterPrompt = `Write a professional cover letter for the following job application.

Job Description:
%s

Resume Summary:
%s...

Company: %s

The letter addresses the hiring manager, shows enthusiasm for the role, highlights relevant experience from the resume, explains the fit with the company and ends with a call to action.
Keep it between 200 and 300 words.`

const interviewQuestionsPrompt = `Generate 5-7 relevant interview questions for a candidate with this resume applying for this job.

Job Description:
%s

Resume:
%s

Probe specific experiences from the resume and the skills the job requires.
Return only the questions, one per line, without numbering.`

const optimizePrompt = `You are an expert resume writer. Optimize the following resume for the job below.

Do NOT add false information, invented experience or skills absent from the original resume.
Only reorganize, rephrase and emphasize existing content.

Job Description:
%s

Job Requirements:
%s

Original Resume:
%s

Return only the optimized resume text.`

// coverLetterResumeChars bounds how much of the resume the cover letter prompt carries.
const coverLetterResumeChars = 500

func buildEvaluationPrompt(resume, job string) string {
	return fmt.Sprintf(evaluationPrompt, job, resume)
}

func buildCoverLetterPrompt(resume, job, company string) string {
	if company == "" {
		company = "the company"
	}
	return fmt.Sprintf(coverLetterPrompt, job, truncateRunes(resume, coverLetterResumeChars), company)
}

func buildInterviewQuestionsPrompt(resume, job string) string {
	return fmt.Sprintf(interviewQuestionsPrompt, job, resume)
}

func buildOptimizePrompt(resume, job, requirements string) string {
	return fmt.Sprintf(optimizePrompt, job, requirements, resume)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
