package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tarun0648/Resume-Analyser/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

const profileJSONStructure = `{
  "personal_information": {
    "name": "",
    "email": "",
    "phone": "",
    "city": "",
    "country": ""
  },
  "summary": "",
  "education": [
    {
      "school": "",
      "degree": "",
      "start_year": "",
      "end_year": "",
      "major": "",
      "gpa": ""
    }
  ],
  "work_experience": [
    {
      "company": "",
      "role": "",
      "start_year": "",
      "end_year": "",
      "city": "",
      "country": "",
      "description": ""
    }
  ],
  "projects": [
    {
      "name": "",
      "start_year": "",
      "end_year": "",
      "description": ""
    }
  ],
  "certifications": [
    {
      "name": "",
      "issuer": "",
      "date": "",
      "id": ""
    }
  ],
  "awards": [
    {
      "title": "",
      "issuer": "",
      "year": ""
    }
  ],
  "skills": [],
  "is_resume": true
}`

// BuildVerificationPrompt creates the resume-or-not classification prompt from
// a bounded excerpt of the document text.
func (pb *PromptBuilder) BuildVerificationPrompt(documentExcerpt string) string {
	return fmt.Sprintf(`Here is text extracted from a document. Analyze it and determine if it appears to be a resume/CV.

TEXT:
%s

Is this document a resume/CV? Respond with a JSON object containing:
1. "is_resume": true or false
2. "confidence": a score from 0-100
3. "reason": brief explanation for your determination

Return ONLY the JSON object with no additional text.`, documentExcerpt)
}

// BuildExtractionPrompt creates the structured extraction prompt. The schema
// template and the do-not-fabricate instruction are part of the contract.
func (pb *PromptBuilder) BuildExtractionPrompt(documentText string) string {
	return fmt.Sprintf(`Here is the resume text extracted from a PDF:

%s

Extract the following information from the resume and return it as a JSON object with the following structure:

%s

If any field is not present in the resume, use null or an empty string as appropriate. Do not make up information. Extract information directly from the resume. Return ONLY the JSON with no additional text or explanations.`, documentText, profileJSONStructure)
}

// BuildQuestionsPrompt creates the interview question generation prompt from a
// candidate profile.
func (pb *PromptBuilder) BuildQuestionsPrompt(profile *models.CandidateProfile) string {
	return fmt.Sprintf(`You are an expert technical interviewer with experience in evaluating candidates across various roles and industries.

Based on the following resume data, generate 10 thoughtful and relevant interview questions that would help assess this candidate's:
1. Technical skills and competencies
2. Problem-solving abilities
3. Communication and teamwork skills
4. Leadership and initiative
5. Cultural fit and motivation

Resume Context:
%s

Detailed Resume Data:
%s

Generate questions that are:
- Specific to the candidate's background and experience
- Appropriate for their level of seniority
- Balanced between technical and behavioral aspects
- Open-ended to encourage detailed responses
- Relevant to their industry and role type

Return the response as a JSON object with the following structure:
{
    "questions": [
        {
            "question": "Question text here",
            "category": "technical|behavioral|experience|situational",
            "focus_area": "specific skill or experience area being assessed",
            "difficulty": "entry|mid|senior",
            "expected_response_type": "brief description of what a good answer would demonstrate"
        }
    ],
    "interview_notes": {
        "candidate_strengths": ["list of key strengths to explore"],
        "areas_to_probe": ["list of areas that need deeper exploration"],
        "recommended_follow_ups": ["suggested follow-up questions or topics"]
    }
}

Respond with valid JSON only, no additional text.`, pb.profileContextSummary(profile), marshalProfile(profile))
}

// BuildMatchPrompt creates the job match analysis prompt.
func (pb *PromptBuilder) BuildMatchPrompt(profile *models.CandidateProfile, jobDescription string) string {
	return fmt.Sprintf(`You are an expert hiring manager and talent evaluator with 15+ years of experience in recruitment across multiple industries. You have a deep understanding of what makes candidates successful in various roles.

Your task is to analyze how well a candidate's resume matches a specific job description. You should evaluate the candidate holistically, considering not just technical skills but also experience level, cultural fit indicators, growth potential, and overall suitability.

**JOB DESCRIPTION:**
%s

**CANDIDATE PROFILE SUMMARY:**
%s

**DETAILED RESUME DATA:**
%s

**ANALYSIS FRAMEWORK:**
Please analyze the following dimensions:

1. **Technical Skills Match**: How well do the candidate's technical skills align with job requirements?
2. **Experience Relevance**: Is their work experience relevant to the role and industry?
3. **Education Alignment**: Does their educational background support the role requirements?
4. **Seniority Level**: Does their experience level match what the role demands?
5. **Industry Experience**: Do they have relevant industry/domain knowledge?
6. **Project Complexity**: Have they worked on projects of similar scope/complexity?
7. **Leadership/Growth**: Do they show progression and leadership potential?
8. **Cultural Indicators**: Based on their background, do they show traits that align with typical role expectations?

**SCORING GUIDELINES:**
- 90-100: Exceptional match - candidate exceeds most requirements with strong additional value
- 75-89: Strong match - candidate meets most key requirements with minor gaps
- 60-74: Good match - candidate meets core requirements but has some notable gaps
- 40-59: Moderate match - candidate has relevant background but significant gaps exist
- 20-39: Weak match - limited alignment with role requirements
- 0-19: Poor match - minimal overlap with job requirements

**OUTPUT FORMAT:**
Return a JSON object with exactly this structure:
{
    "match_score": <number between 0-100>,
    "match_label": "<Excellent Match|Good Match|Moderate Match|Poor Match|Very Poor Match>",
    "summary": "<2-3 sentence overall assessment>",
    "strengths": ["<specific strength>", "..."],
    "gaps": ["<specific gap or concern>", "..."],
    "detailed_analysis": {
        "technical_skills": {"score": <0-100>, "assessment": "<brief assessment>"},
        "experience_relevance": {"score": <0-100>, "assessment": "<brief assessment>"},
        "education_alignment": {"score": <0-100>, "assessment": "<brief assessment>"},
        "seniority_match": {"score": <0-100>, "assessment": "<brief assessment>"}
    },
    "recommendations": ["<actionable recommendation>", "..."],
    "interview_focus_areas": ["<area to explore in interview>", "..."]
}

**IMPORTANT GUIDELINES:**
- Be specific and evidence-based in your analysis
- Reference actual skills, experiences, and qualifications from the resume
- Consider both hard skills and soft skills indicators
- Be constructive in identifying gaps - suggest ways to address them
- Provide actionable insights for hiring decisions
- Consider the candidate's potential for growth, not just current state

Return ONLY the JSON object, no additional text or explanations.`, jobDescription, pb.profileContextSummary(profile), marshalProfile(profile))
}

func (pb *PromptBuilder) profileContextSummary(profile *models.CandidateProfile) string {
	name := profile.PersonalInformation.Name
	if name == "" {
		name = "Unknown"
	}
	skills := "Not specified"
	if len(profile.Skills) > 0 {
		skills = strings.Join(profile.Skills, ", ")
	}
	return fmt.Sprintf(`Candidate: %s
Skills: %s
Experience: %d work experiences
Education: %d educational qualifications
Projects: %d projects
Certifications: %d certifications`,
		name, skills, len(profile.WorkExperience), len(profile.Education),
		len(profile.Projects), len(profile.Certifications))
}

func marshalProfile(profile *models.CandidateProfile) string {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
