package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tarun0648/Resume-Analyser/internal/models"
)

const matcherModel = "claude-3-opus-20240229"

type MatchScorer interface {
	Match(ctx context.Context, profile *models.CandidateProfile, jobDescription string) (*models.MatchAnalysis, error)
}

type matchScorer struct {
	client        MessageClient
	promptBuilder *PromptBuilder
}

func NewMatchScorer(client MessageClient) MatchScorer {
	return &matchScorer{
		client:        client,
		promptBuilder: NewPromptBuilder(),
	}
}

// Match scores a candidate profile against a job description. An empty job
// description is a caller bug; the pipeline skips this stage entirely when no
// description was supplied. Model or parse failures switch to the
// deterministic scorer, so a supplied description always yields an analysis.
func (m *matchScorer) Match(ctx context.Context, profile *models.CandidateProfile, jobDescription string) (*models.MatchAnalysis, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &ValidationError{Field: "job_description", Reason: "must not be empty"}
	}

	log.Println("🤖 Analyzing resume against job description...")

	temperature := 0.3
	resp, err := m.client.CreateMessage(ctx, MessageRequest{
		Model:       matcherModel,
		MaxTokens:   3000,
		Temperature: &temperature,
		System:      "You are an expert hiring manager who provides detailed, fair, and constructive candidate evaluations. Always return valid JSON.",
		Messages: []Message{
			{Role: "user", Content: m.promptBuilder.BuildMatchPrompt(profile, jobDescription)},
		},
	})
	if err != nil {
		log.Printf("⚠️  Match analysis call failed, using fallback: %v", err)
		return FallbackMatchAnalysis(profile, jobDescription), nil
	}

	var analysis models.MatchAnalysis
	if err := DecodeJSONResponse(resp.Text, &analysis); err != nil {
		log.Printf("⚠️  Failed to parse match response, using fallback: %v", err)
		return FallbackMatchAnalysis(profile, jobDescription), nil
	}
	if analysis.MatchScore < 0 {
		analysis.MatchScore = 0
	}
	if analysis.MatchScore > 100 {
		analysis.MatchScore = 100
	}

	log.Printf("✅ Match analysis generated with score %d", analysis.MatchScore)
	return &analysis, nil
}

// FallbackMatchAnalysis is the rule-based scorer used when the model path
// fails. Scoring: base 40, plus capped experience, education, project terms
// and the share of profile skills appearing in the job description.
func FallbackMatchAnalysis(profile *models.CandidateProfile, jobDescription string) *models.MatchAnalysis {
	log.Println("📋 Creating fallback match analysis")

	jobLower := strings.ToLower(jobDescription)

	skillMatches := 0
	for _, skill := range profile.Skills {
		if strings.Contains(jobLower, strings.ToLower(skill)) {
			skillMatches++
		}
	}
	skillMatchRatio := 0.0
	if len(profile.Skills) > 0 {
		skillMatchRatio = float64(skillMatches) / float64(len(profile.Skills))
	}

	score := 40.0
	if n := len(profile.WorkExperience); n > 0 {
		score += minFloat(float64(n)*10, 30)
	}
	if n := len(profile.Education); n > 0 {
		score += minFloat(float64(n)*5, 15)
	}
	score += skillMatchRatio * 30
	if n := len(profile.Projects); n > 0 {
		score += minFloat(float64(n)*5, 15)
	}
	if score > 100 {
		score = 100
	}
	matchScore := int(score)

	var matchLabel string
	switch {
	case matchScore >= 80:
		matchLabel = "Good Match"
	case matchScore >= 60:
		matchLabel = "Moderate Match"
	case matchScore >= 40:
		matchLabel = "Poor Match"
	default:
		matchLabel = "Very Poor Match"
	}

	strengths := []string{
		pick(len(profile.WorkExperience) > 0, fmt.Sprintf("Has %d work experiences", len(profile.WorkExperience)), "Entry-level candidate"),
		pick(len(profile.Skills) > 0, fmt.Sprintf("Lists %d relevant skills", len(profile.Skills)), "Developing skill set"),
		pick(len(profile.Education) > 0, fmt.Sprintf("Educational background with %d qualifications", len(profile.Education)), "Building educational foundation"),
		pick(len(profile.Projects) > 0, fmt.Sprintf("Project experience with %d projects", len(profile.Projects)), "Gaining practical experience"),
		"Potential for growth and development",
	}

	return &models.MatchAnalysis{
		MatchScore: matchScore,
		MatchLabel: matchLabel,
		Summary: fmt.Sprintf("Basic analysis shows a %s based on %d work experiences, %d listed skills, and %d skill matches with the job description.",
			strings.ToLower(matchLabel), len(profile.WorkExperience), len(profile.Skills), skillMatches),
		Strengths: strengths,
		Gaps: []string{
			"Limited skill alignment analysis due to processing constraints",
			"Detailed experience relevance needs manual review",
			"Industry-specific requirements need closer evaluation",
			"Soft skills assessment requires interview evaluation",
		},
		DetailedAnalysis: models.DetailedAnalysis{
			TechnicalSkills: models.DimensionScore{
				Score:      int(skillMatchRatio * 100),
				Assessment: fmt.Sprintf("Found %d potential skill matches", skillMatches),
			},
			ExperienceRelevance: models.DimensionScore{
				Score:      minInt(len(profile.WorkExperience)*25, 100),
				Assessment: fmt.Sprintf("Has %d work experiences", len(profile.WorkExperience)),
			},
			EducationAlignment: models.DimensionScore{
				Score:      minInt(len(profile.Education)*50, 100),
				Assessment: fmt.Sprintf("Has %d educational qualifications", len(profile.Education)),
			},
			SeniorityMatch: models.DimensionScore{
				Score:      50,
				Assessment: "Requires manual evaluation",
			},
		},
		Recommendations: []string{
			"Conduct detailed technical interview to assess skills",
			"Review specific project experiences for relevance",
			"Evaluate cultural fit through behavioral questions",
		},
		InterviewFocusAreas: []string{
			"Technical competency validation",
			"Problem-solving approach",
			"Communication and teamwork skills",
		},
	}
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
