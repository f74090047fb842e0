package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tarun0648/Resume-Analyser/internal/models"
)

const (
	questionsModel       = "claude-3-sonnet-20240229"
	maxFallbackQuestions = 10
)

type QuestionGenerator interface {
	Generate(ctx context.Context, profile *models.CandidateProfile) *models.QuestionSet
}

type questionGenerator struct {
	client        MessageClient
	promptBuilder *PromptBuilder
}

func NewQuestionGenerator(client MessageClient) QuestionGenerator {
	return &questionGenerator{
		client:        client,
		promptBuilder: NewPromptBuilder(),
	}
}

// Generate derives interview questions from a candidate profile. The model
// path is preferred; any transport or parse failure switches to the rule-based
// fallback, which is deterministic for identical input. Callers always get a
// usable question set.
func (g *questionGenerator) Generate(ctx context.Context, profile *models.CandidateProfile) *models.QuestionSet {
	log.Println("🤖 Generating interview questions...")

	temperature := 0.7
	resp, err := g.client.CreateMessage(ctx, MessageRequest{
		Model:       questionsModel,
		MaxTokens:   3000,
		Temperature: &temperature,
		System:      "You are an expert interviewer who creates tailored interview questions based on candidate resumes. Return valid JSON only.",
		Messages: []Message{
			{Role: "user", Content: g.promptBuilder.BuildQuestionsPrompt(profile)},
		},
	})
	if err != nil {
		log.Printf("⚠️  Question generation call failed, using fallback: %v", err)
		return FallbackQuestions(profile)
	}

	var questions models.QuestionSet
	if err := DecodeJSONResponse(resp.Text, &questions); err != nil {
		log.Printf("⚠️  Failed to parse question response, using fallback: %v", err)
		return FallbackQuestions(profile)
	}
	if len(questions.Questions) == 0 {
		log.Println("⚠️  Model returned no questions, using fallback")
		return FallbackQuestions(profile)
	}

	log.Printf("✅ Generated %d interview questions", len(questions.Questions))
	return &questions
}

// FallbackQuestions builds a rule-based question set keyed on profile shape.
// The output is reproducible for the same profile.
func FallbackQuestions(profile *models.CandidateProfile) *models.QuestionSet {
	log.Println("📋 Creating fallback interview questions")

	level := ExperienceLevel(profile)
	questions := []models.InterviewQuestion{
		{
			Question:             "Can you walk me through your professional background and what led you to your current career path?",
			Category:             models.CategoryExperience,
			FocusArea:            "career progression",
			Difficulty:           level,
			ExpectedResponseType: "Career narrative showing growth and decision-making",
		},
		{
			Question:             "What motivates you in your work, and what type of environment do you thrive in?",
			Category:             models.CategoryBehavioral,
			FocusArea:            "motivation and culture fit",
			Difficulty:           models.DifficultyEntry,
			ExpectedResponseType: "Self-awareness and alignment with company values",
		},
	}

	topSkills := profile.Skills
	if len(topSkills) > 3 {
		topSkills = topSkills[:3]
	}
	for _, skill := range topSkills {
		questions = append(questions, models.InterviewQuestion{
			Question:             fmt.Sprintf("How would you describe your experience with %s? Can you give me an example of a challenging project where you used this skill?", skill),
			Category:             models.CategoryTechnical,
			FocusArea:            skill,
			Difficulty:           level,
			ExpectedResponseType: fmt.Sprintf("Specific examples demonstrating %s proficiency", skill),
		})
	}

	if len(profile.WorkExperience) > 0 {
		questions = append(questions,
			models.InterviewQuestion{
				Question:             "Tell me about a time when you had to solve a complex problem at work. How did you approach it?",
				Category:             models.CategorySituational,
				FocusArea:            "problem-solving",
				Difficulty:           level,
				ExpectedResponseType: "STAR method response showing analytical thinking",
			},
			models.InterviewQuestion{
				Question:             "Describe a situation where you had to work with a difficult team member or stakeholder. How did you handle it?",
				Category:             models.CategoryBehavioral,
				FocusArea:            "interpersonal skills",
				Difficulty:           models.DifficultyMid,
				ExpectedResponseType: "Conflict resolution and communication skills",
			},
		)
	}

	if len(profile.Projects) > 0 {
		questions = append(questions, models.InterviewQuestion{
			Question:             "I see you worked on several projects. Can you tell me about one that you're particularly proud of and the impact it had?",
			Category:             models.CategoryExperience,
			FocusArea:            "project management",
			Difficulty:           level,
			ExpectedResponseType: "Project ownership and impact measurement",
		})
	}

	if level == models.DifficultySenior {
		questions = append(questions,
			models.InterviewQuestion{
				Question:             "Tell me about a time when you had to lead a team or mentor junior colleagues. What was your approach?",
				Category:             models.CategoryBehavioral,
				FocusArea:            "leadership",
				Difficulty:           models.DifficultySenior,
				ExpectedResponseType: "Leadership philosophy and concrete examples",
			},
			models.InterviewQuestion{
				Question:             "How do you stay current with industry trends and continue learning in your field?",
				Category:             models.CategoryBehavioral,
				FocusArea:            "continuous learning",
				Difficulty:           models.DifficultySenior,
				ExpectedResponseType: "Learning strategies and industry awareness",
			},
		)
	}

	questions = append(questions,
		models.InterviewQuestion{
			Question:             "What are your career goals for the next 2-3 years, and how does this role fit into those plans?",
			Category:             models.CategoryBehavioral,
			FocusArea:            "career goals",
			Difficulty:           models.DifficultyEntry,
			ExpectedResponseType: "Career planning and role alignment",
		},
		models.InterviewQuestion{
			Question:             "Do you have any questions about our company, team, or the role itself?",
			Category:             models.CategoryBehavioral,
			FocusArea:            "engagement and interest",
			Difficulty:           models.DifficultyEntry,
			ExpectedResponseType: "Thoughtful questions showing genuine interest",
		},
	)

	if len(questions) > maxFallbackQuestions {
		questions = questions[:maxFallbackQuestions]
	}

	return &models.QuestionSet{
		Questions:      questions,
		InterviewNotes: fallbackNotes(profile),
	}
}

// ExperienceLevel buckets a profile by work experience count.
func ExperienceLevel(profile *models.CandidateProfile) models.QuestionDifficulty {
	switch {
	case len(profile.WorkExperience) > 3:
		return models.DifficultySenior
	case len(profile.WorkExperience) > 1:
		return models.DifficultyMid
	default:
		return models.DifficultyEntry
	}
}

func fallbackNotes(profile *models.CandidateProfile) *models.InterviewNotes {
	strengths := make([]string, 0, 3)
	if len(profile.WorkExperience) > 0 {
		strengths = append(strengths, fmt.Sprintf("Has %d work experiences", len(profile.WorkExperience)))
	} else {
		strengths = append(strengths, "Early career candidate")
	}
	if len(profile.Skills) > 0 {
		topSkills := profile.Skills
		if len(topSkills) > 3 {
			topSkills = topSkills[:3]
		}
		strengths = append(strengths, "Skills in "+strings.Join(topSkills, ", "))
	} else {
		strengths = append(strengths, "Developing technical skills")
	}
	if len(profile.Projects) > 0 {
		strengths = append(strengths, fmt.Sprintf("Project experience in %d projects", len(profile.Projects)))
	} else {
		strengths = append(strengths, "Building project portfolio")
	}

	return &models.InterviewNotes{
		CandidateStrengths: strengths,
		AreasToProbe: []string{
			"Technical depth and problem-solving approach",
			"Communication and teamwork abilities",
			"Growth mindset and learning agility",
			"Cultural fit and motivation",
		},
		RecommendedFollowUps: []string{
			"Ask for specific examples with metrics",
			"Probe for lessons learned from failures",
			"Explore collaboration and communication style",
			"Understand learning and development interests",
		},
	}
}
