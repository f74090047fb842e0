package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/tarun0648/Resume-Analyser/internal/models"
)

const extractorModel = "claude-3-opus-20240229"

type StructuredExtractor interface {
	Extract(ctx context.Context, documentText string) (*models.CandidateProfile, error)
}

type structuredExtractor struct {
	client        MessageClient
	promptBuilder *PromptBuilder
}

func NewStructuredExtractor(client MessageClient) StructuredExtractor {
	return &structuredExtractor{
		client:        client,
		promptBuilder: NewPromptBuilder(),
	}
}

// Extract converts raw resume text into a CandidateProfile. Empty text fails
// immediately without a model call. The prompt forbids inventing values and
// the output is taken as-is once it parses; gaps stay gaps.
func (e *structuredExtractor) Extract(ctx context.Context, documentText string) (*models.CandidateProfile, error) {
	if strings.TrimSpace(documentText) == "" {
		return nil, ErrEmptyDocument
	}

	log.Println("🤖 Sending request to Claude API for resume parsing...")

	resp, err := e.client.CreateMessage(ctx, MessageRequest{
		Model:     extractorModel,
		MaxTokens: 4096,
		System:    "You are an expert resume parser that extracts structured information from resumes. You will return the parsed data in valid JSON format ONLY. No explanations or other text.",
		Messages: []Message{
			{Role: "user", Content: e.promptBuilder.BuildExtractionPrompt(documentText)},
		},
	})
	if err != nil {
		return nil, err
	}

	var profile models.CandidateProfile
	if err := DecodeJSONResponse(resp.Text, &profile); err != nil {
		var malformed *MalformedResponseError
		if errors.As(err, &malformed) {
			log.Printf("❌ Could not parse JSON from extraction response")
			return nil, &ExtractionError{
				Reason:      "Could not parse JSON from Claude's response",
				RawResponse: malformed.Raw,
			}
		}
		return nil, err
	}

	log.Println("✅ Resume parsing complete")
	return &profile, nil
}
