package services

import (
	"context"
	"log"

	"github.com/tarun0648/Resume-Analyser/internal/models"
)

// Classification only needs an excerpt; bounding it keeps the call cheap.
const verificationExcerptLimit = 2000

const verifierModel = "claude-3-opus-20240229"

type DocumentVerifier interface {
	Verify(ctx context.Context, documentText string) models.VerificationResult
}

type documentVerifier struct {
	client        MessageClient
	promptBuilder *PromptBuilder
}

func NewDocumentVerifier(client MessageClient) DocumentVerifier {
	return &documentVerifier{
		client:        client,
		promptBuilder: NewPromptBuilder(),
	}
}

// Verify classifies whether the text is plausibly a resume. It never fails:
// rejecting a candidate because our infrastructure hiccuped is a worse outcome
// than proceeding cautiously, so failures degrade to an optimistic default.
func (v *documentVerifier) Verify(ctx context.Context, documentText string) models.VerificationResult {
	log.Println("🔍 Verifying document is a resume...")

	excerpt := documentText
	if len(excerpt) > verificationExcerptLimit {
		excerpt = excerpt[:verificationExcerptLimit]
	}

	resp, err := v.client.CreateMessage(ctx, MessageRequest{
		Model:     verifierModel,
		MaxTokens: 150,
		System:    "You are an expert at identifying resumes from document text.",
		Messages: []Message{
			{Role: "user", Content: v.promptBuilder.BuildVerificationPrompt(excerpt)},
		},
	})
	if err != nil {
		log.Printf("⚠️  Resume verification call failed: %v", err)
		return models.VerificationResult{
			IsResume:   true,
			Confidence: 30,
			Reason:     "Verification failed: " + err.Error() + ", proceeding with caution",
		}
	}

	var result models.VerificationResult
	if err := DecodeJSONResponse(resp.Text, &result); err != nil {
		log.Printf("⚠️  Failed to parse verification response: %v", err)
		return models.VerificationResult{
			IsResume:   true,
			Confidence: 50,
			Reason:     "Verification response parsing failed, proceeding with caution",
		}
	}

	log.Printf("✅ Verification result: is_resume=%t confidence=%d", result.IsResume, result.Confidence)
	return result
}

// ConfidentlyNotResume is the hard-reject gate: only a confident negative
// classification stops the pipeline, any weaker signal proceeds.
func ConfidentlyNotResume(result models.VerificationResult) bool {
	return !result.IsResume && result.Confidence > 70
}
