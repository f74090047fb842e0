package services

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tarun0648/Resume-Analyser/internal/models"
	"github.com/tarun0648/Resume-Analyser/internal/repositories"
)

const topCandidateCount = 5

// BatchDocument is one already-extracted document in a batch run.
type BatchDocument struct {
	SessionID uuid.UUID
	Filename  string
	Text      string
}

// Pipeline sequences verification, extraction, question generation and match
// scoring for a session, recording every status transition in the store.
type Pipeline interface {
	Process(ctx context.Context, sessionID uuid.UUID, documentText, jobDescription string) (*models.ProcessedResume, error)
	ProcessBatch(ctx context.Context, docs []BatchDocument, jobDescription string) ([]models.BatchResult, []models.BatchResult)
}

type pipeline struct {
	sessionRepo repositories.SessionRepository
	verifier    DocumentVerifier
	extractor   StructuredExtractor
	questions   QuestionGenerator
	matcher     MatchScorer
	concurrency int
}

func NewPipeline(
	sessionRepo repositories.SessionRepository,
	verifier DocumentVerifier,
	extractor StructuredExtractor,
	questions QuestionGenerator,
	matcher MatchScorer,
	batchConcurrency int,
) Pipeline {
	if batchConcurrency <= 0 {
		batchConcurrency = 3
	}
	return &pipeline{
		sessionRepo: sessionRepo,
		verifier:    verifier,
		extractor:   extractor,
		questions:   questions,
		matcher:     matcher,
		concurrency: batchConcurrency,
	}
}

// Process runs the full pipeline for one session. Verification hard-rejects
// and extraction errors are fatal; question generation and match scoring fall
// back internally and cannot fail the run. The failure reason is recorded
// verbatim on the session.
func (p *pipeline) Process(ctx context.Context, sessionID uuid.UUID, documentText, jobDescription string) (*models.ProcessedResume, error) {
	log.Printf("🔄 Starting pipeline for session %s", sessionID)

	if err := p.sessionRepo.UpdateProgress(sessionID, models.StatusExtracting, "Extracting text and analyzing resume..."); err != nil {
		return nil, err
	}

	verification := p.verifier.Verify(ctx, documentText)
	if ConfidentlyNotResume(verification) {
		log.Printf("❌ Document rejected, not a resume: %s", verification.Reason)
		p.sessionRepo.UpdateError(sessionID, verification.Reason)
		return nil, &ExtractionError{Reason: verification.Reason}
	}

	profile, err := p.extractor.Extract(ctx, documentText)
	if err != nil {
		log.Printf("❌ Resume extraction failed for session %s: %v", sessionID, err)
		p.sessionRepo.UpdateError(sessionID, err.Error())
		return nil, err
	}

	// Both artifacts only need the profile, so they run concurrently. Neither
	// can fail once extraction succeeded.
	var (
		questionSet  *models.QuestionSet
		matchSummary *models.MatchAnalysis
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		questionSet = p.questions.Generate(gctx, profile)
		return nil
	})
	if strings.TrimSpace(jobDescription) != "" {
		g.Go(func() error {
			analysis, matchErr := p.matcher.Match(gctx, profile, jobDescription)
			if matchErr != nil {
				log.Printf("⚠️  Match analysis skipped: %v", matchErr)
				return nil
			}
			matchSummary = analysis
			return nil
		})
	}
	g.Wait()

	if err := p.sessionRepo.UpdateProgress(sessionID, models.StatusStoring, "Saving processed data..."); err != nil {
		return nil, err
	}

	result := &repositories.SessionResultData{
		Profile:       profile,
		Questions:     questionSet,
		MatchSummary:  matchSummary,
		CandidateName: candidateName(profile),
	}
	if matchSummary != nil {
		score := matchSummary.MatchScore
		result.MatchScore = &score
	}
	if err := p.sessionRepo.UpdateResult(sessionID, result); err != nil {
		return nil, err
	}

	log.Printf("✅ Pipeline completed for session %s", sessionID)
	return &models.ProcessedResume{
		ExtractedData:      profile,
		InterviewQuestions: questionSet,
		JobMatchSummary:    matchSummary,
	}, nil
}

// ProcessBatch runs each document's pipeline independently on a bounded pool,
// isolating per-document failures, and returns all results plus the top
// candidates ranked by match score descending.
func (p *pipeline) ProcessBatch(ctx context.Context, docs []BatchDocument, jobDescription string) ([]models.BatchResult, []models.BatchResult) {
	log.Printf("🔄 Starting batch analysis of %d resumes", len(docs))

	results := make([]models.BatchResult, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			processed, err := p.Process(gctx, doc.SessionID, doc.Text, jobDescription)
			if err != nil {
				log.Printf("⚠️  Batch: failed to analyze %s: %v", doc.Filename, err)
				results[i] = models.BatchResult{
					SessionID: doc.SessionID.String(),
					Filename:  doc.Filename,
					Status:    "failed",
					Error:     err.Error(),
				}
				return nil
			}

			result := models.BatchResult{
				SessionID:     doc.SessionID.String(),
				Filename:      doc.Filename,
				Status:        "success",
				CandidateName: candidateName(processed.ExtractedData),
			}
			if processed.JobMatchSummary != nil {
				score := processed.JobMatchSummary.MatchScore
				result.MatchScore = &score
			}
			results[i] = result
			return nil
		})
	}
	g.Wait()

	successful := make([]models.BatchResult, 0, len(results))
	for _, r := range results {
		if r.Status == "success" && r.MatchScore != nil {
			successful = append(successful, r)
		}
	}
	sort.SliceStable(successful, func(i, j int) bool {
		return *successful[i].MatchScore > *successful[j].MatchScore
	})
	if len(successful) > topCandidateCount {
		successful = successful[:topCandidateCount]
	}

	return results, successful
}

func candidateName(profile *models.CandidateProfile) string {
	if profile == nil || profile.PersonalInformation.Name == "" {
		return "Unknown"
	}
	return profile.PersonalInformation.Name
}
