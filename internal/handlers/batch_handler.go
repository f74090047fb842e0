package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tarun0648/Resume-Analyser/internal/models"
	"github.com/tarun0648/Resume-Analyser/internal/repositories"
	"github.com/tarun0648/Resume-Analyser/internal/services"
)

type BatchHandler struct {
	sessionRepo    repositories.SessionRepository
	storageService services.StorageService
	pdfParser      services.PDFParserService
	pipeline       services.Pipeline
	maxFileSize    int64
}

func NewBatchHandler(
	sessionRepo repositories.SessionRepository,
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	pipeline services.Pipeline,
	maxFileSize int64,
) *BatchHandler {
	return &BatchHandler{
		sessionRepo:    sessionRepo,
		storageService: storageService,
		pdfParser:      pdfParser,
		pipeline:       pipeline,
		maxFileSize:    maxFileSize,
	}
}

// HandleBatchUpload handles POST /batch-upload: many resumes ranked against a
// single job description. Failures are isolated per file; the batch itself
// always answers.
func (h *BatchHandler) HandleBatchUpload(c *fiber.Ctx) error {
	jobDescription := strings.TrimSpace(c.FormValue("job_description"))
	if jobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Job description is required for batch processing",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	files := form.File["resumes"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume files provided",
		})
	}

	batchID := uuid.New()
	log.Printf("📦 Batch %s: %d files", batchID, len(files))

	var (
		docs       []services.BatchDocument
		preFailed  []models.BatchResult
		scratchers []string
	)
	defer func() {
		for _, path := range scratchers {
			if err := h.storageService.DeleteUpload(path); err != nil {
				log.Printf("⚠️  %v", err)
			}
		}
	}()

	for _, file := range files {
		if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") || file.Size > h.maxFileSize {
			preFailed = append(preFailed, models.BatchResult{
				Filename: file.Filename,
				Status:   "failed",
				Error:    "invalid file: must be a PDF within the size limit",
			})
			continue
		}

		filename, filePath, err := h.storageService.SaveUpload(file)
		if err != nil {
			preFailed = append(preFailed, models.BatchResult{
				Filename: file.Filename,
				Status:   "failed",
				Error:    err.Error(),
			})
			continue
		}
		scratchers = append(scratchers, filePath)

		text, err := h.pdfParser.ExtractPlainText(filePath)
		if err != nil {
			preFailed = append(preFailed, models.BatchResult{
				Filename: file.Filename,
				Status:   "failed",
				Error:    err.Error(),
			})
			continue
		}

		session := &models.ResumeSession{
			ID:               uuid.New(),
			Filename:         filename,
			OriginalFileName: file.Filename,
			FileSize:         file.Size,
			JobDescription:   jobDescription,
			Status:           models.StatusInitializing,
			ProgressMessage:  "Starting resume processing...",
		}
		if err := h.sessionRepo.Create(session); err != nil {
			preFailed = append(preFailed, models.BatchResult{
				Filename: file.Filename,
				Status:   "failed",
				Error:    "failed to create processing session",
			})
			continue
		}

		docs = append(docs, services.BatchDocument{
			SessionID: session.ID,
			Filename:  file.Filename,
			Text:      text,
		})
	}

	results, topCandidates := h.pipeline.ProcessBatch(c.Context(), docs, jobDescription)
	results = append(results, preFailed...)

	successful := 0
	for _, r := range results {
		if r.Status == "success" {
			successful++
		}
	}

	return c.JSON(models.BatchResponse{
		Success:       true,
		BatchID:       batchID.String(),
		TotalFiles:    len(files),
		Processed:     len(results),
		Successful:    successful,
		Failed:        len(results) - successful,
		Results:       results,
		TopCandidates: topCandidates,
	})
}
