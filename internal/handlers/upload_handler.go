package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tarun0648/Resume-Analyser/internal/models"
	"github.com/tarun0648/Resume-Analyser/internal/repositories"
	"github.com/tarun0648/Resume-Analyser/internal/services"
)

type UploadHandler struct {
	sessionRepo    repositories.SessionRepository
	storageService services.StorageService
	pdfParser      services.PDFParserService
	pipeline       services.Pipeline
	maxFileSize    int64
}

func NewUploadHandler(
	sessionRepo repositories.SessionRepository,
	storageService services.StorageService,
	pdfParser services.PDFParserService,
	pipeline services.Pipeline,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		sessionRepo:    sessionRepo,
		storageService: storageService,
		pdfParser:      pdfParser,
		pipeline:       pipeline,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /upload-resume: saves the PDF, runs the full
// pipeline synchronously and returns the three artifacts. Progress is written
// to the session store along the way so the status endpoint stays accurate.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file provided. Please select a PDF file.",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":            "Invalid file type. Only PDF files are allowed.",
			"accepted_formats": []string{".pdf"},
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Maximum size allowed is %dMB.", h.maxFileSize/(1024*1024)),
		})
	}

	jobDescription := strings.TrimSpace(c.FormValue("job_description"))

	filename, filePath, err := h.storageService.SaveUpload(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}
	defer func() {
		if err := h.storageService.DeleteUpload(filePath); err != nil {
			log.Printf("⚠️  %v", err)
		}
	}()

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
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create processing session",
		})
	}

	log.Printf("📄 Processing resume for session: %s", session.ID)

	documentText, err := h.pdfParser.ExtractPlainText(filePath)
	if err != nil {
		h.sessionRepo.UpdateError(session.ID, err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(models.UploadResponse{
			Success:   false,
			SessionID: session.ID.String(),
			Message:   "Resume processing failed during text extraction.",
		})
	}

	processed, err := h.pipeline.Process(c.Context(), session.ID, documentText, jobDescription)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success":    false,
			"session_id": session.ID.String(),
			"error":      err.Error(),
			"error_kind": errorKind(err),
			"details":    "Resume processing failed during text extraction or analysis.",
		})
	}

	// Archiving the original file is best-effort; missing it never blocks
	// returning analysis results.
	if fileURL, archiveErr := h.storageService.Archive(session.ID, filePath, file.Filename); archiveErr != nil {
		log.Printf("⚠️  Failed to archive resume file: %v", archiveErr)
	} else if err := h.sessionRepo.UpdateFileURL(session.ID, fileURL); err != nil {
		log.Printf("⚠️  Failed to record file url: %v", err)
	}

	log.Printf("✅ Resume processing completed for session: %s", session.ID)

	return c.JSON(models.UploadResponse{
		Success:   true,
		SessionID: session.ID.String(),
		Message:   "Resume processed successfully!",
		Data:      processed,
		Metadata: &models.UploadMetadata{
			Filename:       file.Filename,
			FileSize:       file.Size,
			ProcessingTime: time.Now(),
			HasJobMatch:    processed.JobMatchSummary != nil,
		},
	})
}

// errorKind maps a pipeline error to a stable code for API callers. Raw
// upstream bodies stay in the logs.
func errorKind(err error) string {
	var (
		transportErr  *services.TransportError
		malformedErr  *services.MalformedResponseError
		extractionErr *services.ExtractionError
		validationErr *services.ValidationError
	)
	switch {
	case errors.Is(err, services.ErrEmptyDocument):
		return "empty_document"
	case errors.As(err, &transportErr):
		return "transport_error"
	case errors.As(err, &malformedErr):
		return "malformed_response"
	case errors.As(err, &extractionErr):
		return "extraction_failed"
	case errors.As(err, &validationErr):
		return "validation_error"
	default:
		return "internal_error"
	}
}
