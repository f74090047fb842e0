package handlers

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tarun0648/Resume-Analyser/internal/models"
	"github.com/tarun0648/Resume-Analyser/internal/repositories"
	"github.com/tarun0648/Resume-Analyser/internal/services"
)

type ReportHandler struct {
	sessionRepo repositories.SessionRepository
	validate    *validator.Validate
}

func NewReportHandler(sessionRepo repositories.SessionRepository) *ReportHandler {
	return &ReportHandler{
		sessionRepo: sessionRepo,
		validate:    validator.New(),
	}
}

// HandleGenerateReport handles POST /resumes/:id/report, rendering a markdown
// hiring report from a completed job match analysis.
func (h *ReportHandler) HandleGenerateReport(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	var req models.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_title is required",
		})
	}

	session, err := h.sessionRepo.FindByID(sessionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success":    false,
			"error":      "Resume not found",
			"session_id": sessionID.String(),
		})
	}

	if session.JobMatchSummary == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":    false,
			"error":      "No job match analysis available for report generation",
			"session_id": sessionID.String(),
		})
	}

	report := services.GenerateHiringReport(session.JobMatchSummary, req.JobTitle)

	return c.JSON(fiber.Map{
		"success":      true,
		"session_id":   sessionID.String(),
		"report":       report,
		"job_title":    req.JobTitle,
		"generated_at": time.Now(),
	})
}
