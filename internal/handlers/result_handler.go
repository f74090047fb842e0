package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tarun0648/Resume-Analyser/internal/models"
	"github.com/tarun0648/Resume-Analyser/internal/repositories"
	"github.com/tarun0648/Resume-Analyser/internal/services"
)

type ResultHandler struct {
	sessionRepo    repositories.SessionRepository
	storageService services.StorageService
}

func NewResultHandler(sessionRepo repositories.SessionRepository, storageService services.StorageService) *ResultHandler {
	return &ResultHandler{
		sessionRepo:    sessionRepo,
		storageService: storageService,
	}
}

// HandleGetResume handles GET /resumes/:id
func (h *ResultHandler) HandleGetResume(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
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

	return c.JSON(fiber.Map{
		"success":    true,
		"session_id": sessionID.String(),
		"data":       session,
	})
}

// HandleGetStatus handles GET /resumes/:id/status
func (h *ResultHandler) HandleGetStatus(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	session, err := h.sessionRepo.FindByID(sessionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success":    false,
			"error":      "Session not found",
			"session_id": sessionID.String(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"status": models.StatusResponse{
			SessionID:       session.ID.String(),
			Status:          session.Status,
			ProgressMessage: session.ProgressMessage,
			Error:           session.ErrorMessage,
			Timestamp:       session.UpdatedAt,
		},
	})
}

// HandleListResumes handles GET /resumes with limit/status/sort query params.
func (h *ResultHandler) HandleListResumes(c *fiber.Ctx) error {
	opts := repositories.ListOptions{
		Limit:     c.QueryInt("limit", 50),
		Status:    c.Query("status"),
		SortBy:    c.Query("sort_by", "created_at"),
		SortOrder: c.Query("sort_order", "desc"),
	}

	sessions, err := h.sessionRepo.List(opts)
	if err != nil {
		log.Printf("⚠️  Failed to list sessions: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Listing failed",
		})
	}

	summaries := make([]models.SessionSummary, 0, len(sessions))
	for _, session := range sessions {
		summaries = append(summaries, models.SessionSummary{
			SessionID:     session.ID.String(),
			Filename:      session.OriginalFileName,
			Status:        session.Status,
			CandidateName: session.CandidateName,
			MatchScore:    session.MatchScore,
			HasJobMatch:   session.JobMatchSummary != nil,
			FileSize:      session.FileSize,
			CreatedAt:     session.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"resumes": summaries,
		"count":   len(summaries),
	})
}

// HandleDeleteResume handles DELETE /resumes/:id, removing the record and the
// archived files.
func (h *ResultHandler) HandleDeleteResume(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	if err := h.sessionRepo.Delete(sessionID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success":    false,
			"error":      "Resume not found",
			"session_id": sessionID.String(),
		})
	}

	if err := h.storageService.DeleteSessionFiles(sessionID); err != nil {
		log.Printf("⚠️  Error deleting archived files: %v", err)
	}

	log.Printf("🗑️  Deleted resume session: %s", sessionID)
	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Resume deleted successfully",
		"session_id": sessionID.String(),
	})
}
