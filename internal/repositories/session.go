package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tarun0648/Resume-Analyser/internal/models"
)

// SessionRepository is the persistence boundary for processing sessions. The
// pipeline only patches status and artifacts through it; consistency is the
// store's own problem.
type SessionRepository interface {
	Create(session *models.ResumeSession) error
	FindByID(id uuid.UUID) (*models.ResumeSession, error)
	UpdateProgress(id uuid.UUID, status models.SessionStatus, message string) error
	UpdateResult(id uuid.UUID, data *SessionResultData) error
	UpdateError(id uuid.UUID, errorMsg string) error
	UpdateFileURL(id uuid.UUID, fileURL string) error
	List(opts ListOptions) ([]models.ResumeSession, error)
	Delete(id uuid.UUID) error
}

type SessionResultData struct {
	Profile       *models.CandidateProfile
	Questions     *models.QuestionSet
	MatchSummary  *models.MatchAnalysis
	CandidateName string
	MatchScore    *int
}

type ListOptions struct {
	Limit     int
	Status    string
	SortBy    string // created_at or match_score
	SortOrder string // asc or desc
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *models.ResumeSession) error {
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *sessionRepository) FindByID(id uuid.UUID) (*models.ResumeSession, error) {
	var session models.ResumeSession
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return &session, nil
}

func (r *sessionRepository) UpdateProgress(id uuid.UUID, status models.SessionStatus, message string) error {
	result := r.db.Model(&models.ResumeSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":           status,
			"progress_message": message,
			"updated_at":       time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update progress: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("session not found")
	}
	return nil
}

func (r *sessionRepository) UpdateResult(id uuid.UUID, data *SessionResultData) error {
	updates := map[string]interface{}{
		"status":           models.StatusCompleted,
		"progress_message": "Resume processing completed successfully",
		"updated_at":       time.Now(),
	}

	if data.Profile != nil {
		updates["extracted_data"] = data.Profile
	}
	if data.Questions != nil {
		updates["questions"] = data.Questions
	}
	if data.MatchSummary != nil {
		updates["job_match_summary"] = data.MatchSummary
	}
	if data.CandidateName != "" {
		updates["candidate_name"] = data.CandidateName
	}
	if data.MatchScore != nil {
		updates["match_score"] = *data.MatchScore
	}

	result := r.db.Model(&models.ResumeSession{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("session not found")
	}
	return nil
}

func (r *sessionRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.ResumeSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":           models.StatusFailed,
			"error_message":    errorMsg,
			"progress_message": "Processing failed: " + errorMsg,
			"updated_at":       time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("session not found")
	}
	return nil
}

func (r *sessionRepository) UpdateFileURL(id uuid.UUID, fileURL string) error {
	result := r.db.Model(&models.ResumeSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"file_url":   fileURL,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update file url: %w", result.Error)
	}
	return nil
}

func (r *sessionRepository) List(opts ListOptions) ([]models.ResumeSession, error) {
	limit := opts.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := r.db.Model(&models.ResumeSession{})
	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}

	sortBy := "created_at"
	if opts.SortBy == "match_score" {
		sortBy = "match_score"
	}
	order := "DESC"
	if opts.SortOrder == "asc" {
		order = "ASC"
	}

	var sessions []models.ResumeSession
	if err := query.Order(sortBy + " " + order).Limit(limit).Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

func (r *sessionRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.ResumeSession{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("session not found")
	}
	return nil
}
