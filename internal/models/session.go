package models

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	StatusInitializing SessionStatus = "initializing"
	StatusExtracting   SessionStatus = "extracting"
	StatusStoring      SessionStatus = "storing"
	StatusCompleted    SessionStatus = "completed"
	StatusFailed       SessionStatus = "failed"
)

// ResumeSession is one end-to-end processing attempt for a single uploaded
// resume. Status moves forward only and terminates at completed or failed;
// the pipeline is the sole writer of status transitions.
type ResumeSession struct {
	ID               uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"session_id"`
	Filename         string            `gorm:"type:text" json:"filename"`
	OriginalFileName string            `gorm:"type:text" json:"original_filename"`
	FileSize         int64             `gorm:"type:bigint" json:"file_size"`
	FileURL          *string           `gorm:"type:text" json:"file_url,omitempty"`
	JobDescription   string            `gorm:"type:text" json:"job_description"`
	Status           SessionStatus     `gorm:"not null;default:'initializing'" json:"processing_status"`
	ProgressMessage  string            `gorm:"type:text" json:"progress_message"`
	ErrorMessage     string            `gorm:"type:text" json:"error_message,omitempty"`
	CandidateName    string            `gorm:"type:text" json:"candidate_name"`
	MatchScore       *int              `gorm:"type:integer" json:"match_score,omitempty"`
	ExtractedData    *CandidateProfile `gorm:"type:jsonb" json:"extracted_data,omitempty"`
	Questions        *QuestionSet      `gorm:"type:jsonb" json:"interview_questions,omitempty"`
	JobMatchSummary  *MatchAnalysis    `gorm:"type:jsonb" json:"job_match_summary,omitempty"`
	CreatedAt        time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (ResumeSession) TableName() string {
	return "resume_sessions"
}

// Terminal reports whether the session has reached a final state.
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}
