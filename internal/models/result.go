package models

import "time"

// ProcessedResume bundles the three pipeline artifacts returned to the caller.
type ProcessedResume struct {
	ExtractedData      *CandidateProfile `json:"extracted_data"`
	InterviewQuestions *QuestionSet      `json:"interview_questions"`
	JobMatchSummary    *MatchAnalysis    `json:"job_match_summary,omitempty"`
}

type UploadResponse struct {
	Success   bool             `json:"success"`
	SessionID string           `json:"session_id"`
	Message   string           `json:"message"`
	Data      *ProcessedResume `json:"data,omitempty"`
	Metadata  *UploadMetadata  `json:"metadata,omitempty"`
}

type UploadMetadata struct {
	Filename       string    `json:"filename"`
	FileSize       int64     `json:"file_size"`
	ProcessingTime time.Time `json:"processing_time"`
	HasJobMatch    bool      `json:"has_job_match"`
}

type StatusResponse struct {
	SessionID       string        `json:"session_id"`
	Status          SessionStatus `json:"processing_status"`
	ProgressMessage string        `json:"progress_message"`
	Error           string        `json:"error,omitempty"`
	Timestamp       time.Time     `json:"timestamp"`
}

type SessionSummary struct {
	SessionID     string        `json:"session_id"`
	Filename      string        `json:"filename"`
	Status        SessionStatus `json:"processing_status"`
	CandidateName string        `json:"candidate_name"`
	MatchScore    *int          `json:"match_score,omitempty"`
	HasJobMatch   bool          `json:"has_job_match"`
	FileSize      int64         `json:"file_size"`
	CreatedAt     time.Time     `json:"created_at"`
}

type ReportRequest struct {
	JobTitle string `json:"job_title" validate:"required"`
}

type BatchResult struct {
	SessionID     string `json:"session_id"`
	Filename      string `json:"filename"`
	Status        string `json:"status"`
	CandidateName string `json:"candidate_name,omitempty"`
	MatchScore    *int   `json:"match_score,omitempty"`
	Error         string `json:"error,omitempty"`
}

type BatchResponse struct {
	Success       bool          `json:"success"`
	BatchID       string        `json:"batch_id"`
	TotalFiles    int           `json:"total_files"`
	Processed     int           `json:"processed"`
	Successful    int           `json:"successful"`
	Failed        int           `json:"failed"`
	Results       []BatchResult `json:"results"`
	TopCandidates []BatchResult `json:"top_candidates"`
}
