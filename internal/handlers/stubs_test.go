package handlers

import (
	"context"
	"fmt"
	"mime/multipart"
	"sync"

	"github.com/google/uuid"

	"github.com/tarun0648/Resume-Analyser/internal/models"
	"github.com/tarun0648/Resume-Analyser/internal/repositories"
	"github.com/tarun0648/Resume-Analyser/internal/services"
)

type memRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*models.ResumeSession
	listErr  error
}

func newMemRepo() *memRepo {
	return &memRepo{sessions: make(map[uuid.UUID]*models.ResumeSession)}
}

func (r *memRepo) Create(session *models.ResumeSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}

func (r *memRepo) FindByID(id uuid.UUID) (*models.ResumeSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session not found")
	}
	copied := *session
	return &copied, nil
}

func (r *memRepo) UpdateProgress(id uuid.UUID, status models.SessionStatus, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[id]; ok {
		session.Status = status
		session.ProgressMessage = message
	}
	return nil
}

func (r *memRepo) UpdateResult(id uuid.UUID, data *repositories.SessionResultData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[id]; ok {
		session.Status = models.StatusCompleted
		session.ExtractedData = data.Profile
		session.Questions = data.Questions
		session.JobMatchSummary = data.MatchSummary
		session.CandidateName = data.CandidateName
		session.MatchScore = data.MatchScore
	}
	return nil
}

func (r *memRepo) UpdateError(id uuid.UUID, errorMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[id]; ok {
		session.Status = models.StatusFailed
		session.ErrorMessage = errorMsg
	}
	return nil
}

func (r *memRepo) UpdateFileURL(id uuid.UUID, fileURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[id]; ok {
		session.FileURL = &fileURL
	}
	return nil
}

func (r *memRepo) List(opts repositories.ListOptions) ([]models.ResumeSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.ResumeSession, 0, len(r.sessions))
	for _, session := range r.sessions {
		out = append(out, *session)
	}
	return out, nil
}

func (r *memRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("session not found")
	}
	delete(r.sessions, id)
	return nil
}

// stubStorage fakes disk operations and records deleted sessions.
type stubStorage struct {
	mu              sync.Mutex
	saveErr         error
	deletedSessions []uuid.UUID
}

func (s *stubStorage) SaveUpload(file *multipart.FileHeader) (string, string, error) {
	if s.saveErr != nil {
		return "", "", s.saveErr
	}
	name := "resume_" + uuid.New().String() + ".pdf"
	return name, "/tmp/" + name, nil
}

func (s *stubStorage) Archive(sessionID uuid.UUID, sourcePath, originalName string) (string, error) {
	return fmt.Sprintf("/files/%s/%s", sessionID.String(), originalName), nil
}

func (s *stubStorage) DeleteUpload(filePath string) error { return nil }

func (s *stubStorage) DeleteSessionFiles(sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletedSessions = append(s.deletedSessions, sessionID)
	return nil
}

func (s *stubStorage) EnsureDirs() error { return nil }

type stubParser struct {
	text string
	err  error
}

func (p *stubParser) ExtractPlainText(filePath string) (string, error) {
	return p.text, p.err
}

// stubPipeline returns a canned result or error and marks the session done so
// handler and store stay consistent.
type stubPipeline struct {
	repo      *memRepo
	processed *models.ProcessedResume
	err       error
}

func (p *stubPipeline) Process(ctx context.Context, sessionID uuid.UUID, documentText, jobDescription string) (*models.ProcessedResume, error) {
	if p.err != nil {
		if p.repo != nil {
			p.repo.UpdateError(sessionID, p.err.Error())
		}
		return nil, p.err
	}
	if p.repo != nil {
		data := &repositories.SessionResultData{
			Profile:      p.processed.ExtractedData,
			Questions:    p.processed.InterviewQuestions,
			MatchSummary: p.processed.JobMatchSummary,
		}
		if p.processed.JobMatchSummary != nil {
			score := p.processed.JobMatchSummary.MatchScore
			data.MatchScore = &score
		}
		p.repo.UpdateResult(sessionID, data)
	}
	return p.processed, nil
}

func (p *stubPipeline) ProcessBatch(ctx context.Context, docs []services.BatchDocument, jobDescription string) ([]models.BatchResult, []models.BatchResult) {
	results := make([]models.BatchResult, 0, len(docs))
	for _, doc := range docs {
		results = append(results, models.BatchResult{
			SessionID: doc.SessionID.String(),
			Filename:  doc.Filename,
			Status:    "success",
		})
	}
	return results, results
}
