package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/tarun0648/Resume-Analyser/internal/models"
	"github.com/tarun0648/Resume-Analyser/internal/repositories"
)

// stubMessageClient is a deterministic MessageClient double. Either a fixed
// response/error pair or a per-request respond function.
type stubMessageClient struct {
	mu       sync.Mutex
	response string
	err      error
	respond  func(req MessageRequest) (string, error)
	requests []MessageRequest
}

func (s *stubMessageClient) CreateMessage(_ context.Context, req MessageRequest) (*MessageResponse, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.respond != nil {
		text, err := s.respond(req)
		if err != nil {
			return nil, err
		}
		return &MessageResponse{Text: text}, nil
	}
	if s.err != nil {
		return nil, s.err
	}
	return &MessageResponse{Text: s.response}, nil
}

func (s *stubMessageClient) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *stubMessageClient) lastRequest() MessageRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[len(s.requests)-1]
}

// memorySessionRepo is an in-memory SessionRepository recording every status
// transition in order.
type memorySessionRepo struct {
	mu          sync.Mutex
	sessions    map[uuid.UUID]*models.ResumeSession
	transitions []models.SessionStatus
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{sessions: make(map[uuid.UUID]*models.ResumeSession)}
}

func (r *memorySessionRepo) Create(session *models.ResumeSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *session
	r.sessions[session.ID] = &copied
	return nil
}

func (r *memorySessionRepo) FindByID(id uuid.UUID) (*models.ResumeSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session not found")
	}
	copied := *session
	return &copied, nil
}

func (r *memorySessionRepo) UpdateProgress(id uuid.UUID, status models.SessionStatus, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return fmt.Errorf("session not found")
	}
	session.Status = status
	session.ProgressMessage = message
	r.transitions = append(r.transitions, status)
	return nil
}

func (r *memorySessionRepo) UpdateResult(id uuid.UUID, data *repositories.SessionResultData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return fmt.Errorf("session not found")
	}
	session.Status = models.StatusCompleted
	session.ExtractedData = data.Profile
	session.Questions = data.Questions
	session.JobMatchSummary = data.MatchSummary
	session.CandidateName = data.CandidateName
	session.MatchScore = data.MatchScore
	r.transitions = append(r.transitions, models.StatusCompleted)
	return nil
}

func (r *memorySessionRepo) UpdateError(id uuid.UUID, errorMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return fmt.Errorf("session not found")
	}
	session.Status = models.StatusFailed
	session.ErrorMessage = errorMsg
	r.transitions = append(r.transitions, models.StatusFailed)
	return nil
}

func (r *memorySessionRepo) UpdateFileURL(id uuid.UUID, fileURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return fmt.Errorf("session not found")
	}
	session.FileURL = &fileURL
	return nil
}

func (r *memorySessionRepo) List(opts repositories.ListOptions) ([]models.ResumeSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.ResumeSession
	for _, session := range r.sessions {
		out = append(out, *session)
	}
	return out, nil
}

func (r *memorySessionRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("session not found")
	}
	delete(r.sessions, id)
	return nil
}

func newSession(r *memorySessionRepo, jobDescription string) uuid.UUID {
	id := uuid.New()
	r.Create(&models.ResumeSession{
		ID:             id,
		Status:         models.StatusInitializing,
		JobDescription: jobDescription,
	})
	return id
}

func sampleProfile() *models.CandidateProfile {
	return &models.CandidateProfile{
		PersonalInformation: models.PersonalInformation{
			Name:  "John Doe",
			Email: "john@example.com",
		},
		Summary: "Software Engineer with 5 years Python experience",
		Education: []models.Education{
			{School: "State University", Degree: "BS", Major: "Computer Science"},
		},
		WorkExperience: []models.WorkExperience{
			{Company: "Acme Corp", Role: "Software Engineer", Description: "Python services"},
		},
		Skills:   []string{"Python", "Django", "PostgreSQL"},
		IsResume: true,
	}
}
