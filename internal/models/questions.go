package models

import (
	"database/sql/driver"
	"encoding/json"
)

type QuestionCategory string

const (
	CategoryTechnical   QuestionCategory = "technical"
	CategoryBehavioral  QuestionCategory = "behavioral"
	CategoryExperience  QuestionCategory = "experience"
	CategorySituational QuestionCategory = "situational"
)

type QuestionDifficulty string

const (
	DifficultyEntry  QuestionDifficulty = "entry"
	DifficultyMid    QuestionDifficulty = "mid"
	DifficultySenior QuestionDifficulty = "senior"
)

type InterviewQuestion struct {
	Question             string             `json:"question"`
	Category             QuestionCategory   `json:"category"`
	FocusArea            string             `json:"focus_area"`
	Difficulty           QuestionDifficulty `json:"difficulty"`
	ExpectedResponseType string             `json:"expected_response_type"`
}

type InterviewNotes struct {
	CandidateStrengths   []string `json:"candidate_strengths"`
	AreasToProbe         []string `json:"areas_to_probe"`
	RecommendedFollowUps []string `json:"recommended_follow_ups"`
}

// QuestionSet is the full interview question artifact attached to a session.
type QuestionSet struct {
	Questions      []InterviewQuestion `json:"questions"`
	InterviewNotes *InterviewNotes     `json:"interview_notes,omitempty"`
}

func (q QuestionSet) Value() (driver.Value, error) {
	return json.Marshal(q)
}

func (q *QuestionSet) Scan(value interface{}) error {
	bytes, err := jsonBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, q)
}
