package models

import (
	"database/sql/driver"
	"encoding/json"
)

// MatchAnalysis compares a candidate profile against a job description.
// MatchScore is always present and within [0,100], including on the
// deterministic fallback path.
type MatchAnalysis struct {
	MatchScore          int              `json:"match_score"`
	MatchLabel          string           `json:"match_label"`
	Summary             string           `json:"summary"`
	Strengths           []string         `json:"strengths"`
	Gaps                []string         `json:"gaps"`
	DetailedAnalysis    DetailedAnalysis `json:"detailed_analysis"`
	Recommendations     []string         `json:"recommendations"`
	InterviewFocusAreas []string         `json:"interview_focus_areas"`
}

type DetailedAnalysis struct {
	TechnicalSkills     DimensionScore `json:"technical_skills"`
	ExperienceRelevance DimensionScore `json:"experience_relevance"`
	EducationAlignment  DimensionScore `json:"education_alignment"`
	SeniorityMatch      DimensionScore `json:"seniority_match"`
}

type DimensionScore struct {
	Score      int    `json:"score"`
	Assessment string `json:"assessment"`
}

func (m MatchAnalysis) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *MatchAnalysis) Scan(value interface{}) error {
	bytes, err := jsonBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, m)
}
