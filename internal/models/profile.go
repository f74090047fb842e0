package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CandidateProfile is the structured data extracted from a resume. Fields the
// resume does not mention stay empty; the extractor never fills gaps on its own.
type CandidateProfile struct {
	PersonalInformation PersonalInformation `json:"personal_information"`
	Summary             string              `json:"summary"`
	Education           []Education         `json:"education"`
	WorkExperience      []WorkExperience    `json:"work_experience"`
	Projects            []Project           `json:"projects"`
	Certifications      []Certification     `json:"certifications"`
	Awards              []Award             `json:"awards"`
	Skills              []string            `json:"skills"`
	IsResume            bool                `json:"is_resume"`
}

type PersonalInformation struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type Education struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	StartYear string `json:"start_year"`
	EndYear   string `json:"end_year"`
	Major     string `json:"major"`
	GPA       string `json:"gpa"`
}

type WorkExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartYear   string `json:"start_year"`
	EndYear     string `json:"end_year"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Description string `json:"description"`
}

type Project struct {
	Name        string `json:"name"`
	StartYear   string `json:"start_year"`
	EndYear     string `json:"end_year"`
	Description string `json:"description"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	ID     string `json:"id"`
}

type Award struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// VerificationResult tells whether a document looks like a resume at all.
type VerificationResult struct {
	IsResume   bool   `json:"is_resume"`
	Confidence int    `json:"confidence"`
	Reason     string `json:"reason"`
}

func (p CandidateProfile) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *CandidateProfile) Scan(value interface{}) error {
	bytes, err := jsonBytes(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(bytes, p)
}

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported jsonb source type %T", value)
	}
}
