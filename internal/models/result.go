package models

// ParsedResume holds the best-effort fields extracted from one resume.
// Fields the extractor could not find stay zero-valued; a missing field
// is never an error.
type ParsedResume struct {
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	TotalExperience float64        `json:"total_experience"`
	Companies       []CompanyStint `json:"companies"`
	Skills          []string       `json:"skills"`
	RawText         string         `json:"raw_text"`
}

// CompanyStint is one employer with its free-form tenure string.
type CompanyStint struct {
	CompanyName string `json:"company_name"`
	Tenure      string `json:"tenure"`
}

type FileStatus string

const (
	FileSucceeded FileStatus = "succeeded"
	FileFailed    FileStatus = "failed"
	FileSkipped   FileStatus = "skipped"
)

type FileOutcome struct {
	File   string     `json:"file"`
	Status FileStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
}

type BatchSummary struct {
	Total     int           `json:"total"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Skipped   int           `json:"skipped"`
	Outcomes  []FileOutcome `json:"outcomes"`
}

func (s *BatchSummary) Record(file string, status FileStatus, err error) {
	outcome := FileOutcome{File: file, Status: status}
	if err != nil {
		outcome.Error = err.Error()
	}

	s.Total++
	switch status {
	case FileSucceeded:
		s.Succeeded++
	case FileFailed:
		s.Failed++
	case FileSkipped:
		s.Skipped++
	}
	s.Outcomes = append(s.Outcomes, outcome)
}
