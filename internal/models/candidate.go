package models

import (
	"time"

	"gorm.io/datatypes"
)

type ExtractionStatus string

const (
	ExtractionPending    ExtractionStatus = "pending"
	ExtractionProcessing ExtractionStatus = "processing"
	ExtractionCompleted  ExtractionStatus = "completed"
	ExtractionFailed     ExtractionStatus = "failed"
)

// Candidate is the aggregate root for a parsed resume. A row is created as
// soon as the upload lands and is mutated exactly once by the extraction
// pipeline, either to completed or to failed.
type Candidate struct {
	ID                   uint                        `gorm:"primaryKey" json:"id"`
	Name                 string                      `gorm:"type:text" json:"name"`
	Email                string                      `gorm:"type:text" json:"email"`
	Phone                string                      `gorm:"type:text" json:"phone"`
	Company              string                      `gorm:"type:text" json:"company"`
	Designation          string                      `gorm:"type:text" json:"designation"`
	Skills               datatypes.JSONSlice[string] `json:"skills"`
	ResumeFilePath       string                      `gorm:"type:text" json:"resume_file_path"`
	ExtractionStatus     ExtractionStatus            `gorm:"type:text;not null;default:'pending'" json:"extraction_status"`
	ExtractionConfidence float64                     `json:"extraction_confidence"`
	RawExtractedData     datatypes.JSONMap           `json:"raw_extracted_data"`
	CreatedAt            time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time                   `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// UpdateExtractionData applies a successful extraction result and moves the
// candidate to completed.
func (c *Candidate) UpdateExtractionData(data ExtractedData) {
	c.Name = data.Name
	c.Email = data.Email
	c.Phone = data.Phone
	c.Company = data.Company
	c.Designation = data.Designation
	c.Skills = datatypes.NewJSONSlice(data.Skills)
	c.ExtractionConfidence = data.Confidence
	c.RawExtractedData = datatypes.JSONMap(data.RawData)
	c.ExtractionStatus = ExtractionCompleted
}

// MarkExtractionFailed records the failure cause under the "error" key and
// moves the candidate to failed. The row is kept, not rolled back.
func (c *Candidate) MarkExtractionFailed(cause string) {
	c.ExtractionStatus = ExtractionFailed
	c.RawExtractedData = datatypes.JSONMap{"error": cause}
}

func (c *Candidate) MarkExtractionProcessing() {
	c.ExtractionStatus = ExtractionProcessing
}

func (c *Candidate) IsExtractionComplete() bool {
	return c.ExtractionStatus == ExtractionCompleted
}
