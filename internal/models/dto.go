package models

import "time"

type CandidateResponse struct {
	ID                   uint                   `json:"id"`
	Name                 string                 `json:"name"`
	Email                string                 `json:"email"`
	Phone                string                 `json:"phone"`
	Company              string                 `json:"company"`
	Designation          string                 `json:"designation"`
	Skills               []string               `json:"skills"`
	ResumeFileURL        string                 `json:"resume_file_url,omitempty"`
	ExtractionStatus     string                 `json:"extraction_status"`
	ExtractionConfidence float64                `json:"extraction_confidence"`
	RawExtractedData     map[string]interface{} `json:"raw_extracted_data,omitempty"`
	CreatedAt            time.Time              `json:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at"`
}

type CandidateListItem struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Company          string    `json:"company"`
	Designation      string    `json:"designation"`
	ExtractionStatus string    `json:"extraction_status"`
	CreatedAt        time.Time `json:"created_at"`
}

type CandidateDetailResponse struct {
	Candidate           CandidateResponse            `json:"candidate"`
	DocumentRequests    []DocumentRequestResponse    `json:"document_requests"`
	DocumentSubmissions []DocumentSubmissionResponse `json:"document_submissions"`
}

type DocumentRequestResponse struct {
	ID                   uint      `json:"id"`
	RequestType          string    `json:"request_type"`
	RequestMessage       string    `json:"request_message"`
	CommunicationChannel string    `json:"communication_channel"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
}

type DocumentSubmissionResponse struct {
	ID                 uint      `json:"id"`
	DocumentType       string    `json:"document_type"`
	DocumentFileURL    string    `json:"document_file_url,omitempty"`
	VerificationStatus string    `json:"verification_status"`
	UploadedAt         time.Time `json:"uploaded_at"`
}

type RequestDocumentsRequest struct {
	RequestType          string `json:"request_type"`
	CommunicationChannel string `json:"communication_channel"`
}
