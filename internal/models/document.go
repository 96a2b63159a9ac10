package models

import (
	"fmt"
	"time"
)

type RequestType string

const (
	RequestPAN     RequestType = "pan"
	RequestAadhaar RequestType = "aadhaar"
	RequestBoth    RequestType = "both"
)

type CommunicationChannel string

const (
	ChannelEmail CommunicationChannel = "email"
	ChannelPhone CommunicationChannel = "phone"
	ChannelBoth  CommunicationChannel = "both"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestSent      RequestStatus = "sent"
	RequestCompleted RequestStatus = "completed"
)

type DocumentType string

const (
	DocumentPAN     DocumentType = "pan"
	DocumentAadhaar DocumentType = "aadhaar"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// DocumentRequest tracks an outreach asking a candidate for identity
// documents. It is created pending with a generated message and marked sent
// once dispatch has been attempted. Completed is reserved for a verification
// workflow outside this service.
type DocumentRequest struct {
	ID                   uint                 `gorm:"primaryKey" json:"id"`
	CandidateID          uint                 `gorm:"not null;index" json:"candidate_id"`
	RequestType          RequestType          `gorm:"type:text;not null;default:'both'" json:"request_type"`
	RequestMessage       string               `gorm:"type:text" json:"request_message"`
	CommunicationChannel CommunicationChannel `gorm:"type:text;not null;default:'email'" json:"communication_channel"`
	Status               RequestStatus        `gorm:"type:text;not null;default:'pending'" json:"status"`
	CreatedAt            time.Time            `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time            `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (DocumentRequest) TableName() string {
	return "document_requests"
}

// UpdateMessage applies a generated request message to the entity.
func (r *DocumentRequest) UpdateMessage(msg DocumentRequestMessage) {
	r.RequestMessage = msg.Message
	r.RequestType = msg.RequestType
	r.CommunicationChannel = msg.CommunicationChannel
}

func (r *DocumentRequest) MarkAsSent() {
	r.Status = RequestSent
}

func (r *DocumentRequest) MarkAsCompleted() {
	r.Status = RequestCompleted
}

// DocumentSubmission records a document uploaded by a candidate. Verification
// transitions exist for a future approval workflow; nothing in this service
// invokes them.
type DocumentSubmission struct {
	ID                 uint               `gorm:"primaryKey" json:"id"`
	CandidateID        uint               `gorm:"not null;index" json:"candidate_id"`
	DocumentType       DocumentType       `gorm:"type:text;not null;default:'pan'" json:"document_type"`
	DocumentFilePath   string             `gorm:"type:text" json:"document_file_path"`
	VerificationStatus VerificationStatus `gorm:"type:text;not null;default:'pending'" json:"verification_status"`
	UploadedAt         time.Time          `gorm:"autoCreateTime;default:CURRENT_TIMESTAMP" json:"uploaded_at"`
}

func (DocumentSubmission) TableName() string {
	return "document_submissions"
}

func (s *DocumentSubmission) MarkAsVerified() {
	s.VerificationStatus = VerificationVerified
}

func (s *DocumentSubmission) MarkAsRejected() {
	s.VerificationStatus = VerificationRejected
}

func ParseRequestType(s string) (RequestType, error) {
	switch RequestType(s) {
	case RequestPAN, RequestAadhaar, RequestBoth:
		return RequestType(s), nil
	}
	return "", fmt.Errorf("invalid request type: %q", s)
}

func ParseCommunicationChannel(s string) (CommunicationChannel, error) {
	switch CommunicationChannel(s) {
	case ChannelEmail, ChannelPhone, ChannelBoth:
		return CommunicationChannel(s), nil
	}
	return "", fmt.Errorf("invalid communication channel: %q", s)
}

func ParseDocumentType(s string) (DocumentType, error) {
	switch DocumentType(s) {
	case DocumentPAN, DocumentAadhaar:
		return DocumentType(s), nil
	}
	return "", fmt.Errorf("invalid document type: %q", s)
}
