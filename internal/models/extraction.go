package models

import (
	"fmt"
	"strings"
)

// ExtractedData is the immutable result of structured resume extraction.
// Build it through NewExtractedData so the invariants hold.
type ExtractedData struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	Designation string
	Skills      []string
	Confidence  float64
	RawData     map[string]interface{}
}

func NewExtractedData(
	name, email, phone, company, designation string,
	skills []string,
	confidence float64,
	rawData map[string]interface{},
) (ExtractedData, error) {
	if confidence < 0.0 || confidence > 1.0 {
		return ExtractedData{}, fmt.Errorf("confidence must be between 0.0 and 1.0, got %v", confidence)
	}
	if skills == nil {
		skills = []string{}
	}
	if rawData == nil {
		rawData = map[string]interface{}{}
	}

	return ExtractedData{
		Name:        name,
		Email:       email,
		Phone:       phone,
		Company:     company,
		Designation: designation,
		Skills:      skills,
		Confidence:  confidence,
		RawData:     rawData,
	}, nil
}

// DocumentRequestMessage is the immutable outreach text produced by the
// message generator.
type DocumentRequestMessage struct {
	Message              string
	RequestType          RequestType
	CommunicationChannel CommunicationChannel
}

func NewDocumentRequestMessage(message string, requestType RequestType, channel CommunicationChannel) (DocumentRequestMessage, error) {
	if strings.TrimSpace(message) == "" {
		return DocumentRequestMessage{}, fmt.Errorf("request message cannot be empty")
	}

	return DocumentRequestMessage{
		Message:              message,
		RequestType:          requestType,
		CommunicationChannel: channel,
	}, nil
}
