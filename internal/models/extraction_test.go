package models_test

import (
	"testing"

	"hireflow/resume-intake/internal/models"
)

func TestNewExtractedData(t *testing.T) {
	t.Run("valid data", func(t *testing.T) {
		data, err := models.NewExtractedData(
			"Jane Doe", "jane@acme.com", "555-123-4567", "Acme", "Engineer",
			[]string{"Go", "Postgres"}, 1.0, map[string]interface{}{"name": "Jane Doe"},
		)
		if err != nil {
			t.Fatalf("NewExtractedData: %v", err)
		}
		if data.Name != "Jane Doe" || data.Confidence != 1.0 {
			t.Fatalf("unexpected data: %+v", data)
		}
	})

	t.Run("nil skills become empty slice", func(t *testing.T) {
		data, err := models.NewExtractedData("", "", "", "", "", nil, 0.0, nil)
		if err != nil {
			t.Fatalf("NewExtractedData: %v", err)
		}
		if data.Skills == nil || len(data.Skills) != 0 {
			t.Fatalf("expected empty skills, got %#v", data.Skills)
		}
		if data.RawData == nil {
			t.Fatal("expected empty raw data map")
		}
	})

	t.Run("confidence out of range", func(t *testing.T) {
		for _, confidence := range []float64{-0.1, 1.1, 2.0} {
			if _, err := models.NewExtractedData("", "", "", "", "", nil, confidence, nil); err == nil {
				t.Fatalf("expected error for confidence %v", confidence)
			}
		}
	})
}

func TestNewDocumentRequestMessage(t *testing.T) {
	t.Run("valid message", func(t *testing.T) {
		msg, err := models.NewDocumentRequestMessage("Please share your PAN card.", models.RequestPAN, models.ChannelEmail)
		if err != nil {
			t.Fatalf("NewDocumentRequestMessage: %v", err)
		}
		if msg.RequestType != models.RequestPAN || msg.CommunicationChannel != models.ChannelEmail {
			t.Fatalf("unexpected message: %+v", msg)
		}
	})

	t.Run("empty or whitespace message", func(t *testing.T) {
		for _, text := range []string{"", "   ", "\n\t"} {
			if _, err := models.NewDocumentRequestMessage(text, models.RequestBoth, models.ChannelBoth); err == nil {
				t.Fatalf("expected error for message %q", text)
			}
		}
	})
}

func TestCandidateTransitions(t *testing.T) {
	t.Run("update extraction data completes the candidate", func(t *testing.T) {
		data, err := models.NewExtractedData(
			"Jane Doe", "jane@acme.com", "555-123-4567", "Acme", "Engineer",
			[]string{"Go"}, 1.0, map[string]interface{}{"name": "Jane Doe"},
		)
		if err != nil {
			t.Fatalf("NewExtractedData: %v", err)
		}

		candidate := &models.Candidate{}
		candidate.MarkExtractionProcessing()
		if candidate.ExtractionStatus != models.ExtractionProcessing {
			t.Fatalf("status = %s, want processing", candidate.ExtractionStatus)
		}

		candidate.UpdateExtractionData(data)
		if !candidate.IsExtractionComplete() {
			t.Fatalf("status = %s, want completed", candidate.ExtractionStatus)
		}
		if candidate.Name != "Jane Doe" || candidate.ExtractionConfidence != 1.0 {
			t.Fatalf("unexpected candidate: %+v", candidate)
		}
	})

	t.Run("mark extraction failed records the cause", func(t *testing.T) {
		candidate := &models.Candidate{}
		candidate.MarkExtractionProcessing()
		candidate.MarkExtractionFailed("corrupt file signature")

		if candidate.ExtractionStatus != models.ExtractionFailed {
			t.Fatalf("status = %s, want failed", candidate.ExtractionStatus)
		}
		if candidate.RawExtractedData["error"] != "corrupt file signature" {
			t.Fatalf("raw data = %#v", candidate.RawExtractedData)
		}
	})
}

func TestParseEnums(t *testing.T) {
	if _, err := models.ParseRequestType("pan"); err != nil {
		t.Fatalf("ParseRequestType(pan): %v", err)
	}
	if _, err := models.ParseRequestType("passport"); err == nil {
		t.Fatal("expected error for unknown request type")
	}
	if _, err := models.ParseCommunicationChannel("both"); err != nil {
		t.Fatalf("ParseCommunicationChannel(both): %v", err)
	}
	if _, err := models.ParseCommunicationChannel("fax"); err == nil {
		t.Fatal("expected error for unknown channel")
	}
	if _, err := models.ParseDocumentType("aadhaar"); err != nil {
		t.Fatalf("ParseDocumentType(aadhaar): %v", err)
	}
	if _, err := models.ParseDocumentType("both"); err == nil {
		t.Fatal("expected error: submissions carry a single document type")
	}
}
