package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hireflow/resume-intake/internal/models"
	"hireflow/resume-intake/internal/services"
)

func TestDocumentRequestGeneratorFallback(t *testing.T) {
	generator := services.NewDocumentRequestGenerator(nil)

	tests := []struct {
		name        string
		requestType models.RequestType
		channel     models.CommunicationChannel
		wantDoc     string
		wantChannel string
	}{
		{
			name:        "pan over phone",
			requestType: models.RequestPAN,
			channel:     models.ChannelPhone,
			wantDoc:     "PAN card",
			wantChannel: "phone",
		},
		{
			name:        "aadhaar over email",
			requestType: models.RequestAadhaar,
			channel:     models.ChannelEmail,
			wantDoc:     "Aadhaar card",
			wantChannel: "email",
		},
		{
			name:        "both over both defaults to email wording",
			requestType: models.RequestBoth,
			channel:     models.ChannelBoth,
			wantDoc:     "PAN card and Aadhaar card",
			wantChannel: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message := generator.Generate(context.Background(), "Jane Doe", "jane@acme.com", "555-123-4567", tt.requestType, tt.channel)

			if message == "" {
				t.Fatal("message must not be empty")
			}
			if !strings.Contains(message, tt.wantDoc) {
				t.Fatalf("message missing %q:\n%s", tt.wantDoc, message)
			}
			if !strings.Contains(message, "via "+tt.wantChannel) {
				t.Fatalf("message missing channel %q:\n%s", tt.wantChannel, message)
			}
			if !strings.Contains(message, "Dear Jane Doe") {
				t.Fatalf("message not personalized:\n%s", message)
			}
		})
	}
}

func TestDocumentRequestGeneratorFallbackBlankName(t *testing.T) {
	generator := services.NewDocumentRequestGenerator(nil)

	message := generator.Generate(context.Background(), "", "", "", models.RequestBoth, models.ChannelEmail)
	if !strings.Contains(message, "Dear Candidate") {
		t.Fatalf("blank name must address the candidate generically:\n%s", message)
	}
}

func TestDocumentRequestGeneratorModelPath(t *testing.T) {
	gemini := &stubGemini{response: "  Dear Jane,\n\nPlease share your PAN card.\n"}

	generator := services.NewDocumentRequestGenerator(gemini)
	message := generator.Generate(context.Background(), "Jane Doe", "jane@acme.com", "", models.RequestPAN, models.ChannelEmail)

	if message != "Dear Jane,\n\nPlease share your PAN card." {
		t.Fatalf("model output must be returned trimmed, got %q", message)
	}
}

func TestDocumentRequestGeneratorDegradesOnModelError(t *testing.T) {
	gemini := &stubGemini{err: errors.New("timeout")}

	generator := services.NewDocumentRequestGenerator(gemini)
	message := generator.Generate(context.Background(), "Jane Doe", "", "", models.RequestPAN, models.ChannelPhone)

	if !strings.Contains(message, "PAN card") {
		t.Fatalf("fallback expected on model error:\n%s", message)
	}
}
