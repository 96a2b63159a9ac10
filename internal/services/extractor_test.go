package services_test

import (
	"context"
	"errors"
	"testing"

	"hireflow/resume-intake/internal/services"
)

type stubGemini struct {
	response string
	err      error
}

func (s *stubGemini) GenerateText(ctx context.Context, systemInstruction, prompt string, temperature float32) (string, error) {
	return s.response, s.err
}

func TestResumeDataExtractorFallback(t *testing.T) {
	// No credentials configured: the extractor must not touch the model.
	extractor := services.NewResumeDataExtractor(nil)

	text := "Jane Doe\nContact: jane@acme.com, 555-123-4567\nSenior Engineer"
	data := extractor.Extract(context.Background(), text)

	if data.Email != "jane@acme.com" {
		t.Fatalf("email = %q, want jane@acme.com", data.Email)
	}
	if data.Phone != "555-123-4567" {
		t.Fatalf("phone = %q, want 555-123-4567", data.Phone)
	}
	if data.Name != "Jane Doe" {
		t.Fatalf("name = %q, want Jane Doe", data.Name)
	}
	if data.Company != "" || data.Designation != "" {
		t.Fatalf("fallback must leave company/designation empty, got %q/%q", data.Company, data.Designation)
	}
	if len(data.Skills) != 0 {
		t.Fatalf("fallback must leave skills empty, got %v", data.Skills)
	}

	// name, email, phone filled: 3 of 6 canonical fields
	if data.Confidence != 3.0/6.0 {
		t.Fatalf("confidence = %v, want 0.5", data.Confidence)
	}
}

func TestResumeDataExtractorFallbackEmptyText(t *testing.T) {
	extractor := services.NewResumeDataExtractor(nil)

	data := extractor.Extract(context.Background(), "")
	if data.Confidence != 0.0 {
		t.Fatalf("confidence = %v, want 0.0", data.Confidence)
	}
	if data.Email != "" || data.Phone != "" || data.Name != "" {
		t.Fatalf("unexpected fields: %+v", data)
	}
}

func TestResumeDataExtractorLLM(t *testing.T) {
	gemini := &stubGemini{response: "```json\n" + `{
		"name": "Jane Doe",
		"email": "jane@acme.com",
		"phone": "555-123-4567",
		"company": "Acme",
		"designation": "Senior Engineer",
		"skills": ["Go", "Postgres"]
	}` + "\n```"}

	extractor := services.NewResumeDataExtractor(gemini)
	data := extractor.Extract(context.Background(), "irrelevant resume text")

	if data.Name != "Jane Doe" || data.Company != "Acme" {
		t.Fatalf("unexpected data: %+v", data)
	}
	if len(data.Skills) != 2 || data.Skills[0] != "Go" {
		t.Fatalf("skills = %v", data.Skills)
	}
	if data.Confidence != 1.0 {
		t.Fatalf("confidence = %v, want 1.0", data.Confidence)
	}
	if data.RawData["email"] != "jane@acme.com" {
		t.Fatalf("raw data = %#v", data.RawData)
	}
}

func TestResumeDataExtractorLLMPartialResult(t *testing.T) {
	gemini := &stubGemini{response: `{"name": "Jane Doe", "skills": []}`}

	extractor := services.NewResumeDataExtractor(gemini)
	data := extractor.Extract(context.Background(), "text")

	if data.Name != "Jane Doe" {
		t.Fatalf("name = %q", data.Name)
	}
	if data.Email != "" || data.Phone != "" {
		t.Fatalf("absent keys must default empty: %+v", data)
	}
	if data.Confidence != 1.0/6.0 {
		t.Fatalf("confidence = %v, want 1/6", data.Confidence)
	}
}

func TestResumeDataExtractorDegradesOnModelError(t *testing.T) {
	gemini := &stubGemini{err: errors.New("rate limited")}

	extractor := services.NewResumeDataExtractor(gemini)
	data := extractor.Extract(context.Background(), "Jane Doe\njane@acme.com")

	if data.Name != "Jane Doe" || data.Email != "jane@acme.com" {
		t.Fatalf("expected fallback extraction, got %+v", data)
	}
}

func TestResumeDataExtractorDegradesOnMalformedJSON(t *testing.T) {
	gemini := &stubGemini{response: "sorry, I cannot parse this resume"}

	extractor := services.NewResumeDataExtractor(gemini)
	data := extractor.Extract(context.Background(), "Jane Doe\njane@acme.com")

	if data.Email != "jane@acme.com" {
		t.Fatalf("expected fallback extraction, got %+v", data)
	}
}
