package services_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"hireflow/resume-intake/internal/models"
	"hireflow/resume-intake/internal/services"
)

func TestResumeTextServiceUnsupportedFormat(t *testing.T) {
	svc := services.NewResumeTextService()

	for _, name := range []string{"resume.txt", "resume.doc", "resume", "resume.pdf.exe"} {
		if _, err := svc.ExtractText(name); !errors.Is(err, models.ErrUnsupportedFormat) {
			t.Fatalf("ExtractText(%q) = %v, want ErrUnsupportedFormat", name, err)
		}
	}
}

func TestResumeTextServiceInvalidPDF(t *testing.T) {
	svc := services.NewResumeTextService()

	corrupt := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(corrupt, []byte("not a pdf at all"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := svc.ExtractText(corrupt); !errors.Is(err, models.ErrInvalidResumeFile) {
		t.Fatalf("ExtractText(corrupt pdf) = %v, want ErrInvalidResumeFile", err)
	}
}

func TestResumeTextServiceSupportsFile(t *testing.T) {
	svc := services.NewResumeTextService()

	tests := []struct {
		filename string
		want     bool
	}{
		{"resume.pdf", true},
		{"resume.PDF", true},
		{"resume.docx", true},
		{"Resume.DocX", true},
		{"resume.txt", false},
		{"resume", false},
	}

	for _, tt := range tests {
		if got := svc.SupportsFile(tt.filename); got != tt.want {
			t.Fatalf("SupportsFile(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}
