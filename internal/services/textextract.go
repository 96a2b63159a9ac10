package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"

	"hireflow/resume-intake/internal/models"
)

// ResumeTextService turns an uploaded resume file into plain text. The
// concrete extractor is picked by file extension at call time.
type ResumeTextService interface {
	ExtractText(filePath string) (string, error)
	SupportsFile(filename string) bool
}

type textExtractor func(filePath string) (string, error)

type resumeTextService struct {
	extractors map[string]textExtractor
}

func NewResumeTextService() ResumeTextService {
	return &resumeTextService{
		extractors: map[string]textExtractor{
			".pdf":  extractPDFText,
			".docx": extractDOCXText,
		},
	}
}

// ExtractText implements ResumeTextService. Unknown extensions fail before
// any extraction attempt; extraction failures are never partial.
func (s *resumeTextService) ExtractText(filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	extract, ok := s.extractors[ext]
	if !ok {
		return "", fmt.Errorf("%w: %s", models.ErrUnsupportedFormat, ext)
	}

	return extract(filePath)
}

// SupportsFile implements ResumeTextService.
func (s *resumeTextService) SupportsFile(filename string) bool {
	_, ok := s.extractors[strings.ToLower(filepath.Ext(filename))]
	return ok
}

func extractPDFText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to open PDF: %v", models.ErrInvalidResumeFile, err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: failed to read PDF page %d: %v", models.ErrInvalidResumeFile, pageIndex, err)
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

func extractDOCXText(filePath string) (string, error) {
	res, err := docconv.ConvertPath(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read DOCX: %v", models.ErrInvalidResumeFile, err)
	}

	return res.Body, nil
}
