package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"hireflow/resume-intake/internal/models"
)

// promptTextLimit caps how much resume text is sent to the model.
const promptTextLimit = 3000

const extractorSystemInstruction = "You are a resume parser. Extract structured information and return only valid JSON."

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?\(?[0-9]{3}\)?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}`)
)

// ResumeDataExtractor converts resume text into structured candidate data.
// Extract never fails: any model, network, or parse error degrades to the
// deterministic regex extraction, so the upload pipeline cannot abort here.
type ResumeDataExtractor interface {
	Extract(ctx context.Context, resumeText string) models.ExtractedData
}

type resumeDataExtractor struct {
	gemini GeminiService
}

// NewResumeDataExtractor builds the extractor. A nil gemini service means no
// credentials are configured and every call goes straight to the fallback.
func NewResumeDataExtractor(gemini GeminiService) ResumeDataExtractor {
	return &resumeDataExtractor{gemini: gemini}
}

// Extract implements ResumeDataExtractor.
func (e *resumeDataExtractor) Extract(ctx context.Context, resumeText string) models.ExtractedData {
	if e.gemini == nil {
		return e.basicExtraction(resumeText)
	}

	data, err := e.llmExtraction(ctx, resumeText)
	if err != nil {
		log.Printf("⚠️ LLM extraction failed, using fallback: %v", err)
		return e.basicExtraction(resumeText)
	}

	return data
}

func (e *resumeDataExtractor) llmExtraction(ctx context.Context, resumeText string) (models.ExtractedData, error) {
	excerpt := resumeText
	if len(excerpt) > promptTextLimit {
		excerpt = excerpt[:promptTextLimit]
	}

	prompt := fmt.Sprintf(`Extract the following information from this resume text and return it as a JSON object:
- name: Full name of the candidate
- email: Email address
- phone: Phone number
- company: Current or most recent company
- designation: Current or most recent job title
- skills: List of technical skills and competencies

Resume text:
%s

Return ONLY a valid JSON object with these exact keys: name, email, phone, company, designation, skills.
For skills, return an array of strings.
If any information is not found, use an empty string for strings or empty array for skills.`, excerpt)

	response, err := e.gemini.GenerateText(ctx, extractorSystemInstruction, prompt, 0.1)
	if err != nil {
		return models.ExtractedData{}, err
	}

	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(extractJSON(response)), &fields); err != nil {
		return models.ExtractedData{}, fmt.Errorf("failed to parse extraction response: %w", err)
	}

	confidence := CalculateConfidence(fields)

	return models.NewExtractedData(
		stringField(fields, "name"),
		stringField(fields, "email"),
		stringField(fields, "phone"),
		stringField(fields, "company"),
		stringField(fields, "designation"),
		skillsField(fields),
		confidence,
		fields,
	)
}

// basicExtraction is the deterministic fallback: regex for email and phone,
// first line as the name.
func (e *resumeDataExtractor) basicExtraction(resumeText string) models.ExtractedData {
	name := ""
	if lines := strings.Split(resumeText, "\n"); len(lines) > 0 {
		name = strings.TrimSpace(lines[0])
	}
	if len(name) > 255 {
		name = name[:255]
	}

	fields := map[string]interface{}{
		"name":        name,
		"email":       emailPattern.FindString(resumeText),
		"phone":       phonePattern.FindString(resumeText),
		"company":     "",
		"designation": "",
		"skills":      []string{},
	}

	confidence := CalculateConfidence(fields)

	data, _ := models.NewExtractedData(
		fields["name"].(string),
		fields["email"].(string),
		fields["phone"].(string),
		"",
		"",
		[]string{},
		confidence,
		fields,
	)
	return data
}

func stringField(fields map[string]interface{}, key string) string {
	if s, ok := fields[key].(string); ok {
		return s
	}
	return ""
}

func skillsField(fields map[string]interface{}) []string {
	raw, ok := fields["skills"].([]interface{})
	if !ok {
		return []string{}
	}

	skills := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			skills = append(skills, s)
		}
	}
	return skills
}

// extractJSON strips markdown fences and trims to the outermost JSON object,
// since the model may wrap its answer in formatting.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}
