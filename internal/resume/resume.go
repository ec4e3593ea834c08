// Package resume extracts a best-effort candidate profile from an uploaded
// resume file. Only PDF and DOCX are accepted; extraction failures surface as
// descriptive errors and never commit partial state.
package resume

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/intervu/intervu/internal/profile"
	"github.com/intervu/intervu/pkg/models"
)

// MaxFileSize is the hard cap on resume uploads.
const MaxFileSize = 10 * 1024 * 1024

var (
	ErrTooLarge    = errors.New("file too large: please use a resume smaller than 10MB")
	ErrUnsupported = errors.New("unsupported file format: please use a PDF or DOCX resume")
	ErrEmptyPDF    = errors.New("the PDF appears to be empty or contains only images: please use a text-based resume")
	ErrEmptyDocx   = errors.New("the DOCX file appears to be empty: please use a valid resume with text content")
	ErrCorrupted   = errors.New("the file appears to be corrupted or invalid: please try a different file")
	ErrEncrypted   = errors.New("password-protected files are not supported: please use an unprotected resume")
)

var nameLineSanitizeRe = regexp.MustCompile(`[^a-zA-Z\s'-]`)

// Parse reads the file, extracts its text, and returns a profile guess with
// resume metadata attached.
func Parse(path string) (models.CandidateProfile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.CandidateProfile{}, fmt.Errorf("unable to read resume file: %w", err)
	}
	if info.Size() > MaxFileSize {
		return models.CandidateProfile{}, ErrTooLarge
	}

	var text string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err = extractPDFText(path)
		if err != nil {
			return models.CandidateProfile{}, classifyError(err)
		}
		if strings.TrimSpace(text) == "" {
			return models.CandidateProfile{}, ErrEmptyPDF
		}
	case ".docx":
		text, err = extractDocxText(path)
		if err != nil {
			return models.CandidateProfile{}, classifyError(err)
		}
		if strings.TrimSpace(text) == "" {
			return models.CandidateProfile{}, ErrEmptyDocx
		}
	default:
		return models.CandidateProfile{}, ErrUnsupported
	}

	guessed := ExtractFields(text)
	guessed.ResumeFileName = filepath.Base(path)
	return guessed, nil
}

// ExtractFields guesses contact fields from raw resume text.
func ExtractFields(text string) models.CandidateProfile {
	return models.CandidateProfile{
		Name:       guessName(text),
		Email:      profile.MatchEmail(text),
		Phone:      profile.NormalizeWhitespace(profile.MatchPhone(text)),
		ResumeText: text,
	}
}

// guessName scans the first ten non-empty lines for something shaped like a
// person's name: two to four words once punctuation is stripped, skipping
// lines that carry an email or the word "resume".
func guessName(text string) string {
	lines := strings.Split(text, "\n")
	seen := 0
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		seen++
		if seen > 10 {
			break
		}
		if profile.ContainsEmail(line) || strings.Contains(strings.ToLower(line), "resume") {
			continue
		}
		sanitized := strings.TrimSpace(nameLineSanitizeRe.ReplaceAllString(line, ""))
		if sanitized == "" {
			continue
		}
		words := strings.Fields(sanitized)
		if len(words) >= 2 && len(words) <= 4 {
			return profile.TitleCaseWords(words)
		}
	}
	return ""
}

func extractPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages; the rest may still carry text.
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// classifyError maps extraction failures onto the specific user-facing
// causes: encryption, corruption, or the raw error when neither applies.
func classifyError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "password") || strings.Contains(msg, "encrypted") {
		return ErrEncrypted
	}
	if strings.Contains(msg, "invalid") || strings.Contains(msg, "corrupt") || strings.Contains(msg, "malformed") || strings.Contains(msg, "not a valid zip") {
		return ErrCorrupted
	}
	return err
}
