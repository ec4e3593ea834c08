// Package profile reconciles candidate contact details from free-text chat
// input. Fields are first-write-wins: once a value is known it is never
// replaced by a later guess.
package profile

import (
	"regexp"
	"strings"

	"github.com/intervu/intervu/pkg/models"
)

var (
	emailRe = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[\s-]?)?(\(?\d{3}\)?[\s-]?)?\d{3}[\s-]?\d{4}`)

	namePunctRe  = regexp.MustCompile(`[^\w\s'-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Short acknowledgements that should never be mistaken for a name.
var skipPhrases = []string{"yes", "no", "ok", "okay", "sure", "hi", "hello", "thanks", "thank you"}

// MissingFields returns the contact fields not yet known, always in the fixed
// order name, email, phone.
func MissingFields(p models.CandidateProfile) []models.ProfileField {
	missing := []models.ProfileField{}
	if p.Name == "" {
		missing = append(missing, models.FieldName)
	}
	if p.Email == "" {
		missing = append(missing, models.FieldEmail)
	}
	if p.Phone == "" {
		missing = append(missing, models.FieldPhone)
	}
	return missing
}

// EnrichFromMessage extracts email, phone, and (only while no name is known)
// a best-effort name from a chat message, merging them into the profile
// without overwriting existing fields.
func EnrichFromMessage(message string, p models.CandidateProfile) models.CandidateProfile {
	out := p
	if out.Email == "" {
		out.Email = emailRe.FindString(message)
	}
	if out.Phone == "" {
		out.Phone = phoneRe.FindString(message)
	}
	if out.Name == "" {
		out.Name = guessNameFromChat(message)
	}
	return out
}

// guessNameFromChat decides whether a short chat message is plausibly the
// candidate stating their name.
func guessNameFromChat(message string) string {
	trimmed := strings.TrimSpace(message)
	if emailRe.MatchString(trimmed) || phoneRe.MatchString(trimmed) {
		return ""
	}

	cleaned := strings.TrimSpace(namePunctRe.ReplaceAllString(trimmed, ""))
	if cleaned == "" {
		return ""
	}

	words := strings.Fields(cleaned)
	if len(words) < 1 || len(words) > 4 {
		return ""
	}

	lower := strings.ToLower(message)
	if len(lower) < 15 {
		for _, phrase := range skipPhrases {
			if strings.Contains(lower, phrase) {
				return ""
			}
		}
	}

	return TitleCaseWords(words)
}

// TitleCaseWords upper-cases the first letter of each word and lower-cases
// the rest, joining with single spaces.
func TitleCaseWords(words []string) string {
	cased := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		cased = append(cased, strings.ToUpper(w[:1])+strings.ToLower(w[1:]))
	}
	return strings.Join(cased, " ")
}

// DescribeMissing renders the missing fields for chat copy, joining with
// commas and "and" before the final item: "name, email address and phone
// number".
func DescribeMissing(fields []models.ProfileField) string {
	labels := map[models.ProfileField]string{
		models.FieldName:  "name",
		models.FieldEmail: "email address",
		models.FieldPhone: "phone number",
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if label, ok := labels[f]; ok {
			parts = append(parts, label)
		}
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}

// MatchEmail reports the first email-looking token in text, if any.
func MatchEmail(text string) string {
	return emailRe.FindString(text)
}

// MatchPhone reports the first phone-looking token in text, if any.
func MatchPhone(text string) string {
	return phoneRe.FindString(text)
}

// ContainsEmail reports whether text contains an email-looking token.
func ContainsEmail(text string) bool {
	return emailRe.MatchString(text)
}

// NormalizeWhitespace collapses runs of whitespace to single spaces.
func NormalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
