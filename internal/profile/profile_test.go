package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/intervu/intervu/pkg/models"
)

func TestMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		profile models.CandidateProfile
		want    []models.ProfileField
	}{
		{
			name:    "empty profile misses everything in fixed order",
			profile: models.CandidateProfile{},
			want:    []models.ProfileField{models.FieldName, models.FieldEmail, models.FieldPhone},
		},
		{
			name:    "partially filled",
			profile: models.CandidateProfile{Name: "Ana Silva"},
			want:    []models.ProfileField{models.FieldEmail, models.FieldPhone},
		},
		{
			name: "complete profile misses nothing",
			profile: models.CandidateProfile{
				Name:  "Ana Silva",
				Email: "ana@example.com",
				Phone: "555-123-4567",
			},
			want: []models.ProfileField{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MissingFields(tt.profile))
		})
	}
}

func TestEnrichFromMessageExtractsContactDetails(t *testing.T) {
	got := EnrichFromMessage("ana@x.com 555-123-4567", models.CandidateProfile{Name: "Ana"})

	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "ana@x.com", got.Email)
	assert.Equal(t, "555-123-4567", got.Phone)
	assert.Empty(t, MissingFields(got))
}

func TestEnrichFromMessageNeverOverwrites(t *testing.T) {
	known := models.CandidateProfile{
		Name:  "Ana Silva",
		Email: "ana@example.com",
		Phone: "555-123-4567",
	}

	got := EnrichFromMessage("bob@other.com 999-888-7777 Bob Jones", known)
	assert.Equal(t, known, got)

	// Idempotent on repeated application.
	assert.Equal(t, got, EnrichFromMessage("bob@other.com", got))
}

func TestEnrichFromMessageNameHeuristics(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"plain two-word name", "Ana Silva", "Ana Silva"},
		{"lowercased name gets title case", "ana silva", "Ana Silva"},
		{"single word accepted", "Madonna", "Madonna"},
		{"too many words rejected", "my full name is Ana Maria Silva", ""},
		{"short acknowledgement rejected", "ok", ""},
		{"greeting rejected", "hello", ""},
		{"thanks rejected", "thanks", ""},
		{"email-bearing text rejected", "ana@x.com", ""},
		{"phone-bearing text rejected", "555-123-4567", ""},
		{"punctuation stripped", "Ana Silva!", "Ana Silva"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnrichFromMessage(tt.message, models.CandidateProfile{})
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestDescribeMissing(t *testing.T) {
	tests := []struct {
		name   string
		fields []models.ProfileField
		want   string
	}{
		{"none", nil, ""},
		{"one", []models.ProfileField{models.FieldName}, "name"},
		{"two", []models.ProfileField{models.FieldEmail, models.FieldPhone}, "email address and phone number"},
		{
			"all three",
			[]models.ProfileField{models.FieldName, models.FieldEmail, models.FieldPhone},
			"name, email address and phone number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeMissing(tt.fields))
		})
	}
}
