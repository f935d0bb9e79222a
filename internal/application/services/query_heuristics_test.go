package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Omarelsegeiny/Doctor-Search-App-1Phi/backend/internal/domain/entities"
)

func TestIsLikelyGibberish(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"ab", true},
		{"12345", true},
		{"123 456 789", true},
		{"!!!@@@###", true},
		{"1234567890abc", true},
		{"12345678ab", true},
		{"abc", false},
		{"cardiology", false},
		{"doctor", false},
		{"doctor in chicago", false},
		{"asdfghjkl", false},
		{"café", false},
		{"  ab  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLikelyGibberish(tt.query))
		})
	}
}

func TestHasMeaningfulInfo(t *testing.T) {
	tests := []struct {
		name   string
		parsed entities.ParsedQuery
		want   bool
	}{
		{"empty", entities.ParsedQuery{Procedures: []string{}}, false},
		{"keyword only", entities.ParsedQuery{Location: entities.Location{Keyword: "near"}}, false},
		{"specialty", entities.ParsedQuery{Specialty: "Cardiology"}, true},
		{"city", entities.ParsedQuery{Location: entities.Location{City: "Chicago"}}, true},
		{"state", entities.ParsedQuery{Location: entities.Location{State: "IL"}}, true},
		{"procedure", entities.ParsedQuery{Procedures: []string{"mri"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasMeaningfulInfo(tt.parsed))
		})
	}
}

func TestNeedsFallback(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"I need a cardiologist in Chicago", false},
		{"doctor in Illinois", false},
		{"asdfghjkl", true},
		{"12345", true},
		{"ab", true},
		{"please help me", true},
		{"near", true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedsFallback(tt.query, ParseQuery(tt.query)))
		})
	}
}
