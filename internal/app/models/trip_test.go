package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripRequestValidate(t *testing.T) {
	valid := func() TripRequest {
		return TripRequest{Destination: " Madurai ", Duration: 3, Travelers: 2}
	}

	t.Run("fills defaults and trims", func(t *testing.T) {
		req := valid()
		require.NoError(t, req.Validate())
		assert.Equal(t, "Madurai", req.Destination)
		assert.Equal(t, BudgetModerate, req.Budget)
		assert.Equal(t, LanguageEnglish, req.Language)
	})

	tests := []struct {
		name   string
		mutate func(*TripRequest)
	}{
		{"empty destination", func(r *TripRequest) { r.Destination = "   " }},
		{"zero duration", func(r *TripRequest) { r.Duration = 0 }},
		{"duration above form bound", func(r *TripRequest) { r.Duration = 31 }},
		{"zero travelers", func(r *TripRequest) { r.Travelers = 0 }},
		{"too many travelers", func(r *TripRequest) { r.Travelers = 21 }},
		{"unknown budget", func(r *TripRequest) { r.Budget = "backpacker" }},
		{"unknown language", func(r *TripRequest) { r.Language = "klingon" }},
		{"non image attachment", func(r *TripRequest) {
			r.Images = []Image{{Data: []byte("%PDF"), MIMEType: "application/pdf"}}
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := valid()
			tc.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			assert.Equal(t, "validation", ErrorKind(err))
		})
	}
}

func TestBudgetLabel(t *testing.T) {
	assert.Equal(t, "Moderate", BudgetModerate.Label())
	assert.Equal(t, "Luxury", BudgetLuxury.Label())
}

func TestLanguageNames(t *testing.T) {
	assert.Equal(t, "Tamil", LanguageTamil.Name())
	assert.Equal(t, "English", LanguageEnglish.Name())
	assert.Equal(t, "Malayalam", LanguageMalayalam.Name())
	assert.NotEmpty(t, LanguageHindi.NativeName())
}

func TestMatchLanguage(t *testing.T) {
	assert.Equal(t, LanguageTamil, MatchLanguage("ta-IN,ta;q=0.9,en;q=0.8"))
	assert.Equal(t, LanguageEnglish, MatchLanguage("en-US,en;q=0.9"))
	assert.Equal(t, LanguageEnglish, MatchLanguage(""))
}

func TestImageDataURL(t *testing.T) {
	img := Image{Data: []byte("abc"), MIMEType: "image/png"}
	assert.Equal(t, "data:image/png;base64,YWJj", img.DataURL())
}
