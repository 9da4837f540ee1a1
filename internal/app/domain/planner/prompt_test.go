package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

func TestBuildTripPrompt(t *testing.T) {
	req := models.TripRequest{
		Destination: "Madurai",
		Duration:    3,
		Budget:      models.BudgetModerate,
		Travelers:   2,
		Language:    models.LanguageEnglish,
	}

	t.Run("embeds every field", func(t *testing.T) {
		prompt := BuildTripPrompt(req, "Tamil Nadu")

		assert.True(t, strings.HasPrefix(prompt, "You are an expert travel planner specializing in Tamil Nadu tourism."))
		assert.Contains(t, prompt, "Destination: Madurai, Tamil Nadu\n")
		assert.Contains(t, prompt, "Duration: 3 days\n")
		assert.Contains(t, prompt, "Budget: moderate\n")
		assert.Contains(t, prompt, "Number of Travelers: 2\n")
		for _, item := range []string{
			"1. A compelling trip title and overview",
			"2. Day-by-day itinerary",
			"3. Hotel recommendations",
			"4. Restaurant recommendations for authentic Tamil Nadu cuisine",
			"5. Travel tips and cultural insights",
			"6. Best time to visit each place",
			"7. Estimated costs breakdown",
		} {
			assert.Contains(t, prompt, item)
		}
		assert.Contains(t, prompt, "Format the response in a clear, structured way with headings and bullet points.")
	})

	t.Run("no interests line without interests", func(t *testing.T) {
		assert.NotContains(t, BuildTripPrompt(req, "Tamil Nadu"), "Interests:")

		withInterests := req
		withInterests.Interests = "temples, filter coffee"
		assert.Contains(t, BuildTripPrompt(withInterests, "Tamil Nadu"), "Interests: temples, filter coffee\n")
	})

	t.Run("language directive only for non-English", func(t *testing.T) {
		assert.NotContains(t, BuildTripPrompt(req, "Tamil Nadu"), "IMPORTANT")

		tamil := req
		tamil.Language = models.LanguageTamil
		prompt := BuildTripPrompt(tamil, "Tamil Nadu")
		assert.True(t, strings.HasSuffix(prompt,
			"IMPORTANT: Generate the ENTIRE response in Tamil language. "+
				"All text, headings, descriptions, and content must be written in Tamil."))
	})

	t.Run("empty region falls back to the default", func(t *testing.T) {
		assert.Contains(t, BuildTripPrompt(req, ""), "Destination: Madurai, Tamil Nadu")
	})
}

func TestBuildChatPrompt(t *testing.T) {
	assert.Equal(t,
		"You are a Tamil Nadu travel expert assistant. Answer the following question: Best beach near Chennai?",
		BuildChatPrompt("Best beach near Chennai?", ""))
}

func TestBuildParts(t *testing.T) {
	images := []models.Image{
		{Data: []byte{0x89, 'P', 'N', 'G'}, MIMEType: "image/png"},
		{Data: []byte{0xff, 0xd8}, MIMEType: "image/jpeg"},
	}
	parts := BuildParts("hello", images)

	require.Len(t, parts, 3)
	assert.Equal(t, "hello", parts[0].Text)
	assert.Nil(t, parts[0].InlineData)
	require.NotNil(t, parts[1].InlineData)
	assert.Equal(t, "image/png", parts[1].InlineData.MIMEType)
	assert.Equal(t, images[0].Data, parts[1].InlineData.Data)
	assert.Equal(t, "image/jpeg", parts[2].InlineData.MIMEType)

	assert.Len(t, BuildParts("only text", nil), 1)
}
