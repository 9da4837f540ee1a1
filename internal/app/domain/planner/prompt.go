package planner

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

// DefaultRegion is the state every itinerary is anchored to.
const DefaultRegion = "Tamil Nadu"

// BuildTripPrompt writes the itinerary instruction for req. The interests line
// appears only when interests were given, and the language directive only for
// a non-English language.
func BuildTripPrompt(req models.TripRequest, region string) string {
	if region == "" {
		region = DefaultRegion
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert travel planner specializing in %s tourism. Generate a detailed trip itinerary for:\n\n", region)
	fmt.Fprintf(&b, "Destination: %s, %s\n", req.Destination, region)
	fmt.Fprintf(&b, "Duration: %d days\n", req.Duration)
	fmt.Fprintf(&b, "Budget: %s\n", req.Budget)
	fmt.Fprintf(&b, "Number of Travelers: %d\n", req.Travelers)
	if interests := strings.TrimSpace(req.Interests); interests != "" {
		fmt.Fprintf(&b, "Interests: %s\n", interests)
	}

	b.WriteString("\nPlease provide:\n")
	b.WriteString("1. A compelling trip title and overview\n")
	b.WriteString("2. Day-by-day itinerary with specific places to visit, activities, and timings\n")
	b.WriteString("3. Hotel recommendations with brief descriptions\n")
	fmt.Fprintf(&b, "4. Restaurant recommendations for authentic %s cuisine\n", region)
	b.WriteString("5. Travel tips and cultural insights\n")
	b.WriteString("6. Best time to visit each place\n")
	b.WriteString("7. Estimated costs breakdown\n\n")

	fmt.Fprintf(&b, "Format the response in a clear, structured way with headings and bullet points. "+
		"Focus on showcasing %s's rich culture, temples, beaches, hill stations, and heritage sites.", region)

	if req.Language != "" && req.Language != models.LanguageEnglish {
		name := req.Language.Name()
		fmt.Fprintf(&b, "\n\nIMPORTANT: Generate the ENTIRE response in %s language. "+
			"All text, headings, descriptions, and content must be written in %s.", name, name)
	}
	return b.String()
}

// BuildChatPrompt prefixes a free-form question with the assistant persona.
func BuildChatPrompt(message, region string) string {
	if region == "" {
		region = DefaultRegion
	}
	return fmt.Sprintf("You are a %s travel expert assistant. Answer the following question: %s", region, message)
}

// BuildParts returns the text part followed by one inline-data part per image,
// in the order supplied.
func BuildParts(prompt string, images []models.Image) []*genai.Part {
	parts := make([]*genai.Part, 0, 1+len(images))
	parts = append(parts, genai.NewPartFromText(prompt))
	for _, img := range images {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIMEType))
	}
	return parts
}
