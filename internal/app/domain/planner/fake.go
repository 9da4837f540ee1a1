package planner

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"google.golang.org/genai"
)

var _ Generator = FakeGenerator{}

var (
	fakeDestinationRe = regexp.MustCompile(`(?m)^Destination: ([^,\n]+)`)
	fakeDurationRe    = regexp.MustCompile(`(?m)^Duration: (\d+) days`)
)

// FakeGenerator answers without a network call. It backs PLANNER_FAKE_AI for
// local work and demos.
type FakeGenerator struct{}

func (FakeGenerator) GenerateContent(ctx context.Context, parts []*genai.Part) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var prompt string
	if len(parts) > 0 && parts[0] != nil {
		prompt = parts[0].Text
	}

	dest := "Chennai"
	if m := fakeDestinationRe.FindStringSubmatch(prompt); m != nil {
		dest = strings.TrimSpace(m[1])
	}
	m := fakeDurationRe.FindStringSubmatch(prompt)
	if m == nil {
		return fmt.Sprintf("**%s** is a great choice. Visit early in the morning to avoid the heat, "+
			"and try a *filter coffee* on the way.", dest), nil
	}

	days, err := strconv.Atoi(m[1])
	if err != nil || days < 1 {
		days = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %d Days in %s\n\n", days, dest)
	fmt.Fprintf(&b, "A relaxed plan around **%s** with temples, food and local markets.\n\n", dest)
	for day := 1; day <= days && day <= 3; day++ {
		fmt.Fprintf(&b, "## Day %d\n", day)
		b.WriteString("- Morning: heritage walk and breakfast at a local mess\n")
		b.WriteString("- Afternoon: museum or temple visit\n")
		b.WriteString("- Evening: street food and a sunset viewpoint\n\n")
	}
	if len(parts) > 1 {
		fmt.Fprintf(&b, "Reference images received: %d\n\n", len(parts)-1)
	}
	b.WriteString("## Estimated Costs\n")
	b.WriteString("1. Stay: INR 2,500 per night\n")
	b.WriteString("2. Food: INR 800 per day\n")
	return b.String(), nil
}
