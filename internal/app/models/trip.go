package models

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Form bounds, same as the planner form inputs.
const (
	MinDuration  = 1
	MaxDuration  = 30
	MinTravelers = 1
	MaxTravelers = 20
)

type Budget string

const (
	BudgetBudget   Budget = "budget"
	BudgetModerate Budget = "moderate"
	BudgetLuxury   Budget = "luxury"
)

var Budgets = []Budget{BudgetBudget, BudgetModerate, BudgetLuxury}

var titleCaser = cases.Title(language.English)

// Label returns the budget as shown on buttons ("Moderate").
func (b Budget) Label() string {
	return titleCaser.String(string(b))
}

func ParseBudget(s string) (Budget, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return BudgetModerate, nil
	}
	for _, b := range Budgets {
		if string(b) == s {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported budget %q", ErrValidation, s)
}

// Language is the locale the itinerary is written in.
type Language string

const (
	LanguageEnglish   Language = "english"
	LanguageTamil     Language = "tamil"
	LanguageHindi     Language = "hindi"
	LanguageTelugu    Language = "telugu"
	LanguageKannada   Language = "kannada"
	LanguageMalayalam Language = "malayalam"
)

var Languages = []Language{
	LanguageEnglish,
	LanguageTamil,
	LanguageHindi,
	LanguageTelugu,
	LanguageKannada,
	LanguageMalayalam,
}

var languageTags = map[Language]language.Tag{
	LanguageEnglish:   language.English,
	LanguageTamil:     language.Tamil,
	LanguageHindi:     language.Hindi,
	LanguageTelugu:    language.Telugu,
	LanguageKannada:   language.Kannada,
	LanguageMalayalam: language.Malayalam,
}

var languageMatcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(Languages))
	for _, l := range Languages {
		tags = append(tags, languageTags[l])
	}
	return language.NewMatcher(tags)
}()

func (l Language) Tag() language.Tag {
	if tag, ok := languageTags[l]; ok {
		return tag
	}
	return language.English
}

// Name is the English name of the language, used inside prompts.
func (l Language) Name() string {
	return display.English.Tags().Name(l.Tag())
}

// NativeName is the language written in itself, used on the form.
func (l Language) NativeName() string {
	return display.Self.Name(l.Tag())
}

func ParseLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LanguageEnglish, nil
	}
	for _, l := range Languages {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported language %q", ErrValidation, s)
}

// MatchLanguage picks the supported language closest to an Accept-Language header.
func MatchLanguage(acceptLanguage string) Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return LanguageEnglish
	}
	_, idx, conf := languageMatcher.Match(tags...)
	if conf == language.No {
		return LanguageEnglish
	}
	return Languages[idx]
}

// Image is one reference picture attached to a request.
type Image struct {
	Data     []byte
	MIMEType string
}

// DataURL encodes the image for inline preview in chat bubbles.
func (i Image) DataURL() string {
	return "data:" + i.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// TripRequest is built per submission and never persisted.
type TripRequest struct {
	Destination string   `json:"destination"`
	Duration    int      `json:"duration"`
	Budget      Budget   `json:"budget"`
	Travelers   int      `json:"travelers"`
	Interests   string   `json:"interests,omitempty"`
	Language    Language `json:"language,omitempty"`
	Images      []Image  `json:"-"`
}

// Validate normalizes defaults in place and checks the form bounds.
func (r *TripRequest) Validate() error {
	r.Destination = strings.TrimSpace(r.Destination)
	r.Interests = strings.TrimSpace(r.Interests)
	if r.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrValidation)
	}
	if r.Duration < MinDuration || r.Duration > MaxDuration {
		return fmt.Errorf("%w: duration must be between %d and %d days", ErrValidation, MinDuration, MaxDuration)
	}
	if r.Travelers < MinTravelers || r.Travelers > MaxTravelers {
		return fmt.Errorf("%w: travelers must be between %d and %d", ErrValidation, MinTravelers, MaxTravelers)
	}
	budget, err := ParseBudget(string(r.Budget))
	if err != nil {
		return err
	}
	r.Budget = budget
	lang, err := ParseLanguage(string(r.Language))
	if err != nil {
		return err
	}
	r.Language = lang
	for i, img := range r.Images {
		if !strings.HasPrefix(img.MIMEType, "image/") {
			return fmt.Errorf("%w: attachment %d is not an image (%s)", ErrValidation, i+1, img.MIMEType)
		}
	}
	return nil
}

// SavedTrip pairs the request parameters with the generated itinerary.
type SavedTrip struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	Duration    int       `json:"duration"`
	Budget      Budget    `json:"budget"`
	Travelers   int       `json:"travelers"`
	Itinerary   string    `json:"itinerary"`
	CreatedAt   time.Time `json:"created_at"`
}

// Draft is a generated itinerary waiting for the user to save it. Only the
// planner that generated it may save it.
type Draft struct {
	ID        string      `json:"id"`
	Owner     string      `json:"-"`
	Request   TripRequest `json:"request"`
	Itinerary string      `json:"itinerary"`
	CreatedAt time.Time   `json:"created_at"`
}

// TripSummary is a saved trip enriched for the saved-list screen.
type TripSummary struct {
	SavedTrip
	Landmarks []string `json:"landmarks,omitempty"`
}
