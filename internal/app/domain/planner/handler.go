package planner

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/domain/landmarks"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/domain/markdown"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/handlers"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/middleware"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/pages"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/pkg/upload"
)

// chatApology replaces the answer when the assistant call fails.
const chatApology = "Sorry, I encountered an error. Please try again in a moment."

// formOverhead is the room left for text fields in a multipart body.
const formOverhead = 1 << 20

type Handler struct {
	*handlers.BaseHandler
	service Service
	limits  upload.Limits
}

func NewHandler(base *handlers.BaseHandler, service Service, limits upload.Limits) *Handler {
	return &Handler{BaseHandler: base, service: service, limits: limits}
}

func (h *Handler) ShowForm(c *gin.Context) {
	values := models.TripRequest{
		Destination: c.Query("destination"),
		Language:    models.MatchLanguage(c.GetHeader("Accept-Language")),
	}
	h.RenderPage(c, http.StatusOK, "Plan a Trip", "New Trip", pages.TripFormPage(pages.TripFormData{
		Catalog:   landmarks.Catalog,
		Values:    values,
		MaxImages: h.limits.MaxImages,
	}))
}

// Generate handles the form submission and renders the draft itinerary.
func (h *Handler) Generate(c *gin.Context) {
	req, err := h.bindTripForm(c)
	if err != nil {
		h.RenderError(c, err, "Trip")
		return
	}

	draft, err := h.service.GenerateTrip(c.Request.Context(), middleware.GetPlannerID(c), req)
	if err != nil {
		h.RenderError(c, err, "Trip")
		return
	}

	h.RenderPage(c, http.StatusOK, draft.Request.Destination, "New Trip", pages.TripResult(pages.DraftResult(draft)))
}

type generateResponse struct {
	DraftID   string `json:"draft_id"`
	Itinerary string `json:"itinerary"`
	HTML      string `json:"html"`
}

func (h *Handler) GenerateAPI(c *gin.Context) {
	var req models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.JSONError(c, fmt.Errorf("%w: invalid request body: %v", models.ErrValidation, err))
		return
	}

	draft, err := h.service.GenerateTrip(c.Request.Context(), middleware.GetPlannerID(c), req)
	if err != nil {
		h.JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, generateResponse{
		DraftID:   draft.ID,
		Itinerary: draft.Itinerary,
		HTML:      markdown.Render(draft.Itinerary),
	})
}

func (h *Handler) ShowChat(c *gin.Context) {
	greeting := []models.ChatMessage{{Role: models.RoleAssistant, Content: models.ChatGreeting}}
	h.RenderPage(c, http.StatusOK, "Travel Assistant", "Chat", pages.ChatPage(greeting, h.limits.MaxImages))
}

// SendMessage answers one chat question with the question and answer bubbles.
func (h *Handler) SendMessage(c *gin.Context) {
	images, err := h.readImages(c)
	if err != nil {
		h.RenderError(c, err, "Message")
		return
	}
	message := strings.TrimSpace(c.PostForm("message"))

	question := models.ChatMessage{Role: models.RoleUser, Content: message}
	for _, img := range images {
		question.Images = append(question.Images, img.DataURL())
	}

	answer, err := h.service.Chat(c.Request.Context(), message, images)
	if err != nil {
		status := handlers.StatusFor(err)
		if status == http.StatusBadRequest {
			h.RenderError(c, err, "Message")
			return
		}
		h.Logger.Error("Chat failed", zap.String("kind", models.ErrorKind(err)), zap.Error(err))
		h.Render(c, status, pages.ChatExchange(question, models.ChatMessage{Role: models.RoleAssistant, Content: chatApology}))
		return
	}

	h.Render(c, http.StatusOK, pages.ChatExchange(question, models.ChatMessage{Role: models.RoleAssistant, Content: answer}))
}

func (h *Handler) bindTripForm(c *gin.Context) (models.TripRequest, error) {
	images, err := h.readImages(c)
	if err != nil {
		return models.TripRequest{}, err
	}

	duration, err := formInt(c, "duration")
	if err != nil {
		return models.TripRequest{}, err
	}
	travelers, err := formInt(c, "travelers")
	if err != nil {
		return models.TripRequest{}, err
	}

	return models.TripRequest{
		Destination: c.PostForm("destination"),
		Duration:    duration,
		Budget:      models.Budget(c.PostForm("budget")),
		Travelers:   travelers,
		Interests:   c.PostForm("interests"),
		Language:    models.Language(c.PostForm("language")),
		Images:      images,
	}, nil
}

// readImages returns nothing for url-encoded submissions.
func (h *Handler) readImages(c *gin.Context) ([]models.Image, error) {
	if c.ContentType() != "multipart/form-data" {
		return nil, nil
	}
	maxBody := int64(h.limits.MaxImages)*h.limits.MaxBytes + formOverhead
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBody)

	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("%w: could not read upload: %v", models.ErrValidation, err)
	}
	return upload.ReadImages(form, h.limits)
}

func formInt(c *gin.Context, field string) (int, error) {
	raw := strings.TrimSpace(c.PostForm(field))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a whole number", models.ErrValidation, field)
	}
	return n, nil
}
