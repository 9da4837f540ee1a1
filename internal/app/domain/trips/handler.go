package trips

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/handlers"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/middleware"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/pages"
)

var errNoPlanner = errors.New("planner identity missing from request")

// DraftSource looks up generated itineraries awaiting Save.
type DraftSource interface {
	Draft(ctx context.Context, id string) (models.Draft, error)
	DiscardDraft(ctx context.Context, id string)
}

type Handler struct {
	*handlers.BaseHandler
	service Service
	drafts  DraftSource
}

func NewHandler(base *handlers.BaseHandler, service Service, drafts DraftSource) *Handler {
	return &Handler{BaseHandler: base, service: service, drafts: drafts}
}

func owner(c *gin.Context) (string, error) {
	id := middleware.GetPlannerID(c)
	if id == "" {
		return "", errNoPlanner
	}
	return id, nil
}

func (h *Handler) ShowList(c *gin.Context) {
	plannerID, err := owner(c)
	if err != nil {
		h.RenderError(c, err, "Trips")
		return
	}
	trips, err := h.service.List(c.Request.Context(), plannerID)
	if err != nil {
		h.RenderError(c, err, "Trips")
		return
	}
	h.RenderPage(c, http.StatusOK, "Saved Trips", "Saved Trips", pages.SavedTripsPage(trips))
}

func (h *Handler) ShowTrip(c *gin.Context) {
	plannerID, err := owner(c)
	if err != nil {
		h.RenderError(c, err, "Trip")
		return
	}
	trip, err := h.service.Get(c.Request.Context(), plannerID, c.Param("id"))
	if err != nil {
		h.RenderError(c, err, "Trip")
		return
	}
	h.RenderPage(c, http.StatusOK, trip.Destination, "Saved Trips", pages.TripResult(pages.SavedResult(trip)))
}

// Save stores the draft named by the draft_id form field.
func (h *Handler) Save(c *gin.Context) {
	trip, err := h.saveDraft(c, c.PostForm("draft_id"))
	if err != nil {
		h.RenderError(c, err, "Draft")
		return
	}
	if handlers.IsFragmentRequest(c) {
		h.Render(c, http.StatusOK, pages.TripSavedActions(trip))
		return
	}
	c.Redirect(http.StatusSeeOther, "/trips/"+trip.ID)
}

// Delete removes a trip. HTMX callers get an empty body so the card swaps out;
// the plain form variant goes back to the list.
func (h *Handler) Delete(c *gin.Context) {
	plannerID, err := owner(c)
	if err != nil {
		h.RenderError(c, err, "Trip")
		return
	}
	if err := h.service.Delete(c.Request.Context(), plannerID, c.Param("id")); err != nil {
		h.RenderError(c, err, "Trip")
		return
	}
	if c.Request.Method == http.MethodDelete || handlers.IsFragmentRequest(c) {
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusSeeOther, "/trips")
}

func (h *Handler) ListAPI(c *gin.Context) {
	plannerID, err := owner(c)
	if err != nil {
		h.JSONError(c, err)
		return
	}
	trips, err := h.service.List(c.Request.Context(), plannerID)
	if err != nil {
		h.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

type saveRequest struct {
	DraftID string `json:"draft_id"`
}

func (h *Handler) SaveAPI(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.JSONError(c, fmt.Errorf("%w: invalid request body: %v", models.ErrValidation, err))
		return
	}
	trip, err := h.saveDraft(c, req.DraftID)
	if err != nil {
		h.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

func (h *Handler) DeleteAPI(c *gin.Context) {
	plannerID, err := owner(c)
	if err != nil {
		h.JSONError(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), plannerID, c.Param("id")); err != nil {
		h.JSONError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) saveDraft(c *gin.Context, draftID string) (models.SavedTrip, error) {
	plannerID, err := owner(c)
	if err != nil {
		return models.SavedTrip{}, err
	}
	ctx := c.Request.Context()
	draft, err := h.drafts.Draft(ctx, draftID)
	if err != nil {
		return models.SavedTrip{}, err
	}
	// another planner's draft looks the same as an expired one
	if draft.Owner != plannerID {
		return models.SavedTrip{}, fmt.Errorf("%w: draft %s", models.ErrNotFound, draftID)
	}
	trip, err := h.service.Save(ctx, plannerID, draft)
	if err != nil {
		return models.SavedTrip{}, err
	}
	h.drafts.DiscardDraft(ctx, draftID)
	return trip, nil
}
