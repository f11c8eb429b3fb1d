package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/widget"
)

// WidgetHandler exposes the widget state to the page.
type WidgetHandler struct {
	widget   *widget.Widget
	validate *validator.Validate
}

// NewWidgetHandler creates a new WidgetHandler.
func NewWidgetHandler(w *widget.Widget) *WidgetHandler {
	return &WidgetHandler{widget: w, validate: validator.New()}
}

// HandleState handles GET /api/v1/widget requests.
func (h *WidgetHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.response(h.widget.State()))
}

// HandleRegenerate handles POST /api/v1/widget/generate requests.
func (h *WidgetHandler) HandleRegenerate(w http.ResponseWriter, r *http.Request) {
	state, err := h.widget.Regenerate()
	h.reply(w, state, err)
}

// HandleSetLength handles PUT /api/v1/widget/length requests.
func (h *WidgetHandler) HandleSetLength(w http.ResponseWriter, r *http.Request) {
	var req model.LengthRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "length is required", Code: "invalid_length"})
		return
	}

	state, err := h.widget.SetLength(*req.Length)
	h.reply(w, state, err)
}

// HandleToggleClass handles POST /api/v1/widget/classes/{class}/toggle requests.
func (h *WidgetHandler) HandleToggleClass(w http.ResponseWriter, r *http.Request) {
	class, err := crypto.ParseClass(chi.URLParam(r, "class"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		return
	}

	state, err := h.widget.ToggleClass(class)
	h.reply(w, state, err)
}

// HandleCopy handles POST /api/v1/widget/copy requests.
func (h *WidgetHandler) HandleCopy(w http.ResponseWriter, r *http.Request) {
	state, err := h.widget.Copy()
	h.reply(w, state, err)
}

func (h *WidgetHandler) reply(w http.ResponseWriter, state widget.State, err error) {
	if err != nil {
		if errors.Is(err, widget.ErrClosed) {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse(err.Error()))
			return
		}
		if !errors.Is(err, crypto.ErrNoClassSelected) && !errors.Is(err, crypto.ErrInvalidLength) {
			slog.Error("widget update failed", "error", err)
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.response(state))
}

func (h *WidgetHandler) response(s widget.State) model.WidgetResponse {
	segments := crypto.Meter(s.Strength)
	return model.WidgetResponse{
		Password:  s.Password,
		Length:    s.Length,
		MinLength: 0,
		MaxLength: h.widget.MaxLength(),
		Selection: s.Selection,
		Strength: model.StrengthResponse{
			Score:    s.Strength,
			Rating:   s.Rating,
			Color:    s.Rating.Color(),
			Segments: segments[:],
		},
		Copied:   s.Copied,
		Revision: s.Revision,
	}
}
