package handler

import (
	"github.com/akshaymhatre/receiptly-api/internal/application/service"
	"github.com/akshaymhatre/receiptly-api/internal/presentation/http/dto/request"
	"github.com/akshaymhatre/receiptly-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FormHandler handles form-session HTTP requests. Each session holds one
// receipt draft and its suggestion-dropdown state server-side.
type FormHandler struct {
	formService *service.FormService
}

// NewFormHandler creates a new form handler
func NewFormHandler(formService *service.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// Create starts a new form session
func (h *FormHandler) Create(c *gin.Context) {
	state := h.formService.Create(c.Request.Context())
	response.Created(c, "Form session created", state)
}

// Get returns the current state of a form session
func (h *FormHandler) Get(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	state, err := h.formService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Form session retrieved", state)
}

// SetField updates one draft field and returns the refreshed state
func (h *FormHandler) SetField(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req request.SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	state, err := h.formService.SetField(c.Request.Context(), id, req.Field, req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Field updated", state)
}

// Focus re-shows prior suggestions when the name field regains focus
func (h *FormHandler) Focus(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	state, err := h.formService.Focus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Suggestions shown", state)
}

// Dismiss hides the dropdown after an outside interaction
func (h *FormHandler) Dismiss(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	state, err := h.formService.Dismiss(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Suggestions dismissed", state)
}

// Choose adopts a suggestion as the customer name
func (h *FormHandler) Choose(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req request.ChooseSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	state, err := h.formService.Choose(c.Request.Context(), id, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Suggestion chosen", state)
}

// Submit validates the draft and returns the WhatsApp deep link
func (h *FormHandler) Submit(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	link, err := h.formService.Submit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt link generated", link)
}

func (h *FormHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}
