package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
	apperrors "github.com/yanqian/outfit-advisor/pkg/errors"
)

const (
	indexTemplate = "index.html"
	formKey       = "outfit.form"
)

// FormOptions lists the selectable values, taken from the loaded encoders.
type FormOptions struct {
	Moods   []string
	Genders []string
	Styles  []string
}

// NewFormOptions reads the mood, gender and style vocabularies.
func NewFormOptions(artifacts *outfit.Artifacts) FormOptions {
	enc := artifacts.Encoders()
	return FormOptions{
		Moods:   enc.Mood.Classes(),
		Genders: enc.Gender.Classes(),
		Styles:  enc.Style.Classes(),
	}
}

// Handler wires the HTTP transport to the outfit domain.
type Handler struct {
	svc     outfit.Service
	options FormOptions
	logger  *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc outfit.Service, options FormOptions, logger *slog.Logger) *Handler {
	return &Handler{
		svc:     svc,
		options: options,
		logger:  logger.With("component", "http.handler"),
	}
}

type pageData struct {
	Options FormOptions
	Form    outfit.Request
	Result  *outfit.Result
	History []outfit.HistoryRecord
	Error   string
}

// Home renders the empty form with recent recommendations.
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, h.page(c, outfit.Request{}))
}

// Recommend handles the form submission.
func (h *Handler) Recommend(c *gin.Context) {
	var req outfit.Request
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "Could not read the submitted form.", err))
		return
	}
	c.Set(formKey, req)

	res, err := h.svc.Recommend(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, domainError(err))
		return
	}

	data := h.page(c, req)
	data.Result = &res
	c.HTML(http.StatusOK, indexTemplate, data)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) page(c *gin.Context, form outfit.Request) pageData {
	history, err := h.svc.Recent(c.Request.Context())
	if err != nil {
		h.logger.Warn("failed to load recommendation history", "error", err)
	}
	return pageData{Options: h.options, Form: form, History: history}
}

// domainError maps outfit failures onto statuses and user facing messages.
func domainError(err error) *HTTPError {
	code := apperrors.CodeOf(err)
	switch code {
	case outfit.CodeMissingInput:
		return NewHTTPError(http.StatusBadRequest, code, apperrors.UserMessage(err), err)
	case outfit.CodeUnknownCategory:
		// the encoder detail is part of the user message
		return NewHTTPError(http.StatusBadRequest, code, err.Error(), err)
	case outfit.CodeWeatherUnavailable:
		return NewHTTPError(http.StatusBadGateway, code, apperrors.UserMessage(err), err)
	default:
		return asHTTPError(err)
	}
}
