package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/silambarasu-a/portfolio-backend/internal/core"
	"github.com/silambarasu-a/portfolio-backend/internal/monitoring"
)

// User-facing response messages. Validation details are safe to echo; every
// other failure stays generic.
const (
	msgThankYou       = "Thank you for your message! I will get back to you soon."
	msgGenericFailure = "Something went wrong. Please try again later."
	msgInvalidBody    = "Invalid request body"
)

// ContactSubmitter is the slice of the contact service the handler needs
type ContactSubmitter interface {
	Submit(ctx context.Context, input core.SubmissionInput) (*core.SubmissionResult, error)
}

// ContactHandler handles the public contact-form endpoint
type ContactHandler struct {
	service ContactSubmitter
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// NewContactHandler creates a ContactHandler
func NewContactHandler(service ContactSubmitter, metrics *monitoring.Metrics, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		metrics: metrics,
		logger:  logger,
	}
}

// submitRequest is the expected JSON body for POST /api/contact
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// submitResponse is the JSON envelope for all contact responses
type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.SubmissionsTotal.WithLabelValues(monitoring.OutcomeRejected).Inc()

		// A chunked body has no Content-Length for the middleware to
		// reject up front, so the size cap surfaces here instead.
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, submitResponse{
				Error: fmt.Sprintf("Request body exceeds maximum size of %d bytes", maxErr.Limit),
			})
			return
		}

		c.JSON(http.StatusBadRequest, submitResponse{Error: msgInvalidBody})
		return
	}

	result, err := h.service.Submit(c.Request.Context(), core.SubmissionInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.metrics.SubmissionsTotal.WithLabelValues(monitoring.OutcomeAccepted).Inc()
	if result.Notified {
		h.metrics.NotificationsTotal.WithLabelValues(monitoring.NotifySent).Inc()
	} else {
		h.metrics.NotificationsTotal.WithLabelValues(monitoring.NotifyFailed).Inc()
	}

	c.JSON(http.StatusCreated, submitResponse{
		Success: true,
		Message: msgThankYou,
	})
}

// respondError maps pipeline errors onto the HTTP contract: validation and
// store-constraint failures are client errors with their messages; everything
// else is a generic server error.
func (h *ContactHandler) respondError(c *gin.Context, err error) {
	var verr *core.ValidationError
	var perr *core.PersistenceError

	switch {
	case errors.As(err, &verr):
		h.metrics.SubmissionsTotal.WithLabelValues(monitoring.OutcomeRejected).Inc()
		c.JSON(http.StatusBadRequest, submitResponse{Error: verr.Error()})

	case errors.As(err, &perr) && perr.IsConstraint():
		h.metrics.SubmissionsTotal.WithLabelValues(monitoring.OutcomeRejected).Inc()
		c.JSON(http.StatusBadRequest, submitResponse{Error: strings.Join(perr.Violations, ", ")})

	default:
		h.metrics.SubmissionsTotal.WithLabelValues(monitoring.OutcomeFailed).Inc()
		h.logger.Error("Contact submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, submitResponse{Error: msgGenericFailure})
	}
}
