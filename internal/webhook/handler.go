// Package webhook exposes the dialogue engine over HTTP. It carries the
// chat API consumed by the embedded widget and maps engine errors to
// transport status codes.
package webhook

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jeeshotel/hotelbot/internal/ctxutil"
	"github.com/jeeshotel/hotelbot/internal/dialogue"
	domerrors "github.com/jeeshotel/hotelbot/internal/errors"
	"github.com/jeeshotel/hotelbot/internal/logger"
	"github.com/jeeshotel/hotelbot/internal/sentry"
)

// chatRequest is the POST /api payload.
type chatRequest struct {
	Action  string `json:"action" binding:"required"`
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// chatResponse is the reply payload. UserID echoes the caller's ID, or the
// freshly minted one when the caller had none yet.
type chatResponse struct {
	Reply     string `json:"response"`
	UserID    string `json:"user_id"`
	RequestID string `json:"request_id,omitempty"`
}

// Handler serves the chat API.
type Handler struct {
	responder *dialogue.Responder
	log       *logger.Logger
}

// NewHandler creates the chat API handler.
func NewHandler(responder *dialogue.Responder, log *logger.Logger) *Handler {
	return &Handler{
		responder: responder,
		log:       log.WithModule("webhook"),
	}
}

// Handle processes POST /api requests. The only supported action is
// "chat"; unknown actions get 400. First-contact requests without a
// user_id are assigned one, which the client persists for the session.
func (h *Handler) Handle(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Action != "chat" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported action"})
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = uuid.NewString()
	}

	ctx := ctxutil.WithUserID(c.Request.Context(), userID)
	requestID := ctxutil.GetRequestID(ctx)

	reply, err := h.responder.Respond(ctx, userID, req.Message)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, chatResponse{Reply: reply, UserID: userID, RequestID: requestID})

	case errors.Is(err, domerrors.ErrRateLimited):
		// The engine still produced the localized "slow down" reply.
		c.JSON(http.StatusTooManyRequests, chatResponse{Reply: reply, UserID: userID, RequestID: requestID})

	default:
		var verr *domerrors.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		sentry.CaptureExceptionWithContext(ctx, err)
		h.log.WithError(err).WithUserID(userID).Errorf("chat request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
