package handler

import (
	"errors"
	"net/http"

	"spritepay-server/internal/apierrors"
	authhandler "spritepay-server/internal/auth/handler"
	"spritepay-server/internal/eligibility/processor"
	"spritepay-server/internal/fingerprint"
	"spritepay-server/internal/observability"
	"spritepay-server/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.EligibilityProcessor
	logger    *observability.Logger
}

func New(processor processor.EligibilityProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

// EvaluateRequest carries the device identity for an evaluation. Clients
// either send precomputed fingerprints or the raw signals to derive them
// from.
type EvaluateRequest struct {
	DeviceFingerprint string               `json:"device_fingerprint"`
	BrowserHash       string               `json:"browser_hash"`
	Signals           *fingerprint.Signals `json:"signals"`
}

func (h *Handler) HandleEvaluate(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := authhandler.UserIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "authorization token is missing or invalid")
		return
	}

	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		apierrors.BadRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	if req.DeviceFingerprint == "" && req.Signals != nil {
		req.DeviceFingerprint = fingerprint.Basic(*req.Signals)
		req.BrowserHash = fingerprint.Advanced(*req.Signals)
	}

	result, err := h.processor.Evaluate(ctx, processor.EvaluationInput{
		UserID:            userID,
		DeviceFingerprint: req.DeviceFingerprint,
		BrowserHash:       req.BrowserHash,
		IPAddress:         observability.GetRealClientIP(c),
		UserAgent:         observability.GetRealUserAgent(c),
	})
	if err != nil {
		if errors.Is(err, processor.ErrInvalidFingerprint) {
			apierrors.BadRequest(c, "INVALID_FINGERPRINT", err.Error())
			return
		}
		apierrors.ServiceUnavailable(c, "EVALUATION_UNAVAILABLE", "eligibility could not be determined, try again", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) HandleGetDecision(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := authhandler.UserIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "authorization token is missing or invalid")
		return
	}

	result, err := h.processor.GetDecision(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			apierrors.NotFound(c, "no eligibility decision recorded")
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
