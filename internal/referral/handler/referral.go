package handler

import (
	"errors"
	"net/http"

	"spritepay-server/internal/apierrors"
	authhandler "spritepay-server/internal/auth/handler"
	"spritepay-server/internal/observability"
	"spritepay-server/internal/referral/processor"
	"spritepay-server/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.ReferralProcessor
	logger    *observability.Logger
}

func New(processor processor.ReferralProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

// HandleGetCode returns the caller's invite code and shareable link, minting
// a code on first request.
func (h *Handler) HandleGetCode(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := authhandler.UserIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "authorization token is missing or invalid")
		return
	}

	code, err := h.processor.GenerateCode(ctx, userID)
	if err != nil {
		if errors.Is(err, processor.ErrCodeGeneration) {
			apierrors.ServiceUnavailable(c, "CODE_GENERATION_FAILED", "could not mint a referral code, try again", err)
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":          code.Code,
		"referral_link": h.processor.Link(code.Code),
	})
}

// HandleGetStats returns the caller's referral aggregates and reward history
func (h *Handler) HandleGetStats(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := authhandler.UserIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "authorization token is missing or invalid")
		return
	}

	stats, err := h.processor.GetStats(ctx, userID)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// CaptureRequest carries the landing URL that may contain a referral code
type CaptureRequest struct {
	DeviceFingerprint string `json:"device_fingerprint" binding:"required"`
	LandingURL        string `json:"landing_url" binding:"required"`
}

// HandleCapture stashes a referral code from a landing URL against the
// visiting device. Unauthenticated: capture happens before signup.
func (h *Handler) HandleCapture(c *gin.Context) {
	ctx := c.Request.Context()

	var req CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		apierrors.BadRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	code, err := h.processor.CaptureFromURL(ctx, req.DeviceFingerprint, req.LandingURL)
	if err != nil {
		apierrors.ServiceUnavailable(c, "CAPTURE_UNAVAILABLE", "referral code could not be stored, try again", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"captured": code != ""})
}

// ProcessPendingRequest identifies the device whose stashed code to process
type ProcessPendingRequest struct {
	DeviceFingerprint string `json:"device_fingerprint" binding:"required"`
}

// HandleProcessPending resolves the device's stashed referral code into a
// referral relationship for the authenticated caller.
func (h *Handler) HandleProcessPending(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := authhandler.UserIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "authorization token is missing or invalid")
		return
	}

	var req ProcessPendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		apierrors.BadRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.processor.ProcessPending(ctx, userID, req.DeviceFingerprint)
	if err != nil {
		apierrors.ServiceUnavailable(c, "REFERRAL_UNAVAILABLE", "referral could not be processed, try again", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetNotifications lists the caller's most recent notifications
func (h *Handler) HandleGetNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := authhandler.UserIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "authorization token is missing or invalid")
		return
	}

	notifications, err := h.processor.GetNotifications(ctx, userID)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	if notifications == nil {
		notifications = []store.Notification{}
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// HandleGetRewards lists the caller's reward rows
func (h *Handler) HandleGetRewards(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := authhandler.UserIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "authorization token is missing or invalid")
		return
	}

	stats, err := h.processor.GetStats(ctx, userID)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	if stats.Rewards == nil {
		stats.Rewards = []store.ReferralReward{}
	}

	c.JSON(http.StatusOK, gin.H{"rewards": stats.Rewards})
}
