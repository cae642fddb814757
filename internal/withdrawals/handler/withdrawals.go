package handler

import (
	"errors"
	"net/http"

	"spritepay-server/internal/apierrors"
	authhandler "spritepay-server/internal/auth/handler"
	"spritepay-server/internal/observability"
	"spritepay-server/internal/store"
	"spritepay-server/internal/validation"
	"spritepay-server/internal/withdrawals/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.WithdrawalProcessor
	logger    *observability.Logger
}

func New(processor processor.WithdrawalProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

// SubmitRequest carries a payout request
type SubmitRequest struct {
	Amount int    `json:"amount" binding:"required"`
	PixKey string `json:"pix_key" binding:"required"`
}

func (h *Handler) HandleSubmit(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := authhandler.UserIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "authorization token is missing or invalid")
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		apierrors.BadRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	request, err := h.processor.Submit(ctx, userID, req.Amount, req.PixKey)
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrInvalidPaymentKey):
			apierrors.BadRequest(c, "INVALID_PIX_KEY", err.Error())
		case errors.Is(err, validation.ErrAmountNotPositive),
			errors.Is(err, validation.ErrInsufficientPoints):
			apierrors.BadRequest(c, "INVALID_AMOUNT", err.Error())
		case errors.Is(err, processor.ErrRateLimited):
			apierrors.TooManyRequests(c, "too many withdrawal attempts, try again later")
		default:
			apierrors.InternalError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, request)
}

func (h *Handler) HandleList(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := authhandler.UserIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "authorization token is missing or invalid")
		return
	}

	requests, err := h.processor.List(ctx, userID)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	if requests == nil {
		requests = []store.WithdrawRequest{}
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (h *Handler) HandleGet(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := authhandler.UserIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "authorization token is missing or invalid")
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_REQUEST_ID", "request id must be a UUID")
		return
	}

	request, err := h.processor.Get(ctx, userID, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			apierrors.NotFound(c, "withdrawal request not found")
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// HandleTransactions lists the caller's credit-ledger history
func (h *Handler) HandleTransactions(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := authhandler.UserIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "authorization token is missing or invalid")
		return
	}

	transactions, err := h.processor.Transactions(ctx, userID)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	if transactions == nil {
		transactions = []store.Transaction{}
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// HandleApprove is admin-only, guarded by the admin middleware on the route
func (h *Handler) HandleApprove(c *gin.Context) {
	ctx := c.Request.Context()

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_REQUEST_ID", "request id must be a UUID")
		return
	}

	result, err := h.processor.Approve(ctx, requestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			apierrors.NotFound(c, "withdrawal request not found or already processed")
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
