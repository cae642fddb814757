package handler

import (
	"errors"
	"net/http"
	"strings"

	"spritepay-server/internal/apierrors"
	"spritepay-server/internal/auth/processor"
	"spritepay-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	adminEmail    string
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, adminEmail string, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, adminEmail: adminEmail, logger: logger}
}

type SignupRequest struct {
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Password          string `json:"password" binding:"required,min=8"`
	ReferralCode      string `json:"referral_code"`
	DeviceFingerprint string `json:"device_fingerprint"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *Handler) HandleSignup(c *gin.Context) {
	var req SignupRequest
	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		apierrors.BadRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	signedUpUser, err := h.authProcessor.Signup(ctx, req.Name, req.Email, req.Password, req.ReferralCode, req.DeviceFingerprint)
	if err != nil {
		if errors.Is(err, processor.ErrEmailAlreadyExists) {
			apierrors.Conflict(c, "EMAIL_TAKEN", "email already registered")
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, signedUpUser)
}

func (h *Handler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind request", err)
		apierrors.BadRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	token, err := h.authProcessor.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, processor.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, "invalid email or password")
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// HandleJWTMiddleware authenticates the request and stores the user ID in the
// gin context under "User-ID"
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "authorization token is missing or invalid")
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.Unauthorized(c, "authorization token is missing or invalid")
		c.Abort()
		return
	}
	sub, err := claims.GetSubject()
	if err != nil {
		apierrors.Unauthorized(c, "authorization token is missing or invalid")
		c.Abort()
		return
	}
	c.Set("User-ID", sub)
	c.Next()
}

// HandleAdminMiddleware allows only operator accounts through. It runs after
// the JWT middleware.
func (h *Handler) HandleAdminMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := UserIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "authorization token is missing or invalid")
		c.Abort()
		return
	}

	isAdmin, err := h.authProcessor.IsAdmin(ctx, userID, h.adminEmail)
	if err != nil {
		apierrors.InternalError(c, err)
		c.Abort()
		return
	}
	if !isAdmin {
		apierrors.Forbidden(c, "NOT_ADMIN", "operator access required")
		c.Abort()
		return
	}
	c.Next()
}

func (h *Handler) GetUserInfo(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := UserIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "authorization token is missing or invalid")
		return
	}

	user, err := h.authProcessor.GetUser(ctx, userID)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UserIDFromContext extracts the authenticated user ID set by the JWT
// middleware
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get("User-ID")
	if !ok {
		return uuid.Nil, false
	}
	raw, ok := value.(string)
	if !ok {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}
