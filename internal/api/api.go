package api

import (
	"net/http"

	authHandler "spritepay-server/internal/auth/handler"
	eligibilityHandler "spritepay-server/internal/eligibility/handler"
	referralHandler "spritepay-server/internal/referral/handler"
	withdrawalHandler "spritepay-server/internal/withdrawals/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router             *gin.RouterGroup
	authHandler        authHandler.Handler
	eligibilityHandler eligibilityHandler.Handler
	referralHandler    referralHandler.Handler
	withdrawalHandler  withdrawalHandler.Handler
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	eligibilityHandler eligibilityHandler.Handler,
	referralHandler referralHandler.Handler,
	withdrawalHandler withdrawalHandler.Handler,
) API {
	return API{
		router:             router,
		authHandler:        authHandler,
		eligibilityHandler: eligibilityHandler,
		referralHandler:    referralHandler,
		withdrawalHandler:  withdrawalHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/signup", a.authHandler.HandleSignup)
		authGroup.POST("/login", a.authHandler.HandleLogin)

		// referral capture runs before the visitor has an account
		apiGroup.POST("/referrals/capture", a.referralHandler.HandleCapture)
	}
	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware)
	{
		protectedGroup.GET("/user", a.authHandler.GetUserInfo)

		protectedGroup.POST("/eligibility/evaluate", a.eligibilityHandler.HandleEvaluate)
		protectedGroup.GET("/eligibility/decision", a.eligibilityHandler.HandleGetDecision)

		protectedGroup.GET("/referrals/code", a.referralHandler.HandleGetCode)
		protectedGroup.GET("/referrals/stats", a.referralHandler.HandleGetStats)
		protectedGroup.GET("/referrals/rewards", a.referralHandler.HandleGetRewards)
		protectedGroup.POST("/referrals/process-pending", a.referralHandler.HandleProcessPending)

		protectedGroup.GET("/notifications", a.referralHandler.HandleGetNotifications)

		protectedGroup.POST("/withdrawals", a.withdrawalHandler.HandleSubmit)
		protectedGroup.GET("/withdrawals", a.withdrawalHandler.HandleList)
		protectedGroup.GET("/withdrawals/:id", a.withdrawalHandler.HandleGet)
		protectedGroup.GET("/transactions", a.withdrawalHandler.HandleTransactions)
	}
	adminGroup := apiGroup.Group("/admin", a.authHandler.HandleJWTMiddleware, a.authHandler.HandleAdminMiddleware)
	{
		adminGroup.POST("/withdrawals/:id/approve", a.withdrawalHandler.HandleApprove)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
