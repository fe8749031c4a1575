package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fantera.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	kycHandler     *handlers.KYCHandler
	webhookHandler *handlers.WebhookHandler
	clubHandler    *handlers.ClubHandler
	priceHandler   *handlers.PriceHandler
	cronHandler    *handlers.CronHandler
	healthHandler  *handlers.HealthHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	r.GET("/health", d.healthHandler.Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// Identity routes. The webhook is signature-authenticated, not
		// token-authenticated.
		auth := api.Group("/auth")
		{
			auth.POST("/webhook", d.webhookHandler.HandleWebhook)
			auth.POST("/kyc", d.authMiddleware, d.kycHandler.Submit)
			auth.GET("/kyc", d.authMiddleware, d.kycHandler.Status)
		}

		// Catalogue routes (protected)
		clubs := api.Group("/clubs")
		clubs.Use(d.authMiddleware)
		{
			clubs.GET("", d.clubHandler.List)
			clubs.GET("/:clubId", d.clubHandler.GetByID)
		}

		prices := api.Group("/prices")
		prices.Use(d.authMiddleware)
		{
			prices.GET("", d.priceHandler.List)
		}

		// System routes (shared-secret auth)
		cron := api.Group("/cron")
		{
			cron.GET("/prices", d.cronHandler.SyncPrices)
		}
	}
}

// applyCORSMiddleware reflects the request origin and short-circuits
// preflight requests.
func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
