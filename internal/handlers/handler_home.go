package handlers

import (
	"context"
	"net/http"
	"time"

	portsrepo "github.com/SscSPs/expense_tracker_api/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Greeting
// @Tags root
// @Produce plain
// @Success 200 {string} string "Hello Expense"
// @Router / [get]
func getHome(c *gin.Context) {
	c.String(http.StatusOK, "Hello Expense")
}

// getHealth godoc
// @Summary Liveness probe
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// readinessHandler reports whether the store answers a ping.
func readinessHandler(store portsrepo.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Readiness check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
