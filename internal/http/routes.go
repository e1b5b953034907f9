package http

import (
	"os"
	"strconv"
	"time"

	"ferapp_backend/internal/config"
	"ferapp_backend/internal/http/handlers"
	"ferapp_backend/internal/http/middleware"
	"ferapp_backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, hub *ws.Hub, rdb *redis.Client, cfg *config.Config, version string) {
	healthHandler := handlers.NewHealthHandler(h.DB, rdb, version)

	// read limits from env, with safe defaults
	apiRateLimit := 60
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateLimit = n
		}
	}
	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	authRateLimit := 5
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			authRateLimit = n
		}
	}
	authRateWindow := time.Minute
	if v := os.Getenv("AUTH_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			authRateWindow = time.Duration(n) * time.Second
		}
	}

	// Per-IP limiter: Redis-backed when configured, in-process otherwise.
	apiRL := middleware.RedisRateLimit(apiRateLimit, apiRateWindow)
	authRL := middleware.RedisRateLimit(authRateLimit, authRateWindow)
	if cfg.RedisAddr == "" {
		apiRL = middleware.SimpleRateLimit(apiRateLimit, apiRateWindow)
		authRL = middleware.SimpleRateLimit(authRateLimit, authRateWindow)
	}

	// Health checks and metrics (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	writeRL := middleware.WriteRateLimit(cfg.WriteRateLimit, time.Duration(cfg.WriteRateWindow)*time.Second)

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(apiRL)
	registerAPIRoutes(v1, h, authRL, writeRL)

	// Live snapshot stream
	r.GET("/ws", ws.HandleWS(hub))
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, authRL, writeRL gin.HandlerFunc) {
	// Auth
	api.POST("/auth/google", authRL, h.AuthGoogle)
	api.POST("/auth/signout", middleware.JWT(), h.SignOut)
	api.GET("/me", middleware.JWT(), h.Me)

	// Tasks
	api.GET("/tasks", middleware.JWT(), h.ListTasks)
	api.POST("/tasks", middleware.JWT(), writeRL, h.CreateTask)
	api.PATCH("/tasks/:id/text", middleware.JWT(), writeRL, h.UpdateTaskText)
	api.PATCH("/tasks/:id/complete", middleware.JWT(), writeRL, h.SetTaskCompleted)
	api.DELETE("/tasks/:id", middleware.JWT(), writeRL, h.DeleteTask)

	// Reminders
	api.GET("/reminders", middleware.JWT(), h.ListReminders)
	api.POST("/reminders", middleware.JWT(), writeRL, h.CreateReminder)
	api.PATCH("/reminders/:id/text", middleware.JWT(), writeRL, h.UpdateReminderText)
	api.DELETE("/reminders/:id", middleware.JWT(), writeRL, h.DeleteReminder)
	api.POST("/sync/promote", middleware.JWT(), h.PromoteReminders)

	// Reference books
	api.GET("/providers", middleware.JWT(), h.ListProviders)
	api.POST("/providers", middleware.JWT(), writeRL, h.PutProvider)
	api.DELETE("/providers/:id", middleware.JWT(), writeRL, h.DeleteProvider)

	api.GET("/services", middleware.JWT(), h.ListServices)
	api.POST("/services", middleware.JWT(), writeRL, h.PutService)
	api.DELETE("/services/:id", middleware.JWT(), writeRL, h.DeleteService)

	api.GET("/employees", middleware.JWT(), h.ListEmployees)
	api.POST("/employees", middleware.JWT(), writeRL, h.PutEmployee)
	api.DELETE("/employees/:id", middleware.JWT(), writeRL, h.DeleteEmployee)

	// Linked actions (orders, service requests, calls)
	api.GET("/actions", middleware.JWT(), h.ListActions)
	api.POST("/actions", middleware.JWT(), writeRL, h.SaveAction)
	api.DELETE("/actions/:type/:id", middleware.JWT(), writeRL, h.DeleteAction)

	// Calendar
	api.GET("/calendar/markers", middleware.JWT(), h.CalendarMarkers)
	api.GET("/calendar/day/:date", middleware.JWT(), h.CalendarDay)
}
