package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/donorlink/internal/api/handlers/match"
	"github.com/aliskhannn/donorlink/internal/api/handlers/notification"
	"github.com/aliskhannn/donorlink/internal/api/handlers/request"
	"github.com/aliskhannn/donorlink/internal/middlewares"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Match        *match.Handler
	Notification *notification.Handler
	Request      *request.Handler
}

func New(h Handlers, jwtSecret string) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := e.Group("/api")
	api.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		api.GET("/matches", h.Match.Board)
		api.POST("/matches/refresh", h.Match.Refresh)
		api.POST("/matches/:id/status", h.Match.UpdateStatus)

		api.GET("/notifications", h.Notification.List)
		api.POST("/notifications/read-all", h.Notification.MarkAllRead)
		api.POST("/notifications/:id/read", h.Notification.MarkRead)
		api.GET("/toasts", h.Notification.Toasts)
		api.DELETE("/session", h.Notification.Release)

		api.GET("/requests", h.Request.Browse)
		api.POST("/requests", h.Request.Create)
	}

	return e
}
