// Package http assembles the gin router for the service desk API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/esit-pro/service-desk/internal/infrastructure/config"
	msghandler "github.com/esit-pro/service-desk/internal/interfaces/http/handlers/message"
	srhandler "github.com/esit-pro/service-desk/internal/interfaces/http/handlers/servicerequest"
	threadhandler "github.com/esit-pro/service-desk/internal/interfaces/http/handlers/thread"
	"github.com/esit-pro/service-desk/internal/interfaces/http/middleware"
	"github.com/esit-pro/service-desk/internal/shared/logger"
	"github.com/esit-pro/service-desk/internal/shared/services/markdown"
)

type Router struct {
	engine   *gin.Engine
	requests *srhandler.Handler
	messages *msghandler.Handler
	threads  *threadhandler.Handler
	cfg      *config.Config
	logger   logger.Interface
}

func NewRouter(container *Container, cfg *config.Config, log logger.Interface) *Router {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	return &Router{
		engine:   engine,
		requests: srhandler.NewHandler(container.RequestService, log),
		messages: msghandler.NewHandler(container.MessageService, container.TriageService, log),
		threads:  threadhandler.NewHandler(container.MessageService, markdown.NewService(), log),
		cfg:      cfg,
		logger:   log,
	}
}

// SetupRoutes registers the middleware chain and every API route.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	requests := api.Group("/service-requests")
	{
		requests.GET("", r.requests.List)
		requests.POST("", r.requests.Create)
		requests.POST("/regenerate", r.requests.Regenerate)
		requests.GET("/:id", r.requests.Get)
		requests.PATCH("/:id/status", r.requests.ChangeStatus)
		requests.PATCH("/:id/priority", r.requests.ChangePriority)
		requests.PATCH("/:id/assign", r.requests.Assign)
		requests.POST("/:id/hours", r.requests.LogHours)
		requests.POST("/:id/notes", r.requests.AddNote)
		requests.GET("/:id/messages", r.messages.ListByRelatedService)
	}

	messages := api.Group("/messages")
	{
		messages.GET("", r.messages.List)
		messages.POST("", r.messages.Create)
		messages.GET("/search", r.messages.Search)
		messages.GET("/unread-count", r.messages.UnreadCount)
		messages.POST("/batch", r.messages.BatchUpdate)
		messages.POST("/archive", r.messages.BatchArchive)
		messages.POST("/delete", r.messages.BatchDelete)
		messages.GET("/:id", r.messages.Get)
		messages.PATCH("/:id/read", r.messages.MarkRead)
		messages.PATCH("/:id/flag", r.messages.SetFlag)
		messages.PATCH("/:id/status", r.messages.ChangeStatus)
		messages.PATCH("/:id/assign", r.messages.Assign)
		messages.PATCH("/:id/service", r.messages.SetRelatedService)
		messages.POST("/:id/convert", r.messages.Convert)
		messages.POST("/:id/link", r.messages.Link)
	}

	threads := api.Group("/threads")
	{
		threads.GET("", r.threads.List)
		threads.POST("", r.threads.Create)
		threads.GET("/:id", r.threads.Get)
		threads.GET("/:id/html", r.threads.RenderHTML)
		threads.POST("/:id/messages", r.threads.AddMessage)
		threads.PATCH("/:id/messages/:messageId/read", r.threads.MarkMessageRead)
		threads.PATCH("/:id/archive", r.threads.Archive)
		threads.PATCH("/:id/service", r.threads.LinkService)
	}
}

// Engine returns the underlying gin engine, used by the server command
// and by tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
