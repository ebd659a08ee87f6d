// Package api provides HTTP handlers for the chat backend.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/madiparts/chat-backend/internal/config"
	"github.com/madiparts/chat-backend/internal/service"
)

// indexFile is the static frontend document served at the root path. It is
// looked up relative to the working directory.
const indexFile = "MADIPARTS.html"

// Handler handles HTTP requests.
type Handler struct {
	svc    *service.Service
	config *config.Config
}

// NewHandler creates a new handler.
func NewHandler(svc *service.Service, config *config.Config) *Handler {
	return &Handler{
		svc:    svc,
		config: config,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/health", h.Health)
	e.POST("/chat", h.Chat)
}

// Index serves the chat widget page.
func (h *Handler) Index(c echo.Context) error {
	return c.File(indexFile)
}

// Health returns health status and the configured model name.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"model":  h.config.Model,
	})
}
