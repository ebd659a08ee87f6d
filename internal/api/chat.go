package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/madiparts/chat-backend/internal/domain"
)

// Chat handles a chat turn from the widget. All orchestration errors are
// translated to transport responses here and nowhere else.
// POST /chat
func (h *Handler) Chat(c echo.Context) error {
	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	resp, err := h.svc.Chat(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyMessage) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "empty message"})
		}
		log.Printf("ERROR: chat turn failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":  err.Error(),
			"detail": "check provider credentials and configuration",
		})
	}

	return c.JSON(http.StatusOK, resp)
}
