package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/madiparts/chat-backend/internal/api"
	"github.com/madiparts/chat-backend/internal/config"
	"github.com/madiparts/chat-backend/internal/llm"
	"github.com/madiparts/chat-backend/internal/service"
	"github.com/madiparts/chat-backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting chat backend...")
	log.Printf("HTTP Port: %d", cfg.Port)
	log.Printf("Model: %s", cfg.Model)

	// Initialize session store
	sessions := store.NewMemoryStore(config.SystemPrompt)

	// Initialize completion client
	llmClient := llm.NewClient(llm.DefaultBaseURL, cfg.APIKey, cfg.FolderID, cfg.Model, config.SystemPrompt)

	// Initialize service
	svc := service.New(sessions, llmClient)

	// Initialize handler
	h := api.NewHandler(svc, cfg)

	// Create Echo server
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:                             []string{"*"},
		AllowMethods:                             []string{"*"},
		AllowHeaders:                             []string{"*"},
		AllowCredentials:                         true,
		UnsafeWildcardOriginWithAllowCredentials: true,
	}))

	// Register routes
	h.RegisterRoutes(e)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Chat backend started on port %d", cfg.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down chat backend...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Chat backend stopped")
}
