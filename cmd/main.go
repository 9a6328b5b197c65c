package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	jiraclient "jirabot/clients/jira"
	slackclient "jirabot/clients/slack"
	"jirabot/config"
	"jirabot/handlers"
	"jirabot/middleware"
	"jirabot/services/identity"
	"jirabot/services/validation"
	"jirabot/usecases/commands"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize error alert middleware
	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.SlackAlertConfig{
		WebhookURL:  cfg.SlackConfig.AlertWebhookURL,
		Environment: cfg.Environment,
		AppName:     "jirabot",
	})

	// Initialize external clients
	jiraClient, err := jiraclient.NewJiraClient(cfg.JiraConfig.BaseURL, cfg.JiraConfig.Username, cfg.JiraConfig.Password)
	if err != nil {
		return err
	}
	slackClient := slackclient.NewSlackClient(cfg.SlackConfig.BotToken)

	identityService := identity.NewIdentityService(slackClient, jiraClient)
	validationService := validation.NewValidationService(jiraClient)

	commandsUseCase := commands.NewCommandsUseCase(
		slackClient,
		jiraClient,
		identityService,
		validationService,
		cfg.JiraConfig.BaseURL,
	)
	slackHandler := handlers.NewSlackWebhooksHandler(cfg.SlackConfig.SigningSecret, cfg.SlackConfig.TeamID, commandsUseCase)

	// Create a new router
	router := mux.NewRouter()
	slackHandler.SetupEndpoints(router)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			log.Printf("❌ Failed to write health check response: %v", err)
		}
	}).Methods("GET")

	// Setup and handle graceful shutdown
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           alertMiddleware.HTTPMiddleware(router),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	// Channel to listen for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
