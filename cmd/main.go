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

	"github.com/gorilla/mux"

	openaiclient "mentionrelay/clients/openai"
	slackclient "mentionrelay/clients/slack"
	"mentionrelay/config"
	"mentionrelay/handlers"
	"mentionrelay/middleware"
	"mentionrelay/services/completions"
	"mentionrelay/services/replies"
	"mentionrelay/usecases/mentions"
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
		AppName:     "mentionrelay",
	})

	slackClient := slackclient.NewSlackClient(cfg.SlackConfig.BotToken)

	// Fail fast on a bad bot token before accepting any events
	authTest, err := slackClient.AuthTest()
	if err != nil {
		return fmt.Errorf("slack auth test failed: %w", err)
	}
	log.Printf("🔑 Authenticated as bot user %s (team %s)", authTest.UserID, authTest.TeamID)

	completionClient := openaiclient.NewOpenAIClient(cfg.OpenAIConfig.APIKey, cfg.OpenAIConfig.Model)

	completionsService := completions.NewCompletionsService(completionClient)
	repliesService := replies.NewRepliesService(slackClient)
	mentionsUseCase := mentions.NewMentionsUseCase(completionsService, repliesService, cfg.EmptyMentionReply)

	slackHandler := handlers.NewSlackEventsHandler(
		cfg.SlackConfig.SigningSecret,
		alertMiddleware.WrapPipeline(mentionsUseCase.ProcessMentionEvent),
	)
	healthHandler := handlers.NewHealthHandler(cfg.Environment)

	// Create a new router
	router := mux.NewRouter()

	// Setup endpoints with the new router
	slackHandler.SetupEndpoints(router)
	healthHandler.SetupEndpoints(router)

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

	<-stop
	log.Printf("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Printf("✅ Server shut down cleanly")
	return nil
}
