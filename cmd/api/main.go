package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"clickup-task-bot/config"
	_ "clickup-task-bot/docs" // Swagger docs
	"clickup-task-bot/internal/httpserver"
	tgDelivery "clickup-task-bot/internal/task/delivery/telegram"
	"clickup-task-bot/internal/task/repository/clickup"
	"clickup-task-bot/internal/task/usecase"
	"clickup-task-bot/pkg/log"
	"clickup-task-bot/pkg/telegram"
)

// @title       ClickUp Task Bot API
// @description Relays Telegram /task commands into ClickUp task creation.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ClickUp task bot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "ClickUp API: %s (auth: %s, team: %q)", cfg.ClickUp.APIURL, cfg.ClickUp.AuthMode, cfg.ClickUp.DefaultTeam)

	// 3. Task domain
	if cfg.ClickUp.Token == "" {
		logger.Warn(ctx, "CLICKUP_TOKEN is empty, every ClickUp call will be rejected")
	}
	clickupClient := clickup.NewClient(clickup.ClientOptions{
		BaseURL:  cfg.ClickUp.APIURL,
		Token:    cfg.ClickUp.Token,
		AuthMode: cfg.ClickUp.AuthMode,
		Timeout:  cfg.ClickUp.Timeout,
	})
	taskRepo := clickup.New(clickupClient, logger)
	taskUC := usecase.New(logger, taskRepo, cfg.ClickUp.DefaultTeam)

	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, taskUC, telegramBot, tgDelivery.Options{
			WebhookSecret: cfg.Telegram.WebhookSecret,
			ReplaySize:    cfg.ReplayGuard.Size,
			ReplayTTL:     cfg.ReplayGuard.TTL,
		})

		// Register webhook: explicit config, else auto-detect ngrok
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" && cfg.Telegram.NgrokAPIURL != "" {
			detected, ngrokErr := newNgrokProbe(cfg.Telegram.NgrokAPIURL).webhookURL(ctx)
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = detected
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(ctx, webhookURL, cfg.Telegram.WebhookSecret); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
		Pinger:          taskUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
