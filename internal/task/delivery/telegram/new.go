package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"clickup-task-bot/internal/task"
	pkgLog "clickup-task-bot/pkg/log"
	pkgTelegram "clickup-task-bot/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Options tunes webhook validation and redelivery suppression.
type Options struct {
	WebhookSecret string        // expected X-Telegram-Bot-Api-Secret-Token; empty disables the check
	ReplaySize    int           // remembered update ids; <= 0 disables the guard
	ReplayTTL     time.Duration // how long an update id is remembered
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc task.UseCase, bot *pkgTelegram.Bot, opts Options) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		secret: opts.WebhookSecret,
		replay: newReplayGuard(opts.ReplaySize, opts.ReplayTTL),
	}
}
