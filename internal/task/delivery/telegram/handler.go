package telegram

import (
	"context"
	"crypto/hmac"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clickup-task-bot/internal/model"
	"clickup-task-bot/internal/task"
	"clickup-task-bot/internal/task/command"
	pkgLog "clickup-task-bot/pkg/log"
	pkgResponse "clickup-task-bot/pkg/response"
	pkgTelegram "clickup-task-bot/pkg/telegram"
)

type handler struct {
	l      pkgLog.Logger
	uc     task.UseCase
	bot    *pkgTelegram.Bot
	secret string
	replay *replayGuard
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a background goroutine.
// The goroutine is detached from the request context: once started, a command runs to completion.
// @Summary Telegram webhook
// @Description Receives Telegram updates and relays /task commands to ClickUp
// @Tags Telegram
// @Accept json
// @Produce json
// @Param X-Telegram-Bot-Api-Secret-Token header string false "Webhook secret token"
// @Success 200 {object} response.Resp "Update accepted"
// @Failure 401 {object} response.Resp "Secret token mismatch"
// @Router /webhook/telegram [post]
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" && !hmac.Equal([]byte(c.GetHeader(pkgTelegram.SecretTokenHeader)), []byte(h.secret)) {
		h.l.Warnf(ctx, "telegram handler: rejected update with bad secret token from %s", c.ClientIP())
		pkgResponse.Unauthorized(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edited messages, channel posts, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	if !h.replay.firstSeen(update.UpdateID) {
		h.l.Infof(ctx, "telegram handler: dropping redelivered update %d", update.UpdateID)
		pkgResponse.OK(c, map[string]string{"status": "duplicate"})
		return
	}

	msg := update.Message
	requestID := pkgLog.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	go func() {
		bgCtx := pkgLog.WithRequestID(context.Background(), requestID)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage dispatches a single Telegram message by its leading command.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	cmd, body := splitCommand(msg.Text)
	switch cmd {
	case "/start", "/help", "/usage":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, usageMessage, "Markdown")
	case "/task":
		return h.handleTask(ctx, msg, body)
	}

	h.l.Debugf(ctx, "telegram handler: ignoring message with command %q", cmd)
	return nil
}

// handleTask parses the command body, runs the pipeline and replies with the outcome.
func (h *handler) handleTask(ctx context.Context, msg *pkgTelegram.Message, body string) error {
	sc := model.Scope{ChatID: msg.Chat.ID}
	if msg.From != nil {
		sc.UserID = fmt.Sprintf("telegram_%d", msg.From.ID)
		sc.Username = msg.From.Username
	}

	req, err := command.Parse(body)
	if err != nil {
		h.l.Infof(ctx, "telegram handler: rejected /task from %s: %v", sc.UserID, err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, task.ErrorReply(err))
	}

	output, err := h.uc.Create(ctx, sc, task.CreateInput{Request: req})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Create failed: %v", err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, task.ErrorReply(err))
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, task.SuccessReply(output.Task))
}

// splitCommand separates the leading "/command[@bot]" token from the rest of the text.
func splitCommand(text string) (string, string) {
	text = strings.TrimLeft(text, " \t")

	cmd, body := text, ""
	if end := strings.IndexAny(text, " \t\r\n"); end >= 0 {
		cmd, body = text[:end], text[end:]
	}
	if at := strings.IndexByte(cmd, '@'); at >= 0 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd), body
}
