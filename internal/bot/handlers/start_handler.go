package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"clinicbot/internal/content"
	"clinicbot/internal/render"
	"clinicbot/internal/telegram"
)

// NewStartHandler returns the handler for the /start command.
func NewStartHandler(deps HandlerDeps) bot.HandlerFunc {
	return startHandler{deps}.Handle
}

type startHandler struct {
	deps HandlerDeps
}

func (h startHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "start")
	restartConversation(ctx, b, h.deps, log, update, "/start", "start")
}

// restartConversation implements the shared /start and /reset behavior:
// clear the captured name and any in-progress form, audit the command, and
// prompt for a name. The reply comes from the content table row named by
// contentKey when one exists, so operators can customize it without a
// redeploy; otherwise the configured prompt is used.
func restartConversation(ctx context.Context, b *bot.Bot, deps HandlerDeps, log *slog.Logger, update *models.Update, action, contentKey string) {
	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Received update with nil message or sender", "update_id", update.ID)
		return
	}

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	log.InfoContext(ctx, "Handling conversation restart", "action", action, "chat_id", chatID, "user_id", userID)

	// Audit with the name the user had when the command arrived.
	deps.Audit.Record(userID, deps.Tracker.DisplayName(userID), update.Message.From.Username, action)

	deps.Tracker.Reset(userID)

	reply := render.Text(deps.Config.Messages.AskName)
	rec, err := deps.Resolver.FindByCommand(ctx, contentKey)
	switch {
	case errors.Is(err, content.ErrUnavailable):
		log.WarnContext(ctx, "Content table unavailable, using configured prompt", "error", err)
	case err != nil:
		log.ErrorContext(ctx, "Content lookup failed", "error", err)
	case rec != nil:
		// Name was just cleared, so the {name} token stays literal here.
		reply = render.Render(*rec, "")
	}

	if err := telegram.Send(ctx, b, chatID, reply); err != nil {
		log.ErrorContext(ctx, "Failed to send restart prompt", "error", err, "chat_id", chatID)
	}
}
