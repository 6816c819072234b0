package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"clinicbot/internal/audit"
	"clinicbot/internal/render"
	"clinicbot/internal/telegram"
)

// NewCallbackHandler returns the handler for button presses. The pressed
// button's command token is resolved by exact command match, never by
// keyword. A hit posts the rendered record as a new message (a row may carry
// its own panel, so menus can chain); a miss only shows a transient notice
// to the pressing user and writes no audit record.
func NewCallbackHandler(deps HandlerDeps) bot.HandlerFunc {
	return callbackHandler{deps}.Handle
}

type callbackHandler struct {
	deps HandlerDeps
}

func (h callbackHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	deps := h.deps
	log := deps.Logger.With("handler", "callback")

	cb := update.CallbackQuery
	if cb == nil || cb.Data == "" {
		log.DebugContext(ctx, "Ignoring update with nil callback query or empty data", "update_id", update.ID)
		return
	}

	userID := cb.From.ID
	command := cb.Data

	var chatID int64
	if cb.Message.Message != nil {
		chatID = cb.Message.Message.Chat.ID
	} else if cb.Message.InaccessibleMessage != nil {
		chatID = cb.Message.InaccessibleMessage.Chat.ID
	}

	rec, err := deps.Resolver.FindByCommand(ctx, command)
	if err != nil {
		log.WarnContext(ctx, "Content lookup failed for button press", "error", err, "command", command)
		h.answer(ctx, b, cb.ID, deps.Config.Messages.ContentUnavailable)
		return
	}

	if rec == nil {
		log.InfoContext(ctx, "Button press matched no content row", "command", command, "user_id", userID)
		h.answer(ctx, b, cb.ID, deps.Config.Messages.ButtonNotFound)
		return
	}

	displayName := deps.Tracker.DisplayName(userID)
	deps.Audit.Record(userID, displayName, cb.From.Username, audit.ButtonTag(command))

	// Clear the button's loading state before sending the reply.
	h.answer(ctx, b, cb.ID, "")

	if chatID == 0 {
		log.WarnContext(ctx, "No chat available for button reply", "command", command, "user_id", userID)
		return
	}

	reply := render.Render(*rec, displayName)
	if err := telegram.Send(ctx, b, chatID, reply); err != nil {
		log.ErrorContext(ctx, "Failed to send button reply", "error", err, "chat_id", chatID)
	}
}

func (h callbackHandler) answer(ctx context.Context, b *bot.Bot, callbackID, text string) {
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	})
	if err != nil {
		h.deps.Logger.WarnContext(ctx, "Failed to answer callback query", "error", err)
	}
}
