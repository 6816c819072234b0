package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewResetHandler returns the handler for the /reset command. Reset is
// observably identical to /start apart from the audit tag: issuing it twice
// in a row has the same effect as issuing it once.
func NewResetHandler(deps HandlerDeps) bot.HandlerFunc {
	return resetHandler{deps}.Handle
}

type resetHandler struct {
	deps HandlerDeps
}

func (h resetHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "reset")
	restartConversation(ctx, b, h.deps, log, update, "/reset", "reset")
}
