package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const appointmentsListLimit = 10

// NewAppointmentsHandler returns the admin-only handler for /appointments,
// which lists the most recent appointment requests.
func NewAppointmentsHandler(deps HandlerDeps) bot.HandlerFunc {
	return appointmentsHandler{deps}.Handle
}

type appointmentsHandler struct {
	deps HandlerDeps
}

func (h appointmentsHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "appointments")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Received update with nil message or sender", "update_id", update.ID)
		return
	}
	chatID := update.Message.Chat.ID

	appts, err := h.deps.Store.ListAppointments(ctx, appointmentsListLimit)
	if err != nil {
		log.ErrorContext(ctx, "Failed to list appointments", "error", err)
		h.send(ctx, b, chatID, h.deps.Config.Messages.ContentUnavailable)
		return
	}

	if len(appts) == 0 {
		h.send(ctx, b, chatID, h.deps.Config.Messages.NoAppointments)
		return
	}

	var sb strings.Builder
	sb.WriteString(h.deps.Config.Messages.AppointmentsHeader)
	for _, a := range appts {
		fmt.Fprintf(&sb, "• %s — %s, %s %s: %s\n",
			a.CreatedAt.Format("2006-01-02"), a.Name, a.VisitDate, a.VisitTime, a.Symptoms)
	}

	h.send(ctx, b, chatID, sb.String())
}

func (h appointmentsHandler) send(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{ChatID: chatID, Text: text})
	if err != nil {
		h.deps.Logger.ErrorContext(ctx, "Failed to send appointments reply", "error", err, "chat_id", chatID)
	}
}
