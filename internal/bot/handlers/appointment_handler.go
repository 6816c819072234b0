package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"clinicbot/internal/render"
	"clinicbot/internal/telegram"
)

// NewAppointmentHandler returns the handler for the /appointment command.
// It (re)starts the intake form at the first stage; a form already in
// progress is discarded, last writer wins.
func NewAppointmentHandler(deps HandlerDeps) bot.HandlerFunc {
	return appointmentHandler{deps}.Handle
}

type appointmentHandler struct {
	deps HandlerDeps
}

func (h appointmentHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "appointment")

	if update.Message == nil || update.Message.From == nil {
		log.WarnContext(ctx, "Received update with nil message or sender", "update_id", update.ID)
		return
	}

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	stage := h.deps.Tracker.BeginForm(userID)
	log.InfoContext(ctx, "Appointment form started", "chat_id", chatID, "user_id", userID, "stage", stage)

	prompt := render.Text(h.deps.Config.Messages.FormName)
	if err := telegram.Send(ctx, b, chatID, prompt); err != nil {
		log.ErrorContext(ctx, "Failed to send form prompt", "error", err, "chat_id", chatID)
	}
}
