package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"clinicbot/internal/audit"
	"clinicbot/internal/content"
	"clinicbot/internal/database"
	"clinicbot/internal/form"
	"clinicbot/internal/render"
	"clinicbot/internal/telegram"
)

// NewTextHandler returns the default handler for free-text messages. It is
// the main dispatcher branch: an active form consumes the message as the
// next field, a user without a name has it captured, and everything else
// goes through keyword resolution.
func NewTextHandler(deps HandlerDeps) bot.HandlerFunc {
	return textHandler{deps}.Handle
}

type textHandler struct {
	deps HandlerDeps
}

func (h textHandler) Handle(ctx context.Context, b *bot.Bot, update *models.Update) {
	log := h.deps.Logger.With("handler", "text")

	msg := update.Message
	if msg == nil || msg.From == nil || strings.TrimSpace(msg.Text) == "" {
		log.DebugContext(ctx, "Ignoring update with nil message, empty text, or nil sender", "update_id", update.ID)
		return
	}
	if botID := h.deps.Config.Telegram.BotInfo.ID; botID != 0 && msg.From.ID == botID {
		log.DebugContext(ctx, "Ignoring message from the bot's own account", "update_id", update.ID)
		return
	}

	reply := h.plan(ctx, msg.From.ID, msg.From.Username, msg.Text)
	if err := telegram.Send(ctx, b, msg.Chat.ID, reply); err != nil {
		log.ErrorContext(ctx, "Failed to send reply", "error", err, "chat_id", msg.Chat.ID)
	}
}

// plan runs the dispatch decision for one free-text message and returns the
// reply to send. All state transitions and audit appends happen here; the
// caller only delivers the result. Branches are checked in priority order:
// active form, name capture, form trigger, keyword match.
func (h textHandler) plan(ctx context.Context, userID int64, username, text string) render.SendInstruction {
	deps := h.deps
	log := deps.Logger.With("handler", "text", "user_id", userID)
	text = strings.TrimSpace(text)

	if deps.Tracker.FormActive(userID) {
		return h.advanceForm(ctx, userID, username, text)
	}

	if !deps.Tracker.HasName(userID) {
		deps.Tracker.SetName(userID, text)
		deps.Audit.Record(userID, text, username, audit.ActionSetName)
		log.InfoContext(ctx, "Captured display name")

		rec, err := deps.Resolver.FindByCommand(ctx, "greeting")
		switch {
		case errors.Is(err, content.ErrUnavailable):
			log.WarnContext(ctx, "Content table unavailable for greeting", "error", err)
			return render.Text(deps.Config.Messages.ContentUnavailable)
		case err != nil:
			log.ErrorContext(ctx, "Greeting lookup failed", "error", err)
			return render.Text(deps.Config.Messages.ContentUnavailable)
		case rec != nil:
			return render.Render(*rec, text)
		}
		return render.Text(strings.ReplaceAll(deps.Config.Messages.GreetingFallback, content.NamePlaceholder, text))
	}

	if h.isFormTrigger(text) {
		stage := deps.Tracker.BeginForm(userID)
		log.InfoContext(ctx, "Appointment form started from free text", "stage", stage)
		return render.Text(deps.Config.Messages.FormName)
	}

	displayName := deps.Tracker.DisplayName(userID)

	rec, err := deps.Resolver.FindByKeyword(ctx, text)
	switch {
	case errors.Is(err, content.ErrUnavailable):
		log.WarnContext(ctx, "Content table unavailable for keyword match", "error", err)
		deps.Audit.Record(userID, displayName, username, audit.ActionMessage)
		return render.Text(deps.Config.Messages.ContentUnavailable)
	case err != nil:
		log.ErrorContext(ctx, "Keyword lookup failed", "error", err)
		deps.Audit.Record(userID, displayName, username, audit.ActionMessage)
		return render.Text(deps.Config.Messages.ContentUnavailable)
	case rec != nil:
		deps.Audit.Record(userID, displayName, username, audit.MessageTag(rec.Command))
		return render.Render(*rec, displayName)
	}

	deps.Audit.Record(userID, displayName, username, audit.ActionMessage)
	return render.Text(deps.Config.Messages.NotFound)
}

// advanceForm feeds one message into the active form and returns the next
// prompt, or the confirmation once the final field lands.
func (h textHandler) advanceForm(ctx context.Context, userID int64, username, text string) render.SendInstruction {
	deps := h.deps
	log := deps.Logger.With("handler", "text", "user_id", userID)

	record, next, active := deps.Tracker.AdvanceForm(userID, text)
	if !active {
		// Raced with a reset; treat the message as ordinary text.
		return h.plan(ctx, userID, username, text)
	}

	deps.Audit.Record(userID, deps.Tracker.DisplayName(userID), username, audit.ActionMessage)

	if record == nil {
		switch next {
		case form.AwaitingDate:
			return render.Text(deps.Config.Messages.FormDate)
		case form.AwaitingTime:
			return render.Text(deps.Config.Messages.FormTime)
		default:
			return render.Text(deps.Config.Messages.FormSymptoms)
		}
	}

	appt := &database.Appointment{
		ID:        record.ID,
		CreatedAt: record.CreatedAt,
		UserID:    record.UserID,
		Name:      record.Name,
		VisitDate: record.VisitDate,
		VisitTime: record.VisitTime,
		Symptoms:  record.Symptoms,
	}
	if err := deps.Store.SaveAppointment(ctx, appt); err != nil {
		log.ErrorContext(ctx, "Failed to save appointment", "error", err, "appointment_id", record.ID)
		return render.Text(deps.Config.Messages.ContentUnavailable)
	}

	log.InfoContext(ctx, "Appointment recorded", "appointment_id", record.ID)
	return render.Text(strings.ReplaceAll(deps.Config.Messages.FormDone, content.NamePlaceholder, record.Name))
}

// isFormTrigger reports whether the text contains any configured form
// trigger keyword.
func (h textHandler) isFormTrigger(text string) bool {
	lowered := strings.ToLower(text)
	for _, trigger := range h.deps.Config.Form.Triggers {
		if trigger != "" && strings.Contains(lowered, trigger) {
			return true
		}
	}
	return false
}
