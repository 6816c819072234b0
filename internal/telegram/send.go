package telegram

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"clinicbot/internal/render"
)

// Send delivers one send instruction to a chat, picking the Bot API method
// that matches the payload kind.
func Send(ctx context.Context, b *bot.Bot, chatID int64, in render.SendInstruction) error {
	markup := replyMarkup(in.Buttons)

	var err error
	switch in.Kind {
	case render.KindPhoto:
		_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:      chatID,
			Photo:       &models.InputFileString{Data: in.MediaRef},
			Caption:     in.Body,
			ReplyMarkup: markup,
		})
	case render.KindVideo:
		_, err = b.SendVideo(ctx, &bot.SendVideoParams{
			ChatID:      chatID,
			Video:       &models.InputFileString{Data: in.MediaRef},
			Caption:     in.Body,
			ReplyMarkup: markup,
		})
	case render.KindAnimation:
		_, err = b.SendAnimation(ctx, &bot.SendAnimationParams{
			ChatID:      chatID,
			Animation:   &models.InputFileString{Data: in.MediaRef},
			Caption:     in.Body,
			ReplyMarkup: markup,
		})
	case render.KindVoice:
		_, err = b.SendVoice(ctx, &bot.SendVoiceParams{
			ChatID:      chatID,
			Voice:       &models.InputFileString{Data: in.MediaRef},
			Caption:     in.Body,
			ReplyMarkup: markup,
		})
	default:
		_, err = b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        in.Body,
			ReplyMarkup: markup,
		})
	}

	if err != nil {
		return fmt.Errorf("failed to send %s to chat %d: %w", in.Kind, chatID, err)
	}
	return nil
}

// replyMarkup builds a vertical inline keyboard, one button per row.
func replyMarkup(buttons []render.Button) models.ReplyMarkup {
	if len(buttons) == 0 {
		return nil
	}

	rows := make([][]models.InlineKeyboardButton, 0, len(buttons))
	for _, btn := range buttons {
		rows = append(rows, []models.InlineKeyboardButton{
			{Text: btn.Label, CallbackData: btn.Command},
		})
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}
