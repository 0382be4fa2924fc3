package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lavrov08/trainers-tinder/internal/card"
	"github.com/lavrov08/trainers-tinder/pkg/logger"
)

// sendPayloads delivers rendered card payloads in order, attaching the
// markup to the payload flagged for controls. A rejected photo degrades to
// a text-only message instead of dropping the card.
func sendPayloads(api *tgbotapi.BotAPI, chatID int64, payloads []card.Payload, markup *tgbotapi.InlineKeyboardMarkup) ([]int, error) {
	var sent []int
	for _, p := range payloads {
		var kb *tgbotapi.InlineKeyboardMarkup
		if p.WithControls {
			kb = markup
		}
		msg, err := sendContent(api, chatID, p.Content, kb)
		if err != nil {
			return sent, err
		}
		sent = append(sent, msg.MessageID)
	}
	return sent, nil
}

func sendContent(api *tgbotapi.BotAPI, chatID int64, content card.Content, kb *tgbotapi.InlineKeyboardMarkup) (tgbotapi.Message, error) {
	if content.Kind == card.PhotoWithCaption {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileID(content.PhotoID))
		photo.Caption = content.Text
		if kb != nil {
			photo.ReplyMarkup = *kb
		}
		msg, err := api.Send(photo)
		if err == nil {
			return msg, nil
		}
		logger.Log.Warn("photo send failed, falling back to text",
			"chat_id", chatID, "error", err)
	}

	text := tgbotapi.NewMessage(chatID, content.Text)
	if kb != nil {
		text.ReplyMarkup = *kb
	}
	return api.Send(text)
}

func deleteMessages(api *tgbotapi.BotAPI, chatID int64, messageIDs []int) {
	for _, id := range messageIDs {
		if _, err := api.Request(tgbotapi.NewDeleteMessage(chatID, id)); err != nil {
			logger.Log.Debug("stale card message not deleted",
				"chat_id", chatID, "message_id", id, "error", err)
		}
	}
}
