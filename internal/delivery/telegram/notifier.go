package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lavrov08/trainers-tinder/internal/card"
	"github.com/lavrov08/trainers-tinder/internal/domain"
)

// Notifier implements domain.Notifier over the bot API. Callers treat
// every send as best-effort; this type only reports the failure.
type Notifier struct {
	api *tgbotapi.BotAPI
}

func NewNotifier(api *tgbotapi.BotAPI) *Notifier {
	return &Notifier{api: api}
}

func (n *Notifier) SendText(_ context.Context, recipient int64, text string) error {
	_, err := n.api.Send(tgbotapi.NewMessage(recipient, text))
	return err
}

func (n *Notifier) SendModerationCard(_ context.Context, admin int64, trainer *domain.Trainer) error {
	kb := moderationKeyboard(trainer.ID)
	_, err := sendPayloads(n.api, admin, card.Moderation(trainer), &kb)
	return err
}

var _ domain.Notifier = (*Notifier)(nil)
