package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) onTrainerDirection(ctx context.Context, cb *tgbotapi.CallbackQuery, direction string) {
	b.answer(cb, "")
	if err := b.registration.SetDirection(cb.From.ID, direction); err != nil {
		b.reply(cb.Message.Chat.ID, userErr(err))
		return
	}
	b.editOrReply(cb, fmt.Sprintf("Direction: %s\n\nWhat is your name?", direction), nil)
}

// onRegistrationInput is the shared text-step pattern: a validation error
// re-prompts in place, success advances with the next prompt.
func (b *Bot) onRegistrationInput(msg *tgbotapi.Message, err error, nextPrompt string) {
	if err != nil {
		b.reply(msg.Chat.ID, userErr(err))
		return
	}
	b.reply(msg.Chat.ID, nextPrompt)
}

// onAboutInput is the last text step; it advances to the photo step, which
// offers a skip button.
func (b *Bot) onAboutInput(msg *tgbotapi.Message) {
	if err := b.registration.SetAbout(msg.From.ID, msg.Text); err != nil {
		b.reply(msg.Chat.ID, userErr(err))
		return
	}
	b.replyWithKeyboard(msg.Chat.ID,
		"Almost done!\n\nSend a photo for your profile, or skip this step:",
		skipPhotoKeyboard())
}

// onPhotoMessage attaches the best-resolution photo and submits. Photos
// arriving outside the photo step are ignored with a hint.
func (b *Bot) onPhotoMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID

	// Telegram sends several sizes; the last one is the largest.
	photoID := msg.Photo[len(msg.Photo)-1].FileID
	if err := b.registration.AttachPhoto(userID, photoID); err != nil {
		b.reply(msg.Chat.ID, "Use /start to open the menu.")
		return
	}
	b.submitRegistration(ctx, msg.Chat.ID, userID, msg.From.UserName)
}

func (b *Bot) onSkipPhoto(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	b.answer(cb, "")
	b.submitRegistration(ctx, cb.Message.Chat.ID, cb.From.ID, cb.From.UserName)
}

func (b *Bot) submitRegistration(ctx context.Context, chatID, userID int64, username string) {
	if _, err := b.registration.Submit(ctx, userID, username); err != nil {
		b.reply(chatID, userErr(err))
		return
	}
	b.reply(chatID, fmt.Sprintf(
		"Your profile was sent for moderation!\n\nOnce approved, it goes live. Placement costs %d.\nYou will get a notification with payment details after approval.",
		b.cfg.PlacementCost))
}
