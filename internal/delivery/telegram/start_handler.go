package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lavrov08/trainers-tinder/internal/domain"
	"github.com/lavrov08/trainers-tinder/pkg/logger"
)

const welcomeText = "Welcome to Trainers Tinder!\n\nHere clients find their trainer and trainers find their clients.\n\nWho are you?"

// onStart resets any in-flight conversation and shows the role menu.
func (b *Bot) onStart(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	b.sessions.Clear(userID)

	if err := b.accounts.EnsureUser(ctx, userID, msg.From.UserName); err != nil {
		logger.Log.Error("user upsert failed", "user_id", userID, "error", err)
	}

	text := welcomeText
	if b.cfg.IsAdmin(userID) {
		text += "\n\nYou are an administrator. Use /stats for the admin panel."
	}
	b.replyWithKeyboard(msg.Chat.ID, text, roleKeyboard())
}

func (b *Bot) onRoleClient(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	if err := b.accounts.AssignClientRole(ctx, userID, cb.From.UserName); err != nil {
		b.answer(cb, "")
		b.reply(cb.Message.Chat.ID, userErr(err))
		return
	}
	b.answer(cb, "")

	balance, err := b.browse.Balance(ctx, userID)
	if err != nil {
		logger.Log.Warn("balance lookup failed", "user_id", userID, "error", err)
	}
	text := fmt.Sprintf("Great! You have %d likes.\n\nPick a training direction:", balance)
	kb := directionsKeyboard(b.cfg.Directions, "client_direction")
	b.editOrReply(cb, text, &kb)
}

// onRoleTrainer applies the re-entry guard before starting registration:
// a pending or approved profile blocks a new submission, a rejected one
// lets the trainer try again.
func (b *Bot) onRoleTrainer(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	b.answer(cb, "")

	existing, err := b.registration.Begin(ctx, userID)
	if err != nil {
		b.reply(cb.Message.Chat.ID, userErr(err))
		return
	}

	if existing != nil {
		switch existing.Status {
		case domain.StatusPending:
			b.editOrReply(cb, "Your profile is awaiting moderation. You will be notified once it is reviewed.", nil)
			return
		case domain.StatusApproved:
			b.editOrReply(cb, "Your profile is already published. Clients can see it and you get notified about likes.", nil)
			return
		}
	}

	if err := b.accounts.AssignTrainerRole(ctx, userID, cb.From.UserName); err != nil {
		logger.Log.Error("trainer role assignment failed", "user_id", userID, "error", err)
	}

	kb := directionsKeyboard(b.cfg.Directions, "trainer_direction")
	b.editOrReply(cb, "Let's create your trainer profile.\n\nPick your training direction:", &kb)
}
