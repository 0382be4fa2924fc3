package telegram

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lavrov08/trainers-tinder/internal/card"
	"github.com/lavrov08/trainers-tinder/internal/usecase"
	"github.com/lavrov08/trainers-tinder/pkg/logger"
)

func (b *Bot) onClientDirection(ctx context.Context, cb *tgbotapi.CallbackQuery, direction string) {
	b.answer(cb, "")
	view, err := b.browse.SelectDirection(ctx, cb.From.ID, direction)
	if err != nil {
		kb := directionsKeyboard(b.cfg.Directions, "client_direction")
		b.editOrReply(cb, userErr(err), &kb)
		return
	}
	deleteMessages(b.api, cb.Message.Chat.ID, []int{cb.Message.MessageID})
	b.showCard(ctx, cb.Message.Chat.ID, cb.From.ID, view)
}

func (b *Bot) onNavigate(ctx context.Context, cb *tgbotapi.CallbackQuery,
	move func(context.Context, int64) (*usecase.CardView, error)) {
	b.answer(cb, "")
	view, err := move(ctx, cb.From.ID)
	if err != nil {
		kb := directionsKeyboard(b.cfg.Directions, "client_direction")
		b.editOrReply(cb, userErr(err), &kb)
		return
	}
	b.showCard(ctx, cb.Message.Chat.ID, cb.From.ID, view)
}

// showCard replaces the previous card messages with the one at the cursor.
// Delete-then-send keeps split cards (photo header plus long text) from
// piling up in the chat.
func (b *Bot) showCard(ctx context.Context, chatID, userID int64, view *usecase.CardView) {
	sess := b.sessions.Get(userID)
	if sess.Browse != nil && len(sess.Browse.CardMessageIDs) > 0 {
		deleteMessages(b.api, chatID, sess.Browse.CardMessageIDs)
		sess.Browse.CardMessageIDs = nil
	}

	payloads := card.Render(view.Trainer, card.Options{
		Position: fmt.Sprintf("Profile %d/%d", view.Index+1, view.Total),
	})
	kb := trainerViewKeyboard(view.Trainer.ID, view.Total, view.AlreadyLiked)
	sent, err := sendPayloads(b.api, chatID, payloads, &kb)
	if err != nil {
		logger.Log.Error("card delivery failed", "chat_id", chatID, "error", err)
		b.reply(chatID, "Could not show the profile. Try again.")
		return
	}
	if sess.Browse != nil {
		sess.Browse.CardMessageIDs = sent
	}
}

func (b *Bot) onLike(ctx context.Context, cb *tgbotapi.CallbackQuery, arg string) {
	trainerID, err := parseID(arg)
	if err != nil {
		b.answer(cb, "")
		return
	}

	result, err := b.browse.Like(ctx, cb.From.ID, cb.From.UserName, trainerID)
	if err != nil {
		b.answerAlert(cb, userErr(err))
		return
	}

	switch result.Outcome {
	case usecase.LikeDuplicate:
		b.answerAlert(cb, "You already liked this trainer!")
	case usecase.LikeNoBalance:
		b.answer(cb, "")
		b.replyWithKeyboard(cb.Message.Chat.ID,
			"You are out of likes.\n\nRefill your balance to keep going:",
			tariffKeyboard(b.browse.Tariffs()))
	case usecase.LikeOK:
		b.answerAlert(cb, "Like sent! The trainer got your contact.")
		view, err := b.browse.Current(ctx, cb.From.ID)
		if err == nil {
			b.showCard(ctx, cb.Message.Chat.ID, cb.From.ID, view)
		}
	}
}

func (b *Bot) onBackToDirections(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	b.answer(cb, "")
	userID := cb.From.ID

	sess := b.sessions.Get(userID)
	if sess.Browse != nil && len(sess.Browse.CardMessageIDs) > 0 {
		deleteMessages(b.api, cb.Message.Chat.ID, sess.Browse.CardMessageIDs)
	}
	b.browse.EndBrowse(userID)

	balance, err := b.browse.Balance(ctx, userID)
	if err != nil {
		logger.Log.Warn("balance lookup failed", "user_id", userID, "error", err)
	}
	b.replyWithKeyboard(cb.Message.Chat.ID,
		fmt.Sprintf("You have %d likes.\n\nPick a training direction:", balance),
		directionsKeyboard(b.cfg.Directions, "client_direction"))
}

func (b *Bot) onLikedPage(ctx context.Context, cb *tgbotapi.CallbackQuery, arg string) {
	b.answer(cb, "")
	page, _ := strconv.Atoi(arg)

	list, err := b.browse.LikedPage(ctx, cb.From.ID, page)
	if err != nil {
		b.reply(cb.Message.Chat.ID, userErr(err))
		return
	}
	if list.Total == 0 {
		kb := directionsKeyboard(b.cfg.Directions, "client_direction")
		b.editOrReply(cb, "You have not liked anyone yet.\n\nPick a direction and start browsing:", &kb)
		return
	}

	text := fmt.Sprintf("Your likes: %d\nPage %d of %d", list.Total, list.Page+1, list.TotalPages)
	kb := likedListKeyboard(list)
	b.editOrReply(cb, text, &kb)
}

func (b *Bot) onLikedProfile(ctx context.Context, cb *tgbotapi.CallbackQuery, arg string) {
	trainerID, err := parseID(arg)
	if err != nil {
		b.answer(cb, "")
		return
	}
	b.answer(cb, "")

	trainer, err := b.browse.LikedProfile(ctx, trainerID)
	if err != nil {
		b.reply(cb.Message.Chat.ID, userErr(err))
		return
	}

	payloads := card.Render(trainer, card.Options{Prefix: "You liked this trainer"})
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Back to my likes", "check_likes"),
		),
	)
	if _, err := sendPayloads(b.api, cb.Message.Chat.ID, payloads, &kb); err != nil {
		logger.Log.Error("liked profile delivery failed", "chat_id", cb.Message.Chat.ID, "error", err)
	}
}

func (b *Bot) onRefill(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	b.answer(cb, "")
	balance, err := b.browse.Balance(ctx, cb.From.ID)
	if err != nil {
		logger.Log.Warn("balance lookup failed", "user_id", cb.From.ID, "error", err)
	}
	b.replyWithKeyboard(cb.Message.Chat.ID,
		fmt.Sprintf("Your balance: %d likes.\n\nPick a refill tariff:", balance),
		tariffKeyboard(b.browse.Tariffs()))
}

// onTariff files the refill request with the admins; the balance is only
// credited later, by hand, once payment is confirmed.
func (b *Bot) onTariff(ctx context.Context, cb *tgbotapi.CallbackQuery, arg string) {
	likes, err := strconv.Atoi(arg)
	if err != nil {
		b.answer(cb, "")
		return
	}
	b.answer(cb, "")

	requestID, tariff, err := b.browse.RequestRefill(ctx, cb.From.ID, cb.From.UserName, likes)
	if err != nil {
		b.reply(cb.Message.Chat.ID, userErr(err))
		return
	}
	b.editOrReply(cb, fmt.Sprintf(
		"Request %s created: %d likes for %d.\n\nAn administrator will contact you with payment details. The likes are credited after payment.",
		requestID, tariff.Likes, tariff.Price), nil)
}

func (b *Bot) onCancelRefill(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	b.answer(cb, "")
	kb := directionsKeyboard(b.cfg.Directions, "client_direction")
	b.editOrReply(cb, "Refill cancelled.\n\nPick a training direction:", &kb)
}
