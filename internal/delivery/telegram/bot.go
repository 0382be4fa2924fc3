// Package telegram adapts the Telegram Bot API to the workflow usecases.
// Everything in here is transport glue: parsing commands and callback
// data, building keyboards, and sending rendered cards. Workflow rules
// live in internal/usecase.
package telegram

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lavrov08/trainers-tinder/config"
	"github.com/lavrov08/trainers-tinder/internal/session"
	"github.com/lavrov08/trainers-tinder/internal/usecase"
	"github.com/lavrov08/trainers-tinder/pkg/apperror"
	"github.com/lavrov08/trainers-tinder/pkg/logger"
)

type Bot struct {
	api          *tgbotapi.BotAPI
	cfg          *config.Config
	sessions     *session.Store
	accounts     *usecase.AccountUsecase
	registration *usecase.RegistrationUsecase
	browse       *usecase.BrowseUsecase
	moderation   *usecase.ModerationUsecase
}

type Deps struct {
	API          *tgbotapi.BotAPI
	Config       *config.Config
	Sessions     *session.Store
	Accounts     *usecase.AccountUsecase
	Registration *usecase.RegistrationUsecase
	Browse       *usecase.BrowseUsecase
	Moderation   *usecase.ModerationUsecase
}

func NewBot(deps Deps) *Bot {
	return &Bot{
		api:          deps.API,
		cfg:          deps.Config,
		sessions:     deps.Sessions,
		accounts:     deps.Accounts,
		registration: deps.Registration,
		browse:       deps.Browse,
		moderation:   deps.Moderation,
	}
}

// Run long-polls for updates until the context is cancelled. One update is
// handled at a time; each handler isolates its own errors, so no single
// user action can take the loop down.
func (b *Bot) Run(ctx context.Context) error {
	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = 30
	updates := b.api.GetUpdatesChan(updateCfg)

	logger.Log.Info("bot started", "username", b.api.Self.UserName)
	b.notifyStartup(ctx)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// notifyStartup tells every admin the bot is up. Best-effort.
func (b *Bot) notifyStartup(ctx context.Context) {
	for _, adminID := range b.cfg.AdminIDs {
		msg := tgbotapi.NewMessage(adminID, "Bot started!\n\nTrainers Tinder is ready.")
		if _, err := b.api.Send(msg); err != nil {
			logger.Log.Warn("startup notification failed", "admin_id", adminID, "error", err)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.onStart(ctx, msg)
		case "stats", "admin":
			b.onAdminPanel(ctx, msg)
		case "addlikes":
			b.onAddLikesCommand(ctx, msg)
		default:
			b.reply(msg.Chat.ID, "Unknown command. Use /start.")
		}
		return
	}

	if len(msg.Photo) > 0 {
		b.onPhotoMessage(ctx, msg)
		return
	}

	b.onTextMessage(ctx, msg)
}

// onTextMessage routes free text by the step the user's conversation is
// waiting on. Text outside any conversation is ignored with a hint.
func (b *Bot) onTextMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	step := b.registration.Step(userID)

	switch step {
	case session.StepName:
		b.onRegistrationInput(msg, b.registration.SetName(userID, msg.Text),
			"Nice to meet you!\n\nNow enter your age (a number):")
	case session.StepAge:
		b.onRegistrationInput(msg, b.registration.SetAge(userID, msg.Text),
			"Great!\n\nDescribe your experience as a trainer.\nFor example: \"5 years\", \"10+ years\", \"2 years in fitness\":")
	case session.StepExperience:
		b.onRegistrationInput(msg, b.registration.SetExperience(userID, msg.Text),
			"Excellent!\n\nNow tell clients about yourself:\n- Your achievements\n- How you work\n- Why clients should pick you\n- Your pricing\nBetween 20 and 1000 characters.\n\nImportant: do NOT include contact details or the profile will be rejected.")
	case session.StepAbout:
		b.onAboutInput(msg)
	case session.StepPhoto:
		b.replyWithKeyboard(msg.Chat.ID,
			"Please send a photo or press the skip button.", skipPhotoKeyboard())
	case session.StepCreditTarget:
		b.onCreditTargetInput(ctx, msg)
	case session.StepCreditAmount:
		b.onCreditAmountInput(ctx, msg)
	default:
		b.reply(msg.Chat.ID, "Use /start to open the menu.")
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	verb, arg := splitCallback(cb.Data)

	switch verb {
	case "role_client":
		b.onRoleClient(ctx, cb)
	case "role_trainer":
		b.onRoleTrainer(ctx, cb)

	case "trainer_direction":
		b.onTrainerDirection(ctx, cb, arg)
	case "skip_photo":
		b.onSkipPhoto(ctx, cb)

	case "client_direction":
		b.onClientDirection(ctx, cb, arg)
	case "next":
		b.onNavigate(ctx, cb, b.browse.Next)
	case "prev":
		b.onNavigate(ctx, cb, b.browse.Prev)
	case "like":
		b.onLike(ctx, cb, arg)
	case "already_liked":
		b.answerAlert(cb, "You already liked this trainer!")
	case "back_to_directions":
		b.onBackToDirections(ctx, cb)
	case "check_likes":
		b.onLikedPage(ctx, cb, "0")
	case "liked_page":
		b.onLikedPage(ctx, cb, arg)
	case "liked_profile":
		b.onLikedProfile(ctx, cb, arg)
	case "refill_likes":
		b.onRefill(ctx, cb)
	case "tariff":
		b.onTariff(ctx, cb, arg)
	case "cancel_refill":
		b.onCancelRefill(ctx, cb)

	case "approve":
		b.onApprove(ctx, cb, arg)
	case "reject":
		b.onReject(ctx, cb, arg)
	case "admin_stats":
		b.onAdminStats(ctx, cb)
	case "admin_trainers_by_direction":
		b.onAdminDirections(ctx, cb)
	case "admin_dir":
		b.onAdminDirection(ctx, cb, arg)
	case "admin_all_trainers":
		b.onAdminAllTrainers(ctx, cb)
	case "admin_trainer":
		b.onAdminTrainer(ctx, cb, arg, "")
	case "admin_trainer_dir":
		id, direction := splitCallback(arg)
		b.onAdminTrainer(ctx, cb, id, direction)
	case "admin_likes":
		b.onAdminLikes(ctx, cb, arg)
	case "admin_delete":
		b.onAdminDelete(ctx, cb, arg)
	case "confirm_delete":
		b.onConfirmDelete(ctx, cb, arg)
	case "admin_pending_trainers":
		b.onAdminPending(ctx, cb)
	case "admin_add_likes":
		b.onAdminAddLikes(ctx, cb)
	case "admin_cancel":
		b.onAdminCancel(ctx, cb)

	default:
		b.answer(cb, "")
	}
}

// splitCallback parses the colon-delimited "verb:argument" callback data.
func splitCallback(data string) (verb, arg string) {
	parts := strings.SplitN(data, ":", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}

func parseID(arg string) (int64, error) {
	return strconv.ParseInt(arg, 10, 64)
}

// reply sends plain text to a chat, logging delivery failures.
func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		logger.Log.Warn("reply failed", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) replyWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		logger.Log.Warn("reply failed", "chat_id", chatID, "error", err)
	}
}

// answer closes the callback spinner, optionally with a toast.
func (b *Bot) answer(cb *tgbotapi.CallbackQuery, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, text)); err != nil {
		logger.Log.Debug("callback answer failed", "error", err)
	}
}

// answerAlert shows a modal alert on the callback.
func (b *Bot) answerAlert(cb *tgbotapi.CallbackQuery, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallbackWithAlert(cb.ID, text)); err != nil {
		logger.Log.Debug("callback alert failed", "error", err)
	}
}

// editOrReply edits the callback's message in place, falling back to a new
// message when the original cannot be edited (e.g. it carries a photo).
func (b *Bot) editOrReply(cb *tgbotapi.CallbackQuery, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	chatID := cb.Message.Chat.ID
	if len(cb.Message.Photo) > 0 {
		deleteMessages(b.api, chatID, []int{cb.Message.MessageID})
		if kb != nil {
			b.replyWithKeyboard(chatID, text, *kb)
		} else {
			b.reply(chatID, text)
		}
		return
	}

	var err error
	if kb != nil {
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, cb.Message.MessageID, text, *kb)
		_, err = b.api.Send(edit)
	} else {
		edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, text)
		_, err = b.api.Send(edit)
	}
	if err != nil {
		logger.Log.Debug("message edit failed, sending new", "chat_id", chatID, "error", err)
		if kb != nil {
			b.replyWithKeyboard(chatID, text, *kb)
		} else {
			b.reply(chatID, text)
		}
	}
}

// userErr extracts a user-facing message from handler errors; anything
// that is not an AppError is logged and masked.
func userErr(err error) string {
	if appErr, ok := err.(*apperror.AppError); ok {
		if appErr.Err != nil {
			logger.Log.Error("handler error", "error", appErr.Err)
		}
		return appErr.Message
	}
	logger.Log.Error("handler error", "error", err)
	return "Something went wrong. Try again later."
}
