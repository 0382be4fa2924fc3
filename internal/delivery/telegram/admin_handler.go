package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lavrov08/trainers-tinder/internal/card"
	"github.com/lavrov08/trainers-tinder/internal/domain"
	"github.com/lavrov08/trainers-tinder/internal/session"
	"github.com/lavrov08/trainers-tinder/pkg/logger"
)

// onAdminPanel handles /stats (and its /admin alias): a short overview plus
// the panel keyboard.
func (b *Bot) onAdminPanel(ctx context.Context, msg *tgbotapi.Message) {
	adminID := msg.From.ID

	pending, err := b.moderation.ListPending(ctx, adminID)
	if err != nil {
		b.reply(msg.Chat.ID, userErr(err))
		return
	}
	approved, err := b.moderation.Overview(ctx, adminID)
	if err != nil {
		b.reply(msg.Chat.ID, userErr(err))
		return
	}

	var totalLikes int
	for _, t := range approved {
		totalLikes += t.LikeCount
	}
	text := fmt.Sprintf(
		"Admin panel\n\nApproved trainers: %d\nAwaiting moderation: %d\nTotal likes: %d",
		len(approved), len(pending), totalLikes)
	b.replyWithKeyboard(msg.Chat.ID, text, adminPanelKeyboard())
}

// onAdminStats re-renders the panel from a "Back" button.
func (b *Bot) onAdminStats(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	b.answer(cb, "")

	pending, err := b.moderation.ListPending(ctx, cb.From.ID)
	if err != nil {
		b.reply(cb.Message.Chat.ID, userErr(err))
		return
	}
	approved, err := b.moderation.Overview(ctx, cb.From.ID)
	if err != nil {
		b.reply(cb.Message.Chat.ID, userErr(err))
		return
	}

	var totalLikes int
	for _, t := range approved {
		totalLikes += t.LikeCount
	}
	text := fmt.Sprintf(
		"Admin panel\n\nApproved trainers: %d\nAwaiting moderation: %d\nTotal likes: %d",
		len(approved), len(pending), totalLikes)
	kb := adminPanelKeyboard()
	b.editOrReply(cb, text, &kb)
}

// onApprove finalizes the moderation card in place. A second press on an
// already-decided card re-runs the idempotent status update and simply
// re-annotates.
func (b *Bot) onApprove(ctx context.Context, cb *tgbotapi.CallbackQuery, arg string) {
	b.onDecision(ctx, cb, arg, true)
}

func (b *Bot) onReject(ctx context.Context, cb *tgbotapi.CallbackQuery, arg string) {
	b.onDecision(ctx, cb, arg, false)
}

func (b *Bot) onDecision(ctx context.Context, cb *tgbotapi.CallbackQuery, arg string, approve bool) {
	trainerID, err := parseID(arg)
	if err != nil {
		b.answer(cb, "")
		return
	}

	var trainer *domain.Trainer
	if approve {
		trainer, err = b.moderation.Approve(ctx, cb.From.ID, trainerID)
	} else {
		trainer, err = b.moderation.Reject(ctx, cb.From.ID, trainerID)
	}
	if err != nil {
		b.answerAlert(cb, userErr(err))
		return
	}

	verdict := "APPROVED"
	if !approve {
		verdict = "REJECTED"
	}
	b.answer(cb, verdict)
	b.annotateDecision(cb, fmt.Sprintf("%s: %s", verdict, trainer.Name))
}

// annotateDecision appends the verdict to the moderation card, removing its
// buttons. Editing also works for the other admins' copies when they press
// their own buttons.
func (b *Bot) annotateDecision(cb *tgbotapi.CallbackQuery, verdict string) {
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	var err error
	if len(cb.Message.Photo) > 0 {
		edit := tgbotapi.NewEditMessageCaption(chatID, messageID, cb.Message.Caption+"\n\n"+verdict)
		_, err = b.api.Send(edit)
	} else {
		edit := tgbotapi.NewEditMessageText(chatID, messageID, cb.Message.Text+"\n\n"+verdict)
		_, err = b.api.Send(edit)
	}
	if err != nil {
		logger.Log.Debug("decision annotation failed", "chat_id", chatID, "error", err)
		b.reply(chatID, verdict)
	}
}

// onAdminPending re-sends a moderation card for every profile still in the
// queue.
func (b *Bot) onAdminPending(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	b.answer(cb, "")

	pending, err := b.moderation.ListPending(ctx, cb.From.ID)
	if err != nil {
		b.reply(cb.Message.Chat.ID, userErr(err))
		return
	}
	if len(pending) == 0 {
		b.reply(cb.Message.Chat.ID, "No profiles awaiting moderation.")
		return
	}

	for i := range pending {
		t := &pending[i]
		kb := moderationKeyboard(t.ID)
		if _, err := sendPayloads(b.api, cb.Message.Chat.ID, card.Moderation(t), &kb); err != nil {
			logger.Log.Warn("pending card delivery failed",
				"trainer_id", t.ID, "error", err)
		}
	}
}

func (b *Bot) onAdminDirections(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	b.answer(cb, "")
	kb := adminDirectionsKeyboard(b.cfg.Directions)
	b.editOrReply(cb, "Pick a direction:", &kb)
}

func (b *Bot) onAdminDirection(ctx context.Context, cb *tgbotapi.CallbackQuery, direction string) {
	b.answer(cb, "")

	trainers, err := b.moderation.DirectionOverview(ctx, cb.From.ID, direction)
	if err != nil {
		b.reply(cb.Message.Chat.ID, userErr(err))
		return
	}
	if len(trainers) == 0 {
		kb := adminDirectionsKeyboard(b.cfg.Directions)
		b.editOrReply(cb, fmt.Sprintf("No approved trainers in %s.", direction), &kb)
		return
	}

	kb := directionTrainersKeyboard(trainers, direction)
	b.editOrReply(cb, fmt.Sprintf("%s: %d trainers", direction, len(trainers)), &kb)
}

func (b *Bot) onAdminAllTrainers(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	b.answer(cb, "")

	trainers, err := b.moderation.Overview(ctx, cb.From.ID)
	if err != nil {
		b.reply(cb.Message.Chat.ID, userErr(err))
		return
	}
	if len(trainers) == 0 {
		kb := adminPanelKeyboard()
		b.editOrReply(cb, "No approved trainers yet.", &kb)
		return
	}

	kb := allTrainersKeyboard(trainers)
	b.editOrReply(cb, fmt.Sprintf("All trainers: %d", len(trainers)), &kb)
}

// onAdminTrainer shows the full profile with the owner's contact and the
// management buttons. fromDirection threads the originating list through so
// "Back" lands where the admin came from.
func (b *Bot) onAdminTrainer(ctx context.Context, cb *tgbotapi.CallbackQuery, arg, fromDirection string) {
	trainerID, err := parseID(arg)
	if err != nil {
		b.answer(cb, "")
		return
	}
	b.answer(cb, "")

	trainer, likes, err := b.moderation.Detail(ctx, cb.From.ID, trainerID)
	if err != nil {
		b.reply(cb.Message.Chat.ID, userErr(err))
		return
	}

	payloads := card.Render(trainer, card.Options{
		Status: fmt.Sprintf("Status: %s\nLikes: %d", trainer.Status, len(likes)),
		Contact: fmt.Sprintf("Contact: %s\nUser ID: %d",
			card.ContactLine(trainer.Username, trainer.UserID), trainer.UserID),
	})
	kb := trainerDetailKeyboard(trainer.ID, fromDirection)
	deleteMessages(b.api, cb.Message.Chat.ID, []int{cb.Message.MessageID})
	if _, err := sendPayloads(b.api, cb.Message.Chat.ID, payloads, &kb); err != nil {
		logger.Log.Error("trainer detail delivery failed",
			"trainer_id", trainer.ID, "error", err)
	}
}

func (b *Bot) onAdminLikes(ctx context.Context, cb *tgbotapi.CallbackQuery, arg string) {
	trainerID, err := parseID(arg)
	if err != nil {
		b.answer(cb, "")
		return
	}
	b.answer(cb, "")

	trainer, likes, err := b.moderation.Detail(ctx, cb.From.ID, trainerID)
	if err != nil {
		b.reply(cb.Message.Chat.ID, userErr(err))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Likes for %s: %d\n", trainer.Name, len(likes))
	for i, like := range likes {
		fmt.Fprintf(&sb, "\n%d. %s (%s)",
			i+1, card.ContactLine(like.ClientUsername, like.ClientID),
			like.CreatedAt.Format("02.01.2006 15:04"))
	}
	kb := backToTrainerKeyboard(trainer.ID)
	b.editOrReply(cb, sb.String(), &kb)
}

func (b *Bot) onAdminDelete(ctx context.Context, cb *tgbotapi.CallbackQuery, arg string) {
	trainerID, err := parseID(arg)
	if err != nil {
		b.answer(cb, "")
		return
	}
	b.answer(cb, "")
	kb := confirmDeleteKeyboard(trainerID)
	b.editOrReply(cb, "Delete this profile and all of its likes?\n\nThis cannot be undone.", &kb)
}

func (b *Bot) onConfirmDelete(ctx context.Context, cb *tgbotapi.CallbackQuery, arg string) {
	trainerID, err := parseID(arg)
	if err != nil {
		b.answer(cb, "")
		return
	}

	trainer, err := b.moderation.Delete(ctx, cb.From.ID, trainerID)
	if err != nil {
		b.answerAlert(cb, userErr(err))
		return
	}
	b.answer(cb, "Deleted")
	kb := adminPanelKeyboard()
	b.editOrReply(cb, fmt.Sprintf("Profile %q deleted. The trainer was notified.", trainer.Name), &kb)
}

// onAddLikesCommand is the single-shot credit: /addlikes <@handle|id> <amount>.
func (b *Bot) onAddLikesCommand(ctx context.Context, msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) != 2 {
		b.reply(msg.Chat.ID, "Usage: /addlikes <@username or id> <amount>")
		return
	}
	amount, err := strconv.Atoi(args[1])
	if err != nil {
		b.reply(msg.Chat.ID, "The amount must be a positive integer.")
		return
	}
	b.creditLikes(ctx, msg.Chat.ID, msg.From.ID, args[0], amount)
}

// onAdminAddLikes starts the guided two-step credit conversation.
func (b *Bot) onAdminAddLikes(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if !b.cfg.IsAdmin(cb.From.ID) {
		b.answerAlert(cb, "You do not have access to this command.")
		return
	}
	b.answer(cb, "")

	sess := b.sessions.Get(cb.From.ID)
	*sess = session.Session{Step: session.StepCreditTarget}
	kb := cancelKeyboard()
	b.editOrReply(cb, "Who gets the likes?\n\nSend the client's @username or numeric id:", &kb)
}

func (b *Bot) onCreditTargetInput(ctx context.Context, msg *tgbotapi.Message) {
	sess := b.sessions.Get(msg.From.ID)
	sess.Credit.Target = strings.TrimSpace(msg.Text)
	sess.Step = session.StepCreditAmount
	b.replyWithKeyboard(msg.Chat.ID, "How many likes to add?", cancelKeyboard())
}

func (b *Bot) onCreditAmountInput(ctx context.Context, msg *tgbotapi.Message) {
	amount, err := strconv.Atoi(strings.TrimSpace(msg.Text))
	if err != nil {
		b.replyWithKeyboard(msg.Chat.ID, "Enter the amount as a positive integer:", cancelKeyboard())
		return
	}

	sess := b.sessions.Get(msg.From.ID)
	target := sess.Credit.Target
	b.sessions.Clear(msg.From.ID)

	b.creditLikes(ctx, msg.Chat.ID, msg.From.ID, target, amount)
}

func (b *Bot) creditLikes(ctx context.Context, chatID, adminID int64, target string, amount int) {
	result, err := b.moderation.CreditLikes(ctx, adminID, target, amount)
	if err != nil {
		b.reply(chatID, userErr(err))
		return
	}
	b.reply(chatID, fmt.Sprintf(
		"Done. %s got +%d likes.\nCurrent balance: %d likes.",
		card.ContactLine(result.Client.Username, result.Client.UserID),
		result.Added, result.Client.LikesCount))
}

func (b *Bot) onAdminCancel(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	b.answer(cb, "")
	b.sessions.Clear(cb.From.ID)
	kb := adminPanelKeyboard()
	b.editOrReply(cb, "Cancelled.", &kb)
}
