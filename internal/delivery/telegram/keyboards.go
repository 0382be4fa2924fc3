package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/lavrov08/trainers-tinder/config"
	"github.com/lavrov08/trainers-tinder/internal/domain"
	"github.com/lavrov08/trainers-tinder/internal/usecase"
)

func roleKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("I am a client", "role_client"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("I am a trainer", "role_trainer"),
		),
	)
}

// directionsKeyboard lists the configured directions, one per row, with
// the given callback prefix.
func directionsKeyboard(directions []string, prefix string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, d := range directions {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(d, prefix+":"+d),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func trainerViewKeyboard(trainerID int64, total int, alreadyLiked bool) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	if alreadyLiked {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("You already liked this trainer", "already_liked"),
		))
	} else {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Like", fmt.Sprintf("like:%d", trainerID)),
		))
	}

	if total > 1 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Previous", "prev"),
			tgbotapi.NewInlineKeyboardButtonData("Next", "next"),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("My likes", "check_likes"),
		tgbotapi.NewInlineKeyboardButtonData("Refill", "refill_likes"),
	))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Back to directions", "back_to_directions"),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func skipPhotoKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Skip photo", "skip_photo"),
		),
	)
}

func moderationKeyboard(trainerID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Approve", fmt.Sprintf("approve:%d", trainerID)),
			tgbotapi.NewInlineKeyboardButtonData("Reject", fmt.Sprintf("reject:%d", trainerID)),
		),
	)
}

func adminPanelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Trainers by direction", "admin_trainers_by_direction"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("All trainers", "admin_all_trainers"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Credit likes", "admin_add_likes"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Pending profiles", "admin_pending_trainers"),
		),
	)
}

func adminDirectionsKeyboard(directions []string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, d := range directions {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(d, "admin_dir:"+d),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Back", "admin_stats"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// directionTrainersKeyboard lists a direction's trainers; the direction
// rides along in the callback so the detail view can link back.
func directionTrainersKeyboard(trainers []domain.TrainerWithLikes, direction string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, t := range trainers {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				t.Name,
				fmt.Sprintf("admin_trainer_dir:%d:%s", t.ID, direction),
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Back", "admin_trainers_by_direction"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func allTrainersKeyboard(trainers []domain.TrainerWithLikes) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, t := range trainers {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s (%s) - %d likes", t.Name, t.Direction, t.LikeCount),
				fmt.Sprintf("admin_trainer:%d", t.ID),
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Back to panel", "admin_stats"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func trainerDetailKeyboard(trainerID int64, fromDirection string) tgbotapi.InlineKeyboardMarkup {
	back := tgbotapi.NewInlineKeyboardButtonData("Back to list", "admin_all_trainers")
	if fromDirection != "" {
		back = tgbotapi.NewInlineKeyboardButtonData("Back to direction", "admin_dir:"+fromDirection)
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Likes", fmt.Sprintf("admin_likes:%d", trainerID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Delete profile", fmt.Sprintf("admin_delete:%d", trainerID)),
		),
		tgbotapi.NewInlineKeyboardRow(back),
	)
}

func confirmDeleteKeyboard(trainerID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Yes, delete", fmt.Sprintf("confirm_delete:%d", trainerID)),
			tgbotapi.NewInlineKeyboardButtonData("Cancel", fmt.Sprintf("admin_trainer:%d", trainerID)),
		),
	)
}

func backToTrainerKeyboard(trainerID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Back to profile", fmt.Sprintf("admin_trainer:%d", trainerID)),
		),
	)
}

func tariffKeyboard(tariffs []config.Tariff) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, t := range tariffs {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%d likes - %d", t.Likes, t.Price),
				fmt.Sprintf("tariff:%d", t.Likes),
			),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Cancel", "cancel_refill"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// likedListKeyboard lists the page's profiles plus page navigation when
// there is more than one page.
func likedListKeyboard(list *usecase.LikedList) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, t := range list.Entries {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%s (%s)", t.Name, t.Direction),
				fmt.Sprintf("liked_profile:%d", t.ID),
			),
		))
	}

	var nav []tgbotapi.InlineKeyboardButton
	if list.Page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Previous", fmt.Sprintf("liked_page:%d", list.Page-1)))
	}
	if list.Page < list.TotalPages-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next", fmt.Sprintf("liked_page:%d", list.Page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(nav...))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Back to directions", "back_to_directions"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func cancelKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Cancel", "admin_cancel"),
		),
	)
}
