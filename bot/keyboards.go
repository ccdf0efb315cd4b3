package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// defaultKeyboard is the reply keyboard offered on /start.
func defaultKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/prognosis"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/help"),
			tgbotapi.NewKeyboardButton("/about"),
			tgbotapi.NewKeyboardButton("/feedback"),
		),
	)
	kb.OneTimeKeyboard = true
	return kb
}

// routeMenu builds the inline keyboard for selecting a route; the
// button's callback data is the route name itself.
func routeMenu(routes []string) tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(routes))
	for _, route := range routes {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(route, route))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}
