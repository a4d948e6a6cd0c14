package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendScreen sends an illustrated screen: a photo by URL with a caption and
// optional keyboard, falling back to plain text when the image reference is
// unset or the photo send fails.
func (app *BotApp) sendScreen(chatID int64, imageURL, caption string, kb *tgbotapi.InlineKeyboardMarkup) {
	if imageURL != "" {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(imageURL))
		photo.Caption = caption
		if kb != nil {
			photo.ReplyMarkup = *kb
		}
		if _, err := app.bot.Send(photo); err == nil {
			return
		} else {
			app.log.Debugw("photo screen failed, falling back to text", "chat_id", chatID, "err", err)
		}
	}

	msg := tgbotapi.NewMessage(chatID, caption)
	if kb != nil {
		msg.ReplyMarkup = *kb
	}
	if _, err := app.bot.Send(msg); err != nil {
		app.log.Warnw("screen send failed", "chat_id", chatID, "err", err)
	}
}

func (app *BotApp) sendText(chatID int64, text string) {
	if _, err := app.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		app.log.Warnw("send failed", "chat_id", chatID, "err", err)
	}
}

func (app *BotApp) sendTextKB(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := app.bot.Send(msg); err != nil {
		app.log.Warnw("send failed", "chat_id", chatID, "err", err)
	}
}
