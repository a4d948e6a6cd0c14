package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	from := msg.From
	chatID := msg.Chat.ID

	if err := app.Ledger.EnsureUser(ctx, from.ID, ports.Profile{
		Username:  from.UserName,
		FirstName: from.FirstName,
		LastName:  from.LastName,
	}); err != nil {
		app.log.Errorw("ensure user failed", "telegram_id", from.ID, "err", err)
		app.sendText(chatID, MsgGenericError)
		return
	}

	switch {
	case msg.IsCommand():
		app.handleCommand(ctx, msg)

	case app.takeAwaitingBroadcast(from.ID) && msg.Text != "":
		app.runBroadcast(ctx, chatID, msg.Text)

	case len(msg.Photo) > 0 && !app.isAdmin(from.ID):
		app.handleProofPhoto(ctx, msg)

	case msg.Text != "" && !app.isAdmin(from.ID):
		app.handleSupportText(ctx, msg)
	}
}

func (app *BotApp) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		kb := kbUserMenu(app.isAdmin(msg.From.ID))
		app.sendScreen(chatID, app.cfg.WelcomeImage, MsgWelcome, &kb)

	case "reply":
		app.handleReplyCommand(ctx, msg)
	}
}

// handleReplyCommand relays "/reply <user_id> <text>" from an admin straight
// to the user. It bypasses the ticket record on purpose: tickets have no
// closure lifecycle.
func (app *BotApp) handleReplyCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if !app.isAdmin(msg.From.ID) {
		return
	}

	parts := strings.SplitN(msg.Text, " ", 3)
	if len(parts) < 3 {
		app.sendText(chatID, "Usage: /reply <user_id> <message>")
		return
	}
	target, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		app.sendText(chatID, "Usage: /reply <user_id> <message>")
		return
	}

	if _, err := app.bot.Send(tgbotapi.NewMessage(target, "📞 Support:\n"+parts[2])); err != nil {
		app.log.Warnw("support reply failed", "target", target, "err", err)
		app.sendText(chatID, "⚠️ Could not reach that user.")
		return
	}
	app.sendText(chatID, "✅ Sent.")
}

// handleProofPhoto turns an uploaded screenshot into a pending payment using
// the user's persisted plan selection.
func (app *BotApp) handleProofPhoto(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	from := msg.From.ID

	user, err := app.Ledger.GetUser(ctx, from)
	if err != nil {
		app.log.Errorw("load user failed", "telegram_id", from, "err", err)
		app.sendText(chatID, MsgGenericError)
		return
	}
	if user.SelectedPlan == nil || *user.SelectedPlan == "" {
		app.sendText(chatID, MsgNoPlanSelected)
		return
	}

	// largest size is last
	fileID := msg.Photo[len(msg.Photo)-1].FileID

	paymentID, err := app.Payments.Submit(ctx, from, *user.SelectedPlan, fileID)
	if err != nil {
		app.log.Errorw("proof submission failed", "telegram_id", from, "err", err)
		app.sendText(chatID, MsgGenericError)
		return
	}

	app.sendScreen(chatID, app.cfg.SuccessImage, MsgProofReceived, nil)

	if app.Archive != nil {
		go app.archiveProof(from, paymentID, fileID)
	}
}

func (app *BotApp) handleSupportText(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	id, err := app.Tickets.Open(ctx, msg.From.ID, msg.From.UserName, msg.Text)
	if err != nil {
		app.log.Errorw("ticket create failed", "telegram_id", msg.From.ID, "err", err)
		app.sendText(chatID, "❌ Failed to create support ticket. Please try again later.")
		return
	}
	app.sendText(chatID, fmt.Sprintf(MsgTicketFiled, id))
}

func (app *BotApp) takeAwaitingBroadcast(adminID int64) bool {
	if !app.isAdmin(adminID) {
		return false
	}
	app.mu.Lock()
	defer app.mu.Unlock()
	if !app.awaitingBroadcast[adminID] {
		return false
	}
	delete(app.awaitingBroadcast, adminID)
	return true
}

func (app *BotApp) setAwaitingBroadcast(adminID int64) {
	app.mu.Lock()
	app.awaitingBroadcast[adminID] = true
	app.mu.Unlock()
}

func (app *BotApp) runBroadcast(ctx context.Context, chatID int64, text string) {
	report, err := app.Broadcast.Send(ctx, text)
	if err != nil {
		app.log.Errorw("broadcast failed", "err", err)
		app.sendText(chatID, "Error occurred during broadcast.")
		return
	}
	app.sendText(chatID, fmt.Sprintf("📢 Broadcast done. Sent: %d, Failed: %d", report.Sent, report.Failed))
}
