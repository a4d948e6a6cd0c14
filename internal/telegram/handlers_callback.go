package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmdipanshu/premium-sub-bot/internal/domain"
	"github.com/dmdipanshu/premium-sub-bot/internal/plans"
	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const adminPageSize = 25

func (app *BotApp) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	tgID := cb.From.ID
	chatID := cb.Message.Chat.ID

	// always answer Telegram so the button stops spinning
	if _, err := app.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		app.log.Debugw("callback ack failed", "err", err)
	}

	action, err := ParseAction(cb.Data)
	if err != nil {
		app.log.Warnw("bad callback data", "telegram_id", tgID, "data", cb.Data)
		app.sendText(chatID, MsgGenericError)
		return
	}

	switch action.Kind {
	case ActionMenuBuy:
		kb := kbPlans()
		app.sendScreen(chatID, app.cfg.PlansImage, MsgPickPlan, &kb)

	case ActionMenuMy:
		app.showMyPlan(ctx, chatID, tgID)

	case ActionMenuSupport:
		app.sendText(chatID, MsgSupportIntro)

	case ActionMenuOffers:
		app.sendScreen(chatID, app.cfg.OffersImage, MsgOffers, nil)

	case ActionSelectPlan:
		app.showPaymentScreen(ctx, chatID, tgID, action.PlanKey)

	case ActionAskProof:
		app.askForProof(ctx, chatID, tgID, action.PlanKey)

	case ActionAdminMenu:
		if !app.requireAdmin(cb) {
			return
		}
		app.sendTextKB(chatID, "🛠 Admin Panel", kbAdminMenu())

	case ActionAdminPending:
		if !app.requireAdmin(cb) {
			return
		}
		app.showPendingPayments(ctx, chatID)

	case ActionAdminUsers:
		if !app.requireAdmin(cb) {
			return
		}
		app.showUsers(ctx, chatID)

	case ActionAdminStats:
		if !app.requireAdmin(cb) {
			return
		}
		app.showStats(ctx, chatID)

	case ActionAdminBroadcast:
		if !app.requireAdmin(cb) {
			return
		}
		app.setAwaitingBroadcast(tgID)
		app.sendText(chatID, MsgBroadcastAsk)

	case ActionDecidePayment:
		if !app.requireAdmin(cb) {
			return
		}
		app.decidePayment(ctx, cb, action)

	case ActionReplyHint:
		if !app.requireAdmin(cb) {
			return
		}
		app.sendText(chatID, fmt.Sprintf("Reply with:\n/reply %d <message>", action.UserID))

	default:
		app.sendText(chatID, MsgGenericError)
	}
}

// requireAdmin answers with an alert when the actor is not an admin.
func (app *BotApp) requireAdmin(cb *tgbotapi.CallbackQuery) bool {
	if app.isAdmin(cb.From.ID) {
		return true
	}
	alert := tgbotapi.NewCallbackWithAlert(cb.ID, MsgAdminsOnly)
	if _, err := app.bot.Request(alert); err != nil {
		app.log.Debugw("admin alert failed", "err", err)
	}
	return false
}

func (app *BotApp) showMyPlan(ctx context.Context, chatID, tgID int64) {
	user, err := app.Ledger.GetUser(ctx, tgID)
	if err != nil {
		app.log.Errorw("load user failed", "telegram_id", tgID, "err", err)
		app.sendText(chatID, MsgGenericError)
		return
	}
	if user.Status != ports.StatusActive {
		app.sendText(chatID, MsgNoActivePlan)
		return
	}

	app.sendText(chatID, fmt.Sprintf(
		"📦 My Plan\nPlan: %s\nStart: %s\nEnd:   %s\nStatus: %s",
		plans.NameOrDash(user.PlanKey),
		fmtTime(user.StartAt),
		fmtTime(user.EndAt),
		user.Status,
	))
}

// showPaymentScreen persists the selection and shows the QR payment screen.
func (app *BotApp) showPaymentScreen(ctx context.Context, chatID, tgID int64, planKey string) {
	plan, ok := plans.ByKey(planKey)
	if !ok {
		app.sendText(chatID, "Invalid plan selected.")
		return
	}

	if err := app.Ledger.SelectPlan(ctx, tgID, planKey); err != nil {
		app.log.Errorw("select plan failed", "telegram_id", tgID, "err", err)
		app.sendText(chatID, MsgGenericError)
		return
	}

	caption := fmt.Sprintf(
		"✅ %s\n💰 %s\n\n📲 Pay UPI: %s\nOr scan this QR.\n\nThen tap I Paid — Send Screenshot and upload your proof.",
		plan.Name, plan.PriceLabel(), app.cfg.UPIID,
	)
	kb := kbAfterPlan(planKey)
	app.sendScreen(chatID, app.cfg.QRCodeURL, caption, &kb)
}

func (app *BotApp) askForProof(ctx context.Context, chatID, tgID int64, planKey string) {
	plan, ok := plans.ByKey(planKey)
	if !ok {
		app.sendText(chatID, "Invalid plan selected.")
		return
	}
	if err := app.Ledger.SelectPlan(ctx, tgID, planKey); err != nil {
		app.log.Errorw("select plan failed", "telegram_id", tgID, "err", err)
		app.sendText(chatID, MsgGenericError)
		return
	}
	app.sendText(chatID, fmt.Sprintf(MsgSendProof, plan.Name))
}

func (app *BotApp) decidePayment(ctx context.Context, cb *tgbotapi.CallbackQuery, action Action) {
	chatID := cb.Message.Chat.ID

	res, err := app.Payments.Decide(ctx, action.PaymentID, action.Decision, cb.From.ID)
	switch {
	case errors.Is(err, domain.ErrAlreadyDecided):
		app.sendText(chatID, MsgAlreadyDecided)
		return
	case errors.Is(err, domain.ErrPaymentNotFound):
		app.sendText(chatID, MsgPaymentNotFound)
		return
	case errors.Is(err, domain.ErrNotAuthorized):
		app.sendText(chatID, MsgAdminsOnly)
		return
	case err != nil:
		app.log.Errorw("decide failed",
			"payment_id", action.PaymentID, "decision", action.Decision, "err", err)
		app.sendText(chatID, MsgGenericError)
		return
	}

	// retire the approve/deny buttons on the proof message
	if _, err := app.bot.Request(tgbotapi.NewEditMessageReplyMarkup(
		chatID, cb.Message.MessageID, tgbotapi.InlineKeyboardMarkup{
			InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
		},
	)); err != nil {
		app.log.Debugw("keyboard cleanup failed", "err", err)
	}

	p := res.Payment
	if action.Decision == ports.DecisionApprove {
		app.sendText(chatID, fmt.Sprintf(
			"✅ Approved payment %s for user %d → %s",
			shortID(p.ID), p.TelegramID, plans.NameOrDash(&p.PlanKey),
		))
	} else {
		app.sendText(chatID, fmt.Sprintf(
			"❌ Denied payment %s for user %d.",
			shortID(p.ID), p.TelegramID,
		))
	}
}

func (app *BotApp) showPendingPayments(ctx context.Context, chatID int64) {
	pending, err := app.Payments.ListPending(ctx, time.Time{}, adminPageSize)
	if err != nil {
		app.log.Errorw("list pending failed", "err", err)
		app.sendText(chatID, MsgGenericError)
		return
	}
	if len(pending) == 0 {
		app.sendText(chatID, "✅ No pending payments.")
		return
	}

	for _, p := range pending {
		caption := fmt.Sprintf(
			"💵 Payment %s from %d (pending)\nSelected: %s",
			shortID(p.ID), p.TelegramID, plans.NameOrDash(&p.PlanKey),
		)
		app.sendTextKB(chatID, caption, kbPaymentActions(p))
	}
}

func (app *BotApp) showUsers(ctx context.Context, chatID int64) {
	users, err := app.Ledger.ListUsers(ctx, 0, adminPageSize)
	if err != nil {
		app.log.Errorw("list users failed", "err", err)
		app.sendText(chatID, MsgGenericError)
		return
	}
	if len(users) == 0 {
		app.sendText(chatID, "No users yet.")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👥 Users (first %d)\n", adminPageSize)
	for _, u := range users {
		name := u.Username
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(&b, "%d @%s | %s | %s | %s\n",
			u.TelegramID, name, plans.NameOrDash(u.PlanKey), fmtTime(u.EndAt), u.Status)
	}
	text := b.String()
	if len(text) > 4000 { // Telegram message limit
		text = text[:4000] + "..."
	}
	app.sendText(chatID, text)
}

func (app *BotApp) showStats(ctx context.Context, chatID int64) {
	stats, err := app.Ledger.Stats(ctx)
	if err != nil {
		app.log.Errorw("stats failed", "err", err)
		app.sendText(chatID, MsgGenericError)
		return
	}
	app.sendText(chatID, fmt.Sprintf(
		"📊 Stats\nUsers: %d\nActive: %d\nExpired: %d\nPending payments: %d",
		stats.TotalUsers, stats.Active, stats.Expired, stats.PendingPayments,
	))
}
