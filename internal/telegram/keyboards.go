package telegram

import (
	"fmt"

	"github.com/dmdipanshu/premium-sub-bot/internal/plans"
	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func kbUserMenu(isAdmin bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💳 Buy Subscription", "menu:buy"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📦 My Plan", "menu:my"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎁 Offers", "menu:offers"),
			tgbotapi.NewInlineKeyboardButtonData("📞 Contact Support", "menu:support"),
		),
	}
	if isAdmin {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛠 Admin Panel", "admin:menu"),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func kbPlans() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, p := range plans.All() {
		label := fmt.Sprintf("%s %s - %s", p.Emoji, p.Name, p.PriceLabel())
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, dataSelectPlan(p.Key)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func kbAfterPlan(planKey string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📤 I Paid — Send Screenshot", dataAskProof(planKey)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Choose Other Plan", "menu:buy"),
		),
	)
}

func kbAdminMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⌛ Pending Payments", "admin:pending"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👥 Users", "admin:users"),
			tgbotapi.NewInlineKeyboardButtonData("📊 Stats", "admin:stats"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📢 Broadcast", "admin:broadcast"),
		),
	)
}

// kbPaymentActions is the approve/deny affordance attached to a proof. The
// payment record carries user and plan, so the callback only needs the id.
func kbPaymentActions(p *ports.Payment) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Approve", dataDecide(ports.DecisionApprove, p.ID)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Deny", dataDecide(ports.DecisionDeny, p.ID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💬 Quick Reply", dataReplyHint(p.TelegramID)),
		),
	)
}
