package telegram

import (
	"context"
	"fmt"

	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// notifier implements ports.Notifier over the bot API. Per-call deadlines
// come from the bot's HTTP client timeout; the context is consulted before
// each request so cancelled batches stop promptly.
type notifier struct {
	bot    *tgbotapi.BotAPI
	admins []int64
	log    *zap.SugaredLogger
}

func NewNotifier(bot *tgbotapi.BotAPI, adminIDs []int64, log *zap.SugaredLogger) ports.Notifier {
	return &notifier{bot: bot, admins: adminIDs, log: log}
}

func (n *notifier) SendText(ctx context.Context, telegramID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := n.bot.Send(tgbotapi.NewMessage(telegramID, text))
	return err
}

func (n *notifier) SendPhoto(ctx context.Context, telegramID int64, fileID, caption string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	photo := tgbotapi.NewPhoto(telegramID, tgbotapi.FileID(fileID))
	photo.Caption = caption
	_, err := n.bot.Send(photo)
	return err
}

// NotifyProof shows the submitted screenshot to every admin with the
// approve/deny keyboard. Succeeds if at least one admin got it.
func (n *notifier) NotifyProof(ctx context.Context, p *ports.Payment, planName string) error {
	caption := fmt.Sprintf(
		"💵 Payment Proof %s\nFrom: %d\nSelected: %s",
		shortID(p.ID), p.TelegramID, planName,
	)

	var delivered int
	for _, adminID := range n.admins {
		if err := ctx.Err(); err != nil {
			return err
		}
		photo := tgbotapi.NewPhoto(adminID, tgbotapi.FileID(p.ProofFileID))
		photo.Caption = caption
		photo.ReplyMarkup = kbPaymentActions(p)
		if _, err := n.bot.Send(photo); err != nil {
			n.log.Warnw("proof delivery failed", "admin", adminID, "payment_id", p.ID, "err", err)
			continue
		}
		delivered++
	}
	if delivered == 0 {
		return fmt.Errorf("proof %s reached no admin", p.ID)
	}
	return nil
}

func (n *notifier) NotifyAdmins(ctx context.Context, text string) error {
	var delivered int
	for _, adminID := range n.admins {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := n.bot.Send(tgbotapi.NewMessage(adminID, text)); err != nil {
			n.log.Warnw("admin notice failed", "admin", adminID, "err", err)
			continue
		}
		delivered++
	}
	if delivered == 0 {
		return fmt.Errorf("notice reached no admin")
	}
	return nil
}

// shortID keeps captions readable; full ids stay in the keyboard payloads.
func shortID(id string) string {
	if len(id) > 8 {
		return "#" + id[:8]
	}
	return "#" + id
}
