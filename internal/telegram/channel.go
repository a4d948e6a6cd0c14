package telegram

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// channelControl implements ports.ChannelControl for one restricted channel.
type channelControl struct {
	bot       *tgbotapi.BotAPI
	channelID int64
	log       *zap.SugaredLogger
}

func NewChannelControl(bot *tgbotapi.BotAPI, channelID int64, log *zap.SugaredLogger) ports.ChannelControl {
	return &channelControl{bot: bot, channelID: channelID, log: log}
}

// Grant creates a single-use invite link for the channel.
func (c *channelControl) Grant(ctx context.Context, telegramID int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cfg := tgbotapi.CreateChatInviteLinkConfig{
		ChatConfig:  tgbotapi.ChatConfig{ChatID: c.channelID},
		MemberLimit: 1,
	}
	resp, err := c.bot.Request(cfg)
	if err != nil {
		return "", fmt.Errorf("create invite link: %w", err)
	}

	var link struct {
		InviteLink string `json:"invite_link"`
	}
	if err := json.Unmarshal(resp.Result, &link); err != nil {
		return "", fmt.Errorf("decode invite link: %w", err)
	}
	if link.InviteLink == "" {
		return "", fmt.Errorf("empty invite link in response")
	}

	c.log.Infow("channel access granted", "telegram_id", telegramID)
	return link.InviteLink, nil
}

// Revoke bans then immediately unbans: the user is kicked but can rejoin
// with a fresh invite later.
func (c *channelControl) Revoke(ctx context.Context, telegramID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	member := tgbotapi.ChatMemberConfig{ChatID: c.channelID, UserID: telegramID}

	if _, err := c.bot.Request(tgbotapi.BanChatMemberConfig{ChatMemberConfig: member}); err != nil {
		return fmt.Errorf("ban member %d: %w", telegramID, err)
	}
	if _, err := c.bot.Request(tgbotapi.UnbanChatMemberConfig{ChatMemberConfig: member, OnlyIfBanned: true}); err != nil {
		return fmt.Errorf("unban member %d: %w", telegramID, err)
	}

	c.log.Infow("channel access revoked", "telegram_id", telegramID)
	return nil
}
