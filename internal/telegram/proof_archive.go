package telegram

import (
	"context"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// archiveProof downloads the screenshot from Telegram and stores a durable
// copy. Entirely best-effort: the payment already carries the file id, the
// archive URL is extra metadata.
func (app *BotApp) archiveProof(telegramID int64, paymentID, fileID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fileInfo, err := app.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		app.log.Warnw("proof file lookup failed", "payment_id", paymentID, "err", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileInfo.Link(app.bot.Token), nil)
	if err != nil {
		app.log.Warnw("proof download request failed", "payment_id", paymentID, "err", err)
		return
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		app.log.Warnw("proof download failed", "payment_id", paymentID, "err", err)
		return
	}
	defer resp.Body.Close()

	url, err := app.Archive.SaveProof(ctx, telegramID, paymentID, resp.Body, "image/jpeg")
	if err != nil {
		app.log.Warnw("proof archive failed", "payment_id", paymentID, "err", err)
		return
	}

	if err := app.PayRecords.SetProofURL(ctx, paymentID, url); err != nil {
		app.log.Warnw("proof url update failed", "payment_id", paymentID, "err", err)
		return
	}
	app.log.Infow("proof archived", "payment_id", paymentID, "url", url)
}
