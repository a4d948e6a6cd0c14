package telegram

import (
	"context"
	"sync"

	"github.com/dmdipanshu/premium-sub-bot/internal/config"
	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type BotApp struct {
	bot *tgbotapi.BotAPI
	cfg config.Config

	Ledger     ports.LedgerService
	Payments   ports.PaymentService
	Tickets    ports.TicketService
	Broadcast  ports.BroadcastService
	PayRecords ports.PaymentRepo
	// Archive is nil when the S3 proof archive is not configured.
	Archive ports.ProofArchive

	admins map[int64]bool
	log    *zap.SugaredLogger

	// awaitingBroadcast tracks which admin is mid broadcast-compose. Process
	// local and non-authoritative: losing it only means the admin taps the
	// button again.
	mu                sync.Mutex
	awaitingBroadcast map[int64]bool
}

func NewBotApp(
	bot *tgbotapi.BotAPI,
	cfg config.Config,
	ledger ports.LedgerService,
	payments ports.PaymentService,
	tickets ports.TicketService,
	broadcast ports.BroadcastService,
	payRecords ports.PaymentRepo,
	archive ports.ProofArchive,
	log *zap.SugaredLogger,
) *BotApp {
	admins := make(map[int64]bool)
	for _, id := range cfg.AdminIDList() {
		admins[id] = true
	}
	return &BotApp{
		bot:               bot,
		cfg:               cfg,
		Ledger:            ledger,
		Payments:          payments,
		Tickets:           tickets,
		Broadcast:         broadcast,
		PayRecords:        payRecords,
		Archive:           archive,
		admins:            admins,
		log:               log,
		awaitingBroadcast: make(map[int64]bool),
	}
}

func (app *BotApp) isAdmin(id int64) bool { return app.admins[id] }

// Run is the main update loop. Each update is handled on its own goroutine
// so a slow handler never blocks polling or the sweeper.
func (app *BotApp) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := app.bot.GetUpdatesChan(u)
	app.log.Infow("bot loop started", "username", app.bot.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			app.log.Info("bot loop stopping")
			app.bot.StopReceivingUpdates()
			return

		case update, ok := <-updates:
			if !ok {
				return
			}
			go app.routeUpdate(context.Background(), update)
		}
	}
}

func (app *BotApp) routeUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.From != nil:
		app.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil && update.CallbackQuery.From != nil:
		app.handleCallback(ctx, update.CallbackQuery)
	}
}
