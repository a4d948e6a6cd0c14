package delivery

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
	"go.uber.org/zap"
)

const defaultPageSize = 50

type AdminHandler struct {
	ledger   ports.LedgerService
	payments ports.PaymentService
	log      *zap.SugaredLogger
}

func NewAdminHandler(ledger ports.LedgerService, payments ports.PaymentService, log *zap.SugaredLogger) *AdminHandler {
	return &AdminHandler{ledger: ledger, payments: payments, log: log}
}

// GET /admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ledger.Stats(r.Context())
	if err != nil {
		h.log.Errorw("stats query failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, stats)
}

// GET /admin/users?after_id=<telegram_id>&limit=<n>
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	afterID := parseInt64(r.URL.Query().Get("after_id"), 0)
	limit := int(parseInt64(r.URL.Query().Get("limit"), defaultPageSize))
	if limit <= 0 || limit > 200 {
		limit = defaultPageSize
	}

	users, err := h.ledger.ListUsers(r.Context(), afterID, limit)
	if err != nil {
		h.log.Errorw("users query failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	next := int64(0)
	if len(users) == limit {
		next = users[len(users)-1].TelegramID
	}
	writeJSON(w, map[string]any{"users": users, "next_after_id": next})
}

// GET /admin/payments/pending?after=<RFC3339>&limit=<n>
func (h *AdminHandler) PendingPayments(w http.ResponseWriter, r *http.Request) {
	after := time.Time{}
	if raw := r.URL.Query().Get("after"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, "invalid after timestamp", http.StatusBadRequest)
			return
		}
		after = parsed
	}
	limit := int(parseInt64(r.URL.Query().Get("limit"), defaultPageSize))
	if limit <= 0 || limit > 200 {
		limit = defaultPageSize
	}

	pending, err := h.payments.ListPending(r.Context(), after, limit)
	if err != nil {
		h.log.Errorw("pending payments query failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var nextAfter string
	if len(pending) == limit {
		nextAfter = pending[len(pending)-1].CreatedAt.Format(time.RFC3339)
	}
	writeJSON(w, map[string]any{"payments": pending, "next_after": nextAfter})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func parseInt64(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
