package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmdipanshu/premium-sub-bot/internal/domain"
	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type fakeLedger struct {
	ports.LedgerService
	stats ports.LedgerStats
	users []*ports.User
}

func (f *fakeLedger) Stats(context.Context) (ports.LedgerStats, error) { return f.stats, nil }

func (f *fakeLedger) ListUsers(_ context.Context, afterID int64, limit int) ([]*ports.User, error) {
	var out []*ports.User
	for _, u := range f.users {
		if u.TelegramID > afterID {
			out = append(out, u)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakePayments struct {
	ports.PaymentService
	pending []*ports.Payment
}

func (f *fakePayments) ListPending(_ context.Context, after time.Time, limit int) ([]*ports.Payment, error) {
	var out []*ports.Payment
	for _, p := range f.pending {
		if p.CreatedAt.After(after) {
			out = append(out, p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func newTestRouter(ledger ports.LedgerService, payments ports.PaymentService) chi.Router {
	auth := domain.NewAuthService("hunter2", "topsecret")
	r := chi.NewRouter()
	RegisterRoutes(
		r,
		nil, // health handler is not exercised here, it needs a live db
		NewAuthHandler(auth),
		NewAdminHandler(ledger, payments, zap.NewNop().Sugar()),
		auth,
	)
	return r
}

func login(t *testing.T, r chi.Router) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"password":"hunter2"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d", rec.Code)
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return body.Token
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := newTestRouter(&fakeLedger{}, &fakePayments{})

	for _, path := range []string{"/admin/stats", "/admin/users", "/admin/payments/pending"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s without token: status = %d, want 401", path, rec.Code)
		}
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r := newTestRouter(&fakeLedger{}, &fakePayments{})

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"password":"wrong"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestStatsEndpoint(t *testing.T) {
	ledger := &fakeLedger{stats: ports.LedgerStats{TotalUsers: 7, Active: 4, Expired: 2, PendingPayments: 1}}
	r := newTestRouter(ledger, &fakePayments{})
	token := login(t, r)

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got ports.LedgerStats
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != ledger.stats {
		t.Errorf("stats = %+v, want %+v", got, ledger.stats)
	}
}

func TestUsersEndpointPaginates(t *testing.T) {
	ledger := &fakeLedger{users: []*ports.User{
		{TelegramID: 1}, {TelegramID: 2}, {TelegramID: 3},
	}}
	r := newTestRouter(ledger, &fakePayments{})
	token := login(t, r)

	req := httptest.NewRequest(http.MethodGet, "/admin/users?limit=2", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Users       []*ports.User `json:"users"`
		NextAfterID int64         `json:"next_after_id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Users) != 2 || body.NextAfterID != 2 {
		t.Errorf("page = %d users, next = %d, want 2 and 2", len(body.Users), body.NextAfterID)
	}
}

func TestPendingPaymentsRejectsBadCursor(t *testing.T) {
	r := newTestRouter(&fakeLedger{}, &fakePayments{})
	token := login(t, r)

	req := httptest.NewRequest(http.MethodGet, "/admin/payments/pending?after=notatime", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
