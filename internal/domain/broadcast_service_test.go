package domain

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestBroadcastTalliesPartialFailure(t *testing.T) {
	pages := [][]int64{{1, 2, 3}, {4, 5}}
	call := 0
	users := &stubUserRepo{
		listIDsFn: func(_ context.Context, afterID int64, _ int) ([]int64, error) {
			if call >= len(pages) {
				return nil, nil
			}
			page := pages[call]
			if call > 0 && afterID != pages[call-1][len(pages[call-1])-1] {
				t.Errorf("cursor = %d, want last id of previous page", afterID)
			}
			call++
			return page, nil
		},
	}
	notifier := &stubNotifier{
		sendTextFn: func(_ context.Context, telegramID int64, _ string) error {
			if telegramID == 3 {
				return errors.New("blocked by user")
			}
			return nil
		},
	}

	svc := NewBroadcastService(users, notifier, zap.NewNop().Sugar())
	svc.pause = 0

	report, err := svc.Send(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if report.Sent != 4 || report.Failed != 1 {
		t.Errorf("report = %+v, want 4 sent / 1 failed", report)
	}
}

func TestBroadcastListFailureIsFatal(t *testing.T) {
	users := &stubUserRepo{
		listIDsFn: func(context.Context, int64, int) ([]int64, error) {
			return nil, errors.New("db gone")
		},
	}
	svc := NewBroadcastService(users, &stubNotifier{}, zap.NewNop().Sugar())
	svc.pause = 0

	if _, err := svc.Send(context.Background(), "hello"); err == nil {
		t.Fatal("expected the listing error to surface")
	}
}
