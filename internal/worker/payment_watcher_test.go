package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/eletrofluxo/storefront/internal/adapter/gateway"
	"github.com/eletrofluxo/storefront/internal/domain/model"
	testhelpers "github.com/eletrofluxo/storefront/internal/test"
)

func TestNewPaymentWatcherDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	watcher := NewPaymentWatcher(&testhelpers.WatcherFacadeStub{}, time.Second, 0, 0, logger)
	if watcher.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", watcher.batchSize)
	}
	if watcher.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", watcher.workers)
	}
}

func TestPaymentWatcherAppliesApprovedPayments(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.WatcherFacadeStub{
		Batches: [][]model.Payment{{{OrderNumber: "EF-0000000001", GatewayReference: "pref-1", Status: model.PaymentStatusPending}}},
	}
	watcher := NewPaymentWatcher(facade, 10*time.Millisecond, 1, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watcher.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		applied := len(facade.Applied) > 0
		facade.Unlock()
		if applied {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for payment reconciliation")
		case <-time.After(10 * time.Millisecond):
		}
	}

	watcher.Stop()
	facade.Lock()
	defer facade.Unlock()
	if facade.Applied[0].OrderNumber != "EF-0000000001" {
		t.Fatalf("unexpected order %q", facade.Applied[0].OrderNumber)
	}
	if facade.Applied[0].Update.Status != model.PaymentStatusPaid {
		t.Fatalf("expected paid status applied, got %q", facade.Applied[0].Update.Status)
	}
}

func TestPaymentWatcherHandlesRateLimiting(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	attempts := int32(0)
	facade := &testhelpers.WatcherFacadeStub{
		Batches: [][]model.Payment{
			{{OrderNumber: "EF-0000000001", GatewayReference: "pref-1"}},
			{{OrderNumber: "EF-0000000001", GatewayReference: "pref-1"}},
		},
		GatewayFn: func(ctx context.Context, reference string) (*gateway.Payment, error) {
			if atomic.AddInt32(&attempts, 1) == 1 {
				return nil, gateway.TooManyRequestsError{RetryAfter: 10 * time.Millisecond}
			}
			return &gateway.Payment{Reference: reference, Status: gateway.StatusApproved}, nil
		},
	}

	watcher := NewPaymentWatcher(facade, 5*time.Millisecond, 1, 1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watcher.Start(ctx)

	deadline := time.After(time.Second)
	for {
		facade.Lock()
		if len(facade.Applied) > 0 {
			facade.Unlock()
			break
		}
		facade.Unlock()
		select {
		case <-deadline:
			t.Fatal("timeout waiting for retry")
		case <-time.After(10 * time.Millisecond):
		}
	}
	watcher.Stop()
}

func TestPaymentWatcherSkipsUnsettledPayments(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	fetched := make(chan struct{}, 4)
	facade := &testhelpers.WatcherFacadeStub{
		Batches: [][]model.Payment{
			{{OrderNumber: "EF-0000000001", GatewayReference: "pref-1"}},
			{{OrderNumber: "EF-0000000002", GatewayReference: "pref-2"}},
		},
		GatewayFn: func(ctx context.Context, reference string) (*gateway.Payment, error) {
			select {
			case fetched <- struct{}{}:
			default:
			}
			if reference == "pref-1" {
				return nil, gateway.ErrPaymentNotFound
			}
			return &gateway.Payment{Reference: reference, Status: gateway.StatusPending}, nil
		},
	}

	watcher := NewPaymentWatcher(facade, 5*time.Millisecond, 1, 1, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watcher.Start(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-fetched:
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for gateway fetches")
		}
	}
	watcher.Stop()

	facade.Lock()
	defer facade.Unlock()
	if len(facade.Applied) != 0 {
		t.Fatalf("expected no updates for unsettled payments, got %+v", facade.Applied)
	}
}
