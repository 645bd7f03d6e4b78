package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/eletrofluxo/storefront/internal/adapter/gateway"
	"github.com/eletrofluxo/storefront/internal/domain/model"
)

// StorefrontFacade exposes the subset of application functionality required by the watcher.
type StorefrontFacade interface {
	PendingPayments(ctx context.Context, limit int) ([]model.Payment, error)
	GatewayPayment(ctx context.Context, reference string) (*gateway.Payment, error)
	ApplyPaymentUpdate(ctx context.Context, orderNumber string, upd model.PaymentUpdate) (*model.Order, error)
}

// PaymentWatcher polls the payment gateway and reconciles order statuses concurrently.
type PaymentWatcher struct {
	facade       StorefrontFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Payment
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPaymentWatcher constructs the payment watcher worker pool.
func NewPaymentWatcher(facade StorefrontFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *PaymentWatcher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &PaymentWatcher{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Payment, batchSize*workers),
	}
}

// Start launches background processing.
func (w *PaymentWatcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.worker(runCtx)
	}

	w.wg.Add(1)
	go w.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (w *PaymentWatcher) Stop() {
	w.mu.Lock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *PaymentWatcher) dispatch(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.jobs)
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.fetchAndDispatch(ctx)
		}
	}
}

func (w *PaymentWatcher) fetchAndDispatch(ctx context.Context) {
	payments, err := w.facade.PendingPayments(ctx, w.batchSize)
	if err != nil {
		w.logger.Error("fetch pending payments failed", slog.String("error", err.Error()))
		return
	}
	for _, payment := range payments {
		select {
		case <-ctx.Done():
			return
		case w.jobs <- payment:
		}
	}
}

func (w *PaymentWatcher) worker(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case payment, ok := <-w.jobs:
			if !ok {
				return
			}
			w.handlePayment(ctx, payment)
		}
	}
}

func (w *PaymentWatcher) handlePayment(ctx context.Context, payment model.Payment) {
	result, err := w.facade.GatewayPayment(ctx, payment.GatewayReference)
	if err != nil {
		switch e := err.(type) {
		case gateway.TooManyRequestsError:
			w.logger.Warn("gateway rate limited", slog.Duration("retry_after", e.RetryAfter))
			time.Sleep(e.RetryAfter)
		default:
			if errors.Is(err, gateway.ErrPaymentNotFound) {
				return
			}
			w.logger.Error("gateway fetch failed", slog.String("order", payment.OrderNumber), slog.String("error", err.Error()))
		}
		return
	}

	status, ok := result.Status.PaymentStatus()
	if !ok {
		return
	}

	if _, err := w.facade.ApplyPaymentUpdate(ctx, payment.OrderNumber, model.PaymentUpdate{Status: status}); err != nil {
		w.logger.Error("apply payment update failed", slog.String("order", payment.OrderNumber), slog.String("error", err.Error()))
	}
}
