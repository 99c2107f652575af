package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"cardwise/internal/metrics"
	"cardwise/pkg/contextx"
	"cardwise/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type CatalogStore interface {
	Load(ctx context.Context) error
}

// CatalogReloader refreshes the card-rule snapshot on an interval. The store
// swaps the snapshot atomically, so a failed reload just keeps the previous
// catalog in place.
type CatalogReloader struct {
	store    CatalogStore
	recorder *metrics.Recorder
	interval time.Duration

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewCatalogReloader(store CatalogStore, recorder *metrics.Recorder, interval time.Duration) *CatalogReloader {
	return &CatalogReloader{
		store:    store,
		recorder: recorder,
		interval: interval,
	}
}

func (w *CatalogReloader) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("catalog reloader is already running")
	}

	reloadCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		w.run(reloadCtx)
	}()

	return nil
}

func (w *CatalogReloader) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *CatalogReloader) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

func (w *CatalogReloader) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger(ctx).Info("catalog reloader started")

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("catalog reloader stopped")
			return
		case <-ticker.C:
			w.reload(ctx)
		}
	}
}

func (w *CatalogReloader) reload(ctx context.Context) {
	if err := w.store.Load(ctx); err != nil {
		logger(ctx).Error("catalog reload failed, keeping previous snapshot", logx.Error(err))

		if w.recorder != nil {
			w.recorder.CatalogReload("error")
		}

		return
	}

	if w.recorder != nil {
		w.recorder.CatalogReload("ok")
	}
}
