package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/operator/actions"
)

var ErrOperatorStopped = errors.New("operator: stopped")

// IOperatorDelegator is what services use to run mutations.
type IOperatorDelegator interface {
	Process(ctx context.Context, action actions.IAction) error
}

// OperatorDelegator owns the queue and the single Operator draining it, so
// ledger mutations are applied one at a time in arrival order.
type OperatorDelegator struct {
	store *ledger.Store
	log   logrus.FieldLogger
	queue chan ActionItem
	wg    sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

func NewOperatorDelegator(store *ledger.Store, queueSize int, log logrus.FieldLogger) *OperatorDelegator {
	if queueSize < 1 {
		queueSize = 1
	}
	return &OperatorDelegator{
		store: store,
		log:   log,
		queue: make(chan ActionItem, queueSize),
	}
}

func (d *OperatorDelegator) Start() {
	op := NewOperator(d.store, d.queue, d.log)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		op.Run()
	}()
	d.log.Info("OperatorDelegator.Start.started")
}

// Stop drains the queue and waits for the worker. Later calls to Process
// return ErrOperatorStopped.
func (d *OperatorDelegator) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
	d.log.Info("OperatorDelegator.Stop.stopped")
}

// Process queues action and returns its result. ctx can cancel the wait for a
// queue slot; once queued, only the worker decides whether the action runs,
// so the returned error always matches what was applied.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	resp := <-respCh
	return resp.err
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrOperatorStopped
	}
	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
