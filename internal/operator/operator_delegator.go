package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/simple-bank/internal/operator/actions"
	"github.com/carson-networks/simple-bank/internal/storage"
)

var ErrStopped = errors.New("operator stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	storage    *storage.AccountStore
	logger     *logrus.Logger
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once

	// mu guards stopped against sends on a closed queue.
	mu      sync.RWMutex
	stopped bool
}

func NewOperatorDelegator(s *storage.AccountStore, logger *logrus.Logger, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		storage:    s,
		logger:     logger,
		queue:      make(chan ActionItem, 1000),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.queue, d.logger)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop closes the queue and waits for queued items to finish.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()
		d.wg.Wait()
	})
}

// Process enqueues action and waits for its outcome.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
