package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/simple-bank/internal/operator/actions"
	"github.com/carson-networks/simple-bank/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	store  *storage.AccountStore
	queue  chan ActionItem
	logger *logrus.Logger
}

func NewOperator(s *storage.AccountStore, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		store:  s,
		queue:  queue,
		logger: logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	entry := o.logger.WithField("action", item.action.ActionName())

	writer, err := o.store.Write(item.ctx)
	if err != nil {
		entry.WithError(err).Warn("Operator.processItem.write unavailable")
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		_ = writer.Rollback()
		entry.WithError(err).Debug("Operator.processItem.rejected")
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(); err != nil {
		entry.WithError(err).Error("Operator.processItem.commit failed")
		item.response <- ActionItemResponse{err: err}
		return
	}

	entry.Debug("Operator.processItem.committed")
	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
