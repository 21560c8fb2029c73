package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/operator/actions"
)

// Operator is the worker that applies queued actions to the ledger.
type Operator struct {
	store *ledger.Store
	queue chan ActionItem
	log   logrus.FieldLogger
}

func NewOperator(store *ledger.Store, queue chan ActionItem, log logrus.FieldLogger) *Operator {
	return &Operator{
		store: store,
		queue: queue,
		log:   log,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err := item.action.Perform(item.ctx, o.store)
	if err != nil {
		o.log.WithError(err).WithField("action", item.action.Name()).Debug("Operator.processItem.action failed")
	}
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
