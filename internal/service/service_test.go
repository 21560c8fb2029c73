package service

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/operator"
	"github.com/carson-networks/budget-tracker/internal/operator/actions"
	"github.com/carson-networks/budget-tracker/internal/storage/memory"
)

type mockOperatorDelegator struct {
	mock.Mock
}

func (m *mockOperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

// newTestLedger returns a store driven by a running single-worker operator.
func newTestLedger(t *testing.T) (*ledger.Store, *operator.OperatorDelegator) {
	t.Helper()
	store, err := ledger.Open(context.Background(), memory.NewStore())
	require.NoError(t, err)

	logger, _ := test.NewNullLogger()
	op := operator.NewOperatorDelegator(store, 10, logger)
	op.Start()
	t.Cleanup(op.Stop)
	return store, op
}
