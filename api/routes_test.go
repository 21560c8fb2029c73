package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-tracker/internal/ledger"
	"github.com/carson-networks/budget-tracker/internal/operator"
	"github.com/carson-networks/budget-tracker/internal/service"
	"github.com/carson-networks/budget-tracker/internal/storage/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := logrus.New()
	logger.Out = io.Discard

	store, err := ledger.Open(context.Background(), memory.NewStore())
	require.NoError(t, err)
	op := operator.NewOperatorDelegator(store, 10, logger)
	op.Start()
	t.Cleanup(op.Stop)

	rest := &Rest{
		Logger:  logger,
		Service: service.NewService(store, op),
		Ledger:  store,
	}
	server := httptest.NewServer(rest.Handler())
	t.Cleanup(server.Close)
	return server
}

func call(t *testing.T, server *httptest.Server, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&decoded)
	}
	return resp.StatusCode, decoded
}

func TestRoutes_Status(t *testing.T) {
	server := newTestServer(t)

	code, body := call(t, server, http.MethodGet, "/status", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestRoutes_LedgerFlow(t *testing.T) {
	server := newTestServer(t)

	code, account := call(t, server, http.MethodPost, "/v1/accounts", map[string]any{
		"name":           "A",
		"initialBalance": "100.00",
	})
	require.Equal(t, http.StatusCreated, code)
	accountID := account["id"].(string)

	code, _ = call(t, server, http.MethodPost, "/v1/transactions", map[string]any{
		"accountId":   accountID,
		"type":        "income",
		"amount":      "50.00",
		"description": "Pay",
	})
	require.Equal(t, http.StatusCreated, code)
	code, expense := call(t, server, http.MethodPost, "/v1/transactions", map[string]any{
		"accountId":   accountID,
		"type":        "expense",
		"amount":      "30.00",
		"description": "Food",
	})
	require.Equal(t, http.StatusCreated, code)

	code, got := call(t, server, http.MethodGet, "/v1/accounts/"+accountID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "120", got["balance"])

	code, summary := call(t, server, http.MethodGet, "/v1/summary", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "120", summary["totalBalance"])
	assert.Equal(t, "50", summary["totalIncome"])
	assert.Equal(t, "30", summary["totalExpenses"])

	code, _ = call(t, server, http.MethodDelete, "/v1/transactions/"+expense["id"].(string), nil)
	assert.Equal(t, http.StatusNoContent, code)

	code, deleted := call(t, server, http.MethodDelete, "/v1/accounts/"+accountID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, deleted["removedTransactions"])

	code, _ = call(t, server, http.MethodGet, "/v1/accounts/"+accountID, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, summary = call(t, server, http.MethodGet, "/v1/summary", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "0", summary["totalBalance"])
}

func TestRoutes_TransactionOnUnknownAccount(t *testing.T) {
	server := newTestServer(t)

	code, _ := call(t, server, http.MethodPost, "/v1/transactions", map[string]any{
		"accountId":   "nope",
		"amount":      "1",
		"description": "x",
	})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRoutes_PatchBackKeepsBalance(t *testing.T) {
	server := newTestServer(t)

	code, created := call(t, server, http.MethodPost, "/v1/accounts", map[string]any{
		"name":           "Jar",
		"initialBalance": "0.125",
	})
	require.Equal(t, http.StatusCreated, code)
	accountID := created["id"].(string)
	assert.Equal(t, "0.125", created["initialBalance"])

	code, got := call(t, server, http.MethodGet, "/v1/accounts/"+accountID, nil)
	require.Equal(t, http.StatusOK, code)

	code, patched := call(t, server, http.MethodPatch, "/v1/accounts/"+accountID, map[string]any{
		"initialBalance": got["initialBalance"],
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "0.125", patched["initialBalance"])
	assert.Equal(t, got["balance"], patched["balance"])
}

func TestRoutes_AmountCoercion(t *testing.T) {
	server := newTestServer(t)

	code, account := call(t, server, http.MethodPost, "/v1/accounts", map[string]any{
		"name":           "Wallet",
		"initialBalance": 40,
	})
	require.Equal(t, http.StatusCreated, code)
	accountID := account["id"].(string)
	assert.Equal(t, "40", account["initialBalance"])

	code, missing := call(t, server, http.MethodPost, "/v1/transactions", map[string]any{
		"accountId":   accountID,
		"description": "No amount",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "0", missing["amount"])

	code, numeric := call(t, server, http.MethodPost, "/v1/transactions", map[string]any{
		"accountId":   accountID,
		"type":        "expense",
		"amount":      12.5,
		"description": "Numeric",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "12.5", numeric["amount"])

	code, unparsable := call(t, server, http.MethodPost, "/v1/transactions", map[string]any{
		"accountId":   accountID,
		"amount":      "twelve",
		"description": "Text",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "0", unparsable["amount"])

	code, got := call(t, server, http.MethodGet, "/v1/accounts/"+accountID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "27.5", got["balance"])
}
