package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/budget-tracker/internal/logging"
)

type ledgerCounter interface {
	AccountCount() int
}

type Handler struct {
	Ledger ledgerCounter
}

func NewHandler(ledger ledgerCounter) Handler {
	return Handler{Ledger: ledger}
}

type response struct {
	Status   string `json:"status"`
	Accounts int    `json:"accounts"`
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	accounts := h.Ledger.AccountCount()
	logData.AddData("accounts", accounts)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(response{Status: "ok", Accounts: accounts})
}
