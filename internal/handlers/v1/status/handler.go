package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/simple-bank/internal/logging"
	"github.com/carson-networks/simple-bank/internal/storage/account"
)

type accountLister interface {
	List() []account.Account
}

type statusBody struct {
	Status   string `json:"status"`
	Accounts int    `json:"accounts"`
}

type Handler struct {
	Store accountLister
}

func NewHandler(store accountLister) Handler {
	return Handler{Store: store}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	count := len(h.Store.List())
	logData.AddData("accounts", count)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(statusBody{Status: "ok", Accounts: count})
}
