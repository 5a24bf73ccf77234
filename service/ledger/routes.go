package ledger

import (
	"net/http"

	"github.com/aayush-oza/fintrack-server/cmd/utils"
	"github.com/aayush-oza/fintrack-server/service/transactions"
	"github.com/gorilla/mux"
)

type LedgerHandler struct {
	store *transactions.Store
}

func NewLedgerHandler(store *transactions.Store) *LedgerHandler {
	return &LedgerHandler{store: store}
}

func (h *LedgerHandler) RegisterRoutes(router *mux.Router, auth utils.Middleware) {
	router.HandleFunc("/ledger", auth(h.GetBalance)).Methods("GET")
}

// GetBalance returns the caller's closing ledger balance.
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(r)
	if err != nil {
		utils.WriteError(w, utils.ErrUnauthorized)
		return
	}

	txns, err := h.store.List(userID, transactions.DateAsc)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"balance": Balance(txns)})
}
