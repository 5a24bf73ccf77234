package transactions

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aayush-oza/fintrack-server/cmd/models"
	"github.com/aayush-oza/fintrack-server/cmd/utils"
	"github.com/gorilla/mux"
)

type TransactionHandler struct {
	store *Store
}

func NewTransactionHandler(store *Store) *TransactionHandler {
	return &TransactionHandler{store: store}
}

// RegisterRoutes registers transaction-related routes with Gorilla Mux.
func (h *TransactionHandler) RegisterRoutes(router *mux.Router, auth utils.Middleware) {
	router.HandleFunc("/transactions", auth(h.GetTransactions)).Methods("GET")
	router.HandleFunc("/add-transaction", auth(h.AddTransaction)).Methods("POST")
	router.HandleFunc("/edit-transaction/{id}", auth(h.EditTransaction)).Methods("PUT")
	router.HandleFunc("/delete-transaction/{id}", auth(h.DeleteTransaction)).Methods("DELETE")
}

type transactionResponse struct {
	ID          uint         `json:"id"`
	Amount      models.Money `json:"amount"`
	Type        string       `json:"type"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
	Mode        string       `json:"mode"`
	Date        string       `json:"date"`
}

func toResponse(t models.Transaction) transactionResponse {
	return transactionResponse{
		ID:          t.ID,
		Amount:      t.Amount,
		Type:        t.Type,
		Category:    t.Category,
		Description: t.Description,
		Mode:        t.Mode,
		Date:        t.Date.Format(models.DateLayout),
	}
}

// GetTransactions lists the caller's transactions, most recent first.
func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(r)
	if err != nil {
		utils.WriteError(w, utils.ErrUnauthorized)
		return
	}

	txns, err := h.store.List(userID, DateDesc)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	response := make([]transactionResponse, 0, len(txns))
	for _, t := range txns {
		response = append(response, toResponse(t))
	}
	utils.WriteJSON(w, http.StatusOK, response)
}

func (h *TransactionHandler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(r)
	if err != nil {
		utils.WriteError(w, utils.ErrUnauthorized)
		return
	}

	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, utils.Invalid("invalid request body"))
		return
	}

	if _, err := h.store.Create(userID, in); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteSuccess(w)
}

func (h *TransactionHandler) EditTransaction(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(r)
	if err != nil {
		utils.WriteError(w, utils.ErrUnauthorized)
		return
	}

	id, err := parseID(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, utils.Invalid("invalid request body"))
		return
	}

	if _, err := h.store.Update(userID, id, in); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteSuccess(w)
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(r)
	if err != nil {
		utils.WriteError(w, utils.ErrUnauthorized)
		return
	}

	id, err := parseID(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.store.Delete(userID, id); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteSuccess(w)
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, utils.Invalid("invalid transaction ID")
	}
	return uint(id), nil
}
