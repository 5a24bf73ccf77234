package analytics

import (
	"net/http"

	"github.com/aayush-oza/fintrack-server/cmd/utils"
	"github.com/aayush-oza/fintrack-server/service/transactions"
	"github.com/gorilla/mux"
)

type AnalyticsHandler struct {
	store *transactions.Store
}

func NewAnalyticsHandler(store *transactions.Store) *AnalyticsHandler {
	return &AnalyticsHandler{store: store}
}

func (h *AnalyticsHandler) RegisterRoutes(router *mux.Router, auth utils.Middleware) {
	router.HandleFunc("/analytics", auth(h.GetAnalytics)).Methods("GET")
}

func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(r)
	if err != nil {
		utils.WriteError(w, utils.ErrUnauthorized)
		return
	}

	txns, err := h.store.List(userID, transactions.DateDesc)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, Aggregate(txns))
}
