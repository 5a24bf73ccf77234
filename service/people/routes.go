package people

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/aayush-oza/fintrack-server/cmd/models"
	"github.com/aayush-oza/fintrack-server/cmd/utils"
	"github.com/gorilla/mux"
)

type PeopleHandler struct {
	store *Store
}

func NewPeopleHandler(store *Store) *PeopleHandler {
	return &PeopleHandler{store: store}
}

func (h *PeopleHandler) RegisterRoutes(router *mux.Router, auth utils.Middleware) {
	router.HandleFunc("/people", auth(h.GetEntries)).Methods("GET")
	router.HandleFunc("/people", auth(h.AddEntry)).Methods("POST")
	router.HandleFunc("/people/summary", auth(h.GetSummary)).Methods("GET")
	router.HandleFunc("/people/{id}", auth(h.EditEntry)).Methods("PUT")
	router.HandleFunc("/people/{id}", auth(h.DeleteEntry)).Methods("DELETE")
}

type entryResponse struct {
	ID          uint         `json:"id"`
	PersonName  string       `json:"person_name"`
	Amount      models.Money `json:"amount"`
	Type        string       `json:"type"`
	Description string       `json:"description"`
	Date        string       `json:"date"`
}

func (h *PeopleHandler) GetEntries(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(r)
	if err != nil {
		utils.WriteError(w, utils.ErrUnauthorized)
		return
	}

	entries, err := h.store.List(userID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	response := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, entryResponse{
			ID:          e.ID,
			PersonName:  e.PersonName,
			Amount:      e.Amount,
			Type:        e.Type,
			Description: e.Description,
			Date:        e.Date.Format(models.DateLayout),
		})
	}
	utils.WriteJSON(w, http.StatusOK, response)
}

func (h *PeopleHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
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

func (h *PeopleHandler) EditEntry(w http.ResponseWriter, r *http.Request) {
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

func (h *PeopleHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
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

// GetSummary returns each person's net position against the caller.
func (h *PeopleHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(r)
	if err != nil {
		utils.WriteError(w, utils.ErrUnauthorized)
		return
	}

	entries, err := h.store.List(userID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"people": Summarize(entries)})
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, utils.Invalid("invalid entry ID")
	}
	return uint(id), nil
}
