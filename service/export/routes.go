package export

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aayush-oza/fintrack-server/cmd/models"
	"github.com/aayush-oza/fintrack-server/cmd/utils"
	"github.com/aayush-oza/fintrack-server/service/transactions"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type ExportHandler struct {
	db    *gorm.DB
	store *transactions.Store
}

func NewExportHandler(db *gorm.DB, store *transactions.Store) *ExportHandler {
	return &ExportHandler{db: db, store: store}
}

func (h *ExportHandler) RegisterRoutes(router *mux.Router, auth utils.Middleware) {
	router.HandleFunc("/download-ledger", auth(h.DownloadLedger)).Methods("GET")
}

// DownloadLedger renders the caller's full ledger as a PDF attachment.
func (h *ExportHandler) DownloadLedger(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(r)
	if err != nil {
		utils.WriteError(w, utils.ErrUnauthorized)
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, utils.ErrUnauthorized)
			return
		}
		utils.WriteError(w, err)
		return
	}

	txns, err := h.store.List(userID, transactions.DateAsc)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	document, err := RenderPDF(BuildStatement(user, txns))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="ledger.pdf"`)
	w.Header().Set("Content-Length", fmt.Sprint(len(document)))
	w.Write(document)
}
