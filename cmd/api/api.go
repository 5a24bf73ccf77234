package api

import (
	"log"
	"net/http"
	"os"

	"github.com/aayush-oza/fintrack-server/cmd/utils"
	"github.com/aayush-oza/fintrack-server/config"
	"github.com/aayush-oza/fintrack-server/service/analytics"
	"github.com/aayush-oza/fintrack-server/service/export"
	"github.com/aayush-oza/fintrack-server/service/ledger"
	"github.com/aayush-oza/fintrack-server/service/people"
	"github.com/aayush-oza/fintrack-server/service/transactions"
	"github.com/aayush-oza/fintrack-server/service/user"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type APIServer struct {
	address string
	db      *gorm.DB
	cfg     config.Config
}

func NewApiServer(address string, db *gorm.DB, cfg config.Config) *APIServer {
	return &APIServer{
		address: address,
		db:      db,
		cfg:     cfg,
	}
}

func (s *APIServer) Run() error {
	router := mux.NewRouter()

	router.HandleFunc("/health", handleHealth).Methods("GET")

	subrouter := router.PathPrefix("/api").Subrouter()

	resolver := utils.ResolverForMode(s.cfg.AuthMode, []byte(s.cfg.JWTSecret))
	auth := utils.RequireAuth(resolver)

	userHandler := user.NewHandler(s.db, s.cfg)
	userHandler.RegisterRoutes(subrouter)

	txStore := transactions.NewStore(s.db)
	transactions.NewTransactionHandler(txStore).RegisterRoutes(subrouter, auth)
	ledger.NewLedgerHandler(txStore).RegisterRoutes(subrouter, auth)
	analytics.NewAnalyticsHandler(txStore).RegisterRoutes(subrouter, auth)
	export.NewExportHandler(s.db, txStore).RegisterRoutes(subrouter, auth)

	peopleStore := people.NewStore(s.db)
	people.NewPeopleHandler(peopleStore).RegisterRoutes(subrouter, auth)

	cors := handlers.CORS(
		handlers.AllowedOrigins(s.cfg.CORSOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	)

	handler := utils.RequestID(handlers.LoggingHandler(os.Stdout, cors(router)))

	log.Println("Server running at", s.address)
	return http.ListenAndServe(s.address, handler)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
