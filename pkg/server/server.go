package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/robohub/robohub/pkg/ai"
	"github.com/robohub/robohub/pkg/blockchain"
	"github.com/robohub/robohub/pkg/config"
	"github.com/robohub/robohub/pkg/server/middleware"
	"github.com/robohub/robohub/pkg/server/store"
	gormstore "github.com/robohub/robohub/pkg/server/store/gorm"
)

// Server wires the router, stores, and services together
type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.Config
	Auth   *middleware.Authenticator

	DevicesStore      store.DevicesStore
	UsersStore        store.UsersStore
	TransactionsStore store.TransactionsStore
	HealthStore       store.HealthStore

	AI         *ai.Service
	Blockchain *blockchain.Service

	srv *http.Server
}

// NewServer creates a Server with stores backed by db and the handler
// chain (CORS, compression, request logging) applied.
func NewServer(cfg *config.Config, db *gorm.DB) *Server {
	router := mux.NewRouter().UseEncodedPath()

	handler := handlers.CompressHandler(router)
	handler = handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)(handler)
	handler = handlers.LoggingHandler(os.Stdout, handler)

	srv := &http.Server{
		Handler: handler,
		Addr:    cfg.Addr(),
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:            router,
		DB:                db,
		Config:            cfg,
		Auth:              middleware.NewAuthenticator([]byte(cfg.JWTSecret)),
		DevicesStore:      gormstore.NewDevicesStore(db),
		UsersStore:        gormstore.NewUsersStore(db),
		TransactionsStore: gormstore.NewTransactionsStore(db),
		HealthStore:       gormstore.NewHealthStore(db),
		AI:                ai.NewService(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel),
		Blockchain:        blockchain.NewService(cfg.Web3ProviderURL, cfg.ContractAddress),
		srv:               srv,
	}
}

// Start begins serving requests.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
