package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/robohub/robohub/pkg/audit"
	"github.com/robohub/robohub/pkg/blockchain"
	"github.com/robohub/robohub/pkg/identity"
	"github.com/robohub/robohub/pkg/model"
	"github.com/robohub/robohub/pkg/server"
	"github.com/robohub/robohub/pkg/server/apierror"
	"github.com/robohub/robohub/pkg/server/store"
)

// NonceRequest asks for a nonce to sign
type NonceRequest struct {
	Address string `json:"address"`
}

// SignatureVerifyRequest carries a signed message for verification
type SignatureVerifyRequest struct {
	Address   string `json:"address"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

// LinkWalletRequest attaches a verified wallet to the account
type LinkWalletRequest struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
	Message   string `json:"message"`
}

// CreatePaymentRequest starts a payment
type CreatePaymentRequest struct {
	PaymentMethod string `json:"payment_method"`
	ProductType   string `json:"product_type"`
}

// PaymentResponse returns provider handles for a created payment
type PaymentResponse struct {
	PaymentID    string  `json:"payment_id"`
	ClientSecret *string `json:"client_secret,omitempty"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

// premiumPriceUSD is the flat price of the premium product
const premiumPriceUSD = 1.60

// RegisterBlockchainEndpoints registers the wallet and payment endpoints
func RegisterBlockchainEndpoints(s *server.Server) {
	service := s.Blockchain

	r := s.Router.PathPrefix("/api/blockchain").Subrouter()
	r.HandleFunc("/health", handleBlockchainHealth(service)).Methods("GET")
	r.HandleFunc("/nonce", handleNonce()).Methods("POST")
	r.HandleFunc("/verify-signature", handleVerifySignature(service)).Methods("POST")

	protected := r.NewRoute().Subrouter()
	protected.Use(s.Auth.Required)
	protected.HandleFunc("/link-wallet", handleLinkWallet(service, s.UsersStore)).Methods("POST")
	protected.HandleFunc("/transactions", handleListTransactions(s.TransactionsStore)).Methods("GET")
	protected.HandleFunc("/payment", handleCreatePayment(s.TransactionsStore)).Methods("POST")
	protected.HandleFunc("/verify-tx/{tx_hash}", handleVerifyTransaction(service, s.TransactionsStore)).Methods("GET")
	protected.HandleFunc("/balance", handleBalance(service, s.UsersStore)).Methods("GET")
}

func handleNonce() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body NonceRequest
		if err := decodeJSON(r, &body); err != nil {
			respondWithError(w, err)
			return
		}
		if !blockchain.IsValidAddress(body.Address) {
			respondWithError(w, apierror.New(apierror.ValidationError, "Invalid Ethereum address"))
			return
		}

		nonce := blockchain.GenerateNonce()
		respondWithData(w, map[string]string{
			"address": body.Address,
			"message": blockchain.SignMessage(nonce),
			"nonce":   nonce,
		})
	}
}

func handleVerifySignature(service *blockchain.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body SignatureVerifyRequest
		if err := decodeJSON(r, &body); err != nil {
			respondWithError(w, err)
			return
		}

		valid, err := service.VerifySignature(body.Message, body.Signature, body.Address)
		if err != nil {
			respondWithError(w, apierror.New(apierror.ValidationError, err.Error()))
			return
		}
		respondWithData(w, map[string]interface{}{
			"valid":   valid,
			"address": body.Address,
		})
	}
}

func handleLinkWallet(service *blockchain.Service, users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var body LinkWalletRequest
		if err := decodeJSON(r, &body); err != nil {
			respondWithError(w, err)
			return
		}

		valid, err := service.VerifySignature(body.Message, body.Signature, body.Address)
		if err != nil {
			respondWithError(w, apierror.New(apierror.ValidationError, err.Error()))
			return
		}
		if !valid {
			respondWithError(w, apierror.New(apierror.Unauthorized, "Invalid wallet signature"))
			return
		}

		if err := users.LinkWallet(id.UserID, body.Address); err != nil {
			if errors.Is(err, store.ErrWalletTaken) {
				respondWithError(w, apierror.New(apierror.Conflict, "Wallet already linked to another account"))
				return
			}
			respondWithError(w, apierror.New(apierror.DatabaseError, "failed to link wallet"))
			return
		}

		audit.Log(audit.WalletEvent{
			UserID:  id.UserID.String(),
			Address: body.Address,
			Success: true,
		})

		respondWithData(w, map[string]string{
			"message": "Wallet linked successfully",
			"address": body.Address,
		})
	}
}

func handleListTransactions(transactions store.TransactionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		limit := limitParam(r, 20, 100)
		offset := 0
		if raw := r.URL.Query().Get("offset"); raw != "" {
			fmt.Sscanf(raw, "%d", &offset)
		}

		filter := store.TransactionFilter{
			Status: r.URL.Query().Get("status"),
			Limit:  limit,
			Offset: offset,
		}
		list, err := transactions.ListTransactions(id.UserID, filter)
		if err != nil {
			respondWithError(w, apierror.New(apierror.DatabaseError, "failed to list transactions"))
			return
		}

		respondWithData(w, map[string]interface{}{
			"transactions": list,
			"count":        len(list),
			"limit":        limit,
			"offset":       offset,
		})
	}
}

func handleCreatePayment(transactions store.TransactionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var body CreatePaymentRequest
		if err := decodeJSON(r, &body); err != nil {
			respondWithError(w, err)
			return
		}
		if !model.ValidPaymentMethod(body.PaymentMethod) {
			respondWithError(w, apierror.New(apierror.ValidationError, "Invalid payment method"))
			return
		}

		paymentID := "pay_" + strings.ReplaceAll(uuid.New().String(), "-", "")

		tx := &model.Transaction{
			UserID:        id.UserID,
			Amount:        premiumPriceUSD,
			Currency:      "USD",
			PaymentMethod: body.PaymentMethod,
			PaymentID:     paymentID,
			Status:        model.TxPending,
			ProductType:   body.ProductType,
		}
		if err := transactions.CreateTransaction(tx); err != nil {
			respondWithError(w, apierror.New(apierror.DatabaseError, "failed to create payment"))
			return
		}

		// A real integration would fetch the client secret from the
		// payment provider.
		clientSecret := "cs_" + uuid.New().String()

		respondWithCreated(w, PaymentResponse{
			PaymentID:    paymentID,
			ClientSecret: &clientSecret,
			Amount:       premiumPriceUSD,
			Currency:     "USD",
		})
	}
}

func handleVerifyTransaction(service *blockchain.Service, transactions store.TransactionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		txHash := mux.Vars(r)["tx_hash"]

		status, err := service.VerifyTransaction(txHash)
		if err != nil {
			respondWithError(w, apierror.New(apierror.ValidationError, err.Error()))
			return
		}

		// Best effort bookkeeping; verification result stands either way.
		_ = transactions.AttachTxHash(id.UserID, txHash)

		respondWithData(w, status)
	}
}

func handleBalance(service *blockchain.Service, users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		user, err := users.FetchUser(id.UserID)
		if err != nil {
			respondWithError(w, apierror.New(apierror.DatabaseError, "failed to fetch account"))
			return
		}

		if !user.HasWallet() {
			respondWithData(w, map[string]interface{}{
				"message": "No wallet linked",
				"balance": nil,
			})
			return
		}

		balance, err := service.TokenBalance(*user.WalletAddress)
		if err != nil {
			respondWithError(w, apierror.New(apierror.ValidationError, err.Error()))
			return
		}
		respondWithData(w, balance)
	}
}

func handleBlockchainHealth(service *blockchain.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "available"
		if !service.Configured() {
			status = "not_configured"
		}
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"service": "blockchain",
			"status":  status,
			"features": map[string]bool{
				"wallet_verification": true,
				"transactions":        service.Configured(),
				"token_balance":       service.Configured(),
			},
		})
	}
}
