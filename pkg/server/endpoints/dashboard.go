package endpoints

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/robohub/robohub/pkg/identity"
	"github.com/robohub/robohub/pkg/server"
	"github.com/robohub/robohub/pkg/server/apierror"
	"github.com/robohub/robohub/pkg/server/store"
)

// DashboardStats is the overview aggregate
type DashboardStats struct {
	Devices      *store.DeviceStats      `json:"devices"`
	Transactions *store.TransactionStats `json:"transactions"`
	Account      AccountStats            `json:"account"`
}

// AccountStats summarizes the requesting account
type AccountStats struct {
	IsVerified  bool   `json:"is_verified"`
	IsPremium   bool   `json:"is_premium"`
	HasWallet   bool   `json:"has_wallet"`
	MemberSince string `json:"member_since"`
}

// ActivityEntry is one item in the activity timeline
type ActivityEntry struct {
	ActivityType string                 `json:"activity_type"`
	Description  string                 `json:"description"`
	Timestamp    string                 `json:"timestamp"`
	Metadata     map[string]interface{} `json:"metadata"`
}

// RegisterDashboardEndpoints registers the dashboard aggregation endpoints
func RegisterDashboardEndpoints(s *server.Server) {
	r := s.Router.PathPrefix("/api/dashboard").Subrouter()

	// Public stats intentionally tolerate missing or invalid credentials.
	public := r.NewRoute().Subrouter()
	public.Use(s.Auth.Optional)
	public.HandleFunc("/public-stats", handlePublicStats(s.UsersStore, s.DevicesStore)).Methods("GET")

	protected := r.NewRoute().Subrouter()
	protected.Use(s.Auth.Required)
	protected.HandleFunc("/overview", handleOverview(s.DevicesStore, s.TransactionsStore, s.UsersStore)).Methods("GET")
	protected.HandleFunc("/activity", handleActivity(s.DevicesStore, s.TransactionsStore)).Methods("GET")
	protected.HandleFunc("/quick-stats", handleQuickStats(s.DevicesStore, s.TransactionsStore)).Methods("GET")
}

func handleOverview(devices store.DevicesStore, transactions store.TransactionsStore, users store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		deviceStats, err := devices.DeviceStats(id.UserID)
		if err != nil {
			respondWithError(w, apierror.New(apierror.DatabaseError, "failed to aggregate devices"))
			return
		}
		txStats, err := transactions.TransactionStats(id.UserID)
		if err != nil {
			respondWithError(w, apierror.New(apierror.DatabaseError, "failed to aggregate transactions"))
			return
		}
		user, err := users.FetchUser(id.UserID)
		if err != nil {
			respondWithError(w, apierror.New(apierror.DatabaseError, "failed to fetch account"))
			return
		}

		respondWithData(w, DashboardStats{
			Devices:      deviceStats,
			Transactions: txStats,
			Account: AccountStats{
				IsVerified:  user.IsVerified,
				IsPremium:   user.IsPremium,
				HasWallet:   user.HasWallet(),
				MemberSince: user.CreatedAt.Format("2006-01-02"),
			},
		})
	}
}

func handleActivity(devices store.DevicesStore, transactions store.TransactionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		limit := limitParam(r, 20, 100)

		activities := make([]ActivityEntry, 0, limit)

		recentDevices, err := devices.RecentDevices(id.UserID, limit/2)
		if err != nil {
			respondWithError(w, apierror.New(apierror.DatabaseError, "failed to fetch device activity"))
			return
		}
		for _, d := range recentDevices {
			activities = append(activities, ActivityEntry{
				ActivityType: "device",
				Description:  fmt.Sprintf("%s (%s) registered", d.DeviceName, d.DeviceType),
				Timestamp:    d.CreatedAt.Format(timestampLayout),
				Metadata: map[string]interface{}{
					"device_name": d.DeviceName,
					"device_type": d.DeviceType,
					"status":      d.Status,
				},
			})
		}

		recentTxs, err := transactions.RecentTransactions(id.UserID, limit/2)
		if err != nil {
			respondWithError(w, apierror.New(apierror.DatabaseError, "failed to fetch transaction activity"))
			return
		}
		for _, tx := range recentTxs {
			activities = append(activities, ActivityEntry{
				ActivityType: "transaction",
				Description:  fmt.Sprintf("%v %s %s - %s", tx.Amount, tx.Currency, tx.ProductType, tx.Status),
				Timestamp:    tx.CreatedAt.Format(timestampLayout),
				Metadata: map[string]interface{}{
					"amount":       tx.Amount,
					"currency":     tx.Currency,
					"status":       tx.Status,
					"product_type": tx.ProductType,
				},
			})
		}

		sort.Slice(activities, func(i, j int) bool {
			return activities[i].Timestamp > activities[j].Timestamp
		})
		if len(activities) > limit {
			activities = activities[:limit]
		}

		respondWithData(w, map[string]interface{}{
			"activities": activities,
			"count":      len(activities),
		})
	}
}

func handleQuickStats(devices store.DevicesStore, transactions store.TransactionsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		stats, err := devices.DeviceStats(id.UserID)
		if err != nil {
			respondWithError(w, apierror.New(apierror.DatabaseError, "failed to aggregate devices"))
			return
		}
		txStats, err := transactions.TransactionStats(id.UserID)
		if err != nil {
			respondWithError(w, apierror.New(apierror.DatabaseError, "failed to aggregate transactions"))
			return
		}

		respondWithData(w, map[string]interface{}{
			"devices":        stats.Total,
			"online_devices": stats.Online,
			"transactions":   txStats.Total,
		})
	}
}

func handlePublicStats(users store.UsersStore, devices store.DevicesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userCount, err := users.CountUsers()
		if err != nil {
			respondWithData(w, map[string]interface{}{
				"platform": platformName,
				"version":  platformVersion,
				"database": "unavailable",
			})
			return
		}
		deviceCount, _ := devices.CountAllDevices()

		respondWithData(w, map[string]interface{}{
			"total_users":   userCount,
			"total_devices": deviceCount,
			"platform":      platformName,
			"version":       platformVersion,
		})
	}
}

const timestampLayout = "2006-01-02T15:04:05Z07:00"

func limitParam(r *http.Request, fallback, max int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	if limit > max {
		return max
	}
	return limit
}
