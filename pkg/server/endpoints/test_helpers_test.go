package endpoints

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/robohub/robohub/pkg/ai"
	"github.com/robohub/robohub/pkg/blockchain"
	"github.com/robohub/robohub/pkg/config"
	"github.com/robohub/robohub/pkg/server"
	"github.com/robohub/robohub/pkg/server/middleware"
	"github.com/robohub/robohub/pkg/token"
)

const testSecret = "unit-test-secret"

// testStores bundles the mocks wired into a test server
type testStores struct {
	Devices      *MockDevicesStore
	Users        *MockUsersStore
	Transactions *MockTransactionsStore
	Health       *MockHealthStore
}

// newTestServer assembles a server around mock stores, without a real
// database or listener.
func newTestServer(t *testing.T) (*server.Server, *testStores) {
	t.Helper()

	stores := &testStores{
		Devices:      NewMockDevicesStore(),
		Users:        NewMockUsersStore(),
		Transactions: NewMockTransactionsStore(),
		Health:       NewMockHealthStore(),
	}

	cfg := &config.Config{
		BindAddress:     "127.0.0.1",
		Port:            "0",
		JWTSecret:       testSecret,
		TokenTTLSeconds: 3600,
	}

	srv := &server.Server{
		Router:            mux.NewRouter(),
		Config:            cfg,
		Auth:              middleware.NewAuthenticator([]byte(testSecret)),
		DevicesStore:      stores.Devices,
		UsersStore:        stores.Users,
		TransactionsStore: stores.Transactions,
		HealthStore:       stores.Health,
		AI:                ai.NewService("", "", ""),
		Blockchain:        blockchain.NewService("", ""),
	}
	RegisterAll(srv)

	return srv, stores
}

// bearerFor issues a valid token for userID
func bearerFor(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	signed, err := token.Issue(userID.String(), role, time.Hour, []byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

// doRequest runs a request through the router and decodes the JSON body
func doRequest(t *testing.T, srv *server.Server, req *http.Request) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	recorder := httptest.NewRecorder()
	srv.Router.ServeHTTP(recorder, req)

	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(body) > 0 {
		require.NoError(t, json.Unmarshal(body, &decoded), "body: %s", body)
	}
	return recorder, decoded
}
