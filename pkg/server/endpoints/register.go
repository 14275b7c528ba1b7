package endpoints

import (
	"github.com/robohub/robohub/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterRoboticsEndpoints(srv)
	RegisterDashboardEndpoints(srv)
	RegisterAIEndpoints(srv)
	RegisterBlockchainEndpoints(srv)
	RegisterStatusEndpoints(srv)
}
