// Package robohub provides a Go implementation of the RoboHub robotics platform backend.
//
// RoboHub is an IoT robotics platform that lets users register and control
// robotics devices (drones, robots, rovers), monitor fleet activity through a
// dashboard, use AI-assisted tooling, and link crypto wallets for payments.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: Data access interfaces and GORM implementations
//   - pkg/token: Bearer token issuing and verification
//   - pkg/server/middleware: Request authentication middleware
//   - pkg/identity: Request identity propagation
//   - pkg/robotics: Device command validation and telemetry
//   - pkg/ai: AI provider client
//   - pkg/blockchain: Wallet and transaction utilities
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/audit: Audit logging
//   - pkg/config: Configuration management
//
// # Quick Start
//
// The server is run via the robohubctl CLI:
//
//	# Run database migrations
//	robohubctl db migrate
//
//	# Start the server
//	robohubctl server
//
//	# Issue a token for testing
//	robohubctl token issue --subject <user-id> --role admin
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - JWT_SECRET: Secret used to sign and verify bearer tokens
//   - TOKEN_TTL_SECONDS: Token lifetime in seconds (default: 3600)
//   - ROBOHUB_LOG_LEVEL: Log level (debug, info, warn, error)
//   - PORT: Server port (default: 8000)
package main
