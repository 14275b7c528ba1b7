// Package store provides storage abstractions for the RoboHub server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database
// implementation. This enables easier testing with mocks and potential
// support for different storage backends.
//
// # Available Stores
//
//   - DevicesStore: device registration, lookup, status, and fleet stats
//   - UsersStore: account lookup and wallet linking
//   - TransactionsStore: payment records and aggregates
//   - HealthStore: database connectivity checks
//
// # Usage
//
//	devices := gorm.NewDevicesStore(db)
//	device, err := devices.FetchDevice(deviceID, userID)
//	if err != nil {
//	    if errors.Is(err, store.ErrDeviceNotFound) {
//	        // Handle not found
//	    }
//	}
package store
