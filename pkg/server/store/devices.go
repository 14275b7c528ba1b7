package store

import (
	"errors"

	"github.com/google/uuid"

	"github.com/robohub/robohub/pkg/model"
)

// ErrDeviceNotFound is returned when a device doesn't exist or belongs
// to another user
var ErrDeviceNotFound = errors.New("device not found")

// DeviceFilter narrows device listings
type DeviceFilter struct {
	Status     string
	DeviceType string
}

// DeviceTypeCount pairs a device type with how many of them a user owns
type DeviceTypeCount struct {
	DeviceType string `json:"device_type"`
	Count      int64  `json:"count"`
}

// DeviceStats aggregates a user's device fleet
type DeviceStats struct {
	Total       int64             `json:"total"`
	Online      int64             `json:"online"`
	Offline     int64             `json:"offline"`
	Maintenance int64             `json:"maintenance"`
	ByType      []DeviceTypeCount `json:"by_type"`
}

// DevicesStore abstracts device storage operations
type DevicesStore interface {
	// ListDevices returns a user's devices, newest first, optionally
	// filtered by status and device type.
	ListDevices(userID uuid.UUID, filter DeviceFilter) ([]model.Device, error)

	// CountDevices returns how many devices a user owns.
	CountDevices(userID uuid.UUID) (int64, error)

	// CountAllDevices returns the platform-wide device count.
	CountAllDevices() (int64, error)

	// FetchDevice retrieves a device owned by the user.
	// Returns ErrDeviceNotFound if it doesn't exist or isn't theirs.
	FetchDevice(deviceID, userID uuid.UUID) (*model.Device, error)

	// CreateDevice registers a new device.
	CreateDevice(device *model.Device) error

	// UpdateDeviceStatus sets a device's status and refreshes last_seen.
	// Returns ErrDeviceNotFound if no matching device exists.
	UpdateDeviceStatus(deviceID, userID uuid.UUID, status string) error

	// DeleteDevice removes a device.
	// Returns ErrDeviceNotFound if no matching device exists.
	DeleteDevice(deviceID, userID uuid.UUID) error

	// DeviceStats aggregates counts for a user's fleet.
	DeviceStats(userID uuid.UUID) (*DeviceStats, error)

	// RecentDevices returns a user's most recently registered devices.
	RecentDevices(userID uuid.UUID, limit int) ([]model.Device, error)
}
