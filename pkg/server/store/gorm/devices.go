package gorm

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robohub/robohub/pkg/model"
	"github.com/robohub/robohub/pkg/server/store"
)

// Ensure DevicesStore implements store.DevicesStore
var _ store.DevicesStore = (*DevicesStore)(nil)

// DevicesStore implements store.DevicesStore using GORM
type DevicesStore struct {
	db *gorm.DB
}

// NewDevicesStore creates a new DevicesStore
func NewDevicesStore(db *gorm.DB) *DevicesStore {
	return &DevicesStore{db: db}
}

// ListDevices returns a user's devices, newest first
func (s *DevicesStore) ListDevices(userID uuid.UUID, filter store.DeviceFilter) ([]model.Device, error) {
	query := s.db.Where("user_id = ?", userID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DeviceType != "" {
		query = query.Where("device_type = ?", filter.DeviceType)
	}

	var devices []model.Device
	if err := query.Order("created_at DESC").Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

// CountDevices returns how many devices a user owns
func (s *DevicesStore) CountDevices(userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&model.Device{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountAllDevices returns the platform-wide device count
func (s *DevicesStore) CountAllDevices() (int64, error) {
	var count int64
	err := s.db.Model(&model.Device{}).Count(&count).Error
	return count, err
}

// FetchDevice retrieves a device owned by the user
func (s *DevicesStore) FetchDevice(deviceID, userID uuid.UUID) (*model.Device, error) {
	var device model.Device
	err := s.db.Where("id = ? AND user_id = ?", deviceID, userID).First(&device).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrDeviceNotFound
		}
		return nil, err
	}
	return &device, nil
}

// CreateDevice registers a new device
func (s *DevicesStore) CreateDevice(device *model.Device) error {
	return s.db.Create(device).Error
}

// UpdateDeviceStatus sets a device's status and refreshes last_seen
func (s *DevicesStore) UpdateDeviceStatus(deviceID, userID uuid.UUID, status string) error {
	result := s.db.Exec(
		`UPDATE devices SET status = ?, last_seen = NOW(), updated_at = NOW() WHERE id = ? AND user_id = ?`,
		status, deviceID, userID,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrDeviceNotFound
	}
	return nil
}

// DeleteDevice removes a device
func (s *DevicesStore) DeleteDevice(deviceID, userID uuid.UUID) error {
	result := s.db.Exec(`DELETE FROM devices WHERE id = ? AND user_id = ?`, deviceID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrDeviceNotFound
	}
	return nil
}

// DeviceStats aggregates counts for a user's fleet
func (s *DevicesStore) DeviceStats(userID uuid.UUID) (*store.DeviceStats, error) {
	stats := &store.DeviceStats{}

	type statusRow struct {
		Status string
		Count  int64
	}
	var statuses []statusRow
	err := s.db.Raw(
		`SELECT status, COUNT(*) AS count FROM devices WHERE user_id = ? GROUP BY status`,
		userID,
	).Scan(&statuses).Error
	if err != nil {
		return nil, err
	}
	for _, row := range statuses {
		stats.Total += row.Count
		switch row.Status {
		case model.DeviceOnline:
			stats.Online = row.Count
		case model.DeviceOffline:
			stats.Offline = row.Count
		case model.DeviceMaintenance:
			stats.Maintenance = row.Count
		}
	}

	var byType []store.DeviceTypeCount
	err = s.db.Raw(
		`SELECT device_type, COUNT(*) AS count FROM devices WHERE user_id = ? GROUP BY device_type`,
		userID,
	).Scan(&byType).Error
	if err != nil {
		return nil, err
	}
	stats.ByType = byType

	return stats, nil
}

// RecentDevices returns a user's most recently registered devices
func (s *DevicesStore) RecentDevices(userID uuid.UUID, limit int) ([]model.Device, error) {
	var devices []model.Device
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&devices).Error
	if err != nil {
		return nil, err
	}
	return devices, nil
}
