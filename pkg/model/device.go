package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Device statuses
const (
	DeviceOnline      = "online"
	DeviceOffline     = "offline"
	DeviceMaintenance = "maintenance"
)

// Device types
const (
	DeviceTypeDrone = "drone"
	DeviceTypeRobot = "robot"
	DeviceTypeRover = "rover"
)

// Device represents a registered robotics device
type Device struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	DeviceName      string          `gorm:"column:device_name;not null" json:"device_name"`
	DeviceType      string          `gorm:"column:device_type;not null" json:"device_type"`
	FirmwareVersion string          `gorm:"column:firmware_version" json:"firmware_version"`
	Status          string          `gorm:"column:status;not null" json:"status"`
	Metadata        json.RawMessage `gorm:"column:metadata;type:jsonb" json:"metadata"`
	LastSeen        *time.Time      `gorm:"column:last_seen" json:"last_seen,omitempty"`
	CreatedAt       time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

func (Device) TableName() string {
	return "devices"
}

func (d *Device) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.Status == "" {
		d.Status = DeviceOffline
	}
	if len(d.Metadata) == 0 {
		d.Metadata = json.RawMessage("{}")
	}
	return nil
}

// ValidDeviceType reports whether t is a supported device type.
func ValidDeviceType(t string) bool {
	switch t {
	case DeviceTypeDrone, DeviceTypeRobot, DeviceTypeRover:
		return true
	}
	return false
}

// ValidDeviceStatus reports whether s is a supported device status.
func ValidDeviceStatus(s string) bool {
	switch s {
	case DeviceOnline, DeviceOffline, DeviceMaintenance:
		return true
	}
	return false
}
