package endpoints

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/robohub/robohub/pkg/audit"
	"github.com/robohub/robohub/pkg/identity"
	"github.com/robohub/robohub/pkg/model"
	"github.com/robohub/robohub/pkg/robotics"
	"github.com/robohub/robohub/pkg/server"
	"github.com/robohub/robohub/pkg/server/apierror"
	"github.com/robohub/robohub/pkg/server/store"
)

// maxDevicesPerUser caps a single account's fleet size
const maxDevicesPerUser = 10

// RegisterDeviceRequest is the body for device registration
type RegisterDeviceRequest struct {
	DeviceName      string `json:"device_name"`
	DeviceType      string `json:"device_type"`
	FirmwareVersion string `json:"firmware_version"`
}

// CommandRequest is the body for device command dispatch
type CommandRequest struct {
	Command    string                 `json:"command"`
	Parameters map[string]interface{} `json:"parameters"`
}

// StatusUpdateRequest is the body for device status changes
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// RegisterRoboticsEndpoints registers the device management endpoints
func RegisterRoboticsEndpoints(s *server.Server) {
	devices := s.DevicesStore

	r := s.Router.PathPrefix("/api/robotics").Subrouter()
	r.HandleFunc("/health", handleRoboticsHealth()).Methods("GET")

	protected := r.NewRoute().Subrouter()
	protected.Use(s.Auth.Required)
	protected.HandleFunc("/devices", handleListDevices(devices)).Methods("GET")
	protected.HandleFunc("/devices", handleRegisterDevice(devices)).Methods("POST")
	protected.HandleFunc("/devices/{device_id}", handleGetDevice(devices)).Methods("GET")
	protected.HandleFunc("/devices/{device_id}", handleDeleteDevice(devices)).Methods("DELETE")
	protected.HandleFunc("/devices/{device_id}/command", handleSendCommand(devices)).Methods("POST")
	protected.HandleFunc("/devices/{device_id}/status", handleUpdateStatus(devices)).Methods("PATCH")
	protected.HandleFunc("/devices/{device_id}/telemetry", handleGetTelemetry(devices)).Methods("GET")
}

func handleRegisterDevice(devices store.DevicesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		var body RegisterDeviceRequest
		if err := decodeJSON(r, &body); err != nil {
			respondWithError(w, err)
			return
		}

		if !model.ValidDeviceType(body.DeviceType) {
			respondWithError(w, apierror.Newf(apierror.ValidationError,
				"invalid device type, must be one of: %v", robotics.SupportedDeviceTypes()))
			return
		}
		if body.DeviceName == "" {
			respondWithError(w, apierror.New(apierror.ValidationError, "device_name is required"))
			return
		}

		count, err := devices.CountDevices(id.UserID)
		if err != nil {
			respondWithError(w, apierror.New(apierror.DatabaseError, "failed to count devices"))
			return
		}
		if count >= maxDevicesPerUser {
			respondWithError(w, apierror.Newf(apierror.BadRequest,
				"maximum device limit reached (%d)", maxDevicesPerUser))
			return
		}

		device := &model.Device{
			UserID:          id.UserID,
			DeviceName:      body.DeviceName,
			DeviceType:      body.DeviceType,
			FirmwareVersion: body.FirmwareVersion,
			Status:          model.DeviceOffline,
		}
		if err := devices.CreateDevice(device); err != nil {
			respondWithError(w, apierror.New(apierror.DatabaseError, "failed to register device"))
			return
		}

		logrus.WithFields(logrus.Fields{
			"device_id": device.ID,
			"user_id":   id.UserID,
		}).Info("Device registered")

		respondWithCreated(w, device)
	}
}

func handleListDevices(devices store.DevicesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		filter := store.DeviceFilter{
			Status:     r.URL.Query().Get("status"),
			DeviceType: r.URL.Query().Get("device_type"),
		}
		list, err := devices.ListDevices(id.UserID, filter)
		if err != nil {
			respondWithError(w, apierror.New(apierror.DatabaseError, "failed to list devices"))
			return
		}

		respondWithData(w, map[string]interface{}{
			"devices": list,
			"count":   len(list),
		})
	}
}

func handleGetDevice(devices store.DevicesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		deviceID, err := deviceIDVar(r)
		if err != nil {
			respondWithError(w, err)
			return
		}

		device, err := devices.FetchDevice(deviceID, id.UserID)
		if err != nil {
			respondWithError(w, deviceStoreError(err))
			return
		}
		respondWithData(w, device)
	}
}

func handleSendCommand(devices store.DevicesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		deviceID, err := deviceIDVar(r)
		if err != nil {
			respondWithError(w, err)
			return
		}

		var body CommandRequest
		if err := decodeJSON(r, &body); err != nil {
			respondWithError(w, err)
			return
		}

		device, err := devices.FetchDevice(deviceID, id.UserID)
		if err != nil {
			respondWithError(w, deviceStoreError(err))
			return
		}

		if device.Status != model.DeviceOnline {
			respondWithError(w, apierror.Newf(apierror.BadRequest,
				"device is not online, current status: %s", device.Status))
			return
		}

		if err := robotics.ValidateCommand(device.DeviceType, body.Command); err != nil {
			respondWithError(w, apierror.New(apierror.ValidationError, err.Error()))
			return
		}
		params, err := robotics.ParseParams(body.Command, body.Parameters)
		if err != nil {
			respondWithError(w, apierror.New(apierror.ValidationError, err.Error()))
			return
		}
		batteryDrain := robotics.EstimateBatteryDrain(params)

		// Dispatch to the device would go over MQTT or a websocket; here
		// the command is acknowledged immediately.
		commandID := uuid.New()

		audit.Log(audit.CommandEvent{
			UserID:    id.UserID.String(),
			DeviceID:  deviceID.String(),
			Command:   body.Command,
			CommandID: commandID.String(),
			Success:   true,
		})

		respondWithData(w, robotics.CommandResult{
			CommandID:             commandID,
			Status:                "sent",
			ExecutedAt:            time.Now().UTC(),
			EstimatedDurationMS:   1000,
			EstimatedBatteryDrain: batteryDrain,
		})
	}
}

func handleUpdateStatus(devices store.DevicesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		deviceID, err := deviceIDVar(r)
		if err != nil {
			respondWithError(w, err)
			return
		}

		var body StatusUpdateRequest
		if err := decodeJSON(r, &body); err != nil {
			respondWithError(w, err)
			return
		}

		if !model.ValidDeviceStatus(body.Status) {
			respondWithError(w, apierror.New(apierror.ValidationError,
				"invalid status, must be one of: online, offline, maintenance"))
			return
		}

		if err := devices.UpdateDeviceStatus(deviceID, id.UserID, body.Status); err != nil {
			respondWithError(w, deviceStoreError(err))
			return
		}

		respondWithData(w, map[string]interface{}{
			"device_id":  deviceID,
			"status":     body.Status,
			"updated_at": time.Now().UTC(),
		})
	}
}

func handleGetTelemetry(devices store.DevicesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		deviceID, err := deviceIDVar(r)
		if err != nil {
			respondWithError(w, err)
			return
		}

		device, err := devices.FetchDevice(deviceID, id.UserID)
		if err != nil {
			respondWithError(w, deviceStoreError(err))
			return
		}

		respondWithData(w, map[string]interface{}{
			"device_id":   device.ID,
			"device_name": device.DeviceName,
			"telemetry":   robotics.GenerateTelemetry(device.DeviceType),
		})
	}
}

func handleDeleteDevice(devices store.DevicesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		deviceID, err := deviceIDVar(r)
		if err != nil {
			respondWithError(w, err)
			return
		}

		if err := devices.DeleteDevice(deviceID, id.UserID); err != nil {
			respondWithError(w, deviceStoreError(err))
			return
		}

		logrus.WithFields(logrus.Fields{
			"device_id": deviceID,
			"user_id":   id.UserID,
		}).Info("Device deleted")

		respondWithMessage(w, "Device deleted successfully")
	}
}

func handleRoboticsHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"service":           "robotics",
			"status":            "available",
			"supported_devices": robotics.SupportedDeviceTypes(),
			"features": map[string]bool{
				"device_registration": true,
				"command_execution":   true,
				"telemetry":           true,
				"real_time_control":   false,
			},
		})
	}
}

func deviceIDVar(r *http.Request) (uuid.UUID, error) {
	raw := mux.Vars(r)["device_id"]
	deviceID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierror.New(apierror.ValidationError, "invalid device id")
	}
	return deviceID, nil
}

func deviceStoreError(err error) error {
	if errors.Is(err, store.ErrDeviceNotFound) {
		return apierror.New(apierror.NotFound, "Device not found")
	}
	return apierror.New(apierror.DatabaseError, "device lookup failed")
}
