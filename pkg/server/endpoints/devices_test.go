package endpoints

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/robohub/robohub/pkg/model"
	"github.com/robohub/robohub/pkg/server/store"
)

func TestListDevicesRequiresAuth(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/robotics/devices", nil)
	recorder, body := doRequest(t, srv, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, false, body["success"])
}

func TestListDevices(t *testing.T) {
	srv, stores := newTestServer(t)
	userID := uuid.New()

	stores.Devices.On("ListDevices", userID, store.DeviceFilter{Status: "online"}).
		Return([]model.Device{{ID: uuid.New(), UserID: userID, DeviceName: "scout-1", DeviceType: "drone", Status: "online"}}, nil)

	req := httptest.NewRequest("GET", "/api/robotics/devices?status=online", nil)
	req.Header.Set("Authorization", bearerFor(t, userID, "user"))
	recorder, body := doRequest(t, srv, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])
	stores.Devices.AssertExpectations(t)
}

func TestRegisterDevice(t *testing.T) {
	srv, stores := newTestServer(t)
	userID := uuid.New()

	stores.Devices.On("CountDevices", userID).Return(int64(2), nil)
	stores.Devices.On("CreateDevice", mock.MatchedBy(func(d *model.Device) bool {
		return d.UserID == userID && d.DeviceName == "scout-1" && d.Status == model.DeviceOffline
	})).Return(nil)

	payload := `{"device_name": "scout-1", "device_type": "drone", "firmware_version": "1.2.0"}`
	req := httptest.NewRequest("POST", "/api/robotics/devices", strings.NewReader(payload))
	req.Header.Set("Authorization", bearerFor(t, userID, "user"))
	recorder, body := doRequest(t, srv, req)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, true, body["success"])
	stores.Devices.AssertExpectations(t)
}

func TestRegisterDeviceInvalidType(t *testing.T) {
	srv, _ := newTestServer(t)
	userID := uuid.New()

	payload := `{"device_name": "sub-1", "device_type": "submarine"}`
	req := httptest.NewRequest("POST", "/api/robotics/devices", strings.NewReader(payload))
	req.Header.Set("Authorization", bearerFor(t, userID, "user"))
	recorder, body := doRequest(t, srv, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "validation_error", errObj["type"])
}

func TestRegisterDeviceLimitReached(t *testing.T) {
	srv, stores := newTestServer(t)
	userID := uuid.New()

	stores.Devices.On("CountDevices", userID).Return(int64(10), nil)

	payload := `{"device_name": "scout-11", "device_type": "drone"}`
	req := httptest.NewRequest("POST", "/api/robotics/devices", strings.NewReader(payload))
	req.Header.Set("Authorization", bearerFor(t, userID, "user"))
	recorder, body := doRequest(t, srv, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	errObj := body["error"].(map[string]interface{})
	assert.Contains(t, errObj["message"], "maximum device limit")
}

func TestGetDeviceNotFound(t *testing.T) {
	srv, stores := newTestServer(t)
	userID := uuid.New()
	deviceID := uuid.New()

	stores.Devices.On("FetchDevice", deviceID, userID).Return(nil, store.ErrDeviceNotFound)

	req := httptest.NewRequest("GET", "/api/robotics/devices/"+deviceID.String(), nil)
	req.Header.Set("Authorization", bearerFor(t, userID, "user"))
	recorder, body := doRequest(t, srv, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	errObj := body["error"].(map[string]interface{})
	assert.Equal(t, "not_found", errObj["type"])
}

func TestGetDeviceBadID(t *testing.T) {
	srv, _ := newTestServer(t)
	userID := uuid.New()

	req := httptest.NewRequest("GET", "/api/robotics/devices/not-a-uuid", nil)
	req.Header.Set("Authorization", bearerFor(t, userID, "user"))
	recorder, _ := doRequest(t, srv, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSendCommand(t *testing.T) {
	srv, stores := newTestServer(t)
	userID := uuid.New()
	deviceID := uuid.New()

	stores.Devices.On("FetchDevice", deviceID, userID).
		Return(&model.Device{ID: deviceID, UserID: userID, DeviceType: "drone", Status: model.DeviceOnline}, nil)

	payload := `{"command": "move", "parameters": {"speed": 0.8, "duration_ms": 2000}}`
	req := httptest.NewRequest("POST", "/api/robotics/devices/"+deviceID.String()+"/command", strings.NewReader(payload))
	req.Header.Set("Authorization", bearerFor(t, userID, "user"))
	recorder, body := doRequest(t, srv, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "sent", data["status"])
	assert.NotEmpty(t, data["command_id"])
	assert.InDelta(t, 0.16, data["estimated_battery_drain"].(float64), 1e-9)
}

func TestSendCommandDeviceOffline(t *testing.T) {
	srv, stores := newTestServer(t)
	userID := uuid.New()
	deviceID := uuid.New()

	stores.Devices.On("FetchDevice", deviceID, userID).
		Return(&model.Device{ID: deviceID, UserID: userID, DeviceType: "drone", Status: model.DeviceOffline}, nil)

	payload := `{"command": "takeoff"}`
	req := httptest.NewRequest("POST", "/api/robotics/devices/"+deviceID.String()+"/command", strings.NewReader(payload))
	req.Header.Set("Authorization", bearerFor(t, userID, "user"))
	recorder, body := doRequest(t, srv, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	errObj := body["error"].(map[string]interface{})
	assert.Contains(t, errObj["message"], "not online")
}

func TestSendCommandInvalidForType(t *testing.T) {
	srv, stores := newTestServer(t)
	userID := uuid.New()
	deviceID := uuid.New()

	stores.Devices.On("FetchDevice", deviceID, userID).
		Return(&model.Device{ID: deviceID, UserID: userID, DeviceType: "rover", Status: model.DeviceOnline}, nil)

	payload := `{"command": "takeoff"}`
	req := httptest.NewRequest("POST", "/api/robotics/devices/"+deviceID.String()+"/command", strings.NewReader(payload))
	req.Header.Set("Authorization", bearerFor(t, userID, "user"))
	recorder, _ := doRequest(t, srv, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateStatus(t *testing.T) {
	srv, stores := newTestServer(t)
	userID := uuid.New()
	deviceID := uuid.New()

	stores.Devices.On("UpdateDeviceStatus", deviceID, userID, "online").Return(nil)

	payload := `{"status": "online"}`
	req := httptest.NewRequest("PATCH", "/api/robotics/devices/"+deviceID.String()+"/status", strings.NewReader(payload))
	req.Header.Set("Authorization", bearerFor(t, userID, "user"))
	recorder, body := doRequest(t, srv, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "online", data["status"])
	stores.Devices.AssertExpectations(t)
}

func TestUpdateStatusInvalid(t *testing.T) {
	srv, _ := newTestServer(t)
	userID := uuid.New()
	deviceID := uuid.New()

	payload := `{"status": "sleeping"}`
	req := httptest.NewRequest("PATCH", "/api/robotics/devices/"+deviceID.String()+"/status", strings.NewReader(payload))
	req.Header.Set("Authorization", bearerFor(t, userID, "user"))
	recorder, _ := doRequest(t, srv, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetTelemetry(t *testing.T) {
	srv, stores := newTestServer(t)
	userID := uuid.New()
	deviceID := uuid.New()

	stores.Devices.On("FetchDevice", deviceID, userID).
		Return(&model.Device{ID: deviceID, UserID: userID, DeviceName: "scout-1", DeviceType: "drone", Status: model.DeviceOnline}, nil)

	req := httptest.NewRequest("GET", "/api/robotics/devices/"+deviceID.String()+"/telemetry", nil)
	req.Header.Set("Authorization", bearerFor(t, userID, "user"))
	recorder, body := doRequest(t, srv, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "scout-1", data["device_name"])
	telemetry := data["telemetry"].(map[string]interface{})
	assert.NotNil(t, telemetry["battery_level"])
	position := telemetry["position"].(map[string]interface{})
	assert.NotNil(t, position["altitude"])
}

func TestDeleteDevice(t *testing.T) {
	srv, stores := newTestServer(t)
	userID := uuid.New()
	deviceID := uuid.New()

	stores.Devices.On("DeleteDevice", deviceID, userID).Return(nil)

	req := httptest.NewRequest("DELETE", "/api/robotics/devices/"+deviceID.String(), nil)
	req.Header.Set("Authorization", bearerFor(t, userID, "user"))
	recorder, body := doRequest(t, srv, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Device deleted successfully", body["message"])
}

func TestRoboticsHealthPublic(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/robotics/health", nil)
	recorder, body := doRequest(t, srv, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "robotics", body["service"])
	assert.Equal(t, "available", body["status"])
}
