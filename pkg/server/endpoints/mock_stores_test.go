package endpoints

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/robohub/robohub/pkg/model"
	"github.com/robohub/robohub/pkg/server/store"
)

// MockDevicesStore implements store.DevicesStore for testing using testify/mock
type MockDevicesStore struct {
	mock.Mock
}

func NewMockDevicesStore() *MockDevicesStore {
	return &MockDevicesStore{}
}

func (m *MockDevicesStore) ListDevices(userID uuid.UUID, filter store.DeviceFilter) ([]model.Device, error) {
	args := m.Called(userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Device), args.Error(1)
}

func (m *MockDevicesStore) CountDevices(userID uuid.UUID) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDevicesStore) CountAllDevices() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDevicesStore) FetchDevice(deviceID, userID uuid.UUID) (*model.Device, error) {
	args := m.Called(deviceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Device), args.Error(1)
}

func (m *MockDevicesStore) CreateDevice(device *model.Device) error {
	args := m.Called(device)
	return args.Error(0)
}

func (m *MockDevicesStore) UpdateDeviceStatus(deviceID, userID uuid.UUID, status string) error {
	args := m.Called(deviceID, userID, status)
	return args.Error(0)
}

func (m *MockDevicesStore) DeleteDevice(deviceID, userID uuid.UUID) error {
	args := m.Called(deviceID, userID)
	return args.Error(0)
}

func (m *MockDevicesStore) DeviceStats(userID uuid.UUID) (*store.DeviceStats, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.DeviceStats), args.Error(1)
}

func (m *MockDevicesStore) RecentDevices(userID uuid.UUID, limit int) ([]model.Device, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Device), args.Error(1)
}

// MockUsersStore implements store.UsersStore for testing using testify/mock
type MockUsersStore struct {
	mock.Mock
}

func NewMockUsersStore() *MockUsersStore {
	return &MockUsersStore{}
}

func (m *MockUsersStore) FetchUser(userID uuid.UUID) (*model.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUsersStore) LinkWallet(userID uuid.UUID, address string) error {
	args := m.Called(userID, address)
	return args.Error(0)
}

func (m *MockUsersStore) CountUsers() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockTransactionsStore implements store.TransactionsStore for testing using testify/mock
type MockTransactionsStore struct {
	mock.Mock
}

func NewMockTransactionsStore() *MockTransactionsStore {
	return &MockTransactionsStore{}
}

func (m *MockTransactionsStore) ListTransactions(userID uuid.UUID, filter store.TransactionFilter) ([]model.Transaction, error) {
	args := m.Called(userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *MockTransactionsStore) CreateTransaction(tx *model.Transaction) error {
	args := m.Called(tx)
	return args.Error(0)
}

func (m *MockTransactionsStore) AttachTxHash(userID uuid.UUID, txHash string) error {
	args := m.Called(userID, txHash)
	return args.Error(0)
}

func (m *MockTransactionsStore) TransactionStats(userID uuid.UUID) (*store.TransactionStats, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.TransactionStats), args.Error(1)
}

func (m *MockTransactionsStore) RecentTransactions(userID uuid.UUID, limit int) ([]model.Transaction, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

// MockHealthStore implements store.HealthStore for testing using testify/mock
type MockHealthStore struct {
	mock.Mock
}

func NewMockHealthStore() *MockHealthStore {
	return &MockHealthStore{}
}

func (m *MockHealthStore) CheckConnectivity() error {
	args := m.Called()
	return args.Error(0)
}
