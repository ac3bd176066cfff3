package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	models "github.com/birdwatchers/birdhunter/birdhunter/database/models"
	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// GetBird mocks base method.
func (m *MockRepository) GetBird(ctx context.Context, ownerID string, birdID int64) (*models.OwnedBird, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBird", ctx, ownerID, birdID)
	ret0, _ := ret[0].(*models.OwnedBird)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBird indicates an expected call of GetBird.
func (mr *MockRepositoryMockRecorder) GetBird(ctx, ownerID, birdID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBird", reflect.TypeOf((*MockRepository)(nil).GetBird), ctx, ownerID, birdID)
}

// GetUser mocks base method.
func (m *MockRepository) GetUser(ctx context.Context, userID string) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUser", ctx, userID)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUser indicates an expected call of GetUser.
func (mr *MockRepositoryMockRecorder) GetUser(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUser", reflect.TypeOf((*MockRepository)(nil).GetUser), ctx, userID)
}

// IncrementCaught mocks base method.
func (m *MockRepository) IncrementCaught(ctx context.Context, userID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementCaught", ctx, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// IncrementCaught indicates an expected call of IncrementCaught.
func (mr *MockRepositoryMockRecorder) IncrementCaught(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementCaught", reflect.TypeOf((*MockRepository)(nil).IncrementCaught), ctx, userID)
}

// IncrementHunts mocks base method.
func (m *MockRepository) IncrementHunts(ctx context.Context, userID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementHunts", ctx, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// IncrementHunts indicates an expected call of IncrementHunts.
func (mr *MockRepositoryMockRecorder) IncrementHunts(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementHunts", reflect.TypeOf((*MockRepository)(nil).IncrementHunts), ctx, userID)
}

// IncrementObservations mocks base method.
func (m *MockRepository) IncrementObservations(ctx context.Context, userID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementObservations", ctx, userID)
	ret0, _ := ret[0].(error)
	return ret0
}

// IncrementObservations indicates an expected call of IncrementObservations.
func (mr *MockRepositoryMockRecorder) IncrementObservations(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementObservations", reflect.TypeOf((*MockRepository)(nil).IncrementObservations), ctx, userID)
}

// InsertBird mocks base method.
func (m *MockRepository) InsertBird(ctx context.Context, bird *models.OwnedBird) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertBird", ctx, bird)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertBird indicates an expected call of InsertBird.
func (mr *MockRepositoryMockRecorder) InsertBird(ctx, bird any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertBird", reflect.TypeOf((*MockRepository)(nil).InsertBird), ctx, bird)
}

// ListBirds mocks base method.
func (m *MockRepository) ListBirds(ctx context.Context, ownerID string) ([]*models.OwnedBird, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListBirds", ctx, ownerID)
	ret0, _ := ret[0].([]*models.OwnedBird)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListBirds indicates an expected call of ListBirds.
func (mr *MockRepositoryMockRecorder) ListBirds(ctx, ownerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListBirds", reflect.TypeOf((*MockRepository)(nil).ListBirds), ctx, ownerID)
}

// RecordObservation mocks base method.
func (m *MockRepository) RecordObservation(ctx context.Context, birdID int64, version, bondDelta int, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordObservation", ctx, birdID, version, bondDelta, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecordObservation indicates an expected call of RecordObservation.
func (mr *MockRepositoryMockRecorder) RecordObservation(ctx, birdID, version, bondDelta, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordObservation", reflect.TypeOf((*MockRepository)(nil).RecordObservation), ctx, birdID, version, bondDelta, at)
}

// ReleaseBird mocks base method.
func (m *MockRepository) ReleaseBird(ctx context.Context, ownerID string, birdID int64, at time.Time, sold bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReleaseBird", ctx, ownerID, birdID, at, sold)
	ret0, _ := ret[0].(error)
	return ret0
}

// ReleaseBird indicates an expected call of ReleaseBird.
func (mr *MockRepositoryMockRecorder) ReleaseBird(ctx, ownerID, birdID, at, sold any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReleaseBird", reflect.TypeOf((*MockRepository)(nil).ReleaseBird), ctx, ownerID, birdID, at, sold)
}

// RenameBird mocks base method.
func (m *MockRepository) RenameBird(ctx context.Context, ownerID string, birdID int64, name string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RenameBird", ctx, ownerID, birdID, name)
	ret0, _ := ret[0].(error)
	return ret0
}

// RenameBird indicates an expected call of RenameBird.
func (mr *MockRepositoryMockRecorder) RenameBird(ctx, ownerID, birdID, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RenameBird", reflect.TypeOf((*MockRepository)(nil).RenameBird), ctx, ownerID, birdID, name)
}

// WithinTx mocks base method.
func (m *MockRepository) WithinTx(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithinTx", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithinTx indicates an expected call of WithinTx.
func (mr *MockRepositoryMockRecorder) WithinTx(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithinTx", reflect.TypeOf((*MockRepository)(nil).WithinTx), ctx, fn)
}

// MockWallet is a mock of Wallet interface.
type MockWallet struct {
	ctrl     *gomock.Controller
	recorder *MockWalletMockRecorder
	isgomock struct{}
}

// MockWalletMockRecorder is the mock recorder for MockWallet.
type MockWalletMockRecorder struct {
	mock *MockWallet
}

// NewMockWallet creates a new mock instance.
func NewMockWallet(ctrl *gomock.Controller) *MockWallet {
	mock := &MockWallet{ctrl: ctrl}
	mock.recorder = &MockWalletMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWallet) EXPECT() *MockWalletMockRecorder {
	return m.recorder
}

// Consume mocks base method.
func (m *MockWallet) Consume(ctx context.Context, userID, itemID string, quantity int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Consume", ctx, userID, itemID, quantity)
	ret0, _ := ret[0].(error)
	return ret0
}

// Consume indicates an expected call of Consume.
func (mr *MockWalletMockRecorder) Consume(ctx, userID, itemID, quantity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Consume", reflect.TypeOf((*MockWallet)(nil).Consume), ctx, userID, itemID, quantity)
}

// Credit mocks base method.
func (m *MockWallet) Credit(ctx context.Context, userID string, amount int64, reason string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Credit", ctx, userID, amount, reason)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Credit indicates an expected call of Credit.
func (mr *MockWalletMockRecorder) Credit(ctx, userID, amount, reason any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Credit", reflect.TypeOf((*MockWallet)(nil).Credit), ctx, userID, amount, reason)
}

// Debit mocks base method.
func (m *MockWallet) Debit(ctx context.Context, userID string, amount int64, reason string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Debit", ctx, userID, amount, reason)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Debit indicates an expected call of Debit.
func (mr *MockWalletMockRecorder) Debit(ctx, userID, amount, reason any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Debit", reflect.TypeOf((*MockWallet)(nil).Debit), ctx, userID, amount, reason)
}

// Inventory mocks base method.
func (m *MockWallet) Inventory(ctx context.Context, userID string) (map[string]int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Inventory", ctx, userID)
	ret0, _ := ret[0].(map[string]int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Inventory indicates an expected call of Inventory.
func (mr *MockWalletMockRecorder) Inventory(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Inventory", reflect.TypeOf((*MockWallet)(nil).Inventory), ctx, userID)
}

// MockCooldowns is a mock of Cooldowns interface.
type MockCooldowns struct {
	ctrl     *gomock.Controller
	recorder *MockCooldownsMockRecorder
	isgomock struct{}
}

// MockCooldownsMockRecorder is the mock recorder for MockCooldowns.
type MockCooldownsMockRecorder struct {
	mock *MockCooldowns
}

// NewMockCooldowns creates a new mock instance.
func NewMockCooldowns(ctrl *gomock.Controller) *MockCooldowns {
	mock := &MockCooldowns{ctrl: ctrl}
	mock.recorder = &MockCooldownsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCooldowns) EXPECT() *MockCooldownsMockRecorder {
	return m.recorder
}

// Check mocks base method.
func (m *MockCooldowns) Check(ctx context.Context, userID, action string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Check", ctx, userID, action)
	ret0, _ := ret[0].(error)
	return ret0
}

// Check indicates an expected call of Check.
func (mr *MockCooldownsMockRecorder) Check(ctx, userID, action any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Check", reflect.TypeOf((*MockCooldowns)(nil).Check), ctx, userID, action)
}

// Start mocks base method.
func (m *MockCooldowns) Start(ctx context.Context, userID, action string, d time.Duration) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Start", ctx, userID, action, d)
	ret0, _ := ret[0].(error)
	return ret0
}

// Start indicates an expected call of Start.
func (mr *MockCooldownsMockRecorder) Start(ctx, userID, action, d any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockCooldowns)(nil).Start), ctx, userID, action, d)
}

