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

// AccrueInterest mocks base method.
func (m *MockRepository) AccrueInterest(ctx context.Context, rate float64, maxBank int64) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AccrueInterest", ctx, rate, maxBank)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AccrueInterest indicates an expected call of AccrueInterest.
func (mr *MockRepositoryMockRecorder) AccrueInterest(ctx, rate, maxBank any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AccrueInterest", reflect.TypeOf((*MockRepository)(nil).AccrueInterest), ctx, rate, maxBank)
}

// AddItem mocks base method.
func (m *MockRepository) AddItem(ctx context.Context, userID, itemID string, quantity int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddItem", ctx, userID, itemID, quantity)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddItem indicates an expected call of AddItem.
func (mr *MockRepositoryMockRecorder) AddItem(ctx, userID, itemID, quantity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddItem", reflect.TypeOf((*MockRepository)(nil).AddItem), ctx, userID, itemID, quantity)
}

// AdjustWallet mocks base method.
func (m *MockRepository) AdjustWallet(ctx context.Context, userID string, delta int64) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AdjustWallet", ctx, userID, delta)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AdjustWallet indicates an expected call of AdjustWallet.
func (mr *MockRepositoryMockRecorder) AdjustWallet(ctx, userID, delta any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AdjustWallet", reflect.TypeOf((*MockRepository)(nil).AdjustWallet), ctx, userID, delta)
}

// AppendLedger mocks base method.
func (m *MockRepository) AppendLedger(ctx context.Context, entry *models.LedgerEntry) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AppendLedger", ctx, entry)
	ret0, _ := ret[0].(error)
	return ret0
}

// AppendLedger indicates an expected call of AppendLedger.
func (mr *MockRepositoryMockRecorder) AppendLedger(ctx, entry any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AppendLedger", reflect.TypeOf((*MockRepository)(nil).AppendLedger), ctx, entry)
}

// ConsumeItem mocks base method.
func (m *MockRepository) ConsumeItem(ctx context.Context, userID, itemID string, quantity int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ConsumeItem", ctx, userID, itemID, quantity)
	ret0, _ := ret[0].(error)
	return ret0
}

// ConsumeItem indicates an expected call of ConsumeItem.
func (mr *MockRepositoryMockRecorder) ConsumeItem(ctx, userID, itemID, quantity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ConsumeItem", reflect.TypeOf((*MockRepository)(nil).ConsumeItem), ctx, userID, itemID, quantity)
}

// CreateUser mocks base method.
func (m *MockRepository) CreateUser(ctx context.Context, user *models.User) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateUser", ctx, user)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateUser indicates an expected call of CreateUser.
func (mr *MockRepositoryMockRecorder) CreateUser(ctx, user any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateUser", reflect.TypeOf((*MockRepository)(nil).CreateUser), ctx, user)
}

// GetItems mocks base method.
func (m *MockRepository) GetItems(ctx context.Context, userID string) (map[string]int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetItems", ctx, userID)
	ret0, _ := ret[0].(map[string]int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetItems indicates an expected call of GetItems.
func (mr *MockRepositoryMockRecorder) GetItems(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetItems", reflect.TypeOf((*MockRepository)(nil).GetItems), ctx, userID)
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

// MoveFromBank mocks base method.
func (m *MockRepository) MoveFromBank(ctx context.Context, userID string, amount int64) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MoveFromBank", ctx, userID, amount)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MoveFromBank indicates an expected call of MoveFromBank.
func (mr *MockRepositoryMockRecorder) MoveFromBank(ctx, userID, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MoveFromBank", reflect.TypeOf((*MockRepository)(nil).MoveFromBank), ctx, userID, amount)
}

// MoveToBank mocks base method.
func (m *MockRepository) MoveToBank(ctx context.Context, userID string, amount, maxBank int64) (*models.User, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MoveToBank", ctx, userID, amount, maxBank)
	ret0, _ := ret[0].(*models.User)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MoveToBank indicates an expected call of MoveToBank.
func (mr *MockRepositoryMockRecorder) MoveToBank(ctx, userID, amount, maxBank any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MoveToBank", reflect.TypeOf((*MockRepository)(nil).MoveToBank), ctx, userID, amount, maxBank)
}

// RecentLedger mocks base method.
func (m *MockRepository) RecentLedger(ctx context.Context, userID string, limit int) ([]*models.LedgerEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecentLedger", ctx, userID, limit)
	ret0, _ := ret[0].([]*models.LedgerEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecentLedger indicates an expected call of RecentLedger.
func (mr *MockRepositoryMockRecorder) RecentLedger(ctx, userID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecentLedger", reflect.TypeOf((*MockRepository)(nil).RecentLedger), ctx, userID, limit)
}

// SetLastWork mocks base method.
func (m *MockRepository) SetLastWork(ctx context.Context, userID string, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetLastWork", ctx, userID, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetLastWork indicates an expected call of SetLastWork.
func (mr *MockRepositoryMockRecorder) SetLastWork(ctx, userID, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetLastWork", reflect.TypeOf((*MockRepository)(nil).SetLastWork), ctx, userID, at)
}

// SetPremiumUntil mocks base method.
func (m *MockRepository) SetPremiumUntil(ctx context.Context, userID string, until time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetPremiumUntil", ctx, userID, until)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetPremiumUntil indicates an expected call of SetPremiumUntil.
func (mr *MockRepositoryMockRecorder) SetPremiumUntil(ctx, userID, until any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetPremiumUntil", reflect.TypeOf((*MockRepository)(nil).SetPremiumUntil), ctx, userID, until)
}

// SumSpentSince mocks base method.
func (m *MockRepository) SumSpentSince(ctx context.Context, userID, prefix string, since time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SumSpentSince", ctx, userID, prefix, since)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SumSpentSince indicates an expected call of SumSpentSince.
func (mr *MockRepositoryMockRecorder) SumSpentSince(ctx, userID, prefix, since any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SumSpentSince", reflect.TypeOf((*MockRepository)(nil).SumSpentSince), ctx, userID, prefix, since)
}

// UpdateProfile mocks base method.
func (m *MockRepository) UpdateProfile(ctx context.Context, userID, title, bio string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateProfile", ctx, userID, title, bio)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateProfile indicates an expected call of UpdateProfile.
func (mr *MockRepositoryMockRecorder) UpdateProfile(ctx, userID, title, bio any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateProfile", reflect.TypeOf((*MockRepository)(nil).UpdateProfile), ctx, userID, title, bio)
}

// UpdateUsername mocks base method.
func (m *MockRepository) UpdateUsername(ctx context.Context, userID, username string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateUsername", ctx, userID, username)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateUsername indicates an expected call of UpdateUsername.
func (mr *MockRepositoryMockRecorder) UpdateUsername(ctx, userID, username any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateUsername", reflect.TypeOf((*MockRepository)(nil).UpdateUsername), ctx, userID, username)
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

// Clear mocks base method.
func (m *MockCooldowns) Clear(ctx context.Context, userID, action string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Clear", ctx, userID, action)
	ret0, _ := ret[0].(error)
	return ret0
}

// Clear indicates an expected call of Clear.
func (mr *MockCooldownsMockRecorder) Clear(ctx, userID, action any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clear", reflect.TypeOf((*MockCooldowns)(nil).Clear), ctx, userID, action)
}

// ClearAll mocks base method.
func (m *MockCooldowns) ClearAll(ctx context.Context, userID string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClearAll", ctx, userID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ClearAll indicates an expected call of ClearAll.
func (mr *MockCooldownsMockRecorder) ClearAll(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClearAll", reflect.TypeOf((*MockCooldowns)(nil).ClearAll), ctx, userID)
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

