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

// AddMember mocks base method.
func (m *MockRepository) AddMember(ctx context.Context, member *models.GuildMember) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddMember", ctx, member)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddMember indicates an expected call of AddMember.
func (mr *MockRepositoryMockRecorder) AddMember(ctx, member any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddMember", reflect.TypeOf((*MockRepository)(nil).AddMember), ctx, member)
}

// CreateGuild mocks base method.
func (m *MockRepository) CreateGuild(ctx context.Context, guild *models.Guild) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateGuild", ctx, guild)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateGuild indicates an expected call of CreateGuild.
func (mr *MockRepositoryMockRecorder) CreateGuild(ctx, guild any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateGuild", reflect.TypeOf((*MockRepository)(nil).CreateGuild), ctx, guild)
}

// ExpireTrades mocks base method.
func (m *MockRepository) ExpireTrades(ctx context.Context, now time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExpireTrades", ctx, now)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExpireTrades indicates an expected call of ExpireTrades.
func (mr *MockRepositoryMockRecorder) ExpireTrades(ctx, now any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExpireTrades", reflect.TypeOf((*MockRepository)(nil).ExpireTrades), ctx, now)
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

// GetTrade mocks base method.
func (m *MockRepository) GetTrade(ctx context.Context, tradeID int64) (*models.Trade, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTrade", ctx, tradeID)
	ret0, _ := ret[0].(*models.Trade)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTrade indicates an expected call of GetTrade.
func (mr *MockRepositoryMockRecorder) GetTrade(ctx, tradeID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTrade", reflect.TypeOf((*MockRepository)(nil).GetTrade), ctx, tradeID)
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

// GuildBySlug mocks base method.
func (m *MockRepository) GuildBySlug(ctx context.Context, slug string) (*models.Guild, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GuildBySlug", ctx, slug)
	ret0, _ := ret[0].(*models.Guild)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GuildBySlug indicates an expected call of GuildBySlug.
func (mr *MockRepositoryMockRecorder) GuildBySlug(ctx, slug any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GuildBySlug", reflect.TypeOf((*MockRepository)(nil).GuildBySlug), ctx, slug)
}

// GuildOf mocks base method.
func (m *MockRepository) GuildOf(ctx context.Context, userID string) (*models.Guild, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GuildOf", ctx, userID)
	ret0, _ := ret[0].(*models.Guild)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GuildOf indicates an expected call of GuildOf.
func (mr *MockRepositoryMockRecorder) GuildOf(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GuildOf", reflect.TypeOf((*MockRepository)(nil).GuildOf), ctx, userID)
}

// InsertTrade mocks base method.
func (m *MockRepository) InsertTrade(ctx context.Context, trade *models.Trade) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "InsertTrade", ctx, trade)
	ret0, _ := ret[0].(error)
	return ret0
}

// InsertTrade indicates an expected call of InsertTrade.
func (mr *MockRepositoryMockRecorder) InsertTrade(ctx, trade any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "InsertTrade", reflect.TypeOf((*MockRepository)(nil).InsertTrade), ctx, trade)
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

// ListMembers mocks base method.
func (m *MockRepository) ListMembers(ctx context.Context, guildID int64) ([]*models.GuildMember, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListMembers", ctx, guildID)
	ret0, _ := ret[0].([]*models.GuildMember)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListMembers indicates an expected call of ListMembers.
func (mr *MockRepositoryMockRecorder) ListMembers(ctx, guildID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListMembers", reflect.TypeOf((*MockRepository)(nil).ListMembers), ctx, guildID)
}

// SetTradeStatus mocks base method.
func (m *MockRepository) SetTradeStatus(ctx context.Context, tradeID int64, from, to string, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetTradeStatus", ctx, tradeID, from, to, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetTradeStatus indicates an expected call of SetTradeStatus.
func (mr *MockRepositoryMockRecorder) SetTradeStatus(ctx, tradeID, from, to, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetTradeStatus", reflect.TypeOf((*MockRepository)(nil).SetTradeStatus), ctx, tradeID, from, to, at)
}

// TransferBird mocks base method.
func (m *MockRepository) TransferBird(ctx context.Context, birdID int64, fromID, toID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TransferBird", ctx, birdID, fromID, toID)
	ret0, _ := ret[0].(error)
	return ret0
}

// TransferBird indicates an expected call of TransferBird.
func (mr *MockRepositoryMockRecorder) TransferBird(ctx, birdID, fromID, toID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TransferBird", reflect.TypeOf((*MockRepository)(nil).TransferBird), ctx, birdID, fromID, toID)
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

// Transfer mocks base method.
func (m *MockWallet) Transfer(ctx context.Context, fromID, toID string, amount int64, feeRate float64, reason string) (int64, int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transfer", ctx, fromID, toID, amount, feeRate, reason)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(int64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Transfer indicates an expected call of Transfer.
func (mr *MockWalletMockRecorder) Transfer(ctx, fromID, toID, amount, feeRate, reason any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transfer", reflect.TypeOf((*MockWallet)(nil).Transfer), ctx, fromID, toID, amount, feeRate, reason)
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

