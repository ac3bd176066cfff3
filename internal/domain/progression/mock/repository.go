package mock

import (
	context "context"
	reflect "reflect"
	time "time"

	models "github.com/birdwatchers/birdhunter/birdhunter/database/models"
	progression "github.com/birdwatchers/birdhunter/internal/domain/progression"
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

// ClaimAchievement mocks base method.
func (m *MockRepository) ClaimAchievement(ctx context.Context, userID, achievementID string, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClaimAchievement", ctx, userID, achievementID, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClaimAchievement indicates an expected call of ClaimAchievement.
func (mr *MockRepositoryMockRecorder) ClaimAchievement(ctx, userID, achievementID, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClaimAchievement", reflect.TypeOf((*MockRepository)(nil).ClaimAchievement), ctx, userID, achievementID, at)
}

// ClaimQuest mocks base method.
func (m *MockRepository) ClaimQuest(ctx context.Context, userID, questID string, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClaimQuest", ctx, userID, questID, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// ClaimQuest indicates an expected call of ClaimQuest.
func (mr *MockRepositoryMockRecorder) ClaimQuest(ctx, userID, questID, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClaimQuest", reflect.TypeOf((*MockRepository)(nil).ClaimQuest), ctx, userID, questID, at)
}

// CountLedger mocks base method.
func (m *MockRepository) CountLedger(ctx context.Context, userID, prefix string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountLedger", ctx, userID, prefix)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountLedger indicates an expected call of CountLedger.
func (mr *MockRepositoryMockRecorder) CountLedger(ctx, userID, prefix any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountLedger", reflect.TypeOf((*MockRepository)(nil).CountLedger), ctx, userID, prefix)
}

// CountTrades mocks base method.
func (m *MockRepository) CountTrades(ctx context.Context, userID string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CountTrades", ctx, userID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CountTrades indicates an expected call of CountTrades.
func (mr *MockRepositoryMockRecorder) CountTrades(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CountTrades", reflect.TypeOf((*MockRepository)(nil).CountTrades), ctx, userID)
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

// LeaderboardEntries mocks base method.
func (m *MockRepository) LeaderboardEntries(ctx context.Context, board progression.Board) ([]progression.Entry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LeaderboardEntries", ctx, board)
	ret0, _ := ret[0].([]progression.Entry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LeaderboardEntries indicates an expected call of LeaderboardEntries.
func (mr *MockRepositoryMockRecorder) LeaderboardEntries(ctx, board any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LeaderboardEntries", reflect.TypeOf((*MockRepository)(nil).LeaderboardEntries), ctx, board)
}

// ListAchievements mocks base method.
func (m *MockRepository) ListAchievements(ctx context.Context, userID string) ([]*models.UserAchievement, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListAchievements", ctx, userID)
	ret0, _ := ret[0].([]*models.UserAchievement)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListAchievements indicates an expected call of ListAchievements.
func (mr *MockRepositoryMockRecorder) ListAchievements(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListAchievements", reflect.TypeOf((*MockRepository)(nil).ListAchievements), ctx, userID)
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

// ListQuests mocks base method.
func (m *MockRepository) ListQuests(ctx context.Context, userID string) ([]*models.UserQuest, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListQuests", ctx, userID)
	ret0, _ := ret[0].([]*models.UserQuest)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListQuests indicates an expected call of ListQuests.
func (mr *MockRepositoryMockRecorder) ListQuests(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListQuests", reflect.TypeOf((*MockRepository)(nil).ListQuests), ctx, userID)
}

// SumEarned mocks base method.
func (m *MockRepository) SumEarned(ctx context.Context, userID string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SumEarned", ctx, userID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SumEarned indicates an expected call of SumEarned.
func (mr *MockRepositoryMockRecorder) SumEarned(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SumEarned", reflect.TypeOf((*MockRepository)(nil).SumEarned), ctx, userID)
}

// UpsertAchievement mocks base method.
func (m *MockRepository) UpsertAchievement(ctx context.Context, a *models.UserAchievement) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertAchievement", ctx, a)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertAchievement indicates an expected call of UpsertAchievement.
func (mr *MockRepositoryMockRecorder) UpsertAchievement(ctx, a any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertAchievement", reflect.TypeOf((*MockRepository)(nil).UpsertAchievement), ctx, a)
}

// UpsertQuest mocks base method.
func (m *MockRepository) UpsertQuest(ctx context.Context, q *models.UserQuest) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertQuest", ctx, q)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertQuest indicates an expected call of UpsertQuest.
func (mr *MockRepositoryMockRecorder) UpsertQuest(ctx, q any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertQuest", reflect.TypeOf((*MockRepository)(nil).UpsertQuest), ctx, q)
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

